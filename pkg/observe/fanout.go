package observe

// Fanout composes several listeners into one. Every update is forwarded
// to each listener in order, synchronously on the dispatching goroutine.
// Nil entries are skipped.
func Fanout(listeners ...Listener) Listener {
	ls := make(fanout, 0, len(listeners))
	for _, l := range listeners {
		if l != nil {
			ls = append(ls, l)
		}
	}
	return ls
}

type fanout []Listener

func (f fanout) OnUpdate(path, value string) {
	for _, l := range f {
		l.OnUpdate(path, value)
	}
}
