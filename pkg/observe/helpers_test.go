package observe

import "sync"

// recorder is a test Listener that captures every dispatched update.
type recorder struct {
	mu      sync.Mutex
	updates []update
}

type update struct {
	path  string
	value string
}

func newRecorder() *recorder {
	return &recorder{}
}

func (r *recorder) OnUpdate(path, value string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.updates = append(r.updates, update{path: path, value: value})
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.updates)
}

func (r *recorder) last() update {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.updates) == 0 {
		return update{}
	}
	return r.updates[len(r.updates)-1]
}

func (r *recorder) all() []update {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]update, len(r.updates))
	copy(out, r.updates)
	return out
}

// newTestRegistry returns a registry with a recorder installed as the
// active listener.
func newTestRegistry() (*Registry, *recorder) {
	reg := NewRegistry()
	rec := newRecorder()
	reg.SetListener(rec)
	return reg, rec
}
