package observe

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Listener is the pluggable sink that receives (path, value) notifications.
// There is no error channel: dispatch always succeeds from the registry's
// point of view.
type Listener interface {
	// OnUpdate is invoked synchronously with the node's resolved path and
	// the canonical string form of its new value.
	OnUpdate(path, value string)
}

// ListenerFunc adapts a plain function to the Listener interface.
type ListenerFunc func(path, value string)

// OnUpdate calls f(path, value).
func (f ListenerFunc) OnUpdate(path, value string) {
	f(path, value)
}

// ConsoleListener is the default Listener. It writes one line per update
// in the form "<path> updated, new value: <value>".
type ConsoleListener struct {
	mu sync.Mutex
	w  io.Writer
}

// NewConsoleListener returns a ConsoleListener writing to w.
// A nil w means os.Stdout.
func NewConsoleListener(w io.Writer) *ConsoleListener {
	if w == nil {
		w = os.Stdout
	}
	return &ConsoleListener{w: w}
}

// OnUpdate writes the update line. Writes are serialized so interleaved
// notifications from multiple goroutines stay line-atomic.
func (c *ConsoleListener) OnUpdate(path, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintf(c.w, "%s updated, new value: %s\n", path, value)
}
