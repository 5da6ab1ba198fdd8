package observe

import (
	"slices"
	"sync"
)

// Registry is the process-scoped table of every observable node plus the
// single active Listener. It resolves nodes to paths, routes outgoing
// notifications, and routes incoming string updates back to nodes.
//
// A Registry handle is passed explicitly to every node constructor; there
// is no hidden global instance. Create one per process (or per observed
// universe in tests) and keep it alive for the lifetime of its nodes.
type Registry struct {
	mu sync.RWMutex

	// nodes holds every registered node in registration order. First match
	// wins for path lookups, so the order is part of the contract.
	nodes []Node

	listener Listener
}

// NewRegistry returns a Registry with the console listener active.
func NewRegistry() *Registry {
	return &Registry{listener: NewConsoleListener(nil)}
}

// Register appends n to the node table. Every node constructor calls this
// exactly once; node instances are distinct, so no de-duplication is done.
func (r *Registry) Register(n Node) {
	if n == nil {
		return
	}
	r.mu.Lock()
	r.nodes = append(r.nodes, n)
	r.mu.Unlock()
}

// Len returns the number of registered nodes.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.nodes)
}

// SetListener swaps the active listener. A nil l restores the default
// console listener. Takes effect for the next dispatch; in-flight
// dispatches keep the listener they resolved.
func (r *Registry) SetListener(l Listener) {
	if l == nil {
		l = NewConsoleListener(nil)
	}
	r.mu.Lock()
	r.listener = l
	r.mu.Unlock()
}

// Listener returns the currently active listener.
func (r *Registry) Listener() Listener {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.listener
}

// Dispatch forwards (path, value) to the active listener, synchronously.
// No lock is held during the listener call.
func (r *Registry) Dispatch(path, value string) {
	r.mu.RLock()
	l := r.listener
	r.mu.RUnlock()
	l.OnUpdate(path, value)
}

// NotifyAll invokes Notify on every registered node in registration order,
// broadcasting a full snapshot of the observed universe. Group nodes no-op,
// so the broadcast yields exactly one update per leaf.
func (r *Registry) NotifyAll() {
	r.mu.RLock()
	nodes := slices.Clone(r.nodes)
	r.mu.RUnlock()
	for _, n := range nodes {
		n.Notify()
	}
}

// UpdateByPath applies value to the first registered node whose fully
// resolved path equals path. Matching on the resolved path rather than the
// local key disambiguates same-named fields in different groups.
//
// The boolean reports whether a matching node was found. When found, the
// error is the node's ApplyString result: nil on success,
// ErrMalformedValue if value does not parse (the node keeps its prior
// value), or ErrUnsupportedOperation for Group targets.
func (r *Registry) UpdateByPath(path, value string) (bool, error) {
	r.mu.RLock()
	nodes := slices.Clone(r.nodes)
	r.mu.RUnlock()
	for _, n := range nodes {
		if ResolvePath(n) == path {
			return true, n.ApplyString(value)
		}
	}
	return false, nil
}
