package observe

import "sync"

// Value is an observable scalar. It behaves like a plain variable of type
// T: Get reads with no side effect, Set stores and then notifies the
// active listener under the value's resolved path.
//
// Set always notifies, even when the new value equals the old one — every
// assignment is an observable event. (This differs from change-gated
// reactive signals: the consumers here are external monitors that want to
// see writes, not renderers that want minimal invalidation.)
type Value[T Scalar] struct {
	reg    *Registry
	parent Node
	key    string

	mu    sync.RWMutex
	value T
}

// NewValue creates an observable scalar with the given key and initial
// value and registers it with reg. The initial value is stored silently;
// no notification is sent until the first Set or Notify.
//
// parent is the enclosing Group, or nil for a root. The parent must
// outlive the value; constructing a child whose parent can go away first
// breaks path resolution.
func NewValue[T Scalar](reg *Registry, parent Node, key string, initial T) *Value[T] {
	v := &Value[T]{reg: reg, parent: parent, key: key, value: initial}
	reg.Register(v)
	return v
}

// Key returns the value's own short name.
func (v *Value[T]) Key() string { return v.key }

// Parent returns the enclosing node, or nil for roots.
func (v *Value[T]) Parent() Node { return v.parent }

// Get returns the current value. Reading never notifies.
func (v *Value[T]) Get() T {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.value
}

// Set stores val and notifies the active listener before returning.
func (v *Value[T]) Set(val T) {
	v.mu.Lock()
	v.value = val
	v.mu.Unlock()
	v.Notify()
}

// Notify dispatches the current value in its canonical string form under
// the value's resolved path.
func (v *Value[T]) Notify() {
	v.reg.Dispatch(ResolvePath(v), formatScalar(v.Get()))
}

// ApplyString parses s as a T and stores the result. Malformed input
// leaves the prior value unchanged and returns an error wrapping
// ErrMalformedValue. ApplyString does not notify: external drivers
// already know the value they pushed.
func (v *Value[T]) ApplyString(s string) error {
	parsed, err := parseScalar[T](s)
	if err != nil {
		return err
	}
	v.mu.Lock()
	v.value = parsed
	v.mu.Unlock()
	return nil
}
