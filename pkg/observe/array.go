package observe

import (
	"fmt"
	"strings"
	"sync"
)

// Array is an observable fixed-size sequence of scalars. Elements have no
// independent paths: any element write emits a single notification under
// the array's own path carrying a serialized snapshot of all elements,
// formatted as a bracketed space-separated list such as "[0 6 0 0]".
type Array[T Scalar] struct {
	reg    *Registry
	parent Node
	key    string

	mu    sync.RWMutex
	elems []T
}

// NewArray creates an observable array of size zero-valued elements and
// registers it with reg. The size is fixed for the array's lifetime.
func NewArray[T Scalar](reg *Registry, parent Node, key string, size int) *Array[T] {
	if size < 0 {
		size = 0
	}
	a := &Array[T]{reg: reg, parent: parent, key: key, elems: make([]T, size)}
	reg.Register(a)
	return a
}

// Key returns the array's own short name.
func (a *Array[T]) Key() string { return a.key }

// Parent returns the enclosing node, or nil for roots.
func (a *Array[T]) Parent() Node { return a.parent }

// Len returns the array's fixed size.
func (a *Array[T]) Len() int {
	return len(a.elems)
}

// At returns the element at index i. Reading never notifies.
func (a *Array[T]) At(i int) (T, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if i < 0 || i >= len(a.elems) {
		var zero T
		return zero, fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, i, len(a.elems))
	}
	return a.elems[i], nil
}

// SetAt stores val at index i and notifies with a snapshot of the whole
// array. Out-of-range indexes fail with ErrIndexOutOfRange and emit
// nothing.
func (a *Array[T]) SetAt(i int, val T) error {
	a.mu.Lock()
	if i < 0 || i >= len(a.elems) {
		a.mu.Unlock()
		return fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, i, len(a.elems))
	}
	a.elems[i] = val
	a.mu.Unlock()
	a.Notify()
	return nil
}

// Snapshot returns a copy of all elements.
func (a *Array[T]) Snapshot() []T {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make([]T, len(a.elems))
	copy(out, a.elems)
	return out
}

// Notify dispatches the serialized snapshot of all elements under the
// array's resolved path.
func (a *Array[T]) Notify() {
	elems := a.Snapshot()
	parts := make([]string, len(elems))
	for i, e := range elems {
		parts[i] = formatScalar(e)
	}
	a.reg.Dispatch(ResolvePath(a), "["+strings.Join(parts, " ")+"]")
}

// ApplyString splits s on "," and applies up to Len trimmed tokens
// left-to-right. Extra tokens are ignored; fewer tokens leave the
// remaining elements untouched. Application is not transactional: a
// malformed token is skipped (its element keeps the prior value) while
// later tokens still apply, and the first parse error is returned.
// ApplyString does not notify.
func (a *Array[T]) ApplyString(s string) error {
	tokens := strings.Split(s, ",")
	var firstErr error
	a.mu.Lock()
	for i, tok := range tokens {
		if i >= len(a.elems) {
			break
		}
		parsed, err := parseScalar[T](strings.TrimSpace(tok))
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		a.elems[i] = parsed
	}
	a.mu.Unlock()
	return firstErr
}
