package observe

import (
	"slices"
	"strings"
)

// Node is anything that can be registered, resolved to a path, and asked
// to emit or accept notifications. The implementations are the closed set
// Value[T], Array[T], and Group.
type Node interface {
	// Key returns the node's short name, unique within its parent's
	// namespace and immutable after construction.
	Key() string

	// Parent returns the enclosing node, or nil for roots. The reference
	// is non-owning and never changes after construction.
	Parent() Node

	// Notify serializes the node's current value and dispatches it to the
	// active listener under the node's resolved path. Groups no-op here;
	// their children notify themselves.
	Notify()

	// ApplyString parses s with the inverse of the node's serialization
	// rule and stores the result. Malformed input leaves the prior value
	// unchanged and reports ErrMalformedValue. Groups report
	// ErrUnsupportedOperation. ApplyString never notifies.
	ApplyString(s string) error
}

// ResolvePath walks n's parent chain and joins the keys with "." from the
// outermost ancestor down to n itself. A parentless node yields its own key.
func ResolvePath(n Node) string {
	if n == nil {
		return ""
	}
	if n.Parent() == nil {
		return n.Key()
	}
	keys := []string{n.Key()}
	for p := n.Parent(); p != nil; p = p.Parent() {
		keys = append(keys, p.Key())
	}
	slices.Reverse(keys)
	return strings.Join(keys, ".")
}
