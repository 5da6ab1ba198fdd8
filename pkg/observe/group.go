package observe

// Group is an observable composite: a fixed set of named children
// (Values, Arrays, nested Groups) sharing the group's path as a prefix.
// A Group holds no value of its own; it exists so its children resolve to
// nested paths like "s1.d1".
//
// Construct the Group first, then construct each child with the Group as
// its parent. The Group must outlive its children.
type Group struct {
	parent Node
	key    string
}

// NewGroup creates a group node with the given key and registers it
// with reg.
func NewGroup(reg *Registry, parent Node, key string) *Group {
	g := &Group{parent: parent, key: key}
	reg.Register(g)
	return g
}

// Key returns the group's own short name.
func (g *Group) Key() string { return g.key }

// Parent returns the enclosing node, or nil for roots.
func (g *Group) Parent() Node { return g.parent }

// Notify is a no-op. Each child is independently observable and notifies
// itself, so there is nothing to emit at the group level.
func (g *Group) Notify() {}

// ApplyString always returns ErrUnsupportedOperation. No structured
// format for group values is defined; address each child under its own
// path instead.
func (g *Group) ApplyString(string) error {
	return ErrUnsupportedOperation
}
