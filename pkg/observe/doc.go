// Package observe provides observable value containers for instrumenting
// in-memory data.
//
// Values, Arrays, and Groups behave like ordinary variables while every
// mutation is reported to a pluggable Listener, attributed to a dotted key
// path derived from the node's ancestry. External tooling can drive values
// the other way through the same paths using their canonical string forms.
//
// # Core Types
//
// Value[T] is an observable scalar:
//
//	reg := observe.NewRegistry()
//	i1 := observe.NewValue(reg, nil, "i1", 0)
//	i1.Set(42)       // dispatches ("i1", "42") to the active listener
//	v := i1.Get()    // plain read, no notification
//
// Array[T] is a fixed-size sequence that notifies as a whole:
//
//	a2 := observe.NewArray[uint32](reg, nil, "a2", 4)
//	a2.SetAt(1, 6)   // dispatches ("a2", "[0 6 0 0]")
//
// Group composes named children under a shared path prefix:
//
//	s1 := observe.NewGroup(reg, nil, "s1")
//	d1 := observe.NewValue(reg, s1, "d1", 1.0)
//	d1.Set(5.5)      // dispatches ("s1.d1", "5.5")
//
// # Driving values by path
//
// Registry.UpdateByPath applies a string value to the node whose fully
// resolved path matches:
//
//	found, err := reg.UpdateByPath("s1.d1", "5.5")
//
// Scalars take the canonical text form of their type; arrays take a
// comma-separated element list. Group nodes reject string updates.
//
// # Listeners
//
// The registry holds exactly one active Listener, a console printer by
// default. Swap it at runtime with SetListener; compose several sinks
// with Fanout. Every dispatch is synchronous: Set returns only after the
// listener has been invoked.
//
// # Thread Safety
//
// All exported operations are safe for concurrent use. No lock is held
// while a listener runs, so listeners may read or mutate observed values.
package observe
