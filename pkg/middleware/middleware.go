package middleware

import "github.com/fieldwatch-dev/fieldwatch/pkg/observe"

// Middleware wraps a Listener with additional behavior around each
// notification.
type Middleware func(observe.Listener) observe.Listener

// Chain wraps l with the given middlewares. The first middleware is the
// outermost: Chain(l, a, b) dispatches a -> b -> l.
func Chain(l observe.Listener, mws ...Middleware) observe.Listener {
	for i := len(mws) - 1; i >= 0; i-- {
		l = mws[i](l)
	}
	return l
}
