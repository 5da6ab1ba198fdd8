// Package server exposes an observed universe to external tooling over
// HTTP and WebSocket.
//
// The server wraps an observe.Registry and serves:
//
//   - GET  /healthz       liveness probe
//   - GET  /metrics       Prometheus metrics (promhttp)
//   - GET  /api/snapshot  broadcast via NotifyAll and return the latest
//     (path, value) pairs as JSON
//   - POST /api/update    apply {"path":..., "value":...} via UpdateByPath
//   - GET  /live          WebSocket feed of update envelopes; inbound
//     {"path","value"} messages drive UpdateByPath
//
// The server's Hub implements observe.Listener. Wire it into the
// registry's listener chain so the hub sees every notification:
//
//	srv := server.New(reg, nil)
//	reg.SetListener(observe.Fanout(
//	    observe.NewConsoleListener(nil),
//	    srv.Hub(),
//	))
//	srv.Run()
//
// The wiring is explicit on purpose: the registry holds exactly one
// active listener, and composing it stays in the caller's hands.
package server
