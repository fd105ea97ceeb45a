// Package delivery defines the contract every transport implementation
// (HTTP server, workers) exposes to the application runner.
package delivery

import "context"

// Delivery is a long-running transport. Serve blocks until the transport
// stops; shutdown is driven by the fx lifecycle, not by cancelling ctx.
type Delivery interface {
	Serve(ctx context.Context) error
}
