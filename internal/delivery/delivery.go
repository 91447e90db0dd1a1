// Package delivery defines the contract every delivery mechanism implements.
package delivery

import "context"

// Delivery is a user-facing surface of the application. Serve blocks until
// the surface shuts down or the context is cancelled.
type Delivery interface {
	Serve(ctx context.Context) error
}
