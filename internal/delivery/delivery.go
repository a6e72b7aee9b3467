// Package delivery defines the contract every inbound transport implements.
package delivery

import "context"

// Delivery is a long-running inbound server. Serve blocks until the server
// stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
