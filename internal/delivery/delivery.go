// Package delivery holds the transports that expose the use cases.
package delivery

import "context"

// Delivery is a long-running transport started by main and stopped through fx lifecycle hooks.
type Delivery interface {
	Serve(ctx context.Context) error
}
