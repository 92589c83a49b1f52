// Package delivery holds the inbound transports of the service.
package delivery

import "context"

// Delivery is a transport that serves until it is stopped.
type Delivery interface {
	Serve(ctx context.Context) error
}
