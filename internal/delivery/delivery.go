// Package delivery defines the contract every transport server implements.
package delivery

import "context"

// Delivery is a long-running server collected into the fx "deliveries" group
// and started by the application entry point.
type Delivery interface {
	Serve(ctx context.Context) error
}
