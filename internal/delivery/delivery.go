// Package delivery holds the entry points that drive the usecases: the HTTP API,
// the notification worker and the scheduler.
package delivery

import "context"

// Delivery is a long-running entry point started by the fx app.
type Delivery interface {
	Serve(ctx context.Context) error
}
