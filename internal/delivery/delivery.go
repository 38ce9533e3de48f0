// Package delivery defines how the client is exposed to its UI shell.
package delivery

import "context"

// Delivery is a server started by the application after the graph is built.
type Delivery interface {
	Serve(ctx context.Context) error
}
