// Package metadata is a small key/value repository for durable client-side
// state. The credential token lives here under a well-known key and survives
// restarts, which is what makes session restore possible.
package metadata

import "context"

type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
