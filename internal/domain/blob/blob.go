package blob

import "context"

// Store is the blob-storage capability: overwriting put at an exact path.
type Store interface {
	Put(ctx context.Context, path string, data []byte, contentType string) error
}
