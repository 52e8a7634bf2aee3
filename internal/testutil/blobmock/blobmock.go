// Package blobmock is a function-backed mock of blob.Store.
package blobmock

import "context"

type Store struct {
	PutFn func(ctx context.Context, path string, data []byte, contentType string) error
}

func (m *Store) Put(ctx context.Context, path string, data []byte, contentType string) error {
	if m.PutFn != nil {
		return m.PutFn(ctx, path, data, contentType)
	}
	return nil
}
