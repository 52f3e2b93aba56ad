package ports

import "context"

// Port: a cache for serialized planning results keyed by scenario fingerprint.
// A miss is (nil, false, nil), not an error.
type ResultCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, value []byte) error
}
