package interfaces

import "context"

// IKeyValueStore abstracts the string-keyed persistent map that backs the
// menu and the bill history.
//
// Values are opaque strings; callers always write a whole collection under a
// key, never a delta.
//   - Get reports found=false (and no error) for a missing key
//   - Set replaces the previous value wholesale
//   - Remove on a missing key is not an error

type IKeyValueStore interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key string, value string) error
	Remove(ctx context.Context, key string) error
}
