package ports

import "errors"

// ErrNotFound is returned by repositories when the requested state was
// never persisted.
var ErrNotFound = errors.New("not found")
