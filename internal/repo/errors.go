package repo

import "errors"

// ErrNotFound is returned by repositories when the requested document does
// not exist. Implementations wrap it so callers can test with errors.Is.
var ErrNotFound = errors.New("not found")
