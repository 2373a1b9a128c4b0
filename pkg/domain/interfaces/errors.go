package interfaces

import "github.com/m-mizutani/goerr/v2"

// ErrNotFound is returned by repository implementations when a
// document does not exist. Store failures are returned as ordinary
// errors and must not match this sentinel.
var ErrNotFound = goerr.New("record not found")
