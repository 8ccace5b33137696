package db

import "errors"

// ErrNotFound reports that a row targeted by id does not exist. Handlers
// map it to a 404.
var ErrNotFound = errors.New("not found")
