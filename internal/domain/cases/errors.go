package cases

import "errors"

// ErrNotFound indicates the requested application does not exist.
var ErrNotFound = errors.New("application not found")
