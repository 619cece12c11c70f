package storage

import "errors"

// ErrInvalidWorldData wraps every problem found while loading a world
// description. The wrapped error lists all violations, not just the first.
var ErrInvalidWorldData = errors.New("invalid world data")
