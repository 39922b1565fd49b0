package repository

import "errors"

var (
	ErrBuilt           = errors.New("repository has already been built")
	ErrNilEntry        = errors.New("mapping entry cannot be nil")
	ErrNegativeOrdinal = errors.New("type parameter ordinal cannot be negative")
	ErrDuplicateKey    = errors.New("parameter is mapped more than once")
)
