package recipe

import "errors"

var (
	ErrNotFound    = errors.New("recipe not found")
	ErrInvalidType = errors.New("invalid recipe type")
	ErrInvalidID   = errors.New("invalid recipe id")
	ErrInvalidRef  = errors.New("invalid recipe key")
)
