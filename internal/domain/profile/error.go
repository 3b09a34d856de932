package profile

import "errors"

var (
	ErrInvalidProfile = errors.New("invalid profile")
	ErrEmptyPatch     = errors.New("nothing to update")
	ErrNotImage       = errors.New("file is not an image")
	ErrImageTooLarge  = errors.New("image is too large")
)
