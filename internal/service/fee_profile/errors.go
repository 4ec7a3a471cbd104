package fee_profile

import "errors"

var (
	ErrInvalidProfileName = errors.New("invalid profile name")
	ErrInvalidConstants   = errors.New("invalid fee constants")

	ErrProfileNotFound = errors.New("fee profile not found")
	ErrConflict        = errors.New("resource already exists")
)
