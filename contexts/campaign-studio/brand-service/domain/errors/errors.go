package errors

import "errors"

var (
	ErrUserIdentityRequired = errors.New("user identity is required")
	ErrBrandNotFound        = errors.New("brand profile not found")
	ErrInvalidBrandName     = errors.New("brand name is required")
	ErrInvalidPrimaryColor  = errors.New("primary color must be a hex value")
)
