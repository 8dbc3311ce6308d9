package errors

import "errors"

var (
	ErrUserIdentityRequired = errors.New("user identity is required")
	ErrTemplateNotFound     = errors.New("template not found")
	ErrInvalidTemplate      = errors.New("template title is required")
	ErrInvalidUploadRequest = errors.New("invalid upload request")
	ErrAlreadyConfirmed     = errors.New("template upload already confirmed")
	ErrAssetMissing         = errors.New("template asset has not been uploaded")
)
