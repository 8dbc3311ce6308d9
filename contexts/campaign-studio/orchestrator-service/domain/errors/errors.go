package errors

import (
	"errors"
	"fmt"
)

var (
	ErrUserIdentityRequired = errors.New("user identity is required")
	ErrInsufficientCredits  = errors.New("insufficient credits")
	ErrEmptyInput           = errors.New("campaign input text is required")
	ErrCampaignNotFound     = errors.New("campaign not found")
	ErrUpstreamService      = errors.New("generation service unavailable")
	ErrMalformedStageOutput = errors.New("stage returned malformed output")
	ErrImageSynthesis       = errors.New("image synthesis failed")
	ErrInvalidUploadRequest = errors.New("invalid upload request")
)

// SynthesisParseError is fatal: there is no safe structural default for a
// blueprint, so the raw completion travels with the error for diagnosis.
type SynthesisParseError struct {
	RawCompletion string
	Cause         error
}

func (e *SynthesisParseError) Error() string {
	return fmt.Sprintf("master synthesis returned an unparseable blueprint: %v", e.Cause)
}

func (e *SynthesisParseError) Unwrap() error {
	return ErrMalformedStageOutput
}
