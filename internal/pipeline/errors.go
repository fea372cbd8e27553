package pipeline

import "errors"

var (
	ErrMissingTranscript = errors.New("transcript is required")
	ErrMissingBaseURL    = errors.New("base_url is required")
	ErrGenerationFailed  = errors.New("note generation failed")
)
