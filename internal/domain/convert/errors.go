package convert

import "errors"

var (
	// ErrValidation reports a submission missing a required field.
	ErrValidation = errors.New("m3u8_url and filename are required")

	// ErrEngineUnavailable reports that the startup preflight found no
	// usable ffmpeg binary.
	ErrEngineUnavailable = errors.New("ffmpeg is not available on this server")

	// ErrEmptyOutput reports an engine run that claimed success but
	// left a missing or zero-byte output file.
	ErrEmptyOutput = errors.New("conversion output is missing or empty")

	// ErrInvalidName rejects artifact names carrying path separators
	// or parent-directory tokens.
	ErrInvalidName = errors.New("invalid file name")

	// ErrNotFound reports an artifact that does not exist.
	ErrNotFound = errors.New("file not found")
)
