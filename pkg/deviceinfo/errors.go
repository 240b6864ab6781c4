package deviceinfo

import "errors"

var (
	// ErrMissingOSVersion is reported when an iPad or iPhone platform block carries no version segment.
	ErrMissingOSVersion = errors.New("platform token has no os version")

	// ErrMalformedCandidate is reported when a browser candidate cannot be split into name and version.
	ErrMalformedCandidate = errors.New("malformed browser candidate")

	// ErrUnknownValue is returned by the Parse* helpers for strings outside an enumeration.
	ErrUnknownValue = errors.New("unknown enum value")
)
