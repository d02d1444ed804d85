package models

import "errors"

var (
	// ErrUnknownEnumValue is returned by the Parse* functions for text that
	// names no known value.
	ErrUnknownEnumValue = errors.New("unknown enum value")

	// ErrArtifactUnavailable is returned when an item carries no artifact
	// location source at all.
	ErrArtifactUnavailable = errors.New("artifact location unavailable")
)
