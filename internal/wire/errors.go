// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package wire

import (
	"errors"
	"fmt"
)

// Decode error kinds. Every *DecodeError unwraps to exactly one of them, so
// callers can classify failures with errors.Is.
var (
	// ErrSchemaViolation indicates that a required attribute is missing. The
	// whole record must be rejected.
	ErrSchemaViolation = errors.New("schema violation")

	// ErrFormat indicates that an attribute is present but its text cannot be
	// coerced to the declared type.
	ErrFormat = errors.New("attribute format error")

	// ErrNilElement is returned when a decoder is handed no element at all.
	ErrNilElement = errors.New("nil wire element")
)

// DecodeError describes a single attribute that could not be decoded. It
// carries the element and attribute names together with the raw value so the
// failure can be diagnosed from logs alone.
type DecodeError struct {
	Element   string
	Attribute string
	Value     string
	Kind      error
	Err       error
}

func (e *DecodeError) Error() string {
	if e.Kind == ErrSchemaViolation {
		return fmt.Sprintf("decode <%s>: required attribute %q is missing", e.Element, e.Attribute)
	}
	if e.Err != nil {
		return fmt.Sprintf("decode <%s>: attribute %q has invalid value %q: %v", e.Element, e.Attribute, e.Value, e.Err)
	}
	return fmt.Sprintf("decode <%s>: attribute %q has invalid value %q", e.Element, e.Attribute, e.Value)
}

// Unwrap exposes both the error kind and the underlying coercion error.
func (e *DecodeError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

func missingAttribute(element, attribute string) error {
	return &DecodeError{Element: element, Attribute: attribute, Kind: ErrSchemaViolation}
}

func invalidAttribute(element, attribute, value string, err error) error {
	return &DecodeError{Element: element, Attribute: attribute, Value: value, Kind: ErrFormat, Err: err}
}
