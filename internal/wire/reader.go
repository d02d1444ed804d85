// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package wire

import (
	"encoding/base64"
	"errors"
	"strconv"
	"strings"
	"time"
)

// dateLayouts are tried in order. The server emits RFC 3339 timestamps with a
// fractional part, but schema defaults such as "0001-01-01T00:00:00" carry no
// zone and are read as UTC.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02",
}

var errUnparsableDate = errors.New("unrecognised date layout")

// Reader gives presence-checked, typed access to the attributes of one
// element. The zero value and a Reader over a nil element report every
// attribute as absent.
//
// Absent and empty-string attributes are the same thing: "not provided". None
// of the typed accessors attempt coercion on an absent attribute, so the
// caller's default stands.
type Reader struct {
	el *Element
}

// NewReader returns a Reader over el.
func NewReader(el *Element) Reader {
	return Reader{el: el}
}

// Element returns the local name of the underlying element, used in errors.
func (r Reader) Element() string {
	return r.el.Name()
}

// Read returns the attribute text and true, or "" and false when the
// attribute is missing or empty.
func (r Reader) Read(name string) (string, bool) {
	v, ok := r.el.Attr(name)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// RequireString returns the attribute text or a schema violation.
func (r Reader) RequireString(name string) (string, error) {
	v, ok := r.Read(name)
	if !ok {
		return "", missingAttribute(r.Element(), name)
	}
	return v, nil
}

// Int reads a 32-bit integer attribute.
func (r Reader) Int(name string) (int, bool, error) {
	v, ok := r.Read(name)
	if !ok {
		return 0, false, nil
	}
	n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 32)
	if err != nil {
		return 0, true, invalidAttribute(r.Element(), name, v, err)
	}
	return int(n), true, nil
}

// IntOr reads a 32-bit integer attribute, returning def when it is absent.
func (r Reader) IntOr(name string, def int) (int, error) {
	n, ok, err := r.Int(name)
	if err != nil {
		return 0, err
	}
	if !ok {
		return def, nil
	}
	return n, nil
}

// RequireInt reads a mandatory 32-bit integer attribute.
func (r Reader) RequireInt(name string) (int, error) {
	n, ok, err := r.Int(name)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, missingAttribute(r.Element(), name)
	}
	return n, nil
}

// Int64 reads a 64-bit integer attribute.
func (r Reader) Int64(name string) (int64, bool, error) {
	v, ok := r.Read(name)
	if !ok {
		return 0, false, nil
	}
	n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	if err != nil {
		return 0, true, invalidAttribute(r.Element(), name, v, err)
	}
	return n, true, nil
}

// RequireInt64 reads a mandatory 64-bit integer attribute.
func (r Reader) RequireInt64(name string) (int64, error) {
	n, ok, err := r.Int64(name)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, missingAttribute(r.Element(), name)
	}
	return n, nil
}

// Bool reads an xs:boolean attribute ("true", "false", "1", "0").
func (r Reader) Bool(name string) (bool, bool, error) {
	v, ok := r.Read(name)
	if !ok {
		return false, false, nil
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return false, true, invalidAttribute(r.Element(), name, v, err)
	}
	return b, true, nil
}

// BoolOr reads an xs:boolean attribute, returning def when it is absent.
func (r Reader) BoolOr(name string, def bool) (bool, error) {
	b, ok, err := r.Bool(name)
	if err != nil {
		return false, err
	}
	if !ok {
		return def, nil
	}
	return b, nil
}

// Date reads an xs:dateTime attribute.
func (r Reader) Date(name string) (time.Time, bool, error) {
	v, ok := r.Read(name)
	if !ok {
		return time.Time{}, false, nil
	}
	s := strings.TrimSpace(v)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true, nil
		}
	}
	return time.Time{}, true, invalidAttribute(r.Element(), name, v, errUnparsableDate)
}

// RequireDate reads a mandatory xs:dateTime attribute.
func (r Reader) RequireDate(name string) (time.Time, error) {
	t, ok, err := r.Date(name)
	if err != nil {
		return time.Time{}, err
	}
	if !ok {
		return time.Time{}, missingAttribute(r.Element(), name)
	}
	return t, nil
}

// Base64 reads an xs:base64Binary attribute.
func (r Reader) Base64(name string) ([]byte, bool, error) {
	v, ok := r.Read(name)
	if !ok {
		return nil, false, nil
	}
	b, err := base64.StdEncoding.DecodeString(strings.TrimSpace(v))
	if err != nil {
		return nil, true, invalidAttribute(r.Element(), name, v, err)
	}
	return b, true, nil
}

// ReadEnum reads an enum-coded attribute through parse. A parse failure is
// reported as a format error on the attribute.
func ReadEnum[T any](r Reader, name string, parse func(string) (T, error)) (T, bool, error) {
	var zero T
	v, ok := r.Read(name)
	if !ok {
		return zero, false, nil
	}
	val, err := parse(v)
	if err != nil {
		return zero, true, invalidAttribute(r.Element(), name, v, err)
	}
	return val, true, nil
}

// EnumOr reads an enum-coded attribute, returning def when it is absent.
func EnumOr[T any](r Reader, name string, def T, parse func(string) (T, error)) (T, error) {
	val, ok, err := ReadEnum(r, name, parse)
	if err != nil {
		var zero T
		return zero, err
	}
	if !ok {
		return def, nil
	}
	return val, nil
}
