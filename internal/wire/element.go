// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package wire models the attribute-bearing XML elements exchanged with the
// version-control server and provides presence-checked, typed access to their
// attributes.
//
// The server schema is loosely typed: most attributes are optional, empty text
// carries no information, and numbers, dates, enums and binary hashes all
// travel as strings. [Reader] turns that into explicit "absent" vs. "value"
// results, and every coercion failure is reported as a [*DecodeError] naming
// the offending attribute and its raw text.
package wire

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"sort"
)

// Element is a single wire record: an XML element name and its raw
// attributes. Child elements and character data are ignored.
type Element struct {
	XMLName xml.Name
	Attrs   []xml.Attr `xml:",any,attr"`
}

// NewElement builds an element from a name and an attribute map. Attributes
// are stored in name order so the result is deterministic.
func NewElement(name string, attrs map[string]string) *Element {
	names := make([]string, 0, len(attrs))
	for n := range attrs {
		names = append(names, n)
	}
	sort.Strings(names)

	el := &Element{XMLName: xml.Name{Local: name}, Attrs: make([]xml.Attr, 0, len(names))}
	for _, n := range names {
		el.Attrs = append(el.Attrs, xml.Attr{Name: xml.Name{Local: n}, Value: attrs[n]})
	}
	return el
}

// ParseElement decodes the first element found in data.
func ParseElement(data []byte) (*Element, error) {
	var el Element
	if err := xml.Unmarshal(data, &el); err != nil {
		return nil, fmt.Errorf("parse wire element: %w", err)
	}
	return &el, nil
}

// ReadElements streams r and returns every element whose local name equals
// name, in document order. Elements of that name may appear at any depth,
// which lets callers pull records straight out of a SOAP response body.
func ReadElements(r io.Reader, name string) ([]*Element, error) {
	dec := xml.NewDecoder(r)

	var out []*Element
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read <%s> elements: %w", name, err)
		}

		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != name {
			continue
		}

		var el Element
		if err = dec.DecodeElement(&el, &start); err != nil {
			return nil, fmt.Errorf("decode <%s> element: %w", name, err)
		}
		out = append(out, &el)
	}
}

// ReadElementsFromBytes is ReadElements over an in-memory document.
func ReadElementsFromBytes(data []byte, name string) ([]*Element, error) {
	return ReadElements(bytes.NewReader(data), name)
}

// Name returns the local name of the element.
func (e *Element) Name() string {
	if e == nil {
		return ""
	}
	return e.XMLName.Local
}

// Attr returns the raw attribute text and whether the attribute exists at
// all. Only unprefixed attributes match, so xsi:type never answers for type.
// Most callers want [Reader.Read], which also treats empty text as absent.
func (e *Element) Attr(name string) (string, bool) {
	if e == nil || name == "xmlns" {
		return "", false
	}
	for _, a := range e.Attrs {
		if a.Name.Space != "" {
			continue
		}
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}
