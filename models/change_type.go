package models

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ChangeType is a bit-flag set describing what a pending operation does to
// its item. Several kinds may be combined, e.g. ChangeTypeAdd|ChangeTypeEdit.
type ChangeType int

const (
	ChangeTypeNone         ChangeType = 1
	ChangeTypeAdd          ChangeType = 2
	ChangeTypeEdit         ChangeType = 4
	ChangeTypeEncoding     ChangeType = 8
	ChangeTypeRename       ChangeType = 16
	ChangeTypeDelete       ChangeType = 32
	ChangeTypeUndelete     ChangeType = 64
	ChangeTypeBranch       ChangeType = 128
	ChangeTypeMerge        ChangeType = 256
	ChangeTypeLock         ChangeType = 512
	ChangeTypeRollback     ChangeType = 1024
	ChangeTypeSourceRename ChangeType = 2048
	ChangeTypeProperty     ChangeType = 8192
)

// changeTypeFlags lists every named flag in wire order. String relies on the
// order to produce stable text.
var changeTypeFlags = []struct {
	flag ChangeType
	name string
}{
	{ChangeTypeNone, "None"},
	{ChangeTypeAdd, "Add"},
	{ChangeTypeEdit, "Edit"},
	{ChangeTypeEncoding, "Encoding"},
	{ChangeTypeRename, "Rename"},
	{ChangeTypeDelete, "Delete"},
	{ChangeTypeUndelete, "Undelete"},
	{ChangeTypeBranch, "Branch"},
	{ChangeTypeMerge, "Merge"},
	{ChangeTypeLock, "Lock"},
	{ChangeTypeRollback, "Rollback"},
	{ChangeTypeSourceRename, "SourceRename"},
	{ChangeTypeProperty, "Property"},
}

// Has reports whether every bit of flag is set in c.
func (c ChangeType) Has(flag ChangeType) bool {
	return c&flag == flag
}

// String renders the set the way the server writes it: flag names separated
// by single spaces. The output parses back to the same value.
func (c ChangeType) String() string {
	if c == 0 {
		return "0"
	}

	names := make([]string, 0, 2)
	rest := c
	for _, f := range changeTypeFlags {
		if c&f.flag != 0 {
			names = append(names, f.name)
			rest &^= f.flag
		}
	}
	if rest != 0 {
		names = append(names, strconv.Itoa(int(rest)))
	}
	return strings.Join(names, " ")
}

// ParseChangeType parses multi-value change-kind text such as "Add Edit" or
// "add,edit". Each token is matched case-insensitively; an unknown or empty
// token rejects the whole value.
func ParseChangeType(s string) (ChangeType, error) {
	tokens := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || unicode.IsSpace(r) })
	if len(tokens) == 0 {
		return 0, fmt.Errorf("%w: empty change type", ErrUnknownEnumValue)
	}

	var c ChangeType
	for _, token := range tokens {
		flag, ok := lookupChangeType(token)
		if !ok {
			return 0, fmt.Errorf("%w: change type %q in %q", ErrUnknownEnumValue, token, s)
		}
		c |= flag
	}
	return c, nil
}

func lookupChangeType(token string) (ChangeType, bool) {
	for _, f := range changeTypeFlags {
		if strings.EqualFold(f.name, token) {
			return f.flag, true
		}
	}
	return 0, false
}
