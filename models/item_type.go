package models

import (
	"fmt"
	"strings"
)

// ItemType is the kind of a versioned path.
type ItemType int

const (
	// ItemTypeAny means the kind is unspecified; it is the wire default.
	ItemTypeAny ItemType = 0
	// ItemTypeFolder is a directory.
	ItemTypeFolder ItemType = 1
	// ItemTypeFile is a regular file with content.
	ItemTypeFile ItemType = 2
)

var itemTypeNames = map[ItemType]string{
	ItemTypeAny:    "Any",
	ItemTypeFolder: "Folder",
	ItemTypeFile:   "File",
}

func (t ItemType) String() string {
	if name, ok := itemTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("ItemType(%d)", int(t))
}

// ParseItemType parses a wire item kind, ignoring case.
func ParseItemType(s string) (ItemType, error) {
	token := strings.TrimSpace(s)
	for t, name := range itemTypeNames {
		if strings.EqualFold(name, token) {
			return t, nil
		}
	}
	return ItemTypeAny, fmt.Errorf("%w: item type %q", ErrUnknownEnumValue, s)
}
