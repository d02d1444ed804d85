package models

import (
	"fmt"
	"strings"
)

// LockLevel is the lock a pending operation holds on its item.
type LockLevel int

const (
	LockLevelNone      LockLevel = 0
	LockLevelCheckin   LockLevel = 1
	LockLevelCheckOut  LockLevel = 2
	LockLevelUnchanged LockLevel = 3
)

var lockLevelNames = map[LockLevel]string{
	LockLevelNone:      "None",
	LockLevelCheckin:   "Checkin",
	LockLevelCheckOut:  "CheckOut",
	LockLevelUnchanged: "Unchanged",
}

func (l LockLevel) String() string {
	if name, ok := lockLevelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("LockLevel(%d)", int(l))
}

// ParseLockLevel parses a wire lock level, ignoring case.
func ParseLockLevel(s string) (LockLevel, error) {
	token := strings.TrimSpace(s)
	for l, name := range lockLevelNames {
		if strings.EqualFold(name, token) {
			return l, nil
		}
	}
	return LockLevelNone, fmt.Errorf("%w: lock level %q", ErrUnknownEnumValue, s)
}
