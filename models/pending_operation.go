package models

import (
	"fmt"
	"net/url"
	"strings"
)

// Wire defaults of GetOperation attributes that are not zero values.
const (
	DefaultEncoding = -2
	DefaultIsLatest = true
)

// PendingOperation is one server-computed instruction for bringing a local
// working copy in line with server state. It is built once by a decoder and
// not modified afterwards.
type PendingOperation struct {
	ChangeType ChangeType
	DeletionID int
	ItemID     int
	ItemType   ItemType

	// Local paths are platform-native; "" means the attribute was absent.
	SourceLocalItem string
	TargetLocalItem string

	// Server paths are kept verbatim; "" means the attribute was absent.
	SourceServerItem string
	TargetServerItem string

	VersionLocal  int
	VersionServer int

	// ArtifactURI is nil unless the record carried a download fragment.
	ArtifactURI *url.URL

	LockLevel LockLevel

	Encoding        int
	PendingChangeID int
	IsLatest        bool
	HasConflict     bool
}

func (o *PendingOperation) String() string {
	var sb strings.Builder

	sb.WriteString("PendingOperation")
	fmt.Fprintf(&sb, "\n\t type: %s", o.ItemType)
	fmt.Fprintf(&sb, "\n\t itemid: %d", o.ItemID)
	fmt.Fprintf(&sb, "\n\t slocal: %s", o.SourceLocalItem)
	fmt.Fprintf(&sb, "\n\t tlocal: %s", o.TargetLocalItem)
	fmt.Fprintf(&sb, "\n\t sitem: %s", o.SourceServerItem)
	fmt.Fprintf(&sb, "\n\t titem: %s", o.TargetServerItem)
	fmt.Fprintf(&sb, "\n\t sver: %d", o.VersionServer)
	fmt.Fprintf(&sb, "\n\t lver: %d", o.VersionLocal)
	fmt.Fprintf(&sb, "\n\t did: %d", o.DeletionID)
	sb.WriteString("\n\t ArtifactUri: ")
	if o.ArtifactURI != nil {
		sb.WriteString(o.ArtifactURI.String())
	}
	fmt.Fprintf(&sb, "\n\t ChangeType: %s", o.ChangeType)
	fmt.Fprintf(&sb, "\n\t LockLevel: %s", o.LockLevel)

	return sb.String()
}
