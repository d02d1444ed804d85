// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"context"
	"encoding/base64"
	"fmt"
	"hash/fnv"
	"net/url"
	"slices"
	"strings"
	"time"
)

const (
	// RootFolder is the server path of the repository root.
	RootFolder = "$/"
	// PathSeparator separates segments of a server path.
	PathSeparator = "/"
)

// VersionedItem is a changeset-scoped snapshot of one server path.
//
// Identity is the server path alone: Equal, Compare and HashCode ignore every
// other field, so two snapshots of the same path taken at different
// changesets are equal. Callers deduplicate by path across changesets and
// must not read equality as "same content".
type VersionedItem struct {
	ServerItem  string
	ItemType    ItemType
	CheckinDate time.Time
	ChangesetID int
	ItemID      int
	DeletionID  int
	Encoding    int

	// ContentLength and HashValue are only set for ItemTypeFile.
	ContentLength int64
	HashValue     []byte

	// Artifact is the lazily resolved download location. It is shared by
	// copies of the struct.
	Artifact *ArtifactLocation
}

// ResolveArtifactLocation returns the download location of the item. The
// first call may block on a round trip to the repository; later calls return
// the memoized value.
func (i *VersionedItem) ResolveArtifactLocation(ctx context.Context) (*url.URL, error) {
	if i.Artifact == nil {
		return nil, ErrArtifactUnavailable
	}
	return i.Artifact.Resolve(ctx)
}

// ShortName returns the last segment of the server path.
func (i *VersionedItem) ShortName() string {
	if i.ServerItem == RootFolder {
		return RootFolder
	}
	return i.ServerItem[strings.LastIndex(i.ServerItem, PathSeparator)+1:]
}

// Equal reports whether both items name the same server path. Two nil items
// are equal.
func (i *VersionedItem) Equal(other *VersionedItem) bool {
	if i == nil || other == nil {
		return i == other
	}
	return i.ServerItem == other.ServerItem
}

// Compare orders items by ordinal comparison of their server paths. A nil
// item sorts before any other and equal to another nil.
func (i *VersionedItem) Compare(other *VersionedItem) int {
	switch {
	case i == nil && other == nil:
		return 0
	case i == nil:
		return -1
	case other == nil:
		return 1
	}
	return strings.Compare(i.ServerItem, other.ServerItem)
}

// HashCode is derived from the server path only and is consistent with
// Equal.
func (i *VersionedItem) HashCode() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(i.ServerItem))
	return h.Sum64()
}

// Key returns the value to use when keying maps by item identity.
func (i *VersionedItem) Key() string {
	return i.ServerItem
}

// SortVersionedItems sorts items in place by server path, nil entries first.
func SortVersionedItems(items []*VersionedItem) {
	slices.SortFunc(items, func(a, b *VersionedItem) int {
		return a.Compare(b)
	})
}

func (i *VersionedItem) String() string {
	var sb strings.Builder

	sb.WriteString("VersionedItem")
	fmt.Fprintf(&sb, "\n\t ItemId: %d", i.ItemID)
	fmt.Fprintf(&sb, "\n\t CheckinDate: %s", i.CheckinDate.Format("2006-01-02T15:04:05"))
	fmt.Fprintf(&sb, "\n\t ChangesetId: %d", i.ChangesetID)
	fmt.Fprintf(&sb, "\n\t DeletionId: %d", i.DeletionID)
	fmt.Fprintf(&sb, "\n\t ItemType: %s", i.ItemType)
	fmt.Fprintf(&sb, "\n\t ServerItem: %s", i.ServerItem)
	fmt.Fprintf(&sb, "\n\t ContentLength: %d", i.ContentLength)
	sb.WriteString("\n\t Download URL: ")
	if i.Artifact != nil {
		if u := i.Artifact.resolved.Load(); u != nil {
			sb.WriteString(u.String())
		}
	}
	fmt.Fprintf(&sb, "\n\t Hash: %s", base64.StdEncoding.EncodeToString(i.HashValue))

	return sb.String()
}
