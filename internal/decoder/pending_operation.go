// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package decoder

import (
	"github.com/lilducky98/monodevelop-tfs-addin/internal/utils"
	"github.com/lilducky98/monodevelop-tfs-addin/internal/wire"
	"github.com/lilducky98/monodevelop-tfs-addin/models"
)

// PendingOperationDecoder turns <GetOperation> records into
// [models.PendingOperation] values. Every attribute is optional; an absent or
// empty attribute leaves the field at its wire default.
type PendingOperationDecoder struct{}

// NewPendingOperationDecoder returns a PendingOperationDecoder.
func NewPendingOperationDecoder() *PendingOperationDecoder {
	return &PendingOperationDecoder{}
}

// Decode builds a PendingOperation from el. A download fragment, when
// present, is composed into ArtifactURI as itemBaseURL + "?" + fragment.
//
// The first malformed attribute aborts decoding with a *wire.DecodeError and
// no record is returned.
func (d *PendingOperationDecoder) Decode(itemBaseURL string, el *wire.Element) (*models.PendingOperation, error) {
	if el == nil {
		return nil, wire.ErrNilElement
	}
	r := wire.NewReader(el)

	op := models.PendingOperation{
		ChangeType: models.ChangeTypeNone,
		ItemType:   models.ItemTypeAny,
		LockLevel:  models.LockLevelNone,
		Encoding:   models.DefaultEncoding,
		IsLatest:   models.DefaultIsLatest,
	}

	var err error
	if op.ItemType, err = wire.EnumOr(r, attrType, op.ItemType, models.ParseItemType); err != nil {
		return nil, err
	}
	if op.ChangeType, err = wire.EnumOr(r, attrChangeType, op.ChangeType, models.ParseChangeType); err != nil {
		return nil, err
	}
	if op.LockLevel, err = wire.EnumOr(r, attrLockLevel, op.LockLevel, models.ParseLockLevel); err != nil {
		return nil, err
	}

	ints := []struct {
		name string
		dst  *int
	}{
		{attrItemID, &op.ItemID},
		{attrVersionServer, &op.VersionServer},
		{attrVersionLocal, &op.VersionLocal},
		{attrDeletionID, &op.DeletionID},
		{attrEncoding, &op.Encoding},
		{attrPendingChangeID, &op.PendingChangeID},
	}
	for _, f := range ints {
		if *f.dst, err = r.IntOr(f.name, *f.dst); err != nil {
			return nil, err
		}
	}

	if op.IsLatest, err = r.BoolOr(attrIsLatest, op.IsLatest); err != nil {
		return nil, err
	}
	if op.HasConflict, err = r.BoolOr(attrHasConflict, op.HasConflict); err != nil {
		return nil, err
	}

	if v, ok := r.Read(attrSourceLocal); ok {
		op.SourceLocalItem = utils.ToPlatformPath(v)
	}
	if v, ok := r.Read(attrTargetLocal); ok {
		op.TargetLocalItem = utils.ToPlatformPath(v)
	}
	op.SourceServerItem, _ = r.Read(attrSourceServerItem)
	op.TargetServerItem, _ = r.Read(attrTargetServerItem)

	if fragment, ok := r.Read(attrDownloadURL); ok {
		if op.ArtifactURI, err = composeArtifactURL(r, itemBaseURL, fragment); err != nil {
			return nil, err
		}
	}

	return &op, nil
}
