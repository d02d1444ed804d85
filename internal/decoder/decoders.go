// Package decoder converts wire records from the version-control server into
// typed models.
//
// [PendingOperationDecoder] handles <GetOperation> update instructions and
// [VersionedItemDecoder] handles <Item> snapshots. Both are synchronous and
// safe for concurrent use. Decode failures are *wire.DecodeError values;
// artifact resolution failures are *ResolutionError values.
package decoder

import "github.com/lilducky98/monodevelop-tfs-addin/internal/logger"

// Decoders groups the decoders used by the tool.
type Decoders struct {
	PendingOperations *PendingOperationDecoder
	VersionedItems    *VersionedItemDecoder
}

// NewDecoders builds all decoders sharing logger.
func NewDecoders(logger *logger.Logger) *Decoders {
	return &Decoders{
		PendingOperations: NewPendingOperationDecoder(),
		VersionedItems:    NewVersionedItemDecoder(logger),
	}
}
