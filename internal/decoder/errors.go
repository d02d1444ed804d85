package decoder

import (
	"errors"
	"fmt"
)

var (
	// ErrResolutionFailure is the kind of every error returned by a failed
	// artifact location resolution.
	ErrResolutionFailure = errors.New("artifact resolution failed")

	// ErrNoContent is returned when resolving the artifact of an item that
	// has no content, such as a folder.
	ErrNoContent = errors.New("item has no content")

	// ErrNoDownloadFragment is returned when the repository answers the
	// fallback query with a record that carries no download fragment.
	ErrNoDownloadFragment = errors.New("repository returned no download fragment")

	// ErrNilRepository is returned when an artifact location is needed but
	// the item was decoded without a repository client.
	ErrNilRepository = errors.New("no repository client")
)

// ResolutionError reports a failed artifact location resolution for one item.
// The decoded item itself stays valid.
type ResolutionError struct {
	ItemID      int
	ChangesetID int
	Err         error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("resolve artifact of item %d at changeset %d: %v", e.ItemID, e.ChangesetID, e.Err)
}

// Unwrap exposes ErrResolutionFailure together with the cause.
func (e *ResolutionError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrResolutionFailure}
	}
	return []error{ErrResolutionFailure, e.Err}
}
