// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package decoder

import (
	"context"
	"net/url"

	"github.com/lilducky98/monodevelop-tfs-addin/internal/adapter"
	"github.com/lilducky98/monodevelop-tfs-addin/internal/logger"
	"github.com/lilducky98/monodevelop-tfs-addin/internal/wire"
	"github.com/lilducky98/monodevelop-tfs-addin/models"
)

// VersionedItemDecoder turns <Item> records into [models.VersionedItem]
// values and wires each item's artifact location to the repository client it
// was decoded against.
type VersionedItemDecoder struct {
	logger *logger.Logger
}

// NewVersionedItemDecoder returns a VersionedItemDecoder that logs fallback
// fetches to logger.
func NewVersionedItemDecoder(logger *logger.Logger) *VersionedItemDecoder {
	return &VersionedItemDecoder{logger: logger}
}

// Decode builds a VersionedItem from el.
//
// item, date, cs, itemid and enc are required; did defaults to 0 and type to
// Any. For File items len is required while hash and durl are optional.
//
// When durl is present the artifact location is composed immediately from
// repo.ItemURL() and resolving it never calls repo. Otherwise the first
// ResolveArtifactLocation queries repo.FetchItem once and memoizes the result.
// Folder items have no artifact. repo may be nil, in which case the item is
// decoded but its artifact cannot be resolved.
func (d *VersionedItemDecoder) Decode(repo adapter.RepositoryClient, el *wire.Element) (*models.VersionedItem, error) {
	if el == nil {
		return nil, wire.ErrNilElement
	}
	r := wire.NewReader(el)

	var (
		item models.VersionedItem
		err  error
	)

	if item.ServerItem, err = r.RequireString(attrServerItem); err != nil {
		return nil, err
	}
	if item.CheckinDate, err = r.RequireDate(attrCheckinDate); err != nil {
		return nil, err
	}
	if item.ChangesetID, err = r.RequireInt(attrChangeset); err != nil {
		return nil, err
	}
	if item.ItemID, err = r.RequireInt(attrItemID); err != nil {
		return nil, err
	}
	if item.Encoding, err = r.RequireInt(attrEncoding); err != nil {
		return nil, err
	}
	if item.DeletionID, err = r.IntOr(attrDeletionID, 0); err != nil {
		return nil, err
	}
	if item.ItemType, err = wire.EnumOr(r, attrType, models.ItemTypeAny, models.ParseItemType); err != nil {
		return nil, err
	}

	var fragment string
	if item.ItemType == models.ItemTypeFile {
		if item.ContentLength, err = r.RequireInt64(attrContentLength); err != nil {
			return nil, err
		}
		if item.HashValue, _, err = r.Base64(attrHash); err != nil {
			return nil, err
		}
		fragment, _ = r.Read(attrDownloadURL)
	}

	switch {
	case item.ItemType == models.ItemTypeFolder:
		item.Artifact = models.DeferredArtifactLocation(d.failing(item, ErrNoContent))
	case repo == nil:
		item.Artifact = models.DeferredArtifactLocation(d.failing(item, ErrNilRepository))
	case fragment != "":
		u, err := composeArtifactURL(r, repo.ItemURL(), fragment)
		if err != nil {
			return nil, err
		}
		item.Artifact = models.ResolvedArtifactLocation(u)
	default:
		item.Artifact = models.DeferredArtifactLocation(d.fetcher(repo, item.ItemID, item.ChangesetID))
	}

	return &item, nil
}

// fetcher queries the item again with download information and composes its
// location from the returned fragment.
func (d *VersionedItemDecoder) fetcher(repo adapter.RepositoryClient, itemID, changesetID int) models.ArtifactFetcher {
	return func(ctx context.Context) (*url.URL, error) {
		d.logger.Debug().
			Int("item_id", itemID).
			Int("changeset", changesetID).
			Msg("download fragment not captured, querying repository")

		el, err := repo.FetchItem(ctx, itemID, changesetID, true)
		if err != nil {
			return nil, &ResolutionError{ItemID: itemID, ChangesetID: changesetID, Err: err}
		}

		r := wire.NewReader(el)
		fragment, ok := r.Read(attrDownloadURL)
		if !ok {
			return nil, &ResolutionError{ItemID: itemID, ChangesetID: changesetID, Err: ErrNoDownloadFragment}
		}

		u, err := composeArtifactURL(r, repo.ItemURL(), fragment)
		if err != nil {
			return nil, &ResolutionError{ItemID: itemID, ChangesetID: changesetID, Err: err}
		}
		return u, nil
	}
}

func (d *VersionedItemDecoder) failing(item models.VersionedItem, cause error) models.ArtifactFetcher {
	itemID, changesetID := item.ItemID, item.ChangesetID
	return func(context.Context) (*url.URL, error) {
		return nil, &ResolutionError{ItemID: itemID, ChangesetID: changesetID, Err: cause}
	}
}

// composeArtifactURL joins base and fragment, reporting a malformed result as
// a format error on the durl attribute.
func composeArtifactURL(r wire.Reader, base, fragment string) (*url.URL, error) {
	u, err := models.ComposeArtifactURL(base, fragment)
	if err != nil {
		return nil, &wire.DecodeError{
			Element:   r.Element(),
			Attribute: attrDownloadURL,
			Value:     fragment,
			Kind:      wire.ErrFormat,
			Err:       err,
		}
	}
	return u, nil
}
