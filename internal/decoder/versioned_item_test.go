// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package decoder

import (
	"context"
	"encoding/base64"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/lilducky98/monodevelop-tfs-addin/internal/logger"
	"github.com/lilducky98/monodevelop-tfs-addin/internal/mock"
	"github.com/lilducky98/monodevelop-tfs-addin/internal/wire"
	"github.com/lilducky98/monodevelop-tfs-addin/models"
)

var contentHash = []byte{0xde, 0xad, 0xbe, 0xef, 0x01}

// fileItemAttrs returns the attributes of a File item without a download
// fragment.
func fileItemAttrs() map[string]string {
	return map[string]string{
		"item":   "$/a/b.txt",
		"date":   "2020-01-01T00:00:00Z",
		"cs":     "10",
		"itemid": "5",
		"enc":    "65001",
		"type":   "File",
		"len":    "42",
		"hash":   base64.StdEncoding.EncodeToString(contentHash),
	}
}

func itemElement(attrs map[string]string) *wire.Element {
	return wire.NewElement(VersionedItemElement, attrs)
}

func newTestItemDecoder(t *testing.T) (*VersionedItemDecoder, *mock.MockRepositoryClient) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepositoryClient(ctrl)
	repo.EXPECT().ItemURL().Return(itemBaseURL).AnyTimes()
	return NewVersionedItemDecoder(logger.Nop()), repo
}

// ── decode ──────────────────────────────────────────────────────────────────

func TestVersionedItemDecoder_FileItem(t *testing.T) {
	dec, repo := newTestItemDecoder(t)

	item, err := dec.Decode(repo, itemElement(fileItemAttrs()))

	require.NoError(t, err)
	assert.Equal(t, "$/a/b.txt", item.ServerItem)
	assert.Equal(t, time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), item.CheckinDate.UTC())
	assert.Equal(t, 10, item.ChangesetID)
	assert.Equal(t, 5, item.ItemID)
	assert.Equal(t, 65001, item.Encoding)
	assert.Equal(t, models.ItemTypeFile, item.ItemType)
	assert.Equal(t, int64(42), item.ContentLength)
	assert.Equal(t, contentHash, item.HashValue)
	assert.Zero(t, item.DeletionID)
	require.NotNil(t, item.Artifact)
	assert.False(t, item.Artifact.Resolved())
}

func TestVersionedItemDecoder_FolderIgnoresFileAttributes(t *testing.T) {
	dec, repo := newTestItemDecoder(t)

	item, err := dec.Decode(repo, itemElement(map[string]string{
		"item":   "$/a",
		"date":   "2020-01-01T00:00:00Z",
		"cs":     "10",
		"itemid": "4",
		"enc":    "-3",
		"type":   "Folder",
		"did":    "8",
		"len":    "not-a-number",
		"hash":   "!!!",
		"durl":   "sfid=1",
	}))

	require.NoError(t, err)
	assert.Equal(t, models.ItemTypeFolder, item.ItemType)
	assert.Equal(t, 8, item.DeletionID)
	assert.Zero(t, item.ContentLength)
	assert.Nil(t, item.HashValue)
}

func TestVersionedItemDecoder_KindDefaultsToAny(t *testing.T) {
	dec, repo := newTestItemDecoder(t)
	attrs := fileItemAttrs()
	delete(attrs, "type")
	delete(attrs, "len")

	item, err := dec.Decode(repo, itemElement(attrs))

	require.NoError(t, err)
	assert.Equal(t, models.ItemTypeAny, item.ItemType)
	assert.Zero(t, item.ContentLength)
	assert.Nil(t, item.HashValue)
}

func TestVersionedItemDecoder_HashIsOptional(t *testing.T) {
	dec, repo := newTestItemDecoder(t)
	attrs := fileItemAttrs()
	delete(attrs, "hash")

	item, err := dec.Decode(repo, itemElement(attrs))

	require.NoError(t, err)
	assert.Nil(t, item.HashValue)
}

// ── schema violations ───────────────────────────────────────────────────────

func TestVersionedItemDecoder_MissingRequired(t *testing.T) {
	for _, attr := range []string{"item", "date", "cs", "itemid", "enc", "len"} {
		t.Run(attr, func(t *testing.T) {
			dec, repo := newTestItemDecoder(t)
			attrs := fileItemAttrs()
			delete(attrs, attr)

			item, err := dec.Decode(repo, itemElement(attrs))

			assert.Nil(t, item)
			require.ErrorIs(t, err, wire.ErrSchemaViolation)
			var decErr *wire.DecodeError
			require.ErrorAs(t, err, &decErr)
			assert.Equal(t, attr, decErr.Attribute)
			assert.Equal(t, VersionedItemElement, decErr.Element)
		})
	}
}

// TestVersionedItemDecoder_EmptyRequired verifies that an empty required
// attribute counts as missing.
func TestVersionedItemDecoder_EmptyRequired(t *testing.T) {
	dec, repo := newTestItemDecoder(t)
	attrs := fileItemAttrs()
	attrs["item"] = ""

	_, err := dec.Decode(repo, itemElement(attrs))

	assert.ErrorIs(t, err, wire.ErrSchemaViolation)
}

func TestVersionedItemDecoder_FormatErrors(t *testing.T) {
	tests := map[string]string{
		"date":   "yesterday",
		"cs":     "ten",
		"itemid": "5.0",
		"enc":    "utf-8",
		"did":    "none",
		"type":   "Symlink",
		"len":    "big",
		"hash":   "not base64!",
	}

	for attr, value := range tests {
		t.Run(attr, func(t *testing.T) {
			dec, repo := newTestItemDecoder(t)
			attrs := fileItemAttrs()
			attrs[attr] = value

			item, err := dec.Decode(repo, itemElement(attrs))

			assert.Nil(t, item)
			require.ErrorIs(t, err, wire.ErrFormat)
			var decErr *wire.DecodeError
			require.ErrorAs(t, err, &decErr)
			assert.Equal(t, attr, decErr.Attribute)
			assert.Equal(t, value, decErr.Value)
		})
	}
}

func TestVersionedItemDecoder_NilElement(t *testing.T) {
	dec, repo := newTestItemDecoder(t)
	_, err := dec.Decode(repo, nil)
	assert.ErrorIs(t, err, wire.ErrNilElement)
}

// ── artifact resolution ─────────────────────────────────────────────────────

// TestResolve_CapturedFragment verifies that a durl captured at decode time
// resolves without any FetchItem call.
func TestResolve_CapturedFragment(t *testing.T) {
	dec, repo := newTestItemDecoder(t)
	repo.EXPECT().FetchItem(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	attrs := fileItemAttrs()
	attrs["durl"] = "type=rsa&sfid=1001"

	item, err := dec.Decode(repo, itemElement(attrs))
	require.NoError(t, err)
	assert.True(t, item.Artifact.Resolved())

	u, err := item.ResolveArtifactLocation(context.Background())
	require.NoError(t, err)
	assert.Equal(t, itemBaseURL+"?type=rsa&sfid=1001", u.String())
}

// TestResolve_FallbackFetchesOnce verifies that decoding performs no fetch,
// the first read performs exactly one fetch(5, 10) and the second none.
func TestResolve_FallbackFetchesOnce(t *testing.T) {
	dec, repo := newTestItemDecoder(t)
	ctx := context.Background()

	item, err := dec.Decode(repo, itemElement(fileItemAttrs()))
	require.NoError(t, err)
	assert.Equal(t, int64(42), item.ContentLength)

	repo.EXPECT().
		FetchItem(ctx, 5, 10, true).
		Return(wire.NewElement("Item", map[string]string{"durl": "sfid=77"}), nil).
		Times(1)

	first, err := item.ResolveArtifactLocation(ctx)
	require.NoError(t, err)
	second, err := item.ResolveArtifactLocation(ctx)
	require.NoError(t, err)

	assert.Equal(t, itemBaseURL+"?sfid=77", first.String())
	assert.Equal(t, first, second)
	assert.True(t, item.Artifact.Resolved())
}

func TestResolve_ConcurrentFirstAccessFetchesOnce(t *testing.T) {
	dec, repo := newTestItemDecoder(t)

	item, err := dec.Decode(repo, itemElement(fileItemAttrs()))
	require.NoError(t, err)

	repo.EXPECT().
		FetchItem(gomock.Any(), 5, 10, true).
		DoAndReturn(func(context.Context, int, int, bool) (*wire.Element, error) {
			time.Sleep(10 * time.Millisecond)
			return wire.NewElement("Item", map[string]string{"durl": "sfid=77"}), nil
		}).
		Times(1)

	const callers = 16
	results := make([]string, callers)
	var wg sync.WaitGroup
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			u, err := item.ResolveArtifactLocation(context.Background())
			if assert.NoError(t, err) {
				results[i] = u.String()
			}
		}()
	}
	wg.Wait()

	for _, r := range results {
		assert.Equal(t, itemBaseURL+"?sfid=77", r)
	}
}

func TestResolve_FetchFailureIsNotMemoized(t *testing.T) {
	dec, repo := newTestItemDecoder(t)
	ctx := context.Background()
	boom := errors.New("connection reset")

	item, err := dec.Decode(repo, itemElement(fileItemAttrs()))
	require.NoError(t, err)

	gomock.InOrder(
		repo.EXPECT().FetchItem(ctx, 5, 10, true).Return(nil, boom),
		repo.EXPECT().FetchItem(ctx, 5, 10, true).
			Return(wire.NewElement("Item", map[string]string{"durl": "sfid=1"}), nil),
	)

	_, err = item.ResolveArtifactLocation(ctx)
	require.ErrorIs(t, err, ErrResolutionFailure)
	assert.ErrorIs(t, err, boom)

	var resErr *ResolutionError
	require.ErrorAs(t, err, &resErr)
	assert.Equal(t, 5, resErr.ItemID)
	assert.Equal(t, 10, resErr.ChangesetID)

	u, err := item.ResolveArtifactLocation(ctx)
	require.NoError(t, err)
	assert.Equal(t, itemBaseURL+"?sfid=1", u.String())

	// decoded fields are untouched by the failed resolution
	assert.Equal(t, "$/a/b.txt", item.ServerItem)
	assert.Equal(t, int64(42), item.ContentLength)
}

func TestResolve_NoFragmentInResponse(t *testing.T) {
	dec, repo := newTestItemDecoder(t)

	item, err := dec.Decode(repo, itemElement(fileItemAttrs()))
	require.NoError(t, err)

	repo.EXPECT().FetchItem(gomock.Any(), 5, 10, true).
		Return(wire.NewElement("Item", map[string]string{"item": "$/a/b.txt"}), nil)

	_, err = item.ResolveArtifactLocation(context.Background())
	assert.ErrorIs(t, err, ErrResolutionFailure)
	assert.ErrorIs(t, err, ErrNoDownloadFragment)
}

func TestResolve_FolderHasNoContent(t *testing.T) {
	dec, repo := newTestItemDecoder(t)
	repo.EXPECT().FetchItem(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	item, err := dec.Decode(repo, itemElement(map[string]string{
		"item": "$/a", "date": "2020-01-01T00:00:00Z", "cs": "1", "itemid": "2", "enc": "-3", "type": "Folder",
	}))
	require.NoError(t, err)

	_, err = item.ResolveArtifactLocation(context.Background())
	assert.ErrorIs(t, err, ErrResolutionFailure)
	assert.ErrorIs(t, err, ErrNoContent)
}

func TestResolve_NilRepository(t *testing.T) {
	item, err := NewVersionedItemDecoder(logger.Nop()).Decode(nil, itemElement(fileItemAttrs()))
	require.NoError(t, err)

	_, err = item.ResolveArtifactLocation(context.Background())
	assert.ErrorIs(t, err, ErrNilRepository)
}

// ── identity ────────────────────────────────────────────────────────────────

// TestDecodedItems_IdentityIsPath checks that equality ignores everything but
// the server path. This is intentional: callers deduplicate by path.
func TestDecodedItems_IdentityIsPath(t *testing.T) {
	dec, repo := newTestItemDecoder(t)

	a := fileItemAttrs()
	b := fileItemAttrs()
	b["cs"], b["itemid"], b["hash"] = "99", "6", base64.StdEncoding.EncodeToString([]byte("other"))
	c := fileItemAttrs()
	c["item"] = "$/a/c.txt"

	itemA, err := dec.Decode(repo, itemElement(a))
	require.NoError(t, err)
	itemB, err := dec.Decode(repo, itemElement(b))
	require.NoError(t, err)
	itemC, err := dec.Decode(repo, itemElement(c))
	require.NoError(t, err)

	assert.True(t, itemA.Equal(itemB))
	assert.Equal(t, itemA.HashCode(), itemB.HashCode())
	assert.Zero(t, itemA.Compare(itemB))
	assert.False(t, itemA.Equal(itemC))
	assert.Negative(t, itemA.Compare(itemC))
}
