// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"context"
	"fmt"
	"net/url"
	"sync/atomic"

	"golang.org/x/sync/singleflight"
)

// ArtifactFetcher performs the round trip that produces an artifact location
// for an item decoded without a download fragment.
type ArtifactFetcher func(ctx context.Context) (*url.URL, error)

// ArtifactLocation is the resolved-or-pending download location of a
// versioned item.
//
// A location is either resolved at construction (the wire record carried a
// download fragment) or pending, in which case the first Resolve runs the
// fetcher. A successful result is memoized for the lifetime of the value and
// the fetcher never runs again. Only one fetch is in flight at a time; callers
// arriving while it runs join it and observe its result, failure included. A
// failed fetch is not memoized: the next call after it finished fetches again.
type ArtifactLocation struct {
	resolved atomic.Pointer[url.URL]
	flight   singleflight.Group
	fetch    ArtifactFetcher
}

const artifactFlightKey = "artifact"

// ResolvedArtifactLocation returns a location that is already known.
func ResolvedArtifactLocation(u *url.URL) *ArtifactLocation {
	a := &ArtifactLocation{}
	a.resolved.Store(cloneURL(u))
	return a
}

// DeferredArtifactLocation returns a location that runs fetch on first use.
func DeferredArtifactLocation(fetch ArtifactFetcher) *ArtifactLocation {
	return &ArtifactLocation{fetch: fetch}
}

// Resolved reports whether the location is known without a fetch.
func (a *ArtifactLocation) Resolved() bool {
	return a.resolved.Load() != nil
}

// Resolve returns the location, fetching it on first use. The fetch runs with
// the ctx of the caller that started it; a caller joining it stops waiting
// when its own ctx is done.
func (a *ArtifactLocation) Resolve(ctx context.Context) (*url.URL, error) {
	if u := a.resolved.Load(); u != nil {
		return cloneURL(u), nil
	}
	if a.fetch == nil {
		return nil, ErrArtifactUnavailable
	}

	ch := a.flight.DoChan(artifactFlightKey, func() (any, error) {
		// a previous flight may have succeeded after our first check
		if u := a.resolved.Load(); u != nil {
			return u, nil
		}

		u, err := a.fetch(ctx)
		if err != nil {
			return nil, err
		}
		if u == nil {
			return nil, ErrArtifactUnavailable
		}

		a.resolved.Store(cloneURL(u))
		return u, nil
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return cloneURL(res.Val.(*url.URL)), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// ComposeArtifactURL joins an item endpoint and a raw download fragment as
// "base?fragment".
func ComposeArtifactURL(base, fragment string) (*url.URL, error) {
	u, err := url.Parse(base + "?" + fragment)
	if err != nil {
		return nil, fmt.Errorf("compose artifact url: %w", err)
	}
	return u, nil
}

func cloneURL(u *url.URL) *url.URL {
	if u == nil {
		return nil
	}
	c := *u
	if u.User != nil {
		user := *u.User
		c.User = &user
	}
	return &c
}
