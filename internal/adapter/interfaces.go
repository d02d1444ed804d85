// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport-layer collaborator the decoding core
// uses to reach the version-control server.
//
// The primary abstraction is [RepositoryClient], which decouples the item
// decoder from the underlying protocol. The package ships an HTTP/SOAP
// implementation ([NewHTTPRepositoryClient]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes and SOAP
// faults by mapHTTPError so that callers can use [errors.Is] for
// transport-agnostic error handling (e.g. [ErrUnauthorized] for 401,
// [ErrItemNotFound] for an empty query result).
package adapter

import (
	"context"
	"net/url"

	"github.com/lilducky98/monodevelop-tfs-addin/internal/wire"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/repository_client_mock.go -package=mock

// RepositoryClient defines the round trips the decoding core needs from the
// version-control server. Implementations are responsible for serialisation,
// timeouts and mapping transport-level errors to the sentinel values defined
// in this package.
type RepositoryClient interface {
	// ItemURL returns the base URL of the item download endpoint. Artifact
	// locations are composed as ItemURL() + "?" + download fragment.
	ItemURL() string

	// FetchItem queries a single item by id at changesetID and returns its
	// raw wire record. With includeDownloadInfo set the server attaches the
	// download fragment ("durl") to File items. Returns [ErrItemNotFound]
	// (wrapped) when the server answers with no item.
	FetchItem(ctx context.Context, itemID, changesetID int, includeDownloadInfo bool) (*wire.Element, error)

	// DownloadFile streams the artifact at location into localPath,
	// creating or truncating the file.
	DownloadFile(ctx context.Context, location *url.URL, localPath string) error
}
