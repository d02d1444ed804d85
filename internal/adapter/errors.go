package adapter

import "errors"

var (
	ErrBadRequest   = errors.New("bad request")
	ErrUnauthorized = errors.New("client unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrServerFault  = errors.New("server fault")
	ErrBadGateway   = errors.New("bad gateway")

	// ErrItemNotFound is returned when a query succeeds but yields no item.
	ErrItemNotFound = errors.New("item not found")
	// ErrNilLocation is returned by DownloadFile when no location is given.
	ErrNilLocation = errors.New("artifact location is nil")
)
