package source

import "errors"

var (
	// ErrNotFound indicates the provider returned an empty result list.
	ErrNotFound = errors.New("no data")

	// ErrTransport indicates a network failure, a non-success status or an unparsable payload.
	ErrTransport = errors.New("provider request failed")

	// ErrUnknownSource indicates the requested source key is not in the catalog.
	ErrUnknownSource = errors.New("unknown source")
)
