package source

import "context"

// Client issues raw queries against a provider endpoint.
// Implementations wrap every failure in ErrTransport.
type Client interface {
	// List returns a page of a category listing (ac=videolist&t=...).
	List(ctx context.Context, endpoint string, categoryID, page, pageSize int) (*Payload, error)

	// Search returns a page of results for a free-text query (ac=videolist&wd=...).
	Search(ctx context.Context, endpoint, query string, page, pageSize int) (*Payload, error)

	// Detail returns the detail payload for one id (ac=detail&ids=...). Its list holds 0 or 1 element.
	Detail(ctx context.Context, endpoint, id string) (*Payload, error)
}
