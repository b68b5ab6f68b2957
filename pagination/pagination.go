// Package pagination provides the cursor types used by paged chain
// queries and a generic loop that drains a paged source into a single
// result.
package pagination

import "context"

// PageRequest asks a paged query for one page. A nil request, or a
// request with an empty Key, asks for the first page.
type PageRequest struct {
	Key        []byte `json:"key,omitempty"`
	Offset     uint64 `json:"offset,omitempty"`
	Limit      uint64 `json:"limit,omitempty"`
	CountTotal bool   `json:"count_total,omitempty"`
	Reverse    bool   `json:"reverse,omitempty"`
}

// PageResponse describes the page that came back. An empty NextKey
// means the source is exhausted.
type PageResponse struct {
	NextKey []byte `json:"next_key,omitempty"`
	Total   uint64 `json:"total,omitempty"`
}

// FetchFunc issues one page of a query. It receives the cursor for the
// page to fetch (nil for the first page) and returns the page's items
// together with the source's page response.
type FetchFunc[T any] func(ctx context.Context, req *PageRequest) ([]T, PageResponse, error)

// Aggregate drains a paged source. It fetches pages sequentially,
// following each NextKey until the source reports none, and returns the
// concatenated items in page order together with the final page
// response. Items are never reordered or deduplicated.
//
// There is no local bound on the number of pages: a source that keeps
// returning a NextKey keeps Aggregate looping. Cancel the context to
// abandon such a source.
func Aggregate[T any](ctx context.Context, fetch FetchFunc[T]) ([]T, PageResponse, error) {
	var (
		items []T
		req   *PageRequest
		page  PageResponse
	)
	for {
		if err := ctx.Err(); err != nil {
			return nil, PageResponse{}, err
		}
		batch, resp, err := fetch(ctx, req)
		if err != nil {
			return nil, PageResponse{}, err
		}
		items = append(items, batch...)
		page = resp
		if len(resp.NextKey) == 0 {
			return items, page, nil
		}
		req = &PageRequest{Key: resp.NextKey}
	}
}
