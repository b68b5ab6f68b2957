package pagination

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

// pagedSource serves a fixed item count in fixed-size pages, tracking
// how many fetches were issued.
type pagedSource struct {
	items    []int
	pageSize int
	fetches  int
}

func newPagedSource(total, pageSize int) *pagedSource {
	items := make([]int, total)
	for i := range items {
		items[i] = i
	}
	return &pagedSource{items: items, pageSize: pageSize}
}

func (s *pagedSource) fetch(_ context.Context, req *PageRequest) ([]int, PageResponse, error) {
	s.fetches++
	start := 0
	if req != nil && len(req.Key) > 0 {
		if _, err := fmt.Sscanf(string(req.Key), "%d", &start); err != nil {
			return nil, PageResponse{}, err
		}
	}
	end := start + s.pageSize
	if end > len(s.items) {
		end = len(s.items)
	}
	var next []byte
	if end < len(s.items) {
		next = []byte(fmt.Sprintf("%d", end))
	}
	return s.items[start:end], PageResponse{NextKey: next}, nil
}

func TestAggregateThreePages(t *testing.T) {
	src := newPagedSource(85, 40)

	items, page, err := Aggregate(context.Background(), src.fetch)
	if err != nil {
		t.Fatalf("aggregate failed: %v", err)
	}
	if len(items) != 85 {
		t.Errorf("expected 85 items, got %d", len(items))
	}
	if src.fetches != 3 {
		t.Errorf("expected 3 page fetches, got %d", src.fetches)
	}
	if len(page.NextKey) != 0 {
		t.Errorf("expected empty final cursor, got %q", page.NextKey)
	}
	// Items arrive in page order
	for i, v := range items {
		if v != i {
			t.Fatalf("item %d out of order: got %d", i, v)
		}
	}
}

func TestAggregateSinglePage(t *testing.T) {
	src := newPagedSource(7, 40)

	items, _, err := Aggregate(context.Background(), src.fetch)
	if err != nil {
		t.Fatalf("aggregate failed: %v", err)
	}
	if len(items) != 7 {
		t.Errorf("expected 7 items, got %d", len(items))
	}
	if src.fetches != 1 {
		t.Errorf("expected 1 page fetch, got %d", src.fetches)
	}
}

func TestAggregateEmptySource(t *testing.T) {
	src := newPagedSource(0, 40)

	items, _, err := Aggregate(context.Background(), src.fetch)
	if err != nil {
		t.Fatalf("aggregate failed: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("expected no items, got %d", len(items))
	}
	if src.fetches != 1 {
		t.Errorf("expected 1 page fetch, got %d", src.fetches)
	}
}

func TestAggregatePropagatesError(t *testing.T) {
	sentinel := errors.New("page source down")
	calls := 0
	fetch := func(_ context.Context, req *PageRequest) ([]int, PageResponse, error) {
		calls++
		if calls == 2 {
			return nil, PageResponse{}, sentinel
		}
		return []int{1}, PageResponse{NextKey: []byte("next")}, nil
	}

	_, _, err := Aggregate(context.Background(), fetch)
	if !errors.Is(err, sentinel) {
		t.Fatalf("expected sentinel error, got %v", err)
	}
	if calls != 2 {
		t.Errorf("expected 2 fetches before failure, got %d", calls)
	}
}

func TestAggregateContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	fetch := func(_ context.Context, req *PageRequest) ([]int, PageResponse, error) {
		cancel()
		// Never-ending cursor chain; only the context stops it.
		return []int{1}, PageResponse{NextKey: []byte("more")}, nil
	}

	_, _, err := Aggregate(ctx, fetch)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
