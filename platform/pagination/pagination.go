// Package pagination computes offset pagination metadata and wraps page results.
// This is part of the platform layer and contains no business logic.
package pagination

import "math"

// Defaults applied when a request leaves page or perPage unset.
const (
	DefaultPage    = 1
	DefaultPerPage = 20
)

// Info is the metadata derived from a total count and a page request.
type Info struct {
	CurrentPage int
	PerPage     int
	LastPage    int
	TotalItems  int
	HasMore     bool
	HasNextPage bool
}

// Calculate derives pagination metadata. page and perPage must be >= 1.
//
// An empty result reports LastPage == page rather than 1. HasMore compares the
// total against one page's worth of records and does not depend on page.
func Calculate(totalItems, page, perPage int) Info {
	lastPage := ceilDiv(totalItems, perPage)
	if lastPage == 0 {
		lastPage = page
	}

	return Info{
		CurrentPage: page,
		PerPage:     perPage,
		LastPage:    lastPage,
		TotalItems:  totalItems,
		HasMore:     totalItems > perPage,
		HasNextPage: lastPage > page,
	}
}

// OutOfRange reports whether the requested page lies beyond the last page.
func (i Info) OutOfRange() bool {
	return i.CurrentPage > i.LastPage
}

// Offset returns the number of records to skip for page.
// It saturates at math.MaxInt instead of wrapping.
func Offset(page, perPage int) int {
	if page <= 1 || perPage <= 0 {
		return 0
	}
	if page-1 > math.MaxInt/perPage {
		return math.MaxInt
	}
	return (page - 1) * perPage
}

// Page is a single page of items with its metadata.
type Page[T any] struct {
	Items       []T  `json:"items"`
	CurrentPage int  `json:"currentPage"`
	LastPage    int  `json:"lastPage"`
	TotalItems  int  `json:"totalItems"`
	HasMore     bool `json:"hasMore"`
	HasNextPage bool `json:"hasNextPage"`
}

// NewPage assembles a page from items and computed metadata.
func NewPage[T any](items []T, info Info) Page[T] {
	if items == nil {
		items = make([]T, 0)
	}
	return Page[T]{
		Items:       items,
		CurrentPage: info.CurrentPage,
		LastPage:    info.LastPage,
		TotalItems:  info.TotalItems,
		HasMore:     info.HasMore,
		HasNextPage: info.HasNextPage,
	}
}

// Map converts the items of a page, keeping its metadata.
func Map[T, U any](p Page[T], fn func(T) U) Page[U] {
	items := make([]U, 0, len(p.Items))
	for _, item := range p.Items {
		items = append(items, fn(item))
	}
	return Page[U]{
		Items:       items,
		CurrentPage: p.CurrentPage,
		LastPage:    p.LastPage,
		TotalItems:  p.TotalItems,
		HasMore:     p.HasMore,
		HasNextPage: p.HasNextPage,
	}
}

func ceilDiv(a, b int) int {
	if a <= 0 {
		return 0
	}
	q := a / b
	if a%b != 0 {
		q++
	}
	return q
}
