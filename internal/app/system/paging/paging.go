// internal/app/system/paging/paging.go

// Package paging implements the offset pagination contract of the
// employee listing: the full filtered set is fetched, totals are
// computed over it, and the requested page is sliced out in memory.
package paging

import (
	"net/http"
	"strconv"

	"github.com/dalemusser/waffle/pantry/query"
)

// DefaultLimit is the page size used when the client does not send one.
const DefaultLimit = 10

// Params holds the requested page number and page size, both 1-based.
type Params struct {
	Page  int
	Limit int
}

// Parse extracts page/limit query parameters. Missing or unparsable
// values fall back to page 1 and DefaultLimit; both are clamped to a
// minimum of 1 so a hostile limit can never produce a negative window.
func Parse(r *http.Request) Params {
	return Params{
		Page:  parsePositive(query.Get(r, "page"), 1),
		Limit: parsePositive(query.Get(r, "limit"), DefaultLimit),
	}
}

func parsePositive(s string, fallback int) int {
	if s == "" {
		return fallback
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}

// Clamp forces page and limit to at least 1. Parse already does this
// for request input; Clamp guards programmatic callers.
func (p Params) Clamp() Params {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = 1
	}
	return p
}

// Offset returns the 0-based start index of the requested page.
func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Window slices the requested page out of the full result set. A page
// past the end yields an empty (non-nil) slice, not an error.
func Window[T any](rows []T, p Params) []T {
	p = p.Clamp()
	start := p.Offset()
	if start >= len(rows) {
		return []T{}
	}
	end := start + p.Limit
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end]
}

// Pages returns the page count for a filtered set: ceil(total/limit).
// An empty set has zero pages.
func Pages(total, limit int) int {
	if limit < 1 {
		limit = 1
	}
	return (total + limit - 1) / limit
}
