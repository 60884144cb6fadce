// Package pagination parses zero-based page requests and carries
// bounded result pages with the metadata clients need to keep paging.
package pagination

import (
	"math"
	"net/http"
	"strconv"
)

const DefaultSize = 3

// Request is a zero-based page index plus a page size.
type Request struct {
	Page int
	Size int
}

// Offset is the number of rows skipped before this page. It saturates at
// math.MaxInt instead of wrapping, so a page past the end stays empty.
func (r Request) Offset() int {
	if r.Page <= 0 || r.Size <= 0 {
		return 0
	}
	if r.Page > math.MaxInt/r.Size {
		return math.MaxInt
	}
	return r.Page * r.Size
}

// Limits controls how query parameters become a Request.
// MaxSize <= 0 leaves the page size unbounded.
type Limits struct {
	DefaultSize int
	MaxSize     int
}

// Normalize clamps out-of-range values instead of rejecting them.
func (l Limits) Normalize(req Request) Request {
	if req.Page < 0 {
		req.Page = 0
	}
	if req.Size < 1 {
		req.Size = 1
	}
	if l.MaxSize > 0 && req.Size > l.MaxSize {
		req.Size = l.MaxSize
	}
	return req
}

// FromQuery reads the page and size query parameters. Missing or
// unparseable values fall back to page 0 and the default size.
func (l Limits) FromQuery(r *http.Request) Request {
	def := l.DefaultSize
	if def < 1 {
		def = DefaultSize
	}
	req := Request{Page: 0, Size: def}

	if pStr := r.URL.Query().Get("page"); pStr != "" {
		if p, err := strconv.Atoi(pStr); err == nil {
			req.Page = p
		}
	}
	if sStr := r.URL.Query().Get("size"); sStr != "" {
		if s, err := strconv.Atoi(sStr); err == nil {
			req.Size = s
		}
	}

	return l.Normalize(req)
}

// Page is a bounded slice of a larger result set.
type Page[T any] struct {
	Content       []T   `json:"content"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"total_elements"`
	TotalPages    int   `json:"total_pages"`
}

// New builds a page from its content and the total row count.
func New[T any](content []T, req Request, total int64) Page[T] {
	if content == nil {
		content = []T{}
	}
	totalPages := 0
	if req.Size > 0 && total > 0 {
		size := int64(req.Size)
		pages := total / size
		if total%size != 0 {
			pages++
		}
		totalPages = int(pages)
	}
	return Page[T]{
		Content:       content,
		Page:          req.Page,
		Size:          req.Size,
		TotalElements: total,
		TotalPages:    totalPages,
	}
}

// Empty reports whether the page carries no content.
func (p Page[T]) Empty() bool {
	return len(p.Content) == 0
}

// Convert is Map for conversions that cannot fail.
func Convert[T, U any](p Page[T], fn func(T) U) Page[U] {
	out := make([]U, 0, len(p.Content))
	for _, item := range p.Content {
		out = append(out, fn(item))
	}
	return Page[U]{
		Content:       out,
		Page:          p.Page,
		Size:          p.Size,
		TotalElements: p.TotalElements,
		TotalPages:    p.TotalPages,
	}
}

// Map converts every element of p, keeping the page metadata. The first
// conversion error aborts the mapping.
func Map[T, U any](p Page[T], fn func(T) (U, error)) (Page[U], error) {
	out := make([]U, 0, len(p.Content))
	for _, item := range p.Content {
		u, err := fn(item)
		if err != nil {
			return Page[U]{}, err
		}
		out = append(out, u)
	}
	return Page[U]{
		Content:       out,
		Page:          p.Page,
		Size:          p.Size,
		TotalElements: p.TotalElements,
		TotalPages:    p.TotalPages,
	}, nil
}
