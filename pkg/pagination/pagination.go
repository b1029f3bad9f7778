package pagination

import (
	"errors"
	"net/url"
	"strconv"
)

// MaxPageSize caps the page size a client may ask for
const MaxPageSize = 100

var (
	ErrInvalidPage     = errors.New("invalid page parameter: must be positive integer")
	ErrInvalidPageSize = errors.New("invalid pageSize parameter: must be an integer between 0 and 100")
)

// Params selects a page of a list. A zero PageSize means the whole list.
type Params struct {
	Page     int
	PageSize int
}

// FromQuery reads page and pageSize from query values, defaulting to the
// whole list
func FromQuery(q url.Values) (Params, error) {
	p := Params{Page: 1}

	if s := q.Get("page"); s != "" {
		page, err := strconv.Atoi(s)
		if err != nil || page < 1 {
			return p, ErrInvalidPage
		}
		p.Page = page
	}

	if s := q.Get("pageSize"); s != "" {
		size, err := strconv.Atoi(s)
		if err != nil || size < 0 || size > MaxPageSize {
			return p, ErrInvalidPageSize
		}
		p.PageSize = size
	}

	return p, nil
}

// Bounds returns the half-open range of a list of total items covered by the page
func (p Params) Bounds(total int) (start, end int) {
	if p.PageSize <= 0 {
		return 0, total
	}
	start = min(max(p.Page-1, 0)*p.PageSize, total)
	end = min(start+p.PageSize, total)
	return start, end
}

func (p Params) Meta(total int) Meta {
	pages := 0
	if p.PageSize > 0 {
		pages = (total + p.PageSize - 1) / p.PageSize
	}
	return Meta{
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalItems: total,
		TotalPages: pages,
	}
}

type Meta struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalItems int `json:"totalItems"`
	TotalPages int `json:"totalPages"`
}

// Slice returns the page of items selected by p, and its metadata when p
// asks for a page rather than the whole list
func Slice[T any](items []T, p Params) ([]T, *Meta) {
	start, end := p.Bounds(len(items))
	if p.PageSize <= 0 {
		return items[start:end], nil
	}
	meta := p.Meta(len(items))
	return items[start:end], &meta
}
