// Package paging walks the raw rows of a city in fixed-size pages.
package paging

import (
	"errors"

	"github.com/theoremus-urban-solutions/bikeshare-explorer/trips"
)

// State is the lifecycle of a Cursor.
type State int

const (
	Idle State = iota
	Paging
	Exhausted
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Paging:
		return "paging"
	case Exhausted:
		return "exhausted"
	}
	return "unknown"
}

// ErrPageSize is returned for a non-positive page size.
var ErrPageSize = errors.New("page size must be positive")

// ErrPage is returned by At for a page number below 1.
var ErrPage = errors.New("page must be 1 or greater")

// Page is one slice of raw rows.
type Page struct {
	Number  int // 1-based
	Offset  int
	Records []trips.TripRecord
}

// Cursor is a forward-only position over an unfiltered RecordSet. It is not
// safe for concurrent use.
type Cursor struct {
	records  *trips.RecordSet
	pageSize int
	offset   int
	pages    int
	state    State
}

// NewCursor starts an Idle cursor at offset 0.
func NewCursor(rs *trips.RecordSet, pageSize int) (*Cursor, error) {
	if pageSize <= 0 {
		return nil, ErrPageSize
	}
	return &Cursor{records: rs, pageSize: pageSize}, nil
}

// Next emits the page at the current offset and advances by the page size.
// Once the offset reaches the end, the cursor becomes Exhausted and Next
// returns false from then on.
func (c *Cursor) Next() (Page, bool) {
	if c.state == Exhausted {
		return Page{}, false
	}
	if c.offset >= c.records.Len() {
		c.state = Exhausted
		return Page{}, false
	}
	c.pages++
	p := Page{
		Number:  c.pages,
		Offset:  c.offset,
		Records: c.records.Slice(c.offset, c.offset+c.pageSize),
	}
	c.offset += c.pageSize
	c.state = Paging
	return p, true
}

// Stop ends browsing. It cannot be undone.
func (c *Cursor) Stop() { c.state = Exhausted }

// State reports the current lifecycle state.
func (c *Cursor) State() State { return c.state }

// Offset is the index of the next row to emit.
func (c *Cursor) Offset() int { return c.offset }

// PageSize is fixed at construction.
func (c *Cursor) PageSize() int { return c.pageSize }

// Info describes a page within a set, for stateless callers.
type Info struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// At returns the 1-based page of rs without a cursor. Pages past the end
// are empty.
func At(rs *trips.RecordSet, page, pageSize int) ([]trips.TripRecord, Info, error) {
	if pageSize <= 0 {
		return nil, Info{}, ErrPageSize
	}
	if page < 1 {
		return nil, Info{}, ErrPage
	}
	total := rs.Len()
	info := Info{
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: total / pageSize,
	}
	if total%pageSize != 0 {
		info.TotalPages++
	}
	// Checked before multiplying so huge page numbers cannot wrap around.
	if page > info.TotalPages {
		return nil, info, nil
	}
	lo := (page - 1) * pageSize
	return rs.Slice(lo, lo+pageSize), info, nil
}
