package trips

import (
	"errors"
	"fmt"
)

// ErrUnknownCity is wrapped by DataSourceError when a city is not in the catalog.
var ErrUnknownCity = errors.New("unknown city")

// ErrNonFinite is wrapped when a numeric cell holds NaN or an infinity.
var ErrNonFinite = errors.New("not a finite number")

// DataSourceError reports a missing, unreadable or malformed city source.
type DataSourceError struct {
	City string
	Path string
	Err  error
}

func (e *DataSourceError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("data source for %q: %v", e.City, e.Err)
	}
	return fmt.Sprintf("data source for %q (%s): %v", e.City, e.Path, e.Err)
}

func (e *DataSourceError) Unwrap() error { return e.Err }

// TimestampParseError reports a timestamp cell that matches no known layout.
// Row is the 1-based line number in the source file, header included.
type TimestampParseError struct {
	Row    int
	Column string
	Value  string
}

func (e *TimestampParseError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("line %d: cannot parse %s %q", e.Row, e.Column, e.Value)
	}
	return fmt.Sprintf("cannot parse timestamp %q", e.Value)
}
