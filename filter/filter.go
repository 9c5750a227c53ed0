// Package filter validates user selections and narrows a RecordSet by month
// and weekday.
package filter

import (
	"fmt"
	"strings"

	"github.com/theoremus-urban-solutions/bikeshare-explorer/config"
	"github.com/theoremus-urban-solutions/bikeshare-explorer/trips"
)

// All disables filtering on a dimension.
const All = "all"

var calendarMonths = []string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}

// InvalidInputError reports a selection outside the allowed set.
type InvalidInputError struct {
	Input   string
	Allowed []string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input %q, expected one of: %s", e.Input, strings.Join(e.Allowed, ", "))
}

// Validate lower-cases and trims input and returns it if it is in allowed.
func Validate(input string, allowed []string) (string, error) {
	v := strings.ToLower(strings.TrimSpace(input))
	for _, a := range allowed {
		if v == a {
			return v, nil
		}
	}
	return "", &InvalidInputError{Input: input, Allowed: allowed}
}

// Vocabulary holds the accepted inputs for one session. Months and Days
// start with All.
type Vocabulary struct {
	Cities []string
	Months []string
	Days   []string
}

// NewVocabulary builds the accepted inputs from configuration.
func NewVocabulary(cfg config.AppConfig) Vocabulary {
	v := Vocabulary{
		Cities: lowerAll(cfg.Data.CityNames()),
		Months: append([]string{All}, lowerAll(cfg.Session.Months)...),
		Days:   append([]string{All}, lowerAll(cfg.Session.Days)...),
	}
	return v
}

func lowerAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.ToLower(strings.TrimSpace(s))
	}
	return out
}

// Filter is a validated month/day selection.
type Filter struct {
	Month string `json:"month"`
	Day   string `json:"day"`
}

// New validates month and day against v.
func New(month, day string, v Vocabulary) (Filter, error) {
	m, err := Validate(month, v.Months)
	if err != nil {
		return Filter{}, err
	}
	d, err := Validate(day, v.Days)
	if err != nil {
		return Filter{}, err
	}
	return Filter{Month: m, Day: d}, nil
}

// None is the filter that keeps every record.
func None() Filter { return Filter{Month: All, Day: All} }

func (f Filter) String() string { return f.Month + "|" + f.Day }

// MonthNumber returns the 1-based calendar position of a month name, or 0.
func MonthNumber(name string) int {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, m := range calendarMonths {
		if m == name {
			return i + 1
		}
	}
	return 0
}

// Apply returns a new set holding the records of rs that match f, in their
// source order. rs is not modified.
func Apply(rs *trips.RecordSet, f Filter) *trips.RecordSet {
	month := 0
	if f.Month != "" && f.Month != All {
		month = MonthNumber(f.Month)
		if month == 0 {
			return rs.WithRecords([]trips.TripRecord{})
		}
	}
	day := ""
	if f.Day != "" && f.Day != All {
		day = title(f.Day)
	}
	out := make([]trips.TripRecord, 0, rs.Len())
	for _, rec := range rs.Records {
		if month != 0 && rec.Month != month {
			continue
		}
		if day != "" && rec.Weekday != day {
			continue
		}
		out = append(out, rec)
	}
	return rs.WithRecords(out)
}

func title(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
