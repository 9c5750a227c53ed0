package trips

import (
	"strings"
	"time"
)

// ParseTimestamp parses value with the first matching layout. Timestamps
// without a zone are read as UTC wall-clock time.
func ParseTimestamp(value string, layouts []string) (time.Time, error) {
	v := strings.TrimSpace(value)
	if v != "" {
		for _, layout := range layouts {
			if t, err := time.Parse(layout, v); err == nil {
				return t, nil
			}
		}
	}
	return time.Time{}, &TimestampParseError{Column: ColStartTime, Value: value}
}

// Derive returns a copy of rec with Month, Weekday and StartHour computed
// from StartTime.
func Derive(rec TripRecord) TripRecord {
	rec.Month = int(rec.StartTime.Month())
	rec.Weekday = rec.StartTime.Weekday().String()
	rec.StartHour = rec.StartTime.Hour()
	return rec
}
