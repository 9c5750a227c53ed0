package trips

import "time"

// Source column names.
const (
	ColStartTime    = "Start Time"
	ColEndTime      = "End Time"
	ColTripDuration = "Trip Duration"
	ColStartStation = "Start Station"
	ColEndStation   = "End Station"
	ColUserType     = "User Type"
	ColGender       = "Gender"
	ColBirthYear    = "Birth Year"
)

var requiredColumns = []string{ColStartTime, ColStartStation, ColEndStation, ColTripDuration, ColUserType}

// TripRecord is one source row plus its derived calendar fields.
type TripRecord struct {
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time,omitempty"` // zero when the source has no End Time
	StartStation string    `json:"start_station"`
	EndStation   string    `json:"end_station"`
	TripDuration float64   `json:"trip_duration"` // seconds
	UserType     string    `json:"user_type"`
	Gender       string    `json:"gender,omitempty"`
	BirthYear    int       `json:"birth_year,omitempty"`
	HasBirthYear bool      `json:"-"`

	Month     int    `json:"month"`
	Weekday   string `json:"weekday"`
	StartHour int    `json:"start_hour"`

	Raw []string `json:"-"` // source cells, aligned with RecordSet.Header
}

// Schema records which optional columns the source carried.
type Schema struct {
	HasEndTime   bool
	HasGender    bool
	HasBirthYear bool
}

// RecordSet is an ordered, read-only collection of trips for one city.
type RecordSet struct {
	City    string
	Header  []string
	Schema  Schema
	Records []TripRecord
}

// Len returns the number of records.
func (rs *RecordSet) Len() int {
	if rs == nil {
		return 0
	}
	return len(rs.Records)
}

// Slice returns records in [lo, hi) clamped to the set bounds.
func (rs *RecordSet) Slice(lo, hi int) []TripRecord {
	n := rs.Len()
	if lo < 0 {
		lo = 0
	}
	if hi > n {
		hi = n
	}
	if lo >= hi {
		return nil
	}
	return rs.Records[lo:hi]
}

// WithRecords returns a new set sharing city, header and schema but holding
// records. The receiver is not modified.
func (rs *RecordSet) WithRecords(records []TripRecord) *RecordSet {
	return &RecordSet{
		City:    rs.City,
		Header:  rs.Header,
		Schema:  rs.Schema,
		Records: records,
	}
}
