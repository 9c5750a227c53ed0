package stats

import (
	"time"

	"github.com/theoremus-urban-solutions/bikeshare-explorer/trips"
)

// Stage names one aggregator.
type Stage string

const (
	StageTime     Stage = "time"
	StageStations Stage = "stations"
	StageDuration Stage = "duration"
	StageUsers    Stage = "users"
)

// Hook observes how long each stage took. It is called after the stage
// completes, including when it fails.
type Hook func(stage Stage, elapsed time.Duration)

// Report bundles all four aggregations for one filtered set.
type Report struct {
	City      string        `json:"city"`
	Trips     int           `json:"trips"`
	Time      TimeStats     `json:"time"`
	Stations  StationStats  `json:"stations"`
	Durations DurationStats `json:"durations"`
	Users     UserStats     `json:"users"`
}

// Compute runs the aggregators in order: time, stations, duration, users.
// hook may be nil.
func Compute(rs *trips.RecordSet, hook Hook) (*Report, error) {
	r := &Report{City: rs.City, Trips: rs.Len()}
	steps := []struct {
		stage Stage
		run   func() error
	}{
		{StageTime, func() (err error) { r.Time, err = ComputeTimeStats(rs); return }},
		{StageStations, func() (err error) { r.Stations, err = ComputeStationStats(rs); return }},
		{StageDuration, func() (err error) { r.Durations, err = ComputeDurationStats(rs); return }},
		{StageUsers, func() (err error) { r.Users, err = ComputeUserStats(rs); return }},
	}
	for _, s := range steps {
		start := time.Now()
		err := s.run()
		if hook != nil {
			hook(s.stage, time.Since(start))
		}
		if err != nil {
			return nil, err
		}
	}
	return r, nil
}
