package stats

import "github.com/theoremus-urban-solutions/bikeshare-explorer/trips"

// DurationStats holds total and mean trip duration in seconds.
type DurationStats struct {
	Total float64 `json:"total_duration"`
	Mean  float64 `json:"mean_duration"`
}

// ComputeDurationStats sums trip durations and averages them.
func ComputeDurationStats(rs *trips.RecordSet) (DurationStats, error) {
	if rs.Len() == 0 {
		return DurationStats{}, &EmptyDatasetError{Stat: StageDuration}
	}
	var sum float64
	for _, r := range rs.Records {
		sum += r.TripDuration
	}
	return DurationStats{Total: sum, Mean: sum / float64(rs.Len())}, nil
}
