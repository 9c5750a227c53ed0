package stats

import "github.com/theoremus-urban-solutions/bikeshare-explorer/trips"

// TimeStats holds the most frequent times of travel.
type TimeStats struct {
	MostCommonMonth   int    `json:"most_common_month"`
	MostCommonWeekday string `json:"most_common_weekday"`
	MostCommonHour    int    `json:"most_common_hour"`
}

// ComputeTimeStats returns the modes of the derived month, weekday and hour.
func ComputeTimeStats(rs *trips.RecordSet) (TimeStats, error) {
	if rs.Len() == 0 {
		return TimeStats{}, &EmptyDatasetError{Stat: StageTime}
	}
	months := map[int]int{}
	days := map[string]int{}
	hours := map[int]int{}
	for _, r := range rs.Records {
		tally(months, r.Month)
		tally(days, r.Weekday)
		tally(hours, r.StartHour)
	}
	var ts TimeStats
	ts.MostCommonMonth, _ = mode(months)
	ts.MostCommonWeekday, _ = mode(days)
	ts.MostCommonHour, _ = mode(hours)
	return ts, nil
}
