package stats

import "github.com/theoremus-urban-solutions/bikeshare-explorer/trips"

// StationStats holds the most popular stations and the size of the most
// popular route.
//
// MostCommonRouteCount is the number of trips on the most frequent
// start/end pair, not the pair itself. Existing consumers read it as a
// count, so the shape stays as is.
type StationStats struct {
	MostCommonStartStation string `json:"most_common_start_station"`
	MostCommonEndStation   string `json:"most_common_end_station"`
	MostCommonRouteCount   int    `json:"most_common_route_count"`
}

// RouteKey joins an ordered station pair.
func RouteKey(start, end string) string { return start + ", " + end }

// ComputeStationStats counts start stations, end stations and ordered routes.
func ComputeStationStats(rs *trips.RecordSet) (StationStats, error) {
	if rs.Len() == 0 {
		return StationStats{}, &EmptyDatasetError{Stat: StageStations}
	}
	starts := map[string]int{}
	ends := map[string]int{}
	routes := map[string]int{}
	for _, r := range rs.Records {
		tally(starts, r.StartStation)
		tally(ends, r.EndStation)
		tally(routes, RouteKey(r.StartStation, r.EndStation))
	}
	var ss StationStats
	ss.MostCommonStartStation, _ = mode(starts)
	ss.MostCommonEndStation, _ = mode(ends)
	_, ss.MostCommonRouteCount = mode(routes)
	return ss, nil
}
