package formatter

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/theoremus-urban-solutions/bikeshare-explorer/stats"
	"github.com/theoremus-urban-solutions/bikeshare-explorer/trips"
)

// Separator closes every statistics block.
var Separator = strings.Repeat("-", 40)

var headings = map[stats.Stage]string{
	stats.StageTime:     "Calculating The Most Frequent Times of Travel...",
	stats.StageStations: "Calculating The Most Popular Stations and Trip...",
	stats.StageDuration: "Calculating Trip Duration...",
	stats.StageUsers:    "Calculating User Stats...",
}

// Timings holds elapsed time per stage; missing stages print no timing line.
type Timings map[stats.Stage]time.Duration

// WriteReport prints the four statistics blocks in pipeline order.
func WriteReport(w io.Writer, r *stats.Report, timings Timings) {
	WriteTimeStats(w, r.Time, timings)
	WriteStationStats(w, r.Stations, timings)
	WriteDurationStats(w, r.Durations, timings)
	WriteUserStats(w, r.Users, timings)
}

// WriteTimeStats prints the most frequent times of travel.
func WriteTimeStats(w io.Writer, ts stats.TimeStats, timings Timings) {
	begin(w, stats.StageTime)
	fmt.Fprintln(w, "Most common month is:", ts.MostCommonMonth)
	fmt.Fprintln(w, "Most common day of week:", ts.MostCommonWeekday)
	fmt.Fprintln(w, "Most common start hour:", ts.MostCommonHour)
	end(w, stats.StageTime, timings)
}

// WriteStationStats prints the most popular stations and the top route count.
func WriteStationStats(w io.Writer, ss stats.StationStats, timings Timings) {
	begin(w, stats.StageStations)
	fmt.Fprintln(w, "Most commonly used start station:", ss.MostCommonStartStation)
	fmt.Fprintln(w, "Most commonly used end station:", ss.MostCommonEndStation)
	fmt.Fprintln(w, "Most frequently used start and stop station is:", ss.MostCommonRouteCount)
	end(w, stats.StageStations, timings)
}

// WriteDurationStats prints total and mean travel time in seconds.
func WriteDurationStats(w io.Writer, ds stats.DurationStats, timings Timings) {
	begin(w, stats.StageDuration)
	fmt.Fprintln(w, "Total travel time:", formatSeconds(ds.Total))
	fmt.Fprintln(w, "Mean travel time:", formatSeconds(ds.Mean))
	end(w, stats.StageDuration, timings)
}

// WriteUserStats prints user type counts and, when present, gender and
// birth year details.
func WriteUserStats(w io.Writer, us stats.UserStats, timings Timings) {
	begin(w, stats.StageUsers)
	fmt.Fprintln(w, "User Types:")
	writeCounts(w, us.UserTypes)
	if us.Genders != nil {
		fmt.Fprintln(w, "Gender:")
		writeCounts(w, us.Genders)
	}
	if by := us.BirthYears; by != nil {
		fmt.Fprintln(w, "Earliest birth year:", by.Earliest)
		fmt.Fprintln(w, "Most recent birth year:", by.Latest)
		fmt.Fprintln(w, "Most common year of birth:", by.MostCommon)
	}
	end(w, stats.StageUsers, timings)
}

// WriteRawPage prints source rows under the source header.
func WriteRawPage(w io.Writer, header []string, rows []trips.TripRecord) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	for _, r := range rows {
		fmt.Fprintln(tw, strings.Join(r.Raw, "\t"))
	}
	_ = tw.Flush()
}

func begin(w io.Writer, stage stats.Stage) {
	fmt.Fprintf(w, "\n%s\n\n", headings[stage])
}

func end(w io.Writer, stage stats.Stage, timings Timings) {
	if d, ok := timings[stage]; ok {
		fmt.Fprintf(w, "\nThis took %s seconds.\n", formatSeconds(d.Seconds()))
	}
	fmt.Fprintln(w, Separator)
}

func writeCounts(w io.Writer, counts []stats.ValueCount) {
	tw := tabwriter.NewWriter(w, 0, 0, 4, ' ', 0)
	for _, c := range counts {
		fmt.Fprintf(tw, "%s\t%d\n", c.Value, c.Count)
	}
	_ = tw.Flush()
}

func formatSeconds(v float64) string {
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.6f", v), "0"), ".")
}
