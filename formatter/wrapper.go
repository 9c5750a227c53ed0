package formatter

import (
	"time"

	"github.com/theoremus-urban-solutions/bikeshare-explorer/filter"
	"github.com/theoremus-urban-solutions/bikeshare-explorer/stats"
)

// ReportEnvelope is the serialised form of a report.
type ReportEnvelope struct {
	GeneratedAt string        `json:"generated_at"`
	City        string        `json:"city"`
	Filter      filter.Filter `json:"filter"`
	Report      *stats.Report `json:"report"`
}

// WrapReport stamps a report with its filter and generation time.
func WrapReport(r *stats.Report, f filter.Filter, at time.Time) *ReportEnvelope {
	city := ""
	if r != nil {
		city = r.City
	}
	return &ReportEnvelope{
		GeneratedAt: iso8601(at),
		City:        city,
		Filter:      f,
		Report:      r,
	}
}

func iso8601(t time.Time) string {
	if t.IsZero() {
		t = time.Now()
	}
	return t.UTC().Format(time.RFC3339)
}
