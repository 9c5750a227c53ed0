package bikeshare

import (
	"bytes"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/theoremus-urban-solutions/bikeshare-explorer/filter"
	"github.com/theoremus-urban-solutions/bikeshare-explorer/formatter"
	"github.com/theoremus-urban-solutions/bikeshare-explorer/stats"
)

// ErrUnsupportedFormat is returned for an unknown response format.
var ErrUnsupportedFormat = errors.New("unsupported format")

// ReportCache memoises reports per city, month and day. Failed computations
// are not cached.
type ReportCache struct {
	analyzer *Analyzer

	mu      sync.Mutex
	reports map[string]*stats.Report
}

func NewReportCache(a *Analyzer) *ReportCache {
	return &ReportCache{analyzer: a, reports: map[string]*stats.Report{}}
}

func (rc *ReportCache) memoKey(args ...string) string {
	var b bytes.Buffer
	for i, a := range args {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(normalize(a))
	}
	return b.String()
}

// Get returns the report for city under f, computing it on first request.
func (rc *ReportCache) Get(city string, f filter.Filter) (*stats.Report, error) {
	key := rc.memoKey(city, f.Month, f.Day)
	rc.mu.Lock()
	defer rc.mu.Unlock()
	if r, ok := rc.reports[key]; ok {
		return r, nil
	}
	res, err := rc.analyzer.Analyze(city, f, nil)
	if err != nil {
		return nil, err
	}
	rc.reports[key] = res.Report
	return res.Report, nil
}

// Len is the number of memoised reports.
func (rc *ReportCache) Len() int {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return len(rc.reports)
}

// GetResponse returns the serialised report envelope and its content type.
// format is "json" (default) or "proto".
func (rc *ReportCache) GetResponse(city string, f filter.Filter, format string) ([]byte, string, error) {
	format = normalize(format)
	if format != "" && format != "json" && format != "proto" {
		return nil, "", fmt.Errorf("%w %q", ErrUnsupportedFormat, format)
	}
	r, err := rc.Get(city, f)
	if err != nil {
		return nil, "", err
	}
	env := formatter.WrapReport(r, f, time.Now())
	rb := formatter.NewResponseBuilder()
	if format == "proto" {
		b, err := rb.BuildProto(env)
		return b, formatter.ProtoContentType, err
	}
	b, err := rb.BuildJSON(env)
	return b, "application/json", err
}
