// Package bikeshare ties the trip pipeline together: load a city, derive
// calendar fields, apply the month/day filter and aggregate.
package bikeshare

import (
	"strings"

	"github.com/theoremus-urban-solutions/bikeshare-explorer/config"
	"github.com/theoremus-urban-solutions/bikeshare-explorer/filter"
	"github.com/theoremus-urban-solutions/bikeshare-explorer/stats"
	"github.com/theoremus-urban-solutions/bikeshare-explorer/trips"
)

// Loader returns the unfiltered trips for a city. *trips.Store and
// *trips.Cache both satisfy it.
type Loader interface {
	Load(city string) (*trips.RecordSet, error)
}

// Invalidator is implemented by loaders that cache, such as *trips.Cache.
type Invalidator interface {
	Invalidate(city string)
}

// Analyzer runs the load, filter and aggregate pipeline.
type Analyzer struct {
	Loader   Loader
	Vocab    filter.Vocabulary
	PageSize int
}

// NewAnalyzer creates an analyzer over loader using the configured vocabulary.
func NewAnalyzer(cfg config.AppConfig, loader Loader) *Analyzer {
	return &Analyzer{
		Loader:   loader,
		Vocab:    filter.NewVocabulary(cfg),
		PageSize: cfg.Session.PageSize,
	}
}

// Result carries both the source set (for raw browsing) and the filtered
// report.
type Result struct {
	Source   *trips.RecordSet
	Filtered *trips.RecordSet
	Report   *stats.Report
}

// City validates a city name against the catalog.
func (a *Analyzer) City(name string) (string, error) {
	return filter.Validate(name, a.Vocab.Cities)
}

// Filter validates a month/day selection.
func (a *Analyzer) Filter(month, day string) (filter.Filter, error) {
	return filter.New(month, day, a.Vocab)
}

// Source loads the unfiltered trips for city.
func (a *Analyzer) Source(city string) (*trips.RecordSet, error) {
	c, err := a.City(city)
	if err != nil {
		return nil, err
	}
	return a.Loader.Load(c)
}

// Analyze loads city, filters it with f and computes the report. hook may be
// nil. On an empty filtered set the error is a *stats.EmptyDatasetError and
// Result still carries the source and filtered sets.
func (a *Analyzer) Analyze(city string, f filter.Filter, hook stats.Hook) (*Result, error) {
	src, err := a.Source(city)
	if err != nil {
		return nil, err
	}
	res := &Result{Source: src, Filtered: filter.Apply(src, f)}
	res.Report, err = stats.Compute(res.Filtered, hook)
	return res, err
}

// Reload makes the next load of city re-read its source. It is a no-op for
// loaders that do not cache.
func (a *Analyzer) Reload(city string) {
	if inv, ok := a.Loader.(Invalidator); ok {
		inv.Invalidate(city)
	}
}

func normalize(s string) string { return strings.ToLower(strings.TrimSpace(s)) }
