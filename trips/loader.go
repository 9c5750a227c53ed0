package trips

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/theoremus-urban-solutions/bikeshare-explorer/config"
)

// ParseOptions control how a CSV source is read.
type ParseOptions struct {
	Layouts []string
	Policy  string // config.RowPolicyAbort or config.RowPolicySkip
}

// Store resolves cities through the catalog and loads their CSV files.
type Store struct {
	cfg config.DataConfig
}

// NewStore creates a store over the configured data directory and catalog.
func NewStore(cfg config.DataConfig) *Store {
	return &Store{cfg: cfg}
}

// Path returns the source file for city.
func (s *Store) Path(city string) (string, error) {
	file, ok := s.cfg.CityFile(city)
	if !ok {
		return "", &DataSourceError{City: city, Err: ErrUnknownCity}
	}
	if filepath.IsAbs(file) {
		return file, nil
	}
	return filepath.Join(s.cfg.Dir, file), nil
}

// Load reads and derives every trip for city.
func (s *Store) Load(city string) (*RecordSet, error) {
	path, err := s.Path(city)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, &DataSourceError{City: city, Path: path, Err: err}
	}
	defer func() { _ = f.Close() }()

	rs, err := Parse(f, city, ParseOptions{Layouts: s.cfg.TimestampLayouts, Policy: s.cfg.RowPolicy})
	if err != nil {
		var dsErr *DataSourceError
		if errors.As(err, &dsErr) {
			dsErr.Path = path
		}
		return nil, err
	}
	log.Printf("loaded %d trips for %s from %s", rs.Len(), city, path)
	return rs, nil
}

// Parse reads a CSV trip source. Errors are always *DataSourceError; a bad
// timestamp under the abort policy wraps a *TimestampParseError.
func Parse(r io.Reader, city string, opts ParseOptions) (*RecordSet, error) {
	fail := func(err error) (*RecordSet, error) {
		return nil, &DataSourceError{City: city, Err: err}
	}
	csvr := csv.NewReader(r)
	rec, err := csvr.ReadAll()
	if err != nil {
		return fail(err)
	}
	if len(rec) == 0 {
		return fail(errors.New("missing header row"))
	}
	head := rec[0]
	if len(head) > 0 {
		head[0] = strings.TrimPrefix(head[0], "\ufeff")
	}
	idx := func(col string) int {
		for i, h := range head {
			if strings.EqualFold(strings.TrimSpace(h), col) {
				return i
			}
		}
		return -1
	}
	for _, col := range requiredColumns {
		if idx(col) < 0 {
			return fail(fmt.Errorf("missing required column %q", col))
		}
	}
	var (
		start    = idx(ColStartTime)
		end      = idx(ColEndTime)
		dur      = idx(ColTripDuration)
		startSt  = idx(ColStartStation)
		endSt    = idx(ColEndStation)
		userType = idx(ColUserType)
		gender   = idx(ColGender)
		birth    = idx(ColBirthYear)
	)

	rs := &RecordSet{
		City:   city,
		Header: head,
		Schema: Schema{
			HasEndTime:   end >= 0,
			HasGender:    gender >= 0,
			HasBirthYear: birth >= 0,
		},
		Records: make([]TripRecord, 0, len(rec)-1),
	}
	skipped := 0
	for i, row := range rec[1:] {
		line := i + 2
		t, err := parseRow(row, line, opts.Layouts, start, end, dur, startSt, endSt, userType, gender, birth)
		if err != nil {
			var tsErr *TimestampParseError
			if errors.As(err, &tsErr) && opts.Policy == config.RowPolicySkip {
				skipped++
				continue
			}
			return fail(err)
		}
		rs.Records = append(rs.Records, Derive(t))
	}
	if skipped > 0 {
		log.Printf("skipped %d rows with unparseable timestamps in %s", skipped, city)
	}
	return rs, nil
}

func parseRow(row []string, line int, layouts []string, start, end, dur, startSt, endSt, userType, gender, birth int) (TripRecord, error) {
	t := TripRecord{
		StartStation: strings.TrimSpace(row[startSt]),
		EndStation:   strings.TrimSpace(row[endSt]),
		UserType:     strings.TrimSpace(row[userType]),
		Raw:          row,
	}
	var err error
	if t.StartTime, err = parseCell(row[start], line, ColStartTime, layouts); err != nil {
		return t, err
	}
	if end >= 0 && strings.TrimSpace(row[end]) != "" {
		if t.EndTime, err = parseCell(row[end], line, ColEndTime, layouts); err != nil {
			return t, err
		}
	}
	if t.TripDuration, err = parseNumber(row[dur], line, ColTripDuration); err != nil {
		return t, err
	}
	if gender >= 0 {
		t.Gender = strings.TrimSpace(row[gender])
	}
	if birth >= 0 {
		if v := strings.TrimSpace(row[birth]); v != "" {
			year, err := parseNumber(v, line, ColBirthYear)
			if err != nil {
				return t, err
			}
			t.BirthYear = int(year)
			t.HasBirthYear = true
		}
	}
	return t, nil
}

// parseNumber accepts finite decimal values only; ParseFloat alone lets
// "NaN" and "Inf" through.
func parseNumber(value string, line int, column string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, fmt.Errorf("line %d: %s %q: %w", line, column, value, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("line %d: %s %q: %w", line, column, value, ErrNonFinite)
	}
	return v, nil
}

func parseCell(value string, line int, column string, layouts []string) (time.Time, error) {
	ts, err := ParseTimestamp(value, layouts)
	if err != nil {
		return ts, &TimestampParseError{Row: line, Column: column, Value: value}
	}
	return ts, nil
}
