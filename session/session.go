// Package session runs the interactive prompt loop: choose a city and
// filters, print the statistics, browse raw rows, optionally restart.
package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	bikeshare "github.com/theoremus-urban-solutions/bikeshare-explorer"
	"github.com/theoremus-urban-solutions/bikeshare-explorer/filter"
	"github.com/theoremus-urban-solutions/bikeshare-explorer/formatter"
	"github.com/theoremus-urban-solutions/bikeshare-explorer/paging"
	"github.com/theoremus-urban-solutions/bikeshare-explorer/stats"
	"github.com/theoremus-urban-solutions/bikeshare-explorer/trips"
)

var yesNo = []string{"yes", "no"}

// Session reads answers from in and writes the transcript to out.
type Session struct {
	analyzer *bikeshare.Analyzer
	in       *bufio.Reader
	out      io.Writer

	// city chosen in the last cycle, reloaded on restart
	city string
}

// New creates a session over analyzer.
func New(analyzer *bikeshare.Analyzer, in io.Reader, out io.Writer) *Session {
	return &Session{analyzer: analyzer, in: bufio.NewReader(in), out: out}
}

// Run repeats the explore cycle until the user declines to restart, input
// ends or ctx is cancelled. Running out of input is not an error.
func (s *Session) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		err := s.explore(ctx)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		answer, err := s.readLine("\nWould you like to restart? Enter yes or no.\n")
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if strings.ToLower(strings.TrimSpace(answer)) != "yes" {
			return nil
		}
		if s.city != "" {
			s.analyzer.Reload(s.city)
		}
	}
}

func (s *Session) explore(ctx context.Context) error {
	fmt.Fprintln(s.out, "Hello! Let's explore some US bikeshare data!")
	city, month, day, err := s.filters()
	if err != nil {
		return err
	}
	s.city = city
	fmt.Fprintln(s.out, formatter.Separator)

	f := filter.Filter{Month: month, Day: day}
	timings := formatter.Timings{}
	res, err := s.analyzer.Analyze(city, f, func(stage stats.Stage, elapsed time.Duration) {
		timings[stage] = elapsed
	})
	var dsErr *trips.DataSourceError
	switch {
	case errors.As(err, &dsErr):
		fmt.Fprintf(s.out, "Could not load data for %s: %v\n", city, dsErr.Err)
		return nil
	case errors.Is(err, stats.ErrEmptyDataset):
		fmt.Fprintln(s.out, "No data for the selected filters.")
	case err != nil:
		return err
	default:
		formatter.WriteReport(s.out, res.Report, timings)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.browse(res.Source)
}

func (s *Session) filters() (city, month, day string, err error) {
	v := s.analyzer.Vocab
	if city, err = s.ask("Enter the name of the city", v.Cities); err != nil {
		return
	}
	if month, err = s.ask("Enter the month name", v.Months); err != nil {
		return
	}
	day, err = s.ask("Enter the day", v.Days)
	return
}

func (s *Session) browse(source *trips.RecordSet) error {
	cursor, err := paging.NewCursor(source, s.analyzer.PageSize)
	if err != nil {
		return err
	}
	msg := fmt.Sprintf("\nDo you want to see next %d lines of raw data? Enter yes or no", cursor.PageSize())
	for {
		answer, err := s.ask(msg, yesNo)
		if err != nil {
			return err
		}
		if answer != "yes" {
			cursor.Stop()
			return nil
		}
		page, ok := cursor.Next()
		if !ok {
			fmt.Fprintln(s.out, "No more raw data to display.")
			return nil
		}
		formatter.WriteRawPage(s.out, source.Header, page.Records)
	}
}

// ask re-prompts until the answer is in allowed.
func (s *Session) ask(message string, allowed []string) (string, error) {
	for {
		line, err := s.readLine(message + ": ")
		if err != nil {
			return "", err
		}
		v, err := filter.Validate(line, allowed)
		var inErr *filter.InvalidInputError
		if errors.As(err, &inErr) {
			fmt.Fprintf(s.out, "Invalid input. Please enter one of the following: %s\n", strings.Join(allowed, ", "))
			continue
		}
		return v, err
	}
}

func (s *Session) readLine(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	line, err := s.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return line, nil
		}
		return "", err
	}
	return line, nil
}
