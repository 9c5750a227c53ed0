package stats

import (
	"errors"
	"fmt"
)

// ErrEmptyDataset matches every *EmptyDatasetError via errors.Is.
var ErrEmptyDataset = errors.New("no data for the selected filters")

// EmptyDatasetError reports an aggregator invoked on zero records.
type EmptyDatasetError struct {
	Stat Stage
}

func (e *EmptyDatasetError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stat, ErrEmptyDataset)
}

func (e *EmptyDatasetError) Is(target error) bool { return target == ErrEmptyDataset }
