package stats

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/theoremus-urban-solutions/bikeshare-explorer/config"
	"github.com/theoremus-urban-solutions/bikeshare-explorer/trips"
)

func loadFixture(t *testing.T, city string) *trips.RecordSet {
	t.Helper()
	cfg := config.Default().Data
	cfg.Dir = "../testdata"
	rs, err := trips.NewStore(cfg).Load(city)
	if err != nil {
		t.Fatalf("Failed to load %s fixture: %v", city, err)
	}
	return rs
}

func withDurations(ds ...float64) *trips.RecordSet {
	rs := &trips.RecordSet{City: "test"}
	for _, d := range ds {
		rs.Records = append(rs.Records, trips.TripRecord{TripDuration: d})
	}
	return rs
}

func TestComputeDurationStats(t *testing.T) {
	got, err := ComputeDurationStats(withDurations(100, 200, 300))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Total != 600 || got.Mean != 200.0 {
		t.Errorf("expected total=600 mean=200, got %+v", got)
	}
}

func TestComputeTimeStats_WeekdayMode(t *testing.T) {
	rs := &trips.RecordSet{Records: []trips.TripRecord{
		{Weekday: "Monday", Month: 1, StartHour: 8},
		{Weekday: "Monday", Month: 2, StartHour: 9},
		{Weekday: "Tuesday", Month: 2, StartHour: 9},
	}}
	got, err := ComputeTimeStats(rs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := TimeStats{MostCommonMonth: 2, MostCommonWeekday: "Monday", MostCommonHour: 9}
	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestModeTieBreaksOnLowestValue(t *testing.T) {
	tests := []struct {
		name   string
		counts map[string]int
		want   string
	}{
		{name: "single", counts: map[string]int{"b": 1}, want: "b"},
		{name: "clear winner", counts: map[string]int{"a": 1, "z": 3}, want: "z"},
		{name: "three way tie", counts: map[string]int{"c": 2, "a": 2, "b": 2}, want: "a"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Map iteration order is random; repeat to catch order dependence.
			for i := 0; i < 20; i++ {
				if got, _ := mode(tt.counts); got != tt.want {
					t.Fatalf("expected %q, got %q", tt.want, got)
				}
			}
		})
	}
}

func TestEmptyDataset(t *testing.T) {
	empty := &trips.RecordSet{City: "test"}
	tests := []struct {
		stage Stage
		run   func() error
	}{
		{StageTime, func() error { _, err := ComputeTimeStats(empty); return err }},
		{StageStations, func() error { _, err := ComputeStationStats(empty); return err }},
		{StageDuration, func() error { _, err := ComputeDurationStats(empty); return err }},
		{StageUsers, func() error { _, err := ComputeUserStats(empty); return err }},
		{StageTime, func() error { _, err := Compute(empty, nil); return err }},
	}
	for _, tt := range tests {
		t.Run(string(tt.stage), func(t *testing.T) {
			err := tt.run()
			var emptyErr *EmptyDatasetError
			if !errors.As(err, &emptyErr) {
				t.Fatalf("expected EmptyDatasetError, got %v", err)
			}
			if emptyErr.Stat != tt.stage {
				t.Errorf("expected stage %s, got %s", tt.stage, emptyErr.Stat)
			}
			if !errors.Is(err, ErrEmptyDataset) {
				t.Error("EmptyDatasetError should match ErrEmptyDataset")
			}
		})
	}
}

func TestComputeStationStats(t *testing.T) {
	got, err := ComputeStationStats(loadFixture(t, "chicago"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := StationStats{
		MostCommonStartStation: "Clinton St & Washington Blvd",
		MostCommonEndStation:   "Canal St & Taylor St",
		MostCommonRouteCount:   3,
	}
	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestComputeStationStats_AllDistinct(t *testing.T) {
	got, err := ComputeStationStats(loadFixture(t, "washington"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.MostCommonStartStation != "14th & Belmont St NW" {
		t.Errorf("expected lexically lowest station on a full tie, got %q", got.MostCommonStartStation)
	}
	if got.MostCommonRouteCount != 1 {
		t.Errorf("expected route count 1, got %d", got.MostCommonRouteCount)
	}
}

func TestComputeUserStats(t *testing.T) {
	t.Run("with demographics", func(t *testing.T) {
		got, err := ComputeUserStats(loadFixture(t, "chicago"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := UserStats{
			UserTypes:  []ValueCount{{"Subscriber", 10}, {"Customer", 2}},
			Genders:    []ValueCount{{"Male", 7}, {"Female", 3}},
			BirthYears: &BirthYearStats{Earliest: 1975, Latest: 1992, MostCommon: 1990},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("user stats mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("without gender column", func(t *testing.T) {
		got, err := ComputeUserStats(loadFixture(t, "washington"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Genders != nil {
			t.Errorf("expected no gender counts, got %v", got.Genders)
		}
		if got.BirthYears != nil {
			t.Errorf("expected no birth year stats, got %+v", got.BirthYears)
		}
		if diff := cmp.Diff([]ValueCount{{"Subscriber", 5}, {"Customer", 1}}, got.UserTypes); diff != "" {
			t.Errorf("user types mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("column present but blank", func(t *testing.T) {
		rs := &trips.RecordSet{
			Schema:  trips.Schema{HasGender: true, HasBirthYear: true},
			Records: []trips.TripRecord{{UserType: "Customer"}},
		}
		got, err := ComputeUserStats(rs)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Genders == nil || len(got.Genders) != 0 {
			t.Errorf("expected an empty, non-nil gender table, got %#v", got.Genders)
		}
		if got.BirthYears != nil {
			t.Errorf("expected no birth year stats, got %+v", got.BirthYears)
		}
	})
}

func TestCompute(t *testing.T) {
	var stages []Stage
	hook := func(stage Stage, elapsed time.Duration) {
		if elapsed < 0 {
			t.Errorf("negative elapsed time for %s", stage)
		}
		stages = append(stages, stage)
	}

	r, err := Compute(loadFixture(t, "chicago"), hook)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if diff := cmp.Diff([]Stage{StageTime, StageStations, StageDuration, StageUsers}, stages); diff != "" {
		t.Errorf("stage order mismatch (-want +got):\n%s", diff)
	}
	if r.City != "chicago" || r.Trips != 12 {
		t.Errorf("unexpected header %s/%d", r.City, r.Trips)
	}
	want := TimeStats{MostCommonMonth: 1, MostCommonWeekday: "Monday", MostCommonHour: 9}
	if r.Time != want {
		t.Errorf("expected %+v, got %+v", want, r.Time)
	}
	if r.Durations.Total != 7365 || r.Durations.Mean != 613.75 {
		t.Errorf("unexpected durations %+v", r.Durations)
	}
}

func TestCompute_HookSeesFailingStage(t *testing.T) {
	var stages []Stage
	_, err := Compute(&trips.RecordSet{}, func(s Stage, _ time.Duration) { stages = append(stages, s) })
	if !errors.Is(err, ErrEmptyDataset) {
		t.Fatalf("expected empty dataset error, got %v", err)
	}
	if len(stages) != 1 || stages[0] != StageTime {
		t.Errorf("expected only the time stage to run, got %v", stages)
	}
}
