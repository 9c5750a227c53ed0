package trips

import (
	"errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/bikeshare-explorer/config"
)

func testDataConfig() config.DataConfig {
	cfg := config.Default().Data
	cfg.Dir = "../testdata"
	return cfg
}

func defaultOptions() ParseOptions {
	cfg := testDataConfig()
	return ParseOptions{Layouts: cfg.TimestampLayouts, Policy: config.RowPolicyAbort}
}

func TestStore_LoadChicago(t *testing.T) {
	rs, err := NewStore(testDataConfig()).Load("chicago")
	require.NoError(t, err)

	require.Equal(t, "chicago", rs.City)
	require.Equal(t, 12, rs.Len())
	require.True(t, rs.Schema.HasGender)
	require.True(t, rs.Schema.HasBirthYear)
	require.True(t, rs.Schema.HasEndTime)

	first := rs.Records[0]
	require.Equal(t, "Wood St & Hubbard St", first.StartStation)
	require.Equal(t, "Damen Ave & Chicago Ave", first.EndStation)
	require.Equal(t, 321.0, first.TripDuration)
	require.Equal(t, "Subscriber", first.UserType)
	require.Equal(t, "Male", first.Gender)
	require.True(t, first.HasBirthYear)
	require.Equal(t, 1992, first.BirthYear)
	require.Equal(t, 6, first.Month)
	require.Equal(t, "Friday", first.Weekday)
	require.Equal(t, 15, first.StartHour)
	require.Equal(t, "1423854", first.Raw[0])
	require.Len(t, first.Raw, len(rs.Header))

	blank := rs.Records[7]
	require.Equal(t, "Customer", blank.UserType)
	require.Empty(t, blank.Gender)
	require.False(t, blank.HasBirthYear)
}

func TestStore_LoadWashingtonHasNoDemographics(t *testing.T) {
	rs, err := NewStore(testDataConfig()).Load("Washington")
	require.NoError(t, err)

	require.Equal(t, 6, rs.Len())
	require.False(t, rs.Schema.HasGender)
	require.False(t, rs.Schema.HasBirthYear)
	require.InDelta(t, 489.066, rs.Records[0].TripDuration, 1e-9)
}

func TestStore_Errors(t *testing.T) {
	t.Run("unknown city", func(t *testing.T) {
		_, err := NewStore(testDataConfig()).Load("boston")
		var dsErr *DataSourceError
		require.ErrorAs(t, err, &dsErr)
		require.ErrorIs(t, err, ErrUnknownCity)
	})

	t.Run("missing file", func(t *testing.T) {
		cfg := testDataConfig()
		cfg.Dir = t.TempDir()
		_, err := NewStore(cfg).Load("chicago")
		var dsErr *DataSourceError
		require.ErrorAs(t, err, &dsErr)
		require.ErrorIs(t, err, fs.ErrNotExist)
		require.Contains(t, dsErr.Path, "chicago.csv")
	})
}

func TestParse_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "empty source",
			input: "",
		},
		{
			name:  "missing required column",
			input: "Start Time,End Station,Trip Duration,User Type\n2017-01-01 00:00:00,B,10,Subscriber\n",
		},
		{
			name:  "ragged row",
			input: "Start Time,Start Station,End Station,Trip Duration,User Type\n2017-01-01 00:00:00,A,B,10\n",
		},
		{
			name:  "non numeric duration",
			input: "Start Time,Start Station,End Station,Trip Duration,User Type\n2017-01-01 00:00:00,A,B,ten,Subscriber\n",
		},
		{
			name:  "non numeric birth year",
			input: "Start Time,Start Station,End Station,Trip Duration,User Type,Birth Year\n2017-01-01 00:00:00,A,B,10,Subscriber,old\n",
		},
		{
			name:  "NaN duration",
			input: "Start Time,Start Station,End Station,Trip Duration,User Type\n2017-01-01 00:00:00,A,B,NaN,Subscriber\n",
		},
		{
			name:  "infinite duration",
			input: "Start Time,Start Station,End Station,Trip Duration,User Type\n2017-01-01 00:00:00,A,B,+Inf,Subscriber\n",
		},
		{
			name:  "NaN birth year",
			input: "Start Time,Start Station,End Station,Trip Duration,User Type,Birth Year\n2017-01-01 00:00:00,A,B,10,Subscriber,NaN\n",
		},
		{
			name:  "infinite birth year",
			input: "Start Time,Start Station,End Station,Trip Duration,User Type,Birth Year\n2017-01-01 00:00:00,A,B,10,Subscriber,-inf\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input), "test", defaultOptions())
			var dsErr *DataSourceError
			if !errors.As(err, &dsErr) {
				t.Fatalf("expected DataSourceError, got %v", err)
			}
		})
	}
}

func TestParse_NonFiniteNumbers(t *testing.T) {
	input := "Start Time,Start Station,End Station,Trip Duration,User Type,Birth Year\n" +
		"2017-01-01 00:00:00,A,B,60,Subscriber,1990\n" +
		"2017-01-02 00:00:00,A,B,NaN,Subscriber,NaN\n"

	for _, policy := range []string{config.RowPolicyAbort, config.RowPolicySkip} {
		t.Run(policy, func(t *testing.T) {
			opts := defaultOptions()
			opts.Policy = policy
			rs, err := Parse(strings.NewReader(input), "test", opts)
			require.Nil(t, rs)
			require.ErrorIs(t, err, ErrNonFinite)
			require.ErrorContains(t, err, "line 3")
		})
	}
}

const mixedTimestamps = `Start Time,Start Station,End Station,Trip Duration,User Type
2017-03-01 10:00:00,A,B,60,Subscriber
not a time,A,C,70,Customer
2017-04-01 11:00:00,B,C,80,Subscriber
`

func TestParse_TimestampPolicy(t *testing.T) {
	t.Run("abort fails the whole load", func(t *testing.T) {
		_, err := Parse(strings.NewReader(mixedTimestamps), "test", defaultOptions())
		var tsErr *TimestampParseError
		require.ErrorAs(t, err, &tsErr)
		require.Equal(t, 3, tsErr.Row)
		require.Equal(t, ColStartTime, tsErr.Column)
		require.Equal(t, "not a time", tsErr.Value)

		var dsErr *DataSourceError
		require.ErrorAs(t, err, &dsErr)
	})

	t.Run("skip drops only the bad row", func(t *testing.T) {
		opts := defaultOptions()
		opts.Policy = config.RowPolicySkip
		rs, err := Parse(strings.NewReader(mixedTimestamps), "test", opts)
		require.NoError(t, err)
		require.Equal(t, 2, rs.Len())
		require.Equal(t, 3, rs.Records[0].Month)
		require.Equal(t, 4, rs.Records[1].Month)
	})
}

func TestParse_HeaderMatchingIsLenient(t *testing.T) {
	input := "\ufeffstart time , START STATION,End Station,trip duration,User Type\n2017-05-01 06:30:00,A,B,12.5,Subscriber\n"
	rs, err := Parse(strings.NewReader(input), "test", defaultOptions())
	require.NoError(t, err)
	require.Equal(t, 1, rs.Len())
	require.False(t, rs.Schema.HasEndTime)
	require.True(t, rs.Records[0].EndTime.IsZero())
	require.Equal(t, "Monday", rs.Records[0].Weekday)
	require.Equal(t, 6, rs.Records[0].StartHour)
}

func TestRecordSet_Slice(t *testing.T) {
	rs := &RecordSet{Records: make([]TripRecord, 7)}
	require.Len(t, rs.Slice(0, 5), 5)
	require.Len(t, rs.Slice(5, 10), 2)
	require.Nil(t, rs.Slice(10, 15))
	require.Nil(t, rs.Slice(-3, 0))

	var nilSet *RecordSet
	require.Equal(t, 0, nilSet.Len())
}
