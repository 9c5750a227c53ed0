/*
Package trips loads bike-share trip extracts and derives the calendar fields
used for filtering and aggregation.

Each city is a single CSV file with a header row. The loader keeps every
source row in file order and tolerates the optional columns that only some
cities publish:

	Start Time, End Time, Trip Duration, Start Station, End Station,
	User Type, Gender (optional), Birth Year (optional)

# Basic Usage

	store := trips.NewStore(cfg.Data)
	set, err := store.Load("chicago")
	if err != nil {
	    var dsErr *trips.DataSourceError
	    if errors.As(err, &dsErr) {
	        // missing or malformed source
	    }
	}

Every record comes back with Month, Weekday and StartHour already derived
from its start time.

# Timestamps

Start and end times are parsed with the configured layouts, tried in order.
A value matching none of them produces a TimestampParseError. Under the
"abort" row policy the whole load fails; under "skip" the row is dropped and
the number of dropped rows is logged. One load always applies one policy.

# Caching

Stores re-read the file on every Load. Long-lived processes wrap the store in
a Cache, which parses each city once and shares the immutable RecordSet.
*/
package trips
