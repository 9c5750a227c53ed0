package stats

import "github.com/theoremus-urban-solutions/bikeshare-explorer/trips"

// BirthYearStats summarises the birth years present in a set.
type BirthYearStats struct {
	Earliest   int `json:"earliest_birth_year"`
	Latest     int `json:"latest_birth_year"`
	MostCommon int `json:"most_common_birth_year"`
}

// UserStats holds rider breakdowns. Genders and BirthYears are nil when the
// source has no such column.
type UserStats struct {
	UserTypes  []ValueCount    `json:"user_type_counts"`
	Genders    []ValueCount    `json:"gender_counts,omitempty"`
	BirthYears *BirthYearStats `json:"birth_years,omitempty"`
}

// ComputeUserStats counts user types and, where the schema allows, genders
// and birth years. Blank optional cells are ignored.
func ComputeUserStats(rs *trips.RecordSet) (UserStats, error) {
	if rs.Len() == 0 {
		return UserStats{}, &EmptyDatasetError{Stat: StageUsers}
	}
	types := map[string]int{}
	genders := map[string]int{}
	years := map[int]int{}
	earliest, latest := 0, 0
	for _, r := range rs.Records {
		tally(types, r.UserType)
		if rs.Schema.HasGender && r.Gender != "" {
			tally(genders, r.Gender)
		}
		if rs.Schema.HasBirthYear && r.HasBirthYear {
			if len(years) == 0 || r.BirthYear < earliest {
				earliest = r.BirthYear
			}
			if len(years) == 0 || r.BirthYear > latest {
				latest = r.BirthYear
			}
			tally(years, r.BirthYear)
		}
	}

	us := UserStats{UserTypes: ranked(types)}
	if rs.Schema.HasGender {
		us.Genders = ranked(genders)
	}
	if len(years) > 0 {
		common, _ := mode(years)
		us.BirthYears = &BirthYearStats{Earliest: earliest, Latest: latest, MostCommon: common}
	}
	return us, nil
}
