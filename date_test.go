package chrono

import (
	"testing"
	"testing/quick"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert" // Test assertions e.g. equality
	"github.com/stretchr/testify/require"
)

func TestNewLocalDate(t *testing.T) {
	tests := []struct {
		desc    string
		year    int
		month   int
		day     int
		wantErr bool
	}{
		{desc: "valid", year: 2012, month: 6, day: 30},
		{desc: "leap_day", year: 2012, month: 2, day: 29},
		{desc: "leap_day_non_leap_year", year: 2011, month: 2, day: 29, wantErr: true},
		{desc: "month_too_big", year: 2012, month: 13, day: 1, wantErr: true},
		{desc: "month_zero", year: 2012, month: 0, day: 1, wantErr: true},
		{desc: "day_zero", year: 2012, month: 1, day: 0, wantErr: true},
		{desc: "day_31_in_april", year: 2012, month: 4, day: 31, wantErr: true},
		{desc: "min_date", year: MinYear, month: 1, day: 1},
		{desc: "max_date", year: MaxYear, month: 12, day: 31},
	}
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			d, err := NewLocalDate(tt.year, tt.month, tt.day)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.year, d.Year())
			assert.Equal(t, tt.month, d.Month())
			assert.Equal(t, tt.day, d.Day())
		})
	}
}

func TestNewLocalDate_yearOutOfRange(t *testing.T) {
	_, err := NewLocalDate(MaxYear+1, 1, 1)
	assert.Equal(t, ErrDateOutOfRange, errors.Cause(err))
	_, err = NewLocalDate(MinYear-1, 1, 1)
	assert.Equal(t, ErrDateOutOfRange, errors.Cause(err))
}

func TestMustLocalDate_panics(t *testing.T) {
	assert.Panics(t, func() { MustLocalDate(2011, 2, 29) })
}

func TestLocalDate_EpochDay(t *testing.T) {
	tests := []struct {
		date LocalDate
		want int64
	}{
		{MustLocalDate(1970, 1, 1), 0},
		{MustLocalDate(1970, 1, 2), 1},
		{MustLocalDate(1969, 12, 31), -1},
		{MustLocalDate(2000, 1, 1), 10957},
		{MustLocalDate(2000, 2, 29), 11016},
	}
	for _, tt := range tests {
		t.Run(tt.date.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.date.EpochDay())

			back, err := DateOfEpochDay(tt.want)
			require.NoError(t, err)
			assert.Equal(t, tt.date, back)
		})
	}
}

func TestDateOfEpochDay_roundTrip(t *testing.T) {
	f := func(d LocalDate) bool {
		back, err := DateOfEpochDay(d.EpochDay())
		return err == nil && back == d
	}
	err := quick.Check(f, &quick.Config{Values: randomDates})
	assert.NoError(t, err)
}

func TestDateOfEpochDay_outOfRange(t *testing.T) {
	_, err := DateOfEpochDay(maxEpochDay + 1)
	assert.Equal(t, ErrDateOutOfRange, errors.Cause(err))
	_, err = DateOfEpochDay(minEpochDay - 1)
	assert.Equal(t, ErrDateOutOfRange, errors.Cause(err))
}

func TestLocalDate_EpochMonth(t *testing.T) {
	assert.Equal(t, int64(0), MustLocalDate(1970, 1, 15).EpochMonth())
	assert.Equal(t, int64(1), MustLocalDate(1970, 2, 1).EpochMonth())
	assert.Equal(t, int64(-1), MustLocalDate(1969, 12, 31).EpochMonth())
	assert.Equal(t, int64(506), MustLocalDate(2012, 3, 1).EpochMonth())
}

func TestLocalDate_PlusDays(t *testing.T) {
	tests := []struct {
		desc string
		date LocalDate
		days int64
		want LocalDate
	}{
		{desc: "zero", date: MustLocalDate(2012, 1, 1), days: 0, want: MustLocalDate(2012, 1, 1)},
		{desc: "within_month", date: MustLocalDate(2012, 1, 1), days: 14, want: MustLocalDate(2012, 1, 15)},
		{desc: "across_month", date: MustLocalDate(2012, 1, 31), days: 1, want: MustLocalDate(2012, 2, 1)},
		{desc: "across_year", date: MustLocalDate(2011, 12, 31), days: 1, want: MustLocalDate(2012, 1, 1)},
		{desc: "across_leap_day", date: MustLocalDate(2012, 2, 28), days: 2, want: MustLocalDate(2012, 3, 1)},
		{desc: "backwards", date: MustLocalDate(2012, 1, 1), days: -1, want: MustLocalDate(2011, 12, 31)},
	}
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			got, err := tt.date.PlusDays(tt.days)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLocalDate_PlusDays_outOfRange(t *testing.T) {
	_, err := MaxDate.PlusDays(1)
	assert.Equal(t, ErrDateOutOfRange, errors.Cause(err))
	_, err = MinDate.PlusDays(-1)
	assert.Equal(t, ErrDateOutOfRange, errors.Cause(err))
}

func TestLocalDate_PlusWeeks(t *testing.T) {
	got, err := MustLocalDate(2012, 1, 1).PlusWeeks(2)
	require.NoError(t, err)
	assert.Equal(t, MustLocalDate(2012, 1, 15), got)
}

func TestLocalDate_PlusMonths(t *testing.T) {
	tests := []struct {
		desc   string
		date   LocalDate
		months int64
		want   LocalDate
	}{
		{desc: "simple", date: MustLocalDate(2012, 1, 15), months: 1, want: MustLocalDate(2012, 2, 15)},
		{desc: "clamped_to_leap_day", date: MustLocalDate(2012, 1, 31), months: 1, want: MustLocalDate(2012, 2, 29)},
		{desc: "clamped_non_leap", date: MustLocalDate(2011, 1, 31), months: 1, want: MustLocalDate(2011, 2, 28)},
		{desc: "clamped_backwards", date: MustLocalDate(2012, 3, 31), months: -1, want: MustLocalDate(2012, 2, 29)},
		{desc: "across_year", date: MustLocalDate(2012, 11, 30), months: 3, want: MustLocalDate(2013, 2, 28)},
		{desc: "backwards_across_year", date: MustLocalDate(2012, 1, 15), months: -2, want: MustLocalDate(2011, 11, 15)},
	}
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			got, err := tt.date.PlusMonths(tt.months)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLocalDate_PlusYears(t *testing.T) {
	got, err := MustLocalDate(2012, 2, 29).PlusYears(1)
	require.NoError(t, err)
	assert.Equal(t, MustLocalDate(2013, 2, 28), got)

	got, err = MustLocalDate(2012, 2, 29).PlusYears(-4)
	require.NoError(t, err)
	assert.Equal(t, MustLocalDate(2008, 2, 29), got)

	_, err = MustLocalDate(2012, 2, 29).PlusYears(int64(MaxYear))
	assert.Equal(t, ErrDateOutOfRange, errors.Cause(err))
}

func TestLocalDate_comparisons(t *testing.T) {
	a := MustLocalDate(2012, 6, 29)
	b := MustLocalDate(2012, 6, 30)
	assert.True(t, a.Before(b))
	assert.False(t, b.Before(a))
	assert.True(t, b.After(a))
	assert.True(t, a.Equal(a))
	assert.False(t, a.Equal(b))
}

func TestLocalDate_String(t *testing.T) {
	assert.Equal(t, "2012-06-30", MustLocalDate(2012, 6, 30).String())
	assert.Equal(t, "0099-01-02", MustLocalDate(99, 1, 2).String())
}

func TestIsLeapYear(t *testing.T) {
	tests := []struct {
		year int
		want bool
	}{
		{2012, true},
		{2011, false},
		{2000, true},
		{1900, false},
		{1600, true},
		{0, true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsLeapYear(tt.year), "year %d", tt.year)
	}
}

func TestLocalDate_prevDay(t *testing.T) {
	tests := []struct {
		date LocalDate
		want LocalDate
	}{
		{MustLocalDate(2012, 6, 30), MustLocalDate(2012, 6, 29)},
		{MustLocalDate(2012, 3, 1), MustLocalDate(2012, 2, 29)},
		{MustLocalDate(2011, 3, 1), MustLocalDate(2011, 2, 28)},
		{MustLocalDate(2012, 1, 1), MustLocalDate(2011, 12, 31)},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.date.prevDay())
	}
}
