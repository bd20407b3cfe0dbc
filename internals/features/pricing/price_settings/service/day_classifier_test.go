package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "courtku_backend/internals/features/pricing/price_settings/model"
)

type fakeHolidays struct {
	exact     map[string]bool // "2006-01-02"
	recurring map[string]bool // "01-02"
}

func (f *fakeHolidays) ExistsOnDate(date time.Time) (bool, error) {
	return f.exact[date.Format("2006-01-02")], nil
}

func (f *fakeHolidays) ExistsRecurring(month time.Month, day int) (bool, error) {
	return f.recurring[time.Date(2000, month, day, 0, 0, 0, 0, time.UTC).Format("01-02")], nil
}

func newFakeHolidays() *fakeHolidays {
	return &fakeHolidays{exact: map[string]bool{}, recurring: map[string]bool{}}
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}

func TestDayClassifier_Classify(t *testing.T) {
	holidays := newFakeHolidays()
	holidays.exact["2024-04-30"] = true    // one-off holiday on a Tuesday
	holidays.exact["2024-06-01"] = true    // holiday falling on a Saturday
	holidays.recurring["01-01"] = true     // New Year, every year
	holidays.recurring["09-02"] = true     // National Day, every year

	dc := NewDayClassifier(holidays)

	cases := []struct {
		name string
		date string
		want string
	}{
		{"plain monday", "2024-06-03", model.DayTypeWeekday},
		{"plain friday", "2024-06-07", model.DayTypeWeekday},
		{"saturday", "2024-06-08", model.DayTypeWeekend},
		{"sunday", "2024-06-09", model.DayTypeWeekend},
		{"exact holiday on weekday", "2024-04-30", model.DayTypeHoliday},
		{"holiday beats weekend", "2024-06-01", model.DayTypeHoliday},
		{"recurring holiday this year", "2024-01-01", model.DayTypeHoliday},
		{"recurring holiday another year", "2031-01-01", model.DayTypeHoliday},
		{"recurring holiday on a sunday", "2029-09-02", model.DayTypeHoliday},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := dc.Classify(mustDate(t, tc.date))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
