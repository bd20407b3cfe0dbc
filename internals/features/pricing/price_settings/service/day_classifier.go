package service

import (
	"time"

	model "courtku_backend/internals/features/pricing/price_settings/model"
)

// HolidayLookup is the holiday-store slice the classifier needs.
type HolidayLookup interface {
	ExistsOnDate(date time.Time) (bool, error)
	ExistsRecurring(month time.Month, day int) (bool, error)
}

// DayClassifier maps a calendar date onto the price tier it belongs to.
// Holiday wins over weekend, weekend over weekday.
type DayClassifier struct {
	holidays HolidayLookup
}

func NewDayClassifier(holidays HolidayLookup) *DayClassifier {
	return &DayClassifier{holidays: holidays}
}

func (dc *DayClassifier) Classify(date time.Time) (string, error) {
	exact, err := dc.holidays.ExistsOnDate(date)
	if err != nil {
		return "", err
	}
	if exact {
		return model.DayTypeHoliday, nil
	}

	recurring, err := dc.holidays.ExistsRecurring(date.Month(), date.Day())
	if err != nil {
		return "", err
	}
	if recurring {
		return model.DayTypeHoliday, nil
	}

	switch date.Weekday() {
	case time.Saturday, time.Sunday:
		return model.DayTypeWeekend, nil
	}
	return model.DayTypeWeekday, nil
}
