package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courtku_backend/internals/apperror"
	model "courtku_backend/internals/features/pricing/price_settings/model"
)

type fakeSettingStore struct {
	byDayType map[string][]model.PriceSettingModel
}

func (f *fakeSettingStore) FindActiveByDayType(dayType string, _ time.Time) ([]model.PriceSettingModel, error) {
	return f.byDayType[dayType], nil
}

func setting(courtID *uuid.UUID, slotIndex *int, price float64) model.PriceSettingModel {
	return model.PriceSettingModel{
		PriceSettingID:            uuid.New(),
		PriceSettingCourtID:       courtID,
		PriceSettingTimeSlotIndex: slotIndex,
		PriceSettingPrice:         price,
		PriceSettingIsActive:      true,
	}
}

func intPtr(v int) *int { return &v }

func TestPriceResolver_CascadePrecedence(t *testing.T) {
	courtA := uuid.New()
	courtB := uuid.New()

	store := &fakeSettingStore{byDayType: map[string][]model.PriceSettingModel{
		model.DayTypeWeekday: {
			setting(&courtA, intPtr(3), 250_000), // exact: court A slot 3
			setting(nil, intPtr(3), 220_000),     // all courts, slot 3
			setting(nil, nil, 180_000),           // global fallback
		},
		model.DayTypeWeekend: {
			setting(nil, nil, 210_000), // only the global rule on weekends
		},
	}}
	resolver := NewPriceResolver(NewDayClassifier(newFakeHolidays()), store)

	monday := mustDate(t, "2024-06-03")
	saturday := mustDate(t, "2024-06-08")

	t.Run("exact court and slot wins", func(t *testing.T) {
		price, err := resolver.ResolvePrice(courtA, monday, 3)
		require.NoError(t, err)
		assert.Equal(t, 250_000.0, price)
	})

	t.Run("falls through to slot-wide rule for another court", func(t *testing.T) {
		price, err := resolver.ResolvePrice(courtB, monday, 3)
		require.NoError(t, err)
		assert.Equal(t, 220_000.0, price)
	})

	t.Run("falls through to global rule for another slot", func(t *testing.T) {
		price, err := resolver.ResolvePrice(courtA, monday, 7)
		require.NoError(t, err)
		assert.Equal(t, 180_000.0, price)
	})

	t.Run("day type selects the weekend tier", func(t *testing.T) {
		price, err := resolver.ResolvePrice(courtA, saturday, 3)
		require.NoError(t, err)
		assert.Equal(t, 210_000.0, price)
	})
}

func TestPriceResolver_CourtSpecificRuleForOtherCourtIsSkipped(t *testing.T) {
	courtA := uuid.New()
	courtB := uuid.New()

	// A rule pinned to court A must never price court B, even at the exact level.
	store := &fakeSettingStore{byDayType: map[string][]model.PriceSettingModel{
		model.DayTypeWeekday: {
			setting(&courtA, intPtr(3), 250_000),
		},
	}}
	resolver := NewPriceResolver(NewDayClassifier(newFakeHolidays()), store)

	_, err := resolver.ResolvePrice(courtB, mustDate(t, "2024-06-03"), 3)
	require.Error(t, err)
	assert.Equal(t, apperror.CodePriceNotConfigured, apperror.CodeOf(err))
}

func TestPriceResolver_NoRuleAtAnyLevelFails(t *testing.T) {
	store := &fakeSettingStore{byDayType: map[string][]model.PriceSettingModel{}}
	resolver := NewPriceResolver(NewDayClassifier(newFakeHolidays()), store)

	price, err := resolver.ResolvePrice(uuid.New(), mustDate(t, "2024-06-03"), 1)
	require.Error(t, err)
	// Must surface the missing configuration, never a silent zero price.
	assert.Equal(t, apperror.CodePriceNotConfigured, apperror.CodeOf(err))
	assert.Zero(t, price)
}

func TestPriceResolver_HolidayTierViaClassifier(t *testing.T) {
	holidays := newFakeHolidays()
	holidays.recurring["01-01"] = true

	store := &fakeSettingStore{byDayType: map[string][]model.PriceSettingModel{
		model.DayTypeHoliday: {setting(nil, nil, 300_000)},
		model.DayTypeWeekday: {setting(nil, nil, 180_000)},
	}}
	resolver := NewPriceResolver(NewDayClassifier(holidays), store)

	// 2024-01-01 is a Monday, but the holiday tier must win.
	price, err := resolver.ResolvePrice(uuid.New(), mustDate(t, "2024-01-01"), 0)
	require.NoError(t, err)
	assert.Equal(t, 300_000.0, price)
}
