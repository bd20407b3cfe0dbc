package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"courtku_backend/internals/apperror"
	model "courtku_backend/internals/features/pricing/price_settings/model"
)

// PriceSettingStore loads the active settings that are effective on the given
// date for one day type, ordered newest effective_from first.
type PriceSettingStore interface {
	FindActiveByDayType(dayType string, date time.Time) ([]model.PriceSettingModel, error)
}

// PriceResolver picks the unit price for a (court, date, slot index) triple by
// walking specificity levels from most to least specific. The levels are plain
// predicates over the loaded candidate set, so precedence is testable without
// a database.
type PriceResolver struct {
	classifier *DayClassifier
	store      PriceSettingStore
}

func NewPriceResolver(classifier *DayClassifier, store PriceSettingStore) *PriceResolver {
	return &PriceResolver{classifier: classifier, store: store}
}

func (r *PriceResolver) ResolvePrice(courtID uuid.UUID, date time.Time, slotIndex int) (float64, error) {
	dayType, err := r.classifier.Classify(date)
	if err != nil {
		return 0, err
	}

	settings, err := r.store.FindActiveByDayType(dayType, date)
	if err != nil {
		return 0, err
	}

	// Most specific first. Within a level the store order decides (newest
	// effective_from wins).
	levels := []func(s model.PriceSettingModel) bool{
		// court + slot
		func(s model.PriceSettingModel) bool {
			return s.PriceSettingCourtID != nil && *s.PriceSettingCourtID == courtID &&
				s.PriceSettingTimeSlotIndex != nil && *s.PriceSettingTimeSlotIndex == slotIndex
		},
		// all courts, this slot
		func(s model.PriceSettingModel) bool {
			return s.PriceSettingCourtID == nil &&
				s.PriceSettingTimeSlotIndex != nil && *s.PriceSettingTimeSlotIndex == slotIndex
		},
		// all courts, all slots
		func(s model.PriceSettingModel) bool {
			return s.PriceSettingCourtID == nil && s.PriceSettingTimeSlotIndex == nil
		},
	}

	for _, match := range levels {
		for _, s := range settings {
			if match(s) {
				return s.PriceSettingPrice, nil
			}
		}
	}

	return 0, apperror.PriceNotConfigured(fmt.Sprintf(
		"no price configured for court %s, slot %d, %s (%s)",
		courtID, slotIndex, date.Format("2006-01-02"), dayType,
	))
}
