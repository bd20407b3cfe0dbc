package dto

import (
	"time"

	"github.com/google/uuid"

	m "courtku_backend/internals/features/pricing/price_settings/model"
)

/* =============== REQUESTS =============== */

type CreatePriceSettingRequest struct {
	PriceSettingCourtID       *uuid.UUID `json:"price_setting_court_id"         validate:"omitempty"`
	PriceSettingTimeSlotIndex *int       `json:"price_setting_time_slot_index"  validate:"omitempty,min=0"`
	PriceSettingDayType       string     `json:"price_setting_day_type"         validate:"required,oneof=weekday weekend holiday"`
	PriceSettingPrice         float64    `json:"price_setting_price"            validate:"required,gte=0"`
	PriceSettingEffectiveFrom time.Time  `json:"price_setting_effective_from"   validate:"required"`
	PriceSettingEffectiveTo   *time.Time `json:"price_setting_effective_to"     validate:"omitempty"`
}

func (r CreatePriceSettingRequest) ToModel() *m.PriceSettingModel {
	return &m.PriceSettingModel{
		PriceSettingCourtID:       r.PriceSettingCourtID,
		PriceSettingTimeSlotIndex: r.PriceSettingTimeSlotIndex,
		PriceSettingDayType:       r.PriceSettingDayType,
		PriceSettingPrice:         r.PriceSettingPrice,
		PriceSettingIsActive:      true,
		PriceSettingEffectiveFrom: r.PriceSettingEffectiveFrom,
		PriceSettingEffectiveTo:   r.PriceSettingEffectiveTo,
	}
}

// Update (partial)
type UpdatePriceSettingRequest struct {
	PriceSettingCourtID       *uuid.UUID `json:"price_setting_court_id"        validate:"omitempty"`
	PriceSettingTimeSlotIndex *int       `json:"price_setting_time_slot_index" validate:"omitempty,min=0"`
	PriceSettingDayType       *string    `json:"price_setting_day_type"        validate:"omitempty,oneof=weekday weekend holiday"`
	PriceSettingPrice         *float64   `json:"price_setting_price"           validate:"omitempty,gte=0"`
	PriceSettingEffectiveFrom *time.Time `json:"price_setting_effective_from"  validate:"omitempty"`
	PriceSettingEffectiveTo   *time.Time `json:"price_setting_effective_to"    validate:"omitempty"`
}

func (r UpdatePriceSettingRequest) ApplyTo(mo *m.PriceSettingModel) {
	if r.PriceSettingCourtID != nil {
		mo.PriceSettingCourtID = r.PriceSettingCourtID
	}
	if r.PriceSettingTimeSlotIndex != nil {
		mo.PriceSettingTimeSlotIndex = r.PriceSettingTimeSlotIndex
	}
	if r.PriceSettingDayType != nil {
		mo.PriceSettingDayType = *r.PriceSettingDayType
	}
	if r.PriceSettingPrice != nil {
		mo.PriceSettingPrice = *r.PriceSettingPrice
	}
	if r.PriceSettingEffectiveFrom != nil {
		mo.PriceSettingEffectiveFrom = *r.PriceSettingEffectiveFrom
	}
	if r.PriceSettingEffectiveTo != nil {
		mo.PriceSettingEffectiveTo = r.PriceSettingEffectiveTo
	}
}

/* =============== RESPONSES =============== */

type PriceSettingResponse struct {
	PriceSettingID            uuid.UUID  `json:"price_setting_id"`
	PriceSettingCourtID       *uuid.UUID `json:"price_setting_court_id,omitempty"`
	PriceSettingTimeSlotIndex *int       `json:"price_setting_time_slot_index,omitempty"`
	PriceSettingDayType       string     `json:"price_setting_day_type"`
	PriceSettingPrice         float64    `json:"price_setting_price"`
	PriceSettingIsActive      bool       `json:"price_setting_is_active"`
	PriceSettingEffectiveFrom time.Time  `json:"price_setting_effective_from"`
	PriceSettingEffectiveTo   *time.Time `json:"price_setting_effective_to,omitempty"`
}

func FromModel(mo m.PriceSettingModel) PriceSettingResponse {
	return PriceSettingResponse{
		PriceSettingID:            mo.PriceSettingID,
		PriceSettingCourtID:       mo.PriceSettingCourtID,
		PriceSettingTimeSlotIndex: mo.PriceSettingTimeSlotIndex,
		PriceSettingDayType:       mo.PriceSettingDayType,
		PriceSettingPrice:         mo.PriceSettingPrice,
		PriceSettingIsActive:      mo.PriceSettingIsActive,
		PriceSettingEffectiveFrom: mo.PriceSettingEffectiveFrom,
		PriceSettingEffectiveTo:   mo.PriceSettingEffectiveTo,
	}
}

func FromModels(rows []m.PriceSettingModel) []PriceSettingResponse {
	out := make([]PriceSettingResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromModel(r))
	}
	return out
}

/* =============== RESOLVE =============== */

type ResolvePriceResponse struct {
	CourtID       uuid.UUID `json:"court_id"`
	Date          string    `json:"date"`
	TimeSlotIndex int       `json:"time_slot_index"`
	DayType       string    `json:"day_type"`
	Price         float64   `json:"price"`
}
