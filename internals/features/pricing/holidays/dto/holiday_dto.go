package dto

import (
	"time"

	"github.com/google/uuid"

	m "courtku_backend/internals/features/pricing/holidays/model"
)

/* =============== REQUESTS =============== */

type CreateHolidayRequest struct {
	HolidayDate              time.Time `json:"holiday_date"                validate:"required"`
	HolidayName              string    `json:"holiday_name"                validate:"required,min=2,max=100"`
	HolidayIsRecurringYearly bool      `json:"holiday_is_recurring_yearly"`
}

func (r CreateHolidayRequest) ToModel() *m.HolidayModel {
	return &m.HolidayModel{
		HolidayDate:              r.HolidayDate,
		HolidayName:              r.HolidayName,
		HolidayIsRecurringYearly: r.HolidayIsRecurringYearly,
	}
}

// Update (partial)
type UpdateHolidayRequest struct {
	HolidayDate              *time.Time `json:"holiday_date"                validate:"omitempty"`
	HolidayName              *string    `json:"holiday_name"                validate:"omitempty,min=2,max=100"`
	HolidayIsRecurringYearly *bool      `json:"holiday_is_recurring_yearly" validate:"omitempty"`
}

func (r UpdateHolidayRequest) ApplyTo(mo *m.HolidayModel) {
	if r.HolidayDate != nil {
		mo.HolidayDate = *r.HolidayDate
	}
	if r.HolidayName != nil {
		mo.HolidayName = *r.HolidayName
	}
	if r.HolidayIsRecurringYearly != nil {
		mo.HolidayIsRecurringYearly = *r.HolidayIsRecurringYearly
	}
}

/* =============== RESPONSES =============== */

type HolidayResponse struct {
	HolidayID                uuid.UUID `json:"holiday_id"`
	HolidayDate              time.Time `json:"holiday_date"`
	HolidayName              string    `json:"holiday_name"`
	HolidayIsRecurringYearly bool      `json:"holiday_is_recurring_yearly"`
}

func FromModel(mo m.HolidayModel) HolidayResponse {
	return HolidayResponse{
		HolidayID:                mo.HolidayID,
		HolidayDate:              mo.HolidayDate,
		HolidayName:              mo.HolidayName,
		HolidayIsRecurringYearly: mo.HolidayIsRecurringYearly,
	}
}

func FromModels(rows []m.HolidayModel) []HolidayResponse {
	out := make([]HolidayResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromModel(r))
	}
	return out
}
