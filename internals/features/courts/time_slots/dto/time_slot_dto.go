package dto

import (
	"time"

	"github.com/google/uuid"

	m "courtku_backend/internals/features/courts/time_slots/model"
)

/* =============== REQUESTS =============== */

type GenerateSlotsRequest struct {
	CourtID uuid.UUID `json:"court_id" validate:"required"`
	Date    time.Time `json:"date"     validate:"required"`
}

/* =============== RESPONSES =============== */

type TimeSlotResponse struct {
	TimeSlotID        uuid.UUID `json:"time_slot_id"`
	TimeSlotCourtID   uuid.UUID `json:"time_slot_court_id"`
	TimeSlotDate      time.Time `json:"time_slot_date"`
	TimeSlotIndex     int       `json:"time_slot_index"`
	TimeSlotStartTime string    `json:"time_slot_start_time"`
	TimeSlotEndTime   string    `json:"time_slot_end_time"`
	TimeSlotPrice     float64   `json:"time_slot_price"`
	TimeSlotStatus    string    `json:"time_slot_status"`
}

func FromModel(mo m.TimeSlotModel) TimeSlotResponse {
	return TimeSlotResponse{
		TimeSlotID:        mo.TimeSlotID,
		TimeSlotCourtID:   mo.TimeSlotCourtID,
		TimeSlotDate:      mo.TimeSlotDate,
		TimeSlotIndex:     mo.TimeSlotIndex,
		TimeSlotStartTime: mo.TimeSlotStartTime,
		TimeSlotEndTime:   mo.TimeSlotEndTime,
		TimeSlotPrice:     mo.TimeSlotPrice,
		TimeSlotStatus:    mo.TimeSlotStatus,
	}
}

func FromModels(rows []m.TimeSlotModel) []TimeSlotResponse {
	out := make([]TimeSlotResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromModel(r))
	}
	return out
}
