package dto

import (
	"time"

	"github.com/google/uuid"

	m "courtku_backend/internals/features/bookings/bookings/model"
)

/* =============== REQUESTS =============== */

type BookingServiceItem struct {
	ServiceID uuid.UUID `json:"service_id" validate:"required"`
	Quantity  int       `json:"quantity"   validate:"required,min=1"`
}

type CreateBookingRequest struct {
	BookingCourtID    uuid.UUID `json:"booking_court_id"     validate:"required"`
	BookingTimeSlotID uuid.UUID `json:"booking_time_slot_id" validate:"required"`
	BookingDate       time.Time `json:"booking_date"         validate:"required"`

	BookingVoucherCode *string              `json:"booking_voucher_code" validate:"omitempty,min=3,max=50"`
	BookingNotes       *string              `json:"booking_notes"        validate:"omitempty"`
	BookingServices    []BookingServiceItem `json:"booking_services"     validate:"omitempty,dive"`
}

func (r CreateBookingRequest) ToModel(userID uuid.UUID) *m.BookingModel {
	b := &m.BookingModel{
		BookingUserID:      userID,
		BookingCourtID:     r.BookingCourtID,
		BookingTimeSlotID:  r.BookingTimeSlotID,
		BookingDate:        r.BookingDate,
		BookingStatus:      m.BookingStatusPending,
		BookingVoucherCode: r.BookingVoucherCode,
		BookingNotes:       r.BookingNotes,
	}
	for _, item := range r.BookingServices {
		b.BookingServices = append(b.BookingServices, m.BookingServiceModel{
			BookingServiceServiceID: item.ServiceID,
			BookingServiceQuantity:  item.Quantity,
		})
	}
	return b
}

type UpdateBookingStatusRequest struct {
	BookingStatus string `json:"booking_status" validate:"required,oneof=pending confirmed completed cancelled"`
}

/* =============== RESPONSES =============== */

type BookingServiceResponse struct {
	BookingServiceID uuid.UUID `json:"booking_service_id"`
	ServiceID        uuid.UUID `json:"service_id"`
	Quantity         int       `json:"quantity"`
}

type BookingResponse struct {
	BookingID          uuid.UUID                `json:"booking_id"`
	BookingUserID      uuid.UUID                `json:"booking_user_id"`
	BookingCourtID     uuid.UUID                `json:"booking_court_id"`
	BookingTimeSlotID  uuid.UUID                `json:"booking_time_slot_id"`
	BookingDate        time.Time                `json:"booking_date"`
	BookingStatus      string                   `json:"booking_status"`
	BookingVoucherCode *string                  `json:"booking_voucher_code,omitempty"`
	BookingNotes       *string                  `json:"booking_notes,omitempty"`
	BookingServices    []BookingServiceResponse `json:"booking_services,omitempty"`
	CreatedAt          time.Time                `json:"created_at"`
}

func FromModel(mo m.BookingModel) BookingResponse {
	resp := BookingResponse{
		BookingID:          mo.BookingID,
		BookingUserID:      mo.BookingUserID,
		BookingCourtID:     mo.BookingCourtID,
		BookingTimeSlotID:  mo.BookingTimeSlotID,
		BookingDate:        mo.BookingDate,
		BookingStatus:      mo.BookingStatus,
		BookingVoucherCode: mo.BookingVoucherCode,
		BookingNotes:       mo.BookingNotes,
		CreatedAt:          mo.CreatedAt,
	}
	for _, s := range mo.BookingServices {
		resp.BookingServices = append(resp.BookingServices, BookingServiceResponse{
			BookingServiceID: s.BookingServiceID,
			ServiceID:        s.BookingServiceServiceID,
			Quantity:         s.BookingServiceQuantity,
		})
	}
	return resp
}

func FromModels(rows []m.BookingModel) []BookingResponse {
	out := make([]BookingResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromModel(r))
	}
	return out
}
