package dto

import (
	"time"

	"github.com/google/uuid"

	model "courtku_backend/internals/features/billing/invoices/model"
)

/* ===================== Requests ===================== */

type BuildInvoiceRequest struct {
	BookingID uuid.UUID `json:"booking_id" validate:"required"`
}

type AddInvoiceDetailRequest struct {
	ServiceID uuid.UUID `json:"service_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,min=1"`
}

type UpdateInvoiceStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending paid cancelled"`
}

/* ===================== Responses ===================== */

type InvoiceDetailResponse struct {
	InvoiceDetailID uuid.UUID  `json:"invoice_detail_id"`
	ItemName        string     `json:"item_name"`
	Quantity        int        `json:"quantity"`
	UnitPrice       float64    `json:"unit_price"`
	Amount          float64    `json:"amount"`
	TimeSlotID      *uuid.UUID `json:"time_slot_id,omitempty"`
	ServiceID       *uuid.UUID `json:"service_id,omitempty"`
}

type InvoiceResponse struct {
	InvoiceID         uuid.UUID  `json:"invoice_id"`
	BookingID         uuid.UUID  `json:"booking_id"`
	InvoiceDate       time.Time  `json:"invoice_date"`
	OriginalAmount    float64    `json:"original_amount"`
	DiscountAmount    float64    `json:"discount_amount"`
	FinalAmount       float64    `json:"final_amount"`
	Status            string     `json:"status"`
	AppliedDiscountID *uuid.UUID `json:"applied_discount_id,omitempty"`
	Notes             *string    `json:"notes,omitempty"`

	Details []InvoiceDetailResponse `json:"details,omitempty"`
}

func FromDetailModel(m model.InvoiceDetailModel) InvoiceDetailResponse {
	return InvoiceDetailResponse{
		InvoiceDetailID: m.InvoiceDetailID,
		ItemName:        m.InvoiceDetailItemName,
		Quantity:        m.InvoiceDetailQuantity,
		UnitPrice:       m.InvoiceDetailUnitPrice,
		Amount:          m.InvoiceDetailAmount,
		TimeSlotID:      m.InvoiceDetailTimeSlotID,
		ServiceID:       m.InvoiceDetailServiceID,
	}
}

func FromModel(m model.InvoiceModel) InvoiceResponse {
	resp := InvoiceResponse{
		InvoiceID:         m.InvoiceID,
		BookingID:         m.InvoiceBookingID,
		InvoiceDate:       m.InvoiceDate,
		OriginalAmount:    m.InvoiceOriginalAmount,
		DiscountAmount:    m.InvoiceDiscountAmount,
		FinalAmount:       m.InvoiceFinalAmount,
		Status:            m.InvoiceStatus,
		AppliedDiscountID: m.InvoiceAppliedDiscountID,
		Notes:             m.InvoiceNotes,
	}
	for _, d := range m.InvoiceDetails {
		resp.Details = append(resp.Details, FromDetailModel(d))
	}
	return resp
}

func FromModels(rows []model.InvoiceModel) []InvoiceResponse {
	out := make([]InvoiceResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromModel(r))
	}
	return out
}
