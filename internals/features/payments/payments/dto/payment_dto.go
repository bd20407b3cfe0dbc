package dto

import (
	"time"

	"github.com/google/uuid"

	m "courtku_backend/internals/features/payments/payments/model"
)

/* =============== REQUESTS =============== */

type CreatePaymentRequest struct {
	InvoiceID     uuid.UUID `json:"invoice_id"     validate:"required"`
	CustomerName  string    `json:"customer_name"  validate:"required,min=2,max=80"`
	CustomerEmail string    `json:"customer_email" validate:"required,email"`
}

/* =============== RESPONSES =============== */

type PaymentResponse struct {
	PaymentID   uuid.UUID  `json:"payment_id"`
	InvoiceID   uuid.UUID  `json:"invoice_id"`
	OrderID     string     `json:"order_id"`
	Amount      float64    `json:"amount"`
	Status      string     `json:"status"`
	Method      *string    `json:"method,omitempty"`
	SnapToken   *string    `json:"snap_token,omitempty"`
	RedirectURL *string    `json:"redirect_url,omitempty"`
	PaidAt      *time.Time `json:"paid_at,omitempty"`
}

func FromModel(mo m.PaymentModel) PaymentResponse {
	return PaymentResponse{
		PaymentID:   mo.PaymentID,
		InvoiceID:   mo.PaymentInvoiceID,
		OrderID:     mo.PaymentOrderID,
		Amount:      mo.PaymentAmount,
		Status:      mo.PaymentStatus,
		Method:      mo.PaymentMethod,
		SnapToken:   mo.PaymentSnapToken,
		RedirectURL: mo.PaymentRedirectURL,
		PaidAt:      mo.PaymentPaidAt,
	}
}

func FromModels(rows []m.PaymentModel) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromModel(r))
	}
	return out
}
