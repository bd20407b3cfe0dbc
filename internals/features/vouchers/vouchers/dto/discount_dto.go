package dto

import (
	"time"

	"github.com/google/uuid"

	m "courtku_backend/internals/features/vouchers/vouchers/model"
)

/* =============== REQUESTS =============== */

type CreateDiscountRequest struct {
	DiscountCode  string  `json:"discount_code"  validate:"required,min=3,max=50"`
	DiscountName  string  `json:"discount_name"  validate:"required,min=3,max=120"`
	DiscountType  string  `json:"discount_type"  validate:"required,oneof=PERCENTAGE FIXED"`
	DiscountValue float64 `json:"discount_value" validate:"required,gt=0"`

	DiscountMinOrderAmount    *float64 `json:"discount_min_order_amount"    validate:"omitempty,gt=0"`
	DiscountMaxDiscountAmount *float64 `json:"discount_max_discount_amount" validate:"omitempty,gt=0"`
	DiscountUsageLimit        *int     `json:"discount_usage_limit"         validate:"omitempty,gt=0"`

	DiscountValidFrom time.Time  `json:"discount_valid_from" validate:"required"`
	DiscountValidTo   *time.Time `json:"discount_valid_to"   validate:"omitempty"`
}

func (r CreateDiscountRequest) ToModel() *m.DiscountModel {
	return &m.DiscountModel{
		DiscountCode:              r.DiscountCode,
		DiscountName:              r.DiscountName,
		DiscountType:              r.DiscountType,
		DiscountValue:             r.DiscountValue,
		DiscountMinOrderAmount:    r.DiscountMinOrderAmount,
		DiscountMaxDiscountAmount: r.DiscountMaxDiscountAmount,
		DiscountUsageLimit:        r.DiscountUsageLimit,
		DiscountValidFrom:         r.DiscountValidFrom,
		DiscountValidTo:           r.DiscountValidTo,
		DiscountStatus:            m.DiscountStatusActive,
	}
}

// Update (partial); code, type, and value are fixed after creation so past
// invoices keep meaning what they meant.
type UpdateDiscountRequest struct {
	DiscountName              *string    `json:"discount_name"                validate:"omitempty,min=3,max=120"`
	DiscountMinOrderAmount    *float64   `json:"discount_min_order_amount"    validate:"omitempty,gt=0"`
	DiscountMaxDiscountAmount *float64   `json:"discount_max_discount_amount" validate:"omitempty,gt=0"`
	DiscountUsageLimit        *int       `json:"discount_usage_limit"         validate:"omitempty,gt=0"`
	DiscountValidTo           *time.Time `json:"discount_valid_to"            validate:"omitempty"`
	DiscountStatus            *string    `json:"discount_status"              validate:"omitempty,oneof=ACTIVE INACTIVE EXPIRED"`
}

func (r UpdateDiscountRequest) ApplyTo(mo *m.DiscountModel) {
	if r.DiscountName != nil {
		mo.DiscountName = *r.DiscountName
	}
	if r.DiscountMinOrderAmount != nil {
		mo.DiscountMinOrderAmount = r.DiscountMinOrderAmount
	}
	if r.DiscountMaxDiscountAmount != nil {
		mo.DiscountMaxDiscountAmount = r.DiscountMaxDiscountAmount
	}
	if r.DiscountUsageLimit != nil {
		mo.DiscountUsageLimit = r.DiscountUsageLimit
	}
	if r.DiscountValidTo != nil {
		mo.DiscountValidTo = r.DiscountValidTo
	}
	if r.DiscountStatus != nil {
		mo.DiscountStatus = *r.DiscountStatus
	}
}

type ApplyVoucherRequest struct {
	InvoiceID uuid.UUID `json:"invoice_id" validate:"required"`
	VoucherID uuid.UUID `json:"voucher_id" validate:"required"`
}

type CheckVoucherRequest struct {
	DiscountCode string  `json:"discount_code" validate:"required"`
	OrderAmount  float64 `json:"order_amount"  validate:"required,gt=0"`
}

/* =============== RESPONSES =============== */

type DiscountResponse struct {
	DiscountID    uuid.UUID `json:"discount_id"`
	DiscountCode  string    `json:"discount_code"`
	DiscountName  string    `json:"discount_name"`
	DiscountType  string    `json:"discount_type"`
	DiscountValue float64   `json:"discount_value"`

	DiscountMinOrderAmount    *float64 `json:"discount_min_order_amount,omitempty"`
	DiscountMaxDiscountAmount *float64 `json:"discount_max_discount_amount,omitempty"`
	DiscountUsageLimit        *int     `json:"discount_usage_limit,omitempty"`
	DiscountUsedCount         int      `json:"discount_used_count"`

	DiscountValidFrom time.Time  `json:"discount_valid_from"`
	DiscountValidTo   *time.Time `json:"discount_valid_to,omitempty"`

	DiscountStatus string `json:"discount_status"`
}

func FromModel(mo m.DiscountModel) DiscountResponse {
	return DiscountResponse{
		DiscountID:                mo.DiscountID,
		DiscountCode:              mo.DiscountCode,
		DiscountName:              mo.DiscountName,
		DiscountType:              mo.DiscountType,
		DiscountValue:             mo.DiscountValue,
		DiscountMinOrderAmount:    mo.DiscountMinOrderAmount,
		DiscountMaxDiscountAmount: mo.DiscountMaxDiscountAmount,
		DiscountUsageLimit:        mo.DiscountUsageLimit,
		DiscountUsedCount:         mo.DiscountUsedCount,
		DiscountValidFrom:         mo.DiscountValidFrom,
		DiscountValidTo:           mo.DiscountValidTo,
		DiscountStatus:            mo.DiscountStatus,
	}
}

func FromModels(rows []m.DiscountModel) []DiscountResponse {
	out := make([]DiscountResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromModel(r))
	}
	return out
}

type CheckVoucherResponse struct {
	DiscountCode   string  `json:"discount_code"`
	OrderAmount    float64 `json:"order_amount"`
	DiscountAmount float64 `json:"discount_amount"`
	FinalAmount    float64 `json:"final_amount"`
}
