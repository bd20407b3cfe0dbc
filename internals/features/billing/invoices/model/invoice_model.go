package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ===================== Constants ===================== */

const (
	InvoiceStatusPending   = "pending"
	InvoiceStatusPaid      = "paid"
	InvoiceStatusCancelled = "cancelled"
)

/* ===================== Model ===================== */

type InvoiceModel struct {
	InvoiceID uuid.UUID `gorm:"column:invoice_id;type:uuid;default:gen_random_uuid();primaryKey" json:"invoice_id"`

	// 1:1 with a booking; at most one invoice is ever created per booking.
	InvoiceBookingID uuid.UUID `gorm:"column:invoice_booking_id;type:uuid;not null;uniqueIndex" json:"invoice_booking_id"`

	InvoiceDate time.Time `gorm:"column:invoice_date;not null" json:"invoice_date"`

	InvoiceOriginalAmount float64 `gorm:"column:invoice_original_amount;type:decimal(12,2);not null;default:0" json:"invoice_original_amount"`
	InvoiceDiscountAmount float64 `gorm:"column:invoice_discount_amount;type:decimal(12,2);not null;default:0" json:"invoice_discount_amount"`
	InvoiceFinalAmount    float64 `gorm:"column:invoice_final_amount;type:decimal(12,2);not null;default:0" json:"invoice_final_amount"`

	InvoiceStatus string `gorm:"column:invoice_status;type:varchar(10);default:'pending';index" json:"invoice_status"`

	// The applied voucher as a first-class reference; notes stay display-only.
	InvoiceAppliedDiscountID *uuid.UUID `gorm:"column:invoice_applied_discount_id;type:uuid" json:"invoice_applied_discount_id,omitempty"`
	InvoiceNotes             *string    `gorm:"column:invoice_notes;type:text" json:"invoice_notes,omitempty"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`

	InvoiceDetails []InvoiceDetailModel `gorm:"foreignKey:InvoiceDetailInvoiceID;references:InvoiceID" json:"invoice_details,omitempty"`
}

func (InvoiceModel) TableName() string { return "invoices" }

// Recompute restores the two amount invariants from the current detail set:
// original = Σ detail amounts, final = original − discount.
func (i *InvoiceModel) Recompute() {
	var sum float64
	for _, d := range i.InvoiceDetails {
		sum += d.InvoiceDetailAmount
	}
	i.InvoiceOriginalAmount = sum
	i.InvoiceFinalAmount = i.InvoiceOriginalAmount - i.InvoiceDiscountAmount
}

// IsPaid reports whether the invoice reached its terminal paid state.
func (i *InvoiceModel) IsPaid() bool {
	return i.InvoiceStatus == InvoiceStatusPaid
}

type InvoiceDetailModel struct {
	InvoiceDetailID uuid.UUID `gorm:"column:invoice_detail_id;type:uuid;default:gen_random_uuid();primaryKey" json:"invoice_detail_id"`

	InvoiceDetailInvoiceID uuid.UUID `gorm:"column:invoice_detail_invoice_id;type:uuid;not null;index" json:"invoice_detail_invoice_id"`

	InvoiceDetailItemName  string  `gorm:"column:invoice_detail_item_name;type:varchar(160);not null" json:"invoice_detail_item_name"`
	InvoiceDetailQuantity  int     `gorm:"column:invoice_detail_quantity;not null;check:invoice_detail_quantity > 0" json:"invoice_detail_quantity"`
	InvoiceDetailUnitPrice float64 `gorm:"column:invoice_detail_unit_price;type:decimal(12,2);not null" json:"invoice_detail_unit_price"`
	InvoiceDetailAmount    float64 `gorm:"column:invoice_detail_amount;type:decimal(12,2);not null" json:"invoice_detail_amount"`

	// Exactly one of these two links is set: the court rental line points to
	// its time slot, service lines point to the catalog.
	InvoiceDetailTimeSlotID *uuid.UUID `gorm:"column:invoice_detail_time_slot_id;type:uuid" json:"invoice_detail_time_slot_id,omitempty"`
	InvoiceDetailServiceID  *uuid.UUID `gorm:"column:invoice_detail_service_id;type:uuid" json:"invoice_detail_service_id,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (InvoiceDetailModel) TableName() string { return "invoice_details" }

// IsCourtRental reports whether this is the slot-linked rental line.
func (d *InvoiceDetailModel) IsCourtRental() bool {
	return d.InvoiceDetailTimeSlotID != nil
}
