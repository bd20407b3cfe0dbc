package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* ===================== Constants ===================== */

const (
	PaymentStatusInitiated = "initiated"
	PaymentStatusPaid      = "paid"
	PaymentStatusExpired   = "expired"
	PaymentStatusCancelled = "cancelled"
	PaymentStatusDenied    = "denied"
)

/* ===================== Model ===================== */

type PaymentModel struct {
	PaymentID uuid.UUID `gorm:"column:payment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"payment_id"`

	PaymentInvoiceID uuid.UUID `gorm:"column:payment_invoice_id;type:uuid;not null;index" json:"payment_invoice_id"`

	// The order id handed to the payment gateway; webhooks key on it.
	PaymentOrderID string `gorm:"column:payment_order_id;type:varchar(64);not null;unique" json:"payment_order_id"`

	PaymentAmount float64 `gorm:"column:payment_amount;type:decimal(12,2);not null" json:"payment_amount"`
	PaymentStatus string  `gorm:"column:payment_status;type:varchar(10);default:'initiated';index" json:"payment_status"`

	// payment_type reported by the gateway (qris, bank_transfer, gopay, ...)
	PaymentMethod *string `gorm:"column:payment_method;type:varchar(30)" json:"payment_method,omitempty"`

	PaymentSnapToken   *string `gorm:"column:payment_snap_token;type:varchar(120)" json:"payment_snap_token,omitempty"`
	PaymentRedirectURL *string `gorm:"column:payment_redirect_url;type:text" json:"payment_redirect_url,omitempty"`

	PaymentPaidAt *time.Time `gorm:"column:payment_paid_at" json:"payment_paid_at,omitempty"`

	// Last gateway notification, verbatim, for audits.
	PaymentRawPayload datatypes.JSON `gorm:"column:payment_raw_payload;type:jsonb" json:"payment_raw_payload,omitempty"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (PaymentModel) TableName() string { return "payments" }
