package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ===================== Constants ===================== */

const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

/* ===================== Model ===================== */

type BookingModel struct {
	BookingID uuid.UUID `gorm:"column:booking_id;type:uuid;default:gen_random_uuid();primaryKey" json:"booking_id"`

	BookingUserID     uuid.UUID `gorm:"column:booking_user_id;type:uuid;not null;index" json:"booking_user_id"`
	BookingCourtID    uuid.UUID `gorm:"column:booking_court_id;type:uuid;not null;index" json:"booking_court_id"`
	BookingTimeSlotID uuid.UUID `gorm:"column:booking_time_slot_id;type:uuid;not null;index" json:"booking_time_slot_id"`
	BookingDate       time.Time `gorm:"column:booking_date;type:date;not null;index" json:"booking_date"`

	BookingStatus string `gorm:"column:booking_status;type:varchar(10);default:'pending';index" json:"booking_status"`

	// Voucher requested at booking time; redeemed against the invoice, not here.
	BookingVoucherCode *string `gorm:"column:booking_voucher_code;type:varchar(50)" json:"booking_voucher_code,omitempty"`
	BookingNotes       *string `gorm:"column:booking_notes;type:text" json:"booking_notes,omitempty"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:booking_deleted_at;index" json:"deleted_at,omitempty"`

	// Structured service selection; replaces the old free-text convention.
	BookingServices []BookingServiceModel `gorm:"foreignKey:BookingServiceBookingID;references:BookingID" json:"booking_services,omitempty"`
}

func (BookingModel) TableName() string { return "bookings" }

// IsActive reports whether the booking still occupies its slot.
func (b *BookingModel) IsActive() bool {
	return b.BookingStatus != BookingStatusCancelled
}

type BookingServiceModel struct {
	BookingServiceID uuid.UUID `gorm:"column:booking_service_id;type:uuid;default:gen_random_uuid();primaryKey" json:"booking_service_id"`

	BookingServiceBookingID uuid.UUID `gorm:"column:booking_service_booking_id;type:uuid;not null;index" json:"booking_service_booking_id"`
	BookingServiceServiceID uuid.UUID `gorm:"column:booking_service_service_id;type:uuid;not null" json:"booking_service_service_id"`
	BookingServiceQuantity  int       `gorm:"column:booking_service_quantity;not null;check:booking_service_quantity > 0" json:"booking_service_quantity"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (BookingServiceModel) TableName() string { return "booking_services" }
