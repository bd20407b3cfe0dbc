package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ===================== Constants ===================== */

const (
	TimeSlotStatusAvailable = "available"
	TimeSlotStatusBooked    = "booked"
	TimeSlotStatusBlocked   = "blocked"
)

/* ===================== Model ===================== */

// A time slot is one bookable interval on one court on one date. Its price is
// fixed at generation time, so invoices built later are immune to price-rule
// changes.
type TimeSlotModel struct {
	TimeSlotID uuid.UUID `gorm:"column:time_slot_id;type:uuid;default:gen_random_uuid();primaryKey" json:"time_slot_id"`

	TimeSlotCourtID uuid.UUID `gorm:"column:time_slot_court_id;type:uuid;not null;index;uniqueIndex:uq_time_slots_court_date_index" json:"time_slot_court_id"`
	TimeSlotDate    time.Time `gorm:"column:time_slot_date;type:date;not null;uniqueIndex:uq_time_slots_court_date_index" json:"time_slot_date"`
	TimeSlotIndex   int       `gorm:"column:time_slot_index;not null;uniqueIndex:uq_time_slots_court_date_index" json:"time_slot_index"`

	TimeSlotStartTime string `gorm:"column:time_slot_start_time;type:varchar(5);not null" json:"time_slot_start_time"` // "07:00"
	TimeSlotEndTime   string `gorm:"column:time_slot_end_time;type:varchar(5);not null" json:"time_slot_end_time"`     // "08:00"

	TimeSlotPrice  float64 `gorm:"column:time_slot_price;type:decimal(12,2);not null;check:time_slot_price >= 0" json:"time_slot_price"`
	TimeSlotStatus string  `gorm:"column:time_slot_status;type:varchar(10);default:'available'" json:"time_slot_status"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (TimeSlotModel) TableName() string { return "time_slots" }
