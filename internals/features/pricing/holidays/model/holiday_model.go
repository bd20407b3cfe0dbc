package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type HolidayModel struct {
	HolidayID uuid.UUID `gorm:"column:holiday_id;type:uuid;default:gen_random_uuid();primaryKey" json:"holiday_id"`

	HolidayDate time.Time `gorm:"column:holiday_date;type:date;not null" json:"holiday_date"`
	HolidayName string    `gorm:"column:holiday_name;type:varchar(100);not null" json:"holiday_name"`

	// Recurring holidays match month+day in any year (e.g. New Year's Day)
	HolidayIsRecurringYearly bool `gorm:"column:holiday_is_recurring_yearly;default:false" json:"holiday_is_recurring_yearly"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (HolidayModel) TableName() string { return "holidays" }
