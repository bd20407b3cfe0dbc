package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ===================== Constants ===================== */

const (
	DayTypeWeekday = "weekday"
	DayTypeWeekend = "weekend"
	DayTypeHoliday = "holiday"
)

/* ===================== Model ===================== */

type PriceSettingModel struct {
	PriceSettingID uuid.UUID `gorm:"column:price_setting_id;type:uuid;default:gen_random_uuid();primaryKey" json:"price_setting_id"`

	// NULL = applies to all courts
	PriceSettingCourtID *uuid.UUID `gorm:"column:price_setting_court_id;type:uuid;index" json:"price_setting_court_id,omitempty"`
	// NULL = applies to all slot indexes
	PriceSettingTimeSlotIndex *int `gorm:"column:price_setting_time_slot_index" json:"price_setting_time_slot_index,omitempty"`

	PriceSettingDayType string  `gorm:"column:price_setting_day_type;type:varchar(10);not null;index" json:"price_setting_day_type"`
	PriceSettingPrice   float64 `gorm:"column:price_setting_price;type:decimal(12,2);not null;check:price_setting_price >= 0" json:"price_setting_price"`

	PriceSettingIsActive      bool       `gorm:"column:price_setting_is_active;default:true" json:"price_setting_is_active"`
	PriceSettingEffectiveFrom time.Time  `gorm:"column:price_setting_effective_from;type:date;not null" json:"price_setting_effective_from"`
	// NULL = open-ended
	PriceSettingEffectiveTo *time.Time `gorm:"column:price_setting_effective_to;type:date" json:"price_setting_effective_to,omitempty"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (PriceSettingModel) TableName() string { return "price_settings" }

func IsValidDayType(s string) bool {
	switch s {
	case DayTypeWeekday, DayTypeWeekend, DayTypeHoliday:
		return true
	}
	return false
}
