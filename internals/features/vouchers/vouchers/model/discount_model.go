package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ===================== Constants ===================== */

const (
	DiscountTypePercentage = "PERCENTAGE"
	DiscountTypeFixed      = "FIXED"

	DiscountStatusActive   = "ACTIVE"
	DiscountStatusInactive = "INACTIVE"
	DiscountStatusExpired  = "EXPIRED"
)

func IsValidDiscountType(t string) bool {
	return t == DiscountTypePercentage || t == DiscountTypeFixed
}

/* ===================== Model ===================== */

type DiscountModel struct {
	DiscountID uuid.UUID `gorm:"column:discount_id;type:uuid;default:gen_random_uuid();primaryKey" json:"discount_id"`

	DiscountCode string `gorm:"column:discount_code;type:varchar(50);not null;unique" json:"discount_code"`
	DiscountName string `gorm:"column:discount_name;type:varchar(120);not null" json:"discount_name"`

	DiscountType  string  `gorm:"column:discount_type;type:varchar(10);not null" json:"discount_type"`
	DiscountValue float64 `gorm:"column:discount_value;type:decimal(12,2);not null;check:discount_value > 0" json:"discount_value"`

	DiscountMinOrderAmount    *float64 `gorm:"column:discount_min_order_amount;type:decimal(12,2)" json:"discount_min_order_amount,omitempty"`
	DiscountMaxDiscountAmount *float64 `gorm:"column:discount_max_discount_amount;type:decimal(12,2)" json:"discount_max_discount_amount,omitempty"`

	DiscountUsageLimit *int `gorm:"column:discount_usage_limit" json:"discount_usage_limit,omitempty"`
	DiscountUsedCount  int  `gorm:"column:discount_used_count;not null;default:0" json:"discount_used_count"`

	DiscountValidFrom time.Time  `gorm:"column:discount_valid_from;type:date;not null" json:"discount_valid_from"`
	DiscountValidTo   *time.Time `gorm:"column:discount_valid_to;type:date" json:"discount_valid_to,omitempty"`

	DiscountStatus string `gorm:"column:discount_status;type:varchar(10);default:'ACTIVE';index" json:"discount_status"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (DiscountModel) TableName() string { return "discounts" }

// IsExhausted reports whether the usage limit has been reached.
func (d *DiscountModel) IsExhausted() bool {
	return d.DiscountUsageLimit != nil && d.DiscountUsedCount >= *d.DiscountUsageLimit
}
