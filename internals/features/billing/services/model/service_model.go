package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Ad-hoc services sold alongside a court rental: racket rental, shuttlecocks,
// drinks, coaching.
type ServiceModel struct {
	ServiceID uuid.UUID `gorm:"column:service_id;type:uuid;default:gen_random_uuid();primaryKey" json:"service_id"`

	ServiceName      string  `gorm:"column:service_name;type:varchar(80);not null;unique" json:"service_name"`
	ServiceUnitPrice float64 `gorm:"column:service_unit_price;type:decimal(12,2);not null;check:service_unit_price >= 0" json:"service_unit_price"`
	ServiceIsActive  bool    `gorm:"column:service_is_active;default:true" json:"service_is_active"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (ServiceModel) TableName() string { return "services" }
