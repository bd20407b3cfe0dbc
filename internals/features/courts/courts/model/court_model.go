package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type CourtModel struct {
	CourtID uuid.UUID `gorm:"column:court_id;type:uuid;default:gen_random_uuid();primaryKey" json:"court_id"`

	CourtName        string  `gorm:"column:court_name;type:varchar(80);not null;unique" json:"court_name"`
	CourtDescription *string `gorm:"column:court_description;type:text" json:"court_description,omitempty"`

	// e.g. {"led lighting","synthetic turf","tribune"}
	CourtFacilities pq.StringArray `gorm:"column:court_facilities;type:text[]" json:"court_facilities,omitempty"`

	CourtIsActive bool `gorm:"column:court_is_active;default:true" json:"court_is_active"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (CourtModel) TableName() string { return "courts" }
