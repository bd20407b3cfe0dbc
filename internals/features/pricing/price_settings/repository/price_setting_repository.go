package repository

import (
	"time"

	"gorm.io/gorm"

	m "courtku_backend/internals/features/pricing/price_settings/model"
)

type PriceSettingRepository struct {
	DB *gorm.DB
}

func NewPriceSettingRepository(db *gorm.DB) *PriceSettingRepository {
	return &PriceSettingRepository{DB: db}
}

// FindActiveByDayType returns the settings the resolver cascades over:
// active, effective on the date, for one day type. Newest effective_from
// first so the latest rule wins within a specificity level.
func (r *PriceSettingRepository) FindActiveByDayType(dayType string, date time.Time) ([]m.PriceSettingModel, error) {
	day := date.Format("2006-01-02")

	var rows []m.PriceSettingModel
	err := r.DB.
		Where("price_setting_day_type = ? AND price_setting_is_active = TRUE", dayType).
		Where("price_setting_effective_from <= ?", day).
		Where("price_setting_effective_to IS NULL OR price_setting_effective_to >= ?", day).
		Order("price_setting_effective_from DESC").
		Find(&rows).Error
	return rows, err
}
