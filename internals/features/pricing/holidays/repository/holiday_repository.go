package repository

import (
	"time"

	"gorm.io/gorm"

	m "courtku_backend/internals/features/pricing/holidays/model"
)

// HolidayRepository backs the day classifier's holiday lookup.
type HolidayRepository struct {
	DB *gorm.DB
}

func NewHolidayRepository(db *gorm.DB) *HolidayRepository {
	return &HolidayRepository{DB: db}
}

func (r *HolidayRepository) ExistsOnDate(date time.Time) (bool, error) {
	var n int64
	err := r.DB.Model(&m.HolidayModel{}).
		Where("holiday_date = ? AND holiday_is_recurring_yearly = FALSE", date.Format("2006-01-02")).
		Count(&n).Error
	return n > 0, err
}

func (r *HolidayRepository) ExistsRecurring(month time.Month, day int) (bool, error) {
	var n int64
	err := r.DB.Model(&m.HolidayModel{}).
		Where("holiday_is_recurring_yearly = TRUE").
		Where("EXTRACT(MONTH FROM holiday_date) = ? AND EXTRACT(DAY FROM holiday_date) = ?", int(month), day).
		Count(&n).Error
	return n > 0, err
}
