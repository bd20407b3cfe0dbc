package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	m "courtku_backend/internals/features/courts/time_slots/model"
)

type TimeSlotRepository struct {
	DB *gorm.DB
}

func NewTimeSlotRepository(db *gorm.DB) *TimeSlotRepository {
	return &TimeSlotRepository{DB: db}
}

func (r *TimeSlotRepository) ExistingIndexes(courtID uuid.UUID, date time.Time) (map[int]bool, error) {
	var indexes []int
	err := r.DB.Model(&m.TimeSlotModel{}).
		Where("time_slot_court_id = ? AND time_slot_date = ?", courtID, date.Format("2006-01-02")).
		Pluck("time_slot_index", &indexes).Error
	if err != nil {
		return nil, err
	}

	out := make(map[int]bool, len(indexes))
	for _, idx := range indexes {
		out[idx] = true
	}
	return out, nil
}

func (r *TimeSlotRepository) CreateBatch(slots []m.TimeSlotModel) error {
	return r.DB.Create(&slots).Error
}
