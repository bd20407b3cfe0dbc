package repository

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"courtku_backend/internals/apperror"
	m "courtku_backend/internals/features/bookings/bookings/model"
	slotModel "courtku_backend/internals/features/courts/time_slots/model"
)

type BookingRepository struct {
	DB *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{DB: db}
}

func (r *BookingRepository) ActiveBookingExists(courtID, timeSlotID uuid.UUID, date time.Time) (bool, error) {
	var n int64
	err := r.DB.Model(&m.BookingModel{}).
		Where("booking_court_id = ? AND booking_time_slot_id = ? AND booking_date = ?",
			courtID, timeSlotID, date.Format("2006-01-02")).
		Where("booking_status <> ?", m.BookingStatusCancelled).
		Count(&n).Error
	return n > 0, err
}

// CreateWithGuard runs the availability check and the insert as one unit so
// two concurrent requests for the same slot cannot both pass. Candidate rows
// are locked FOR UPDATE; the partial unique index catches whatever slips
// through on databases that allow the race anyway.
func (r *BookingRepository) CreateWithGuard(b *m.BookingModel) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var existing m.BookingModel
		err := tx.Model(&m.BookingModel{}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("booking_court_id = ? AND booking_time_slot_id = ? AND booking_date = ?",
				b.BookingCourtID, b.BookingTimeSlotID, b.BookingDate.Format("2006-01-02")).
			Where("booking_status <> ?", m.BookingStatusCancelled).
			Take(&existing).Error

		if err == nil {
			return apperror.Conflict("slot is already booked for that date")
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if err := tx.Create(b).Error; err != nil {
			msg := strings.ToLower(err.Error())
			if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
				return apperror.Conflict("slot is already booked for that date")
			}
			return err
		}

		// Occupy the slot in the same transaction.
		res := tx.Model(&slotModel.TimeSlotModel{}).
			Where("time_slot_id = ? AND time_slot_status = ?",
				b.BookingTimeSlotID, slotModel.TimeSlotStatusAvailable).
			Update("time_slot_status", slotModel.TimeSlotStatusBooked)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperror.Conflict("slot is not available")
		}

		return nil
	})
}

// CancelAndFreeSlot cancels the booking and releases its slot atomically.
func (r *BookingRepository) CancelAndFreeSlot(bookingID uuid.UUID) (*m.BookingModel, error) {
	var b m.BookingModel
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&b, "booking_id = ?", bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NotFound("booking not found")
			}
			return err
		}
		if b.BookingStatus == m.BookingStatusCancelled {
			return apperror.IllegalState("booking is already cancelled")
		}
		if b.BookingStatus == m.BookingStatusCompleted {
			return apperror.IllegalState("completed bookings cannot be cancelled")
		}

		b.BookingStatus = m.BookingStatusCancelled
		if err := tx.Save(&b).Error; err != nil {
			return err
		}

		return tx.Model(&slotModel.TimeSlotModel{}).
			Where("time_slot_id = ? AND time_slot_status = ?",
				b.BookingTimeSlotID, slotModel.TimeSlotStatusBooked).
			Update("time_slot_status", slotModel.TimeSlotStatusAvailable).Error
	})
	if err != nil {
		return nil, err
	}
	return &b, nil
}
