package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"courtku_backend/internals/apperror"
)

// ActiveBookingChecker reports whether a non-cancelled booking already holds
// the (court, slot, date) triple.
type ActiveBookingChecker interface {
	ActiveBookingExists(courtID, timeSlotID uuid.UUID, date time.Time) (bool, error)
}

// ConflictGuard enforces at most one active booking per (court, slot, date).
// The check alone is advisory: the repository runs it again inside the insert
// transaction with row locks, and a partial unique index backs both up.
type ConflictGuard struct {
	store ActiveBookingChecker
}

func NewConflictGuard(store ActiveBookingChecker) *ConflictGuard {
	return &ConflictGuard{store: store}
}

func (g *ConflictGuard) AssertAvailable(courtID, timeSlotID uuid.UUID, date time.Time) error {
	taken, err := g.store.ActiveBookingExists(courtID, timeSlotID, date)
	if err != nil {
		return err
	}
	if taken {
		return apperror.Conflict(fmt.Sprintf(
			"slot %s on %s is already booked", timeSlotID, date.Format("2006-01-02"),
		))
	}
	return nil
}
