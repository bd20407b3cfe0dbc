package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courtku_backend/internals/apperror"
)

type fakeChecker struct {
	taken map[string]bool
}

func key(courtID, slotID uuid.UUID, date time.Time) string {
	return courtID.String() + "|" + slotID.String() + "|" + date.Format("2006-01-02")
}

func (f *fakeChecker) ActiveBookingExists(courtID, timeSlotID uuid.UUID, date time.Time) (bool, error) {
	return f.taken[key(courtID, timeSlotID, date)], nil
}

func TestConflictGuard_FreeSlotPasses(t *testing.T) {
	guard := NewConflictGuard(&fakeChecker{taken: map[string]bool{}})

	err := guard.AssertAvailable(uuid.New(), uuid.New(), time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
}

func TestConflictGuard_TakenSlotConflicts(t *testing.T) {
	courtID := uuid.New()
	slotID := uuid.New()
	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	checker := &fakeChecker{taken: map[string]bool{key(courtID, slotID, date): true}}
	guard := NewConflictGuard(checker)

	err := guard.AssertAvailable(courtID, slotID, date)
	require.Error(t, err)
	assert.Equal(t, apperror.CodeConflict, apperror.CodeOf(err))

	// Same slot on another date is free.
	require.NoError(t, guard.AssertAvailable(courtID, slotID, date.AddDate(0, 0, 1)))
	// Another slot on the same date is free.
	require.NoError(t, guard.AssertAvailable(courtID, uuid.New(), date))
}
