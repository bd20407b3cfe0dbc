package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courtku_backend/internals/apperror"
	model "courtku_backend/internals/features/courts/time_slots/model"
)

type fakeQuoter struct {
	prices map[int]float64 // per slot index
	fail   bool
}

func (f *fakeQuoter) ResolvePrice(_ uuid.UUID, _ time.Time, slotIndex int) (float64, error) {
	if f.fail {
		return 0, apperror.PriceNotConfigured("no rule")
	}
	if p, ok := f.prices[slotIndex]; ok {
		return p, nil
	}
	return 150_000, nil
}

type fakeSlotStore struct {
	existing map[int]bool
	created  []model.TimeSlotModel
}

func (f *fakeSlotStore) ExistingIndexes(_ uuid.UUID, _ time.Time) (map[int]bool, error) {
	return f.existing, nil
}

func (f *fakeSlotStore) CreateBatch(slots []model.TimeSlotModel) error {
	f.created = append(f.created, slots...)
	return nil
}

func TestSlotGenerator_FullDay(t *testing.T) {
	store := &fakeSlotStore{existing: map[int]bool{}}
	gen := NewSlotGenerator(&fakeQuoter{prices: map[int]float64{0: 120_000}}, store)

	slots, err := gen.GenerateSlots(uuid.New(), time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, slots, GridSlotCount)

	assert.Equal(t, "06:00", slots[0].TimeSlotStartTime)
	assert.Equal(t, "07:00", slots[0].TimeSlotEndTime)
	assert.Equal(t, 120_000.0, slots[0].TimeSlotPrice)
	assert.Equal(t, 150_000.0, slots[1].TimeSlotPrice)

	last := slots[len(slots)-1]
	assert.Equal(t, "21:00", last.TimeSlotStartTime)
	assert.Equal(t, "22:00", last.TimeSlotEndTime)
	assert.Equal(t, model.TimeSlotStatusAvailable, last.TimeSlotStatus)

	assert.Len(t, store.created, GridSlotCount)
}

func TestSlotGenerator_SkipsExistingIndexes(t *testing.T) {
	store := &fakeSlotStore{existing: map[int]bool{0: true, 1: true, 5: true}}
	gen := NewSlotGenerator(&fakeQuoter{}, store)

	slots, err := gen.GenerateSlots(uuid.New(), time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Len(t, slots, GridSlotCount-3)

	for _, s := range slots {
		assert.False(t, store.existing[s.TimeSlotIndex], "index %d was regenerated", s.TimeSlotIndex)
	}
}

func TestSlotGenerator_FullyGeneratedDayIsNoop(t *testing.T) {
	existing := map[int]bool{}
	for i := 0; i < GridSlotCount; i++ {
		existing[i] = true
	}
	store := &fakeSlotStore{existing: existing}
	gen := NewSlotGenerator(&fakeQuoter{}, store)

	slots, err := gen.GenerateSlots(uuid.New(), time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Empty(t, slots)
	assert.Empty(t, store.created)
}

func TestSlotGenerator_MissingPriceRuleAbortsWholeDay(t *testing.T) {
	store := &fakeSlotStore{existing: map[int]bool{}}
	gen := NewSlotGenerator(&fakeQuoter{fail: true}, store)

	_, err := gen.GenerateSlots(uuid.New(), time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC))
	require.Error(t, err)
	assert.Equal(t, apperror.CodePriceNotConfigured, apperror.CodeOf(err))
	assert.Empty(t, store.created, "nothing must be written when pricing fails")
}
