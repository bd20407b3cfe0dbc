package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	model "courtku_backend/internals/features/courts/time_slots/model"
)

// The daily grid: hourly slots from 06:00 to 22:00, indexed from 0.
const (
	GridOpenHour  = 6
	GridCloseHour = 22
	GridSlotCount = GridCloseHour - GridOpenHour
)

// PriceQuoter is the pricing cascade; slot generation is the one place that
// consults it, so generated slots carry the price of their day.
type PriceQuoter interface {
	ResolvePrice(courtID uuid.UUID, date time.Time, slotIndex int) (float64, error)
}

type SlotStore interface {
	ExistingIndexes(courtID uuid.UUID, date time.Time) (map[int]bool, error)
	CreateBatch(slots []model.TimeSlotModel) error
}

type SlotGenerator struct {
	quoter PriceQuoter
	store  SlotStore
}

func NewSlotGenerator(quoter PriceQuoter, store SlotStore) *SlotGenerator {
	return &SlotGenerator{quoter: quoter, store: store}
}

// GenerateSlots fills the day's grid for one court. Indexes that already
// exist are left alone, so the operation is safe to repeat. All prices are
// resolved before anything is written: a missing price rule aborts the whole
// day rather than producing a partially priced grid.
func (g *SlotGenerator) GenerateSlots(courtID uuid.UUID, date time.Time) ([]model.TimeSlotModel, error) {
	existing, err := g.store.ExistingIndexes(courtID, date)
	if err != nil {
		return nil, err
	}

	var slots []model.TimeSlotModel
	for idx := 0; idx < GridSlotCount; idx++ {
		if existing[idx] {
			continue
		}

		price, err := g.quoter.ResolvePrice(courtID, date, idx)
		if err != nil {
			return nil, err
		}

		slots = append(slots, model.TimeSlotModel{
			TimeSlotCourtID:   courtID,
			TimeSlotDate:      date,
			TimeSlotIndex:     idx,
			TimeSlotStartTime: gridTime(GridOpenHour + idx),
			TimeSlotEndTime:   gridTime(GridOpenHour + idx + 1),
			TimeSlotPrice:     price,
			TimeSlotStatus:    model.TimeSlotStatusAvailable,
		})
	}

	if len(slots) == 0 {
		return nil, nil
	}
	if err := g.store.CreateBatch(slots); err != nil {
		return nil, err
	}
	return slots, nil
}

func gridTime(hour int) string {
	return fmt.Sprintf("%02d:00", hour)
}
