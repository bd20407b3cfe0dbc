package repository

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsDuplicateErr(t *testing.T) {
	// Raw postgres unique violation as the pgx driver surfaces it; GORM does
	// not translate it for us.
	pgUnique := errors.New(`ERROR: duplicate key value violates unique constraint "idx_invoices_invoice_booking_id" (SQLSTATE 23505)`)
	assert.True(t, isDuplicateErr(pgUnique))

	backstop := errors.New(`ERROR: duplicate key value violates unique constraint "uq_bookings_court_slot_date_active" (SQLSTATE 23505)`)
	assert.True(t, isDuplicateErr(backstop))

	assert.False(t, isDuplicateErr(errors.New("connection refused")))
	assert.False(t, isDuplicateErr(errors.New(`ERROR: null value in column "invoice_date" (SQLSTATE 23502)`)))
}
