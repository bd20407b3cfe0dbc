package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courtku_backend/internals/apperror"
	invModel "courtku_backend/internals/features/billing/invoices/model"
	"courtku_backend/internals/features/vouchers/vouchers/model"
)

/* ===================== Fakes ===================== */

type fakeUow struct {
	vouchers map[uuid.UUID]*model.DiscountModel
	byCode   map[string]uuid.UUID
	invoices map[uuid.UUID]*invModel.InvoiceModel
}

func newFakeUow() *fakeUow {
	return &fakeUow{
		vouchers: map[uuid.UUID]*model.DiscountModel{},
		byCode:   map[string]uuid.UUID{},
		invoices: map[uuid.UUID]*invModel.InvoiceModel{},
	}
}

func (f *fakeUow) Vouchers() VoucherStore { return f }

func (f *fakeUow) Invoices() InvoiceAccess { return f }

func (f *fakeUow) InTx(fn func(Stores) error) error { return fn(f) }

func (f *fakeUow) GetByID(id uuid.UUID) (*model.DiscountModel, error) {
	v, ok := f.vouchers[id]
	if !ok {
		return nil, apperror.NotFound("voucher not found")
	}
	cp := *v
	return &cp, nil
}

func (f *fakeUow) GetByCode(code string) (*model.DiscountModel, error) {
	id, ok := f.byCode[code]
	if !ok {
		return nil, apperror.NotFound("voucher not found")
	}
	return f.GetByID(id)
}

func (f *fakeUow) IncrementUsage(id uuid.UUID) error {
	v := f.vouchers[id]
	if v.IsExhausted() {
		return apperror.IllegalState("voucher has reached its usage limit")
	}
	v.DiscountUsedCount++
	return nil
}

func (f *fakeUow) DecrementUsage(id uuid.UUID) error {
	v := f.vouchers[id]
	if v.DiscountUsedCount > 0 {
		v.DiscountUsedCount--
	}
	return nil
}

func (f *fakeUow) ExpireOverdue(today time.Time) (int64, error) {
	var n int64
	for _, v := range f.vouchers {
		if v.DiscountStatus == model.DiscountStatusActive &&
			v.DiscountValidTo != nil && v.DiscountValidTo.Before(today) {
			v.DiscountStatus = model.DiscountStatusExpired
			n++
		}
	}
	return n, nil
}

func (f *fakeUow) GetInvoice(invoiceID uuid.UUID) (*invModel.InvoiceModel, error) {
	inv, ok := f.invoices[invoiceID]
	if !ok {
		return nil, apperror.NotFound("invoice not found")
	}
	cp := *inv
	return &cp, nil
}

func (f *fakeUow) SaveDiscount(inv *invModel.InvoiceModel) error {
	cp := *inv
	f.invoices[inv.InvoiceID] = &cp
	return nil
}

/* ===================== Helpers ===================== */

func (f *fakeUow) addVoucher(v *model.DiscountModel) *model.DiscountModel {
	if v.DiscountID == uuid.Nil {
		v.DiscountID = uuid.New()
	}
	if v.DiscountStatus == "" {
		v.DiscountStatus = model.DiscountStatusActive
	}
	if v.DiscountValidFrom.IsZero() {
		v.DiscountValidFrom = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	}
	f.vouchers[v.DiscountID] = v
	f.byCode[v.DiscountCode] = v.DiscountID
	return v
}

func (f *fakeUow) addInvoice(original float64) *invModel.InvoiceModel {
	inv := &invModel.InvoiceModel{
		InvoiceID:             uuid.New(),
		InvoiceBookingID:      uuid.New(),
		InvoiceOriginalAmount: original,
		InvoiceFinalAmount:    original,
		InvoiceStatus:         invModel.InvoiceStatusPending,
	}
	f.invoices[inv.InvoiceID] = inv
	return inv
}

func engineAt(uow UnitOfWork, day time.Time) *VoucherEngine {
	e := NewVoucherEngine(uow)
	e.now = func() time.Time { return day }
	return e
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

var testDay = time.Date(2026, 6, 15, 10, 0, 0, 0, time.UTC)

/* ===================== Tests ===================== */

func TestApplyVoucher_PercentageWithCap(t *testing.T) {
	uow := newFakeUow()
	inv := uow.addInvoice(300_000)
	v := uow.addVoucher(&model.DiscountModel{
		DiscountCode:              "SUMMER10",
		DiscountName:              "Summer 10%",
		DiscountType:              model.DiscountTypePercentage,
		DiscountValue:             10,
		DiscountMaxDiscountAmount: floatPtr(25_000),
	})

	e := engineAt(uow, testDay)

	applied, err := e.ApplyVoucher(inv.InvoiceID, v.DiscountID)
	require.NoError(t, err)

	// 10% of 300,000 is 30,000, capped at 25,000.
	assert.Equal(t, 25_000.0, applied.InvoiceDiscountAmount)
	assert.Equal(t, 275_000.0, applied.InvoiceFinalAmount)
	require.NotNil(t, applied.InvoiceAppliedDiscountID)
	assert.Equal(t, v.DiscountID, *applied.InvoiceAppliedDiscountID)
	assert.Equal(t, 1, uow.vouchers[v.DiscountID].DiscountUsedCount)
}

func TestApplyVoucher_FixedNeverGoesNegative(t *testing.T) {
	uow := newFakeUow()
	inv := uow.addInvoice(300_000)
	v := uow.addVoucher(&model.DiscountModel{
		DiscountCode:  "BIGFIX",
		DiscountName:  "Huge fixed cut",
		DiscountType:  model.DiscountTypeFixed,
		DiscountValue: 500_000,
	})

	e := engineAt(uow, testDay)

	applied, err := e.ApplyVoucher(inv.InvoiceID, v.DiscountID)
	require.NoError(t, err)

	assert.Equal(t, 300_000.0, applied.InvoiceDiscountAmount)
	assert.Equal(t, 0.0, applied.InvoiceFinalAmount)
}

func TestApplyVoucher_PercentageFloors(t *testing.T) {
	uow := newFakeUow()
	inv := uow.addInvoice(99_999)
	v := uow.addVoucher(&model.DiscountModel{
		DiscountCode:  "THIRD",
		DiscountName:  "One third",
		DiscountType:  model.DiscountTypePercentage,
		DiscountValue: 33,
	})

	e := engineAt(uow, testDay)

	applied, err := e.ApplyVoucher(inv.InvoiceID, v.DiscountID)
	require.NoError(t, err)

	// floor(99,999 × 0.33) = 32,999
	assert.Equal(t, 32_999.0, applied.InvoiceDiscountAmount)
}

func TestApplyVoucher_ReplacementReleasesOldUse(t *testing.T) {
	uow := newFakeUow()
	inv := uow.addInvoice(300_000)
	first := uow.addVoucher(&model.DiscountModel{
		DiscountCode:  "FIRST",
		DiscountName:  "First",
		DiscountType:  model.DiscountTypePercentage,
		DiscountValue: 10,
	})
	second := uow.addVoucher(&model.DiscountModel{
		DiscountCode:  "SECOND",
		DiscountName:  "Second",
		DiscountType:  model.DiscountTypeFixed,
		DiscountValue: 40_000,
	})

	e := engineAt(uow, testDay)

	_, err := e.ApplyVoucher(inv.InvoiceID, first.DiscountID)
	require.NoError(t, err)

	applied, err := e.ApplyVoucher(inv.InvoiceID, second.DiscountID)
	require.NoError(t, err)

	assert.Equal(t, 0, uow.vouchers[first.DiscountID].DiscountUsedCount)
	assert.Equal(t, 1, uow.vouchers[second.DiscountID].DiscountUsedCount)
	assert.Equal(t, 40_000.0, applied.InvoiceDiscountAmount)
	assert.Equal(t, second.DiscountID, *applied.InvoiceAppliedDiscountID)
}

func TestApplyVoucher_FailedReplacementLeavesNoDiscount(t *testing.T) {
	uow := newFakeUow()
	inv := uow.addInvoice(300_000)
	first := uow.addVoucher(&model.DiscountModel{
		DiscountCode:  "FIRST",
		DiscountName:  "First",
		DiscountType:  model.DiscountTypePercentage,
		DiscountValue: 10,
	})
	picky := uow.addVoucher(&model.DiscountModel{
		DiscountCode:           "PICKY",
		DiscountName:           "High minimum",
		DiscountType:           model.DiscountTypeFixed,
		DiscountValue:          50_000,
		DiscountMinOrderAmount: floatPtr(1_000_000),
	})

	e := engineAt(uow, testDay)

	_, err := e.ApplyVoucher(inv.InvoiceID, first.DiscountID)
	require.NoError(t, err)

	_, err = e.ApplyVoucher(inv.InvoiceID, picky.DiscountID)
	require.Error(t, err)
	assert.Equal(t, apperror.CodeIllegalState, apperror.CodeOf(err))

	// The old voucher stays released even though the new one failed.
	assert.Equal(t, 0, uow.vouchers[first.DiscountID].DiscountUsedCount)
	after, _ := uow.GetInvoice(inv.InvoiceID)
	assert.Equal(t, 0.0, after.InvoiceDiscountAmount)
	assert.Equal(t, 300_000.0, after.InvoiceFinalAmount)
	assert.Nil(t, after.InvoiceAppliedDiscountID)
}

func TestApplyVoucher_UsageLimitExhausted(t *testing.T) {
	uow := newFakeUow()
	inv := uow.addInvoice(300_000)
	v := uow.addVoucher(&model.DiscountModel{
		DiscountCode:       "LIMITED",
		DiscountName:       "One use only",
		DiscountType:       model.DiscountTypeFixed,
		DiscountValue:      10_000,
		DiscountUsageLimit: intPtr(1),
		DiscountUsedCount:  1,
	})

	e := engineAt(uow, testDay)

	_, err := e.ApplyVoucher(inv.InvoiceID, v.DiscountID)
	require.Error(t, err)
	assert.Equal(t, apperror.CodeIllegalState, apperror.CodeOf(err))

	after, _ := uow.GetInvoice(inv.InvoiceID)
	assert.Equal(t, 0.0, after.InvoiceDiscountAmount)
}

func TestApplyVoucher_PaidInvoiceRejected(t *testing.T) {
	uow := newFakeUow()
	inv := uow.addInvoice(300_000)
	uow.invoices[inv.InvoiceID].InvoiceStatus = invModel.InvoiceStatusPaid
	v := uow.addVoucher(&model.DiscountModel{
		DiscountCode:  "LATE",
		DiscountName:  "Too late",
		DiscountType:  model.DiscountTypeFixed,
		DiscountValue: 10_000,
	})

	e := engineAt(uow, testDay)

	_, err := e.ApplyVoucher(inv.InvoiceID, v.DiscountID)
	require.Error(t, err)
	assert.Equal(t, apperror.CodeIllegalState, apperror.CodeOf(err))
}

func TestApplyVoucher_OutsideValidityWindow(t *testing.T) {
	uow := newFakeUow()
	inv := uow.addInvoice(300_000)
	past := time.Date(2026, 5, 31, 0, 0, 0, 0, time.UTC)
	v := uow.addVoucher(&model.DiscountModel{
		DiscountCode:    "MAYONLY",
		DiscountName:    "May only",
		DiscountType:    model.DiscountTypeFixed,
		DiscountValue:   10_000,
		DiscountValidTo: &past,
	})

	e := engineAt(uow, testDay)

	_, err := e.ApplyVoucher(inv.InvoiceID, v.DiscountID)
	require.Error(t, err)
	assert.Equal(t, apperror.CodeIllegalState, apperror.CodeOf(err))
}

func TestRemoveVoucher_RestoresFullPrice(t *testing.T) {
	uow := newFakeUow()
	inv := uow.addInvoice(300_000)
	v := uow.addVoucher(&model.DiscountModel{
		DiscountCode:  "TEMP",
		DiscountName:  "Temporary",
		DiscountType:  model.DiscountTypeFixed,
		DiscountValue: 30_000,
	})

	e := engineAt(uow, testDay)

	_, err := e.ApplyVoucher(inv.InvoiceID, v.DiscountID)
	require.NoError(t, err)

	removed, err := e.RemoveVoucher(inv.InvoiceID)
	require.NoError(t, err)

	assert.Equal(t, 0.0, removed.InvoiceDiscountAmount)
	assert.Equal(t, 300_000.0, removed.InvoiceFinalAmount)
	assert.Nil(t, removed.InvoiceAppliedDiscountID)
	assert.Equal(t, 0, uow.vouchers[v.DiscountID].DiscountUsedCount)
}

func TestCalculateDiscount_DoesNotTouchUsage(t *testing.T) {
	uow := newFakeUow()
	v := uow.addVoucher(&model.DiscountModel{
		DiscountCode:  "PREVIEW",
		DiscountName:  "Preview",
		DiscountType:  model.DiscountTypePercentage,
		DiscountValue: 20,
	})

	e := engineAt(uow, testDay)

	discount, err := e.CalculateDiscount("PREVIEW", 150_000)
	require.NoError(t, err)
	assert.Equal(t, 30_000.0, discount)
	assert.Equal(t, 0, uow.vouchers[v.DiscountID].DiscountUsedCount)
}

func TestCanUseVoucher(t *testing.T) {
	uow := newFakeUow()
	uow.addVoucher(&model.DiscountModel{
		DiscountCode:           "MIN100",
		DiscountName:           "Min 100k",
		DiscountType:           model.DiscountTypeFixed,
		DiscountValue:          10_000,
		DiscountMinOrderAmount: floatPtr(100_000),
	})

	e := engineAt(uow, testDay)

	assert.True(t, e.CanUseVoucher("MIN100", 150_000))
	assert.False(t, e.CanUseVoucher("MIN100", 50_000))
	assert.False(t, e.CanUseVoucher("NOSUCH", 150_000))
}

func TestUpdateExpiredVouchers_Idempotent(t *testing.T) {
	uow := newFakeUow()
	past := time.Date(2026, 5, 31, 0, 0, 0, 0, time.UTC)
	future := time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)
	expired := uow.addVoucher(&model.DiscountModel{
		DiscountCode:    "OLD",
		DiscountName:    "Old",
		DiscountType:    model.DiscountTypeFixed,
		DiscountValue:   10_000,
		DiscountValidTo: &past,
	})
	alive := uow.addVoucher(&model.DiscountModel{
		DiscountCode:    "ALIVE",
		DiscountName:    "Alive",
		DiscountType:    model.DiscountTypeFixed,
		DiscountValue:   10_000,
		DiscountValidTo: &future,
	})

	e := engineAt(uow, testDay)

	n, err := e.UpdateExpiredVouchers()
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.Equal(t, model.DiscountStatusExpired, uow.vouchers[expired.DiscountID].DiscountStatus)
	assert.Equal(t, model.DiscountStatusActive, uow.vouchers[alive.DiscountID].DiscountStatus)

	n, err = e.UpdateExpiredVouchers()
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}
