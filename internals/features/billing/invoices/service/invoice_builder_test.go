package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courtku_backend/internals/apperror"
	"courtku_backend/internals/features/billing/invoices/model"
)

/* ===================== Fakes ===================== */

type fakeBookingSource struct {
	bookings map[uuid.UUID]*BillableBooking
}

func (f *fakeBookingSource) LoadBillableBooking(bookingID uuid.UUID) (*BillableBooking, error) {
	b, ok := f.bookings[bookingID]
	if !ok {
		return nil, apperror.NotFound("booking not found")
	}
	return b, nil
}

type fakeInvoiceStore struct {
	byID        map[uuid.UUID]*model.InvoiceModel
	byBookingID map[uuid.UUID]uuid.UUID
}

func newFakeInvoiceStore() *fakeInvoiceStore {
	return &fakeInvoiceStore{
		byID:        map[uuid.UUID]*model.InvoiceModel{},
		byBookingID: map[uuid.UUID]uuid.UUID{},
	}
}

func (f *fakeInvoiceStore) ExistsForBooking(bookingID uuid.UUID) (bool, error) {
	_, ok := f.byBookingID[bookingID]
	return ok, nil
}

func (f *fakeInvoiceStore) Create(inv *model.InvoiceModel) error {
	inv.InvoiceID = uuid.New()
	for i := range inv.InvoiceDetails {
		inv.InvoiceDetails[i].InvoiceDetailID = uuid.New()
		inv.InvoiceDetails[i].InvoiceDetailInvoiceID = inv.InvoiceID
	}
	f.byID[inv.InvoiceID] = inv
	f.byBookingID[inv.InvoiceBookingID] = inv.InvoiceID
	return nil
}

func (f *fakeInvoiceStore) GetWithDetails(invoiceID uuid.UUID) (*model.InvoiceModel, error) {
	inv, ok := f.byID[invoiceID]
	if !ok {
		return nil, apperror.NotFound("invoice not found")
	}
	cp := *inv
	cp.InvoiceDetails = append([]model.InvoiceDetailModel(nil), inv.InvoiceDetails...)
	return &cp, nil
}

func (f *fakeInvoiceStore) AddDetail(inv *model.InvoiceModel, detail *model.InvoiceDetailModel) error {
	detail.InvoiceDetailID = uuid.New()
	inv.InvoiceDetails[len(inv.InvoiceDetails)-1].InvoiceDetailID = detail.InvoiceDetailID
	f.byID[inv.InvoiceID] = inv
	return nil
}

func (f *fakeInvoiceStore) RemoveDetail(inv *model.InvoiceModel, detailID uuid.UUID) error {
	f.byID[inv.InvoiceID] = inv
	return nil
}

type fakeCatalog struct {
	services map[uuid.UUID]*CatalogService
}

func (f *fakeCatalog) GetService(serviceID uuid.UUID) (*CatalogService, error) {
	svc, ok := f.services[serviceID]
	if !ok {
		return nil, apperror.NotFound("service not found")
	}
	return svc, nil
}

/* ===================== Helpers ===================== */

func waterBooking(t *testing.T) (*fakeBookingSource, uuid.UUID) {
	t.Helper()
	bookingID := uuid.New()
	src := &fakeBookingSource{bookings: map[uuid.UUID]*BillableBooking{
		bookingID: {
			BookingID: bookingID,
			CourtName: "Court 1",
			SlotID:    uuid.New(),
			SlotIndex: 3,
			SlotStart: "09:00",
			SlotEnd:   "10:00",
			SlotPrice: 200_000,
			Services: []BillableService{
				{ServiceID: uuid.New(), Name: "Water bottle", UnitPrice: 50_000, Quantity: 2},
			},
		},
	}}
	return src, bookingID
}

/* ===================== Tests ===================== */

func TestBuildInvoice_TotalsAndLines(t *testing.T) {
	src, bookingID := waterBooking(t)
	store := newFakeInvoiceStore()

	builder := NewInvoiceBuilder(src, store, &fakeCatalog{})

	inv, err := builder.BuildInvoice(bookingID)
	require.NoError(t, err)

	require.Len(t, inv.InvoiceDetails, 2)

	rental := inv.InvoiceDetails[0]
	assert.Equal(t, "Court 1 - Slot 3 (09:00-10:00)", rental.InvoiceDetailItemName)
	assert.True(t, rental.IsCourtRental())
	assert.Equal(t, 200_000.0, rental.InvoiceDetailAmount)

	water := inv.InvoiceDetails[1]
	assert.Equal(t, "Water bottle", water.InvoiceDetailItemName)
	assert.NotNil(t, water.InvoiceDetailServiceID)
	assert.Equal(t, 100_000.0, water.InvoiceDetailAmount)

	assert.Equal(t, 300_000.0, inv.InvoiceOriginalAmount)
	assert.Equal(t, 0.0, inv.InvoiceDiscountAmount)
	assert.Equal(t, 300_000.0, inv.InvoiceFinalAmount)
	assert.Equal(t, model.InvoiceStatusPending, inv.InvoiceStatus)
}

func TestBuildInvoice_SecondInvoiceConflicts(t *testing.T) {
	src, bookingID := waterBooking(t)
	store := newFakeInvoiceStore()
	builder := NewInvoiceBuilder(src, store, &fakeCatalog{})

	_, err := builder.BuildInvoice(bookingID)
	require.NoError(t, err)

	_, err = builder.BuildInvoice(bookingID)
	require.Error(t, err)
	assert.Equal(t, apperror.CodeConflict, apperror.CodeOf(err))
}

func TestBuildInvoice_MissingBooking(t *testing.T) {
	builder := NewInvoiceBuilder(
		&fakeBookingSource{bookings: map[uuid.UUID]*BillableBooking{}},
		newFakeInvoiceStore(),
		&fakeCatalog{},
	)

	_, err := builder.BuildInvoice(uuid.New())
	require.Error(t, err)
	assert.Equal(t, apperror.CodeNotFound, apperror.CodeOf(err))
}

func TestAddDetail_Recomputes(t *testing.T) {
	src, bookingID := waterBooking(t)
	store := newFakeInvoiceStore()

	shuttleID := uuid.New()
	catalog := &fakeCatalog{services: map[uuid.UUID]*CatalogService{
		shuttleID: {ServiceID: shuttleID, Name: "Shuttlecock tube", UnitPrice: 120_000, IsActive: true},
	}}
	builder := NewInvoiceBuilder(src, store, catalog)

	inv, err := builder.BuildInvoice(bookingID)
	require.NoError(t, err)

	updated, err := builder.AddDetail(inv.InvoiceID, shuttleID, 1)
	require.NoError(t, err)

	assert.Len(t, updated.InvoiceDetails, 3)
	assert.Equal(t, 420_000.0, updated.InvoiceOriginalAmount)
	assert.Equal(t, 420_000.0, updated.InvoiceFinalAmount)
}

func TestAddDetail_PaidInvoiceRejected(t *testing.T) {
	src, bookingID := waterBooking(t)
	store := newFakeInvoiceStore()

	shuttleID := uuid.New()
	catalog := &fakeCatalog{services: map[uuid.UUID]*CatalogService{
		shuttleID: {ServiceID: shuttleID, Name: "Shuttlecock tube", UnitPrice: 120_000, IsActive: true},
	}}
	builder := NewInvoiceBuilder(src, store, catalog)

	inv, err := builder.BuildInvoice(bookingID)
	require.NoError(t, err)
	store.byID[inv.InvoiceID].InvoiceStatus = model.InvoiceStatusPaid

	_, err = builder.AddDetail(inv.InvoiceID, shuttleID, 1)
	require.Error(t, err)
	assert.Equal(t, apperror.CodeIllegalState, apperror.CodeOf(err))
}

func TestAddDetail_InactiveServiceRejected(t *testing.T) {
	src, bookingID := waterBooking(t)
	store := newFakeInvoiceStore()

	retiredID := uuid.New()
	catalog := &fakeCatalog{services: map[uuid.UUID]*CatalogService{
		retiredID: {ServiceID: retiredID, Name: "Retired service", UnitPrice: 10_000, IsActive: false},
	}}
	builder := NewInvoiceBuilder(src, store, catalog)

	inv, err := builder.BuildInvoice(bookingID)
	require.NoError(t, err)

	_, err = builder.AddDetail(inv.InvoiceID, retiredID, 1)
	require.Error(t, err)
	assert.Equal(t, apperror.CodeIllegalState, apperror.CodeOf(err))
}

func TestRemoveDetail_Recomputes(t *testing.T) {
	src, bookingID := waterBooking(t)
	store := newFakeInvoiceStore()
	builder := NewInvoiceBuilder(src, store, &fakeCatalog{})

	inv, err := builder.BuildInvoice(bookingID)
	require.NoError(t, err)

	waterDetailID := inv.InvoiceDetails[1].InvoiceDetailID
	updated, err := builder.RemoveDetail(inv.InvoiceID, waterDetailID)
	require.NoError(t, err)

	assert.Len(t, updated.InvoiceDetails, 1)
	assert.Equal(t, 200_000.0, updated.InvoiceOriginalAmount)
	assert.Equal(t, 200_000.0, updated.InvoiceFinalAmount)
}

func TestRemoveDetail_RentalLineProtected(t *testing.T) {
	src, bookingID := waterBooking(t)
	store := newFakeInvoiceStore()
	builder := NewInvoiceBuilder(src, store, &fakeCatalog{})

	inv, err := builder.BuildInvoice(bookingID)
	require.NoError(t, err)

	rentalDetailID := inv.InvoiceDetails[0].InvoiceDetailID
	_, err = builder.RemoveDetail(inv.InvoiceID, rentalDetailID)
	require.Error(t, err)
	assert.Equal(t, apperror.CodeIllegalState, apperror.CodeOf(err))
}
