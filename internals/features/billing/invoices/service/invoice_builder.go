package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"courtku_backend/internals/apperror"
	"courtku_backend/internals/features/billing/invoices/model"
)

/* =======================================================
   Ports
======================================================= */

// BillableBooking is everything the builder needs from a booking:
// the court slot that was reserved and the services ordered with it.
type BillableBooking struct {
	BookingID uuid.UUID

	CourtName string

	SlotID    uuid.UUID
	SlotIndex int
	SlotStart string
	SlotEnd   string
	SlotPrice float64

	VoucherCode *string

	Services []BillableService
}

type BillableService struct {
	ServiceID uuid.UUID
	Name      string
	UnitPrice float64
	Quantity  int
}

// CatalogService is a priced line item looked up from the services catalog.
type CatalogService struct {
	ServiceID uuid.UUID
	Name      string
	UnitPrice float64
	IsActive  bool
}

type BookingSource interface {
	// LoadBillableBooking returns apperror.NotFound when the booking does not
	// exist or is cancelled.
	LoadBillableBooking(bookingID uuid.UUID) (*BillableBooking, error)
}

type InvoiceStore interface {
	ExistsForBooking(bookingID uuid.UUID) (bool, error)
	Create(inv *model.InvoiceModel) error
	GetWithDetails(invoiceID uuid.UUID) (*model.InvoiceModel, error)

	// AddDetail and RemoveDetail persist the detail mutation together with the
	// recomputed invoice amounts in one transaction.
	AddDetail(inv *model.InvoiceModel, detail *model.InvoiceDetailModel) error
	RemoveDetail(inv *model.InvoiceModel, detailID uuid.UUID) error
}

type ServiceCatalog interface {
	GetService(serviceID uuid.UUID) (*CatalogService, error)
}

// VoucherApplier lets the builder honor a voucher code carried on the
// booking right after the invoice is created. Optional.
type VoucherApplier interface {
	ApplyByCode(invoiceID uuid.UUID, code string) (*model.InvoiceModel, error)
}

/* =======================================================
   Builder
======================================================= */

// InvoiceBuilder materializes invoices out of bookings and keeps the amount
// invariants intact across detail mutations.
type InvoiceBuilder struct {
	bookings BookingSource
	invoices InvoiceStore
	catalog  ServiceCatalog
	vouchers VoucherApplier
	now      func() time.Time
}

func NewInvoiceBuilder(bookings BookingSource, invoices InvoiceStore, catalog ServiceCatalog) *InvoiceBuilder {
	return &InvoiceBuilder{
		bookings: bookings,
		invoices: invoices,
		catalog:  catalog,
		now:      time.Now,
	}
}

// WithVoucherApplier enables automatic application of a booking's voucher
// code when its invoice is built.
func (b *InvoiceBuilder) WithVoucherApplier(v VoucherApplier) *InvoiceBuilder {
	b.vouchers = v
	return b
}

// BuildInvoice creates the single invoice for a booking: one rental line
// priced from the slot's stored price plus one line per ordered service.
func (b *InvoiceBuilder) BuildInvoice(bookingID uuid.UUID) (*model.InvoiceModel, error) {
	exists, err := b.invoices.ExistsForBooking(bookingID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperror.Conflict("an invoice already exists for this booking")
	}

	booking, err := b.bookings.LoadBillableBooking(bookingID)
	if err != nil {
		return nil, err
	}

	slotID := booking.SlotID
	details := []model.InvoiceDetailModel{
		{
			InvoiceDetailItemName: fmt.Sprintf("%s - Slot %d (%s-%s)",
				booking.CourtName, booking.SlotIndex, booking.SlotStart, booking.SlotEnd),
			InvoiceDetailQuantity:   1,
			InvoiceDetailUnitPrice:  booking.SlotPrice,
			InvoiceDetailAmount:     booking.SlotPrice,
			InvoiceDetailTimeSlotID: &slotID,
		},
	}
	for _, svc := range booking.Services {
		serviceID := svc.ServiceID
		details = append(details, model.InvoiceDetailModel{
			InvoiceDetailItemName:  svc.Name,
			InvoiceDetailQuantity:  svc.Quantity,
			InvoiceDetailUnitPrice: svc.UnitPrice,
			InvoiceDetailAmount:    svc.UnitPrice * float64(svc.Quantity),
			InvoiceDetailServiceID: &serviceID,
		})
	}

	inv := &model.InvoiceModel{
		InvoiceBookingID: bookingID,
		InvoiceDate:      b.now(),
		InvoiceStatus:    model.InvoiceStatusPending,
		InvoiceDetails:   details,
	}
	inv.Recompute()

	if err := b.invoices.Create(inv); err != nil {
		return nil, err
	}

	// A voucher code on the booking is a request, not a guarantee: when it
	// no longer validates the invoice stands at full price.
	if b.vouchers != nil && booking.VoucherCode != nil && *booking.VoucherCode != "" {
		if applied, err := b.vouchers.ApplyByCode(inv.InvoiceID, *booking.VoucherCode); err == nil {
			return applied, nil
		}
	}
	return inv, nil
}

// AddDetail appends a service line to an unpaid invoice and recomputes the
// invoice amounts.
func (b *InvoiceBuilder) AddDetail(invoiceID, serviceID uuid.UUID, quantity int) (*model.InvoiceModel, error) {
	if quantity < 1 {
		return nil, apperror.BadRequest("quantity must be at least 1")
	}

	inv, err := b.invoices.GetWithDetails(invoiceID)
	if err != nil {
		return nil, err
	}
	if inv.IsPaid() {
		return nil, apperror.IllegalState("a paid invoice can no longer be modified")
	}

	svc, err := b.catalog.GetService(serviceID)
	if err != nil {
		return nil, err
	}
	if !svc.IsActive {
		return nil, apperror.IllegalState("service is not active")
	}

	sid := svc.ServiceID
	detail := &model.InvoiceDetailModel{
		InvoiceDetailInvoiceID: inv.InvoiceID,
		InvoiceDetailItemName:  svc.Name,
		InvoiceDetailQuantity:  quantity,
		InvoiceDetailUnitPrice: svc.UnitPrice,
		InvoiceDetailAmount:    svc.UnitPrice * float64(quantity),
		InvoiceDetailServiceID: &sid,
	}

	inv.InvoiceDetails = append(inv.InvoiceDetails, *detail)
	inv.Recompute()

	if err := b.invoices.AddDetail(inv, detail); err != nil {
		return nil, err
	}
	return inv, nil
}

// RemoveDetail deletes a service line from an unpaid invoice. The rental
// line is fixed; removing it would orphan the booking's charge.
func (b *InvoiceBuilder) RemoveDetail(invoiceID, detailID uuid.UUID) (*model.InvoiceModel, error) {
	inv, err := b.invoices.GetWithDetails(invoiceID)
	if err != nil {
		return nil, err
	}
	if inv.IsPaid() {
		return nil, apperror.IllegalState("a paid invoice can no longer be modified")
	}

	found := false
	kept := make([]model.InvoiceDetailModel, 0, len(inv.InvoiceDetails))
	for _, d := range inv.InvoiceDetails {
		if d.InvoiceDetailID == detailID {
			if d.IsCourtRental() {
				return nil, apperror.IllegalState("the court rental line cannot be removed")
			}
			found = true
			continue
		}
		kept = append(kept, d)
	}
	if !found {
		return nil, apperror.NotFound("invoice detail not found")
	}

	inv.InvoiceDetails = kept
	inv.Recompute()

	if err := b.invoices.RemoveDetail(inv, detailID); err != nil {
		return nil, err
	}
	return inv, nil
}
