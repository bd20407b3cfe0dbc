package repository

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"courtku_backend/internals/apperror"
	"courtku_backend/internals/features/billing/invoices/model"
	"courtku_backend/internals/features/billing/invoices/service"
	ServiceModel "courtku_backend/internals/features/billing/services/model"
	BookingModel "courtku_backend/internals/features/bookings/bookings/model"
	CourtModel "courtku_backend/internals/features/courts/courts/model"
	TimeSlotModel "courtku_backend/internals/features/courts/time_slots/model"
)

/* =======================================================
   InvoiceStore
======================================================= */

type InvoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

func (r *InvoiceRepository) ExistsForBooking(bookingID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&model.InvoiceModel{}).
		Where("invoice_booking_id = ?", bookingID).
		Count(&count).Error
	return count > 0, err
}

func (r *InvoiceRepository) Create(inv *model.InvoiceModel) error {
	if err := r.db.Create(inv).Error; err != nil {
		if isDuplicateErr(err) {
			return apperror.Conflict("an invoice already exists for this booking")
		}
		return err
	}
	return nil
}

// isDuplicateErr detects the unique-index violation raised when two
// concurrent builds race past the ExistsForBooking pre-check.
func isDuplicateErr(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique")
}

func (r *InvoiceRepository) GetWithDetails(invoiceID uuid.UUID) (*model.InvoiceModel, error) {
	var inv model.InvoiceModel
	err := r.db.Preload("InvoiceDetails").
		First(&inv, "invoice_id = ?", invoiceID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("invoice not found")
		}
		return nil, err
	}
	return &inv, nil
}

func (r *InvoiceRepository) AddDetail(inv *model.InvoiceModel, detail *model.InvoiceDetailModel) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(detail).Error; err != nil {
			return err
		}
		return r.saveAmounts(tx, inv)
	})
}

func (r *InvoiceRepository) RemoveDetail(inv *model.InvoiceModel, detailID uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("invoice_detail_id = ? AND invoice_detail_invoice_id = ?", detailID, inv.InvoiceID).
			Delete(&model.InvoiceDetailModel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperror.NotFound("invoice detail not found")
		}
		return r.saveAmounts(tx, inv)
	})
}

func (r *InvoiceRepository) saveAmounts(tx *gorm.DB, inv *model.InvoiceModel) error {
	return tx.Model(&model.InvoiceModel{}).
		Where("invoice_id = ?", inv.InvoiceID).
		Updates(map[string]interface{}{
			"invoice_original_amount": inv.InvoiceOriginalAmount,
			"invoice_discount_amount": inv.InvoiceDiscountAmount,
			"invoice_final_amount":    inv.InvoiceFinalAmount,
		}).Error
}

/* =======================================================
   BookingSource
======================================================= */

type BillableBookingRepository struct {
	db *gorm.DB
}

func NewBillableBookingRepository(db *gorm.DB) *BillableBookingRepository {
	return &BillableBookingRepository{db: db}
}

func (r *BillableBookingRepository) LoadBillableBooking(bookingID uuid.UUID) (*service.BillableBooking, error) {
	var booking BookingModel.BookingModel
	err := r.db.Preload("BookingServices").
		First(&booking, "booking_id = ?", bookingID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("booking not found")
		}
		return nil, err
	}
	if !booking.IsActive() {
		return nil, apperror.IllegalState("a cancelled booking cannot be invoiced")
	}

	var slot TimeSlotModel.TimeSlotModel
	if err := r.db.First(&slot, "time_slot_id = ?", booking.BookingTimeSlotID).Error; err != nil {
		return nil, err
	}

	var court CourtModel.CourtModel
	if err := r.db.First(&court, "court_id = ?", booking.BookingCourtID).Error; err != nil {
		return nil, err
	}

	billable := &service.BillableBooking{
		BookingID:   booking.BookingID,
		CourtName:   court.CourtName,
		SlotID:      slot.TimeSlotID,
		SlotIndex:   slot.TimeSlotIndex,
		SlotStart:   slot.TimeSlotStartTime,
		SlotEnd:     slot.TimeSlotEndTime,
		SlotPrice:   slot.TimeSlotPrice,
		VoucherCode: booking.BookingVoucherCode,
	}

	for _, bs := range booking.BookingServices {
		var svc ServiceModel.ServiceModel
		if err := r.db.First(&svc, "service_id = ?", bs.BookingServiceServiceID).Error; err != nil {
			return nil, err
		}
		billable.Services = append(billable.Services, service.BillableService{
			ServiceID: svc.ServiceID,
			Name:      svc.ServiceName,
			UnitPrice: svc.ServiceUnitPrice,
			Quantity:  bs.BookingServiceQuantity,
		})
	}

	return billable, nil
}

/* =======================================================
   ServiceCatalog
======================================================= */

type CatalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

func (r *CatalogRepository) GetService(serviceID uuid.UUID) (*service.CatalogService, error) {
	var svc ServiceModel.ServiceModel
	if err := r.db.First(&svc, "service_id = ?", serviceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("service not found")
		}
		return nil, err
	}
	return &service.CatalogService{
		ServiceID: svc.ServiceID,
		Name:      svc.ServiceName,
		UnitPrice: svc.ServiceUnitPrice,
		IsActive:  svc.ServiceIsActive,
	}, nil
}
