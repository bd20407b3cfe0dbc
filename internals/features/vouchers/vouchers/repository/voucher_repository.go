package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"courtku_backend/internals/apperror"
	invModel "courtku_backend/internals/features/billing/invoices/model"
	"courtku_backend/internals/features/vouchers/vouchers/model"
	"courtku_backend/internals/features/vouchers/vouchers/service"
)

/* =======================================================
   VoucherStore
======================================================= */

type VoucherRepository struct {
	db *gorm.DB
}

func NewVoucherRepository(db *gorm.DB) *VoucherRepository {
	return &VoucherRepository{db: db}
}

func (r *VoucherRepository) GetByID(id uuid.UUID) (*model.DiscountModel, error) {
	var row model.DiscountModel
	if err := r.db.First(&row, "discount_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("voucher not found")
		}
		return nil, err
	}
	return &row, nil
}

func (r *VoucherRepository) GetByCode(code string) (*model.DiscountModel, error) {
	var row model.DiscountModel
	if err := r.db.First(&row, "discount_code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("voucher not found")
		}
		return nil, err
	}
	return &row, nil
}

func (r *VoucherRepository) IncrementUsage(id uuid.UUID) error {
	res := r.db.Model(&model.DiscountModel{}).
		Where("discount_id = ?", id).
		Where("discount_usage_limit IS NULL OR discount_used_count < discount_usage_limit").
		Update("discount_used_count", gorm.Expr("discount_used_count + 1"))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperror.IllegalState("voucher has reached its usage limit")
	}
	return nil
}

func (r *VoucherRepository) DecrementUsage(id uuid.UUID) error {
	return r.db.Model(&model.DiscountModel{}).
		Where("discount_id = ?", id).
		Update("discount_used_count", gorm.Expr("GREATEST(discount_used_count - 1, 0)")).Error
}

func (r *VoucherRepository) ExpireOverdue(today time.Time) (int64, error) {
	res := r.db.Model(&model.DiscountModel{}).
		Where("discount_status = ?", model.DiscountStatusActive).
		Where("discount_valid_to IS NOT NULL AND discount_valid_to < ?", today).
		Update("discount_status", model.DiscountStatusExpired)
	return res.RowsAffected, res.Error
}

/* =======================================================
   InvoiceAccess
======================================================= */

type InvoiceAccessRepository struct {
	db *gorm.DB
}

func NewInvoiceAccessRepository(db *gorm.DB) *InvoiceAccessRepository {
	return &InvoiceAccessRepository{db: db}
}

func (r *InvoiceAccessRepository) GetInvoice(invoiceID uuid.UUID) (*invModel.InvoiceModel, error) {
	var row invModel.InvoiceModel
	if err := r.db.First(&row, "invoice_id = ?", invoiceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("invoice not found")
		}
		return nil, err
	}
	return &row, nil
}

func (r *InvoiceAccessRepository) SaveDiscount(inv *invModel.InvoiceModel) error {
	return r.db.Model(&invModel.InvoiceModel{}).
		Where("invoice_id = ?", inv.InvoiceID).
		Updates(map[string]interface{}{
			"invoice_discount_amount":     inv.InvoiceDiscountAmount,
			"invoice_final_amount":        inv.InvoiceFinalAmount,
			"invoice_applied_discount_id": inv.InvoiceAppliedDiscountID,
			"invoice_notes":               inv.InvoiceNotes,
		}).Error
}

/* =======================================================
   UnitOfWork
======================================================= */

type GormUnitOfWork struct {
	db       *gorm.DB
	vouchers *VoucherRepository
	invoices *InvoiceAccessRepository
}

func NewUnitOfWork(db *gorm.DB) *GormUnitOfWork {
	return &GormUnitOfWork{
		db:       db,
		vouchers: NewVoucherRepository(db),
		invoices: NewInvoiceAccessRepository(db),
	}
}

func (u *GormUnitOfWork) Vouchers() service.VoucherStore { return u.vouchers }

func (u *GormUnitOfWork) Invoices() service.InvoiceAccess { return u.invoices }

func (u *GormUnitOfWork) InTx(fn func(s service.Stores) error) error {
	return u.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewUnitOfWork(tx))
	})
}
