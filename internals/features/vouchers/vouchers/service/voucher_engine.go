package service

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"courtku_backend/internals/apperror"
	invModel "courtku_backend/internals/features/billing/invoices/model"
	"courtku_backend/internals/features/vouchers/vouchers/model"
)

/* =======================================================
   Ports
======================================================= */

type VoucherStore interface {
	GetByID(id uuid.UUID) (*model.DiscountModel, error)
	GetByCode(code string) (*model.DiscountModel, error)

	// IncrementUsage adds one use only while the usage limit allows it and
	// returns apperror.IllegalState otherwise.
	IncrementUsage(id uuid.UUID) error

	// DecrementUsage subtracts one use, never going below zero.
	DecrementUsage(id uuid.UUID) error

	// ExpireOverdue flips ACTIVE vouchers whose validity window has passed to
	// EXPIRED and reports how many rows changed.
	ExpireOverdue(today time.Time) (int64, error)
}

type InvoiceAccess interface {
	GetInvoice(invoiceID uuid.UUID) (*invModel.InvoiceModel, error)
	SaveDiscount(inv *invModel.InvoiceModel) error
}

// Stores bundles the two data dependencies of the engine so a transaction
// can swap both for tx-bound instances at once.
type Stores interface {
	Vouchers() VoucherStore
	Invoices() InvoiceAccess
}

type UnitOfWork interface {
	Stores
	InTx(fn func(s Stores) error) error
}

/* =======================================================
   Engine
======================================================= */

// VoucherEngine owns voucher validation, discount math, and the usage
// bookkeeping that ties discounts to invoices.
type VoucherEngine struct {
	uow UnitOfWork
	now func() time.Time
}

func NewVoucherEngine(uow UnitOfWork) *VoucherEngine {
	return &VoucherEngine{uow: uow, now: time.Now}
}

// ApplyVoucher swaps the invoice's discount for the given voucher. Any
// previously applied voucher is released first, in its own transaction, so
// the invoice lands in a clean no-discount state even when the new voucher
// fails validation.
func (e *VoucherEngine) ApplyVoucher(invoiceID, voucherID uuid.UUID) (*invModel.InvoiceModel, error) {
	inv, err := e.uow.Invoices().GetInvoice(invoiceID)
	if err != nil {
		return nil, err
	}
	if inv.IsPaid() {
		return nil, apperror.IllegalState("a paid invoice can no longer change its discount")
	}

	if inv.InvoiceAppliedDiscountID != nil {
		if err := e.release(invoiceID); err != nil {
			return nil, err
		}
	}

	var result *invModel.InvoiceModel
	err = e.uow.InTx(func(s Stores) error {
		inv, err := s.Invoices().GetInvoice(invoiceID)
		if err != nil {
			return err
		}

		voucher, err := s.Vouchers().GetByID(voucherID)
		if err != nil {
			return err
		}
		if err := e.validate(voucher, inv.InvoiceOriginalAmount); err != nil {
			return err
		}

		// The guarded increment is what makes concurrent applications of a
		// nearly exhausted voucher serialize correctly.
		if err := s.Vouchers().IncrementUsage(voucher.DiscountID); err != nil {
			return err
		}

		discount := e.computeDiscount(voucher, inv.InvoiceOriginalAmount)
		note := fmt.Sprintf("Voucher %s applied", voucher.DiscountCode)

		inv.InvoiceDiscountAmount = discount
		inv.InvoiceFinalAmount = inv.InvoiceOriginalAmount - discount
		inv.InvoiceAppliedDiscountID = &voucher.DiscountID
		inv.InvoiceNotes = &note

		if err := s.Invoices().SaveDiscount(inv); err != nil {
			return err
		}
		result = inv
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ApplyByCode resolves a voucher code and applies it.
func (e *VoucherEngine) ApplyByCode(invoiceID uuid.UUID, code string) (*invModel.InvoiceModel, error) {
	voucher, err := e.uow.Vouchers().GetByCode(code)
	if err != nil {
		return nil, err
	}
	return e.ApplyVoucher(invoiceID, voucher.DiscountID)
}

// RemoveVoucher releases the invoice's current discount, if any.
func (e *VoucherEngine) RemoveVoucher(invoiceID uuid.UUID) (*invModel.InvoiceModel, error) {
	inv, err := e.uow.Invoices().GetInvoice(invoiceID)
	if err != nil {
		return nil, err
	}
	if inv.IsPaid() {
		return nil, apperror.IllegalState("a paid invoice can no longer change its discount")
	}
	if inv.InvoiceAppliedDiscountID == nil {
		return inv, nil
	}

	if err := e.release(invoiceID); err != nil {
		return nil, err
	}
	return e.uow.Invoices().GetInvoice(invoiceID)
}

// release returns the old voucher's use and clears the invoice's discount
// fields together, so used_count never drifts from the applied state.
func (e *VoucherEngine) release(invoiceID uuid.UUID) error {
	return e.uow.InTx(func(s Stores) error {
		inv, err := s.Invoices().GetInvoice(invoiceID)
		if err != nil {
			return err
		}
		if inv.InvoiceAppliedDiscountID == nil {
			return nil
		}

		if err := s.Vouchers().DecrementUsage(*inv.InvoiceAppliedDiscountID); err != nil {
			return err
		}

		inv.InvoiceDiscountAmount = 0
		inv.InvoiceFinalAmount = inv.InvoiceOriginalAmount
		inv.InvoiceAppliedDiscountID = nil
		inv.InvoiceNotes = nil

		return s.Invoices().SaveDiscount(inv)
	})
}

// CalculateDiscount previews the discount a code would yield on an order
// amount without touching any bookkeeping.
func (e *VoucherEngine) CalculateDiscount(code string, orderAmount float64) (float64, error) {
	voucher, err := e.uow.Vouchers().GetByCode(code)
	if err != nil {
		return 0, err
	}
	if err := e.validate(voucher, orderAmount); err != nil {
		return 0, err
	}
	return e.computeDiscount(voucher, orderAmount), nil
}

// CanUseVoucher reports whether a code currently validates for the amount.
func (e *VoucherEngine) CanUseVoucher(code string, orderAmount float64) bool {
	_, err := e.CalculateDiscount(code, orderAmount)
	return err == nil
}

// UpdateExpiredVouchers sweeps ACTIVE vouchers past their validity window
// into EXPIRED. Safe to run repeatedly.
func (e *VoucherEngine) UpdateExpiredVouchers() (int64, error) {
	return e.uow.Vouchers().ExpireOverdue(dateOnly(e.now()))
}

/* =======================================================
   Rules
======================================================= */

func (e *VoucherEngine) validate(v *model.DiscountModel, orderAmount float64) error {
	if !model.IsValidDiscountType(v.DiscountType) {
		return apperror.IllegalState(fmt.Sprintf("voucher %s has an unknown discount type", v.DiscountCode))
	}

	switch v.DiscountStatus {
	case model.DiscountStatusActive:
	case model.DiscountStatusExpired:
		return apperror.IllegalState(fmt.Sprintf("voucher %s has expired", v.DiscountCode))
	default:
		return apperror.IllegalState(fmt.Sprintf("voucher %s is not active", v.DiscountCode))
	}

	today := dateOnly(e.now())
	if today.Before(dateOnly(v.DiscountValidFrom)) {
		return apperror.IllegalState(fmt.Sprintf("voucher %s is not valid yet", v.DiscountCode))
	}
	if v.DiscountValidTo != nil && today.After(dateOnly(*v.DiscountValidTo)) {
		return apperror.IllegalState(fmt.Sprintf("voucher %s has expired", v.DiscountCode))
	}

	if v.IsExhausted() {
		return apperror.IllegalState(fmt.Sprintf("voucher %s has reached its usage limit", v.DiscountCode))
	}

	if v.DiscountMinOrderAmount != nil && orderAmount < *v.DiscountMinOrderAmount {
		return apperror.IllegalState(fmt.Sprintf(
			"order amount %.0f is below the %.0f minimum for voucher %s",
			orderAmount, *v.DiscountMinOrderAmount, v.DiscountCode))
	}

	return nil
}

func (e *VoucherEngine) computeDiscount(v *model.DiscountModel, orderAmount float64) float64 {
	var discount float64
	switch v.DiscountType {
	case model.DiscountTypePercentage:
		discount = math.Floor(orderAmount * v.DiscountValue / 100)
		if v.DiscountMaxDiscountAmount != nil && discount > *v.DiscountMaxDiscountAmount {
			discount = *v.DiscountMaxDiscountAmount
		}
	case model.DiscountTypeFixed:
		discount = v.DiscountValue
	}

	// Discounts never push the invoice negative.
	if discount > orderAmount {
		discount = orderAmount
	}
	return discount
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
