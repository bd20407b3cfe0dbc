package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"courtku_backend/internals/apperror"
	invoiceDto "courtku_backend/internals/features/billing/invoices/dto"
	dto "courtku_backend/internals/features/vouchers/vouchers/dto"
	model "courtku_backend/internals/features/vouchers/vouchers/model"
	"courtku_backend/internals/features/vouchers/vouchers/service"
	helper "courtku_backend/internals/helpers"
)

type DiscountController struct {
	DB     *gorm.DB
	engine *service.VoucherEngine
}

func NewDiscountController(db *gorm.DB, engine *service.VoucherEngine) *DiscountController {
	return &DiscountController{DB: db, engine: engine}
}

/* ======================= CREATE ======================= */
// POST /api/a/discounts
func (h *DiscountController) Create(c *fiber.Ctx) error {
	var req dto.CreateDiscountRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.DiscountValidTo != nil && req.DiscountValidTo.Before(req.DiscountValidFrom) {
		return fiber.NewError(fiber.StatusBadRequest, "valid_to must not precede valid_from")
	}
	if req.DiscountType == model.DiscountTypePercentage && req.DiscountValue > 100 {
		return fiber.NewError(fiber.StatusBadRequest, "A percentage discount cannot exceed 100")
	}

	m := req.ToModel()
	if err := h.DB.Create(m).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return fiber.NewError(fiber.StatusConflict, "A discount with that code already exists")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create discount")
	}

	return helper.JsonCreated(c, "Discount created", dto.FromModel(*m))
}

/* ======================== LIST ======================== */
// GET /api/a/discounts?status=
func (h *DiscountController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	base := h.DB.Model(&model.DiscountModel{})
	if s := c.Query("status"); s != "" {
		base = base.Where("discount_status = ?", strings.ToUpper(s))
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.DiscountModel
	if err := base.Order("discount_valid_from DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "OK", dto.FromModels(rows), helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

/* ======================== GET BY ID ======================== */
// GET /api/a/discounts/:id
func (h *DiscountController) GetByID(c *fiber.Ctx) error {
	var row model.DiscountModel
	if err := h.DB.First(&row, "discount_id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Discount not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", dto.FromModel(row))
}

/* ======================== UPDATE ======================== */
// PUT /api/a/discounts/:id
func (h *DiscountController) Update(c *fiber.Ctx) error {
	var row model.DiscountModel
	if err := h.DB.First(&row, "discount_id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Discount not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var req dto.UpdateDiscountRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	req.ApplyTo(&row)
	if err := h.DB.Save(&row).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update discount")
	}

	return helper.JsonUpdated(c, "Discount updated", dto.FromModel(row))
}

/* ======================== APPLY / REMOVE ======================== */
// POST /api/a/discounts/apply
func (h *DiscountController) Apply(c *fiber.Ctx) error {
	var req dto.ApplyVoucherRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	inv, err := h.engine.ApplyVoucher(req.InvoiceID, req.VoucherID)
	if err != nil {
		return apperror.ToFiber(err)
	}

	return helper.JsonUpdated(c, "Voucher applied", invoiceDto.FromModel(*inv))
}

// DELETE /api/a/invoices/:invoice_id/discount
func (h *DiscountController) Remove(c *fiber.Ctx) error {
	invoiceID, err := uuid.Parse(c.Params("invoice_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid invoice id")
	}

	inv, err := h.engine.RemoveVoucher(invoiceID)
	if err != nil {
		return apperror.ToFiber(err)
	}

	return helper.JsonUpdated(c, "Voucher removed", invoiceDto.FromModel(*inv))
}

/* ======================== CHECK ======================== */
// POST /api/u/discounts/check
func (h *DiscountController) Check(c *fiber.Ctx) error {
	var req dto.CheckVoucherRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	discount, err := h.engine.CalculateDiscount(req.DiscountCode, req.OrderAmount)
	if err != nil {
		return apperror.ToFiber(err)
	}

	return helper.JsonOK(c, "OK", dto.CheckVoucherResponse{
		DiscountCode:   req.DiscountCode,
		OrderAmount:    req.OrderAmount,
		DiscountAmount: discount,
		FinalAmount:    req.OrderAmount - discount,
	})
}

/* ======================== EXPIRY SWEEP ======================== */
// POST /api/a/discounts/expire-overdue
func (h *DiscountController) ExpireOverdue(c *fiber.Ctx) error {
	n, err := h.engine.UpdateExpiredVouchers()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to expire vouchers")
	}

	return helper.JsonOK(c, "Expired vouchers updated", fiber.Map{"expired_count": n})
}
