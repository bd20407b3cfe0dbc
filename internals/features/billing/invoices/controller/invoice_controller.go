package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"courtku_backend/internals/apperror"
	dto "courtku_backend/internals/features/billing/invoices/dto"
	model "courtku_backend/internals/features/billing/invoices/model"
	"courtku_backend/internals/features/billing/invoices/service"
	helper "courtku_backend/internals/helpers"
)

type InvoiceController struct {
	DB      *gorm.DB
	builder *service.InvoiceBuilder
}

func NewInvoiceController(db *gorm.DB, builder *service.InvoiceBuilder) *InvoiceController {
	return &InvoiceController{DB: db, builder: builder}
}

/* ======================= BUILD ======================= */
// POST /api/a/invoices
func (h *InvoiceController) Build(c *fiber.Ctx) error {
	var req dto.BuildInvoiceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	inv, err := h.builder.BuildInvoice(req.BookingID)
	if err != nil {
		return apperror.ToFiber(err)
	}

	return helper.JsonCreated(c, "Invoice created", dto.FromModel(*inv))
}

/* ======================== GET BY ID ======================== */
// GET /api/a/invoices/:id
func (h *InvoiceController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid invoice id")
	}

	var row model.InvoiceModel
	if err := h.DB.Preload("InvoiceDetails").
		First(&row, "invoice_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Invoice not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", dto.FromModel(row))
}

/* ======================== LIST ======================== */
// GET /api/a/invoices?status=&booking_id=
func (h *InvoiceController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	base := h.DB.Model(&model.InvoiceModel{})
	if s := c.Query("status"); s != "" {
		base = base.Where("invoice_status = ?", s)
	}
	if b := c.Query("booking_id"); b != "" {
		base = base.Where("invoice_booking_id = ?", b)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.InvoiceModel
	if err := base.Order("invoice_date DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "OK", dto.FromModels(rows), helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

/* ======================== LIST OWN ======================== */
// GET /api/u/invoices
func (h *InvoiceController) ListOwn(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	p := helper.ResolvePaging(c, 20, 100)

	base := h.DB.Model(&model.InvoiceModel{}).
		Joins("JOIN bookings ON bookings.booking_id = invoices.invoice_booking_id").
		Where("bookings.booking_user_id = ?", userID)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.InvoiceModel
	if err := base.Preload("InvoiceDetails").
		Order("invoice_date DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "OK", dto.FromModels(rows), helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

/* ======================== DETAILS ======================== */
// POST /api/a/invoices/:id/details
func (h *InvoiceController) AddDetail(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid invoice id")
	}

	var req dto.AddInvoiceDetailRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	inv, err := h.builder.AddDetail(id, req.ServiceID, req.Quantity)
	if err != nil {
		return apperror.ToFiber(err)
	}

	return helper.JsonUpdated(c, "Invoice detail added", dto.FromModel(*inv))
}

// DELETE /api/a/invoices/:id/details/:detail_id
func (h *InvoiceController) RemoveDetail(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid invoice id")
	}
	detailID, err := uuid.Parse(c.Params("detail_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid detail id")
	}

	inv, err := h.builder.RemoveDetail(id, detailID)
	if err != nil {
		return apperror.ToFiber(err)
	}

	return helper.JsonUpdated(c, "Invoice detail removed", dto.FromModel(*inv))
}

/* ======================== STATUS ======================== */
// PATCH /api/a/invoices/:id/status
func (h *InvoiceController) UpdateStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid invoice id")
	}

	var req dto.UpdateInvoiceStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var row model.InvoiceModel
	if err := h.DB.First(&row, "invoice_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Invoice not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	// Paid is terminal.
	if row.IsPaid() && req.Status != model.InvoiceStatusPaid {
		return fiber.NewError(fiber.StatusConflict, "A paid invoice cannot change status")
	}

	if err := h.DB.Model(&row).Update("invoice_status", req.Status).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update invoice")
	}
	row.InvoiceStatus = req.Status

	return helper.JsonUpdated(c, "Invoice status updated", dto.FromModel(row))
}
