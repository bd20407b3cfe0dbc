package controller

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"courtku_backend/internals/configs"
	invoiceModel "courtku_backend/internals/features/billing/invoices/model"
	dto "courtku_backend/internals/features/payments/payments/dto"
	model "courtku_backend/internals/features/payments/payments/model"
	service "courtku_backend/internals/features/payments/payments/service"
	helper "courtku_backend/internals/helpers"
)

type PaymentController struct {
	DB *gorm.DB
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{DB: db}
}

/* ======================= CREATE ======================= */
// POST /api/u/payments
func (h *PaymentController) Create(c *fiber.Ctx) error {
	var req dto.CreatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var inv invoiceModel.InvoiceModel
	if err := h.DB.First(&inv, "invoice_id = ?", req.InvoiceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Invoice not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if inv.InvoiceStatus != invoiceModel.InvoiceStatusPending {
		return fiber.NewError(fiber.StatusConflict, "Only a pending invoice can be paid")
	}

	orderID := fmt.Sprintf("CKB-%s-%d", strings.ToUpper(inv.InvoiceID.String()[:8]), time.Now().Unix())

	token, redirectURL, err := service.GenerateSnapToken(orderID, inv.InvoiceFinalAmount, req.CustomerName, req.CustomerEmail)
	if err != nil {
		return fiber.NewError(fiber.StatusBadGateway, "Failed to create payment transaction")
	}

	payment := model.PaymentModel{
		PaymentInvoiceID:   inv.InvoiceID,
		PaymentOrderID:     orderID,
		PaymentAmount:      inv.InvoiceFinalAmount,
		PaymentStatus:      model.PaymentStatusInitiated,
		PaymentSnapToken:   &token,
		PaymentRedirectURL: &redirectURL,
	}
	if err := h.DB.Create(&payment).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to record payment")
	}

	return helper.JsonCreated(c, "Payment created", dto.FromModel(payment))
}

/* ======================== CLIENT KEY ======================== */
// GET /api/u/payments/client-key (the Snap frontend widget needs it)
func (h *PaymentController) ClientKey(c *fiber.Ctx) error {
	return helper.JsonOK(c, "OK", fiber.Map{
		"client_key": configs.MidtransClientKey,
	})
}

/* ======================== NOTIFICATION ======================== */
// POST /api/payments/notification (unauthenticated; called by the gateway)
func (h *PaymentController) Notification(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}

	if err := service.HandlePaymentStatusWebhook(h.DB, body, c.Body()); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return helper.JsonOK(c, "OK", nil)
}

/* ======================== LIST ======================== */
// GET /api/a/payments?status=&invoice_id=
func (h *PaymentController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	base := h.DB.Model(&model.PaymentModel{})
	if s := c.Query("status"); s != "" {
		base = base.Where("payment_status = ?", s)
	}
	if inv := c.Query("invoice_id"); inv != "" {
		base = base.Where("payment_invoice_id = ?", inv)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.PaymentModel
	if err := base.Order("created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "OK", dto.FromModels(rows), helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

/* ======================== GET BY ID ======================== */
// GET /api/a/payments/:id
func (h *PaymentController) GetByID(c *fiber.Ctx) error {
	var row model.PaymentModel
	if err := h.DB.First(&row, "payment_id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Payment not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", dto.FromModel(row))
}
