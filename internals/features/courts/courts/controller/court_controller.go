package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "courtku_backend/internals/features/courts/courts/dto"
	model "courtku_backend/internals/features/courts/courts/model"
	helper "courtku_backend/internals/helpers"
)

type CourtController struct {
	DB *gorm.DB
}

func NewCourtController(db *gorm.DB) *CourtController {
	return &CourtController{DB: db}
}

/* ======================= CREATE ======================= */
// POST /api/a/courts
func (h *CourtController) Create(c *fiber.Ctx) error {
	var req dto.CreateCourtRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := h.DB.Create(m).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return fiber.NewError(fiber.StatusConflict, "A court with that name already exists")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create court")
	}

	return helper.JsonCreated(c, "Court created", dto.FromModel(*m))
}

/* ======================== GET BY ID ======================== */
// GET /api/public/courts/:id
func (h *CourtController) GetByID(c *fiber.Ctx) error {
	var row model.CourtModel
	if err := h.DB.First(&row, "court_id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Court not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", dto.FromModel(row))
}

/* ======================== LIST ======================== */
// GET /api/public/courts?active_only=&q=
func (h *CourtController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	base := h.DB.Model(&model.CourtModel{})
	if c.QueryBool("active_only") {
		base = base.Where("court_is_active = TRUE")
	}
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		base = base.Where("court_name ILIKE ?", "%"+q+"%")
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.CourtModel
	if err := base.Order("court_name ASC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "OK", dto.FromModels(rows), helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

/* ======================== UPDATE ======================== */
// PUT /api/a/courts/:id
func (h *CourtController) Update(c *fiber.Ctx) error {
	var row model.CourtModel
	if err := h.DB.First(&row, "court_id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Court not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var req dto.UpdateCourtRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	req.ApplyTo(&row)
	if err := h.DB.Save(&row).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return fiber.NewError(fiber.StatusConflict, "A court with that name already exists")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update court")
	}

	return helper.JsonUpdated(c, "Court updated", dto.FromModel(row))
}

/* ======================== DEACTIVATE ======================== */
// PATCH /api/a/courts/:id/deactivate
// Courts with booking history are deactivated, never removed.
func (h *CourtController) Deactivate(c *fiber.Ctx) error {
	res := h.DB.Model(&model.CourtModel{}).
		Where("court_id = ?", c.Params("id")).
		Update("court_is_active", false)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Court not found")
	}

	return helper.JsonUpdated(c, "Court deactivated", fiber.Map{"court_id": c.Params("id")})
}
