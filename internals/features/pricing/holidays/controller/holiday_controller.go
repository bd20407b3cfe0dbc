package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "courtku_backend/internals/features/pricing/holidays/dto"
	model "courtku_backend/internals/features/pricing/holidays/model"
	helper "courtku_backend/internals/helpers"
)

type HolidayController struct {
	DB *gorm.DB
}

func NewHolidayController(db *gorm.DB) *HolidayController {
	return &HolidayController{DB: db}
}

/* ======================= CREATE ======================= */
// POST /api/a/holidays
func (h *HolidayController) Create(c *fiber.Ctx) error {
	var req dto.CreateHolidayRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := h.DB.Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create holiday")
	}

	return helper.JsonCreated(c, "Holiday created", dto.FromModel(*m))
}

/* ======================== GET BY ID ======================== */
// GET /api/a/holidays/:id
func (h *HolidayController) GetByID(c *fiber.Ctx) error {
	idStr := c.Params("id")
	if idStr == "" {
		return fiber.NewError(fiber.StatusBadRequest, "ID must not be empty")
	}

	var row model.HolidayModel
	if err := h.DB.First(&row, "holiday_id = ?", idStr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Holiday not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", dto.FromModel(row))
}

/* ======================== LIST ======================== */
// GET /api/public/holidays?year=&page=&per_page=
func (h *HolidayController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	base := h.DB.Model(&model.HolidayModel{})
	if year := c.QueryInt("year"); year > 0 {
		base = base.Where("holiday_is_recurring_yearly = TRUE OR EXTRACT(YEAR FROM holiday_date) = ?", year)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.HolidayModel
	if err := base.Order("holiday_date ASC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "OK", dto.FromModels(rows), helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

/* ======================== UPDATE ======================== */
// PUT /api/a/holidays/:id
func (h *HolidayController) Update(c *fiber.Ctx) error {
	idStr := c.Params("id")

	var row model.HolidayModel
	if err := h.DB.First(&row, "holiday_id = ?", idStr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Holiday not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var req dto.UpdateHolidayRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	req.ApplyTo(&row)
	if err := h.DB.Save(&row).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update holiday")
	}

	return helper.JsonUpdated(c, "Holiday updated", dto.FromModel(row))
}

/* ======================== DELETE ======================== */
// DELETE /api/a/holidays/:id
func (h *HolidayController) Delete(c *fiber.Ctx) error {
	idStr := c.Params("id")

	res := h.DB.Delete(&model.HolidayModel{}, "holiday_id = ?", idStr)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Holiday not found")
	}

	return helper.JsonDeleted(c, "Holiday deleted", fiber.Map{"holiday_id": idStr})
}
