package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"courtku_backend/internals/apperror"
	holidayRepo "courtku_backend/internals/features/pricing/holidays/repository"
	dto "courtku_backend/internals/features/pricing/price_settings/dto"
	model "courtku_backend/internals/features/pricing/price_settings/model"
	psRepo "courtku_backend/internals/features/pricing/price_settings/repository"
	"courtku_backend/internals/features/pricing/price_settings/service"
	helper "courtku_backend/internals/helpers"
)

type PriceSettingController struct {
	DB       *gorm.DB
	resolver *service.PriceResolver
}

func NewPriceSettingController(db *gorm.DB) *PriceSettingController {
	classifier := service.NewDayClassifier(holidayRepo.NewHolidayRepository(db))
	return &PriceSettingController{
		DB:       db,
		resolver: service.NewPriceResolver(classifier, psRepo.NewPriceSettingRepository(db)),
	}
}

/* ======================= CREATE ======================= */
// POST /api/a/price-settings
func (h *PriceSettingController) Create(c *fiber.Ctx) error {
	var req dto.CreatePriceSettingRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.PriceSettingEffectiveTo != nil && req.PriceSettingEffectiveTo.Before(req.PriceSettingEffectiveFrom) {
		return fiber.NewError(fiber.StatusBadRequest, "effective_to must not be before effective_from")
	}

	m := req.ToModel()
	if err := h.DB.Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create price setting")
	}

	return helper.JsonCreated(c, "Price setting created", dto.FromModel(*m))
}

/* ======================== GET BY ID ======================== */
// GET /api/a/price-settings/:id
func (h *PriceSettingController) GetByID(c *fiber.Ctx) error {
	var row model.PriceSettingModel
	if err := h.DB.First(&row, "price_setting_id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Price setting not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", dto.FromModel(row))
}

/* ======================== LIST ======================== */
// GET /api/a/price-settings?day_type=&court_id=&active_only=
func (h *PriceSettingController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	base := h.DB.Model(&model.PriceSettingModel{})
	if dt := c.Query("day_type"); dt != "" {
		if !model.IsValidDayType(dt) {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid day_type")
		}
		base = base.Where("price_setting_day_type = ?", dt)
	}
	if cid := c.Query("court_id"); cid != "" {
		id, err := uuid.Parse(cid)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid court_id")
		}
		base = base.Where("price_setting_court_id = ?", id)
	}
	if c.QueryBool("active_only") {
		base = base.Where("price_setting_is_active = TRUE")
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.PriceSettingModel
	if err := base.Order("price_setting_effective_from DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "OK", dto.FromModels(rows), helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

/* ======================== UPDATE ======================== */
// PUT /api/a/price-settings/:id
func (h *PriceSettingController) Update(c *fiber.Ctx) error {
	var row model.PriceSettingModel
	if err := h.DB.First(&row, "price_setting_id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Price setting not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var req dto.UpdatePriceSettingRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	req.ApplyTo(&row)
	if row.PriceSettingEffectiveTo != nil && row.PriceSettingEffectiveTo.Before(row.PriceSettingEffectiveFrom) {
		return fiber.NewError(fiber.StatusBadRequest, "effective_to must not be before effective_from")
	}

	if err := h.DB.Save(&row).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update price setting")
	}

	return helper.JsonUpdated(c, "Price setting updated", dto.FromModel(row))
}

/* ======================== DEACTIVATE ======================== */
// PATCH /api/a/price-settings/:id/deactivate
// Settings are retired, never deleted, so historical slots stay explainable.
func (h *PriceSettingController) Deactivate(c *fiber.Ctx) error {
	var row model.PriceSettingModel
	if err := h.DB.First(&row, "price_setting_id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Price setting not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	today := time.Now().Truncate(24 * time.Hour)
	row.PriceSettingIsActive = false
	row.PriceSettingEffectiveTo = &today

	if err := h.DB.Save(&row).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to deactivate price setting")
	}

	return helper.JsonUpdated(c, "Price setting deactivated", dto.FromModel(row))
}

/* ======================== RESOLVE ======================== */
// GET /api/public/pricing/resolve?court_id=&date=&slot_index=
// Price preview through the same cascade slot generation uses.
func (h *PriceSettingController) Resolve(c *fiber.Ctx) error {
	courtID, err := uuid.Parse(c.Query("court_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid court_id")
	}
	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
	}
	slotIndex := c.QueryInt("slot_index", -1)
	if slotIndex < 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid slot_index")
	}

	price, err := h.resolver.ResolvePrice(courtID, date, slotIndex)
	if err != nil {
		return apperror.ToFiber(err)
	}

	classifier := service.NewDayClassifier(holidayRepo.NewHolidayRepository(h.DB))
	dayType, err := classifier.Classify(date)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", dto.ResolvePriceResponse{
		CourtID:       courtID,
		Date:          date.Format("2006-01-02"),
		TimeSlotIndex: slotIndex,
		DayType:       dayType,
		Price:         price,
	})
}
