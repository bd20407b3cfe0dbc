package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"courtku_backend/internals/apperror"
	dto "courtku_backend/internals/features/courts/time_slots/dto"
	model "courtku_backend/internals/features/courts/time_slots/model"
	slotRepo "courtku_backend/internals/features/courts/time_slots/repository"
	slotSvc "courtku_backend/internals/features/courts/time_slots/service"
	holidayRepo "courtku_backend/internals/features/pricing/holidays/repository"
	psRepo "courtku_backend/internals/features/pricing/price_settings/repository"
	pricingSvc "courtku_backend/internals/features/pricing/price_settings/service"
	helper "courtku_backend/internals/helpers"
)

type TimeSlotController struct {
	DB        *gorm.DB
	generator *slotSvc.SlotGenerator
}

func NewTimeSlotController(db *gorm.DB) *TimeSlotController {
	classifier := pricingSvc.NewDayClassifier(holidayRepo.NewHolidayRepository(db))
	resolver := pricingSvc.NewPriceResolver(classifier, psRepo.NewPriceSettingRepository(db))
	return &TimeSlotController{
		DB:        db,
		generator: slotSvc.NewSlotGenerator(resolver, slotRepo.NewTimeSlotRepository(db)),
	}
}

/* ======================= GENERATE ======================= */
// POST /api/a/time-slots/generate
func (h *TimeSlotController) Generate(c *fiber.Ctx) error {
	var req dto.GenerateSlotsRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	slots, err := h.generator.GenerateSlots(req.CourtID, req.Date)
	if err != nil {
		return apperror.ToFiber(err)
	}
	if len(slots) == 0 {
		return helper.JsonOK(c, "Slots already generated for that date", []dto.TimeSlotResponse{})
	}

	return helper.JsonCreated(c, "Slots generated", dto.FromModels(slots))
}

/* ======================== AVAILABILITY ======================== */
// GET /api/public/time-slots?court_id=&date=&status=
func (h *TimeSlotController) List(c *fiber.Ctx) error {
	courtID, err := uuid.Parse(c.Query("court_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid court_id")
	}
	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
	}

	base := h.DB.Model(&model.TimeSlotModel{}).
		Where("time_slot_court_id = ? AND time_slot_date = ?", courtID, date.Format("2006-01-02"))
	if status := c.Query("status"); status != "" {
		base = base.Where("time_slot_status = ?", status)
	}

	var rows []model.TimeSlotModel
	if err := base.Order("time_slot_index ASC").Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", dto.FromModels(rows))
}

/* ======================== BLOCK / UNBLOCK ======================== */
// PATCH /api/a/time-slots/:id/block (maintenance, private events)
func (h *TimeSlotController) Block(c *fiber.Ctx) error {
	return h.setStatus(c, model.TimeSlotStatusAvailable, model.TimeSlotStatusBlocked, "Slot blocked")
}

// PATCH /api/a/time-slots/:id/unblock
func (h *TimeSlotController) Unblock(c *fiber.Ctx) error {
	return h.setStatus(c, model.TimeSlotStatusBlocked, model.TimeSlotStatusAvailable, "Slot unblocked")
}

func (h *TimeSlotController) setStatus(c *fiber.Ctx, from, to, okMsg string) error {
	res := h.DB.Model(&model.TimeSlotModel{}).
		Where("time_slot_id = ? AND time_slot_status = ?", c.Params("id"), from).
		Update("time_slot_status", to)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusConflict, "Slot not found or not in a valid state")
	}

	return helper.JsonUpdated(c, okMsg, fiber.Map{"time_slot_id": c.Params("id"), "time_slot_status": to})
}
