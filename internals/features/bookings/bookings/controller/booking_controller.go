package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"courtku_backend/internals/apperror"
	ServiceModel "courtku_backend/internals/features/billing/services/model"
	dto "courtku_backend/internals/features/bookings/bookings/dto"
	model "courtku_backend/internals/features/bookings/bookings/model"
	bookingRepo "courtku_backend/internals/features/bookings/bookings/repository"
	bookingSvc "courtku_backend/internals/features/bookings/bookings/service"
	CourtModel "courtku_backend/internals/features/courts/courts/model"
	slotModel "courtku_backend/internals/features/courts/time_slots/model"
	helper "courtku_backend/internals/helpers"
)

type BookingController struct {
	DB    *gorm.DB
	repo  *bookingRepo.BookingRepository
	guard *bookingSvc.ConflictGuard
}

func NewBookingController(db *gorm.DB) *BookingController {
	repo := bookingRepo.NewBookingRepository(db)
	return &BookingController{
		DB:    db,
		repo:  repo,
		guard: bookingSvc.NewConflictGuard(repo),
	}
}

/* ======================= CREATE ======================= */
// POST /api/u/bookings
func (h *BookingController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	// Court must exist and be active.
	var court CourtModel.CourtModel
	if err := h.DB.First(&court, "court_id = ?", req.BookingCourtID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Court not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if !court.CourtIsActive {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "Court is not active")
	}

	// Slot must belong to that court and date.
	var slot slotModel.TimeSlotModel
	if err := h.DB.First(&slot, "time_slot_id = ?", req.BookingTimeSlotID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Time slot not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if slot.TimeSlotCourtID != req.BookingCourtID ||
		slot.TimeSlotDate.Format("2006-01-02") != req.BookingDate.Format("2006-01-02") {
		return fiber.NewError(fiber.StatusBadRequest, "Slot does not belong to that court and date")
	}
	if slot.TimeSlotStatus == slotModel.TimeSlotStatusBlocked {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "Slot is blocked")
	}

	// Every referenced service must exist and be active.
	for _, item := range req.BookingServices {
		var svc ServiceModel.ServiceModel
		if err := h.DB.First(&svc, "service_id = ?", item.ServiceID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Service not found: "+item.ServiceID.String())
			}
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		if !svc.ServiceIsActive {
			return fiber.NewError(fiber.StatusUnprocessableEntity, "Service is not active: "+svc.ServiceName)
		}
	}

	// Early, friendly availability check; the insert re-checks under lock.
	if err := h.guard.AssertAvailable(req.BookingCourtID, req.BookingTimeSlotID, req.BookingDate); err != nil {
		return apperror.ToFiber(err)
	}

	b := req.ToModel(userID)
	if err := h.repo.CreateWithGuard(b); err != nil {
		return apperror.ToFiber(err)
	}

	return helper.JsonCreated(c, "Booking created", dto.FromModel(*b))
}

/* ======================== GET BY ID ======================== */
// GET /api/u/bookings/:id
func (h *BookingController) GetByID(c *fiber.Ctx) error {
	var row model.BookingModel
	if err := h.DB.Preload("BookingServices").
		First(&row, "booking_id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Booking not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	// Customers only see their own bookings; admins see everything.
	if role := helper.GetRoleFromToken(c); role != "admin" && role != "owner" {
		userID, err := helper.GetUserIDFromToken(c)
		if err != nil {
			return err
		}
		if row.BookingUserID != userID {
			return fiber.NewError(fiber.StatusForbidden, "This booking belongs to another user")
		}
	}

	return helper.JsonOK(c, "OK", dto.FromModel(row))
}

/* ======================== LIST (OWN) ======================== */
// GET /api/u/bookings
func (h *BookingController) ListOwn(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	return h.list(c, h.DB.Model(&model.BookingModel{}).Where("booking_user_id = ?", userID))
}

/* ======================== LIST (ADMIN) ======================== */
// GET /api/a/bookings?court_id=&date=&status=
func (h *BookingController) ListAll(c *fiber.Ctx) error {
	base := h.DB.Model(&model.BookingModel{})
	if cid := c.Query("court_id"); cid != "" {
		id, err := uuid.Parse(cid)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid court_id")
		}
		base = base.Where("booking_court_id = ?", id)
	}
	if date := c.Query("date"); date != "" {
		base = base.Where("booking_date = ?", date)
	}
	if status := c.Query("status"); status != "" {
		base = base.Where("booking_status = ?", status)
	}
	return h.list(c, base)
}

func (h *BookingController) list(c *fiber.Ctx, base *gorm.DB) error {
	p := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.BookingModel
	if err := base.Preload("BookingServices").
		Order("booking_date DESC, created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "OK", dto.FromModels(rows), helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

/* ======================== UPDATE STATUS ======================== */
// PATCH /api/a/bookings/:id/status
func (h *BookingController) UpdateStatus(c *fiber.Ctx) error {
	var req dto.UpdateBookingStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid booking id")
	}

	if req.BookingStatus == model.BookingStatusCancelled {
		// Cancellation must free the slot; route through the guarded path.
		row, err := h.repo.CancelAndFreeSlot(id)
		if err != nil {
			return apperror.ToFiber(err)
		}
		return helper.JsonUpdated(c, "Booking cancelled", dto.FromModel(*row))
	}

	var row model.BookingModel
	if err := h.DB.First(&row, "booking_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Booking not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if row.BookingStatus == model.BookingStatusCancelled {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "Cancelled bookings cannot change status")
	}

	row.BookingStatus = req.BookingStatus
	if err := h.DB.Save(&row).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update booking")
	}

	return helper.JsonUpdated(c, "Booking status updated", dto.FromModel(row))
}

/* ======================== CANCEL (OWN) ======================== */
// PATCH /api/u/bookings/:id/cancel
func (h *BookingController) Cancel(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid booking id")
	}

	var row model.BookingModel
	if err := h.DB.First(&row, "booking_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Booking not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if row.BookingUserID != userID {
		return fiber.NewError(fiber.StatusForbidden, "You may only cancel your own bookings")
	}

	cancelled, err := h.repo.CancelAndFreeSlot(id)
	if err != nil {
		return apperror.ToFiber(err)
	}

	return helper.JsonUpdated(c, "Booking cancelled", dto.FromModel(*cancelled))
}
