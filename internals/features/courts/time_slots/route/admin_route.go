package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	slotCtl "courtku_backend/internals/features/courts/time_slots/controller"
)

func TimeSlotAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := slotCtl.NewTimeSlotController(db)

	slots := r.Group("/time-slots")

	slots.Post("/generate", ctl.Generate)     // POST  /time-slots/generate
	slots.Patch("/:id/block", ctl.Block)      // PATCH /time-slots/:id/block
	slots.Patch("/:id/unblock", ctl.Unblock)  // PATCH /time-slots/:id/unblock
}
