package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	slotCtl "courtku_backend/internals/features/courts/time_slots/controller"
)

func AllTimeSlotRoutes(r fiber.Router, db *gorm.DB) {
	ctl := slotCtl.NewTimeSlotController(db)

	slots := r.Group("/time-slots")

	slots.Get("/", ctl.List) // GET /time-slots?court_id=&date=
}
