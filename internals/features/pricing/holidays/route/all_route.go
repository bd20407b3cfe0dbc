package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	holidayCtl "courtku_backend/internals/features/pricing/holidays/controller"
)

func AllHolidayRoutes(r fiber.Router, db *gorm.DB) {
	ctl := holidayCtl.NewHolidayController(db)

	holidays := r.Group("/holidays")

	holidays.Get("/", ctl.List) // GET /holidays
}
