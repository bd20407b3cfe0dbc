package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	holidayCtl "courtku_backend/internals/features/pricing/holidays/controller"
)

func HolidayAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := holidayCtl.NewHolidayController(db)

	holidays := r.Group("/holidays")

	holidays.Post("/", ctl.Create)      // POST   /holidays
	holidays.Get("/", ctl.List)         // GET    /holidays
	holidays.Get("/:id", ctl.GetByID)   // GET    /holidays/:id
	holidays.Put("/:id", ctl.Update)    // PUT    /holidays/:id
	holidays.Delete("/:id", ctl.Delete) // DELETE /holidays/:id
}
