package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	bookingCtl "courtku_backend/internals/features/bookings/bookings/controller"
)

func BookingAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := bookingCtl.NewBookingController(db)

	bookings := r.Group("/bookings")

	bookings.Get("/", ctl.ListAll)                  // GET   /bookings
	bookings.Get("/:id", ctl.GetByID)               // GET   /bookings/:id
	bookings.Patch("/:id/status", ctl.UpdateStatus) // PATCH /bookings/:id/status
}
