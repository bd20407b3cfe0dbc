package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	bookingCtl "courtku_backend/internals/features/bookings/bookings/controller"
	middlewares "courtku_backend/internals/middlewares"
)

func BookingUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := bookingCtl.NewBookingController(db)

	bookings := r.Group("/bookings")

	bookings.Post("/", middlewares.BookingRateLimiter(), ctl.Create) // POST  /bookings
	bookings.Get("/", ctl.ListOwn)                                   // GET   /bookings
	bookings.Get("/:id", ctl.GetByID)                                // GET   /bookings/:id
	bookings.Patch("/:id/cancel", ctl.Cancel)                        // PATCH /bookings/:id/cancel
}
