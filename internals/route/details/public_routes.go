package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	serviceRoute "courtku_backend/internals/features/billing/services/route"
	courtRoute "courtku_backend/internals/features/courts/courts/route"
	timeSlotRoute "courtku_backend/internals/features/courts/time_slots/route"
	holidayRoute "courtku_backend/internals/features/pricing/holidays/route"
	pricingRoute "courtku_backend/internals/features/pricing/price_settings/route"
)

// PublicRoutes carries everything a visitor can browse without logging in:
// the court catalog, slot availability, services, and holiday calendar.
func PublicRoutes(r fiber.Router, db *gorm.DB) {
	courtRoute.AllCourtRoutes(r, db)
	timeSlotRoute.AllTimeSlotRoutes(r, db)
	serviceRoute.AllServiceRoutes(r, db)
	holidayRoute.AllHolidayRoutes(r, db)
	pricingRoute.AllPricingRoutes(r, db)
}
