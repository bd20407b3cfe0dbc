package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	invoiceRoute "courtku_backend/internals/features/billing/invoices/route"
	serviceRoute "courtku_backend/internals/features/billing/services/route"
	bookingRoute "courtku_backend/internals/features/bookings/bookings/route"
	courtRoute "courtku_backend/internals/features/courts/courts/route"
	timeSlotRoute "courtku_backend/internals/features/courts/time_slots/route"
	paymentRoute "courtku_backend/internals/features/payments/payments/route"
	holidayRoute "courtku_backend/internals/features/pricing/holidays/route"
	pricingRoute "courtku_backend/internals/features/pricing/price_settings/route"
	discountRoute "courtku_backend/internals/features/vouchers/vouchers/route"
)

// AdminRoutes is the back-office surface.
func AdminRoutes(r fiber.Router, db *gorm.DB) {
	courtRoute.CourtAdminRoutes(r, db)
	timeSlotRoute.TimeSlotAdminRoutes(r, db)
	holidayRoute.HolidayAdminRoutes(r, db)
	pricingRoute.PriceSettingAdminRoutes(r, db)
	serviceRoute.ServiceAdminRoutes(r, db)
	bookingRoute.BookingAdminRoutes(r, db)
	invoiceRoute.InvoiceAdminRoutes(r, db)
	discountRoute.DiscountAdminRoutes(r, db)
	paymentRoute.PaymentAdminRoutes(r, db)
}
