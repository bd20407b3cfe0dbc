package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	invoiceRoute "courtku_backend/internals/features/billing/invoices/route"
	bookingRoute "courtku_backend/internals/features/bookings/bookings/route"
	paymentRoute "courtku_backend/internals/features/payments/payments/route"
	discountRoute "courtku_backend/internals/features/vouchers/vouchers/route"
)

// UserRoutes is the authenticated customer surface: bookings, their
// invoices, voucher checks, and payment initiation.
func UserRoutes(r fiber.Router, db *gorm.DB) {
	bookingRoute.BookingUserRoutes(r, db)
	invoiceRoute.InvoiceUserRoutes(r, db)
	discountRoute.DiscountUserRoutes(r, db)
	paymentRoute.PaymentUserRoutes(r, db)
}
