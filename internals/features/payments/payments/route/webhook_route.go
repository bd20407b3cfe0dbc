package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paymentCtl "courtku_backend/internals/features/payments/payments/controller"
)

// PaymentWebhookRoutes is mounted outside the auth groups; the gateway
// calls it directly.
func PaymentWebhookRoutes(r fiber.Router, db *gorm.DB) {
	ctl := paymentCtl.NewPaymentController(db)

	r.Post("/payments/notification", ctl.Notification) // POST /payments/notification
}
