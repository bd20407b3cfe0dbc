package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paymentCtl "courtku_backend/internals/features/payments/payments/controller"
)

func PaymentUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := paymentCtl.NewPaymentController(db)

	payments := r.Group("/payments")

	payments.Post("/", ctl.Create)             // POST /payments
	payments.Get("/client-key", ctl.ClientKey) // GET  /payments/client-key
}
