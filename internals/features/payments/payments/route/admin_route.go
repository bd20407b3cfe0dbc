package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paymentCtl "courtku_backend/internals/features/payments/payments/controller"
)

func PaymentAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := paymentCtl.NewPaymentController(db)

	payments := r.Group("/payments")

	payments.Get("/", ctl.List)       // GET /payments
	payments.Get("/:id", ctl.GetByID) // GET /payments/:id
}
