package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func InvoiceUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := newInvoiceController(db)

	invoices := r.Group("/invoices")

	invoices.Get("/", ctl.ListOwn) // GET /invoices
}
