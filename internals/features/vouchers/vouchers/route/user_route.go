package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func DiscountUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := newDiscountController(db)

	discounts := r.Group("/discounts")

	discounts.Post("/check", ctl.Check) // POST /discounts/check
}
