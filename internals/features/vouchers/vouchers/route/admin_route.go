package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	discountCtl "courtku_backend/internals/features/vouchers/vouchers/controller"
	voucherRepo "courtku_backend/internals/features/vouchers/vouchers/repository"
	voucherSvc "courtku_backend/internals/features/vouchers/vouchers/service"
)

func newDiscountController(db *gorm.DB) *discountCtl.DiscountController {
	engine := voucherSvc.NewVoucherEngine(voucherRepo.NewUnitOfWork(db))
	return discountCtl.NewDiscountController(db, engine)
}

func DiscountAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := newDiscountController(db)

	discounts := r.Group("/discounts")

	discounts.Post("/", ctl.Create)                      // POST /discounts
	discounts.Get("/", ctl.List)                         // GET  /discounts
	discounts.Post("/apply", ctl.Apply)                  // POST /discounts/apply
	discounts.Post("/expire-overdue", ctl.ExpireOverdue) // POST /discounts/expire-overdue
	discounts.Get("/:id", ctl.GetByID)                   // GET  /discounts/:id
	discounts.Put("/:id", ctl.Update)                    // PUT  /discounts/:id

	r.Delete("/invoices/:invoice_id/discount", ctl.Remove) // DELETE /invoices/:invoice_id/discount
}
