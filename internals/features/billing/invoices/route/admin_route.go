package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	invoiceCtl "courtku_backend/internals/features/billing/invoices/controller"
	invoiceRepo "courtku_backend/internals/features/billing/invoices/repository"
	invoiceSvc "courtku_backend/internals/features/billing/invoices/service"
	voucherRepo "courtku_backend/internals/features/vouchers/vouchers/repository"
	voucherSvc "courtku_backend/internals/features/vouchers/vouchers/service"
)

func newInvoiceController(db *gorm.DB) *invoiceCtl.InvoiceController {
	engine := voucherSvc.NewVoucherEngine(voucherRepo.NewUnitOfWork(db))
	builder := invoiceSvc.NewInvoiceBuilder(
		invoiceRepo.NewBillableBookingRepository(db),
		invoiceRepo.NewInvoiceRepository(db),
		invoiceRepo.NewCatalogRepository(db),
	).WithVoucherApplier(engine)

	return invoiceCtl.NewInvoiceController(db, builder)
}

func InvoiceAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := newInvoiceController(db)

	invoices := r.Group("/invoices")

	invoices.Post("/", ctl.Build)                                // POST   /invoices
	invoices.Get("/", ctl.List)                                  // GET    /invoices
	invoices.Get("/:id", ctl.GetByID)                            // GET    /invoices/:id
	invoices.Patch("/:id/status", ctl.UpdateStatus)              // PATCH  /invoices/:id/status
	invoices.Post("/:id/details", ctl.AddDetail)                 // POST   /invoices/:id/details
	invoices.Delete("/:id/details/:detail_id", ctl.RemoveDetail) // DELETE /invoices/:id/details/:detail_id
}
