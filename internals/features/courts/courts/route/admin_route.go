package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	courtCtl "courtku_backend/internals/features/courts/courts/controller"
)

func CourtAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := courtCtl.NewCourtController(db)

	courts := r.Group("/courts")

	courts.Post("/", ctl.Create)                    // POST  /courts
	courts.Put("/:id", ctl.Update)                  // PUT   /courts/:id
	courts.Patch("/:id/deactivate", ctl.Deactivate) // PATCH /courts/:id/deactivate
}
