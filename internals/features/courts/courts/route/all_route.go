package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	courtCtl "courtku_backend/internals/features/courts/courts/controller"
)

func AllCourtRoutes(r fiber.Router, db *gorm.DB) {
	ctl := courtCtl.NewCourtController(db)

	courts := r.Group("/courts")

	courts.Get("/", ctl.List)       // GET /courts
	courts.Get("/:id", ctl.GetByID) // GET /courts/:id
}
