package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	svcCtl "courtku_backend/internals/features/billing/services/controller"
)

func AllServiceRoutes(r fiber.Router, db *gorm.DB) {
	ctl := svcCtl.NewServiceController(db)

	services := r.Group("/services")

	services.Get("/", ctl.List)       // GET /services
	services.Get("/:id", ctl.GetByID) // GET /services/:id
}
