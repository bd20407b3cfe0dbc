package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	svcCtl "courtku_backend/internals/features/billing/services/controller"
)

func ServiceAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := svcCtl.NewServiceController(db)

	services := r.Group("/services")

	services.Post("/", ctl.Create)   // POST /services
	services.Put("/:id", ctl.Update) // PUT  /services/:id
}
