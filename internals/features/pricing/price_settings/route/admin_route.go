package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	psCtl "courtku_backend/internals/features/pricing/price_settings/controller"
)

func PriceSettingAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := psCtl.NewPriceSettingController(db)

	settings := r.Group("/price-settings")

	settings.Post("/", ctl.Create)                    // POST   /price-settings
	settings.Get("/", ctl.List)                       // GET    /price-settings
	settings.Get("/:id", ctl.GetByID)                 // GET    /price-settings/:id
	settings.Put("/:id", ctl.Update)                  // PUT    /price-settings/:id
	settings.Patch("/:id/deactivate", ctl.Deactivate) // PATCH  /price-settings/:id/deactivate
}
