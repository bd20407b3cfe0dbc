package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	psCtl "courtku_backend/internals/features/pricing/price_settings/controller"
)

func AllPricingRoutes(r fiber.Router, db *gorm.DB) {
	ctl := psCtl.NewPriceSettingController(db)

	pricing := r.Group("/pricing")

	pricing.Get("/resolve", ctl.Resolve) // GET /pricing/resolve?court_id=&date=&slot_index=
}
