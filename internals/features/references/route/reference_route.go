package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"suiviarrets_backend/internals/features/references/controller"
)

func ReferenceRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewReferenceController(db)

	refs := api.Group("/references")
	refs.Get("/config", ctrl.GetConfig)
	refs.Get("/sites", ctrl.GetSites)
	refs.Get("/batiments", ctrl.GetBatiments)
	refs.Get("/services", ctrl.GetServices)
	refs.Get("/clients", ctrl.GetClients)
	refs.Post("/clients", ctrl.CreateClient)
}
