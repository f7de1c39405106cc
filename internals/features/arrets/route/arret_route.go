package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"suiviarrets_backend/internals/features/arrets/controller"
)

func ArretRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewArretController(db)

	arrets := api.Group("/arrets")
	arrets.Post("/", ctrl.CreateArret)
	arrets.Get("/", ctrl.GetAllArrets)
	arrets.Get("/stats", ctrl.GetStats)
	arrets.Get("/:id", ctrl.GetArretByID)
	arrets.Put("/:id", ctrl.UpdateArret)
	arrets.Delete("/:id", ctrl.DeleteArret)
}
