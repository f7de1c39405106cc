package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"suiviarrets_backend/internals/features/matrice/controller"
)

func MatriceRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewMatriceController(db)

	matrice := api.Group("/matrice")
	matrice.Get("/", ctrl.GetAllEntries)
	matrice.Get("/facteur", ctrl.GetFacteur)
	matrice.Post("/", ctrl.CreateEntry)
	matrice.Put("/:id", ctrl.UpdateEntry)
	matrice.Delete("/:id", ctrl.DeleteEntry)
	matrice.Post("/recalculer", ctrl.RecalculateImpacts)
}
