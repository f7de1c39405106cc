package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"suiviarrets_backend/internals/features/exports/controller"
	middlewares "suiviarrets_backend/internals/middlewares"
)

func ExportRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewExportController(db)

	exports := api.Group("/exports")
	exports.Get("/excel", ctrl.ExportExcel)
	exports.Get("/csv", ctrl.ExportCSV)
	// Imports rewrite many rows at once; throttle harder than reads.
	exports.Post("/import", middlewares.ImportRateLimiter(), ctrl.ImportExcel)
}
