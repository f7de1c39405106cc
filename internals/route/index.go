// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	arretRoute "suiviarrets_backend/internals/features/arrets/route"
	exportRoute "suiviarrets_backend/internals/features/exports/route"
	matriceRoute "suiviarrets_backend/internals/features/matrice/route"
	referenceRoute "suiviarrets_backend/internals/features/references/route"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	BaseRoutes(app, db)

	api := app.Group("/api")

	log.Println("[INFO] Setting up ArretRoutes...")
	arretRoute.ArretRoutes(api, db)

	log.Println("[INFO] Setting up MatriceRoutes...")
	matriceRoute.MatriceRoutes(api, db)

	log.Println("[INFO] Setting up ReferenceRoutes...")
	referenceRoute.ReferenceRoutes(api, db)

	log.Println("[INFO] Setting up ExportRoutes...")
	exportRoute.ExportRoutes(api, db)
}
