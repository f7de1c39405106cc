package seeds

import (
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"suiviarrets_backend/internals/constants"
	refModel "suiviarrets_backend/internals/features/references/model"
)

// RunAllSeeds loads the reference tables from the configured value sets.
// Idempotent: existing noms are left untouched.
func RunAllSeeds(db *gorm.DB) {
	seedSites(db)
	seedBatiments(db)
	seedServices(db)
	log.Println("✅ Reference data seeded.")
}

func seedSites(db *gorm.DB) {
	for _, nom := range constants.Sites {
		site := refModel.SiteModel{Nom: nom, Actif: true}
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&site).Error; err != nil {
			log.Printf("seed sites: %v", err)
		}
	}
}

func seedBatiments(db *gorm.DB) {
	for site, batiments := range constants.BatimentsParSite {
		for _, nom := range batiments {
			b := refModel.BatimentModel{Nom: nom, Site: site, Actif: true}
			if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&b).Error; err != nil {
				log.Printf("seed batiments: %v", err)
			}
		}
	}
}

func seedServices(db *gorm.DB) {
	for _, nom := range constants.Services {
		s := refModel.ServiceModel{Nom: nom, Actif: true}
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&s).Error; err != nil {
			log.Printf("seed services: %v", err)
		}
	}
}
