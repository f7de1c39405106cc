package service

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	arretModel "suiviarrets_backend/internals/features/arrets/model"
	"suiviarrets_backend/internals/features/matrice/dto"
	"suiviarrets_backend/internals/features/matrice/model"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&model.MatriceModel{}, &arretModel.ArretModel{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestGetFacteurExactMatch(t *testing.T) {
	db := testDB(t)
	svc := NewMatriceService(db)

	db.Create(&model.MatriceModel{Site: "Berrechid", Client: "ACME", NbrEquipes: 2, Facteur: 20.0, Actif: true})

	facteur, err := svc.GetFacteur("Berrechid", "ACME", 2)
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if facteur == nil || *facteur != 20.0 {
		t.Fatalf("expected 20.0, got %v", facteur)
	}

	// Different team count is a different combination.
	facteur, err = svc.GetFacteur("Berrechid", "ACME", 3)
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if facteur != nil {
		t.Fatalf("expected nil for unmatched combination, got %v", *facteur)
	}
}

func TestGetFacteurIgnoresInactiveEntries(t *testing.T) {
	db := testDB(t)
	svc := NewMatriceService(db)

	db.Create(&model.MatriceModel{Site: "Temara", Client: "ACME", NbrEquipes: 1, Facteur: 8.0, Actif: false})

	facteur, err := svc.GetFacteur("Temara", "ACME", 1)
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if facteur != nil {
		t.Fatalf("inactive entry must not match, got %v", *facteur)
	}
}

func TestValidateMatrice(t *testing.T) {
	errs := ValidateMatrice(dto.MatriceRequest{})
	if len(errs) != 4 {
		t.Fatalf("expected 4 errors for empty entry, got %d: %v", len(errs), errs)
	}

	errs = ValidateMatrice(dto.MatriceRequest{Site: "Ailleurs", Client: "ACME", NbrEquipes: 2, Facteur: -5})
	if len(errs) != 2 {
		t.Fatalf("expected site + facteur errors, got %v", errs)
	}

	errs = ValidateMatrice(dto.MatriceRequest{Site: "Berrechid", Client: "ACME", NbrEquipes: 2, Facteur: 20})
	if len(errs) != 0 {
		t.Fatalf("valid entry rejected: %v", errs)
	}
}

func TestRecalculateAllImpacts(t *testing.T) {
	db := testDB(t)
	svc := NewMatriceService(db)

	db.Create(&model.MatriceModel{Site: "Berrechid", Client: "ACME", NbrEquipes: 2, Facteur: 20.0, Actif: true})

	old := 0.9
	db.Create(&arretModel.ArretModel{
		Site: "Berrechid", Date: "2026-01-19", HeureDebut: "06:00:00", HeureFin: "11:00:00",
		DureeHeures: 5.0, Client: "ACME", NbrEquipes: 2, Service: "Maintenance",
		Statut: "Résolu", ImpactPct: &old,
	})
	db.Create(&arretModel.ArretModel{
		Site: "Temara", Date: "2026-01-19", HeureDebut: "06:00:00", HeureFin: "10:00:00",
		DureeHeures: 4.0, Client: "Inconnu", NbrEquipes: 1, Service: "Supply",
		Statut: "Résolu", ImpactPct: &old,
	})

	report, err := svc.RecalculateAllImpacts()
	if err != nil {
		t.Fatalf("recalculate: %v", err)
	}
	if report.Total != 2 || report.Recalcules != 1 || report.SansFacteur != 1 {
		t.Fatalf("unexpected report: %+v", report)
	}

	var matched arretModel.ArretModel
	db.Where("client = ?", "ACME").First(&matched)
	if matched.ImpactPct == nil || *matched.ImpactPct != 0.25 {
		t.Fatalf("expected impact 0.25, got %v", matched.ImpactPct)
	}

	var unmatched arretModel.ArretModel
	db.Where("client = ?", "Inconnu").First(&unmatched)
	if unmatched.ImpactPct != nil {
		t.Fatalf("expected nil impact without factor, got %v", *unmatched.ImpactPct)
	}
}
