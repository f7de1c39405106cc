package dto

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"suiviarrets_backend/internals/features/arrets/model"
)

func seedJournal(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&model.ArretModel{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	ref := "REF-001"
	rows := []model.ArretModel{
		{Site: "Berrechid", Date: "2026-01-10", Semaine: "2026-S02", HeureDebut: "06:00:00", HeureFin: "08:00:00",
			DureeHeures: 2, Client: "ACME", Service: "Maintenance", Statut: "Résolu", Description: "Panne convoyeur", Reference: &ref},
		{Site: "Berrechid", Date: "2026-01-15", Semaine: "2026-S03", HeureDebut: "10:00:00", HeureFin: "12:00:00",
			DureeHeures: 2, Client: "ACME", Service: "Supply", Statut: "Ouvert", Description: "Rupture composant"},
		{Site: "Temara", Date: "2026-01-15", Semaine: "2026-S03", HeureDebut: "06:00:00", HeureFin: "07:00:00",
			DureeHeures: 1, Client: "Globex", Service: "Maintenance", Statut: "Résolu", Description: "Arrêt machine"},
		{Site: "Berrechid", Date: "2026-02-01", Semaine: "2026-S05", HeureDebut: "06:00:00", HeureFin: "09:00:00",
			DureeHeures: 3, Client: "Globex", Service: "Maintenance", Statut: "En cours", Description: "Réglage poste"},
	}
	for i := range rows {
		if err := db.Create(&rows[i]).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	return db
}

func countWith(t *testing.T, db *gorm.DB, f ArretFilter) int64 {
	t.Helper()
	var n int64
	if err := f.Apply(db.Model(&model.ArretModel{})).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}

func TestFiltersAreConjunctive(t *testing.T) {
	db := seedJournal(t)

	bySite := countWith(t, db, ArretFilter{Site: "Berrechid"})
	if bySite != 3 {
		t.Fatalf("site filter: expected 3, got %d", bySite)
	}
	byRange := countWith(t, db, ArretFilter{DateFrom: "2026-01-01", DateTo: "2026-01-31"})
	if byRange != 3 {
		t.Fatalf("date range filter: expected 3, got %d", byRange)
	}
	byService := countWith(t, db, ArretFilter{Service: "Maintenance"})
	if byService != 3 {
		t.Fatalf("service filter: expected 3, got %d", byService)
	}

	// The combination only keeps rows satisfying all three.
	combined := countWith(t, db, ArretFilter{
		Site:     "Berrechid",
		DateFrom: "2026-01-01",
		DateTo:   "2026-01-31",
		Service:  "Maintenance",
	})
	if combined != 1 {
		t.Fatalf("combined filter: expected 1, got %d", combined)
	}
}

func TestFilterBySemaineAndStatut(t *testing.T) {
	db := seedJournal(t)

	if n := countWith(t, db, ArretFilter{Semaine: "2026-S03"}); n != 2 {
		t.Fatalf("semaine filter: expected 2, got %d", n)
	}
	if n := countWith(t, db, ArretFilter{Semaine: "2026-S03", Statut: "Ouvert"}); n != 1 {
		t.Fatalf("semaine+statut: expected 1, got %d", n)
	}
}

func TestSearchMatchesDescriptionReferenceAndPoste(t *testing.T) {
	db := seedJournal(t)

	if n := countWith(t, db, ArretFilter{Search: "convoyeur"}); n != 1 {
		t.Fatalf("description search: expected 1, got %d", n)
	}
	if n := countWith(t, db, ArretFilter{Search: "REF-001"}); n != 1 {
		t.Fatalf("reference search: expected 1, got %d", n)
	}
	if n := countWith(t, db, ArretFilter{Search: "introuvable"}); n != 0 {
		t.Fatalf("no-match search: expected 0, got %d", n)
	}
	// Search stays conjunctive with the other filters.
	if n := countWith(t, db, ArretFilter{Search: "convoyeur", Site: "Temara"}); n != 0 {
		t.Fatalf("search+site: expected 0, got %d", n)
	}
}
