package service

import (
	"strings"
	"testing"
	"time"

	"suiviarrets_backend/internals/features/arrets/dto"
)

var today = time.Date(2026, 1, 20, 10, 0, 0, 0, time.UTC)

func validRequest() dto.ArretRequest {
	batiment := "Bât A"
	nbr := 2
	return dto.ArretRequest{
		Site:        "Berrechid",
		Batiment:    &batiment,
		Date:        "2026-01-19",
		HeureDebut:  "06:00",
		HeureFin:    "14:00",
		Client:      "ACME",
		NbrEquipes:  &nbr,
		Service:     "Maintenance",
		Description: "Panne convoyeur",
	}
}

func TestValidateArretAcceptsValidRecord(t *testing.T) {
	if errs := ValidateArret(validRequest(), today); len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestValidateArretMissingFieldsAccumulate(t *testing.T) {
	errs := ValidateArret(dto.ArretRequest{}, today)
	// site, date, heure_debut, heure_fin, client, service: one message each
	if len(errs) != 6 {
		t.Fatalf("expected 6 errors, got %d: %v", len(errs), errs)
	}
	for _, field := range []string{"site", "date", "heure_debut", "heure_fin", "client", "service"} {
		found := false
		for _, e := range errs {
			if strings.Contains(e, "'"+field+"'") {
				found = true
			}
		}
		if !found {
			t.Fatalf("no message for missing field %s in %v", field, errs)
		}
	}
}

func TestValidateArretInvalidSite(t *testing.T) {
	req := validRequest()
	req.Site = "Casablanca"
	req.Batiment = nil
	errs := ValidateArret(req, today)
	if len(errs) != 1 || !strings.Contains(errs[0], "Site invalide") {
		t.Fatalf("expected one site error, got %v", errs)
	}
}

func TestValidateArretBatimentMustMatchSite(t *testing.T) {
	req := validRequest()
	batiment := "TEM" // belongs to Temara
	req.Batiment = &batiment
	errs := ValidateArret(req, today)
	if len(errs) != 1 || !strings.Contains(errs[0], "Bâtiment") {
		t.Fatalf("expected one batiment error, got %v", errs)
	}
}

func TestValidateArretOvernightAllowed(t *testing.T) {
	req := validRequest()
	req.HeureDebut = "22:00"
	req.HeureFin = "02:00"
	if errs := ValidateArret(req, today); len(errs) != 0 {
		t.Fatalf("overnight pair rejected: %v", errs)
	}
}

func TestValidateArretBadTimeFormat(t *testing.T) {
	req := validRequest()
	req.HeureDebut = "pas une heure"
	errs := ValidateArret(req, today)
	if len(errs) != 1 || !strings.Contains(errs[0], "heure") {
		t.Fatalf("expected one time error, got %v", errs)
	}
}

func TestValidateArretNbrEquipesRange(t *testing.T) {
	for _, n := range []int{0, 4, -1} {
		req := validRequest()
		nbr := n
		req.NbrEquipes = &nbr
		errs := ValidateArret(req, today)
		if len(errs) != 1 || !strings.Contains(errs[0], "équipes") {
			t.Fatalf("nbr_equipes=%d: expected one error, got %v", n, errs)
		}
	}
	for _, n := range []int{1, 2, 3} {
		req := validRequest()
		nbr := n
		req.NbrEquipes = &nbr
		if errs := ValidateArret(req, today); len(errs) != 0 {
			t.Fatalf("nbr_equipes=%d rejected: %v", n, errs)
		}
	}
}

func TestValidateArretInvalidService(t *testing.T) {
	req := validRequest()
	req.Service = "Comptabilité"
	errs := ValidateArret(req, today)
	if len(errs) != 1 || !strings.Contains(errs[0], "Service invalide") {
		t.Fatalf("expected one service error, got %v", errs)
	}
}

func TestValidateArretInvalidProcessus(t *testing.T) {
	req := validRequest()
	processus := "Peinture"
	req.Processus = &processus
	errs := ValidateArret(req, today)
	if len(errs) != 1 || !strings.Contains(errs[0], "Processus invalide") {
		t.Fatalf("expected one processus error, got %v", errs)
	}

	processus = "CMS"
	if errs := ValidateArret(req, today); len(errs) != 0 {
		t.Fatalf("valid processus rejected: %v", errs)
	}
}

func TestValidateArretInvalidStatut(t *testing.T) {
	req := validRequest()
	req.Statut = "Fermé"
	errs := ValidateArret(req, today)
	if len(errs) != 1 || !strings.Contains(errs[0], "Statut invalide") {
		t.Fatalf("expected one statut error, got %v", errs)
	}
}

func TestValidateArretFutureDateRejected(t *testing.T) {
	req := validRequest()
	req.Date = "2026-01-21"
	errs := ValidateArret(req, today)
	if len(errs) != 1 || !strings.Contains(errs[0], "futur") {
		t.Fatalf("expected one future-date error, got %v", errs)
	}

	// Same day is allowed.
	req.Date = "2026-01-20"
	if errs := ValidateArret(req, today); len(errs) != 0 {
		t.Fatalf("today rejected: %v", errs)
	}
}

func TestValidateArretViolationsAccumulate(t *testing.T) {
	req := validRequest()
	req.Site = "Casablanca"
	req.Batiment = nil
	req.Date = "2027-01-01"
	nbr := 9
	req.NbrEquipes = &nbr
	errs := ValidateArret(req, today)
	if len(errs) != 3 {
		t.Fatalf("expected 3 accumulated errors, got %d: %v", len(errs), errs)
	}
}

func TestValidateArretBadDateFormat(t *testing.T) {
	req := validRequest()
	req.Date = "19 janvier 2026"
	errs := ValidateArret(req, today)
	if len(errs) != 1 || !strings.Contains(errs[0], "date invalide") {
		t.Fatalf("expected one date-format error, got %v", errs)
	}
}
