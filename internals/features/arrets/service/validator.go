// Domain validation for arrêts. Every applicable rule runs; violations
// accumulate so the operator sees the full list, not just the first.
package service

import (
	"fmt"
	"time"

	"suiviarrets_backend/internals/constants"
	"suiviarrets_backend/internals/features/arrets/dto"
	helper "suiviarrets_backend/internals/helpers"
)

// ValidateArret checks a candidate record before persistence. An empty
// result means the record is valid. Overnight time pairs (fin <= debut) are
// allowed, not an error.
func ValidateArret(in dto.ArretRequest, today time.Time) []string {
	var errs []string

	required := []struct {
		name  string
		value string
	}{
		{"site", in.Site},
		{"date", in.Date},
		{"heure_debut", in.HeureDebut},
		{"heure_fin", in.HeureFin},
		{"client", in.Client},
		{"service", in.Service},
	}
	for _, f := range required {
		if f.value == "" {
			errs = append(errs, fmt.Sprintf("Le champ '%s' est obligatoire.", f.name))
		}
	}

	if in.Site != "" && !constants.IsValidSite(in.Site) {
		errs = append(errs, fmt.Sprintf("Site invalide: %s. Valeurs acceptées: %v", in.Site, constants.Sites))
	}

	if in.Service != "" && !constants.IsValidService(in.Service) {
		errs = append(errs, fmt.Sprintf("Service invalide: %s. Valeurs acceptées: %v", in.Service, constants.Services))
	}

	if in.Processus != nil && *in.Processus != "" && !constants.IsValidProcessus(*in.Processus) {
		errs = append(errs, fmt.Sprintf("Processus invalide: %s. Valeurs acceptées: %v", *in.Processus, constants.Processus))
	}

	if in.Site != "" && in.Batiment != nil && *in.Batiment != "" {
		if !constants.IsValidBatiment(in.Site, *in.Batiment) {
			errs = append(errs, fmt.Sprintf(
				"Bâtiment '%s' invalide pour le site '%s'. Valeurs acceptées: %v",
				*in.Batiment, in.Site, constants.BatimentsParSite[in.Site]))
		}
	}

	if in.HeureDebut != "" && in.HeureFin != "" {
		if _, err := helper.ParseClock(in.HeureDebut); err != nil {
			errs = append(errs, fmt.Sprintf("Format d'heure invalide: %v", err))
		} else if _, err := helper.ParseClock(in.HeureFin); err != nil {
			errs = append(errs, fmt.Sprintf("Format d'heure invalide: %v", err))
		}
	}

	if in.NbrEquipes != nil {
		if *in.NbrEquipes < 1 || *in.NbrEquipes > 3 {
			errs = append(errs, "Le nombre d'équipes doit être entre 1 et 3.")
		}
	}

	if in.Statut != "" && !constants.IsValidStatut(in.Statut) {
		errs = append(errs, fmt.Sprintf("Statut invalide: %s. Valeurs acceptées: %v", in.Statut, constants.Statuts))
	}

	if in.Date != "" {
		d, err := helper.ParseDate(in.Date)
		if err != nil {
			errs = append(errs, fmt.Sprintf("Format de date invalide: %v", err))
		} else if dateOnly(d).After(dateOnly(today)) {
			errs = append(errs, "La date ne peut pas être dans le futur.")
		}
	}

	return errs
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
