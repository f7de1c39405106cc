package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"suiviarrets_backend/internals/constants"
	arretModel "suiviarrets_backend/internals/features/arrets/model"
	arretService "suiviarrets_backend/internals/features/arrets/service"
	"suiviarrets_backend/internals/features/matrice/dto"
	"suiviarrets_backend/internals/features/matrice/model"
)

type MatriceService struct {
	DB *gorm.DB
}

func NewMatriceService(db *gorm.DB) *MatriceService {
	return &MatriceService{DB: db}
}

// GetFacteur is the exact-match lookup against active entries only.
// A missing combination is not an error: it comes back as nil.
func (s *MatriceService) GetFacteur(site, client string, nbrEquipes int) (*float64, error) {
	var entry model.MatriceModel
	err := s.DB.
		Where("site = ? AND client = ? AND nbr_equipes = ? AND actif = ?", site, client, nbrEquipes, true).
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry.Facteur, nil
}

// ValidateMatrice checks a matrix entry; violations accumulate.
func ValidateMatrice(in dto.MatriceRequest) []string {
	var errs []string

	if in.Site == "" {
		errs = append(errs, "Le site est obligatoire.")
	}
	if in.Client == "" {
		errs = append(errs, "Le client est obligatoire.")
	}
	if in.NbrEquipes == 0 {
		errs = append(errs, "Le nombre d'équipes est obligatoire.")
	}
	if in.Facteur == 0 {
		errs = append(errs, "Le facteur est obligatoire.")
	}

	if in.Site != "" && !constants.IsValidSite(in.Site) {
		errs = append(errs, fmt.Sprintf("Site invalide: %s", in.Site))
	}
	if in.Facteur < 0 {
		errs = append(errs, "Le facteur doit être un nombre positif.")
	}

	return errs
}

// RecalculateAllImpacts rewrites the impact snapshot of every arrêt against
// the matrix as it stands now. One transaction: either every row is updated
// or none is.
func (s *MatriceService) RecalculateAllImpacts() (dto.RecalcReportDTO, error) {
	var report dto.RecalcReportDTO

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var entries []model.MatriceModel
		if err := tx.Where("actif = ?", true).Find(&entries).Error; err != nil {
			return err
		}
		facteurs := make(map[string]float64, len(entries))
		for _, e := range entries {
			facteurs[comboKey(e.Site, e.Client, e.NbrEquipes)] = e.Facteur
		}

		var arrets []arretModel.ArretModel
		if err := tx.Select("id", "site", "client", "nbr_equipes", "duree_heures").Find(&arrets).Error; err != nil {
			return err
		}

		for _, a := range arrets {
			report.Total++

			var facteur *float64
			if f, ok := facteurs[comboKey(a.Site, a.Client, a.NbrEquipes)]; ok {
				facteur = &f
			}
			impact := arretService.CalculateImpact(a.DureeHeures, facteur)
			if impact == nil {
				report.SansFacteur++
			} else {
				report.Recalcules++
			}

			if err := tx.Model(&arretModel.ArretModel{}).
				Where("id = ?", a.ID).
				Update("impact_pct", impact).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return dto.RecalcReportDTO{}, err
	}
	return report, nil
}

func comboKey(site, client string, nbrEquipes int) string {
	return fmt.Sprintf("%s|%s|%d", site, client, nbrEquipes)
}
