package dto

import "suiviarrets_backend/internals/features/matrice/model"

// ============================
// Request DTO
// ============================

type MatriceRequest struct {
	Site       string  `json:"site"`
	Client     string  `json:"client"`
	NbrEquipes int     `json:"nbr_equipes"`
	Facteur    float64 `json:"facteur"`
}

// ============================
// Response DTO
// ============================

type MatriceDTO struct {
	ID         uint    `json:"id"`
	Site       string  `json:"site"`
	Client     string  `json:"client"`
	NbrEquipes int     `json:"nbr_equipes"`
	Facteur    float64 `json:"facteur"`
	Actif      bool    `json:"actif"`
}

type RecalcReportDTO struct {
	Total       int `json:"total"`
	Recalcules  int `json:"recalcules"`
	SansFacteur int `json:"sans_facteur"`
}

// ============================
// Converter
// ============================

func ToMatriceDTO(m model.MatriceModel) MatriceDTO {
	return MatriceDTO{
		ID:         m.ID,
		Site:       m.Site,
		Client:     m.Client,
		NbrEquipes: m.NbrEquipes,
		Facteur:    m.Facteur,
		Actif:      m.Actif,
	}
}
