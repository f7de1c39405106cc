package dto

import (
	"suiviarrets_backend/internals/features/arrets/model"
)

// ============================
// Request DTO
// ============================

// ArretRequest carries the raw form input. Derived fields (durée, semaine,
// mois, impact) are never accepted from the caller; the service computes them.
type ArretRequest struct {
	Site         string  `json:"site"`
	Batiment     *string `json:"batiment"`
	Date         string  `json:"date"`        // YYYY-MM-DD
	HeureDebut   string  `json:"heure_debut"` // HH:MM or HH:MM:SS
	HeureFin     string  `json:"heure_fin"`
	Client       string  `json:"client"`
	NbrEquipes   *int    `json:"nbr_equipes"`
	Processus    *string `json:"processus"`
	PosteMachine *string `json:"poste_machine"`
	SousFamille  *string `json:"sous_famille"`
	Service      string  `json:"service"`
	Description  string  `json:"description" validate:"omitempty,max=2000"`
	Reference    *string `json:"reference"`
	Demandeur    *string `json:"demandeur"`
	Equipe       *string `json:"equipe"`
	TraitePar    *string `json:"traite_par"`
	Statut       string  `json:"statut"`
}

// ============================
// Response DTO
// ============================

type ArretDTO struct {
	ID           uint     `json:"id"`
	Site         string   `json:"site"`
	Batiment     *string  `json:"batiment"`
	Date         string   `json:"date"`
	Semaine      string   `json:"semaine"`
	Mois         string   `json:"mois"`
	Annee        int      `json:"annee"`
	HeureDebut   string   `json:"heure_debut"`
	HeureFin     string   `json:"heure_fin"`
	DureeHeures  float64  `json:"duree_heures"`
	Client       string   `json:"client"`
	NbrEquipes   int      `json:"nbr_equipes"`
	ImpactPct    *float64 `json:"impact_pct"`
	Processus    *string  `json:"processus"`
	PosteMachine *string  `json:"poste_machine"`
	SousFamille  *string  `json:"sous_famille"`
	Service      string   `json:"service"`
	Description  string   `json:"description"`
	Reference    *string  `json:"reference"`
	Demandeur    *string  `json:"demandeur"`
	Equipe       *string  `json:"equipe"`
	TraitePar    *string  `json:"traite_par"`
	Statut       string   `json:"statut"`
	CreatedAt    string   `json:"created_at"`
	UpdatedAt    string   `json:"updated_at"`
}

type StatsDTO struct {
	TotalArrets   int64   `json:"total_arrets"`
	TotalHeures   float64 `json:"total_heures"`
	MoyenneHeures float64 `json:"moyenne_heures"`
	TotalImpact   float64 `json:"total_impact"`
}

// ============================
// Converter
// ============================

func ToArretDTO(m model.ArretModel) ArretDTO {
	return ArretDTO{
		ID:           m.ID,
		Site:         m.Site,
		Batiment:     m.Batiment,
		Date:         m.Date,
		Semaine:      m.Semaine,
		Mois:         m.Mois,
		Annee:        m.Annee,
		HeureDebut:   m.HeureDebut,
		HeureFin:     m.HeureFin,
		DureeHeures:  m.DureeHeures,
		Client:       m.Client,
		NbrEquipes:   m.NbrEquipes,
		ImpactPct:    m.ImpactPct,
		Processus:    m.Processus,
		PosteMachine: m.PosteMachine,
		SousFamille:  m.SousFamille,
		Service:      m.Service,
		Description:  m.Description,
		Reference:    m.Reference,
		Demandeur:    m.Demandeur,
		Equipe:       m.Equipe,
		TraitePar:    m.TraitePar,
		Statut:       m.Statut,
		CreatedAt:    m.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:    m.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
