package model

import "time"

// ArretModel is one recorded production stoppage. Derived columns (semaine,
// mois, annee, duree_heures, impact_pct) are computed at write time and never
// entered directly.
type ArretModel struct {
	ID           uint     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Site         string   `gorm:"column:site;type:text;not null;index" json:"site"`
	Batiment     *string  `gorm:"column:batiment;type:text" json:"batiment"`
	Date         string   `gorm:"column:date;type:text;not null;index" json:"date"` // YYYY-MM-DD
	Semaine      string   `gorm:"column:semaine;type:text;index" json:"semaine"`    // YYYY-SWW
	Mois         string   `gorm:"column:mois;type:text" json:"mois"`                // YYYY-MMM
	Annee        int      `gorm:"column:annee" json:"annee"`
	HeureDebut   string   `gorm:"column:heure_debut;type:text;not null" json:"heure_debut"` // HH:MM:SS
	HeureFin     string   `gorm:"column:heure_fin;type:text;not null" json:"heure_fin"`
	DureeHeures  float64  `gorm:"column:duree_heures" json:"duree_heures"`
	Client       string   `gorm:"column:client;type:text;not null;index" json:"client"`
	NbrEquipes   int      `gorm:"column:nbr_equipes" json:"nbr_equipes"`
	ImpactPct    *float64 `gorm:"column:impact_pct" json:"impact_pct"` // nil = not calculable
	Processus    *string  `gorm:"column:processus;type:text" json:"processus"`
	PosteMachine *string  `gorm:"column:poste_machine;type:text" json:"poste_machine"`
	SousFamille  *string  `gorm:"column:sous_famille;type:text" json:"sous_famille"`
	Service      string   `gorm:"column:service;type:text;not null;index" json:"service"`
	Description  string   `gorm:"column:description;type:text" json:"description"`
	Reference    *string  `gorm:"column:reference;type:text" json:"reference"`
	Demandeur    *string  `gorm:"column:demandeur;type:text" json:"demandeur"`
	Equipe       *string  `gorm:"column:equipe;type:text" json:"equipe"`
	TraitePar    *string  `gorm:"column:traite_par;type:text" json:"traite_par"`
	Statut       string   `gorm:"column:statut;type:text;not null;default:'Ouvert'" json:"statut"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (ArretModel) TableName() string {
	return "arrets"
}
