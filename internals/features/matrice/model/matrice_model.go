package model

import "time"

// MatriceModel maps (site, client, nbr_equipes) to the productivity divisor.
// Deletion is soft (actif=false); the unique index keeps at most one row per
// combination.
type MatriceModel struct {
	ID         uint    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Site       string  `gorm:"column:site;type:text;not null;uniqueIndex:uq_matrice_combo" json:"site"`
	Client     string  `gorm:"column:client;type:text;not null;uniqueIndex:uq_matrice_combo" json:"client"`
	NbrEquipes int     `gorm:"column:nbr_equipes;not null;uniqueIndex:uq_matrice_combo" json:"nbr_equipes"`
	Facteur    float64 `gorm:"column:facteur;not null" json:"facteur"`
	Actif      bool    `gorm:"column:actif;not null;default:true" json:"actif"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (MatriceModel) TableName() string {
	return "matrice_productivite"
}
