package model

import "time"

// Reference tables are distinct-name lists with an active flag. The text
// columns in arrets are not FK-constrained against them; list endpoints merge
// both sources.

type SiteModel struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Nom       string    `gorm:"column:nom;type:text;not null;uniqueIndex" json:"nom"`
	Actif     bool      `gorm:"column:actif;not null;default:true" json:"actif"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (SiteModel) TableName() string { return "sites" }

type BatimentModel struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Nom       string    `gorm:"column:nom;type:text;not null;uniqueIndex:uq_batiment_site" json:"nom"`
	Site      string    `gorm:"column:site;type:text;not null;uniqueIndex:uq_batiment_site" json:"site"`
	Actif     bool      `gorm:"column:actif;not null;default:true" json:"actif"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (BatimentModel) TableName() string { return "batiments" }

type ClientModel struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Nom       string    `gorm:"column:nom;type:text;not null;uniqueIndex" json:"nom"`
	Actif     bool      `gorm:"column:actif;not null;default:true" json:"actif"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (ClientModel) TableName() string { return "clients" }

type ServiceModel struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Nom       string    `gorm:"column:nom;type:text;not null;uniqueIndex" json:"nom"`
	Actif     bool      `gorm:"column:actif;not null;default:true" json:"actif"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (ServiceModel) TableName() string { return "services" }
