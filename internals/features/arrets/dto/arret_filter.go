package dto

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ArretFilter is the one filter specification shared by the list, count and
// stats paths, so the three queries can never drift apart. All filters are
// conjunctive.
type ArretFilter struct {
	Site     string `json:"site"`
	Client   string `json:"client"`
	Service  string `json:"service"`
	Statut   string `json:"statut"`
	Semaine  string `json:"semaine"`
	DateFrom string `json:"date_from"` // YYYY-MM-DD, inclusive
	DateTo   string `json:"date_to"`   // YYYY-MM-DD, inclusive
	Search   string `json:"search"`    // substring over description|reference|poste_machine
}

func FilterFromQuery(c *fiber.Ctx) ArretFilter {
	return ArretFilter{
		Site:     strings.TrimSpace(c.Query("site")),
		Client:   strings.TrimSpace(c.Query("client")),
		Service:  strings.TrimSpace(c.Query("service")),
		Statut:   strings.TrimSpace(c.Query("statut")),
		Semaine:  strings.TrimSpace(c.Query("semaine")),
		DateFrom: strings.TrimSpace(c.Query("date_from")),
		DateTo:   strings.TrimSpace(c.Query("date_to")),
		Search:   strings.TrimSpace(c.Query("search")),
	}
}

func (f ArretFilter) Apply(q *gorm.DB) *gorm.DB {
	if f.Site != "" {
		q = q.Where("site = ?", f.Site)
	}
	if f.Client != "" {
		q = q.Where("client = ?", f.Client)
	}
	if f.Service != "" {
		q = q.Where("service = ?", f.Service)
	}
	if f.Statut != "" {
		q = q.Where("statut = ?", f.Statut)
	}
	if f.Semaine != "" {
		q = q.Where("semaine = ?", f.Semaine)
	}
	if f.DateFrom != "" {
		q = q.Where("date >= ?", f.DateFrom)
	}
	if f.DateTo != "" {
		q = q.Where("date <= ?", f.DateTo)
	}
	if f.Search != "" {
		term := "%" + f.Search + "%"
		q = q.Where("(description LIKE ? OR reference LIKE ? OR poste_machine LIKE ?)", term, term, term)
	}
	return q
}
