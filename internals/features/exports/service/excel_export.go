// Excel export: the filtered journal plus the grouped summaries the weekly
// report is built from.
package service

import (
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"

	arretModel "suiviarrets_backend/internals/features/arrets/model"
	arretService "suiviarrets_backend/internals/features/arrets/service"
)

const (
	SheetDonnees    = "Données Brutes"
	SheetParService = "Par Service"
	SheetParSite    = "Par Site"
)

var journalHeader = []interface{}{
	"ID", "Site", "Bâtiment", "Date", "Semaine", "Mois",
	"Heure début", "Heure fin", "Durée en :H", "Client", "Nbr d'équipe",
	"Impact Productivité par client", "Processus", "Poste/Machine",
	"Sous famille", "Service", "Description", "Référence", "Demandeur",
	"Équipe", "Traité par", "Statut",
}

// BuildWorkbook renders the journal and its per-service / per-site summary
// sheets into a new workbook.
func BuildWorkbook(arrets []arretModel.ArretModel) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetDonnees); err != nil {
		return nil, err
	}

	if err := f.SetSheetRow(SheetDonnees, "A1", &journalHeader); err != nil {
		return nil, err
	}
	for i, a := range arrets {
		row := []interface{}{
			a.ID, a.Site, deref(a.Batiment), a.Date, a.Semaine, a.Mois,
			a.HeureDebut, a.HeureFin, a.DureeHeures, a.Client, a.NbrEquipes,
			derefFloat(a.ImpactPct), deref(a.Processus), deref(a.PosteMachine),
			deref(a.SousFamille), a.Service, a.Description, deref(a.Reference),
			deref(a.Demandeur), deref(a.Equipe), deref(a.TraitePar), a.Statut,
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(SheetDonnees, cell, &row); err != nil {
			return nil, err
		}
	}

	if err := writeSummarySheet(f, SheetParService, arrets, func(a arretModel.ArretModel) string {
		return a.Service
	}); err != nil {
		return nil, err
	}
	if err := writeSummarySheet(f, SheetParSite, arrets, func(a arretModel.ArretModel) string {
		return a.Site
	}); err != nil {
		return nil, err
	}

	return f, nil
}

type summary struct {
	totalHeures float64
	totalImpact float64
	nombre      int
}

func writeSummarySheet(f *excelize.File, sheet string, arrets []arretModel.ArretModel, keyOf func(arretModel.ArretModel) string) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	groups := map[string]*summary{}
	for _, a := range arrets {
		key := keyOf(a)
		g, ok := groups[key]
		if !ok {
			g = &summary{}
			groups[key] = g
		}
		g.totalHeures += a.DureeHeures
		if a.ImpactPct != nil {
			g.totalImpact += *a.ImpactPct
		}
		g.nombre++
	}

	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	header := []interface{}{"", "Total Heures", "Moyenne Heures", "Nombre Arrêts", "Impact Total"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	for i, k := range keys {
		g := groups[k]
		moyenne := 0.0
		if g.nombre > 0 {
			moyenne = arretService.Round2(g.totalHeures / float64(g.nombre))
		}
		row := []interface{}{
			k,
			arretService.Round2(g.totalHeures),
			moyenne,
			g.nombre,
			arretService.Round2(g.totalImpact),
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefFloat(v *float64) interface{} {
	if v == nil {
		return ""
	}
	return *v
}
