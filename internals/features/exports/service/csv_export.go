package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	arretModel "suiviarrets_backend/internals/features/arrets/model"
)

// WriteCSV streams the filtered journal as a flat CSV, same columns as the
// "Données Brutes" sheet.
func WriteCSV(w io.Writer, arrets []arretModel.ArretModel) error {
	cw := csv.NewWriter(w)

	header := make([]string, len(journalHeader))
	for i, h := range journalHeader {
		header[i] = h.(string)
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, a := range arrets {
		impact := ""
		if a.ImpactPct != nil {
			impact = strconv.FormatFloat(*a.ImpactPct, 'f', -1, 64)
		}
		record := []string{
			strconv.FormatUint(uint64(a.ID), 10),
			a.Site,
			deref(a.Batiment),
			a.Date,
			a.Semaine,
			a.Mois,
			a.HeureDebut,
			a.HeureFin,
			fmt.Sprintf("%.2f", a.DureeHeures),
			a.Client,
			strconv.Itoa(a.NbrEquipes),
			impact,
			deref(a.Processus),
			deref(a.PosteMachine),
			deref(a.SousFamille),
			a.Service,
			a.Description,
			deref(a.Reference),
			deref(a.Demandeur),
			deref(a.Equipe),
			deref(a.TraitePar),
			a.Statut,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
