// Excel bulk import: one workbook with the productivity matrix sheet and the
// legacy journal sheet. Best-effort per row; rows missing the minimum fields
// are skipped and reported, never fatal to the batch.
package service

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"suiviarrets_backend/internals/constants"
	arretModel "suiviarrets_backend/internals/features/arrets/model"
	arretService "suiviarrets_backend/internals/features/arrets/service"
	matriceModel "suiviarrets_backend/internals/features/matrice/model"
	refModel "suiviarrets_backend/internals/features/references/model"
	helper "suiviarrets_backend/internals/helpers"
)

const (
	sheetMatrice = "Matrice Productivité"
	sheetJournal = "Journal de Bord des Arrêts"
)

type ImportService struct {
	DB *gorm.DB
}

func NewImportService(db *gorm.DB) *ImportService {
	return &ImportService{DB: db}
}

type ImportReport struct {
	BatchID          string   `json:"batch_id"`
	MatriceImportees int      `json:"matrice_importees"`
	ArretsImportes   int      `json:"arrets_importes"`
	LignesIgnorees   int      `json:"lignes_ignorees"`
	Erreurs          []string `json:"erreurs"`
}

// ImportWorkbook reads both logical sheets and loads them in one
// transaction. Matrix rows upsert on (site, client, nbr_equipes); journal
// rows insert with derived fields filled from the cells when present,
// computed otherwise.
func (s *ImportService) ImportWorkbook(r io.Reader) (ImportReport, error) {
	report := ImportReport{BatchID: uuid.NewString(), Erreurs: []string{}}

	f, err := excelize.OpenReader(r)
	if err != nil {
		return report, fmt.Errorf("classeur illisible: %w", err)
	}
	defer f.Close()

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if sheet := findSheet(f, sheetMatrice); sheet != "" {
			if err := importMatrice(tx, f, sheet, &report); err != nil {
				return err
			}
		}
		if sheet := findSheet(f, sheetJournal); sheet != "" {
			if err := importJournal(tx, f, sheet, &report); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return report, err
	}
	return report, nil
}

func importMatrice(tx *gorm.DB, f *excelize.File, sheet string, report *ImportReport) error {
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) < 2 {
		return err
	}
	cols := headerIndex(rows[0])

	for i, row := range rows[1:] {
		rowNum := i + 2

		site := strings.TrimSpace(cols.cell(row, "site"))
		client := strings.TrimSpace(cols.cell(row, "client"))
		nbrEquipes, errN := strconv.Atoi(strings.TrimSpace(cols.cell(row, "nbr d'équipe")))
		facteur, errF := strconv.ParseFloat(strings.TrimSpace(cols.cell(row, "temps d'arrêt")), 64)

		if site == "" || client == "" || errN != nil || errF != nil || facteur <= 0 {
			report.LignesIgnorees++
			report.Erreurs = append(report.Erreurs,
				fmt.Sprintf("%s ligne %d: combinaison ou facteur manquant", sheet, rowNum))
			continue
		}

		entry := matriceModel.MatriceModel{
			Site:       normalizeSite(site),
			Client:     client,
			NbrEquipes: nbrEquipes,
			Facteur:    facteur,
			Actif:      true,
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "site"}, {Name: "client"}, {Name: "nbr_equipes"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"facteur": facteur, "actif": true}),
		}).Create(&entry).Error; err != nil {
			return err
		}
		report.MatriceImportees++
	}
	return nil
}

func importJournal(tx *gorm.DB, f *excelize.File, sheet string, report *ImportReport) error {
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) < 2 {
		return err
	}
	cols := headerIndex(rows[0])

	// Impact lookups run against the matrix state inside this transaction,
	// after the matrix sheet has been applied.
	var entries []matriceModel.MatriceModel
	if err := tx.Where("actif = ?", true).Find(&entries).Error; err != nil {
		return err
	}
	facteurs := make(map[string]float64, len(entries))
	for _, e := range entries {
		facteurs[fmt.Sprintf("%s|%s|%d", e.Site, e.Client, e.NbrEquipes)] = e.Facteur
	}

	for i, row := range rows[1:] {
		rowNum := i + 2

		site := normalizeSite(strings.TrimSpace(cols.cell(row, "site")))
		client := strings.TrimSpace(cols.cell(row, "client"))

		d, errD := helper.ParseDate(cols.cell(row, "date"))
		debut, errHD := helper.ParseClock(cols.cell(row, "heure début"))
		fin, errHF := helper.ParseClock(cols.cell(row, "heure fin"))

		if site == "" || errD != nil || errHD != nil || errHF != nil {
			report.LignesIgnorees++
			report.Erreurs = append(report.Erreurs,
				fmt.Sprintf("%s ligne %d: site, date ou heures manquants", sheet, rowNum))
			continue
		}

		nbrEquipes := 1
		if n, err := strconv.Atoi(strings.TrimSpace(cols.cell(row, "nbr d'équipe"))); err == nil && n > 0 {
			nbrEquipes = n
		}

		duree, err := strconv.ParseFloat(strings.TrimSpace(cols.cell(row, "durée en :h")), 64)
		if err != nil {
			duree = arretService.CalculateDuration(debut, fin)
		}

		semaine := strings.TrimSpace(cols.cell(row, "semaine"))
		if semaine == "" {
			semaine = arretService.ISOWeekString(d)
		}
		mois := strings.TrimSpace(cols.cell(row, "mois"))
		if mois == "" {
			mois = arretService.MonthString(d)
		}

		var impact *float64
		if v, err := strconv.ParseFloat(strings.TrimSpace(cols.cell(row, "impact productivité par client")), 64); err == nil {
			impact = &v
		} else {
			var facteur *float64
			if fv, ok := facteurs[fmt.Sprintf("%s|%s|%d", site, client, nbrEquipes)]; ok {
				facteur = &fv
			}
			impact = arretService.CalculateImpact(duree, facteur)
		}

		arret := arretModel.ArretModel{
			Site:         site,
			Batiment:     helper.CleanString(cols.cell(row, "bâtiment")),
			Date:         d.Format(constants.DateFormat),
			Semaine:      semaine,
			Mois:         mois,
			Annee:        d.Year(),
			HeureDebut:   helper.FormatClock(debut),
			HeureFin:     helper.FormatClock(fin),
			DureeHeures:  duree,
			Client:       client,
			NbrEquipes:   nbrEquipes,
			ImpactPct:    impact,
			Processus:    helper.CleanString(cols.cell(row, "processus")),
			PosteMachine: helper.CleanString(cols.cell(row, "poste/machine")),
			SousFamille:  helper.CleanString(cols.cell(row, "sous famille")),
			Service:      strings.TrimSpace(cols.cell(row, "service")),
			Description:  strings.TrimSpace(cols.cell(row, "description")),
			Reference:    helper.CleanString(cols.cell(row, "référence")),
			Demandeur:    helper.CleanString(cols.cell(row, "demandeur")),
			Equipe:       helper.CleanString(cols.cell(row, "équipe")),
			TraitePar:    helper.CleanString(cols.cell(row, "traité par")),
			// Historical journal rows are assumed resolved.
			Statut: constants.StatutResolu,
		}
		if err := tx.Create(&arret).Error; err != nil {
			return err
		}
		report.ArretsImportes++

		if client != "" {
			ref := refModel.ClientModel{Nom: client, Actif: true}
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&ref).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

// findSheet tolerates the stray spaces legacy workbooks carry in sheet names.
func findSheet(f *excelize.File, want string) string {
	for _, name := range f.GetSheetList() {
		if strings.EqualFold(strings.TrimSpace(name), want) {
			return name
		}
	}
	return ""
}

type headerMap map[string]int

// headerIndex maps lowercased, trimmed header names to column positions.
// Legacy column headers carry trailing spaces ("Site ", "Demandeur ").
func headerIndex(header []string) headerMap {
	cols := make(headerMap, len(header))
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(h))
		if key != "" {
			cols[key] = i
		}
	}
	return cols
}

// cell returns "" when the column is absent from the sheet or the row is
// short, so a missing header never reads a neighbouring column.
func (h headerMap) cell(row []string, name string) string {
	idx, ok := h[name]
	if !ok || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// normalizeSite maps case variants ("BERRECHID") onto the configured enum.
func normalizeSite(site string) string {
	for _, s := range constants.Sites {
		if strings.EqualFold(s, site) {
			return s
		}
	}
	return site
}
