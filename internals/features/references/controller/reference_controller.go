package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"suiviarrets_backend/internals/constants"
	arretService "suiviarrets_backend/internals/features/arrets/service"
	refModel "suiviarrets_backend/internals/features/references/model"
	helper "suiviarrets_backend/internals/helpers"
)

type ReferenceController struct {
	DB *gorm.DB
}

func NewReferenceController(db *gorm.DB) *ReferenceController {
	return &ReferenceController{DB: db}
}

// =======================
// ⚙️ Form configuration (closed value sets + period presets)
// =======================
func (ctrl *ReferenceController) GetConfig(c *fiber.Ctx) error {
	return helper.JsonOK(c, "", fiber.Map{
		"sites":               constants.Sites,
		"batiments_par_site":  constants.BatimentsParSite,
		"services":            constants.Services,
		"equipes":             constants.Equipes,
		"nbr_equipes_options": constants.NbrEquipesOptions,
		"processus":           constants.Processus,
		"statuts":             constants.Statuts,
		"formats": fiber.Map{
			"date":  constants.DateFormat,
			"heure": constants.TimeFormat,
		},
		"periodes": fiber.Map{
			"semaine_courante":   weekPreset(arretService.CurrentWeek()),
			"semaine_precedente": weekPreset(arretService.PreviousWeek()),
		},
	})
}

// weekPreset resolves a week label to its Monday..Sunday range for the
// dashboard period shortcuts.
func weekPreset(semaine string) fiber.Map {
	preset := fiber.Map{"semaine": semaine}
	if start, end, err := arretService.WeekBoundaries(semaine); err == nil {
		preset["du"] = start.Format(constants.DateFormat)
		preset["au"] = end.Format(constants.DateFormat)
	}
	return preset
}

// =======================
// 📄 Sites
// =======================
func (ctrl *ReferenceController) GetSites(c *fiber.Ctx) error {
	names, err := ctrl.activeNames("sites")
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve sites")
	}
	return helper.JsonOK(c, "", names)
}

// =======================
// 📄 Bâtiments (optionally scoped to a site)
// =======================
func (ctrl *ReferenceController) GetBatiments(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&refModel.BatimentModel{}).Where("actif = ?", true)
	if site := strings.TrimSpace(c.Query("site")); site != "" {
		q = q.Where("site = ?", site)
	}

	var names []string
	if err := q.Order("nom").Pluck("nom", &names).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve bâtiments")
	}
	return helper.JsonOK(c, "", names)
}

// =======================
// 📄 Services (reference table ∪ values observed in arrets)
// =======================
func (ctrl *ReferenceController) GetServices(c *fiber.Ctx) error {
	names, err := ctrl.mergedNames("services", "service")
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve services")
	}
	return helper.JsonOK(c, "", names)
}

// =======================
// 📄 Clients (reference table ∪ values observed in arrets)
// =======================
func (ctrl *ReferenceController) GetClients(c *fiber.Ctx) error {
	names, err := ctrl.mergedNames("clients", "client")
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve clients")
	}
	return helper.JsonOK(c, "", names)
}

// =======================
// ➕ Create client (idempotent on nom)
// =======================
func (ctrl *ReferenceController) CreateClient(c *fiber.Ctx) error {
	var body struct {
		Nom string `json:"nom"`
	}
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	nom := strings.TrimSpace(body.Nom)
	if nom == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Le nom du client est obligatoire.")
	}

	client := refModel.ClientModel{Nom: nom, Actif: true}
	if err := ctrl.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&client).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create client")
	}

	return helper.JsonCreated(c, "Client créé", fiber.Map{"nom": nom})
}

// activeNames lists the active noms of one reference table.
func (ctrl *ReferenceController) activeNames(table string) ([]string, error) {
	var names []string
	err := ctrl.DB.Table(table).
		Where("actif = ?", true).
		Order("nom").
		Pluck("nom", &names).Error
	return names, err
}

// mergedNames returns the reference table first, then any distinct value
// observed in arrets that the table does not carry. The two sources may
// diverge; neither is dropped.
func (ctrl *ReferenceController) mergedNames(table, arretColumn string) ([]string, error) {
	names, err := ctrl.activeNames(table)
	if err != nil {
		return nil, err
	}

	var observed []string
	err = ctrl.DB.Table("arrets").
		Distinct(arretColumn).
		Where(arretColumn+" IS NOT NULL AND "+arretColumn+" != ''").
		Order(arretColumn).
		Pluck(arretColumn, &observed).Error
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(names))
	for _, n := range names {
		seen[n] = true
	}
	for _, n := range observed {
		if !seen[n] {
			names = append(names, n)
			seen[n] = true
		}
	}
	return names, nil
}
