package controller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"suiviarrets_backend/internals/features/matrice/dto"
	"suiviarrets_backend/internals/features/matrice/model"
	"suiviarrets_backend/internals/features/matrice/service"
	helper "suiviarrets_backend/internals/helpers"
)

var validateMatrice = validator.New()

type MatriceController struct {
	DB      *gorm.DB
	Service *service.MatriceService
}

func NewMatriceController(db *gorm.DB) *MatriceController {
	return &MatriceController{
		DB:      db,
		Service: service.NewMatriceService(db),
	}
}

// =======================
// 📄 List matrix entries
// Query: ?all=1 to include inactive entries
// =======================
func (ctrl *MatriceController) GetAllEntries(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&model.MatriceModel{})
	if c.Query("all") != "1" {
		q = q.Where("actif = ?", true)
	}

	var entries []model.MatriceModel
	if err := q.Order("site, client, nbr_equipes").Find(&entries).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve matrix")
	}

	resp := make([]dto.MatriceDTO, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, dto.ToMatriceDTO(e))
	}

	return helper.JsonList(c, "", resp, nil)
}

// =======================
// 🔍 Factor lookup
// Query: site, client, nbr_equipes
// =======================
func (ctrl *MatriceController) GetFacteur(c *fiber.Ctx) error {
	site := strings.TrimSpace(c.Query("site"))
	client := strings.TrimSpace(c.Query("client"))
	nbrEquipes, err := strconv.Atoi(c.Query("nbr_equipes"))
	if site == "" || client == "" || err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "site, client and nbr_equipes are required")
	}

	facteur, err := ctrl.Service.GetFacteur(site, client, nbrEquipes)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to look up factor")
	}

	// facteur stays null when the combination has no active entry
	return helper.JsonOK(c, "", fiber.Map{
		"site":        site,
		"client":      client,
		"nbr_equipes": nbrEquipes,
		"facteur":     facteur,
	})
}

// =======================
// ➕ Create matrix entry
// =======================
func (ctrl *MatriceController) CreateEntry(c *fiber.Ctx) error {
	var body dto.MatriceRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateMatrice.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if errs := service.ValidateMatrice(body); len(errs) > 0 {
		return helper.JsonValidationError(c, errs)
	}

	entry := model.MatriceModel{
		Site:       body.Site,
		Client:     body.Client,
		NbrEquipes: body.NbrEquipes,
		Facteur:    body.Facteur,
		Actif:      true,
	}

	if err := ctrl.DB.Create(&entry).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict,
				"Cette combinaison (site, client, nombre d'équipes) existe déjà.")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create matrix entry")
	}

	return helper.JsonCreated(c, "Entrée matrice créée", dto.ToMatriceDTO(entry))
}

// =======================
// ✏️ Update matrix entry
// =======================
func (ctrl *MatriceController) UpdateEntry(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id < 1 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var body dto.MatriceRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := service.ValidateMatrice(body); len(errs) > 0 {
		return helper.JsonValidationError(c, errs)
	}

	var entry model.MatriceModel
	if err := ctrl.DB.First(&entry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Entrée introuvable")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch matrix entry")
	}

	entry.Site = body.Site
	entry.Client = body.Client
	entry.NbrEquipes = body.NbrEquipes
	entry.Facteur = body.Facteur

	if err := ctrl.DB.Save(&entry).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict,
				"Cette combinaison (site, client, nombre d'équipes) existe déjà.")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update matrix entry")
	}

	return helper.JsonUpdated(c, "Entrée matrice mise à jour", dto.ToMatriceDTO(entry))
}

// =======================
// 🗑️ Delete matrix entry (soft: actif=false)
// =======================
func (ctrl *MatriceController) DeleteEntry(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id < 1 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	res := ctrl.DB.Model(&model.MatriceModel{}).
		Where("id = ?", id).
		Update("actif", false)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete matrix entry")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Entrée introuvable")
	}

	return helper.JsonDeleted(c, "Entrée matrice désactivée", fiber.Map{"id": id})
}

// =======================
// 🔄 Recalculate every impact snapshot against the current matrix
// =======================
func (ctrl *MatriceController) RecalculateImpacts(c *fiber.Ctx) error {
	report, err := ctrl.Service.RecalculateAllImpacts()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to recalculate impacts")
	}

	return helper.JsonOK(c, "Tous les impacts ont été recalculés", report)
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
