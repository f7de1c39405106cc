package controller

import (
	"errors"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"suiviarrets_backend/internals/features/arrets/dto"
	"suiviarrets_backend/internals/features/arrets/model"
	"suiviarrets_backend/internals/features/arrets/service"
	matriceService "suiviarrets_backend/internals/features/matrice/service"
	helper "suiviarrets_backend/internals/helpers"
)

var validateArret = validator.New()

type ArretController struct {
	DB      *gorm.DB
	Matrice *matriceService.MatriceService
}

func NewArretController(db *gorm.DB) *ArretController {
	return &ArretController{
		DB:      db,
		Matrice: matriceService.NewMatriceService(db),
	}
}

// =======================
// ➕ Create Arrêt
// =======================
func (ctrl *ArretController) CreateArret(c *fiber.Ctx) error {
	var body dto.ArretRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateArret.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if errs := service.ValidateArret(body, time.Now()); len(errs) > 0 {
		return helper.JsonValidationError(c, errs)
	}

	nbrEquipes := 1
	if body.NbrEquipes != nil {
		nbrEquipes = *body.NbrEquipes
	}
	facteur, err := ctrl.Matrice.GetFacteur(body.Site, body.Client, nbrEquipes)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to look up productivity factor")
	}

	arret, err := service.BuildArret(body, facteur)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctrl.DB.Create(&arret).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create arrêt")
	}

	return helper.JsonCreated(c, "Arrêt enregistré", dto.ToArretDTO(arret))
}

// =======================
// 📄 Journal (filtered list, paginated)
// Query: site, client, service, statut, semaine, date_from, date_to, search,
//        page, per_page
// =======================
func (ctrl *ArretController) GetAllArrets(c *fiber.Ctx) error {
	filter := dto.FilterFromQuery(c)
	paging := helper.ParseFiber(c, helper.DefaultOpts)

	var total int64
	if err := filter.Apply(ctrl.DB.Model(&model.ArretModel{})).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count arrêts")
	}

	var arrets []model.ArretModel
	if err := filter.Apply(ctrl.DB.Model(&model.ArretModel{})).
		Order("date DESC, heure_debut DESC").
		Limit(paging.Limit()).
		Offset(paging.Offset()).
		Find(&arrets).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve arrêts")
	}

	resp := make([]dto.ArretDTO, 0, len(arrets))
	for _, a := range arrets {
		resp = append(resp, dto.ToArretDTO(a))
	}

	return helper.JsonList(c, "", resp, helper.BuildMeta(total, paging))
}

// =======================
// 📊 Stats (same filter semantics as the journal)
// =======================
func (ctrl *ArretController) GetStats(c *fiber.Ctx) error {
	filter := dto.FilterFromQuery(c)

	var stats dto.StatsDTO
	if err := filter.Apply(ctrl.DB.Model(&model.ArretModel{})).
		Select(`COUNT(*) AS total_arrets,
			COALESCE(SUM(duree_heures), 0) AS total_heures,
			COALESCE(AVG(duree_heures), 0) AS moyenne_heures,
			COALESCE(SUM(impact_pct), 0) AS total_impact`).
		Scan(&stats).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to compute stats")
	}

	return helper.JsonOK(c, "", stats)
}

// =======================
// 🔍 Get Arrêt by ID
// =======================
func (ctrl *ArretController) GetArretByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id < 1 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var arret model.ArretModel
	if err := ctrl.DB.First(&arret, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Arrêt introuvable")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch arrêt")
	}

	return helper.JsonOK(c, "", dto.ToArretDTO(arret))
}

// =======================
// ✏️ Update Arrêt (re-validates, re-derives every computed field)
// =======================
func (ctrl *ArretController) UpdateArret(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id < 1 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var existing model.ArretModel
	if err := ctrl.DB.First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Arrêt introuvable")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch arrêt")
	}

	var body dto.ArretRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateArret.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if errs := service.ValidateArret(body, time.Now()); len(errs) > 0 {
		return helper.JsonValidationError(c, errs)
	}

	nbrEquipes := 1
	if body.NbrEquipes != nil {
		nbrEquipes = *body.NbrEquipes
	}
	facteur, err := ctrl.Matrice.GetFacteur(body.Site, body.Client, nbrEquipes)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to look up productivity factor")
	}

	updated, err := service.BuildArret(body, facteur)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt

	if err := ctrl.DB.Save(&updated).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update arrêt")
	}

	return helper.JsonUpdated(c, "Arrêt mis à jour", dto.ToArretDTO(updated))
}

// =======================
// 🗑️ Delete Arrêt (hard delete)
// =======================
func (ctrl *ArretController) DeleteArret(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id < 1 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	res := ctrl.DB.Delete(&model.ArretModel{}, id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete arrêt")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Arrêt introuvable")
	}

	return helper.JsonDeleted(c, "Arrêt supprimé", fiber.Map{"id": id})
}
