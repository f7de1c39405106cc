package controller

import (
	"bytes"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	arretDTO "suiviarrets_backend/internals/features/arrets/dto"
	arretModel "suiviarrets_backend/internals/features/arrets/model"
	"suiviarrets_backend/internals/features/exports/service"
	helper "suiviarrets_backend/internals/helpers"
)

type ExportController struct {
	DB     *gorm.DB
	Import *service.ImportService
}

func NewExportController(db *gorm.DB) *ExportController {
	return &ExportController{
		DB:     db,
		Import: service.NewImportService(db),
	}
}

// =======================
// 📊 Excel export (journal + summaries), same filters as the journal
// =======================
func (ctrl *ExportController) ExportExcel(c *fiber.Ctx) error {
	arrets, err := ctrl.filteredArrets(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve arrêts")
	}

	wb, err := service.BuildWorkbook(arrets)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to build workbook")
	}

	var buf bytes.Buffer
	if err := wb.Write(&buf); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to write workbook")
	}

	filename := fmt.Sprintf("rapport_arrets_%s.xlsx", time.Now().Format("20060102"))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(buf.Bytes())
}

// =======================
// 📄 CSV export (flat journal)
// =======================
func (ctrl *ExportController) ExportCSV(c *fiber.Ctx) error {
	arrets, err := ctrl.filteredArrets(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve arrêts")
	}

	var buf bytes.Buffer
	if err := service.WriteCSV(&buf, arrets); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to write CSV")
	}

	filename := fmt.Sprintf("arrets_%s.csv", time.Now().Format("20060102"))
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(buf.Bytes())
}

// =======================
// 📥 Excel import (multipart field "file")
// =======================
func (ctrl *ExportController) ImportExcel(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Le fichier Excel est obligatoire (champ 'file').")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Fichier illisible")
	}
	defer file.Close()

	report, err := ctrl.Import.ImportWorkbook(file)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	return helper.JsonOK(c, "Import terminé", report)
}

func (ctrl *ExportController) filteredArrets(c *fiber.Ctx) ([]arretModel.ArretModel, error) {
	filter := arretDTO.FilterFromQuery(c)

	var arrets []arretModel.ArretModel
	err := filter.Apply(ctrl.DB.Model(&arretModel.ArretModel{})).
		Order("date DESC, heure_debut DESC").
		Find(&arrets).Error
	return arrets, err
}
