package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	subjectDTO "pyqbank_backend/internals/features/subjects/dto"
	"pyqbank_backend/internals/features/subjects/model"
	helper "pyqbank_backend/internals/helpers"
)

type SubjectController struct {
	DB *gorm.DB
}

func NewSubjectController(db *gorm.DB) *SubjectController {
	return &SubjectController{DB: db}
}

// GET /api/subjects
// Full catalogue, sorted so a UI can render it grouped without resorting.
func (sc *SubjectController) GetSubjects(c *fiber.Ctx) error {
	var subjects []model.SubjectModel
	err := sc.DB.Order("year ASC, semester ASC, name ASC").Find(&subjects).Error
	if err != nil {
		log.Printf("[ERROR] list subjects: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to get subjects")
	}
	return helper.JsonOK(c, "Subjects fetched successfully", subjects)
}

// GET /api/subjects/filter?year=..&semester=..
// Both parameters are mandatory; this backs the cascading dropdowns on the
// upload form.
func (sc *SubjectController) FilterSubjects(c *fiber.Ctx) error {
	year := strings.TrimSpace(c.Query("year"))
	semester := strings.TrimSpace(c.Query("semester"))
	if year == "" || semester == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Both year and semester are required")
	}

	var subjects []model.SubjectModel
	err := sc.DB.Where("year = ? AND semester = ?", year, semester).
		Order("name ASC").
		Find(&subjects).Error
	if err != nil {
		log.Printf("[ERROR] filter subjects: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to get subjects")
	}
	return helper.JsonOK(c, "Subjects fetched successfully", subjects)
}

// GET /api/subjects/:id
func (sc *SubjectController) GetSubject(c *fiber.Ctx) error {
	var subject model.SubjectModel
	if err := sc.DB.First(&subject, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Subject not found")
		}
		log.Printf("[ERROR] get subject: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to get subject")
	}
	return helper.JsonOK(c, "Subject fetched successfully", subject)
}

// POST /api/subjects (admin only)
func (sc *SubjectController) CreateSubject(c *fiber.Ctx) error {
	var input subjectDTO.CreateSubjectRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := input.Validate(); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	subject := model.SubjectModel{
		Name:     strings.TrimSpace(input.Name),
		Year:     input.Year,
		Semester: input.Semester,
	}
	if err := sc.DB.Create(&subject).Error; err != nil {
		if helper.IsDuplicateKeyErr(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Subject already exists for this year and semester")
		}
		log.Printf("[ERROR] create subject: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create subject")
	}
	return helper.JsonCreated(c, "Subject created successfully", subject)
}

// DELETE /api/subjects/:id (admin only)
// Papers referencing the subject keep their denormalized subject name.
func (sc *SubjectController) DeleteSubject(c *fiber.Ctx) error {
	var subject model.SubjectModel
	if err := sc.DB.First(&subject, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Subject not found")
		}
		log.Printf("[ERROR] get subject: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete subject")
	}
	if err := sc.DB.Delete(&subject).Error; err != nil {
		log.Printf("[ERROR] delete subject: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete subject")
	}
	return helper.JsonDeleted(c, "Subject deleted successfully", nil)
}
