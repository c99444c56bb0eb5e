package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	paperDTO "pyqbank_backend/internals/features/papers/dto"
	"pyqbank_backend/internals/features/papers/model"
	paperService "pyqbank_backend/internals/features/papers/service"
	userModel "pyqbank_backend/internals/features/users/user/model"
	helper "pyqbank_backend/internals/helpers"
	ossHelper "pyqbank_backend/internals/helpers/oss"
	authMw "pyqbank_backend/internals/middlewares/auth"
)

type PaperController struct {
	DB  *gorm.DB
	OSS *ossHelper.OSSService
}

func NewPaperController(db *gorm.DB, oss *ossHelper.OSSService) *PaperController {
	return &PaperController{DB: db, OSS: oss}
}

/* ==========================
   LIST
========================== */

// GET /api/papers
// Filters: department (alias batch), year, semester, examType, subject,
// search, approved (admin only), page, limit. The visibility predicate is
// part of the WHERE clause, so totals and page boundaries match what the
// caller is allowed to see.
func (pc *PaperController) GetPapers(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 100)

	tx := pc.DB.Model(&model.PaperModel{})

	dept := strings.TrimSpace(c.Query("department"))
	if dept == "" {
		dept = strings.TrimSpace(c.Query("batch"))
	}
	if dept != "" {
		tx = tx.Where("department = ?", dept)
	}
	if v := strings.TrimSpace(c.Query("year")); v != "" {
		tx = tx.Where("year = ?", v)
	}
	if v := strings.TrimSpace(c.Query("semester")); v != "" {
		tx = tx.Where("semester = ?", v)
	}
	if v := strings.TrimSpace(c.Query("examType")); v != "" {
		tx = tx.Where("exam_type = ?", v)
	}
	if v := strings.TrimSpace(c.Query("subject")); v != "" {
		tx = tx.Where("subject = ?", v)
	}
	if v := strings.TrimSpace(c.Query("search")); v != "" {
		like := "%" + v + "%"
		tx = tx.Where("title ILIKE ? OR subject ILIKE ? OR array_to_string(tags, ' ') ILIKE ?", like, like, like)
	}

	// Visibility before pagination.
	callerID := authMw.GetUserID(c)
	if authMw.IsAdmin(c) {
		if v := strings.TrimSpace(c.Query("approved")); v != "" {
			tx = tx.Where("approved = ?", strings.EqualFold(v, "true"))
		}
	} else if callerID != uuid.Nil {
		tx = tx.Where("approved = TRUE OR uploader_id = ?", callerID)
	} else {
		tx = tx.Where("approved = TRUE")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		log.Printf("[ERROR] count papers: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to get papers")
	}

	var papers []model.PaperModel
	err := tx.Order("created_at DESC").Offset(paging.Offset).Limit(paging.Limit).Find(&papers).Error
	if err != nil {
		log.Printf("[ERROR] list papers: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to get papers")
	}

	uploaders := pc.loadUploaders(papers)
	resp := make([]paperDTO.PaperResponse, 0, len(papers))
	for i := range papers {
		resp = append(resp, paperDTO.FromModel(&papers[i], uploaders[papers[i].UploaderID]))
	}

	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Papers fetched successfully", resp, &pagination)
}

/* ==========================
   DETAIL (+ view counter)
========================== */

// GET /api/papers/:id
// Counts a view only after the visibility check passes. The plain increment
// can lose an update under races; views are an approximate metric.
func (pc *PaperController) GetPaper(c *fiber.Ctx) error {
	paper, err := pc.findPaper(c)
	if err != nil {
		return pc.paperLookupError(c, err)
	}

	if !paper.VisibleTo(authMw.GetUserID(c), authMw.GetUserRole(c)) {
		return helper.JsonError(c, fiber.StatusForbidden, "Not authorized to access this paper")
	}

	if err := pc.DB.Model(paper).UpdateColumn("views", gorm.Expr("views + 1")).Error; err != nil {
		log.Printf("[ERROR] increment views: %v", err)
	} else {
		paper.Views++
	}

	return helper.JsonOK(c, "Paper fetched successfully", paperDTO.FromModel(paper, pc.loadUploader(paper.UploaderID)))
}

/* ==========================
   CREATE
========================== */

// POST /api/papers
// Multipart with a required PDF under "file". Admin uploads go live at once;
// everyone else's sit pending until an admin approves them.
func (pc *PaperController) CreatePaper(c *fiber.Ctx) error {
	var input paperDTO.CreatePaperRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := input.Validate(); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Please upload a PDF file")
	}

	if pc.OSS == nil {
		return helper.JsonError(c, fiber.StatusBadGateway, "Object storage is not configured")
	}
	fileURL, fileKey, err := pc.OSS.UploadPaperPDF(fh)
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		log.Printf("[ERROR] paper upload: %v", err)
		return helper.JsonError(c, fiber.StatusBadGateway, "Failed to store the uploaded file")
	}

	paper := model.PaperModel{
		Title:      strings.TrimSpace(input.Title),
		Subject:    strings.TrimSpace(input.Subject),
		Department: strings.TrimSpace(input.Department),
		Year:       input.Year,
		Semester:   input.Semester,
		ExamType:   input.ExamType,
		Tags:       paperDTO.ParseTags(input.Tags),
		Comment:    input.Comment,
		FileURL:    fileURL,
		FileKey:    fileKey,
		UploaderID: authMw.GetUserID(c),
		Approved:   authMw.IsAdmin(c),
	}
	if err := pc.DB.Create(&paper).Error; err != nil {
		log.Printf("[ERROR] create paper: %v", err)
		pc.OSS.DeleteBestEffort(fileKey)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create paper")
	}

	if err := paperService.EnsureSubject(pc.DB, paper.Subject, paper.Year, paper.Semester); err != nil {
		log.Printf("[WARN] ensure subject: %v", err)
	}

	return helper.JsonCreated(c, "Paper uploaded successfully", paperDTO.FromModel(&paper, pc.loadUploader(paper.UploaderID)))
}

/* ==========================
   UPDATE
========================== */

// PUT /api/papers/:id
// Owner or admin. Only admins may flip the approval flag. When a new file
// comes along, the new reference is written first and the old blob is
// removed best-effort afterwards.
func (pc *PaperController) UpdatePaper(c *fiber.Ctx) error {
	paper, err := pc.findPaper(c)
	if err != nil {
		return pc.paperLookupError(c, err)
	}

	callerID := authMw.GetUserID(c)
	isAdmin := authMw.IsAdmin(c)
	if !paper.CanModify(callerID, authMw.GetUserRole(c)) {
		return helper.JsonError(c, fiber.StatusForbidden, "Not authorized to update this paper")
	}

	var input paperDTO.UpdatePaperRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := input.Validate(); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	if input.Title != nil {
		paper.Title = strings.TrimSpace(*input.Title)
	}
	if input.Subject != nil {
		paper.Subject = strings.TrimSpace(*input.Subject)
	}
	if input.Department != nil {
		paper.Department = strings.TrimSpace(*input.Department)
	}
	if input.Year != nil {
		paper.Year = *input.Year
	}
	if input.Semester != nil {
		paper.Semester = *input.Semester
	}
	if input.ExamType != nil {
		paper.ExamType = *input.ExamType
	}
	if input.Tags != nil {
		paper.Tags = paperDTO.ParseTags(*input.Tags)
	}
	if input.Comment != nil {
		paper.Comment = *input.Comment
	}
	if input.Approved != nil && isAdmin {
		paper.Approved = *input.Approved
	}

	// Optional file replacement.
	oldKey := ""
	if fh, ferr := c.FormFile("file"); ferr == nil && fh != nil {
		if pc.OSS == nil {
			return helper.JsonError(c, fiber.StatusBadGateway, "Object storage is not configured")
		}
		fileURL, fileKey, uerr := pc.OSS.UploadPaperPDF(fh)
		if uerr != nil {
			if fe, ok := uerr.(*fiber.Error); ok {
				return helper.JsonError(c, fe.Code, fe.Message)
			}
			log.Printf("[ERROR] paper file replace: %v", uerr)
			return helper.JsonError(c, fiber.StatusBadGateway, "Failed to store the uploaded file")
		}
		oldKey = paper.FileKey
		paper.FileURL = fileURL
		paper.FileKey = fileKey
	}

	if err := pc.DB.Save(paper).Error; err != nil {
		log.Printf("[ERROR] update paper: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update paper")
	}

	// The new reference is durable; losing the old blob is now harmless.
	if oldKey != "" && pc.OSS != nil {
		pc.OSS.DeleteBestEffort(oldKey)
	}

	if err := paperService.EnsureSubject(pc.DB, paper.Subject, paper.Year, paper.Semester); err != nil {
		log.Printf("[WARN] ensure subject: %v", err)
	}

	return helper.JsonUpdated(c, "Paper updated successfully", paperDTO.FromModel(paper, pc.loadUploader(paper.UploaderID)))
}

/* ==========================
   DELETE
========================== */

// DELETE /api/papers/:id
func (pc *PaperController) DeletePaper(c *fiber.Ctx) error {
	paper, err := pc.findPaper(c)
	if err != nil {
		return pc.paperLookupError(c, err)
	}

	if !paper.CanModify(authMw.GetUserID(c), authMw.GetUserRole(c)) {
		return helper.JsonError(c, fiber.StatusForbidden, "Not authorized to delete this paper")
	}

	if err := pc.DB.Delete(paper).Error; err != nil {
		log.Printf("[ERROR] delete paper: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete paper")
	}

	if pc.OSS != nil {
		pc.OSS.DeleteBestEffort(paper.FileKey)
	}

	return helper.JsonDeleted(c, "Paper deleted successfully", nil)
}

/* ==========================
   DOWNLOAD COUNTER
========================== */

// PUT /api/papers/:id/download
// Public so approved papers download anonymously, but the visibility check
// still keeps pending papers from bumping the counter.
func (pc *PaperController) IncrementDownload(c *fiber.Ctx) error {
	paper, err := pc.findPaper(c)
	if err != nil {
		return pc.paperLookupError(c, err)
	}

	if !paper.VisibleTo(authMw.GetUserID(c), authMw.GetUserRole(c)) {
		return helper.JsonError(c, fiber.StatusForbidden, "Not authorized to download this paper")
	}

	if err := pc.DB.Model(paper).UpdateColumn("downloads", gorm.Expr("downloads + 1")).Error; err != nil {
		log.Printf("[ERROR] increment downloads: %v", err)
	}

	return helper.JsonOK(c, "Download count incremented", fiber.Map{
		"file_url": paper.FileURL,
	})
}

/* ==========================
   Internal
========================== */

func (pc *PaperController) findPaper(c *fiber.Ctx) (*model.PaperModel, error) {
	id := strings.TrimSpace(c.Params("id"))
	if _, err := uuid.Parse(id); err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	var paper model.PaperModel
	if err := pc.DB.First(&paper, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &paper, nil
}

func (pc *PaperController) paperLookupError(c *fiber.Ctx, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Paper not found")
	}
	log.Printf("[ERROR] paper lookup: %v", err)
	return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to get paper")
}

func (pc *PaperController) loadUploader(id uuid.UUID) *paperDTO.UploaderInfo {
	if id == uuid.Nil {
		return nil
	}
	var u userModel.UserModel
	if err := pc.DB.Select("id", "user_name", "email").First(&u, "id = ?", id).Error; err != nil {
		return nil // dangling uploader reference after user deletion
	}
	return &paperDTO.UploaderInfo{ID: u.ID, UserName: u.UserName, Email: u.Email}
}

func (pc *PaperController) loadUploaders(papers []model.PaperModel) map[uuid.UUID]*paperDTO.UploaderInfo {
	out := map[uuid.UUID]*paperDTO.UploaderInfo{}
	if len(papers) == 0 {
		return out
	}
	ids := make([]uuid.UUID, 0, len(papers))
	seen := map[uuid.UUID]struct{}{}
	for i := range papers {
		id := papers[i].UploaderID
		if _, ok := seen[id]; !ok && id != uuid.Nil {
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	var users []userModel.UserModel
	if err := pc.DB.Select("id", "user_name", "email").Find(&users, "id IN ?", ids).Error; err != nil {
		log.Printf("[ERROR] load uploaders: %v", err)
		return out
	}
	for i := range users {
		u := users[i]
		out[u.ID] = &paperDTO.UploaderInfo{ID: u.ID, UserName: u.UserName, Email: u.Email}
	}
	return out
}
