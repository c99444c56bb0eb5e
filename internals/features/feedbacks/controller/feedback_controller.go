package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	feedbackDTO "pyqbank_backend/internals/features/feedbacks/dto"
	"pyqbank_backend/internals/features/feedbacks/model"
	paperModel "pyqbank_backend/internals/features/papers/model"
	userModel "pyqbank_backend/internals/features/users/user/model"
	helper "pyqbank_backend/internals/helpers"
	authMw "pyqbank_backend/internals/middlewares/auth"
)

type FeedbackController struct {
	DB *gorm.DB
}

func NewFeedbackController(db *gorm.DB) *FeedbackController {
	return &FeedbackController{DB: db}
}

/* ==========================
   CREATE
========================== */

// POST /api/feedback
// One feedback per (user, paper). The pre-check gives a friendly 409; the
// unique index catches the race the pre-check cannot.
func (fc *FeedbackController) CreateFeedback(c *fiber.Ctx) error {
	var input feedbackDTO.CreateFeedbackRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := input.Validate(); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	userID := authMw.GetUserID(c)

	if input.PaperID != nil {
		var count int64
		err := fc.DB.Model(&paperModel.PaperModel{}).Where("id = ?", *input.PaperID).Count(&count).Error
		if err != nil {
			log.Printf("[ERROR] check paper: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to submit feedback")
		}
		if count == 0 {
			return helper.JsonError(c, fiber.StatusNotFound, "Paper not found")
		}

		var existing int64
		err = fc.DB.Model(&model.FeedbackModel{}).
			Where("user_id = ? AND paper_id = ?", userID, *input.PaperID).
			Count(&existing).Error
		if err != nil {
			log.Printf("[ERROR] check feedback: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to submit feedback")
		}
		if existing > 0 {
			return helper.JsonError(c, fiber.StatusConflict, "You have already submitted feedback for this paper")
		}
	}

	feedback := model.FeedbackModel{
		UserID:  userID,
		PaperID: input.PaperID,
		Rating:  input.Rating,
		Message: strings.TrimSpace(input.Message),
		Status:  model.StatusPending,
	}
	if err := fc.DB.Create(&feedback).Error; err != nil {
		if helper.IsDuplicateKeyErr(err) {
			return helper.JsonError(c, fiber.StatusConflict, "You have already submitted feedback for this paper")
		}
		log.Printf("[ERROR] create feedback: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to submit feedback")
	}

	return helper.JsonCreated(c, "Feedback submitted successfully", feedbackDTO.FromModel(&feedback, fc.loadAuthor(userID)))
}

/* ==========================
   LIST (admin)
========================== */

// GET /api/feedback (admin only)
// Query: paper_id, status, page, per_page/limit.
func (fc *FeedbackController) GetFeedbacks(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	tx := fc.DB.Model(&model.FeedbackModel{})
	if v := strings.TrimSpace(c.Query("paper_id")); v != "" {
		tx = tx.Where("paper_id = ?", v)
	}
	if v := strings.TrimSpace(c.Query("status")); v != "" {
		tx = tx.Where("status = ?", v)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		log.Printf("[ERROR] count feedback: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to get feedback")
	}

	var feedbacks []model.FeedbackModel
	err := tx.Order("created_at DESC").Offset(paging.Offset).Limit(paging.Limit).Find(&feedbacks).Error
	if err != nil {
		log.Printf("[ERROR] list feedback: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to get feedback")
	}

	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Feedback fetched successfully", fc.toResponses(feedbacks), &pagination)
}

/* ==========================
   PER-PAPER (public)
========================== */

// GET /api/feedback/paper/:paperId
// Public view: approved feedback only, plus the rating aggregate.
func (fc *FeedbackController) GetPaperFeedbacks(c *fiber.Ctx) error {
	paperID := strings.TrimSpace(c.Params("paperId"))
	if _, err := uuid.Parse(paperID); err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Paper not found")
	}

	var feedbacks []model.FeedbackModel
	err := fc.DB.Where("paper_id = ? AND status = ?", paperID, model.StatusApproved).
		Order("created_at DESC").
		Find(&feedbacks).Error
	if err != nil {
		log.Printf("[ERROR] paper feedback: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to get feedback")
	}

	type agg struct {
		Average float64 `json:"average"`
		Count   int64   `json:"count"`
	}
	var rating agg
	err = fc.DB.Model(&model.FeedbackModel{}).
		Select("COALESCE(AVG(rating), 0) AS average, COUNT(*) AS count").
		Where("paper_id = ? AND status = ?", paperID, model.StatusApproved).
		Scan(&rating).Error
	if err != nil {
		log.Printf("[ERROR] paper feedback rating: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to get feedback")
	}

	return helper.JsonListEx(c, "Feedback fetched successfully", fc.toResponses(feedbacks), nil, fiber.Map{
		"rating": rating,
	})
}

/* ==========================
   OWN FEEDBACK
========================== */

// GET /api/feedback/me
func (fc *FeedbackController) GetMyFeedbacks(c *fiber.Ctx) error {
	var feedbacks []model.FeedbackModel
	err := fc.DB.Where("user_id = ?", authMw.GetUserID(c)).
		Order("created_at DESC").
		Find(&feedbacks).Error
	if err != nil {
		log.Printf("[ERROR] my feedback: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to get feedback")
	}
	return helper.JsonOK(c, "Feedback fetched successfully", fc.toResponses(feedbacks))
}

/* ==========================
   MODERATE / DELETE
========================== */

// PUT /api/feedback/:id (admin only)
func (fc *FeedbackController) UpdateFeedback(c *fiber.Ctx) error {
	feedback, err := fc.findFeedback(c)
	if err != nil {
		return fc.lookupError(c, err)
	}

	var input feedbackDTO.UpdateFeedbackRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := input.Validate(); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	if input.Status != nil {
		feedback.Status = *input.Status
	}
	if input.AdminResponse != nil {
		feedback.AdminResponse = strings.TrimSpace(*input.AdminResponse)
	}

	if err := fc.DB.Save(feedback).Error; err != nil {
		log.Printf("[ERROR] update feedback: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update feedback")
	}
	return helper.JsonUpdated(c, "Feedback updated successfully", feedbackDTO.FromModel(feedback, fc.loadAuthor(feedback.UserID)))
}

// DELETE /api/feedback/:id (owner or admin)
func (fc *FeedbackController) DeleteFeedback(c *fiber.Ctx) error {
	feedback, err := fc.findFeedback(c)
	if err != nil {
		return fc.lookupError(c, err)
	}

	if !feedback.CanDelete(authMw.GetUserID(c), authMw.GetUserRole(c)) {
		return helper.JsonError(c, fiber.StatusForbidden, "Not authorized to delete this feedback")
	}

	if err := fc.DB.Delete(feedback).Error; err != nil {
		log.Printf("[ERROR] delete feedback: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete feedback")
	}
	return helper.JsonDeleted(c, "Feedback deleted successfully", nil)
}

/* ==========================
   Internal
========================== */

func (fc *FeedbackController) findFeedback(c *fiber.Ctx) (*model.FeedbackModel, error) {
	id := strings.TrimSpace(c.Params("id"))
	if _, err := uuid.Parse(id); err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	var feedback model.FeedbackModel
	if err := fc.DB.First(&feedback, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &feedback, nil
}

func (fc *FeedbackController) lookupError(c *fiber.Ctx, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Feedback not found")
	}
	log.Printf("[ERROR] feedback lookup: %v", err)
	return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to get feedback")
}

func (fc *FeedbackController) loadAuthor(id uuid.UUID) *feedbackDTO.AuthorInfo {
	var u userModel.UserModel
	if err := fc.DB.Select("id", "user_name").First(&u, "id = ?", id).Error; err != nil {
		return nil
	}
	return &feedbackDTO.AuthorInfo{ID: u.ID, UserName: u.UserName}
}

func (fc *FeedbackController) toResponses(feedbacks []model.FeedbackModel) []feedbackDTO.FeedbackResponse {
	authors := fc.loadAuthors(feedbacks)
	out := make([]feedbackDTO.FeedbackResponse, 0, len(feedbacks))
	for i := range feedbacks {
		out = append(out, feedbackDTO.FromModel(&feedbacks[i], authors[feedbacks[i].UserID]))
	}
	return out
}

func (fc *FeedbackController) loadAuthors(feedbacks []model.FeedbackModel) map[uuid.UUID]*feedbackDTO.AuthorInfo {
	out := map[uuid.UUID]*feedbackDTO.AuthorInfo{}
	if len(feedbacks) == 0 {
		return out
	}
	ids := make([]uuid.UUID, 0, len(feedbacks))
	seen := map[uuid.UUID]struct{}{}
	for i := range feedbacks {
		id := feedbacks[i].UserID
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	var users []userModel.UserModel
	if err := fc.DB.Select("id", "user_name").Find(&users, "id IN ?", ids).Error; err != nil {
		log.Printf("[ERROR] load feedback authors: %v", err)
		return out
	}
	for i := range users {
		u := users[i]
		out[u.ID] = &feedbackDTO.AuthorInfo{ID: u.ID, UserName: u.UserName}
	}
	return out
}
