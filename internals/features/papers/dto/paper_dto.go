package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"pyqbank_backend/internals/constants"
	"pyqbank_backend/internals/features/papers/model"
)

/* ==========================
   Requests
========================== */

// CreatePaperRequest carries the multipart form fields of a paper upload
// (the file itself travels separately under the "file" field).
type CreatePaperRequest struct {
	Title      string `json:"title" form:"title"`
	Subject    string `json:"subject" form:"subject"`
	Department string `json:"department" form:"department"`
	Year       string `json:"year" form:"year"`
	Semester   string `json:"semester" form:"semester"`
	ExamType   string `json:"exam_type" form:"examType"`
	Tags       string `json:"tags" form:"tags"` // comma separated
	Comment    string `json:"comment" form:"comment"`
}

func (r *CreatePaperRequest) Validate() map[string][]string {
	errs := map[string][]string{}
	if strings.TrimSpace(r.Title) == "" {
		errs["title"] = append(errs["title"], "required")
	}
	if strings.TrimSpace(r.Subject) == "" {
		errs["subject"] = append(errs["subject"], "required")
	}
	if strings.TrimSpace(r.Department) == "" {
		errs["department"] = append(errs["department"], "required")
	}
	if !constants.IsValidYear(r.Year) {
		errs["year"] = append(errs["year"], "must be one of: "+strings.Join(constants.Years, ", "))
	}
	if !constants.IsValidSemester(r.Semester) {
		errs["semester"] = append(errs["semester"], "must be one of: "+strings.Join(constants.Semesters, ", "))
	}
	if !constants.IsValidExamType(r.ExamType) {
		errs["examType"] = append(errs["examType"], "must be one of: "+strings.Join(constants.ExamTypes, ", "))
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// UpdatePaperRequest: partial update; nil fields are left untouched.
// Approved is applied only when the caller is an admin.
type UpdatePaperRequest struct {
	Title      *string `json:"title" form:"title"`
	Subject    *string `json:"subject" form:"subject"`
	Department *string `json:"department" form:"department"`
	Year       *string `json:"year" form:"year"`
	Semester   *string `json:"semester" form:"semester"`
	ExamType   *string `json:"exam_type" form:"examType"`
	Tags       *string `json:"tags" form:"tags"`
	Comment    *string `json:"comment" form:"comment"`
	Approved   *bool   `json:"approved" form:"approved"`
}

func (r *UpdatePaperRequest) Validate() map[string][]string {
	errs := map[string][]string{}
	if r.Year != nil && !constants.IsValidYear(*r.Year) {
		errs["year"] = append(errs["year"], "must be one of: "+strings.Join(constants.Years, ", "))
	}
	if r.Semester != nil && !constants.IsValidSemester(*r.Semester) {
		errs["semester"] = append(errs["semester"], "must be one of: "+strings.Join(constants.Semesters, ", "))
	}
	if r.ExamType != nil && !constants.IsValidExamType(*r.ExamType) {
		errs["examType"] = append(errs["examType"], "must be one of: "+strings.Join(constants.ExamTypes, ", "))
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ParseTags splits a comma separated tag list, trimming blanks.
func ParseTags(csv string) []string {
	if strings.TrimSpace(csv) == "" {
		return []string{}
	}
	parts := strings.Split(csv, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

/* ==========================
   Responses
========================== */

type UploaderInfo struct {
	ID       uuid.UUID `json:"id"`
	UserName string    `json:"user_name"`
	Email    string    `json:"email"`
}

type PaperResponse struct {
	ID         uuid.UUID     `json:"id"`
	Title      string        `json:"title"`
	Subject    string        `json:"subject"`
	Department string        `json:"department"`
	Year       string        `json:"year"`
	Semester   string        `json:"semester"`
	ExamType   string        `json:"exam_type"`
	Tags       []string      `json:"tags"`
	Comment    string        `json:"comment"`
	FileURL    string        `json:"file_url"`
	Uploader   *UploaderInfo `json:"uploader,omitempty"`
	Approved   bool          `json:"approved"`
	Views      int           `json:"views"`
	Downloads  int           `json:"downloads"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

func FromModel(p *model.PaperModel, uploader *UploaderInfo) PaperResponse {
	tags := []string(p.Tags)
	if tags == nil {
		tags = []string{}
	}
	return PaperResponse{
		ID:         p.ID,
		Title:      p.Title,
		Subject:    p.Subject,
		Department: p.Department,
		Year:       p.Year,
		Semester:   p.Semester,
		ExamType:   p.ExamType,
		Tags:       tags,
		Comment:    p.Comment,
		FileURL:    p.FileURL,
		Uploader:   uploader,
		Approved:   p.Approved,
		Views:      p.Views,
		Downloads:  p.Downloads,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}
