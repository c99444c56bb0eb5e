package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"pyqbank_backend/internals/constants"
)

// PaperModel represents the papers table. UploaderID is a weak reference:
// deleting a user leaves their papers in place with a dangling uploader.
type PaperModel struct {
	ID         uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title      string         `gorm:"size:255;not null" json:"title"`
	Subject    string         `gorm:"size:150;not null;index" json:"subject"`
	Department string         `gorm:"size:100;not null;index" json:"department"`
	Year       string         `gorm:"size:20;not null;index" json:"year"`
	Semester   string         `gorm:"size:20;not null;index" json:"semester"`
	ExamType   string         `gorm:"size:30;not null" json:"exam_type"`
	Tags       pq.StringArray `gorm:"type:text[]" json:"tags"`
	Comment    string         `gorm:"type:text" json:"comment"`

	FileURL string `gorm:"size:512;not null" json:"file_url"`
	FileKey string `gorm:"size:255;not null" json:"file_key"`

	UploaderID uuid.UUID `gorm:"type:uuid;not null;index" json:"uploader_id"`

	Approved  bool `gorm:"not null;default:false;index" json:"approved"`
	Views     int  `gorm:"not null;default:0" json:"views"`
	Downloads int  `gorm:"not null;default:0" json:"downloads"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (PaperModel) TableName() string {
	return "papers"
}

// VisibleTo is the visibility predicate applied on every read path:
// approved papers are public, pending ones are visible only to their
// uploader and admins.
func (p *PaperModel) VisibleTo(callerID uuid.UUID, callerRole string) bool {
	if p.Approved {
		return true
	}
	if callerRole == constants.RoleAdmin {
		return true
	}
	return callerID != uuid.Nil && callerID == p.UploaderID
}

// CanModify: only the uploader or an admin may mutate or delete a paper.
func (p *PaperModel) CanModify(callerID uuid.UUID, callerRole string) bool {
	if callerRole == constants.RoleAdmin {
		return true
	}
	return callerID != uuid.Nil && callerID == p.UploaderID
}
