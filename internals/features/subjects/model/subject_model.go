package model

import (
	"time"

	"github.com/google/uuid"
)

// SubjectModel represents the subjects table. The (name, year, semester)
// triple is unique; papers reference subjects by matching field values, not
// by foreign key.
type SubjectModel struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name     string    `gorm:"size:150;not null;uniqueIndex:uq_subjects_name_year_semester" json:"name"`
	Year     string    `gorm:"size:20;not null;uniqueIndex:uq_subjects_name_year_semester" json:"year"`
	Semester string    `gorm:"size:20;not null;uniqueIndex:uq_subjects_name_year_semester" json:"semester"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (SubjectModel) TableName() string {
	return "subjects"
}
