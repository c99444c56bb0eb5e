package service

import (
	"gorm.io/gorm"

	subjectModel "pyqbank_backend/internals/features/subjects/model"
	helper "pyqbank_backend/internals/helpers"
)

// EnsureSubject makes sure a (name, year, semester) subject row exists,
// creating it when missing. Idempotent: a duplicate-key race is treated as
// success. Callers log a returned error but must not fail the surrounding
// paper write because of it.
func EnsureSubject(db *gorm.DB, name, year, semester string) error {
	var count int64
	err := db.Model(&subjectModel.SubjectModel{}).
		Where("name = ? AND year = ? AND semester = ?", name, year, semester).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	subject := subjectModel.SubjectModel{Name: name, Year: year, Semester: semester}
	if err := db.Create(&subject).Error; err != nil {
		if helper.IsDuplicateKeyErr(err) {
			return nil
		}
		return err
	}
	return nil
}
