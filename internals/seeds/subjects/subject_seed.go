package subjects

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	subjectModel "pyqbank_backend/internals/features/subjects/model"
)

type subjectSeedRow struct {
	Name     string `json:"name"`
	Year     string `json:"year"`
	Semester string `json:"semester"`
}

// SeedSubjectsFromJSON loads the subject catalogue from a JSON file and
// inserts the triples that are missing.
func SeedSubjectsFromJSON(db *gorm.DB, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	var rows []subjectSeedRow
	if err := json.Unmarshal(raw, &rows); err != nil {
		return err
	}

	inserted := 0
	for _, row := range rows {
		var count int64
		err := db.Model(&subjectModel.SubjectModel{}).
			Where("name = ? AND year = ? AND semester = ?", row.Name, row.Year, row.Semester).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		subject := subjectModel.SubjectModel{Name: row.Name, Year: row.Year, Semester: row.Semester}
		if err := db.Create(&subject).Error; err != nil {
			return err
		}
		inserted++
	}
	if inserted > 0 {
		log.Printf("✅ Seeded %d subjects", inserted)
	}
	return nil
}
