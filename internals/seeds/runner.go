package seeds

import (
	"log"

	"gorm.io/gorm"

	subjectSeed "pyqbank_backend/internals/seeds/subjects"
	userSeed "pyqbank_backend/internals/seeds/users"
)

// RunAllSeeds is idempotent and safe to run on every boot; each seeder
// skips rows that already exist.
func RunAllSeeds(db *gorm.DB) {
	//* Users
	if err := userSeed.SeedAdminUser(db); err != nil {
		log.Printf("[WARN] seed admin user: %v", err)
	}

	//* Subjects
	if err := subjectSeed.SeedSubjectsFromJSON(db, "internals/seeds/subjects/data_subjects.json"); err != nil {
		log.Printf("[WARN] seed subjects: %v", err)
	}
}
