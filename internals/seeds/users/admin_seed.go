package users

import (
	"log"

	"gorm.io/gorm"

	"pyqbank_backend/internals/configs"
	"pyqbank_backend/internals/constants"
	authHelper "pyqbank_backend/internals/features/users/auth/helper"
	userModel "pyqbank_backend/internals/features/users/user/model"
)

// SeedAdminUser creates the bootstrap admin account from ADMIN_EMAIL and
// ADMIN_PASSWORD. Does nothing when the variables are unset or the account
// already exists.
func SeedAdminUser(db *gorm.DB) error {
	email := configs.GetEnv("ADMIN_EMAIL", "")
	password := configs.GetEnv("ADMIN_PASSWORD", "")
	if email == "" || password == "" {
		return nil
	}

	var count int64
	if err := db.Model(&userModel.UserModel{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := authHelper.HashPassword(password)
	if err != nil {
		return err
	}
	admin := userModel.UserModel{
		UserName: configs.GetEnv("ADMIN_NAME", "Administrator"),
		Email:    email,
		Password: hashed,
		Role:     constants.RoleAdmin,
		IsActive: true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	log.Printf("✅ Seeded admin user %s", email)
	return nil
}
