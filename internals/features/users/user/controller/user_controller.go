package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pyqbank_backend/internals/constants"
	userDTO "pyqbank_backend/internals/features/users/user/dto"
	"pyqbank_backend/internals/features/users/user/model"
	helper "pyqbank_backend/internals/helpers"
)

// AdminUserController: user administration, admin-only routes.
type AdminUserController struct {
	DB *gorm.DB
}

func NewAdminUserController(db *gorm.DB) *AdminUserController {
	return &AdminUserController{DB: db}
}

// GET /api/users
// Query: q= (name/email search), page, per_page/limit.
func (uc *AdminUserController) ListUsers(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	tx := uc.DB.Model(&model.UserModel{})
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		like := "%" + q + "%"
		tx = tx.Where("user_name ILIKE ? OR email ILIKE ?", like, like)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		log.Printf("[ERROR] count users: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to get users")
	}

	var users []model.UserModel
	err := tx.Order("created_at DESC").Offset(paging.Offset).Limit(paging.Limit).Find(&users).Error
	if err != nil {
		log.Printf("[ERROR] list users: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to get users")
	}

	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Users fetched successfully", userDTO.FromModels(users), &pagination)
}

// GET /api/users/:id
func (uc *AdminUserController) GetUser(c *fiber.Ctx) error {
	var user model.UserModel
	if err := uc.DB.First(&user, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		log.Printf("[ERROR] get user: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to get user")
	}
	return helper.JsonOK(c, "User fetched successfully", userDTO.FromModel(&user))
}

// PUT /api/users/:id
func (uc *AdminUserController) UpdateUser(c *fiber.Ctx) error {
	var user model.UserModel
	if err := uc.DB.First(&user, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		log.Printf("[ERROR] get user: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update user")
	}

	var input userDTO.AdminUpdateUserRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	changed, err := input.Apply(&user)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if !changed {
		return helper.JsonOK(c, "Nothing to update", userDTO.FromModel(&user))
	}

	if err := uc.DB.Save(&user).Error; err != nil {
		if helper.IsDuplicateKeyErr(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Email already in use")
		}
		log.Printf("[ERROR] update user: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update user")
	}
	return helper.JsonUpdated(c, "User updated successfully", userDTO.FromModel(&user))
}

// DELETE /api/users/:id
// Papers keep their uploader_id; the reference simply dangles.
func (uc *AdminUserController) DeleteUser(c *fiber.Ctx) error {
	var user model.UserModel
	if err := uc.DB.First(&user, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		log.Printf("[ERROR] get user: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete user")
	}
	if err := uc.DB.Delete(&user).Error; err != nil {
		log.Printf("[ERROR] delete user: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete user")
	}
	return helper.JsonDeleted(c, "User deleted successfully", nil)
}

// GET /api/users/stats
func (uc *AdminUserController) GetUserStats(c *fiber.Ctx) error {
	var totalUsers, adminUsers int64
	if err := uc.DB.Model(&model.UserModel{}).Count(&totalUsers).Error; err != nil {
		log.Printf("[ERROR] user stats: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to get user stats")
	}
	if err := uc.DB.Model(&model.UserModel{}).Where("role = ?", constants.RoleAdmin).Count(&adminUsers).Error; err != nil {
		log.Printf("[ERROR] user stats: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to get user stats")
	}

	type dailyRow struct {
		Day   string `json:"day"`
		Count int64  `json:"count"`
	}
	var daily []dailyRow
	since := time.Now().UTC().AddDate(0, 0, -7)
	err := uc.DB.Model(&model.UserModel{}).
		Select("to_char(created_at, 'YYYY-MM-DD') AS day, COUNT(*) AS count").
		Where("created_at >= ?", since).
		Group("day").
		Order("day ASC").
		Scan(&daily).Error
	if err != nil {
		log.Printf("[ERROR] user stats daily: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to get user stats")
	}

	return helper.JsonOK(c, "User stats fetched successfully", fiber.Map{
		"total_users":         totalUsers,
		"admin_users":         adminUsers,
		"regular_users":       totalUsers - adminUsers,
		"daily_registrations": daily,
	})
}
