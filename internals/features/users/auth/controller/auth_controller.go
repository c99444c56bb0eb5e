package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pyqbank_backend/internals/configs"
	authDTO "pyqbank_backend/internals/features/users/auth/dto"
	authHelper "pyqbank_backend/internals/features/users/auth/helper"
	userDTO "pyqbank_backend/internals/features/users/user/dto"
	userModel "pyqbank_backend/internals/features/users/user/model"
	helper "pyqbank_backend/internals/helpers"
	authMw "pyqbank_backend/internals/middlewares/auth"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController { return &AuthController{DB: db} }

/* ==========================
   REGISTER / LOGIN / LOGOUT
========================== */

// POST /api/auth/register
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var input authDTO.RegisterRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := input.Validate(); err != nil {
		return helper.JsonValidationError(c, authDTO.FieldErrors(err))
	}

	hash, err := authHelper.HashPassword(input.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Password hashing failed")
	}

	user := userModel.UserModel{
		UserName: strings.TrimSpace(input.UserName),
		Email:    strings.ToLower(strings.TrimSpace(input.Email)),
		Password: hash,
	}
	if err := ac.DB.Create(&user).Error; err != nil {
		if helper.IsDuplicateKeyErr(err) {
			return helper.JsonError(c, fiber.StatusConflict, "User with this email already exists")
		}
		log.Printf("[ERROR] register: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Registration failed")
	}

	return ac.sendTokenResponse(c, &user, fiber.StatusCreated, "Registration successful")
}

// POST /api/auth/login
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var input authDTO.LoginRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := input.Validate(); err != nil {
		return helper.JsonValidationError(c, authDTO.FieldErrors(err))
	}

	var user userModel.UserModel
	err := ac.DB.First(&user, "email = ?", strings.ToLower(strings.TrimSpace(input.Email))).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
		}
		log.Printf("[ERROR] login lookup: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Login failed")
	}
	if !authHelper.CheckPassword(user.Password, input.Password) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Your account has been deactivated")
	}

	return ac.sendTokenResponse(c, &user, fiber.StatusOK, "Login successful")
}

// POST /api/auth/logout
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     helper.AccessTokenCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return helper.JsonOK(c, "User logged out successfully", nil)
}

/* ==========================
   ME / SELF-SERVICE
========================== */

// GET /api/auth/me
func (ac *AuthController) GetMe(c *fiber.Ctx) error {
	user, err := ac.currentUser(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Not authorized to access this route")
	}
	return helper.JsonOK(c, "ok", userDTO.FromModel(user))
}

// PUT /api/auth/updatedetails
// Only the allow-listed fields are applied; role in the body is ignored.
func (ac *AuthController) UpdateDetails(c *fiber.Ctx) error {
	user, err := ac.currentUser(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Not authorized to access this route")
	}

	var input userDTO.SelfUpdateRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if !input.Apply(user) {
		return helper.JsonOK(c, "Nothing to update", userDTO.FromModel(user))
	}

	if err := ac.DB.Save(user).Error; err != nil {
		if helper.IsDuplicateKeyErr(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Email already in use")
		}
		log.Printf("[ERROR] updatedetails: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update user details")
	}
	return helper.JsonUpdated(c, "Details updated", userDTO.FromModel(user))
}

// PUT /api/auth/updatepassword
func (ac *AuthController) UpdatePassword(c *fiber.Ctx) error {
	user, err := ac.currentUser(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Not authorized to access this route")
	}

	var input authDTO.UpdatePasswordRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := input.Validate(); err != nil {
		return helper.JsonValidationError(c, authDTO.FieldErrors(err))
	}
	if !authHelper.CheckPassword(user.Password, input.CurrentPassword) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Current password is incorrect")
	}

	hash, err := authHelper.HashPassword(input.NewPassword)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Password hashing failed")
	}
	if err := ac.DB.Model(user).UpdateColumn("password", hash).Error; err != nil {
		log.Printf("[ERROR] updatepassword: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update password")
	}
	user.Password = hash

	return ac.sendTokenResponse(c, user, fiber.StatusOK, "Password updated")
}

/* ==========================
   PASSWORD RESET
========================== */

// POST /api/auth/forgotpassword
// Stores only the sha256 of the token; the raw token would go out by email;
// there is no mailer here, so it is logged (and echoed in development).
func (ac *AuthController) ForgotPassword(c *fiber.Ctx) error {
	var input authDTO.ForgotPasswordRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := input.Validate(); err != nil {
		return helper.JsonValidationError(c, authDTO.FieldErrors(err))
	}

	var user userModel.UserModel
	err := ac.DB.First(&user, "email = ?", strings.ToLower(strings.TrimSpace(input.Email))).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "There is no user with that email")
		}
		log.Printf("[ERROR] forgotpassword lookup: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue reset token")
	}

	raw, hashed := authHelper.GenerateResetToken()
	expires := time.Now().UTC().Add(authHelper.ResetTokenTTL)
	err = ac.DB.Model(&user).Updates(map[string]any{
		"reset_password_token":   hashed,
		"reset_password_expires": expires,
	}).Error
	if err != nil {
		log.Printf("[ERROR] forgotpassword store: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue reset token")
	}

	resetURL := configs.ClientURL + "/resetpassword/" + raw
	log.Printf("[RESET] password reset url for %s: %s", user.Email, resetURL)

	data := fiber.Map{}
	if configs.IsDevelopment() {
		data["reset_token"] = raw
	}
	return helper.JsonOK(c, "Password reset email sent", data)
}

// PUT /api/auth/resetpassword/:token
// Single-use: the reset fields are cleared in the same UPDATE that replaces
// the password hash, so replaying the raw token finds no matching row.
func (ac *AuthController) ResetPassword(c *fiber.Ctx) error {
	raw := strings.TrimSpace(c.Params("token"))
	if raw == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid token or token has expired")
	}

	var input authDTO.ResetPasswordRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := input.Validate(); err != nil {
		return helper.JsonValidationError(c, authDTO.FieldErrors(err))
	}

	var user userModel.UserModel
	err := ac.DB.First(&user,
		"reset_password_token = ? AND reset_password_expires > ?",
		authHelper.HashResetToken(raw), time.Now().UTC(),
	).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid token or token has expired")
		}
		log.Printf("[ERROR] resetpassword lookup: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reset password")
	}

	hash, err := authHelper.HashPassword(input.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Password hashing failed")
	}
	err = ac.DB.Model(&user).Updates(map[string]any{
		"password":               hash,
		"reset_password_token":   nil,
		"reset_password_expires": nil,
	}).Error
	if err != nil {
		log.Printf("[ERROR] resetpassword store: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reset password")
	}
	user.Password = hash

	return ac.sendTokenResponse(c, &user, fiber.StatusOK, "Password reset successful")
}

/* ==========================
   Internal
========================== */

func (ac *AuthController) currentUser(c *fiber.Ctx) (*userModel.UserModel, error) {
	id := authMw.GetUserID(c)
	var user userModel.UserModel
	if err := ac.DB.First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// sendTokenResponse signs the session token, sets the cookie and returns the
// public profile. Mirrors the shape the web client expects on every auth
// success path.
func (ac *AuthController) sendTokenResponse(c *fiber.Ctx, user *userModel.UserModel, status int, message string) error {
	token, err := authHelper.SignAccessToken(user)
	if err != nil {
		log.Printf("[ERROR] sign token: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue session token")
	}

	c.Cookie(&fiber.Cookie{
		Name:     helper.AccessTokenCookie,
		Value:    token,
		Expires:  time.Now().Add(authHelper.AccessTokenTTL),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return c.Status(status).JSON(fiber.Map{
		"success": true,
		"message": message,
		"token":   token,
		"user":    userDTO.FromModel(user),
	})
}
