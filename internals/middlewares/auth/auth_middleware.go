package auth

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"pyqbank_backend/internals/configs"
	userModel "pyqbank_backend/internals/features/users/user/model"
	helper "pyqbank_backend/internals/helpers"
)

// AuthMiddleware requires a valid session. The referenced user must still
// exist (401 otherwise) and be active (403).
func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := helper.GetRawAccessToken(c)
		if tokenString == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Not authorized to access this route")
		}

		claims, err := parseAccessToken(tokenString)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Not authorized to access this route")
		}

		user, err := loadClaimedUser(db, claims)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusUnauthorized, "User not found or token invalid")
			}
			log.Printf("[ERROR] auth user lookup: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
		}
		if !user.IsActive {
			return helper.JsonError(c, fiber.StatusForbidden, "Your account has been deactivated")
		}

		storeIdentity(c, user)
		return c.Next()
	}
}

// OptionalAuthMiddleware resolves the caller when a token is present but
// lets anonymous requests through. Used on the public paper read paths so
// owners and admins see their pending papers.
func OptionalAuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := helper.GetRawAccessToken(c)
		if tokenString == "" {
			return c.Next()
		}
		claims, err := parseAccessToken(tokenString)
		if err != nil {
			return c.Next()
		}
		user, err := loadClaimedUser(db, claims)
		if err != nil || !user.IsActive {
			return c.Next()
		}
		storeIdentity(c, user)
		return c.Next()
	}
}

func parseAccessToken(tokenString string) (jwt.MapClaims, error) {
	secret := configs.JWTSecret
	if secret == "" {
		return nil, errors.New("missing JWT secret")
	}
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	return claims, nil
}

func loadClaimedUser(db *gorm.DB, claims jwt.MapClaims) (*userModel.UserModel, error) {
	idStr, ok := claims["user_id"].(string)
	if !ok || idStr == "" {
		return nil, gorm.ErrRecordNotFound
	}
	var user userModel.UserModel
	if err := db.First(&user, "id = ?", idStr).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func storeIdentity(c *fiber.Ctx, user *userModel.UserModel) {
	c.Locals(LocUserID, user.ID.String())
	c.Locals(LocUserRole, user.Role)
	c.Locals(LocUserName, user.UserName)
	c.Locals(LocUserEmail, user.Email)
}
