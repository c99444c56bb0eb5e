package controller

import (
	"encoding/json"
	"errors"
	"log"
	"net/url"
	"strings"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/oauth2"
	"gorm.io/gorm"

	"pyqbank_backend/internals/configs"
	authDTO "pyqbank_backend/internals/features/users/auth/dto"
	authHelper "pyqbank_backend/internals/features/users/auth/helper"
	userModel "pyqbank_backend/internals/features/users/user/model"
	helper "pyqbank_backend/internals/helpers"
)

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v3/userinfo"

func googleOAuthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     configs.GoogleClientID,
		ClientSecret: configs.GoogleClientSecret,
		RedirectURL:  configs.GoogleRedirectURI,
		Scopes:       []string{"openid", "email", "profile"},
		Endpoint: oauth2.Endpoint{
			AuthURL:  "https://accounts.google.com/o/oauth2/v2/auth",
			TokenURL: "https://oauth2.googleapis.com/token",
		},
	}
}

type googleProfile struct {
	Sub     string `json:"sub"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// GET /api/auth/google: redirect to the Google consent screen.
func (ac *AuthController) GoogleRedirect(c *fiber.Ctx) error {
	if configs.GoogleClientID == "" {
		return helper.JsonError(c, fiber.StatusBadGateway, "Google login is not configured")
	}
	return c.Redirect(googleOAuthConfig().AuthCodeURL("state", oauth2.AccessTypeOffline), fiber.StatusTemporaryRedirect)
}

// GET /api/auth/google/callback: exchange the authorization code, fetch the
// profile, upsert the local user and redirect back to the web client with a
// session token.
func (ac *AuthController) GoogleCallback(c *fiber.Ctx) error {
	code := strings.TrimSpace(c.Query("code"))
	if code == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Authorization code is required")
	}

	conf := googleOAuthConfig()
	tok, err := conf.Exchange(c.UserContext(), code)
	if err != nil {
		log.Printf("[ERROR] google code exchange: %v", err)
		return ac.redirectWithError(c, "Google authentication failed")
	}

	resp, err := conf.Client(c.UserContext(), tok).Get(googleUserInfoURL)
	if err != nil {
		log.Printf("[ERROR] google userinfo: %v", err)
		return ac.redirectWithError(c, "Google authentication failed")
	}
	defer resp.Body.Close()

	var profile googleProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil || profile.Email == "" {
		log.Printf("[ERROR] google userinfo decode: %v", err)
		return ac.redirectWithError(c, "Could not retrieve user information from Google")
	}

	user, err := ac.upsertGoogleUser(&profile)
	if err != nil {
		log.Printf("[ERROR] google upsert: %v", err)
		return ac.redirectWithError(c, "Google authentication failed")
	}
	if !user.IsActive {
		return ac.redirectWithError(c, "Your account has been deactivated")
	}

	token, err := authHelper.SignAccessToken(user)
	if err != nil {
		log.Printf("[ERROR] sign token: %v", err)
		return ac.redirectWithError(c, "Failed to issue session token")
	}

	redirect := configs.ClientURL + "/login?token=" + url.QueryEscape(token) + "&userId=" + user.ID.String()
	return c.Redirect(redirect, fiber.StatusTemporaryRedirect)
}

// POST /api/auth/google: SPA flow: the client obtained a Google ID token
// itself and presents it here for verification.
func (ac *AuthController) GoogleTokenLogin(c *fiber.Ctx) error {
	var input authDTO.GoogleTokenRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := input.Validate(); err != nil {
		return helper.JsonValidationError(c, authDTO.FieldErrors(err))
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(input.IDToken, []string{configs.GoogleClientID}); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid Google ID token")
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(input.IDToken)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadGateway, "Failed to decode Google ID token")
	}

	user, err := ac.upsertGoogleUser(&googleProfile{
		Sub:     claimSet.Sub,
		Email:   claimSet.Email,
		Name:    claimSet.Name,
		Picture: claimSet.Picture,
	})
	if err != nil {
		log.Printf("[ERROR] google upsert: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Google login failed")
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Your account has been deactivated")
	}

	return ac.sendTokenResponse(c, user, fiber.StatusOK, "Login successful")
}

// upsertGoogleUser matches by email: creates a local account (with a random
// unusable password) or links/refreshes an existing one.
func (ac *AuthController) upsertGoogleUser(p *googleProfile) (*userModel.UserModel, error) {
	email := strings.ToLower(strings.TrimSpace(p.Email))

	var user userModel.UserModel
	err := ac.DB.First(&user, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		hash, herr := authHelper.HashPassword(authHelper.GenerateDummyPassword())
		if herr != nil {
			return nil, herr
		}
		name := strings.TrimSpace(p.Name)
		if name == "" {
			name = email
		}
		user = userModel.UserModel{
			UserName: name,
			Email:    email,
			Password: hash,
			GoogleID: &p.Sub,
		}
		if p.Picture != "" {
			user.ProfilePicture = &p.Picture
		}
		if cerr := ac.DB.Create(&user).Error; cerr != nil {
			return nil, cerr
		}
		return &user, nil
	}
	if err != nil {
		return nil, err
	}

	updates := map[string]any{"google_id": p.Sub}
	if user.ProfilePicture == nil && p.Picture != "" {
		updates["profile_picture"] = p.Picture
	}
	if uerr := ac.DB.Model(&user).Updates(updates).Error; uerr != nil {
		return nil, uerr
	}
	user.GoogleID = &p.Sub
	return &user, nil
}

func (ac *AuthController) redirectWithError(c *fiber.Ctx, msg string) error {
	return c.Redirect(configs.ClientURL+"/login?error="+url.QueryEscape(msg), fiber.StatusTemporaryRedirect)
}
