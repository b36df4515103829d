package handler

import (
	"errors"
	"net/http"

	"chaugames/backend/internal/apperr"
	"chaugames/backend/internal/auth"
	"chaugames/backend/internal/collection"
	"chaugames/backend/internal/database"
	"chaugames/backend/internal/models"
	"chaugames/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// region --- DTOs ---

// RegisterInput defines the structure for user registration.
type RegisterInput struct {
	Email     string  `json:"email" binding:"required,email" example:"chau@example.com"`
	Password  string  `json:"password" binding:"required,min=8" example:"password123"`
	Name      *string `json:"name" example:"Chau"`
	AvatarURL *string `json:"avatarUrl"`
}

// LoginInput defines the structure for user login.
type LoginInput struct {
	Email    string `json:"email" binding:"required,email" example:"chau@example.com"`
	Password string `json:"password" binding:"required" example:"password123"`
}

// ProfileResponse is the authenticated user's own profile.
type ProfileResponse struct {
	ID          uint    `json:"id" example:"1"`
	Email       string  `json:"email" example:"chau@example.com"`
	Name        *string `json:"name"`
	DisplayName *string `json:"displayName"`
	AvatarURL   *string `json:"avatarUrl"`
	GamesLogged int64   `json:"gamesLogged"`
}

// DisplayNameInput carries a candidate display name.
type DisplayNameInput struct {
	DisplayName string `json:"displayName" binding:"required" example:"Chau"`
}

// DisplayNameResponse reports the stored display name, null when unset.
type DisplayNameResponse struct {
	DisplayName *string `json:"displayName"`
}

// endregion

// principalFromContext rebuilds the trusted principal from what the auth
// middleware stored. The token only carries the email identity key.
func principalFromContext(c *gin.Context) (collection.Principal, bool) {
	email, exists := c.Get(auth.ContextUserEmail)
	if !exists {
		return collection.Principal{}, false
	}
	return collection.Principal{Email: email.(string)}, true
}

// region --- Auth Handlers ---

// RegisterUser godoc
// @Summary      Register a new user
// @Description  Creates a new user and returns an authentication token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body RegisterInput true "Registration Info"
// @Success      201  {object}  map[string]string "{"token": "..."}"
// @Failure      400  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /auth/register [post]
func RegisterUser(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existingUser models.User
	if err := database.DB.Where("email = ?", input.Email).First(&existingUser).Error; err == nil {
		respondError(c, apperr.Duplicate("Email already registered"))
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		respondError(c, apperr.Internal("Failed to hash password", err))
		return
	}

	user := models.User{
		Email:        input.Email,
		PasswordHash: string(hashedPassword),
		Name:         input.Name,
		AvatarURL:    input.AvatarURL,
	}
	if err := database.DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			respondError(c, apperr.Duplicate("Email already registered"))
			return
		}
		respondError(c, apperr.Internal("Failed to create user", err))
		return
	}

	token, err := jwt.GenerateToken(user.ID, user.Email)
	if err != nil {
		respondError(c, apperr.Internal("Failed to generate token", err))
		return
	}

	c.JSON(http.StatusCreated, gin.H{"token": token})
}

// LoginUser godoc
// @Summary      Log in a user
// @Description  Authenticates a user with email and password, and returns a new token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body LoginInput true "Login Info"
// @Success      200  {object}  map[string]string "{"token": "..."}"
// @Failure      400  {object}  ErrorResponse "Invalid input"
// @Failure      401  {object}  ErrorResponse "Invalid credentials"
// @Failure      500  {object}  ErrorResponse "Internal server error"
// @Router       /auth/login [post]
func LoginUser(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := database.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		respondError(c, apperr.Authentication("Invalid credentials"))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		respondError(c, apperr.Authentication("Invalid credentials"))
		return
	}

	token, err := jwt.GenerateToken(user.ID, user.Email)
	if err != nil {
		respondError(c, apperr.Internal("Failed to generate token", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// endregion

// region --- Profile Handlers ---

// GetMe godoc
// @Summary      Get current user's profile
// @Description  Retrieves the profile for the currently authenticated user.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ProfileResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /users/me [get]
func GetMe(c *gin.Context) {
	p, ok := principalFromContext(c)
	if !ok {
		respondError(c, apperr.Authentication("Unauthorized"))
		return
	}

	var user models.User
	if err := database.DB.Where("email = ?", p.Email).First(&user).Error; err != nil {
		respondError(c, apperr.NotFound("User"))
		return
	}

	var gamesLogged int64
	database.DB.Model(&models.UserGame{}).Where("user_id = ?", user.ID).Count(&gamesLogged)

	c.JSON(http.StatusOK, ProfileResponse{
		ID:          user.ID,
		Email:       user.Email,
		Name:        user.Name,
		DisplayName: user.DisplayName,
		AvatarURL:   user.AvatarURL,
		GamesLogged: gamesLogged,
	})
}

// GetDisplayName godoc
// @Summary      Get the current display name
// @Description  Returns the stored display name, or null when the user has none yet. The UI uses this to prompt for a name exactly once.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  DisplayNameResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /users/me/display-name [get]
func GetDisplayName(c *gin.Context) {
	p, ok := principalFromContext(c)
	if !ok {
		respondError(c, apperr.Authentication("Unauthorized"))
		return
	}

	// A missing User row is not an error here: the answer is simply "no
	// display name yet".
	var user models.User
	err := database.DB.Where("email = ?", p.Email).First(&user).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		respondError(c, apperr.Internal("Failed to fetch display name", err))
		return
	}

	c.JSON(http.StatusOK, DisplayNameResponse{DisplayName: user.DisplayName})
}

// SetDisplayName godoc
// @Summary      Set the display name
// @Description  Validates and stores a display name for the authenticated user, creating the user record if absent.
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body DisplayNameInput true "Display name"
// @Success      200  {object}  map[string]interface{} "{"success": true, "displayName": "..."}"
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /users/me/display-name [put]
func SetDisplayName(c *gin.Context) {
	p, ok := principalFromContext(c)
	if !ok {
		respondError(c, apperr.Authentication("Unauthorized"))
		return
	}

	var input DisplayNameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, apperr.Validation("displayName", "Display name is required"))
		return
	}

	user, err := collection.UpdateDisplayName(database.DB, p, input.DisplayName)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"displayName": user.DisplayName,
	})
}

// endregion
