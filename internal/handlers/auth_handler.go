package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"github.com/ravenstudio/raven-community-api/internal/config"
	"github.com/ravenstudio/raven-community-api/internal/crypto"
	"github.com/ravenstudio/raven-community-api/internal/domain/roles"
	"github.com/ravenstudio/raven-community-api/internal/httperr"
	"github.com/ravenstudio/raven-community-api/internal/httpresp"
	"github.com/ravenstudio/raven-community-api/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type AuthHandler struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{db: db, cfg: cfg}
}

// ======================================================
// REQUESTS
// ======================================================

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Message string `json:"message"`
	Role    string `json:"role"`
	Token   string `json:"token"`
}

// ======================================================
// POST /api/login
// ======================================================

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Email and password are required.")
		return
	}

	var client models.Client
	if err := h.db.
		Where("email = ?", req.Email).
		First(&client).Error; err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid credentials.")
		return
	}

	if client.PasswordHash == nil || !crypto.VerifyPassword(*client.PasswordHash, req.Password) {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid credentials.")
		return
	}

	claims := jwt.MapClaims{
		"sub":  float64(client.ID),
		"role": client.Role,
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(h.cfg.JWTSecret))
	if err != nil {
		httperr.InternalStatus(c, "token_sign_failed", "Could not complete login.")
		return
	}

	httpresp.OK(c, LoginResponse{
		Message: "Login successful!",
		Role:    client.Role,
		Token:   token,
	})
}

// ======================================================
// GET /api/seed-admin — dev bootstrap only
// ======================================================

func (h *AuthHandler) SeedAdmin(c *gin.Context) {
	const (
		adminEmail = "admin@example.com"
		adminName  = "Admin User"
		tempPass   = "temp-password-123"
	)

	var count int64
	if err := h.db.
		Model(&models.Client{}).
		Where("email = ?", adminEmail).
		Count(&count).Error; err != nil {
		httperr.InternalStatus(c, "admin_seed_failed", "Could not create the admin user.")
		return
	}
	if count > 0 {
		httperr.ConflictStatus(c, "admin_exists", "Admin user already exists.")
		return
	}

	hash, err := crypto.HashPassword(tempPass)
	if err != nil {
		httperr.InternalStatus(c, "admin_seed_failed", "Could not create the admin user.")
		return
	}

	admin := models.Client{
		Name:         adminName,
		Email:        adminEmail,
		PasswordHash: &hash,
		Role:         roles.Admin,
		ReferralCode: crypto.GenerateReferralCode(),
	}
	if err := h.db.Create(&admin).Error; err != nil {
		if isDuplicateErr(err) {
			httperr.ConflictStatus(c, "admin_exists", "Admin user already exists.")
			return
		}
		httperr.InternalStatus(c, "admin_seed_failed", "Could not create the admin user.")
		return
	}

	httpresp.OK(c, gin.H{
		"message": "Admin user created successfully.",
		"login_details": gin.H{
			"email":    adminEmail,
			"password": tempPass,
		},
	})
}
