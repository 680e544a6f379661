package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/salon-admin/internal/config"
	"github.com/BruksfildServices01/salon-admin/internal/httperr"
	"github.com/BruksfildServices01/salon-admin/internal/middleware"
	"github.com/BruksfildServices01/salon-admin/internal/timezone"
)

const (
	adminRole = "admin"
	tokenTTL  = 24 * time.Hour
)

type AuthHandler struct {
	config *config.Config
	now    timezone.Clock
}

func NewAuthHandler(cfg *config.Config, now timezone.Clock) *AuthHandler {
	return &AuthHandler{config: cfg, now: now}
}

// --------- Requests ---------

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Login(c *gin.Context) {
	if !h.config.AuthEnabled() {
		httperr.BadRequest(c, "auth_disabled", "La autenticación no está configurada.")
		return
	}

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	email := normalizeEmail(req.Email)
	if email != strings.ToLower(h.config.AdminEmail) {
		httperr.Unauthorized(c, "invalid_credentials", "Credenciales inválidas.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(h.config.AdminPasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Credenciales inválidas.")
		return
	}

	token, expires, err := h.generateToken(email)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Error al generar el token.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"email": email,
			"role":  adminRole,
		},
		"token":      token,
		"expires_at": expires,
	})
}

// Me describes the caller. With auth disabled every caller is the admin.
func (h *AuthHandler) Me(c *gin.Context) {
	email := actor(c)
	role := c.GetString(middleware.ContextUserRole)
	if !h.config.AuthEnabled() {
		email, role = h.config.AdminEmail, adminRole
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"email": email,
			"role":  role,
		},
		"auth_enabled": h.config.AuthEnabled(),
		"timezone":     h.config.Timezone,
	})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(email string) (string, time.Time, error) {
	now := h.now()
	expires := now.Add(tokenTTL)

	claims := jwt.MapClaims{
		"sub":  email,
		"role": adminRole,
		"exp":  expires.Unix(),
		"iat":  now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(h.config.JWTSecret))
	return signed, expires, err
}
