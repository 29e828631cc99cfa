package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"hostelhub/backend/internal/config"
	"hostelhub/backend/internal/models"

	"github.com/gin-gonic/gin"
	jwt "github.com/golang-jwt/jwt/v5"
)

// Context keys set by the auth middleware.
const (
	ctxUserID   = "user_id"
	ctxUserName = "user_name"
	ctxRole     = "role"
)

// generateJWT issues a session token for the account.
func (h *Handler) generateJWT(userID, name, role string) (string, error) {
	claims := jwt.MapClaims{
		"sub":  userID,
		"name": name,
		"role": role,
		"exp":  time.Now().Add(config.TokenTTL).Unix(),
		"iss":  config.TokenIssuer,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(h.JWTSecret)
}

// parseJWT validates the token and returns the subject, name and role claims.
func (h *Handler) parseJWT(tokenString string) (userID, name, role string, err error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return h.JWTSecret, nil
	})
	if err != nil || !token.Valid {
		return "", "", "", errors.New("invalid or expired token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", "", errors.New("unexpected claims type")
	}
	userID, _ = claims["sub"].(string)
	name, _ = claims["name"].(string)
	role, _ = claims["role"].(string)
	if userID == "" || role == "" {
		return "", "", "", errors.New("token missing identity claims")
	}
	return userID, name, role, nil
}

type loginRequest struct {
	Email string `json:"email" binding:"required"`
}

// Login exchanges a known account email for a session token. There is
// no password check: accounts are provisioned by the hostel office and
// this mirrors the kiosk-style login of the portals.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
		return
	}

	user, err := h.Storage.GetUserByEmail(req.Email)
	if err != nil {
		h.fail(c, err)
		return
	}
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unknown account"})
		return
	}

	token, err := h.generateJWT(user.ID, user.Name, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

// ListStudents returns the resident directory for the warden surface.
func (h *Handler) ListStudents(c *gin.Context) {
	students, err := h.Storage.ListUsersByRole(models.RoleStudent)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, students)
}

// bearerToken pulls the token out of the Authorization header.
func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return "", false
	}
	return strings.TrimPrefix(authHeader, "Bearer "), true
}

// RequireAuth validates the Bearer token and stores the identity claims
// on the context.
func (h *Handler) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization token missing"})
			return
		}
		userID, name, role, err := h.parseJWT(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token or expired"})
			return
		}
		c.Set(ctxUserID, userID)
		c.Set(ctxUserName, name)
		c.Set(ctxRole, role)
		c.Next()
	}
}

// RequireRole gates a route group to the given roles.
func (h *Handler) RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(ctxRole)
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "role not allowed"})
	}
}
