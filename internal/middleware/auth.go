package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"fittrack-be/internal/jwt"
	"fittrack-be/internal/models"
)

// Context keys set by AuthMiddleware
const (
	ContextUserID = "user_id"
	ContextEmail  = "email"
)

// AuthMiddleware requires a valid bearer token and stores its user id and email on the context
func AuthMiddleware(jwtService *jwt.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := bearerToken(c.GetHeader("Authorization"))
		if err != nil {
			abortUnauthorized(c, err)
			return
		}

		claims, err := jwtService.ValidateToken(token)
		if err != nil {
			abortUnauthorized(c, err)
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextEmail, claims.Email)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, err error) {
	message := "Invalid or expired token"
	if errors.Is(err, jwt.ErrMissingToken) {
		message = "Authorization token required"
	}
	c.AbortWithStatusJSON(http.StatusUnauthorized, models.APIResponse{Success: false, Message: message})
}

func bearerToken(header string) (string, error) {
	if header == "" {
		return "", jwt.ErrMissingToken
	}
	if len(header) < len("Bearer ") || !strings.EqualFold(header[:len("Bearer ")], "Bearer ") {
		return "", jwt.ErrInvalidToken
	}
	return strings.TrimSpace(header[len("Bearer "):]), nil
}

// AuthenticatedEmail returns the email of the token owner
func AuthenticatedEmail(c *gin.Context) (string, bool) {
	email := c.GetString(ContextEmail)
	return email, email != ""
}
