package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"fittrack-be/internal/middleware"
	"fittrack-be/internal/models"
)

func fail(c *gin.Context, status int, message string) {
	c.JSON(status, models.APIResponse{Success: false, Message: message})
}

// serverError logs the cause and replies with a generic 500
func serverError(c *gin.Context, err error, action string) {
	_ = c.Error(err)
	zerolog.Ctx(c.Request.Context()).Error().Err(err).Str("action", action).Msg("request failed")
	fail(c, http.StatusInternalServerError, "Server error")
}

// actingEmail returns the authenticated email. A caller-supplied email must match it.
func actingEmail(c *gin.Context, supplied string) (string, bool) {
	email, ok := middleware.AuthenticatedEmail(c)
	if !ok {
		fail(c, http.StatusUnauthorized, "Authorization token required")
		return "", false
	}
	if supplied != "" && supplied != email {
		fail(c, http.StatusForbidden, "Email does not match authenticated user")
		return "", false
	}
	return email, true
}
