package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"fittrack-be/internal/models"
	"fittrack-be/internal/service"
)

type AuthController struct {
	authService service.AuthService
}

func NewAuthController(authService service.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// Signup handles POST /signup
func (ac *AuthController) Signup(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "firstName, lastName, email and password are required")
		return
	}

	if _, err := ac.authService.Signup(c.Request.Context(), &req); err != nil {
		if errors.Is(err, service.ErrEmailExists) {
			fail(c, http.StatusBadRequest, "Email already exists")
			return
		}
		serverError(c, err, "signup")
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{Success: true, Message: "User registered successfully"})
}

// Login handles POST /login
func (ac *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "email and password are required")
		return
	}

	token, err := ac.authService.Login(c.Request.Context(), &req)
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		fail(c, http.StatusBadRequest, "Invalid Credentials: User not found")
		return
	case errors.Is(err, service.ErrIncorrectPassword):
		fail(c, http.StatusBadRequest, "Invalid Credentials: Incorrect password")
		return
	case err != nil:
		serverError(c, err, "login")
		return
	}

	c.JSON(http.StatusOK, models.LoginResponse{Success: true, Token: token})
}
