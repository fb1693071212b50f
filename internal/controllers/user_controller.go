package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"fittrack-be/internal/models"
	"fittrack-be/internal/service"
)

type UserController struct {
	userService service.UserService
}

func NewUserController(userService service.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// Profile handles GET /user_profile
func (uc *UserController) Profile(c *gin.Context) {
	email, ok := actingEmail(c, c.Query("email"))
	if !ok {
		return
	}

	user, err := uc.userService.Profile(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			fail(c, http.StatusBadRequest, "User not found")
			return
		}
		serverError(c, err, "user_profile")
		return
	}

	c.JSON(http.StatusOK, models.ProfileResponse{Success: true, Data: user})
}
