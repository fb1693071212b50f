package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fittrack-be/internal/models"
	"fittrack-be/internal/service"
)

type FitnessController struct {
	fitnessService service.FitnessService
}

func NewFitnessController(fitnessService service.FitnessService) *FitnessController {
	return &FitnessController{
		fitnessService: fitnessService,
	}
}

// SaveEntry handles POST /fitness_data
func (fc *FitnessController) SaveEntry(c *gin.Context) {
	var req models.FitnessEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "type and value are required")
		return
	}

	email, ok := actingEmail(c, req.Email)
	if !ok {
		return
	}

	if _, err := fc.fitnessService.Record(c.Request.Context(), email, req.Type, *req.Value); err != nil {
		serverError(c, err, "fitness_data")
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{Success: true, Message: "Fitness data saved successfully"})
}

// History handles GET /past_data
func (fc *FitnessController) History(c *gin.Context) {
	email, ok := actingEmail(c, c.Query("email"))
	if !ok {
		return
	}

	entries, err := fc.fitnessService.History(c.Request.Context(), email)
	if err != nil {
		serverError(c, err, "past_data")
		return
	}

	c.JSON(http.StatusOK, models.HistoryResponse{Success: true, Data: entries})
}

// Summary handles GET /fitness_data_summary
func (fc *FitnessController) Summary(c *gin.Context) {
	email, ok := actingEmail(c, c.Query("email"))
	if !ok {
		return
	}

	summary, err := fc.fitnessService.Summary(c.Request.Context(), email)
	if err != nil {
		serverError(c, err, "fitness_data_summary")
		return
	}

	c.JSON(http.StatusOK, summary)
}
