package models

import "fittrack-be/internal/entities"

// ProfileResponse wraps the stored user
type ProfileResponse struct {
	Success bool           `json:"success"`
	Data    *entities.User `json:"data"`
}

// HistoryResponse wraps every entry for a user, newest first
type HistoryResponse struct {
	Success bool                     `json:"success"`
	Data    []*entities.FitnessEntry `json:"data"`
}

// MetricSummary compares the latest recorded value against a fixed target
type MetricSummary struct {
	Target float64 `json:"target"`
	Actual float64 `json:"actual"`
}

// SummaryResponse is the dashboard view for the three tracked metrics
type SummaryResponse struct {
	Success  bool          `json:"success"`
	Steps    MetricSummary `json:"steps"`
	Water    MetricSummary `json:"water"`
	Calories MetricSummary `json:"calories"`
}
