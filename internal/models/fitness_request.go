package models

// FitnessEntryRequest represents the request body for recording a measurement.
// Email is optional; when present it must match the authenticated user.
type FitnessEntryRequest struct {
	Email string   `json:"email"`
	Type  string   `json:"type" binding:"required"`
	Value *float64 `json:"value" binding:"required"` // Pointer so that 0 still counts as present
}
