package entities

import "time"

// DateLayout is the calendar-date format entries are stored and served in
const DateLayout = "2006-01-02"

// Well-known metric types. Any other string is accepted as a type too.
const (
	TypeDailySteps     = "dailySteps"
	TypeWaterIntake    = "waterIntake"
	TypeCaloriesIntake = "caloriesIntake"
)

// FitnessEntry is a single recorded measurement for a user, keyed by email
type FitnessEntry struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Type      string    `json:"type"`
	Value     float64   `json:"value"`
	Date      string    `json:"date"` // YYYY-MM-DD, assigned server-side
	CreatedAt time.Time `json:"createdAt"`
}
