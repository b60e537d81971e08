package model

import "time"

// HealthData is a single weight measurement. UserID references a User by
// value only; the user is not required to exist.
type HealthData struct {
	ID     string    `json:"id,omitempty"` // assigned by the store
	UserID string    `json:"user_id"`
	Date   time.Time `json:"date"`
	Weight float64   `json:"weight"`
}
