package model

import (
	"time"
)

const (
	RoleCustomer = "customer"
	RoleProvider = "provider"
)

// Credentials as persisted. Password always holds a bcrypt hash; use
// service.NewCredentials to build one from user input.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type User struct {
	UserID      string      `json:"user_id,omitempty"` // assigned by the store
	Name        string      `json:"name"`
	Role        string      `json:"role"`
	State       string      `json:"state"`
	DOB         time.Time   `json:"dob"`
	Credentials Credentials `json:"credentials"`
}
