package model

import "time"

// User represents a registered operator of the dashboard.
type User struct {
	ID           int64
	Email        string
	FullName     string
	PasswordHash string
	CreatedAt    time.Time
}

// Identity is the authenticated principal resolved for a request.
type Identity struct {
	UserID   int64  `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
}

// IdentityOf strips credentials from u.
func IdentityOf(u *User) Identity {
	return Identity{UserID: u.ID, Email: u.Email, FullName: u.FullName}
}

// Registration carries the sign-up form.
type Registration struct {
	FullName     string
	Username     string
	Password     string
	Confirmation string
}
