package domain

import (
	"strings"
	"time"
)

// MaxEmailLength is the longest email address accepted at registration.
const MaxEmailLength = 254

// User models a registered account. The password hash is opaque to every
// layer except the auth service and is never serialised.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// NormalizeEmail lowercases and trims an email address. Email comparison is
// case-insensitive everywhere, so normalisation happens before any store access.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidEmail reports whether email passes the registration format check.
func ValidEmail(email string) bool {
	return email != "" && len(email) <= MaxEmailLength && strings.Contains(email, "@")
}
