package models

import "time"

type UserRole string

const (
	RoleScorekeeper UserRole = "scorekeeper"
	RoleOrganizer   UserRole = "organizer"
)

type User struct {
	ID           int       `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         UserRole  `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}
