package user

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleCandidate = "CANDIDATE"
	RoleRecruiter = "RECRUITER"
	RoleAdmin     = "ADMIN"
)

func IsValidRole(role string) bool {
	switch role {
	case RoleCandidate, RoleRecruiter, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID           uuid.UUID  `json:"id"`
	Email        string     `json:"email"`
	FullName     string     `json:"full_name"`
	PasswordHash string     `json:"-"`
	Role         string     `json:"role"`
	CompanyID    *uuid.UUID `json:"company_id,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// Profile holds the candidate's self-description. Skills is a comma-separated
// free-text string; the scorer parses it ad hoc (see domain/scoring).
type Profile struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	Headline   string    `json:"headline,omitempty"`
	Location   string    `json:"location,omitempty"`
	Experience string    `json:"experience,omitempty"`
	Education  string    `json:"education,omitempty"`
	Skills     string    `json:"skills,omitempty"`
	AvatarURL  string    `json:"avatar_url,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// JobAlert is a saved search. Empty fields are wildcards.
type JobAlert struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Keywords  string    `json:"keywords,omitempty"`
	Location  string    `json:"location,omitempty"`
	Type      string    `json:"type,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
