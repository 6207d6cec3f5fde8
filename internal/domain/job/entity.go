package job

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("job not found")

const (
	TypeFullTime   = "FULL_TIME"
	TypePartTime   = "PART_TIME"
	TypeContract   = "CONTRACT"
	TypeInternship = "INTERNSHIP"
)

func IsValidType(t string) bool {
	switch t {
	case TypeFullTime, TypePartTime, TypeContract, TypeInternship:
		return true
	}
	return false
}

type Job struct {
	ID           uuid.UUID `json:"id"`
	CompanyID    uuid.UUID `json:"company_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Requirements string    `json:"requirements,omitempty"`
	Location     string    `json:"location,omitempty"`
	Type         string    `json:"type"`
	IsActive     bool      `json:"is_active"`
	IsApproved   bool      `json:"is_approved"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type CompanySummary struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	LogoURL    string    `json:"logo_url,omitempty"`
	IsVerified bool      `json:"is_verified"`
}

// Candidate is a job enriched with the denormalized signals the
// recommendation scorer reads: the owning company summary and the
// application/view counters.
type Candidate struct {
	Job
	Company          CompanySummary `json:"company"`
	ApplicationCount int            `json:"application_count"`
	ViewCount        int            `json:"view_count"`
}
