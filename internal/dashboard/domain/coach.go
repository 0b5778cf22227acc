package domain

import "time"

// Coach roles.
const (
	RoleAdmin     = "admin"
	RoleHeadCoach = "head_coach"
	RoleCoach     = "coach"
)

// Coach statuses.
const (
	CoachPending   = "pending"
	CoachActive    = "active"
	CoachSuspended = "suspended"
)

// DefaultMaxClients applies when a coach has no configured capacity.
const DefaultMaxClients = 30

type Coach struct {
	ID             string // matches the identity provider's subject
	Name           string
	Email          string
	Role           string
	Status         string
	Rating         float64 // 0-5
	MaxClients     int
	MaxLoad        int // legacy capacity field, consulted when MaxClients is 0
	ImageURL       string
	Specialization string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Capacity returns the configured client capacity, preferring MaxClients over
// the legacy MaxLoad, defaulting to DefaultMaxClients.
func (c Coach) Capacity() int {
	if c.MaxClients > 0 {
		return c.MaxClients
	}
	if c.MaxLoad > 0 {
		return c.MaxLoad
	}
	return DefaultMaxClients
}

// ValidRole reports whether role is one of the known coach roles.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleHeadCoach, RoleCoach:
		return true
	}
	return false
}
