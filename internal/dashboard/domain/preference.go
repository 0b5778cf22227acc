package domain

import "time"

// Theme values for dashboard preferences.
const (
	ThemeSystem = "system"
	ThemeLight  = "light"
	ThemeDark   = "dark"
)

// Preference holds per-coach UI state persisted behind the storage port so
// no component reads ambient global state.
type Preference struct {
	CoachID     string
	Theme       string
	SidebarOpen bool
	UpdatedAt   time.Time
}

// DefaultPreference is returned when a coach has never saved preferences.
func DefaultPreference(coachID string) Preference {
	return Preference{
		CoachID:     coachID,
		Theme:       ThemeSystem,
		SidebarOpen: true,
	}
}
