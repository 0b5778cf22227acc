package domain

import "time"

// CheckIn is a client-submitted progress record. Clients create them; the
// only mutation in this system is a coach flipping Reviewed.
type CheckIn struct {
	ID        string
	ClientID  int64
	Date      time.Time
	Weight    float64
	Calories  int
	Reviewed  bool
	CreatedAt time.Time
}
