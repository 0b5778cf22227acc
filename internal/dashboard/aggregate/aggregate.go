// Package aggregate rolls the client and coach collections up into the
// per-coach and team-wide figures the admin dashboard renders. Pure
// functions over in-memory collections; inputs are never mutated.
package aggregate

import (
	"math"

	"github.com/peakform/coachdesk/internal/dashboard/domain"
)

// CoachLoad is a coach's roster burden. ClientCount is the raw assignment
// count; LoadPercentage is capped at 100 for display while the raw count is
// preserved.
type CoachLoad struct {
	Coach          domain.Coach
	ClientCount    int
	LoadPercentage int
	InactiveRate   float64
}

// TeamStats are organisation-wide rollups.
type TeamStats struct {
	AverageRating float64
	TotalClients  int
	ActiveClients int
	RetentionRate float64
}

// LoadPercentage is round(count/capacity*100), capped at 100. A zero or
// negative capacity yields 0 rather than dividing by zero.
func LoadPercentage(count, capacity int) int {
	if capacity <= 0 {
		return 0
	}
	pct := int(math.Round(float64(count) / float64(capacity) * 100))
	if pct > 100 {
		return 100
	}
	return pct
}

// Loads computes the per-coach load figures. Output order follows the
// coaches input.
func Loads(coaches []domain.Coach, clients []domain.Client) []CoachLoad {
	assigned := make(map[string][]domain.Client, len(coaches))
	for _, c := range clients {
		if c.CoachID != "" {
			assigned[c.CoachID] = append(assigned[c.CoachID], c)
		}
	}

	out := make([]CoachLoad, 0, len(coaches))
	for _, coach := range coaches {
		roster := assigned[coach.ID]

		var inactive int
		for _, c := range roster {
			if c.Status == domain.ClientInactive || c.Status == domain.ClientPaused {
				inactive++
			}
		}

		load := CoachLoad{
			Coach:          coach,
			ClientCount:    len(roster),
			LoadPercentage: LoadPercentage(len(roster), coach.Capacity()),
		}
		if len(roster) > 0 {
			load.InactiveRate = float64(inactive) / float64(len(roster))
		}
		out = append(out, load)
	}
	return out
}

// Team computes the organisation rollups. Average rating is 0 with no
// coaches; retention is 100 with no clients.
func Team(coaches []domain.Coach, clients []domain.Client) TeamStats {
	stats := TeamStats{TotalClients: len(clients)}

	if len(coaches) > 0 {
		var sum float64
		for _, c := range coaches {
			sum += c.Rating
		}
		stats.AverageRating = sum / float64(len(coaches))
	}

	for _, c := range clients {
		if c.Status == domain.ClientActive {
			stats.ActiveClients++
		}
	}

	if stats.TotalClients == 0 {
		stats.RetentionRate = 100
	} else {
		stats.RetentionRate = float64(stats.ActiveClients) / float64(stats.TotalClients) * 100
	}

	return stats
}

// TopPerformer returns the leading plan of a pre-sorted revenue-by-plan
// series: simply its first element. The series arrives sorted from the
// store; no sorting happens here.
func TopPerformer(plans []domain.RevenuePlan) (domain.RevenuePlan, bool) {
	if len(plans) == 0 {
		return domain.RevenuePlan{}, false
	}
	return plans[0], true
}
