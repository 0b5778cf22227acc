// Package roster computes the filtered and sorted client/coach lists every
// dashboard screen consumes. All functions are pure: they never mutate their
// input and always return a fresh slice.
package roster

import (
	"slices"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/peakform/coachdesk/internal/dashboard/domain"
)

// Status filter values. inactive and lead are umbrella filters covering two
// statuses each; no-call and no-plan are the role-specific variants used by
// coach rosters.
const (
	StatusAll      = "all"
	StatusActive   = "active"
	StatusInactive = "inactive"
	StatusLead     = "lead"
	StatusNoCall   = "no-call"
	StatusNoPlan   = "no-plan"
)

// Sort options.
const (
	SortAZ     = "a-z"
	SortZA     = "z-a"
	SortNewest = "newest"
)

// Query is the roster view state: free-text search, a status filter and a
// sort option. Zero values mean "match everything, keep input order".
type Query struct {
	Search string
	Status string
	Sort   string
}

// Clients filters then sorts list according to q.
func Clients(list []domain.Client, q Query) []domain.Client {
	return SortClients(FilterClients(list, q), q.Sort)
}

// FilterClients returns the subset of list matching the query's search text
// and status filter. Search is a case-insensitive substring match against
// full name OR email; an empty search matches all. Unknown status filters
// pass everything through, like "all".
func FilterClients(list []domain.Client, q Query) []domain.Client {
	search := strings.ToLower(strings.TrimSpace(q.Search))

	out := make([]domain.Client, 0, len(list))
	for _, c := range list {
		if search != "" &&
			!strings.Contains(strings.ToLower(c.FullName), search) &&
			!strings.Contains(strings.ToLower(c.Email), search) {
			continue
		}
		if !matchStatus(c, q.Status) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func matchStatus(c domain.Client, filter string) bool {
	switch filter {
	case StatusActive:
		return c.Status == domain.ClientActive
	case StatusInactive:
		return c.Status == domain.ClientInactive || c.Status == domain.ClientPaused
	case StatusLead:
		return c.Status == domain.ClientLead || c.Status == domain.ClientNewLead
	case StatusNoCall:
		return !c.OnboardingCallDone
	case StatusNoPlan:
		return c.WorkoutPlanLink == ""
	default:
		// "", "all" and unknown filters are a pass-through.
		return true
	}
}

// SortClients returns a sorted copy of list. a-z and z-a compare full names
// with a locale-aware collator, falling back to the empty string for missing
// names; newest orders by descending numeric id, the insertion-order proxy
// the dashboards have always used. Equal keys keep their relative input
// order. Unknown options return the list unchanged.
func SortClients(list []domain.Client, option string) []domain.Client {
	out := slices.Clone(list)

	switch option {
	case SortAZ:
		col := newCollator()
		sort.SliceStable(out, func(i, j int) bool {
			return col.CompareString(out[i].FullName, out[j].FullName) < 0
		})
	case SortZA:
		col := newCollator()
		sort.SliceStable(out, func(i, j int) bool {
			return col.CompareString(out[j].FullName, out[i].FullName) < 0
		})
	case SortNewest:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].ID > out[j].ID
		})
	}

	return out
}

// CoachQuery mirrors Query for the team roster. Coach status filters are the
// coach lifecycle states rather than the client ones.
type CoachQuery struct {
	Search string
	Status string
	Sort   string
}

// Coaches filters then sorts the team roster.
func Coaches(list []domain.Coach, q CoachQuery) []domain.Coach {
	search := strings.ToLower(strings.TrimSpace(q.Search))

	out := make([]domain.Coach, 0, len(list))
	for _, c := range list {
		if search != "" &&
			!strings.Contains(strings.ToLower(c.Name), search) &&
			!strings.Contains(strings.ToLower(c.Email), search) {
			continue
		}
		if q.Status != "" && q.Status != StatusAll && c.Status != q.Status {
			continue
		}
		out = append(out, c)
	}

	switch q.Sort {
	case SortAZ:
		col := newCollator()
		sort.SliceStable(out, func(i, j int) bool {
			return col.CompareString(out[i].Name, out[j].Name) < 0
		})
	case SortZA:
		col := newCollator()
		sort.SliceStable(out, func(i, j int) bool {
			return col.CompareString(out[j].Name, out[i].Name) < 0
		})
	}

	return out
}

// Collators are stateful and not safe for concurrent use, so each sort gets
// its own.
func newCollator() *collate.Collator {
	return collate.New(language.Und)
}
