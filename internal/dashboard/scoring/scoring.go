// Package scoring derives client risk classifications from subscription
// state and consumes adherence scores produced by the external scoring
// pipeline. The adherence formula itself is not implemented here: scores are
// data, and this package only enforces the consumer contract (score in
// [0,100] plus an improving flag).
package scoring

import (
	"context"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/peakform/coachdesk/internal/dashboard/domain"
)

// ExpiryWindow is the forward-looking window for subscription expiry
// classifications.
const ExpiryWindow = 7 * 24 * time.Hour

// AttentionNeeded reports whether a client needs subscription attention: the
// subscription is inactive, or its end date falls inside the forward expiry
// window. Already-expired dates count. Clients with no end date on an active
// subscription do not.
func AttentionNeeded(c domain.Client, now time.Time) bool {
	if !c.ActiveSubscription {
		return true
	}
	if c.SubscriptionEndDate == nil {
		return false
	}
	return !c.SubscriptionEndDate.After(now.Add(ExpiryWindow))
}

// ExpiringSoon is the same window as AttentionNeeded but excludes
// already-expired subscriptions: the end date must still be in the future.
func ExpiringSoon(c domain.Client, now time.Time) bool {
	if c.SubscriptionEndDate == nil {
		return false
	}
	end := *c.SubscriptionEndDate
	return end.After(now) && !end.After(now.Add(ExpiryWindow))
}

// NewLeadWithoutPlan reports whether a client is a lead (any status
// containing "lead", or pending) that has not been issued a workout plan.
func NewLeadWithoutPlan(c domain.Client) bool {
	isLead := strings.Contains(strings.ToLower(c.Status), "lead") ||
		c.Status == domain.ClientPending
	return isLead && c.WorkoutPlanLink == ""
}

// SortByRisk orders churn reports for display: high risk first, everything
// else keeps its relative input order. Returns a copy.
func SortByRisk(reports []domain.ChurnRisk) []domain.ChurnRisk {
	out := slices.Clone(reports)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].RiskLevel == domain.RiskHigh && out[j].RiskLevel != domain.RiskHigh
	})
	return out
}

// ClampScore forces a score into the [0,100] contract range. Out-of-range
// rows from the pipeline are clamped, never rejected.
func ClampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// ScoreSource is the read side of the adherence pipeline's output.
type ScoreSource interface {
	ListScoresByCoach(ctx context.Context, coachID string) ([]domain.AdherenceScore, error)
}

// Strategy supplies per-client adherence scores for a coach's roster.
// Implementations may compute scores however they like; consumers only rely
// on the [0,100] score plus trend contract.
type Strategy interface {
	ByCoach(ctx context.Context, coachID string) (map[int64]domain.AdherenceScore, error)
}

// StoredScores is the default Strategy: a passthrough over the scores the
// external pipeline has persisted.
type StoredScores struct {
	Source ScoreSource
}

func (s StoredScores) ByCoach(ctx context.Context, coachID string) (map[int64]domain.AdherenceScore, error) {
	rows, err := s.Source.ListScoresByCoach(ctx, coachID)
	if err != nil {
		return nil, err
	}

	out := make(map[int64]domain.AdherenceScore, len(rows))
	for _, row := range rows {
		row.Score = ClampScore(row.Score)
		out[row.ClientID] = row
	}
	return out, nil
}

// TeamAverage is the arithmetic mean of the given scores, 0 when empty.
func TeamAverage(scores []domain.AdherenceScore) int {
	if len(scores) == 0 {
		return 0
	}
	var sum int
	for _, s := range scores {
		sum += ClampScore(s.Score)
	}
	return sum / len(scores)
}
