package scoring

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/peakform/coachdesk/internal/dashboard/domain"
)

var now = time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)

func endingIn(d time.Duration) *time.Time {
	t := now.Add(d)
	return &t
}

func TestAttentionNeeded(t *testing.T) {
	t.Parallel()

	t.Run("inactive subscription always needs attention", func(t *testing.T) {
		c := domain.Client{ActiveSubscription: false, SubscriptionEndDate: endingIn(365 * 24 * time.Hour)}
		require.True(t, AttentionNeeded(c, now))

		c.SubscriptionEndDate = nil
		require.True(t, AttentionNeeded(c, now))
	})

	t.Run("end date inside the window needs attention", func(t *testing.T) {
		c := domain.Client{ActiveSubscription: true, SubscriptionEndDate: endingIn(3 * 24 * time.Hour)}
		require.True(t, AttentionNeeded(c, now))
	})

	t.Run("already expired needs attention", func(t *testing.T) {
		c := domain.Client{ActiveSubscription: true, SubscriptionEndDate: endingIn(-24 * time.Hour)}
		require.True(t, AttentionNeeded(c, now))
	})

	t.Run("end date beyond the window is fine", func(t *testing.T) {
		c := domain.Client{ActiveSubscription: true, SubscriptionEndDate: endingIn(8 * 24 * time.Hour)}
		require.False(t, AttentionNeeded(c, now))
	})

	t.Run("active with no end date is fine", func(t *testing.T) {
		c := domain.Client{ActiveSubscription: true}
		require.False(t, AttentionNeeded(c, now))
	})
}

func TestExpiringSoon(t *testing.T) {
	t.Parallel()

	t.Run("inside window and still in the future", func(t *testing.T) {
		c := domain.Client{SubscriptionEndDate: endingIn(2 * 24 * time.Hour)}
		require.True(t, ExpiringSoon(c, now))
	})

	t.Run("already expired is excluded", func(t *testing.T) {
		c := domain.Client{SubscriptionEndDate: endingIn(-time.Hour)}
		require.False(t, ExpiringSoon(c, now))
	})

	t.Run("beyond the window is excluded", func(t *testing.T) {
		c := domain.Client{SubscriptionEndDate: endingIn(10 * 24 * time.Hour)}
		require.False(t, ExpiringSoon(c, now))
	})
}

func TestNewLeadWithoutPlan(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		client domain.Client
		want   bool
	}{
		{"lead without plan", domain.Client{Status: domain.ClientLead}, true},
		{"new_lead without plan", domain.Client{Status: domain.ClientNewLead}, true},
		{"pending without plan", domain.Client{Status: domain.ClientPending}, true},
		{"lead with plan", domain.Client{Status: domain.ClientLead, WorkoutPlanLink: "https://plans/x"}, false},
		{"active without plan", domain.Client{Status: domain.ClientActive}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, NewLeadWithoutPlan(tc.client))
		})
	}
}

func TestSortByRisk(t *testing.T) {
	t.Parallel()

	reports := []domain.ChurnRisk{
		{ID: "a", RiskLevel: domain.RiskNormal},
		{ID: "b", RiskLevel: domain.RiskHigh},
		{ID: "c", RiskLevel: domain.RiskNormal},
		{ID: "d", RiskLevel: domain.RiskHigh},
	}

	got := SortByRisk(reports)

	require.Equal(t, "b", got[0].ID)
	require.Equal(t, "d", got[1].ID)
	// Non-high entries keep their relative order.
	require.Equal(t, "a", got[2].ID)
	require.Equal(t, "c", got[3].ID)
	// Input untouched.
	require.Equal(t, "a", reports[0].ID)
}

func TestAtRisk(t *testing.T) {
	t.Parallel()

	require.False(t, domain.ChurnRisk{}.AtRisk())
	require.True(t, domain.ChurnRisk{RiskFactors: []string{"missed check-ins"}}.AtRisk())
}

type fakeSource struct {
	rows []domain.AdherenceScore
}

func (f fakeSource) ListScoresByCoach(ctx context.Context, coachID string) ([]domain.AdherenceScore, error) {
	return f.rows, nil
}

func TestStoredScoresClampsToContract(t *testing.T) {
	t.Parallel()

	src := fakeSource{rows: []domain.AdherenceScore{
		{ClientID: 1, Score: 85, Improving: true},
		{ClientID: 2, Score: 140},
		{ClientID: 3, Score: -5},
	}}

	got, err := StoredScores{Source: src}.ByCoach(context.Background(), "c1")
	require.NoError(t, err)
	require.Equal(t, 85, got[1].Score)
	require.True(t, got[1].Improving)
	require.Equal(t, 100, got[2].Score)
	require.Equal(t, 0, got[3].Score)
}

func TestTeamAverage(t *testing.T) {
	t.Parallel()

	require.Equal(t, 0, TeamAverage(nil))
	require.Equal(t, 80, TeamAverage([]domain.AdherenceScore{{Score: 70}, {Score: 90}}))
}
