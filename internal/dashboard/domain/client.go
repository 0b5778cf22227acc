package domain

import "time"

// Client statuses. Status drives every roster filter and risk
// classification.
const (
	ClientActive   = "active"
	ClientInactive = "inactive"
	ClientPaused   = "paused"
	ClientLead     = "lead"
	ClientNewLead  = "new_lead"
	ClientPending  = "pending"
)

type Client struct {
	ID                  int64
	FullName            string
	Email               string
	Status              string
	CoachID             string // empty when unassigned
	PackageName         string
	SubscriptionEndDate *time.Time
	ActiveSubscription  bool
	OnboardingCallDone  bool
	WorkoutPlanLink     string // empty when no plan has been issued
	InitialWeight       float64
	WeightKG            float64
	ActiveStatusAt      time.Time
	CreatedAt           time.Time
}
