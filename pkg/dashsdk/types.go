package dashsdk

import "time"

// ErrorResponse is the error body every endpoint returns.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
}

// HealthResponse is returned by the liveness probe.
type HealthResponse struct {
	Status  string `json:"status"`
	Uptime  string `json:"uptime"`
	Version string `json:"version"`
}

// ReadyResponse is returned by the readiness probe.
type ReadyResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// Client is a roster row with its derived risk flags.
type Client struct {
	ID                  int64      `json:"id"`
	FullName            string     `json:"full_name"`
	Email               string     `json:"email"`
	Status              string     `json:"status"`
	CoachID             string     `json:"coach_id,omitempty"`
	PackageName         string     `json:"package_name,omitempty"`
	SubscriptionEndDate *time.Time `json:"subscription_end_date,omitempty"`
	ActiveSubscription  bool       `json:"active_subscription"`
	OnboardingCallDone  bool       `json:"onboarding_call_done"`
	WorkoutPlanLink     string     `json:"workout_plan_link,omitempty"`
	InitialWeight       float64    `json:"initial_weight,omitempty"`
	WeightKG            float64    `json:"weight_kg,omitempty"`

	AttentionNeeded    bool       `json:"attention_needed"`
	ExpiringSoon       bool       `json:"expiring_soon"`
	NewLeadWithoutPlan bool       `json:"new_lead_without_plan"`
	Adherence          *Adherence `json:"adherence,omitempty"`
}

// Adherence is a client's stored pipeline score.
type Adherence struct {
	Score      int       `json:"score"`
	Improving  bool      `json:"improving"`
	ComputedAt time.Time `json:"computed_at"`
}

// ClientStatusRequest moves a client between lifecycle statuses.
type ClientStatusRequest struct {
	Status string `json:"status"`
}

// CheckIn is one client progress record.
type CheckIn struct {
	ID       string    `json:"id"`
	ClientID int64     `json:"client_id"`
	Date     time.Time `json:"date"`
	Weight   float64   `json:"weight"`
	Calories int       `json:"calories"`
	Reviewed bool      `json:"reviewed"`
}

// CheckInRequest records a new check-in.
type CheckInRequest struct {
	Date     *time.Time `json:"date,omitempty"`
	Weight   float64    `json:"weight"`
	Calories int        `json:"calories"`
}

// Coach is a team roster row with load figures.
type Coach struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Role           string  `json:"role"`
	Status         string  `json:"status"`
	Rating         float64 `json:"rating"`
	Specialization string  `json:"specialization,omitempty"`
	ImageURL       string  `json:"image_url,omitempty"`
	ClientCount    int     `json:"client_count"`
	LoadPercentage int     `json:"load_percentage"`
	InactiveRate   float64 `json:"inactive_rate"`
}

// TeamStats are the organisation-wide rollups.
type TeamStats struct {
	AverageRating float64 `json:"average_rating"`
	TotalClients  int     `json:"total_clients"`
	ActiveClients int     `json:"active_clients"`
	RetentionRate float64 `json:"retention_rate"`
}

// InviteMintRequest creates a coach invitation.
type InviteMintRequest struct {
	Email     string `json:"email"`
	Role      string `json:"role"`
	ExpiresAt int64  `json:"expires_at,omitempty"` // unix seconds, optional
}

// InviteMintResponse carries the one-time raw token.
type InviteMintResponse struct {
	InvitationID string `json:"invitation_id"`
	InviteToken  string `json:"invite_token"`
	ExpiresAt    int64  `json:"expires_at"`
}

// InviteRedeemRequest exchanges a token for a coach account.
type InviteRedeemRequest struct {
	Token string `json:"token"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// InviteRedeemResponse describes the newly created coach.
type InviteRedeemResponse struct {
	CoachID string `json:"coach_id"`
	Role    string `json:"role"`
	Status  string `json:"status"`
}

// IntelligenceItem is one advisory feed entry.
type IntelligenceItem struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Severity  string    `json:"severity"`
	Message   string    `json:"message"`
	ClientID  *int64    `json:"client_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ResolveResponse reports whether the call performed the transition.
type ResolveResponse struct {
	Resolved bool `json:"resolved"`
}

// ChurnRisk is one churn report row.
type ChurnRisk struct {
	ID          string    `json:"id"`
	ClientID    int64     `json:"client_id"`
	RiskLevel   string    `json:"risk_level"`
	RiskFactors []string  `json:"risk_factors"`
	Message     string    `json:"message,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// RevenuePlan is one bucket of the revenue-by-plan series.
type RevenuePlan struct {
	Plan    string  `json:"plan"`
	Revenue float64 `json:"revenue"`
	Clients int     `json:"clients"`
}

// RevenuePoint is one bucket of a revenue time series.
type RevenuePoint struct {
	Period  string  `json:"period"`
	Revenue float64 `json:"revenue"`
}

// CoachAdherence is the per-coach slice of the team adherence rollup.
type CoachAdherence struct {
	CoachID   string `json:"coach_id"`
	CoachName string `json:"coach_name"`
	Average   int    `json:"average"`
}

// DashboardStats is the admin dashboard rollup.
type DashboardStats struct {
	ActiveClients        int              `json:"active_clients"`
	MonthlyRevenue       float64          `json:"monthly_revenue"`
	PendingAlerts        int              `json:"pending_alerts"`
	RevenueByPlan        []RevenuePlan    `json:"revenue_by_plan"`
	RevenueOverTime      []RevenuePoint   `json:"revenue_over_time"`
	RevenueByYear        []RevenuePoint   `json:"revenue_by_year"`
	TeamAdherence        int              `json:"team_adherence"`
	TeamAdherenceDetails []CoachAdherence `json:"team_adherence_details"`
}

// RevenueImportRequest replaces the stored revenue series.
type RevenueImportRequest struct {
	ByPlan   []RevenuePlan  `json:"by_plan"`
	OverTime []RevenuePoint `json:"over_time"`
	ByYear   []RevenuePoint `json:"by_year"`
}

// Preference is per-coach dashboard UI state.
type Preference struct {
	Theme       string `json:"theme"`
	SidebarOpen bool   `json:"sidebar_open"`
}

// Event is one server-sent dashboard notification.
type Event struct {
	Kind    string         `json:"kind"`
	Payload map[string]any `json:"payload,omitempty"`
	At      time.Time      `json:"at"`
}
