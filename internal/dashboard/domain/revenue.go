package domain

// RevenuePlan is one bucket of the revenue-by-plan series. The series is
// stored pre-sorted by revenue descending; the "top performer" is its first
// element and no client-side sorting happens.
type RevenuePlan struct {
	Plan    string
	Revenue float64
	Clients int
}

// RevenuePoint is one bucket of a revenue time series (month or year).
type RevenuePoint struct {
	Period  string
	Revenue float64
}

// CoachAdherence is the per-coach slice of the team adherence rollup.
type CoachAdherence struct {
	CoachID   string
	CoachName string
	Average   int
}

// DashboardStats is the admin dashboard rollup. Fetch failures for a
// component degrade that component to its zero value rather than failing the
// whole payload.
type DashboardStats struct {
	ActiveClients        int
	MonthlyRevenue       float64
	PendingAlerts        int
	RevenueByPlan        []RevenuePlan
	RevenueOverTime      []RevenuePoint
	RevenueByYear        []RevenuePoint
	TeamAdherence        int
	TeamAdherenceDetails []CoachAdherence
}
