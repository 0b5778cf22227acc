package domain

import "time"

// Intelligence item severities.
const (
	SeverityInfo     = "info"
	SeverityWarning  = "warning"
	SeverityCritical = "critical"
)

// Churn risk levels.
const (
	RiskHigh   = "high"
	RiskNormal = "normal"
)

// IntelligenceItem is a server-generated advisory surfaced to admins. This
// layer consumes and resolves items; it never constructs them.
type IntelligenceItem struct {
	ID        string
	Type      string
	Severity  string
	Message   string
	ClientID  *int64 // optional subject of the advisory
	Resolved  bool
	CreatedAt time.Time
}

// ChurnRisk is a server-produced advisory that a client may disengage, with
// the contributing factors. A client is "at risk" iff RiskFactors is
// non-empty.
type ChurnRisk struct {
	ID          string
	ClientID    int64
	RiskLevel   string
	RiskFactors []string
	Message     string
	CreatedAt   time.Time
}

// AtRisk reports whether the report carries any contributing factors.
func (r ChurnRisk) AtRisk() bool { return len(r.RiskFactors) > 0 }

// AdherenceScore is a per-client compliance metric produced by an external
// scoring pipeline. The consumer contract is Score in [0,100] plus an
// "improving" trend flag; the formula itself lives outside this codebase.
type AdherenceScore struct {
	ClientID   int64
	Score      int
	Improving  bool
	ComputedAt time.Time
}
