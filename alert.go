package solace

import (
	"strconv"
	"strings"
	"time"
)

// RiskLevel is the closed severity scale for risk alerts.
type RiskLevel string

const (
	RiskLow     RiskLevel = "low"
	RiskMedium  RiskLevel = "medium"
	RiskHigh    RiskLevel = "high"
	RiskExtreme RiskLevel = "extreme"
)

// ParseRiskLevel maps a loosely-typed severity string from the service
// boundary onto the closed scale. Unknown values map to RiskLow so that an
// unrecognized severity is treated as informational, not as a crisis.
func ParseRiskLevel(s string) RiskLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "medium":
		return RiskMedium
	case "high":
		return RiskHigh
	case "extreme":
		return RiskExtreme
	default:
		return RiskLow
	}
}

// Severe reports whether the level warrants the crisis overlay.
func (l RiskLevel) Severe() bool {
	return l == RiskHigh || l == RiskExtreme
}

// RiskAlert is a wellness alert recorded by the remote service. The client
// only reads active (unresolved) alerts; it never mutates severity.
type RiskAlert struct {
	UserID        string
	Source        string
	Severity      RiskLevel
	TriggerReason string
	CreatedAt     time.Time
	Resolved      bool
}

// Fingerprint identifies an alert across polls of the active-alert list, so
// a dismissed overlay is not re-opened by re-observing the same alert.
func (a RiskAlert) Fingerprint() string {
	return a.UserID + "|" + a.Source + "|" + strconv.FormatInt(a.CreatedAt.UnixNano(), 10)
}
