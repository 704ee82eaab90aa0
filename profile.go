package solace

import (
	"strings"
	"time"
)

// UserRole is the caller's role as reported by the remote service.
type UserRole string

const (
	RoleGuest UserRole = "guest"
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// ParseUserRole maps a boundary role string onto the closed scale.
// Unknown values map to RoleGuest.
func ParseUserRole(s string) UserRole {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "user":
		return RoleUser
	case "admin":
		return RoleAdmin
	default:
		return RoleGuest
	}
}

// UserProfile is the caller's stored profile.
type UserProfile struct {
	Email        string
	Role         UserRole
	ConsentGiven bool
	CreatedAt    time.Time
}

// AdminAnalytics aggregates service-wide usage counters. Read-only.
type AdminAnalytics struct {
	TotalUsers       int
	AverageMoodScore float64
	AlertCounts      map[RiskLevel]int
	TotalSessions    int
	TotalMessages    int
}

// AdminLog is one audit log entry. Read-only.
type AdminLog struct {
	AdminID string
	Action  string
	At      time.Time
}
