package solace

import "context"

// Backend is the typed gateway to the remote wellness service.
//
// Implementations own no state beyond a live/not-live connection flag: every
// method returns ErrNotConnected without issuing a call while the connection
// is not live, and wraps ErrRemoteCall on network or service failure. All
// methods are safe for concurrent use.
type Backend interface {
	// Ready reports whether the connection is live.
	Ready() bool

	// Chat session lifecycle and messaging.
	CreateChatSession(ctx context.Context) (uint64, error)
	EndChatSession(ctx context.Context, sessionID uint64) error
	SendChatMessage(ctx context.Context, sessionID uint64, text string) (string, error)
	GetChatMessages(ctx context.Context, sessionID uint64) ([]HistoryMessage, error)

	// Mood tracking.
	SubmitMoodEntry(ctx context.Context, score int, emotionLabel, journalText string) error
	GetMoodTrend(ctx context.Context) ([]TrendPoint, error)
	GetMoodHistory(ctx context.Context, userID string) ([]MoodEntry, error)

	// Risk alerts.
	GetActiveRiskAlerts(ctx context.Context) ([]RiskAlert, error)
	ResolveRiskAlert(ctx context.Context, userID string, alertIndex int) error

	// Coping tools.
	ListCopingTools(ctx context.Context) ([]CopingTool, error)
	CreateCopingTool(ctx context.Context, tool CopingTool) (uint64, error)
	UpdateCopingTool(ctx context.Context, toolID uint64, tool CopingTool) error
	DeleteCopingTool(ctx context.Context, toolID uint64) error

	// Profile.
	GetUserProfile(ctx context.Context) (*UserProfile, error)
	SaveUserProfile(ctx context.Context, profile UserProfile) error
	RegisterUser(ctx context.Context, email string, consentGiven bool) error

	// Admin-only reads.
	GetAdminAnalytics(ctx context.Context) (*AdminAnalytics, error)
	GetAdminLogs(ctx context.Context) ([]AdminLog, error)
	GetAnonymizedSessions(ctx context.Context) ([]string, error)
	GetAllUsers(ctx context.Context) ([]UserProfile, error)
}
