// Package mock provides test doubles for solace interfaces using function
// fields. Set the function fields for the methods a test exercises; methods
// with a nil field return zero values, and Ready defaults to true.
package mock

import (
	"context"

	"github.com/solace-dev/solace"
)

// Interface compliance check.
var _ solace.Backend = (*Backend)(nil)

// Backend is a test double for solace.Backend.
type Backend struct {
	ReadyFn func() bool

	CreateChatSessionFn func(ctx context.Context) (uint64, error)
	EndChatSessionFn    func(ctx context.Context, sessionID uint64) error
	SendChatMessageFn   func(ctx context.Context, sessionID uint64, text string) (string, error)
	GetChatMessagesFn   func(ctx context.Context, sessionID uint64) ([]solace.HistoryMessage, error)

	SubmitMoodEntryFn func(ctx context.Context, score int, emotionLabel, journalText string) error
	GetMoodTrendFn    func(ctx context.Context) ([]solace.TrendPoint, error)
	GetMoodHistoryFn  func(ctx context.Context, userID string) ([]solace.MoodEntry, error)

	GetActiveRiskAlertsFn func(ctx context.Context) ([]solace.RiskAlert, error)
	ResolveRiskAlertFn    func(ctx context.Context, userID string, alertIndex int) error

	ListCopingToolsFn  func(ctx context.Context) ([]solace.CopingTool, error)
	CreateCopingToolFn func(ctx context.Context, tool solace.CopingTool) (uint64, error)
	UpdateCopingToolFn func(ctx context.Context, toolID uint64, tool solace.CopingTool) error
	DeleteCopingToolFn func(ctx context.Context, toolID uint64) error

	GetUserProfileFn  func(ctx context.Context) (*solace.UserProfile, error)
	SaveUserProfileFn func(ctx context.Context, profile solace.UserProfile) error
	RegisterUserFn    func(ctx context.Context, email string, consentGiven bool) error

	GetAdminAnalyticsFn     func(ctx context.Context) (*solace.AdminAnalytics, error)
	GetAdminLogsFn          func(ctx context.Context) ([]solace.AdminLog, error)
	GetAnonymizedSessionsFn func(ctx context.Context) ([]string, error)
	GetAllUsersFn           func(ctx context.Context) ([]solace.UserProfile, error)
}

// Ready delegates to ReadyFn, defaulting to true.
func (b *Backend) Ready() bool {
	if b.ReadyFn != nil {
		return b.ReadyFn()
	}
	return true
}

func (b *Backend) CreateChatSession(ctx context.Context) (uint64, error) {
	if b.CreateChatSessionFn != nil {
		return b.CreateChatSessionFn(ctx)
	}
	return 0, nil
}

func (b *Backend) EndChatSession(ctx context.Context, sessionID uint64) error {
	if b.EndChatSessionFn != nil {
		return b.EndChatSessionFn(ctx, sessionID)
	}
	return nil
}

func (b *Backend) SendChatMessage(ctx context.Context, sessionID uint64, text string) (string, error) {
	if b.SendChatMessageFn != nil {
		return b.SendChatMessageFn(ctx, sessionID, text)
	}
	return "", nil
}

func (b *Backend) GetChatMessages(ctx context.Context, sessionID uint64) ([]solace.HistoryMessage, error) {
	if b.GetChatMessagesFn != nil {
		return b.GetChatMessagesFn(ctx, sessionID)
	}
	return nil, nil
}

func (b *Backend) SubmitMoodEntry(ctx context.Context, score int, emotionLabel, journalText string) error {
	if b.SubmitMoodEntryFn != nil {
		return b.SubmitMoodEntryFn(ctx, score, emotionLabel, journalText)
	}
	return nil
}

func (b *Backend) GetMoodTrend(ctx context.Context) ([]solace.TrendPoint, error) {
	if b.GetMoodTrendFn != nil {
		return b.GetMoodTrendFn(ctx)
	}
	return nil, nil
}

func (b *Backend) GetMoodHistory(ctx context.Context, userID string) ([]solace.MoodEntry, error) {
	if b.GetMoodHistoryFn != nil {
		return b.GetMoodHistoryFn(ctx, userID)
	}
	return nil, nil
}

func (b *Backend) GetActiveRiskAlerts(ctx context.Context) ([]solace.RiskAlert, error) {
	if b.GetActiveRiskAlertsFn != nil {
		return b.GetActiveRiskAlertsFn(ctx)
	}
	return nil, nil
}

func (b *Backend) ResolveRiskAlert(ctx context.Context, userID string, alertIndex int) error {
	if b.ResolveRiskAlertFn != nil {
		return b.ResolveRiskAlertFn(ctx, userID, alertIndex)
	}
	return nil
}

func (b *Backend) ListCopingTools(ctx context.Context) ([]solace.CopingTool, error) {
	if b.ListCopingToolsFn != nil {
		return b.ListCopingToolsFn(ctx)
	}
	return nil, nil
}

func (b *Backend) CreateCopingTool(ctx context.Context, tool solace.CopingTool) (uint64, error) {
	if b.CreateCopingToolFn != nil {
		return b.CreateCopingToolFn(ctx, tool)
	}
	return 0, nil
}

func (b *Backend) UpdateCopingTool(ctx context.Context, toolID uint64, tool solace.CopingTool) error {
	if b.UpdateCopingToolFn != nil {
		return b.UpdateCopingToolFn(ctx, toolID, tool)
	}
	return nil
}

func (b *Backend) DeleteCopingTool(ctx context.Context, toolID uint64) error {
	if b.DeleteCopingToolFn != nil {
		return b.DeleteCopingToolFn(ctx, toolID)
	}
	return nil
}

func (b *Backend) GetUserProfile(ctx context.Context) (*solace.UserProfile, error) {
	if b.GetUserProfileFn != nil {
		return b.GetUserProfileFn(ctx)
	}
	return nil, nil
}

func (b *Backend) SaveUserProfile(ctx context.Context, profile solace.UserProfile) error {
	if b.SaveUserProfileFn != nil {
		return b.SaveUserProfileFn(ctx, profile)
	}
	return nil
}

func (b *Backend) RegisterUser(ctx context.Context, email string, consentGiven bool) error {
	if b.RegisterUserFn != nil {
		return b.RegisterUserFn(ctx, email, consentGiven)
	}
	return nil
}

func (b *Backend) GetAdminAnalytics(ctx context.Context) (*solace.AdminAnalytics, error) {
	if b.GetAdminAnalyticsFn != nil {
		return b.GetAdminAnalyticsFn(ctx)
	}
	return nil, nil
}

func (b *Backend) GetAdminLogs(ctx context.Context) ([]solace.AdminLog, error) {
	if b.GetAdminLogsFn != nil {
		return b.GetAdminLogsFn(ctx)
	}
	return nil, nil
}

func (b *Backend) GetAnonymizedSessions(ctx context.Context) ([]string, error) {
	if b.GetAnonymizedSessionsFn != nil {
		return b.GetAnonymizedSessionsFn(ctx)
	}
	return nil, nil
}

func (b *Backend) GetAllUsers(ctx context.Context) ([]solace.UserProfile, error) {
	if b.GetAllUsersFn != nil {
		return b.GetAllUsersFn(ctx)
	}
	return nil, nil
}
