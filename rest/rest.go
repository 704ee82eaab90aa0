// Package rest implements [solace.Backend] over the wellness service's JSON
// HTTP API. All timestamps cross the wire as unix nanoseconds; enum-like
// fields cross as strings and are normalized at this boundary, so the rest of
// the program only ever sees the domain types.
package rest

import (
	"time"

	"github.com/solace-dev/solace"
)

const (
	apiPrefix      = "/api/v1"
	defaultTimeout = 30 * time.Second
)

func timeFromNanos(n int64) time.Time {
	return time.Unix(0, n)
}

// apiError is the JSON body the service returns for non-2xx responses.
type apiError struct {
	Error string `json:"error"`
}

type apiSessionCreated struct {
	SessionID uint64 `json:"session_id"`
}

type apiSendMessage struct {
	Text string `json:"text"`
}

type apiReply struct {
	Reply string `json:"reply"`
}

type apiHistoryMessage struct {
	Sender    string  `json:"sender"`
	Text      string  `json:"text"`
	CreatedAt int64   `json:"created_at_ns"`
	RiskScore float64 `json:"risk_score"`
}

func (m apiHistoryMessage) domain() solace.HistoryMessage {
	sender := solace.SenderAI
	if m.Sender == "user" {
		sender = solace.SenderUser
	}
	return solace.HistoryMessage{
		Sender:    sender,
		Text:      m.Text,
		CreatedAt: time.Unix(0, m.CreatedAt),
		RiskScore: m.RiskScore,
	}
}

type apiMoodEntry struct {
	UserID         string  `json:"user_id,omitempty"`
	MoodScore      int     `json:"mood_score"`
	EmotionLabel   string  `json:"emotion_label"`
	JournalText    string  `json:"journal_text,omitempty"`
	SentimentScore float64 `json:"sentiment_score,omitempty"`
	RiskScore      float64 `json:"risk_score,omitempty"`
	CreatedAt      int64   `json:"created_at_ns,omitempty"`
}

func (e apiMoodEntry) domain() solace.MoodEntry {
	return solace.MoodEntry{
		UserID:         e.UserID,
		MoodScore:      e.MoodScore,
		EmotionLabel:   e.EmotionLabel,
		JournalText:    e.JournalText,
		SentimentScore: e.SentimentScore,
		RiskScore:      e.RiskScore,
		CreatedAt:      time.Unix(0, e.CreatedAt),
	}
}

type apiTrendPoint struct {
	At    int64   `json:"at_ns"`
	Score float64 `json:"score"`
}

type apiRiskAlert struct {
	UserID        string `json:"user_id"`
	Source        string `json:"source"`
	Severity      string `json:"severity"`
	TriggerReason string `json:"trigger_reason"`
	CreatedAt     int64  `json:"created_at_ns"`
	Resolved      bool   `json:"resolved"`
}

func (a apiRiskAlert) domain() solace.RiskAlert {
	return solace.RiskAlert{
		UserID:        a.UserID,
		Source:        a.Source,
		Severity:      solace.ParseRiskLevel(a.Severity),
		TriggerReason: a.TriggerReason,
		CreatedAt:     time.Unix(0, a.CreatedAt),
		Resolved:      a.Resolved,
	}
}

type apiResolveAlert struct {
	UserID     string `json:"user_id"`
	AlertIndex int    `json:"alert_index"`
}

type apiCopingTool struct {
	ID              uint64 `json:"id,omitempty"`
	Title           string `json:"title"`
	Category        string `json:"category"`
	Content         string `json:"content"`
	DurationSeconds int64  `json:"duration_seconds"`
}

func wireTool(t solace.CopingTool) apiCopingTool {
	return apiCopingTool{
		ID:              t.ID,
		Title:           t.Title,
		Category:        t.Category,
		Content:         t.Content,
		DurationSeconds: int64(t.Duration / time.Second),
	}
}

func (t apiCopingTool) domain() solace.CopingTool {
	return solace.CopingTool{
		ID:       t.ID,
		Title:    t.Title,
		Category: t.Category,
		Content:  t.Content,
		Duration: time.Duration(t.DurationSeconds) * time.Second,
	}
}

type apiToolCreated struct {
	ToolID uint64 `json:"tool_id"`
}

type apiUserProfile struct {
	Email        string `json:"email"`
	Role         string `json:"role"`
	ConsentGiven bool   `json:"consent_given"`
	CreatedAt    int64  `json:"created_at_ns"`
}

func wireProfile(p solace.UserProfile) apiUserProfile {
	return apiUserProfile{
		Email:        p.Email,
		Role:         string(p.Role),
		ConsentGiven: p.ConsentGiven,
		CreatedAt:    p.CreatedAt.UnixNano(),
	}
}

func (p apiUserProfile) domain() solace.UserProfile {
	return solace.UserProfile{
		Email:        p.Email,
		Role:         solace.ParseUserRole(p.Role),
		ConsentGiven: p.ConsentGiven,
		CreatedAt:    time.Unix(0, p.CreatedAt),
	}
}

type apiRegisterUser struct {
	Email        string `json:"email"`
	ConsentGiven bool   `json:"consent_given"`
}

type apiAdminAnalytics struct {
	TotalUsers       int            `json:"total_users"`
	AverageMoodScore float64        `json:"average_mood_score"`
	AlertCounts      map[string]int `json:"alert_counts"`
	TotalSessions    int            `json:"total_sessions"`
	TotalMessages    int            `json:"total_messages"`
}

func (a apiAdminAnalytics) domain() *solace.AdminAnalytics {
	counts := make(map[solace.RiskLevel]int, len(a.AlertCounts))
	for level, n := range a.AlertCounts {
		counts[solace.ParseRiskLevel(level)] += n
	}
	return &solace.AdminAnalytics{
		TotalUsers:       a.TotalUsers,
		AverageMoodScore: a.AverageMoodScore,
		AlertCounts:      counts,
		TotalSessions:    a.TotalSessions,
		TotalMessages:    a.TotalMessages,
	}
}

type apiAdminLog struct {
	AdminID string `json:"admin_id"`
	Action  string `json:"action"`
	At      int64  `json:"at_ns"`
}

type apiAnonymizedSessions struct {
	Sessions []string `json:"sessions"`
}
