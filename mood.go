package solace

import "time"

// Mood scores run 1 (lowest) to 10 (highest). Scores at or below
// LowMoodThreshold may produce a high-severity risk alert on the service side.
const (
	MoodScoreMin     = 1
	MoodScoreMax     = 10
	LowMoodThreshold = 3
)

// MoodEntry is a single mood check-in as stored by the remote service.
type MoodEntry struct {
	UserID         string
	MoodScore      int
	EmotionLabel   string
	JournalText    string
	SentimentScore float64
	RiskScore      float64
	CreatedAt      time.Time
}

// TrendPoint is one point of the averaged mood trend.
type TrendPoint struct {
	At    time.Time
	Score float64
}
