package solace

import "time"

// Sender identifies who authored a chat message.
type Sender string

const (
	SenderUser Sender = "user"
	SenderAI   Sender = "ai"
)

// Message is a single entry in the local transcript of the active session.
// The transcript is append-only, ordered by insertion, and discarded when a
// new session starts.
type Message struct {
	ID        string
	Sender    Sender
	Text      string
	CreatedAt time.Time
	RiskFlag  bool
}

// HistoryMessage is a server-stored chat message as returned by the history
// read. Unlike the local Message it carries the service's numeric risk score.
type HistoryMessage struct {
	Sender    Sender
	Text      string
	CreatedAt time.Time
	RiskScore float64
}

// WelcomeText is the synthetic companion greeting that seeds every new
// session. It is shown locally and never sent to the remote service.
const WelcomeText = "Hi there! I'm Solace, your mental wellness companion.\n\n" +
	"I'm here to listen, support you, and suggest coping strategies. What's on your mind today?\n\n" +
	"*Remember: I'm a support tool, not a replacement for professional therapy. In a crisis, call 988.*"

// WelcomeMessage returns the seeded first message for a new session.
func WelcomeMessage(now time.Time) Message {
	return Message{
		ID:        "welcome",
		Sender:    SenderAI,
		Text:      WelcomeText,
		CreatedAt: now,
	}
}
