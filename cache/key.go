// Package cache coordinates the freshness of remotely-sourced data.
//
// Each piece of remote data lives under a named key. A key's entry tracks its
// last-known value and loading/stale flags; a stale entry is refetched before
// its value is trusted again. Concurrent readers of the same key share one
// in-flight fetch, and a fetch started before the most recent invalidation is
// discarded when it completes, so a read after an invalidation always
// reflects the post-invalidation fetch.
package cache

import "strconv"

// Key names one piece of remotely-sourced data.
type Key string

const (
	KeyMoodTrend    Key = "mood-trend"
	KeyMoodHistory  Key = "mood-history"
	KeyActiveAlerts Key = "active-risk-alerts"
	KeyCopingTools  Key = "coping-tools"
	KeyUserProfile  Key = "user-profile"
)

// ChatMessages returns the per-session chat history key.
func ChatMessages(sessionID uint64) Key {
	return Key("chat-messages:" + strconv.FormatUint(sessionID, 10))
}

// Invalidator marks cache keys stale after a mutation. It is the only way
// components other than the Coordinator's own fetch path affect cached state.
type Invalidator interface {
	Invalidate(keys ...Key)
}

// Mutation→invalidation mapping. The sets are exact: a mutation invalidates
// these keys and no others.

// MoodSubmitted returns the keys affected by submitting a mood entry.
func MoodSubmitted() []Key {
	return []Key{KeyMoodTrend, KeyMoodHistory, KeyActiveAlerts}
}

// MessageExchanged returns the keys affected by sending or receiving a chat
// message in the given session.
func MessageExchanged(sessionID uint64) []Key {
	return []Key{ChatMessages(sessionID), KeyActiveAlerts}
}

// AlertResolved returns the keys affected by resolving a risk alert.
func AlertResolved() []Key {
	return []Key{KeyActiveAlerts}
}

// ToolChanged returns the keys affected by any coping-tool create, update,
// or delete.
func ToolChanged() []Key {
	return []Key{KeyCopingTools}
}

// ProfileSaved returns the keys affected by saving the user profile.
func ProfileSaved() []Key {
	return []Key{KeyUserProfile}
}
