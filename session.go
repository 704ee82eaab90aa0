package solace

import "time"

// Session represents one continuous chat conversation. IDs are opaque and
// monotonically assigned by the remote service; the client never invents one.
type Session struct {
	ID       uint64
	OpenedAt time.Time
}
