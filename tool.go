package solace

import "time"

// CopingTool is a guided self-help exercise stored by the remote service.
// Tools are keyed by an integer ID assigned on creation.
type CopingTool struct {
	ID       uint64
	Title    string
	Category string
	Content  string
	Duration time.Duration
}
