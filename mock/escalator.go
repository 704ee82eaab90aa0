package mock

// Escalator is a test double for chat.Escalator.
type Escalator struct {
	SignalMessageFn func()
}

func (e *Escalator) SignalMessage() {
	if e.SignalMessageFn != nil {
		e.SignalMessageFn()
	}
}
