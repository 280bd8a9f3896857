package services

// Notifier surfaces user-visible notices for completed or refused actions,
// the terminal equivalent of the dashboard's toast popups. Mutating failures
// are always reported through it, never silently swallowed.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// NopNotifier discards all notices.
type NopNotifier struct{}

func (NopNotifier) Success(string) {}
func (NopNotifier) Error(string)   {}
