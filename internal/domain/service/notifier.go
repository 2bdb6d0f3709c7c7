package service

// Notifier is the user-facing notice channel the state containers talk to,
// the equivalent of the storefront's transient toast messages. Notices are
// informational only and never persisted.
type Notifier interface {
	Success(message string)
	Info(message string)
}
