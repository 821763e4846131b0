package model

// Notifier defines a generic interface for delivering alert notifications.
// The body is rendered HTML.
type Notifier interface {
	Send(subject, body string) error
}
