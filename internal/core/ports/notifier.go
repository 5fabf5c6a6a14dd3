package ports

// Notifier shows transient notifications to the user. Every failed
// operation produces exactly one Error notification with a title and a
// human-readable description.
type Notifier interface {
	Success(title, description string)
	Error(title, description string)
}
