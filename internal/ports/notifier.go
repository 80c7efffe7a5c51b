package ports

// CompletionNotifier produces user-facing feedback when a countdown finishes.
// This is a driven port (implemented by adapters).
type CompletionNotifier interface {
	// NotifyComplete signals that a countdown of targetSeconds has finished.
	NotifyComplete(targetSeconds int) error
}
