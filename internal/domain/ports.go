package domain

import "context"

// Catalog answers substring queries over a fixed list of entries.
// Implementations can be JSON-backed or built in.
type Catalog interface {
	Query(query string) []CatalogEntry
	Len() int
}

// SessionStore keeps editing sessions for the lifetime of the process.
// Drafts are never persisted across runs.
type SessionStore interface {
	Save(ctx context.Context, session *Session) error
	Load(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
	ListActive(ctx context.Context) ([]*Session, error)
}

// IntentParser converts raw user input into structured intents.
type IntentParser interface {
	Parse(ctx context.Context, input string) (*Intent, error)
}

// Notifier delivers short confirmations and alerts to the operator.
type Notifier interface {
	Notify(ctx context.Context, message string) error
	NotifyUrgent(ctx context.Context, message string) error
}

// Clipboard receives the finalized recipe text.
type Clipboard interface {
	WriteAll(text string) error
}
