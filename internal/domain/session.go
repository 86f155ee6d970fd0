package domain

import "time"

// Session is one recipe-editing session. It exclusively owns its draft.
type Session struct {
	ID        string
	Kind      RecipeKind
	Draft     *Draft
	Status    SessionStatus
	StartedAt time.Time
	UpdatedAt time.Time
}

// RecipeKind distinguishes drink recipes from cauldron recipes.
type RecipeKind int

const (
	RecipeDrink RecipeKind = iota
	RecipeCauldron
)

// String returns a human-readable recipe kind.
func (k RecipeKind) String() string {
	switch k {
	case RecipeDrink:
		return "drink"
	case RecipeCauldron:
		return "cauldron"
	default:
		return "unknown"
	}
}

// SessionStatus tracks the lifecycle of an editing session.
type SessionStatus int

const (
	SessionActive SessionStatus = iota
	SessionCompleted
	SessionAbandoned
)

// String returns a human-readable session status.
func (s SessionStatus) String() string {
	switch s {
	case SessionActive:
		return "active"
	case SessionCompleted:
		return "completed"
	case SessionAbandoned:
		return "abandoned"
	default:
		return "unknown"
	}
}

// Clone returns a deep copy of the session and its draft.
func (s *Session) Clone() *Session {
	c := *s
	c.Draft = s.Draft.Clone()
	return &c
}
