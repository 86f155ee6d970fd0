package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used across layers.
var (
	ErrNotFound             = errors.New("not found")
	ErrSessionNotActive     = errors.New("session is not active")
	ErrInvalidAmount        = errors.New("amount must be a positive whole number")
	ErrMalformedCustomEntry = errors.New("custom entry must look like <id>/<amount>")
	ErrMissingParameter     = errors.New("missing parameter")
	ErrInvalidProperty      = errors.New("invalid property value")
	ErrUnknownProperty      = errors.New("unknown property")
	ErrNoSelection          = errors.New("no such entry in the current results")
	ErrNotImplemented       = errors.New("not implemented")
)

// CatalogLoadError reports a catalog source that contributed no entries.
// It never aborts loading of the other sources.
type CatalogLoadError struct {
	Source string
	Err    error
}

func (e *CatalogLoadError) Error() string {
	return fmt.Sprintf("loading catalog %s: %v", e.Source, e.Err)
}

func (e *CatalogLoadError) Unwrap() error { return e.Err }

// ValidationError is returned when a draft cannot be finalized yet. The
// draft itself is left untouched so the operator can fix it.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "recipe is incomplete: missing " + strings.Join(e.Fields, ", ")
}
