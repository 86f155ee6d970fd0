package domain

import (
	"strconv"
	"strings"
)

// EntryKind tells whether a line came from a catalog pick or was typed
// verbatim by the operator. Validation differs per kind; rendering does not.
type EntryKind int

const (
	KindCatalog EntryKind = iota
	KindCustom
)

// String returns a human-readable entry kind.
func (k EntryKind) String() string {
	switch k {
	case KindCatalog:
		return "catalog"
	case KindCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// CatalogEntry is one selectable item, block or potion effect.
type CatalogEntry struct {
	ID          string
	DisplayName string
	Alias       string // optional localized name, searched alongside DisplayName
}

// IngredientLine is one "<item>/<amount>" entry of the ingredients section.
type IngredientLine struct {
	Kind   EntryKind
	Item   string
	Amount int
}

// Text renders the line as it appears in the recipe.
func (l IngredientLine) Text() string {
	return l.Item + "/" + strconv.Itoa(l.Amount)
}

// EffectLine is one entry of the effects section. Level and Duration are
// opaque: either a single number or a "low-high" range, interpreted by the
// plugin. Custom lines keep the operator's text in Raw.
type EffectLine struct {
	Kind     EntryKind
	EffectID string
	Level    string
	Duration string
	Raw      string
}

// Text renders the line as it appears in the recipe.
func (l EffectLine) Text() string {
	if l.Kind == KindCustom {
		return l.Raw
	}
	return strings.Join([]string{l.EffectID, l.Level, l.Duration}, "/")
}
