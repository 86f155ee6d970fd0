// Package recorder turns the operator's selections into draft entries.
//
// Every operation takes the draft explicitly and either appends to it or
// returns an error with the draft untouched. Nothing is ever replaced or
// deduplicated: picking the same ingredient twice yields two lines.
package recorder

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hammamikhairi/brewcraft/internal/domain"
)

// ── Names ────────────────────────────────────────────────────────

// SetName sets the name of one quality variant. Names may contain
// Minecraft colour codes ("&6Golden Ale"); they are stored verbatim.
func SetName(d *domain.Draft, q domain.Quality, name string) {
	name = strings.TrimSpace(name)
	switch q {
	case domain.QualityBad:
		d.Names.Bad = name
	case domain.QualityGood:
		d.Names.Good = name
	default:
		d.Names.Regular = name
	}
}

// ── Ingredients ──────────────────────────────────────────────────

// AddIngredient records amount of a catalog entry.
func AddIngredient(d *domain.Draft, entry domain.CatalogEntry, amount int) (domain.IngredientLine, error) {
	if amount <= 0 {
		return domain.IngredientLine{}, fmt.Errorf("%s: %w", entry.DisplayName, domain.ErrInvalidAmount)
	}
	line := domain.IngredientLine{
		Kind:   domain.KindCatalog,
		Item:   entry.DisplayName,
		Amount: amount,
	}
	d.Ingredients = append(d.Ingredients, line)
	return line, nil
}

// AddCustomIngredient records a typed "<id>/<amount>" entry, such as
// "Brewery:ColorfulBrew/2". The split happens at the last slash so IDs
// may contain slashes themselves.
func AddCustomIngredient(d *domain.Draft, input string) (domain.IngredientLine, error) {
	line, err := ParseCustomIngredient(input)
	if err != nil {
		return domain.IngredientLine{}, err
	}
	d.Ingredients = append(d.Ingredients, line)
	return line, nil
}

// ParseCustomIngredient validates a typed ingredient without recording it.
// A non-numeric amount is malformed; a numeric one that is not positive
// is an invalid amount.
func ParseCustomIngredient(input string) (domain.IngredientLine, error) {
	input = strings.TrimSpace(input)
	i := strings.LastIndex(input, "/")
	if i <= 0 || i == len(input)-1 {
		return domain.IngredientLine{}, fmt.Errorf("%q: %w", input, domain.ErrMalformedCustomEntry)
	}
	id, rawAmount := strings.TrimSpace(input[:i]), strings.TrimSpace(input[i+1:])
	if id == "" {
		return domain.IngredientLine{}, fmt.Errorf("%q: %w", input, domain.ErrMalformedCustomEntry)
	}
	amount, err := strconv.Atoi(rawAmount)
	if err != nil {
		return domain.IngredientLine{}, fmt.Errorf("%q: %w", input, domain.ErrMalformedCustomEntry)
	}
	if amount <= 0 {
		return domain.IngredientLine{}, fmt.Errorf("%q: %w", input, domain.ErrInvalidAmount)
	}
	return domain.IngredientLine{Kind: domain.KindCustom, Item: id, Amount: amount}, nil
}

// ── Effects ──────────────────────────────────────────────────────

// AddEffect records a potion effect. Level and duration are passed through
// as typed ("2", "1-3", "10-50"); ranges are the plugin's business.
func AddEffect(d *domain.Draft, effectID, level, duration string) (domain.EffectLine, error) {
	effectID = strings.TrimSpace(effectID)
	level = strings.TrimSpace(level)
	duration = strings.TrimSpace(duration)

	switch {
	case effectID == "":
		return domain.EffectLine{}, fmt.Errorf("effect: %w", domain.ErrMissingParameter)
	case level == "":
		return domain.EffectLine{}, fmt.Errorf("%s level: %w", effectID, domain.ErrMissingParameter)
	case duration == "":
		return domain.EffectLine{}, fmt.Errorf("%s duration: %w", effectID, domain.ErrMissingParameter)
	}

	line := domain.EffectLine{
		Kind:     domain.KindCatalog,
		EffectID: effectID,
		Level:    level,
		Duration: duration,
	}
	d.Effects = append(d.Effects, line)
	return line, nil
}

// AddCustomEffects records a comma-separated list of ready-made effect
// entries ("SPEED/2/30,STRENGTH/1/10"). There is no escaping: a comma
// inside a token always splits it. Empty tokens are ignored.
func AddCustomEffects(d *domain.Draft, list string) []domain.EffectLine {
	var lines []domain.EffectLine
	for _, tok := range strings.Split(list, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		lines = append(lines, domain.EffectLine{Kind: domain.KindCustom, Raw: tok})
	}
	d.Effects = append(d.Effects, lines...)
	return lines
}

// ── Conditional text ─────────────────────────────────────────────

// AppendText adds every non-blank line of text to a conditional block.
// Quality prefixes ("+", "++", "+++") are kept as typed.
func AppendText(d *domain.Draft, s domain.Section, text string) int {
	block := d.Block(s)
	n := 0
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, " \t\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		*block = append(*block, line)
		n++
	}
	return n
}
