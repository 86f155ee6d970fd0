// Package conversation provides command parsing, operator-facing text and
// notification implementations.
package conversation

import (
	"context"
	"regexp"
	"strings"

	"github.com/hammamikhairi/brewcraft/internal/domain"
	"github.com/hammamikhairi/brewcraft/internal/logger"
)

// Compile-time interface check.
var _ domain.IntentParser = (*KeywordParser)(nil)

// KeywordParser matches typed lines to intents using leading keywords.
type KeywordParser struct {
	log      *logger.Logger
	patterns []patternRule
}

// patternRule maps a regex to an intent. The optional second capture
// group becomes the payload.
type patternRule struct {
	regex  *regexp.Regexp
	intent domain.IntentType
	apply  func(in *domain.Intent, word string)
}

// cmd builds a rule for "<keyword> [rest]".
func cmd(words string, intent domain.IntentType) patternRule {
	return patternRule{
		regex:  regexp.MustCompile(`(?is)^(` + words + `)(?:\s+(.*))?$`),
		intent: intent,
	}
}

// NewKeywordParser creates a keyword-based intent parser.
func NewKeywordParser(log *logger.Logger) *KeywordParser {
	p := &KeywordParser{log: log}

	name := cmd(`bad|name|regular|good`, domain.IntentSetName)
	name.apply = func(in *domain.Intent, word string) {
		switch word {
		case "bad":
			in.Quality = domain.QualityBad
		case "good":
			in.Quality = domain.QualityGood
		default:
			in.Quality = domain.QualityRegular
		}
	}

	text := cmd(`lore|server|player`, domain.IntentText)
	text.apply = func(in *domain.Intent, word string) {
		switch word {
		case "server":
			in.Section = domain.SectionServerCommands
		case "player":
			in.Section = domain.SectionPlayerCommands
		default:
			in.Section = domain.SectionLore
		}
		// A bare block keyword asks for its formatting guide.
		if in.Payload == "" {
			in.Type = domain.IntentGuide
			in.Payload = word
		}
	}

	p.patterns = []patternRule{
		cmd(`new|drink`, domain.IntentNewDrink),
		cmd(`cauldron`, domain.IntentNewCauldron),
		name,
		cmd(`find|search|f`, domain.IntentFind),
		cmd(`pick|p`, domain.IntentPick),
		cmd(`custom|c`, domain.IntentCustom),
		cmd(`effects|fx`, domain.IntentEffects),
		cmd(`effect|e`, domain.IntentEffect),
		cmd(`customeffects|cfx`, domain.IntentCustomBatch),
		text,
		cmd(`set`, domain.IntentSet),
		cmd(`unset|clear`, domain.IntentUnset),
		cmd(`show|preview`, domain.IntentShow),
		cmd(`status|where`, domain.IntentStatus),
		cmd(`finalize|finish|done`, domain.IntentFinalize),
		cmd(`save|write`, domain.IntentSave),
		cmd(`codes|colors|colours`, domain.IntentCodes),
		cmd(`help|h|\?`, domain.IntentHelp),
		cmd(`quit|exit|q`, domain.IntentQuit),
	}
	return p
}

// Parse converts a typed line into an intent.
func (p *KeywordParser) Parse(ctx context.Context, input string) (*domain.Intent, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return &domain.Intent{Type: domain.IntentUnknown}, nil
	}

	p.log.Debug("parsing input: %q", trimmed)

	for _, rule := range p.patterns {
		m := rule.regex.FindStringSubmatch(trimmed)
		if m == nil {
			continue
		}
		in := &domain.Intent{Type: rule.intent, Payload: strings.TrimSpace(m[2])}
		if rule.apply != nil {
			rule.apply(in, strings.ToLower(m[1]))
		}
		p.log.Debug("matched intent: %s", in.Type)
		return in, nil
	}

	p.log.Debug("no match, returning unknown intent")
	return &domain.Intent{Type: domain.IntentUnknown, Payload: trimmed}, nil
}

// Fields splits a payload into at most n whitespace-separated parts; the
// last part keeps any remaining spaces.
func Fields(payload string, n int) []string {
	var out []string
	rest := strings.TrimSpace(payload)
	for rest != "" && len(out) < n-1 {
		i := strings.IndexAny(rest, " \t")
		if i < 0 {
			break
		}
		out = append(out, rest[:i])
		rest = strings.TrimSpace(rest[i:])
	}
	if rest != "" {
		out = append(out, rest)
	}
	return out
}
