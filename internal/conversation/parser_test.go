package conversation

import (
	"context"
	"reflect"
	"testing"

	"github.com/hammamikhairi/brewcraft/internal/domain"
	"github.com/hammamikhairi/brewcraft/internal/logger"
)

func TestKeywordParser(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	parser := NewKeywordParser(log)
	ctx := context.Background()

	tests := []struct {
		input       string
		wantType    domain.IntentType
		wantPayload string
	}{
		// Sessions
		{"new", domain.IntentNewDrink, ""},
		{"drink", domain.IntentNewDrink, ""},
		{"cauldron", domain.IntentNewCauldron, ""},

		// Search and pick
		{"find apple", domain.IntentFind, "apple"},
		{"find", domain.IntentFind, ""},
		{"search golden apple", domain.IntentFind, "golden apple"},
		{"pick 2 3", domain.IntentPick, "2 3"},
		{"custom Brewery:ColorfulBrew/2", domain.IntentCustom, "Brewery:ColorfulBrew/2"},
		{"effects omen", domain.IntentEffects, "omen"},
		{"effects", domain.IntentEffects, ""},
		{"effect 1 2 30", domain.IntentEffect, "1 2 30"},
		{"customeffects SPEED/2/30,STRENGTH/1/10", domain.IntentCustomBatch, "SPEED/2/30,STRENGTH/1/10"},

		// Properties
		{"set color #AA5500", domain.IntentSet, "color #AA5500"},
		{"SET drinkmessage You feel warm", domain.IntentSet, "drinkmessage You feel warm"},
		{"unset wood", domain.IntentUnset, "wood"},

		// Output
		{"show", domain.IntentShow, ""},
		{"status", domain.IntentStatus, ""},
		{"finalize", domain.IntentFinalize, ""},
		{"save ale.yml", domain.IntentSave, "ale.yml"},
		{"codes", domain.IntentCodes, ""},

		// Global
		{"help", domain.IntentHelp, ""},
		{"?", domain.IntentHelp, ""},
		{"quit", domain.IntentQuit, ""},
		{"q", domain.IntentQuit, ""},

		// Unknown
		{"brew me something", domain.IntentUnknown, "brew me something"},
		{"effectsomen", domain.IntentUnknown, "effectsomen"},
		{"", domain.IntentUnknown, ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			intent, err := parser.Parse(ctx, tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if intent.Type != tt.wantType {
				t.Fatalf("input=%q: got %s, want %s", tt.input, intent.Type, tt.wantType)
			}
			if intent.Payload != tt.wantPayload {
				t.Fatalf("input=%q: got payload %q, want %q", tt.input, intent.Payload, tt.wantPayload)
			}
		})
	}
}

func TestKeywordParserNames(t *testing.T) {
	parser := NewKeywordParser(logger.New(logger.LevelOff, nil))
	ctx := context.Background()

	tests := []struct {
		input   string
		quality domain.Quality
		payload string
	}{
		{"bad Sludge", domain.QualityBad, "Sludge"},
		{"name &6Golden Ale", domain.QualityRegular, "&6Golden Ale"},
		{"regular Ale", domain.QualityRegular, "Ale"},
		{"Good Fine Ale", domain.QualityGood, "Fine Ale"},
	}
	for _, tt := range tests {
		intent, err := parser.Parse(ctx, tt.input)
		if err != nil {
			t.Fatalf("parse %q: %v", tt.input, err)
		}
		if intent.Type != domain.IntentSetName || intent.Quality != tt.quality || intent.Payload != tt.payload {
			t.Fatalf("input=%q: got %+v", tt.input, intent)
		}
	}
}

func TestKeywordParserSections(t *testing.T) {
	parser := NewKeywordParser(logger.New(logger.LevelOff, nil))
	ctx := context.Background()

	tests := []struct {
		input    string
		wantType domain.IntentType
		section  domain.Section
		payload  string
	}{
		{"lore + Tastes awful", domain.IntentText, domain.SectionLore, "+ Tastes awful"},
		{"server say %player_name% drank", domain.IntentText, domain.SectionServerCommands, "say %player_name% drank"},
		{"player +++ home", domain.IntentText, domain.SectionPlayerCommands, "+++ home"},
		{"lore", domain.IntentGuide, domain.SectionLore, "lore"},
		{"player", domain.IntentGuide, domain.SectionPlayerCommands, "player"},
	}
	for _, tt := range tests {
		intent, err := parser.Parse(ctx, tt.input)
		if err != nil {
			t.Fatalf("parse %q: %v", tt.input, err)
		}
		if intent.Type != tt.wantType || intent.Section != tt.section || intent.Payload != tt.payload {
			t.Fatalf("input=%q: got %+v", tt.input, intent)
		}
	}
}

func TestFields(t *testing.T) {
	tests := []struct {
		payload string
		n       int
		want    []string
	}{
		{"2 3", 2, []string{"2", "3"}},
		{"1", 3, []string{"1"}},
		{"1  2   30", 3, []string{"1", "2", "30"}},
		{"drinkmessage You feel warm", 2, []string{"drinkmessage", "You feel warm"}},
		{"", 2, nil},
	}
	for _, tt := range tests {
		if got := Fields(tt.payload, tt.n); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Fields(%q, %d) = %q, want %q", tt.payload, tt.n, got, tt.want)
		}
	}
}
