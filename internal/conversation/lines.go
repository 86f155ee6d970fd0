// lines.go centralises every operator-facing string. Edit this file to
// change the editor's wording.
package conversation

import (
	"fmt"
	"strings"

	"github.com/hammamikhairi/brewcraft/internal/domain"
)

// ── Session ──────────────────────────────────────────────────────

func LineWelcome() string {
	return "Type new to start a drink recipe, or help for the command list."
}

func LineBye() string {
	return "Bye."
}

func LineSessionStarted() string {
	return "New drink recipe. Set a name with: name <text>"
}

func LineCauldronSoon() string {
	return "Cauldron recipes are coming soon."
}

func LineAlreadyEditing() string {
	return "A recipe is already open. Finalize it or quit first."
}

func LineNoSession() string {
	return "No recipe open. Type new to start one."
}

func LineUnknown(input string) string {
	return fmt.Sprintf("Unknown command: %s. Type help for the list.", input)
}

// ── Names ────────────────────────────────────────────────────────

func LineNameSet(q domain.Quality, name string) string {
	return fmt.Sprintf("%s name set to %s", titleCase(q.String()), name)
}

func LineNameMissing() string {
	return "Give the name text, for example: name &6Golden Ale"
}

// ── Catalog ──────────────────────────────────────────────────────

func LineNoResults(query string) string {
	return fmt.Sprintf("Nothing matches %q.", query)
}

// LineResults numbers entries for picking. At most limit are listed.
func LineResults(entries []domain.CatalogEntry, limit int) string {
	var b strings.Builder
	for i, e := range entries {
		if i == limit {
			fmt.Fprintf(&b, "  ... %d more, narrow the search", len(entries)-limit)
			break
		}
		fmt.Fprintf(&b, "  %3d. %s", i+1, e.DisplayName)
		if e.Alias != "" {
			fmt.Fprintf(&b, " (%s)", e.Alias)
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func LineIngredientAdded(l domain.IngredientLine) string {
	return "Ingredient added: " + l.Text()
}

func LineEffectAdded(l domain.EffectLine) string {
	return "Effect added: " + l.Text()
}

func LineEffectsAdded(n int) string {
	if n == 1 {
		return "1 custom effect added"
	}
	return fmt.Sprintf("%d custom effects added", n)
}

func LinePickUsage() string {
	return "Usage: pick <number> <amount>"
}

func LineEffectUsage() string {
	return "Usage: effect <number> [level] [duration]. Level and duration may be ranges like 1-3."
}

func LineCustomUsage() string {
	return "Add a custom item in this format: Brewery:ColorfulBrew/2"
}

func LineCustomEffectsUsage() string {
	return "Enter effects as EFFECT/level/duration, comma-separated with no spaces inside an entry."
}

// ── Text blocks ──────────────────────────────────────────────────

func LineTextAdded(s domain.Section, n int) string {
	return fmt.Sprintf("%d line(s) added to %s", n, s)
}

// LineGuide returns the formatting guide for a text block.
func LineGuide(s domain.Section) string {
	switch s {
	case domain.SectionServerCommands:
		return strings.Join([]string{
			"Server commands can follow this format:",
			"say This will execute no matter what!",
			`say This message will be delayed by 5 seconds! \5s`,
			"+ kill %player% # This will execute if brew quality is bad",
			"++ heal %player% # This will execute if brew quality is normal",
			"+++ op %player% # This will execute if brew quality is good",
		}, "\n")
	case domain.SectionPlayerCommands:
		return strings.Join([]string{
			"Player commands can follow this format:",
			"say This will execute no matter what!",
			`say This message will be delayed by 5 seconds! \5s`,
			"+ msg Mom I'm sorry Ma",
			"++ home",
			"+++ kiss @e[type=Villager]",
		}, "\n")
	default:
		return strings.Join([]string{
			"Lore can follow this format:",
			"This text will always be present",
			"+ This text will be present if brew has bad quality",
			"++ This text will be present if brew has normal quality",
			"+++ This text will be present if brew has good quality",
		}, "\n")
	}
}

// ── Properties ───────────────────────────────────────────────────

func LinePropertySet(key, value string) string {
	if value == "" {
		return key + " set"
	}
	return fmt.Sprintf("%s set to %s", key, value)
}

func LinePropertyCleared(key string) string {
	return key + " cleared"
}

func LineSetUsage(keys []string) string {
	return "Usage: set <key> <value>. Keys: " + strings.Join(keys, ", ")
}

// propertyHints describe what each property expects.
var propertyHints = map[string]string{
	"cookingtime":  "cooking time in minutes",
	"distillruns":  "number of distillation runs",
	"distilltime":  "distillation time in minutes, only used with distill runs",
	"color":        "hex colour such as #AA5500",
	"difficulty":   "difficulty from 1 to 10",
	"alcohol":      "alcohol percentage, negative values lessen intoxication",
	"wood":         "barrel wood type, leave unset if ageable everywhere",
	"age":          "aging time in years, only used with wood",
	"drinkmessage": "message shown after drinking the brew",
	"drinktitle":   "title shown after drinking the brew",
	"glint":        "yes or no",
}

// LinePropertyHint explains a property, or returns "" for unknown keys.
func LinePropertyHint(key string) string {
	return propertyHints[key]
}

// ── Output ───────────────────────────────────────────────────────

func LineFinalized() string {
	return "Recipe finalized."
}

func LineCopied() string {
	return "Recipe copied to the clipboard."
}

func LineClipboardFailed(err error) string {
	return fmt.Sprintf("Could not copy to the clipboard: %v", err)
}

func LineSaved(path string) string {
	return "Recipe written to " + path
}

func LineSaveUsage() string {
	return "Usage: save <file>"
}

// LineStatus summarises a draft in one line.
func LineStatus(d *domain.Draft) string {
	name := d.Names.Regular
	if name == "" {
		name = "(unnamed)"
	}
	s := fmt.Sprintf("%s: %d ingredient(s), %d effect(s)", name, len(d.Ingredients), len(d.Effects))
	if missing := d.Names.Missing(); len(missing) > 0 {
		var names []string
		for _, q := range missing {
			names = append(names, q.String())
		}
		s += ", missing names: " + strings.Join(names, ", ")
	}
	return s
}

// ── Help ─────────────────────────────────────────────────────────

// HelpCommands lists every command with a short description.
var HelpCommands = [][2]string{
	{"new", "start a drink recipe"},
	{"cauldron", "start a cauldron recipe"},
	{"bad|name|good <text>", "set the bad, regular or good name; colour codes like &6 work"},
	{"find <text>", "search ingredients"},
	{"pick <n> <amount>", "add the n-th ingredient from the last search"},
	{"custom <id>/<amount>", "add an ingredient by hand, e.g. Brewery:ColorfulBrew/2"},
	{"effects <text>", "search potion effects"},
	{"effect <n> [level] [duration]", "add the n-th effect; defaults apply when omitted"},
	{"customeffects <list>", "add effects by hand, e.g. SPEED/2/30,STRENGTH/1/10"},
	{"lore|server|player <text>", "append a line to lore, server or player commands; alone shows the format"},
	{"set <key> <value>", "set a property such as cookingtime, color or wood"},
	{"unset <key>", "clear a property"},
	{"show", "preview the recipe text"},
	{"status", "summarise the open recipe"},
	{"finalize", "render the recipe, copy it and close the session"},
	{"save <file>", "finalize and also write the recipe to a file"},
	{"codes", "show Minecraft colour codes"},
	{"help", "show this list"},
	{"quit", "leave the editor"},
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
