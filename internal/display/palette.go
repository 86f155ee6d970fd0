package display

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hammamikhairi/brewcraft/internal/domain"
)

// segment is a run of text drawn in one colour. An empty hex means the
// terminal default.
type segment struct {
	hex  string
	text string
}

// splitCodes cuts a name like "&6Golden &fAle" at its colour codes.
// Unknown codes are left in the text. "&#RRGGBB" hex codes are honoured.
func splitCodes(s string) []segment {
	byCode := make(map[string]string, len(domain.ColorCodes))
	for _, c := range domain.ColorCodes {
		byCode[strings.ToLower(c.Code)] = c.Hex
	}

	var out []segment
	cur := segment{}
	flush := func() {
		if cur.text != "" {
			out = append(out, cur)
		}
	}

	for i := 0; i < len(s); {
		if s[i] == '&' && i+1 < len(s) {
			if s[i+1] == '#' && i+8 <= len(s) && isHex(s[i+2:i+8]) {
				flush()
				cur = segment{hex: "#" + strings.ToUpper(s[i+2:i+8])}
				i += 8
				continue
			}
			if hex, ok := byCode[strings.ToLower(s[i:i+2])]; ok {
				flush()
				cur = segment{hex: hex}
				i += 2
				continue
			}
		}
		cur.text += s[i : i+1]
		i++
	}
	flush()
	return out
}

func isHex(s string) bool {
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// Colorize renders a name the way it will look in game.
func Colorize(s string) string {
	var b strings.Builder
	for _, seg := range splitCodes(s) {
		if seg.hex == "" {
			b.WriteString(primaryStyle.Render(seg.text))
			continue
		}
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(seg.hex)).Render(seg.text))
	}
	return b.String()
}

// RenderCodes draws every colour code as a swatch, perRow to a line.
func RenderCodes(perRow int) string {
	if perRow <= 0 {
		perRow = 8
	}
	var rows []string
	var row []string
	for i, c := range domain.ColorCodes {
		swatch := lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Hex)).
			Bold(true).
			Render(c.Code + " ███")
		row = append(row, swatch)
		if (i+1)%perRow == 0 {
			rows = append(rows, strings.Join(row, "  "))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, strings.Join(row, "  "))
	}
	rows = append(rows, secondaryStyle.Render("Any colour: &#RRGGBB"))
	return strings.Join(rows, "\n")
}
