// Package render produces the plugin's recipe text from a draft.
//
// The output is line-oriented and meant to be pasted under a recipe key of
// the plugin's config. Section order is fixed. Free text is written as typed:
// a single quote inside a name is not escaped.
package render

import (
	"strconv"
	"strings"

	"github.com/hammamikhairi/brewcraft/internal/domain"
)

// Options tweaks the layout of the rendered text.
type Options struct {
	// Indent is the number of spaces put in front of every line, for
	// nesting the record under a recipe key. Zero means top level.
	Indent int
}

// Serialize renders d at top level.
func Serialize(d *domain.Draft) (string, error) {
	return Options{}.Serialize(d)
}

// Serialize renders d. It fails with a *domain.ValidationError when the
// regular name is empty; nothing is rendered in that case.
func (o Options) Serialize(d *domain.Draft) (string, error) {
	if d.Names.Regular == "" {
		return "", &domain.ValidationError{Fields: []string{"name." + domain.QualityRegular.String()}}
	}

	w := &writer{pad: strings.Repeat(" ", max(o.Indent, 0))}
	w.line("name: '" + d.Names.Bad + "/" + d.Names.Regular + "/" + d.Names.Good + "'")

	if len(d.Ingredients) > 0 {
		w.line("ingredients:")
		for _, l := range d.Ingredients {
			w.entry(l.Text())
		}
	}

	p := d.Properties
	w.intProp("cookingtime", p.CookingTime)
	w.intProp("distillruns", p.DistillRuns)
	if p.DistillRuns != nil && *p.DistillRuns > 0 {
		w.intProp("distilltime", p.DistillTime)
	}
	if p.Color != "" {
		w.line("color: '" + strings.TrimPrefix(p.Color, "#") + "'")
	}
	w.intProp("difficulty", p.Difficulty)
	if p.Alcohol != nil && *p.Alcohol != 0 {
		w.intProp("alcohol", p.Alcohol)
	}
	if p.Wood != "" {
		w.line("wood: " + p.Wood)
		w.intProp("age", p.Age)
	}

	w.block(domain.SectionLore.String(), d.Lore)
	w.block(domain.SectionServerCommands.String(), d.ServerCommands)
	w.block(domain.SectionPlayerCommands.String(), d.PlayerCommands)

	if p.DrinkMessage != "" {
		w.line("drinkmessage: " + p.DrinkMessage)
	}
	if p.DrinkTitle != "" {
		w.line("drinktitle: " + p.DrinkTitle)
	}
	if p.Glint {
		w.line("glint: true")
	}

	if len(d.Effects) > 0 {
		w.line("effects:")
		for _, l := range d.Effects {
			w.entry(l.Text())
		}
	}

	return w.b.String(), nil
}

type writer struct {
	b   strings.Builder
	pad string
}

func (w *writer) line(s string) {
	w.b.WriteString(w.pad)
	w.b.WriteString(s)
	w.b.WriteByte('\n')
}

func (w *writer) entry(s string) {
	w.line("  - " + s)
}

func (w *writer) intProp(key string, v *int) {
	if v == nil {
		return
	}
	w.line(key + ": " + strconv.Itoa(*v))
}

func (w *writer) block(key string, lines domain.ConditionalText) {
	if len(lines) == 0 {
		return
	}
	w.line(key + ":")
	for _, l := range lines {
		w.entry(l)
	}
}
