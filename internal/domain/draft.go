// Package domain defines the core types and interfaces for the recipe editor.
// All other packages depend on domain; domain depends on nothing.
package domain

// Quality selects one of the three name variants a brew can come out as.
type Quality int

const (
	QualityBad Quality = iota
	QualityRegular
	QualityGood
)

// String returns a human-readable quality.
func (q Quality) String() string {
	switch q {
	case QualityBad:
		return "bad"
	case QualityRegular:
		return "regular"
	case QualityGood:
		return "good"
	default:
		return "unknown"
	}
}

// Names holds the three display-name variants of a recipe.
type Names struct {
	Bad     string
	Regular string
	Good    string
}

// Get returns the name for the given quality.
func (n Names) Get(q Quality) string {
	switch q {
	case QualityBad:
		return n.Bad
	case QualityGood:
		return n.Good
	default:
		return n.Regular
	}
}

// Missing lists the qualities whose name is still empty.
func (n Names) Missing() []Quality {
	var out []Quality
	for _, q := range []Quality{QualityBad, QualityRegular, QualityGood} {
		if n.Get(q) == "" {
			out = append(out, q)
		}
	}
	return out
}

// Section identifies one of the conditional text blocks of a draft.
type Section int

const (
	SectionLore Section = iota
	SectionServerCommands
	SectionPlayerCommands
)

// String returns the config key of the section.
func (s Section) String() string {
	switch s {
	case SectionLore:
		return "lore"
	case SectionServerCommands:
		return "servercommands"
	case SectionPlayerCommands:
		return "playercommands"
	default:
		return "unknown"
	}
}

// ConditionalText is an ordered block of raw lines. A line starting with
// "+", "++" or "+++" only applies to bad, regular or good quality brews;
// the prefixes are kept verbatim and never interpreted here.
type ConditionalText []string

// Draft is the recipe being assembled by one editing session. It is created
// empty, filled in through the recorder operations and rendered once.
type Draft struct {
	Names          Names
	Ingredients    []IngredientLine
	Effects        []EffectLine
	Lore           ConditionalText
	ServerCommands ConditionalText
	PlayerCommands ConditionalText
	Properties     Properties
}

// NewDraft returns an empty draft.
func NewDraft() *Draft {
	return &Draft{}
}

// Block returns a pointer to the conditional text block for a section.
func (d *Draft) Block(s Section) *ConditionalText {
	switch s {
	case SectionServerCommands:
		return &d.ServerCommands
	case SectionPlayerCommands:
		return &d.PlayerCommands
	default:
		return &d.Lore
	}
}

// Properties are the optional scalar fields of a recipe. A nil pointer or
// empty string means the field is unset and will not be rendered.
type Properties struct {
	CookingTime  *int   // minutes, > 0
	DistillRuns  *int   // >= 0
	DistillTime  *int   // minutes, > 0; only rendered when DistillRuns > 0
	Color        string // 6 hex digits, no leading '#'
	Difficulty   *int   // 1..10
	Alcohol      *int   // -100..100, zero means unset
	Wood         string
	Age          *int // years, >= 0; only rendered when Wood is set
	Glint        bool
	DrinkMessage string
	DrinkTitle   string
}

// Clone returns a deep copy that shares no memory with d.
func (d *Draft) Clone() *Draft {
	if d == nil {
		return nil
	}
	c := *d
	c.Ingredients = append([]IngredientLine(nil), d.Ingredients...)
	c.Effects = append([]EffectLine(nil), d.Effects...)
	c.Lore = append(ConditionalText(nil), d.Lore...)
	c.ServerCommands = append(ConditionalText(nil), d.ServerCommands...)
	c.PlayerCommands = append(ConditionalText(nil), d.PlayerCommands...)
	c.Properties = d.Properties.clone()
	return &c
}

func (p Properties) clone() Properties {
	for _, f := range []**int{&p.CookingTime, &p.DistillRuns, &p.DistillTime, &p.Difficulty, &p.Alcohol, &p.Age} {
		if *f != nil {
			v := **f
			*f = &v
		}
	}
	return p
}
