package recorder

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/hammamikhairi/brewcraft/internal/domain"
)

// PropertyKeys lists the settable scalar properties in rendering order.
var PropertyKeys = []string{
	"cookingtime",
	"distillruns",
	"distilltime",
	"color",
	"difficulty",
	"alcohol",
	"wood",
	"age",
	"drinkmessage",
	"drinktitle",
	"glint",
}

// AllowsEmpty reports whether key may be set with no value. A bare glint
// turns it on.
func AllowsEmpty(key string) bool {
	return strings.EqualFold(strings.TrimSpace(key), "glint")
}

var hexColor = regexp.MustCompile(`^[0-9A-Fa-f]{6}$`)

// SetProperty parses raw for the property named key and stores it. On any
// error the draft is left as it was.
func SetProperty(d *domain.Draft, key, raw string) error {
	key = strings.ToLower(strings.TrimSpace(key))
	raw = strings.TrimSpace(raw)
	p := &d.Properties

	switch key {
	case "cookingtime":
		return setInt(&p.CookingTime, key, raw, 1, -1)
	case "distillruns":
		return setInt(&p.DistillRuns, key, raw, 0, -1)
	case "distilltime":
		return setInt(&p.DistillTime, key, raw, 1, -1)
	case "difficulty":
		return setInt(&p.Difficulty, key, raw, 1, 10)
	case "age":
		return setInt(&p.Age, key, raw, 0, -1)
	case "alcohol":
		var v *int
		if err := setInt(&v, key, raw, -100, 100); err != nil {
			return err
		}
		if *v == 0 {
			v = nil
		}
		p.Alcohol = v
		return nil
	case "color":
		c := strings.TrimPrefix(raw, "#")
		if !hexColor.MatchString(c) {
			return fmt.Errorf("color %q must be 6 hex digits: %w", raw, domain.ErrInvalidProperty)
		}
		p.Color = c
		return nil
	case "wood":
		p.Wood = raw
		return nil
	case "drinkmessage":
		p.DrinkMessage = raw
		return nil
	case "drinktitle":
		p.DrinkTitle = raw
		return nil
	case "glint":
		b, err := parseYesNo(raw)
		if err != nil {
			return fmt.Errorf("glint %q: %w", raw, domain.ErrInvalidProperty)
		}
		p.Glint = b
		return nil
	}
	return fmt.Errorf("%q: %w", key, domain.ErrUnknownProperty)
}

// ClearProperty unsets a property.
func ClearProperty(d *domain.Draft, key string) error {
	p := &d.Properties
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "cookingtime":
		p.CookingTime = nil
	case "distillruns":
		p.DistillRuns = nil
	case "distilltime":
		p.DistillTime = nil
	case "difficulty":
		p.Difficulty = nil
	case "age":
		p.Age = nil
	case "alcohol":
		p.Alcohol = nil
	case "color":
		p.Color = ""
	case "wood":
		p.Wood = ""
	case "drinkmessage":
		p.DrinkMessage = ""
	case "drinktitle":
		p.DrinkTitle = ""
	case "glint":
		p.Glint = false
	default:
		return fmt.Errorf("%q: %w", key, domain.ErrUnknownProperty)
	}
	return nil
}

// setInt parses raw into dst, enforcing min and, when max >= min, max.
func setInt(dst **int, key, raw string, min, max int) error {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("%s %q is not a whole number: %w", key, raw, domain.ErrInvalidProperty)
	}
	if n < min || (max >= min && n > max) {
		if max >= min {
			return fmt.Errorf("%s must be between %d and %d: %w", key, min, max, domain.ErrInvalidProperty)
		}
		return fmt.Errorf("%s must be at least %d: %w", key, min, domain.ErrInvalidProperty)
	}
	*dst = &n
	return nil
}

func parseYesNo(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "", "y", "yes", "on":
		return true, nil
	case "n", "no", "off":
		return false, nil
	}
	return strconv.ParseBool(s)
}
