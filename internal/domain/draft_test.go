package domain

import "testing"

func TestDraftCloneSharesNothing(t *testing.T) {
	n := 10
	d := NewDraft()
	d.Names.Regular = "Ale"
	d.Ingredients = append(make([]IngredientLine, 0, 4), IngredientLine{Item: "minecraft:wheat", Amount: 3})
	d.Lore = ConditionalText{"+ Tastes awful"}
	d.Properties.CookingTime = &n

	c := d.Clone()
	c.Names.Regular = "Stout"
	c.Ingredients = append(c.Ingredients, IngredientLine{Item: "minecraft:apple", Amount: 1})
	c.Ingredients[0].Amount = 9
	c.Lore[0] = "changed"
	*c.Properties.CookingTime = 20

	if d.Names.Regular != "Ale" {
		t.Fatalf("name leaked: %q", d.Names.Regular)
	}
	if len(d.Ingredients) != 1 || d.Ingredients[0].Amount != 3 {
		t.Fatalf("ingredients leaked: %+v", d.Ingredients)
	}
	if d.Lore[0] != "+ Tastes awful" {
		t.Fatalf("lore leaked: %q", d.Lore[0])
	}
	if *d.Properties.CookingTime != 10 {
		t.Fatalf("cooking time leaked: %d", *d.Properties.CookingTime)
	}
}

func TestSessionCloneCopiesDraft(t *testing.T) {
	s := &Session{ID: "s1", Draft: NewDraft()}
	c := s.Clone()
	if c.Draft == s.Draft {
		t.Fatal("expected a separate draft")
	}
	c.Status = SessionCompleted
	if s.Status != SessionActive {
		t.Fatalf("status leaked: %s", s.Status)
	}
}
