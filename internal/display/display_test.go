package display

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/hammamikhairi/brewcraft/internal/catalog"
	"github.com/hammamikhairi/brewcraft/internal/domain"
	"github.com/hammamikhairi/brewcraft/internal/engine"
	"github.com/hammamikhairi/brewcraft/internal/logger"
	"github.com/hammamikhairi/brewcraft/internal/storage"
)

func TestWrap(t *testing.T) {
	got := Wrap("Lore can follow this format and every line may carry a quality prefix", 20)
	for _, l := range strings.Split(got, "\n") {
		if !strings.HasPrefix(l, "  ") {
			t.Fatalf("line not indented: %q", l)
		}
		if len(strings.TrimRight(l, " ")) > 22 {
			t.Fatalf("line too long (%d): %q", len(l), l)
		}
	}
}

func TestFormatHelpKeepsEveryCommand(t *testing.T) {
	rows := [][2]string{
		{"new", "start a drink recipe"},
		{"pick <n> <amount>", "add the n-th ingredient from the last search, which may be a long description"},
	}
	got := FormatHelp(rows, 50)
	for _, r := range rows {
		if !strings.Contains(got, r[0]) {
			t.Fatalf("missing %q in:\n%s", r[0], got)
		}
	}
	if n := strings.Count(got, "\n") + 1; n < 3 {
		t.Fatalf("expected the long description to wrap, got %d lines", n)
	}
}

func TestStripCodes(t *testing.T) {
	if got := stripCodes("&6Golden &fAle"); got != "Golden Ale" {
		t.Fatalf("got %q", got)
	}
}

func TestSnapshot(t *testing.T) {
	store := storage.NewMemoryStore(logger.New(logger.LevelOff, nil))
	if snapshot(store) != nil {
		t.Fatal("expected no snapshot without sessions")
	}

	d := domain.NewDraft()
	d.Names.Regular = "Ale"
	d.Ingredients = append(d.Ingredients, domain.IngredientLine{Item: "minecraft:wheat", Amount: 3})
	err := store.Save(context.Background(), &domain.Session{
		ID: "s1", Draft: d, Status: domain.SessionActive, StartedAt: time.Now(),
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	info := snapshot(store)
	if info == nil {
		t.Fatal("expected a snapshot")
	}
	if info.name != "Ale" || info.ingredients != 1 || info.effects != 0 {
		t.Fatalf("unexpected snapshot: %+v", info)
	}
	if strings.Join(info.missing, ",") != "bad,good" {
		t.Fatalf("unexpected missing names: %v", info.missing)
	}
}

// The status bar polls the store from its own goroutine while the editor
// keeps changing the draft. Run with -race.
func TestSnapshotWhileEditing(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	ctx := context.Background()
	store := storage.NewMemoryStore(log)
	eng := engine.New(catalog.NewIndex(nil), catalog.NewEffectIndex("en"), store, log)

	session, err := eng.StartSession(ctx, domain.RecipeDrink)
	if err != nil {
		t.Fatalf("starting session: %v", err)
	}

	const rounds = 500
	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-stop:
				return
			default:
				if info := snapshot(store); info != nil && info.ingredients > rounds {
					t.Errorf("impossible ingredient count %d", info.ingredients)
					return
				}
			}
		}
	}()

	for i := 0; i < rounds; i++ {
		if _, err := eng.AddCustomIngredient(ctx, session.ID, fmt.Sprintf("minecraft:apple/%d", i+1)); err != nil {
			t.Fatalf("add: %v", err)
		}
		if err := eng.SetName(ctx, session.ID, domain.QualityRegular, fmt.Sprintf("Ale %d", i)); err != nil {
			t.Fatalf("set name: %v", err)
		}
	}
	close(stop)
	wg.Wait()

	info := snapshot(store)
	if info == nil || info.ingredients != rounds || info.name != fmt.Sprintf("Ale %d", rounds-1) {
		t.Fatalf("unexpected final snapshot: %+v", info)
	}
}
