package catalog

import (
	"errors"
	"testing"

	"github.com/hammamikhairi/brewcraft/internal/domain"
)

func TestFilterStartsUnfiltered(t *testing.T) {
	idx := NewEffectIndex("en")
	f := NewFilter(idx)

	if f.Query() != "" {
		t.Fatalf("expected empty query, got %q", f.Query())
	}
	if len(f.Results()) != idx.Len() {
		t.Fatalf("expected %d results, got %d", idx.Len(), len(f.Results()))
	}
}

func TestFilterRecomputesOnEveryChange(t *testing.T) {
	f := NewFilter(NewEffectIndex("en"))

	steps := []struct {
		query string
		want  int
	}{
		{"s", 0},
		{"sp", 1},
		{"spe", 1},
		{"sp", 1},
		{"", len(EffectIDs)},
		{"omen", 3},
	}
	for _, st := range steps {
		got := f.OnQueryChanged(st.query)
		if st.want == 0 {
			continue
		}
		if len(got) != st.want {
			t.Fatalf("query=%q: got %d results, want %d", st.query, len(got), st.want)
		}
	}

	got := f.Results()
	want := []string{"BAD_OMEN", "RAID_OMEN", "TRIAL_OMEN"}
	for i := range want {
		if got[i].ID != want[i] {
			t.Fatalf("result %d: got %s, want %s", i, got[i].ID, want[i])
		}
	}
}

func TestFilterPick(t *testing.T) {
	f := NewFilter(NewEffectIndex("en"))
	f.OnQueryChanged("omen")

	tests := []struct {
		n       int
		want    string
		wantErr error
	}{
		{1, "BAD_OMEN", nil},
		{3, "TRIAL_OMEN", nil},
		{0, "", domain.ErrNoSelection},
		{4, "", domain.ErrNoSelection},
	}
	for _, tt := range tests {
		e, err := f.Pick(tt.n)
		if tt.wantErr != nil {
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("pick %d: expected %v, got %v", tt.n, tt.wantErr, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("pick %d: %v", tt.n, err)
		}
		if e.ID != tt.want {
			t.Fatalf("pick %d: got %s, want %s", tt.n, e.ID, tt.want)
		}
	}
}

func TestFilterResultsAreCopies(t *testing.T) {
	f := NewFilter(NewEffectIndex("en"))
	f.OnQueryChanged("speed")
	got := f.Results()
	got[0].ID = "MUTATED"

	e, err := f.Pick(1)
	if err != nil {
		t.Fatalf("pick: %v", err)
	}
	if e.ID != "SPEED" {
		t.Fatalf("filter state was mutated through Results: %s", e.ID)
	}
}
