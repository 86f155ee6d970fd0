package catalog

import "github.com/hammamikhairi/brewcraft/internal/domain"

// Filter tracks the live search box over one catalog. The visible list is
// recomputed in full on every query change; catalogs are small enough that
// neither debouncing nor incremental narrowing is worth it.
type Filter struct {
	catalog domain.Catalog
	query   string
	results []domain.CatalogEntry
}

// NewFilter starts with an empty query, so every entry is visible.
func NewFilter(c domain.Catalog) *Filter {
	f := &Filter{catalog: c}
	f.OnQueryChanged("")
	return f
}

// OnQueryChanged replaces the query and returns the new visible list.
func (f *Filter) OnQueryChanged(query string) []domain.CatalogEntry {
	f.query = query
	f.results = f.catalog.Query(query)
	return f.Results()
}

// Query returns the current query string.
func (f *Filter) Query() string { return f.query }

// Results returns a copy of the visible entries.
func (f *Filter) Results() []domain.CatalogEntry {
	out := make([]domain.CatalogEntry, len(f.results))
	copy(out, f.results)
	return out
}

// Pick returns the n-th visible entry, counting from 1 like the numbered
// list shown to the operator.
func (f *Filter) Pick(n int) (domain.CatalogEntry, error) {
	if n < 1 || n > len(f.results) {
		return domain.CatalogEntry{}, domain.ErrNoSelection
	}
	return f.results[n-1], nil
}
