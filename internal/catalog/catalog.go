// Package catalog provides the searchable lists of ingredients and potion
// effects the operator picks from.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/hammamikhairi/brewcraft/internal/domain"
	"github.com/hammamikhairi/brewcraft/internal/logger"
)

// Compile-time interface check.
var _ domain.Catalog = (*Index)(nil)

// Errors reported for a source whose content cannot be used.
var (
	ErrMalformed = errors.New("not valid JSON")
	ErrNotArray  = errors.New("top-level value is not an array")
)

// Source is one raw catalog document. Prefix namespaces every ID it yields
// so two sources never collide, even when they reuse raw IDs.
type Source struct {
	Name   string
	Prefix string
	Read   func() ([]byte, error)
}

// FileSource reads the catalog from a JSON file.
func FileSource(path, prefix string) Source {
	return Source{
		Name:   path,
		Prefix: prefix,
		Read:   func() ([]byte, error) { return os.ReadFile(path) },
	}
}

// BytesSource serves an in-memory document. Handy for tests and embedding.
func BytesSource(name, prefix string, data []byte) Source {
	return Source{
		Name:   name,
		Prefix: prefix,
		Read:   func() ([]byte, error) { return data, nil },
	}
}

// Index is an immutable, ordered list of catalog entries.
type Index struct {
	entries []domain.CatalogEntry
	byID    map[string]int
}

// NewIndex builds an index over entries, keeping the first occurrence of
// any repeated ID.
func NewIndex(entries []domain.CatalogEntry) *Index {
	idx := &Index{
		entries: make([]domain.CatalogEntry, 0, len(entries)),
		byID:    make(map[string]int, len(entries)),
	}
	for _, e := range entries {
		if _, dup := idx.byID[e.ID]; dup {
			continue
		}
		idx.byID[e.ID] = len(idx.entries)
		idx.entries = append(idx.entries, e)
	}
	return idx
}

// Load reads every source in order and concatenates their entries. A source
// that cannot be read or parsed contributes nothing; its failure is returned
// as a *domain.CatalogLoadError and the remaining sources are still loaded.
func Load(ctx context.Context, log *logger.Logger, sources ...Source) (*Index, []error) {
	var (
		all  []domain.CatalogEntry
		errs []error
	)
	for _, src := range sources {
		if err := ctx.Err(); err != nil {
			errs = append(errs, &domain.CatalogLoadError{Source: src.Name, Err: err})
			continue
		}
		entries, err := parseSource(src)
		if err != nil {
			log.Warn("catalog %s skipped: %v", src.Name, err)
			errs = append(errs, &domain.CatalogLoadError{Source: src.Name, Err: err})
			continue
		}
		log.Debug("catalog %s: %d entries (prefix %s)", src.Name, len(entries), src.Prefix)
		all = append(all, entries...)
	}

	idx := NewIndex(all)
	if dropped := len(all) - idx.Len(); dropped > 0 {
		log.Warn("catalog: dropped %d entries with repeated IDs", dropped)
	}
	return idx, errs
}

func parseSource(src Source) ([]domain.CatalogEntry, error) {
	if src.Read == nil {
		return nil, fmt.Errorf("no reader")
	}
	data, err := src.Read()
	if err != nil {
		return nil, err
	}
	if !gjson.ValidBytes(data) {
		return nil, ErrMalformed
	}
	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		return nil, ErrNotArray
	}

	var out []domain.CatalogEntry
	pos := 0
	root.ForEach(func(_, v gjson.Result) bool {
		i := pos
		pos++
		if !v.IsObject() {
			return true
		}

		// A null or empty id is no id: fall back to the position.
		raw := fmt.Sprint(i)
		if id := v.Get("id"); present(id) {
			raw = id.String()
		}
		name := "Unknown"
		if n := v.Get("name"); present(n) {
			name = n.String()
		}
		out = append(out, domain.CatalogEntry{
			ID:          src.Prefix + "_" + raw,
			DisplayName: name,
		})
		return true
	})
	return out, nil
}

func present(r gjson.Result) bool {
	return r.Exists() && r.Type != gjson.Null && r.String() != ""
}

// Query returns the entries whose display name or alias contains query,
// case-insensitively, in catalog order. An empty query returns everything.
func (x *Index) Query(query string) []domain.CatalogEntry {
	q := strings.ToLower(query)
	out := make([]domain.CatalogEntry, 0, len(x.entries))
	for _, e := range x.entries {
		if matches(e, q) {
			out = append(out, e)
		}
	}
	return out
}

func matches(e domain.CatalogEntry, q string) bool {
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(e.DisplayName), q) {
		return true
	}
	return e.Alias != "" && strings.Contains(strings.ToLower(e.Alias), q)
}

// Get returns the entry with the given ID.
func (x *Index) Get(id string) (domain.CatalogEntry, error) {
	i, ok := x.byID[id]
	if !ok {
		return domain.CatalogEntry{}, domain.ErrNotFound
	}
	return x.entries[i], nil
}

// Len returns the number of entries.
func (x *Index) Len() int { return len(x.entries) }
