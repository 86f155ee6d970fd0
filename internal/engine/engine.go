// Package engine runs recipe-editing sessions: it owns each session's
// search state and routes every edit through the recorder.
package engine

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hammamikhairi/brewcraft/internal/catalog"
	"github.com/hammamikhairi/brewcraft/internal/domain"
	"github.com/hammamikhairi/brewcraft/internal/logger"
	"github.com/hammamikhairi/brewcraft/internal/recorder"
	"github.com/hammamikhairi/brewcraft/internal/render"
)

// Option configures the engine.
type Option func(*Engine)

// WithEffectDefaults sets the level and duration used when an effect is
// picked without them.
func WithEffectDefaults(level, duration string) Option {
	return func(e *Engine) {
		e.defaultLevel = level
		e.defaultDuration = duration
	}
}

// WithRenderOptions sets the layout used by Preview and Finalize.
func WithRenderOptions(o render.Options) Option {
	return func(e *Engine) {
		e.render = o
	}
}

// Engine manages editing sessions. It depends only on interfaces and is
// fully testable with the in-memory implementations.
type Engine struct {
	ingredients domain.Catalog
	effects     domain.Catalog
	store       domain.SessionStore
	log         *logger.Logger

	defaultLevel    string
	defaultDuration string
	render          render.Options

	mu    sync.Mutex
	views map[string]*view
}

// view is the per-session search state. It lives outside the draft: it
// is never rendered and dies with the session.
type view struct {
	ingredients *catalog.Filter
	effects     *catalog.Filter
}

// New creates an editing engine over the ingredient and effect catalogs.
func New(ingredients, effects domain.Catalog, store domain.SessionStore, log *logger.Logger, opts ...Option) *Engine {
	e := &Engine{
		ingredients:     ingredients,
		effects:         effects,
		store:           store,
		log:             log,
		defaultLevel:    "1",
		defaultDuration: "30",
		views:           make(map[string]*view),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// StartSession opens a new session with an empty draft. Cauldron recipes
// are not supported yet.
func (e *Engine) StartSession(ctx context.Context, kind domain.RecipeKind) (*domain.Session, error) {
	if kind == domain.RecipeCauldron {
		return nil, fmt.Errorf("cauldron recipes: %w", domain.ErrNotImplemented)
	}

	now := time.Now()
	session := &domain.Session{
		ID:        uuid.NewString(),
		Kind:      kind,
		Draft:     domain.NewDraft(),
		Status:    domain.SessionActive,
		StartedAt: now,
		UpdatedAt: now,
	}

	if err := e.store.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("saving session: %w", err)
	}

	e.mu.Lock()
	e.views[session.ID] = &view{
		ingredients: catalog.NewFilter(e.ingredients),
		effects:     catalog.NewFilter(e.effects),
	}
	e.mu.Unlock()

	e.log.Info("started %s session %s", kind, session.ID)
	return session, nil
}

// ── Search ───────────────────────────────────────────────────────

// SearchIngredients updates the session's ingredient query and returns
// the visible entries.
func (e *Engine) SearchIngredients(ctx context.Context, sessionID, query string) ([]domain.CatalogEntry, error) {
	v, err := e.view(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return v.ingredients.OnQueryChanged(query), nil
}

// SearchEffects updates the session's effect query and returns the
// visible entries.
func (e *Engine) SearchEffects(ctx context.Context, sessionID, query string) ([]domain.CatalogEntry, error) {
	v, err := e.view(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return v.effects.OnQueryChanged(query), nil
}

// ── Ingredients ──────────────────────────────────────────────────

// PickIngredient records amount of the n-th visible ingredient.
func (e *Engine) PickIngredient(ctx context.Context, sessionID string, n, amount int) (domain.IngredientLine, error) {
	v, err := e.view(ctx, sessionID)
	if err != nil {
		return domain.IngredientLine{}, err
	}
	entry, err := v.ingredients.Pick(n)
	if err != nil {
		return domain.IngredientLine{}, err
	}

	var line domain.IngredientLine
	err = e.edit(ctx, sessionID, func(d *domain.Draft) error {
		line, err = recorder.AddIngredient(d, entry, amount)
		return err
	})
	return line, err
}

// AddCustomIngredient records a typed "<id>/<amount>" entry.
func (e *Engine) AddCustomIngredient(ctx context.Context, sessionID, input string) (domain.IngredientLine, error) {
	var line domain.IngredientLine
	err := e.edit(ctx, sessionID, func(d *domain.Draft) error {
		var err error
		line, err = recorder.AddCustomIngredient(d, input)
		return err
	})
	return line, err
}

// ── Effects ──────────────────────────────────────────────────────

// PickEffect records the n-th visible effect. An empty level or duration
// falls back to the configured default.
func (e *Engine) PickEffect(ctx context.Context, sessionID string, n int, level, duration string) (domain.EffectLine, error) {
	v, err := e.view(ctx, sessionID)
	if err != nil {
		return domain.EffectLine{}, err
	}
	entry, err := v.effects.Pick(n)
	if err != nil {
		return domain.EffectLine{}, err
	}
	if level == "" {
		level = e.defaultLevel
	}
	if duration == "" {
		duration = e.defaultDuration
	}

	var line domain.EffectLine
	err = e.edit(ctx, sessionID, func(d *domain.Draft) error {
		line, err = recorder.AddEffect(d, entry.ID, level, duration)
		return err
	})
	return line, err
}

// AddCustomEffects records a comma-separated batch of effect entries.
func (e *Engine) AddCustomEffects(ctx context.Context, sessionID, list string) ([]domain.EffectLine, error) {
	var lines []domain.EffectLine
	err := e.edit(ctx, sessionID, func(d *domain.Draft) error {
		lines = recorder.AddCustomEffects(d, list)
		return nil
	})
	return lines, err
}

// ── Names, text, properties ──────────────────────────────────────

// SetName sets one of the three quality names.
func (e *Engine) SetName(ctx context.Context, sessionID string, q domain.Quality, name string) error {
	return e.edit(ctx, sessionID, func(d *domain.Draft) error {
		recorder.SetName(d, q, name)
		return nil
	})
}

// AppendText appends lines to lore or one of the command blocks and
// returns how many were kept.
func (e *Engine) AppendText(ctx context.Context, sessionID string, s domain.Section, text string) (int, error) {
	var n int
	err := e.edit(ctx, sessionID, func(d *domain.Draft) error {
		n = recorder.AppendText(d, s, text)
		return nil
	})
	return n, err
}

// SetProperty sets a scalar property from its typed value.
func (e *Engine) SetProperty(ctx context.Context, sessionID, key, raw string) error {
	return e.edit(ctx, sessionID, func(d *domain.Draft) error {
		return recorder.SetProperty(d, key, raw)
	})
}

// ClearProperty unsets a scalar property.
func (e *Engine) ClearProperty(ctx context.Context, sessionID, key string) error {
	return e.edit(ctx, sessionID, func(d *domain.Draft) error {
		return recorder.ClearProperty(d, key)
	})
}

// ── Output ───────────────────────────────────────────────────────

// Preview renders the draft without closing the session.
func (e *Engine) Preview(ctx context.Context, sessionID string) (string, error) {
	session, err := e.active(ctx, sessionID)
	if err != nil {
		return "", err
	}
	return e.render.Serialize(session.Draft)
}

// Ready reports whether the session could be finalized now. It returns the
// same *domain.ValidationError Finalize would, and changes nothing.
func (e *Engine) Ready(ctx context.Context, sessionID string) error {
	session, err := e.active(ctx, sessionID)
	if err != nil {
		return err
	}
	return checkNames(session.Draft)
}

func checkNames(d *domain.Draft) error {
	missing := d.Names.Missing()
	if len(missing) == 0 {
		return nil
	}
	verr := &domain.ValidationError{}
	for _, q := range missing {
		verr.Fields = append(verr.Fields, "name."+q.String())
	}
	return verr
}

// Finalize renders the recipe and closes the session. All three names
// must be set; on any error the session stays open with its draft intact.
func (e *Engine) Finalize(ctx context.Context, sessionID string) (string, error) {
	session, err := e.active(ctx, sessionID)
	if err != nil {
		return "", err
	}

	if err := checkNames(session.Draft); err != nil {
		return "", err
	}

	text, err := e.render.Serialize(session.Draft)
	if err != nil {
		return "", err
	}

	session.Status = domain.SessionCompleted
	session.UpdatedAt = time.Now()
	if err := e.store.Delete(ctx, sessionID); err != nil {
		return "", fmt.Errorf("deleting session: %w", err)
	}
	e.dropView(sessionID)

	e.log.Info("session %s finalized (%d ingredients, %d effects)",
		sessionID, len(session.Draft.Ingredients), len(session.Draft.Effects))
	return text, nil
}

// Abandon marks a session as abandoned. Its draft is discarded.
func (e *Engine) Abandon(ctx context.Context, sessionID string) error {
	session, err := e.store.Load(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("loading session: %w", err)
	}

	session.Status = domain.SessionAbandoned
	session.UpdatedAt = time.Now()

	if err := e.store.Save(ctx, session); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	e.dropView(sessionID)

	e.log.Info("session %s abandoned", sessionID)
	return nil
}

// Status returns the full session state.
func (e *Engine) Status(ctx context.Context, sessionID string) (*domain.Session, error) {
	return e.store.Load(ctx, sessionID)
}

// ── Internals ────────────────────────────────────────────────────

// active loads a session that is still open for editing.
func (e *Engine) active(ctx context.Context, sessionID string) (*domain.Session, error) {
	session, err := e.store.Load(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("loading session: %w", err)
	}
	if session.Status != domain.SessionActive {
		return nil, domain.ErrSessionNotActive
	}
	return session, nil
}

func (e *Engine) view(ctx context.Context, sessionID string) (*view, error) {
	if _, err := e.active(ctx, sessionID); err != nil {
		return nil, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	v, ok := e.views[sessionID]
	if !ok {
		// Session saved by someone else; give it fresh, unfiltered lists.
		v = &view{
			ingredients: catalog.NewFilter(e.ingredients),
			effects:     catalog.NewFilter(e.effects),
		}
		e.views[sessionID] = v
	}
	return v, nil
}

func (e *Engine) dropView(sessionID string) {
	e.mu.Lock()
	delete(e.views, sessionID)
	e.mu.Unlock()
}

// edit applies fn to the session's draft and saves the session. The
// recorder leaves the draft untouched when fn fails, so nothing is saved.
func (e *Engine) edit(ctx context.Context, sessionID string, fn func(d *domain.Draft) error) error {
	session, err := e.active(ctx, sessionID)
	if err != nil {
		return err
	}
	if err := fn(session.Draft); err != nil {
		e.log.Debug("session %s: edit rejected: %v", sessionID, err)
		return err
	}
	session.UpdatedAt = time.Now()
	if err := e.store.Save(ctx, session); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	return nil
}
