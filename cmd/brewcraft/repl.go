package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/hammamikhairi/brewcraft/internal/conversation"
	"github.com/hammamikhairi/brewcraft/internal/display"
	"github.com/hammamikhairi/brewcraft/internal/domain"
	"github.com/hammamikhairi/brewcraft/internal/engine"
	"github.com/hammamikhairi/brewcraft/internal/logger"
	"github.com/hammamikhairi/brewcraft/internal/recorder"
	"github.com/hammamikhairi/brewcraft/internal/render"
	"github.com/hammamikhairi/brewcraft/internal/storage"
)

// maxListed caps how many search results are printed at once.
const maxListed = 40

// systemClipboard copies text to the OS clipboard.
type systemClipboard struct{}

func (systemClipboard) WriteAll(text string) error { return clipboard.WriteAll(text) }

// Compile-time interface check.
var _ domain.Clipboard = systemClipboard{}

func runEditor(cmd *cobra.Command, args []string) error {
	// Cancelled when the UI quits.
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	ingredients, effects, loadErrs := loadCatalogs(ctx)

	store := storage.NewMemoryStore(log)
	ui := display.NewUI(store)
	eng := engine.New(ingredients, effects, store, log,
		engine.WithEffectDefaults(cfg.Effects.DefaultLevel, cfg.Effects.DefaultDuration),
		engine.WithRenderOptions(render.Options{Indent: cfg.Output.Indent}),
	)

	app := &cliApp{
		engine:   eng,
		parser:   conversation.NewKeywordParser(log),
		notifier: conversation.NewCLINotifier(log, ui.Printf),
		log:      log,
		ui:       ui,
	}
	if cfg.Output.Clipboard {
		if clipboard.Unsupported {
			log.Warn("clipboard unsupported on this system, finalized recipes are only printed")
		} else {
			app.clip = systemClipboard{}
		}
	}

	fmt.Println(display.RenderBanner("BreweryX recipe editor"))
	fmt.Println(display.BannerStyle.Render(fmt.Sprintf("  %d ingredients, %d effects loaded. Type 'help' for commands, 'quit' to exit.",
		ingredients.Len(), effects.Len())))
	for _, err := range loadErrs {
		fmt.Println(display.BannerStyle.Render("  warning: " + err.Error()))
	}
	fmt.Println()

	// Run app logic in a background goroutine.
	go func() {
		ui.WaitReady()
		app.run(ctx)
		ui.Quit()
	}()

	// Bubble Tea owns the terminal; blocks until quit.
	if err := ui.Run(); err != nil {
		log.Error("display: %v", err)
		return err
	}
	return nil
}

type cliApp struct {
	engine    *engine.Engine
	parser    domain.IntentParser
	notifier  domain.Notifier
	clip      domain.Clipboard // nil when copying is disabled
	log       *logger.Logger
	ui        *display.UI
	sessionID string // open editing session, "" when none
}

func (a *cliApp) run(ctx context.Context) {
	a.ui.PrintInfo(conversation.LineWelcome())

	uiCh := a.ui.InputChan()
	for {
		var input string
		var ok bool

		select {
		case <-ctx.Done():
			return
		case input, ok = <-uiCh:
			if !ok {
				return
			}
		}

		intent, err := a.parser.Parse(ctx, input)
		if err != nil {
			a.log.Error("parsing input: %v", err)
			continue
		}
		if intent.Type == domain.IntentUnknown && intent.Payload == "" {
			continue
		}

		a.log.Debug("intent: %s (payload=%q)", intent.Type, intent.Payload)
		if !a.handleIntent(ctx, intent) {
			return
		}
	}
}

// handleIntent dispatches one command. It returns false when the editor
// should exit.
func (a *cliApp) handleIntent(ctx context.Context, intent *domain.Intent) bool {
	switch intent.Type {
	case domain.IntentHelp:
		a.ui.PrintHelp(conversation.HelpCommands)
		return true
	case domain.IntentCodes:
		a.ui.Println(display.RenderCodes(8))
		return true
	case domain.IntentGuide:
		a.ui.PrintText(conversation.LineGuide(intent.Section))
		return true
	case domain.IntentQuit:
		a.quit(ctx)
		return false
	case domain.IntentNewDrink:
		a.start(ctx, domain.RecipeDrink)
		return true
	case domain.IntentNewCauldron:
		a.start(ctx, domain.RecipeCauldron)
		return true
	case domain.IntentUnknown:
		a.ui.PrintHint(conversation.LineUnknown(intent.Payload))
		return true
	}

	if a.sessionID == "" {
		a.ui.PrintHint(conversation.LineNoSession())
		return true
	}

	switch intent.Type {
	case domain.IntentSetName:
		a.setName(ctx, intent.Quality, intent.Payload)
	case domain.IntentFind:
		a.search(ctx, intent.Payload, a.engine.SearchIngredients)
	case domain.IntentEffects:
		a.search(ctx, intent.Payload, a.engine.SearchEffects)
	case domain.IntentPick:
		a.pick(ctx, intent.Payload)
	case domain.IntentCustom:
		a.custom(ctx, intent.Payload)
	case domain.IntentEffect:
		a.effect(ctx, intent.Payload)
	case domain.IntentCustomBatch:
		a.customEffects(ctx, intent.Payload)
	case domain.IntentText:
		a.appendText(ctx, intent.Section, intent.Payload)
	case domain.IntentSet:
		a.set(ctx, intent.Payload)
	case domain.IntentUnset:
		a.unset(ctx, intent.Payload)
	case domain.IntentShow:
		a.show(ctx)
	case domain.IntentStatus:
		a.status(ctx)
	case domain.IntentFinalize:
		a.finalize(ctx, "")
	case domain.IntentSave:
		if intent.Payload == "" {
			a.ui.PrintHint(conversation.LineSaveUsage())
			break
		}
		a.finalize(ctx, intent.Payload)
	}
	return true
}

// ── Session ──────────────────────────────────────────────────────

func (a *cliApp) start(ctx context.Context, kind domain.RecipeKind) {
	if a.sessionID != "" {
		a.ui.PrintHint(conversation.LineAlreadyEditing())
		return
	}
	session, err := a.engine.StartSession(ctx, kind)
	if errors.Is(err, domain.ErrNotImplemented) {
		a.ui.PrintInfo(conversation.LineCauldronSoon())
		return
	}
	if err != nil {
		a.fail(ctx, err)
		return
	}
	a.sessionID = session.ID
	a.ui.PrintInfo(conversation.LineSessionStarted())
}

func (a *cliApp) quit(ctx context.Context) {
	if a.sessionID != "" {
		if err := a.engine.Abandon(ctx, a.sessionID); err != nil {
			a.log.Error("abandoning session: %v", err)
		}
		a.sessionID = ""
	}
	a.ui.PrintInfo(conversation.LineBye())
}

// ── Editing ──────────────────────────────────────────────────────

func (a *cliApp) setName(ctx context.Context, q domain.Quality, name string) {
	if name == "" {
		a.ui.PrintHint(conversation.LineNameMissing())
		return
	}
	if err := a.engine.SetName(ctx, a.sessionID, q, name); err != nil {
		a.fail(ctx, err)
		return
	}
	a.notifier.Notify(ctx, conversation.LineNameSet(q, display.Colorize(name)))
}

type searchFunc func(ctx context.Context, sessionID, query string) ([]domain.CatalogEntry, error)

func (a *cliApp) search(ctx context.Context, query string, fn searchFunc) {
	results, err := fn(ctx, a.sessionID, query)
	if err != nil {
		a.fail(ctx, err)
		return
	}
	if len(results) == 0 {
		a.ui.PrintHint(conversation.LineNoResults(query))
		return
	}
	a.ui.PrintText(conversation.LineResults(results, maxListed))
}

func (a *cliApp) pick(ctx context.Context, payload string) {
	parts := conversation.Fields(payload, 2)
	if len(parts) != 2 {
		a.ui.PrintHint(conversation.LinePickUsage())
		return
	}
	n, err := strconv.Atoi(parts[0])
	if err != nil {
		a.ui.PrintHint(conversation.LinePickUsage())
		return
	}
	amount, err := strconv.Atoi(parts[1])
	if err != nil {
		a.fail(ctx, fmt.Errorf("%q: %w", parts[1], domain.ErrInvalidAmount))
		return
	}
	line, err := a.engine.PickIngredient(ctx, a.sessionID, n, amount)
	if err != nil {
		a.fail(ctx, err)
		return
	}
	a.notifier.Notify(ctx, conversation.LineIngredientAdded(line))
}

func (a *cliApp) custom(ctx context.Context, payload string) {
	if payload == "" {
		a.ui.PrintHint(conversation.LineCustomUsage())
		return
	}
	line, err := a.engine.AddCustomIngredient(ctx, a.sessionID, payload)
	if err != nil {
		a.fail(ctx, err)
		a.ui.PrintHint(conversation.LineCustomUsage())
		return
	}
	a.notifier.Notify(ctx, conversation.LineIngredientAdded(line))
}

func (a *cliApp) effect(ctx context.Context, payload string) {
	parts := conversation.Fields(payload, 3)
	if len(parts) == 0 {
		a.ui.PrintHint(conversation.LineEffectUsage())
		return
	}
	n, err := strconv.Atoi(parts[0])
	if err != nil {
		a.ui.PrintHint(conversation.LineEffectUsage())
		return
	}
	var level, duration string
	if len(parts) > 1 {
		level = parts[1]
	}
	if len(parts) > 2 {
		duration = parts[2]
	}
	line, err := a.engine.PickEffect(ctx, a.sessionID, n, level, duration)
	if err != nil {
		a.fail(ctx, err)
		return
	}
	a.notifier.Notify(ctx, conversation.LineEffectAdded(line))
}

func (a *cliApp) customEffects(ctx context.Context, payload string) {
	if payload == "" {
		a.ui.PrintHint(conversation.LineCustomEffectsUsage())
		return
	}
	lines, err := a.engine.AddCustomEffects(ctx, a.sessionID, payload)
	if err != nil {
		a.fail(ctx, err)
		return
	}
	a.notifier.Notify(ctx, conversation.LineEffectsAdded(len(lines)))
}

func (a *cliApp) appendText(ctx context.Context, s domain.Section, text string) {
	n, err := a.engine.AppendText(ctx, a.sessionID, s, text)
	if err != nil {
		a.fail(ctx, err)
		return
	}
	a.notifier.Notify(ctx, conversation.LineTextAdded(s, n))
}

func (a *cliApp) set(ctx context.Context, payload string) {
	parts := conversation.Fields(payload, 2)
	switch len(parts) {
	case 0:
		a.ui.PrintHint(conversation.LineSetUsage(recorder.PropertyKeys))
		return
	case 1:
		if recorder.AllowsEmpty(parts[0]) {
			parts = append(parts, "")
			break
		}
		if hint := conversation.LinePropertyHint(parts[0]); hint != "" {
			a.ui.PrintHint(parts[0] + ": " + hint)
		} else {
			a.ui.PrintHint(conversation.LineSetUsage(recorder.PropertyKeys))
		}
		return
	}
	if err := a.engine.SetProperty(ctx, a.sessionID, parts[0], parts[1]); err != nil {
		a.fail(ctx, err)
		if errors.Is(err, domain.ErrUnknownProperty) {
			a.ui.PrintHint(conversation.LineSetUsage(recorder.PropertyKeys))
		}
		return
	}
	a.notifier.Notify(ctx, conversation.LinePropertySet(parts[0], parts[1]))
}

func (a *cliApp) unset(ctx context.Context, key string) {
	if key == "" {
		a.ui.PrintHint(conversation.LineSetUsage(recorder.PropertyKeys))
		return
	}
	if err := a.engine.ClearProperty(ctx, a.sessionID, key); err != nil {
		a.fail(ctx, err)
		return
	}
	a.notifier.Notify(ctx, conversation.LinePropertyCleared(key))
}

// ── Output ───────────────────────────────────────────────────────

func (a *cliApp) show(ctx context.Context) {
	text, err := a.engine.Preview(ctx, a.sessionID)
	if err != nil {
		a.fail(ctx, err)
		return
	}
	a.ui.PrintRecipe(text)
}

func (a *cliApp) status(ctx context.Context) {
	session, err := a.engine.Status(ctx, a.sessionID)
	if err != nil {
		a.fail(ctx, err)
		return
	}
	a.ui.PrintInfo(conversation.LineStatus(session.Draft))
}

// finalize closes the session, prints the recipe and copies it. A
// non-empty path also writes it to that file.
func (a *cliApp) finalize(ctx context.Context, path string) {
	// With a path, the file is written before the session is closed so a
	// failed write leaves the draft editable.
	if path != "" {
		if err := a.writeRecipe(ctx, path); err != nil {
			a.fail(ctx, err)
			return
		}
	}

	text, err := a.engine.Finalize(ctx, a.sessionID)
	if err != nil {
		a.fail(ctx, err)
		return
	}
	a.sessionID = ""

	a.ui.PrintHeading(conversation.LineFinalized())
	a.ui.PrintRecipe(text)

	if a.clip != nil {
		if err := a.clip.WriteAll(text); err != nil {
			a.log.Warn("clipboard: %v", err)
			a.notifier.NotifyUrgent(ctx, conversation.LineClipboardFailed(err))
		} else {
			a.notifier.Notify(ctx, conversation.LineCopied())
		}
	}

	if path != "" {
		a.log.Info("recipe written to %s", path)
		a.notifier.Notify(ctx, conversation.LineSaved(path))
	}
}

func (a *cliApp) writeRecipe(ctx context.Context, path string) error {
	if err := a.engine.Ready(ctx, a.sessionID); err != nil {
		return err
	}
	text, err := a.engine.Preview(ctx, a.sessionID)
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(text), 0o644)
}

// fail reports a recoverable error. The operator simply retries.
func (a *cliApp) fail(ctx context.Context, err error) {
	a.log.Debug("command failed: %v", err)
	a.notifier.NotifyUrgent(ctx, err.Error())
}
