// Package display provides the terminal UI using Bubble Tea.
//
// The [UI] type manages a persistent draft status bar and an input
// prompt at the bottom of the terminal. All application output is
// printed above the rendered area via Program.Println / Printf,
// ensuring concurrent writes never garble the display.
package display

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/hammamikhairi/brewcraft/internal/domain"
)

// ── Styles ───────────────────────────────────────────────────────

var (
	barBg = lipgloss.NewStyle().
		Background(lipgloss.Color("#27272a")).
		Foreground(lipgloss.Color("#a1a1aa"))

	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fde68a"))

	missingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fca5a5")).
			Italic(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a1a1aa"))

	sepStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#52525b"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94a3b8"))

	// ── Output styles (soft palette) ──

	// BannerStyle is a muted amber for the startup banner.
	BannerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fcd34d"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bae6fd"))

	headingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bbf7d0")).
			Bold(true)

	primaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d4d4d8"))

	secondaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#71717a"))

	urgentOutputStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#fca5a5"))

	recipeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e9d5ff")).
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("#52525b")).
			PaddingLeft(1)

	userInputEchoStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#a1a1aa"))
)

// prompt is plain text so the textinput width math stays correct.
const prompt = "brew> "

// ── UI ───────────────────────────────────────────────────────────

// UI manages the terminal through Bubble Tea.
//
// Call [NewUI] then [UI.Run] (blocking).  Other goroutines may
// safely call [UI.Println], [UI.Printf], and read from
// [UI.InputChan] at any time after [UI.WaitReady] returns.
type UI struct {
	program *tea.Program
	inputCh chan string
	readyCh chan struct{}
	quitCh  chan struct{}
	store   domain.SessionStore
	done    atomic.Bool
}

// NewUI creates the display. Call Run() to start.
func NewUI(store domain.SessionStore) *UI {
	return &UI{
		store:   store,
		inputCh: make(chan string, 16),
		readyCh: make(chan struct{}),
		quitCh:  make(chan struct{}),
	}
}

// Println prints a line above the prompt. Thread-safe.
// If the program hasn't started yet, falls back to fmt.Println.
func (u *UI) Println(a ...interface{}) {
	if u.program != nil && !u.done.Load() {
		u.program.Println(a...)
	} else {
		fmt.Println(a...)
	}
}

// Printf prints formatted text above the prompt on its own line.
func (u *UI) Printf(format string, a ...interface{}) {
	if u.program != nil && !u.done.Load() {
		u.program.Printf(format, a...)
	} else {
		fmt.Printf(format+"\n", a...)
	}
}

// InputChan returns completed user-input lines.
func (u *UI) InputChan() <-chan string { return u.inputCh }

// ── Styled print helpers ─────────────────────────────────────────

// PrintInfo prints a conversational line.
func (u *UI) PrintInfo(text string) {
	u.Println(infoStyle.Render("  " + text))
}

// PrintHeading prints a section header.
func (u *UI) PrintHeading(text string) {
	u.Println(headingStyle.Render("  " + text))
}

// PrintText prints a block of plain text, one indented line per line.
func (u *UI) PrintText(text string) {
	for _, l := range strings.Split(text, "\n") {
		u.Println(primaryStyle.Render("  " + l))
	}
}

// PrintHint prints a secondary/dimmed line.
func (u *UI) PrintHint(text string) {
	u.Println(secondaryStyle.Render("  " + text))
}

// PrintUrgent prints an error line.
func (u *UI) PrintUrgent(text string) {
	u.Println(urgentOutputStyle.Render("  " + text))
}

// PrintWrapped prints prose wrapped to the terminal width.
func (u *UI) PrintWrapped(text string) {
	u.Println(primaryStyle.Render(Wrap(text, termWidth()-4)))
}

// PrintRecipe prints rendered recipe text with a gutter.
func (u *UI) PrintRecipe(text string) {
	u.Println(recipeStyle.Render(strings.TrimRight(text, "\n")))
}

// PrintHelp prints a two-column command table with wrapped descriptions.
func (u *UI) PrintHelp(rows [][2]string) {
	u.Println(FormatHelp(rows, termWidth()))
}

// PrintUserInput echoes the user's typed command into the scrollback.
func (u *UI) PrintUserInput(text string) {
	u.Println(promptStyle.Render("brew") + secondaryStyle.Render("> ") + userInputEchoStyle.Render(text))
}

// WaitReady blocks until the Bubble Tea event loop is running.
func (u *UI) WaitReady() { <-u.readyCh }

// Quit tells Bubble Tea to exit.
func (u *UI) Quit() {
	if u.program != nil {
		u.program.Quit()
	}
}

// QuitChan is closed when Run returns.
func (u *UI) QuitChan() <-chan struct{} { return u.quitCh }

// Run starts the Bubble Tea event loop.  Blocks until quit.
func (u *UI) Run() error {
	ti := textinput.New()
	ti.Prompt = prompt
	ti.PromptStyle = promptStyle
	ti.TextStyle = userInputEchoStyle
	ti.Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#94a3b8"))
	ti.Focus()
	ti.CharLimit = 1000
	ti.Width = 60 // updated on first WindowSizeMsg

	m := model{
		store:   u.store,
		input:   ti,
		inputCh: u.inputCh,
		readyCh: u.readyCh,
		echoFn: func(v string) {
			u.PrintUserInput(v)
		},
	}

	u.program = tea.NewProgram(m)
	_, err := u.program.Run()
	u.done.Store(true)
	close(u.quitCh)
	return err
}

// ── Wrapping ─────────────────────────────────────────────────────

// Wrap word-wraps text to width columns, indenting every line by two.
func Wrap(text string, width int) string {
	if width < 20 {
		width = 20
	}
	wrapped := wordwrap.String(text, width)
	lines := strings.Split(wrapped, "\n")
	for i, l := range lines {
		lines[i] = "  " + l
	}
	return strings.Join(lines, "\n")
}

// FormatHelp lays out command/description pairs, wrapping descriptions
// so they never run past width.
func FormatHelp(rows [][2]string, width int) string {
	cmdW := 0
	for _, r := range rows {
		if len(r[0]) > cmdW {
			cmdW = len(r[0])
		}
	}
	descW := width - cmdW - 6
	if descW < 20 {
		descW = 20
	}

	var b strings.Builder
	for _, r := range rows {
		desc := strings.Split(wordwrap.String(r[1], descW), "\n")
		for i, d := range desc {
			left := ""
			if i == 0 {
				left = r[0]
			}
			b.WriteString("  ")
			b.WriteString(headingStyle.Render(fmt.Sprintf("%-*s", cmdW, left)))
			b.WriteString("  ")
			b.WriteString(secondaryStyle.Render(d))
			b.WriteByte('\n')
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// ── Bubble Tea model ─────────────────────────────────────────────

type model struct {
	store   domain.SessionStore
	input   textinput.Model
	inputCh chan<- string
	readyCh chan struct{}
	echoFn  func(string) // prints user input into scrollback
	draft   *draftInfo
	width   int
}

// draftInfo is a snapshot of the open draft for the status bar.
type draftInfo struct {
	name        string
	ingredients int
	effects     int
	missing     []string
}

// Messages.
type tickMsg time.Time

func (m model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		tickCmd(),
		signalReady(m.readyCh),
	)
}

func signalReady(ch chan struct{}) tea.Cmd {
	return func() tea.Msg {
		close(ch)
		return nil
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyEnter:
			v := m.input.Value()
			m.input.Reset()
			if strings.TrimSpace(v) != "" {
				m.inputCh <- v
				// Echo from a Cmd so it runs outside Update.
				echoFn := m.echoFn
				return m, func() tea.Msg {
					echoFn(v)
					return nil
				}
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		if msg.Width > len(prompt) {
			m.input.Width = msg.Width - len(prompt)
		}
		return m, nil

	case tickMsg:
		m.draft = snapshot(m.store)
		title := "Brewcraft"
		if m.draft != nil && m.draft.name != "" {
			title += " - " + stripCodes(m.draft.name)
		}
		return m, tea.Batch(tickCmd(), tea.SetWindowTitle(title))
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// snapshot reads the oldest active session. Only one is open at a time.
func snapshot(store domain.SessionStore) *draftInfo {
	sessions, err := store.ListActive(context.Background())
	if err != nil || len(sessions) == 0 {
		return nil
	}
	d := sessions[0].Draft
	info := &draftInfo{
		name:        d.Names.Regular,
		ingredients: len(d.Ingredients),
		effects:     len(d.Effects),
	}
	for _, q := range d.Names.Missing() {
		info.missing = append(info.missing, q.String())
	}
	return info
}

func (m model) View() string {
	var b strings.Builder

	if m.draft != nil {
		b.WriteString(m.renderBar())
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	b.WriteString(m.input.View())
	return b.String()
}

func (m model) renderBar() string {
	d := m.draft
	name := labelStyle.Render("(unnamed)")
	if d.name != "" {
		name = Colorize(d.name)
	}

	parts := []string{
		name,
		labelStyle.Render("ingredients: ") + countStyle.Render(fmt.Sprint(d.ingredients)),
		labelStyle.Render("effects: ") + countStyle.Render(fmt.Sprint(d.effects)),
	}
	if len(d.missing) > 0 {
		parts = append(parts, missingStyle.Render("missing "+strings.Join(d.missing, "/")+" name"))
	}

	content := " " + strings.Join(parts, sepStyle.Render("  │  ")) + " "

	w := m.width
	if w <= 0 {
		w = 80
	}
	return barBg.Width(w).Render(content)
}

// stripCodes removes colour codes, for places that cannot show colour.
func stripCodes(s string) string {
	var b strings.Builder
	for _, seg := range splitCodes(s) {
		b.WriteString(seg.text)
	}
	return b.String()
}
