package conversation

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/hammamikhairi/brewcraft/internal/domain"
	"github.com/hammamikhairi/brewcraft/internal/logger"
)

var _ domain.Notifier = (*CLINotifier)(nil)

// Markers lead every notice so confirmations and alerts stay apart even
// when the terminal drops colour.
const (
	MarkOK    = "✔ "
	MarkAlert = "✘ "
)

var (
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#86efac"))
	alertStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#f87171")).Bold(true)
)

// Sink receives one formatted notice. display.UI.Printf satisfies it.
type Sink func(format string, a ...any)

// CLINotifier reports the outcome of each editor command on the terminal.
type CLINotifier struct {
	log  *logger.Logger
	sink Sink
}

// NewCLINotifier returns a notifier writing to sink, or to stdout when
// sink is nil.
func NewCLINotifier(log *logger.Logger, sink Sink) *CLINotifier {
	if sink == nil {
		sink = func(format string, a ...any) { fmt.Printf(format+"\n", a...) }
	}
	return &CLINotifier{log: log, sink: sink}
}

func (n *CLINotifier) Notify(ctx context.Context, message string) error {
	return n.emit("ok", okStyle.Render(MarkOK+message))
}

func (n *CLINotifier) NotifyUrgent(ctx context.Context, message string) error {
	return n.emit("alert", alertStyle.Render(MarkAlert+message))
}

func (n *CLINotifier) emit(kind, line string) error {
	n.log.Debug("notice (%s): %s", kind, line)
	n.sink("%s", line)
	return nil
}
