package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/khicago/covstat/internal/i18n"
	"github.com/khicago/covstat/internal/perf"
)

// reportModel keeps the finished report out of the renderer. The renderer
// only draws the status line, which it clears on quit, so the report can be
// written afterwards without being clipped to the terminal size.
type reportModel struct {
	ctx    context.Context
	report string
	status string
}

func newReportModel(ctx context.Context, report string) reportModel {
	perf.Mark(ctx, "tui.report.open")
	return reportModel{
		ctx:    ctx,
		report: report,
		status: PlaceholderStyle.Render(i18n.T("tui.report.status")),
	}
}

func (m reportModel) Init() tea.Cmd {
	return tea.Quit
}

func (m reportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		perf.Mark(m.ctx, "tui.report.action.exit")
	}
	return m, tea.Quit
}

func (m reportModel) View() string {
	return m.status
}

// ShowView runs the one-shot program, then writes the report to out in full.
func ShowView(ctx context.Context, report string, in io.Reader, out io.Writer) error {
	ctx, span := perf.StartSpan(ctx, "tui.report")
	defer span.End()

	final, err := tea.NewProgram(newReportModel(ctx, report), ProgramOptions(in, out)...).Run()
	if err != nil {
		return err
	}

	model, ok := final.(reportModel)
	if !ok {
		model = reportModel{report: report}
	}
	_, err = io.WriteString(out, model.report+"\n")
	return err
}
