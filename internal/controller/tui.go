package controller

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"glslpack.dev/pkg/glslpack/internal/glsl"
	m "glslpack.dev/pkg/glslpack/internal/model"
)

// Lines taken by the pager around the viewport: title box and footer.
const pagerChrome = 5

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Border(lipgloss.RoundedBorder()).Padding(0, 1)
	footerStyle = lipgloss.NewStyle().Faint(true)
)

// TUI implements UI for interactive terminals. Tables that do not fit the
// terminal are shown in a scrollable pager.
type TUI struct {
	output io.Writer
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// DisplayMinified prints the output followed by a line break.
func (p *TUI) DisplayMinified(ctx context.Context, output string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return writeMinified(p.output, output)
}

// DisplayRenames shows the rename table, paged when it is taller than the
// terminal.
func (p *TUI) DisplayRenames(ctx context.Context, renames glsl.RenameTable) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return p.page(fmt.Sprintf("glslpack · %d renamed identifier(s)", len(renames)), renderRenamesTable(renames))
}

// DisplayBuildReport shows the build table, paged when it is taller than
// the terminal.
func (p *TUI) DisplayBuildReport(ctx context.Context, report m.BuildReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var b strings.Builder
	b.WriteString(renderBuildTable(report))

	for _, path := range report.Aggregates {
		fmt.Fprintf(&b, "wrote %s\n", path)
	}

	return p.page(fmt.Sprintf("glslpack · built %d entries", len(report.Entries)), b.String())
}

func (p *TUI) page(title, content string) error {
	model := newPagerModel(title, content)

	if width, height, ok := terminalSize(p.output); ok {
		model = model.resize(width, height)
	}

	// If content is short, just print and exit
	if !model.needsPagination() {
		_, err := fmt.Fprint(p.output, model.staticView())
		return err
	}

	program := tea.NewProgram(model, tea.WithOutput(p.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

type pagerKeys struct {
	quit key.Binding
}

type pagerModel struct {
	title    string
	content  string
	lines    int
	height   int
	viewport viewport.Model
	keys     pagerKeys
}

func newPagerModel(title, content string) pagerModel {
	vp := viewport.New(0, 0)
	vp.SetContent(content)

	return pagerModel{
		title:    title,
		content:  content,
		lines:    strings.Count(content, "\n"),
		viewport: vp,
		keys: pagerKeys{
			quit: key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
		},
	}
}

func (pm pagerModel) resize(width, height int) pagerModel {
	pm.height = height
	pm.viewport.Width = width
	pm.viewport.Height = max(height-pagerChrome, 1)

	return pm
}

// needsPagination returns true if the content is too large to fit on screen.
func (pm pagerModel) needsPagination() bool {
	return pm.height > 0 && pm.lines > pm.height-pagerChrome
}

func (pm pagerModel) Init() tea.Cmd {
	return nil
}

func (pm pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return pm.resize(msg.Width, msg.Height), nil

	case tea.KeyMsg:
		if key.Matches(msg, pm.keys.quit) {
			return pm, tea.Quit
		}
	}

	var cmd tea.Cmd
	pm.viewport, cmd = pm.viewport.Update(msg)

	return pm, cmd
}

func (pm pagerModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(pm.title))
	b.WriteString("\n")
	b.WriteString(pm.viewport.View())
	b.WriteString("\n")
	b.WriteString(footerStyle.Render(fmt.Sprintf(
		"  %3.f%% | ↑/k: up | ↓/j: down | pgup/pgdown: page | %s: %s",
		pm.viewport.ScrollPercent()*100,
		pm.keys.quit.Help().Key,
		pm.keys.quit.Help().Desc,
	)))
	b.WriteString("\n")

	return b.String()
}

func (pm pagerModel) staticView() string {
	return titleStyle.Render(pm.title) + "\n" + pm.content
}
