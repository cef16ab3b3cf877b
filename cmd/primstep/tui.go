package main

import (
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/primstep/replay"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	chosenStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	staleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	helpStyle   = lipgloss.NewStyle().Faint(true)
)

// replayModel is the bubbletea model for stepping through a Prim history.
type replayModel struct {
	ctrl *replay.Controller
}

func newReplayModel(ctrl *replay.Controller) replayModel {
	return replayModel{ctrl: ctrl}
}

func (m replayModel) Init() tea.Cmd {
	return nil
}

func (m replayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	cmd, ok := replay.KeyCommand(key.String())
	if !ok {
		return m, nil
	}
	m.ctrl.Apply(cmd)
	if m.ctrl.Exited() {
		return m, tea.Quit
	}

	return m, nil
}

func (m replayModel) View() string {
	st, ok := m.ctrl.Current()
	if !ok {
		return "\n  No steps recorded.\n\n" + helpStyle.Render("  q: quit") + "\n"
	}

	lines := strings.Split(replay.Describe(st, m.ctrl.Index(), m.ctrl.Len()), "\n")
	var b strings.Builder
	b.WriteString("\n  " + titleStyle.Render("Prim's algorithm") + "\n\n")
	for i, line := range lines {
		switch {
		case i == 0 && st.Stale:
			line = staleStyle.Render(line)
		case i == 0:
			line = chosenStyle.Render(line)
		}
		b.WriteString("  " + line + "\n")
	}
	b.WriteString("\n" + helpStyle.Render("  →/d: next  ←/a: previous  q: quit") + "\n")

	return b.String()
}

// runReplay runs the interactive replay on the terminal.
func runReplay(ctrl *replay.Controller, out io.Writer) (bool, error) {
	p := tea.NewProgram(newReplayModel(ctrl), tea.WithAltScreen(), tea.WithOutput(out))
	if _, err := p.Run(); err != nil {
		return false, fmt.Errorf("replay: %w", err)
	}

	return ctrl.Exited(), nil
}
