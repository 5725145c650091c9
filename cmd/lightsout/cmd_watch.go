package main

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/pdrpinto/bestfirst"
	"github.com/pdrpinto/bestfirst/internal/gridview"
	"github.com/pdrpinto/bestfirst/lightsout"
)

var (
	statusStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#2CD7C7"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#2C4A54"))
)

type stepMsg struct{}

func stepTick() tea.Cmd {
	return tea.Tick(60*time.Millisecond, func(time.Time) tea.Msg { return stepMsg{} })
}

// watchModel drives one Stepper and shows the board of whichever search
// state was popped last.
type watchModel struct {
	stepper  *bestfirst.Stepper[lightsout.Board]
	board    lightsout.Board
	snapshot bestfirst.StepSnapshot[lightsout.Board]
	playing  bool
	err      error
}

// Init implements tea.Model.
func (m watchModel) Init() tea.Cmd { return stepTick() }

// Update implements tea.Model.
func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.playing = !m.playing
		case "n":
			m = m.step()
		}
	case stepMsg:
		if m.playing && !m.snapshot.Done && m.err == nil {
			m = m.step()
		}
		return m, stepTick()
	}
	return m, nil
}

func (m watchModel) step() watchModel {
	snapshot, err := m.stepper.Step()
	m.snapshot = snapshot
	m.err = err
	if snapshot.Current != nil {
		m.board = snapshot.Current.Latest
	}
	return m
}

// View implements tea.Model.
func (m watchModel) View() string {
	var status string
	switch {
	case m.err != nil:
		status = "stopped: " + m.err.Error()
	case m.snapshot.Done && m.snapshot.Found:
		status = fmt.Sprintf("solved  moves %d  explored %d",
			len(m.snapshot.Current.Path()), m.snapshot.Explored)
	case m.snapshot.Done:
		status = fmt.Sprintf("exhausted  explored %d", m.snapshot.Explored)
	default:
		status = fmt.Sprintf("step %d  score %d/%d  frontier %d  explored %d",
			m.snapshot.StepIndex,
			m.board.Score(), m.board.Width()*m.board.Height(),
			m.snapshot.FrontierLen, m.snapshot.Explored)
	}
	return gridview.Render(m.board) + "\n" +
		statusStyle.Render(status) + "\n" +
		helpStyle.Render("space play/pause   n step   q quit") + "\n"
}

func runWatch(cmd *cobra.Command, args []string) error {
	board, err := initialBoard(cmd)
	if err != nil {
		return err
	}
	stepper := bestfirst.NewStepper(cmd.Context(), board, depthBound(), searchOptions()...)
	defer stepper.Close()

	model := watchModel{stepper: stepper, board: board, playing: true}
	if _, err := tea.NewProgram(model).Run(); err != nil {
		return err
	}

	result := stepper.Result()
	if result.Found {
		fmt.Printf("Solved in %d moves, explored %d states\n",
			len(result.Solution.Path()), result.Explored)
	}
	return nil
}
