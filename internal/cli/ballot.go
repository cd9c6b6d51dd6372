package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"

	"github.com/agora-dao/agora-cli/internal/domain/models"
)

// ballotModel is the bubbletea model for picking a ballot choice
type ballotModel struct {
	choices   []models.VoteChoice
	cursor    int
	title     string
	done      bool
	cancelled bool
}

// initialBallotModel creates the initial model for the ballot picker
func initialBallotModel(title string) ballotModel {
	return ballotModel{
		choices: []models.VoteChoice{models.VoteYay, models.VoteNay},
		cursor:  0,
		title:   title,
	}
}

// Init is the initial command for bubbletea
func (m ballotModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model
func (m ballotModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.done = true
			m.cancelled = true
			return m, tea.Quit
		case "up", "k", "down", "j", "tab":
			m.cursor = (m.cursor + 1) % len(m.choices)
		case "y":
			m.cursor = 0
			m.done = true
			return m, tea.Quit
		case "n":
			m.cursor = 1
			m.done = true
			return m, tea.Quit
		case "enter":
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// View renders the UI
func (m ballotModel) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString(color.New(color.FgCyan, color.Bold).Sprintf("%s\n\n", m.title))

	for i, choice := range m.choices {
		cursor := " "
		if m.cursor == i {
			cursor = color.New(color.FgCyan).Sprint("▸")
		}

		label := color.New(color.FgGreen).Sprint(string(choice))
		if choice == models.VoteNay {
			label = color.New(color.FgRed).Sprint(string(choice))
		}

		b.WriteString(fmt.Sprintf("%s %s\n", cursor, label))
	}

	b.WriteString("\n")
	b.WriteString(color.New(color.FgYellow).Sprint("↑/↓: move  y/n: pick  Enter: confirm  q: quit\n"))

	return b.String()
}

// selectBallotChoice shows a yay/nay picker and returns the chosen side
func selectBallotChoice(title string) (models.VoteChoice, error) {
	model := initialBallotModel(title)
	p := tea.NewProgram(model)

	finalModel, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("ballot picker failed: %w", err)
	}

	m := finalModel.(ballotModel)
	if m.cancelled || !m.done {
		return "", fmt.Errorf("ballot cancelled")
	}

	return m.choices[m.cursor], nil
}
