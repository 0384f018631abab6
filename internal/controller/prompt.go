package controller

import (
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/aryanadla/twinTrim/internal/model"
)

const (
	phaseSelect = iota
	phaseConfirm
)

var (
	cursorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	checkedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	faintStyle   = lipgloss.NewStyle().Faint(true)
)

// promptModel is the Bubble Tea model for the per-set deletion prompt: a
// checkbox list over the duplicates followed by a yes/no confirmation.
type promptModel struct {
	set      m.DuplicateSet
	cursor   int
	selected map[int]struct{}
	phase    int
	// confirm defaults to yes, matching the original prompt.
	confirm  bool
	canceled bool
	errMsg   string
}

func newPromptModel(set m.DuplicateSet) promptModel {
	return promptModel{
		set:      set,
		selected: make(map[int]struct{}),
		confirm:  true,
	}
}

func (pm promptModel) Init() tea.Cmd {
	return nil
}

func (pm promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return pm, nil
	}

	if keyMsg.Type == tea.KeyCtrlC || keyMsg.Type == tea.KeyEsc {
		pm.canceled = true
		return pm, tea.Quit
	}

	if pm.phase == phaseConfirm {
		return pm.updateConfirm(keyMsg)
	}

	return pm.updateSelect(keyMsg)
}

func (pm promptModel) updateSelect(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if pm.cursor > 0 {
			pm.cursor--
		}

	case "down", "j":
		if pm.cursor < len(pm.set.Duplicates)-1 {
			pm.cursor++
		}

	case " ":
		if _, ok := pm.selected[pm.cursor]; ok {
			delete(pm.selected, pm.cursor)
		} else {
			pm.selected[pm.cursor] = struct{}{}
		}

		pm.errMsg = ""

	case "a":
		for i := range pm.set.Duplicates {
			pm.selected[i] = struct{}{}
		}

		pm.errMsg = ""

	case "enter":
		if len(pm.selected) == 0 {
			pm.errMsg = "You must choose at least one file."
			return pm, nil
		}

		pm.phase = phaseConfirm

	case "q":
		pm.canceled = true
		return pm, tea.Quit
	}

	return pm, nil
}

func (pm promptModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		pm.confirm = true
		return pm, tea.Quit

	case "n", "N":
		pm.confirm = false
		return pm, tea.Quit

	case "left", "right", "h", "l", "tab":
		pm.confirm = !pm.confirm

	case "enter":
		return pm, tea.Quit
	}

	return pm, nil
}

func (pm promptModel) View() string {
	var b strings.Builder

	if pm.phase == phaseConfirm {
		pm.viewConfirm(&b)
		return b.String()
	}

	b.WriteString("Select files to delete (space to select, enter to confirm, ctrl+c to cancel)\n\n")

	for i, dup := range pm.set.Duplicates {
		cursor := "  "
		if i == pm.cursor {
			cursor = cursorStyle.Render("> ")
		}

		checkbox := "[ ]"
		if _, ok := pm.selected[i]; ok {
			checkbox = checkedStyle.Render("[x]")
		}

		fmt.Fprintf(&b, "%s%s %d) %s (Size: %d bytes)\n", cursor, checkbox, i+1, dup.Path, dup.Size)
	}

	if pm.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render(pm.errMsg) + "\n")
	}

	b.WriteString("\n" + faintStyle.Render("↑/↓ move · space toggle · a all · enter continue") + "\n")

	return b.String()
}

func (pm promptModel) viewConfirm(b *strings.Builder) {
	b.WriteString("Are you sure you want to delete the selected files?\n\n")

	yes, no := "  yes", "  no"
	if pm.confirm {
		yes = cursorStyle.Render("> yes")
	} else {
		no = cursorStyle.Render("> no")
	}

	fmt.Fprintf(b, "%s\n%s\n", yes, no)
}

// selection converts the final model state into the workflow's answer.
func (pm promptModel) selection() Selection {
	if pm.canceled || !pm.confirm {
		return Selection{}
	}

	files := make([]m.Candidate, 0, len(pm.selected))
	for i, dup := range pm.set.Duplicates {
		if _, ok := pm.selected[i]; ok {
			files = append(files, dup)
		}
	}

	return Selection{Files: files, Confirmed: true}
}

// runPrompt drives the prompt program to completion on the given output.
func runPrompt(set m.DuplicateSet, out io.Writer) (Selection, error) {
	program := tea.NewProgram(newPromptModel(set), tea.WithOutput(out))

	final, err := program.Run()
	if err != nil {
		return Selection{}, fmt.Errorf("deletion prompt: %w", err)
	}

	pm, ok := final.(promptModel)
	if !ok {
		return Selection{}, fmt.Errorf("unexpected prompt model %T", final)
	}

	return pm.selection(), nil
}
