package repl

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// model is the bubbletea model of the interactive session. Finished
// evaluations are printed above the input line so the terminal keeps the
// scrollback.
type model struct {
	session  *Session
	input    textinput.Model
	count    int
	quitting bool
}

func newModel(s *Session) model {
	input := textinput.New()
	input.Prompt = promptStyle.Render(s.prompt)
	input.Placeholder = "a & (b | !a)"
	input.Focus()

	return model{session: s, input: input}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tea.Println(bannerStyle.Render(Banner)))
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc, tea.KeyCtrlD:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m model) submit() (tea.Model, tea.Cmd) {
	line := strings.TrimSpace(m.input.Value())
	m.input.SetValue("")

	output, quit, err := m.session.Evaluate(line)
	if quit {
		m.quitting = true
		return m, tea.Quit
	}

	if line == "" {
		return m, nil
	}

	m.count++

	return m, tea.Println(m.entry(line, output, err))
}

// entry is the scrollback text of the latest evaluation, numbered by count
func (m model) entry(line, output string, err error) string {
	entry := helpStyle.Render(fmt.Sprintf("#%d", m.count)) + " " + promptStyle.Render(m.session.prompt) + line + "\n"
	if err != nil {
		entry += errorStyle.Render(err.Error())
	} else {
		entry += strings.TrimRight(output, "\n")
	}

	return entry + "\n"
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	return m.input.View() + "\n" + helpStyle.Render("enter: evaluate • exit/esc: quit")
}

// RunTUI runs the session as a terminal UI on the process's terminal until the
// user quits or ctx is canceled.
func (s *Session) RunTUI(ctx context.Context) error {
	program := tea.NewProgram(newModel(s), tea.WithContext(ctx))

	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return ctx.Err()
	}

	return err
}
