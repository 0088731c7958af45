// Package tui provides the interactive read-eval-print surface over a
// shell session. It only ever talks to the shell through Run; the tree
// itself is never touched from here.
package tui

import (
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"vfsh/shell"
)

// IsInteractive reports whether both ends of the session are terminals.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// Model is the bubbletea model for the REPL: a managed input line with
// command history; finalized output scrolls into the terminal's own
// scrollback via tea.Println.
type Model struct {
	sh         *shell.Shell
	input      textinput.Model
	keys       KeyMap
	history    []string
	histIdx    int // -1 when not navigating history
	historyMax int
	banner     []string
	script     []string
	quitting   bool
}

// New creates a REPL over sh. Banner lines are printed once at startup;
// script lines, if any, run before the first prompt, exactly as if they
// had been typed.
func New(sh *shell.Shell, banner, script []string, historyMax int) Model {
	ti := textinput.New()
	ti.Prompt = PromptStyle.Render(sh.Prompt())
	ti.Focus()

	return Model{
		sh:         sh,
		input:      ti,
		keys:       DefaultKeyMap(),
		histIdx:    -1,
		historyMax: historyMax,
		banner:     banner,
		script:     script,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	for _, l := range m.banner {
		cmds = append(cmds, tea.Println(BannerStyle.Render(l)))
	}

	if len(m.script) > 0 {
		var out []string
		_, exit := m.sh.RunScript(m.script, func(line string) {
			out = append(out, line)
		})
		for _, l := range out {
			cmds = append(cmds, tea.Println(l))
		}
		if exit {
			cmds = append(cmds, tea.Quit)
		}
	}
	return tea.Sequence(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(keyMsg, m.keys.HistoryPrev):
			m.historyPrev()
			return m, nil
		case key.Matches(keyMsg, m.keys.HistoryNext):
			m.historyNext()
			return m, nil
		case key.Matches(keyMsg, m.keys.Submit):
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	m.input.SetValue("")
	m.pushHistory(line)
	m.histIdx = -1

	cmds := []tea.Cmd{tea.Println(PromptStyle.Render(m.sh.Prompt()) + line)}

	res := m.sh.Run(line)
	if res.Output != "" {
		out := res.Output
		if !res.Ok {
			out = ErrorStyle.Render(out)
		}
		cmds = append(cmds, tea.Println(out))
	}
	if res.Exit {
		m.quitting = true
		cmds = append(cmds, tea.Quit)
	}
	return m, tea.Sequence(cmds...)
}

func (m *Model) pushHistory(line string) {
	if strings.TrimSpace(line) == "" {
		return
	}
	m.history = append(m.history, line)
	if m.historyMax > 0 && len(m.history) > m.historyMax {
		m.history = m.history[len(m.history)-m.historyMax:]
	}
}

func (m *Model) historyPrev() {
	if len(m.history) == 0 {
		return
	}
	if m.histIdx < 0 {
		m.histIdx = len(m.history) - 1
	} else if m.histIdx > 0 {
		m.histIdx--
	}
	m.setInput(m.history[m.histIdx])
}

func (m *Model) historyNext() {
	if len(m.history) == 0 || m.histIdx < 0 {
		return
	}
	if m.histIdx < len(m.history)-1 {
		m.histIdx++
	}
	m.setInput(m.history[m.histIdx])
	if m.histIdx == len(m.history)-1 {
		m.histIdx = -1
	}
}

func (m *Model) setInput(text string) {
	m.input.SetValue(text)
	m.input.CursorEnd()
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.input.View() + "\n" + HelpStyle.Render(m.keys.HelpText())
}

// Run starts the interactive REPL and blocks until the session ends.
func Run(sh *shell.Shell, banner, script []string, historyMax int) error {
	_, err := tea.NewProgram(New(sh, banner, script, historyMax)).Run()
	return err
}
