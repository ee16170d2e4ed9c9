// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package console

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tfctl/awsops/internal/log"
)

const (
	historyFileName = ".awsops_history"
	maxHistory      = 1000
)

var promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF9900"))

type exchange struct {
	query  string
	result string
}

type model struct {
	input     textinput.Model
	session   *Session
	banner    string
	history   []string
	histIndex int
	histFile  string
	exchanges []exchange
}

func newModel(s *Session, histFile string) model {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 2048
	ti.Width = 999
	ti.Prompt = ""
	ti.Cursor.SetMode(cursor.CursorBlink)

	return model{
		input:     ti,
		session:   s,
		banner:    fmt.Sprintf("%d page(s) loaded. Type 'help' for syntax, 'exit' or Ctrl+C to quit.", len(s.Pages)),
		history:   loadHistory(histFile),
		histIndex: -1,
		histFile:  histFile,
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch key.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit

	case "enter":
		entry := strings.TrimSpace(m.input.Value())
		m.input.SetValue("")
		switch entry {
		case "":
			return m, nil
		case "exit", "quit":
			return m, tea.Quit
		}

		result := helpText
		if entry != "help" {
			result = m.session.Eval(entry)
		}
		m.exchanges = append(m.exchanges, exchange{query: entry, result: result})
		m.history = append(m.history, entry)
		m.histIndex = -1
		saveHistory(m.histFile, m.history)
		return m, nil

	case "up":
		if len(m.history) == 0 {
			return m, nil
		}
		if m.histIndex == -1 {
			m.histIndex = len(m.history) - 1
		} else if m.histIndex > 0 {
			m.histIndex--
		}
		m.input.SetValue(m.history[m.histIndex])
		m.input.CursorEnd()
		return m, nil

	case "down":
		if m.histIndex >= 0 && m.histIndex < len(m.history)-1 {
			m.histIndex++
			m.input.SetValue(m.history[m.histIndex])
			m.input.CursorEnd()
		} else {
			m.histIndex = -1
			m.input.SetValue("")
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) View() string {
	prompt := promptStyle.Render("> ")
	lines := []string{m.banner}
	for _, x := range m.exchanges {
		lines = append(lines, prompt+x.query, x.result)
	}
	lines = append(lines, prompt+m.input.View())
	return strings.Join(lines, "\n")
}

const helpText = `Query syntax:
  *                          whole response (pages merged)
  Field.Path                 a response field, gjson syntax
                               ProfilingGroups.#.Name
  ^Param                     echo a bound parameter
  /expression                HCL expression over the response
                               /length(AppSummaries)
                               /[for a in AppSummaries : a.Name if a.ComplianceStatus != "PolicyMet"]
                               /pages[0].NextToken

  Variables for /expressions:
    response, pages, params and every top level response key.

  Navigation:
    up/down                  command history
    exit, Ctrl+C             quit`

// Run opens the console over s and blocks until the user quits.
func Run(s *Session, opts ...tea.ProgramOption) error {
	_, err := tea.NewProgram(newModel(s, historyFile()), opts...).Run()
	return err
}

func historyFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return historyFileName
	}
	return filepath.Join(home, historyFileName)
}

func loadHistory(name string) []string {
	var history []string
	if name == "" {
		return history
	}

	f, err := os.Open(name)
	if err != nil {
		return history
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			history = append(history, line)
		}
	}
	return history
}

func saveHistory(name string, history []string) {
	if name == "" {
		return
	}

	start := max(0, len(history)-maxHistory)

	f, err := os.Create(name)
	if err != nil {
		log.Debugf("console: history not saved: %v", err)
		return
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, h := range history[start:] {
		fmt.Fprintln(w, h)
	}
	w.Flush()
}
