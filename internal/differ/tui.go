// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Version is one selectable app version.
type Version struct {
	Name         string
	Identifier   int64
	CreationTime time.Time
}

// SelectVersions lets the user pick two versions. It returns them oldest
// first, or nil when the picker was abandoned.
func SelectVersions(items []Version, opts ...tea.ProgramOption) ([]Version, error) {
	p := tea.NewProgram(model{items: items}, opts...)
	m, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("version picker failed: %w", err)
	}
	return ordered(m.(model).selected), nil
}

type model struct {
	items    []Version
	cursor   int
	selected []Version
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "esc", "ctrl+c":
		m.selected = nil
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case " ":
		if len(m.items) == 0 {
			return m, nil
		}
		if i := index(m.selected, m.items[m.cursor]); i >= 0 {
			m.selected = append(m.selected[:i:i], m.selected[i+1:]...)
		} else if len(m.selected) < 2 {
			m.selected = append(m.selected, m.items[m.cursor])
		}
	case "enter":
		if len(m.selected) == 2 {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m model) View() string {
	var s strings.Builder
	s.WriteString("Select two app versions:\n\n")
	for i, v := range m.items {
		cursor := " "
		if m.cursor == i {
			cursor = ">"
		}
		mark := " "
		if index(m.selected, v) >= 0 {
			mark = "x"
		}
		fmt.Fprintf(&s, "%s [%s] %-8s %4d %s\n", cursor, mark, v.Name, v.Identifier, v.CreationTime.Format("2006-01-02T15:04:05Z"))
	}
	s.WriteString("\nSPACE: toggle, ENTER: go, Q/ESCAPE: quit\n")
	return s.String()
}

func index(versions []Version, version Version) int {
	for i, v := range versions {
		if v.Name == version.Name {
			return i
		}
	}
	return -1
}

// ordered returns a pair sorted by creation time.
func ordered(pair []Version) []Version {
	if len(pair) != 2 {
		return nil
	}
	if pair[1].CreationTime.Before(pair[0].CreationTime) {
		return []Version{pair[1], pair[0]}
	}
	return pair
}
