// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package differ

import (
	"bytes"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	v1 = `{"resources":[{"logicalResourceId":{"identifier":"db"}}],"version":2,"appComponents":[]}`
	v2 = `{"resources":[{"logicalResourceId":{"identifier":"db"}},{"logicalResourceId":{"identifier":"cache"}}],"version":2,"appComponents":[]}`
)

func TestDiff(t *testing.T) {
	tests := []struct {
		name        string
		left, right string
		ignore      []string
		wantChanged bool
		wantOut     string
		wantErr     string
	}{
		{name: "identical", left: v1, right: v1, wantOut: "The versions are identical."},
		{name: "added resource", left: v1, right: v2, wantChanged: true, wantOut: "cache"},
		{name: "ignored key", left: v1, right: v2, ignore: []string{"resources"}, wantOut: "identical"},
		{name: "empty side", left: "", right: v2, wantErr: "nothing to compare"},
		{name: "bad json", left: "{", right: v2, wantErr: "left document"},
		{name: "not an object", left: v1, right: `[]`, wantErr: "right document"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			changed, err := Diff(&buf, []byte(tt.left), []byte(tt.right), Options{Ignore: tt.ignore})
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantChanged, changed)
			assert.Contains(t, buf.String(), tt.wantOut)
		})
	}
}

func key(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func drive(m model, keys ...string) (model, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(key(k))
		m = next.(model)
	}
	return m, cmd
}

func versions() []Version {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return []Version{
		{Name: "release", Identifier: 3, CreationTime: base.Add(72 * time.Hour)},
		{Name: "v2", Identifier: 2, CreationTime: base.Add(24 * time.Hour)},
		{Name: "v1", Identifier: 1, CreationTime: base},
	}
}

func TestModel_SelectTwo(t *testing.T) {
	m, cmd := drive(model{items: versions()}, " ", "down", "down", " ", "enter")

	require.NotNil(t, cmd, "enter with two selected quits")
	require.Len(t, m.selected, 2)

	got := ordered(m.selected)
	assert.Equal(t, "v1", got[0].Name)
	assert.Equal(t, "release", got[1].Name)
}

func TestModel_ToggleAndLimit(t *testing.T) {
	m, cmd := drive(model{items: versions()}, " ", " ", "enter")
	assert.Nil(t, cmd, "enter needs two selections")
	assert.Empty(t, m.selected)

	m, _ = drive(model{items: versions()}, " ", "down", " ", "down", " ")
	assert.Len(t, m.selected, 2, "third selection ignored")
	assert.Contains(t, m.View(), "[x] release")
	assert.Contains(t, m.View(), "[ ] v1")
}

func TestModel_Cursor(t *testing.T) {
	m, _ := drive(model{items: versions()}, "up", "down", "down", "down", "down")
	assert.Equal(t, 2, m.cursor)

	m, _ = drive(m, "k")
	assert.Equal(t, 1, m.cursor)
}

func TestModel_Quit(t *testing.T) {
	m, cmd := drive(model{items: versions()}, " ", "down", " ", "esc")
	assert.NotNil(t, cmd)
	assert.Nil(t, m.selected)
	assert.Nil(t, ordered(m.selected))
}

func TestModel_EmptyList(t *testing.T) {
	m, cmd := drive(model{}, " ", "down", "enter")
	assert.Nil(t, cmd)
	assert.Empty(t, m.selected)
}
