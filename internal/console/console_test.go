// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package console

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

var testPages = [][]byte{
	[]byte(`{"AppSummaries":[{"Name":"alpha","AppArn":"arn:a"},{"Name":"bravo","AppArn":"arn:b"}],"NextToken":"t1"}`),
	[]byte(`{"AppSummaries":[{"Name":"charlie","AppArn":"arn:c"}]}`),
}

func testSession() *Session {
	return &Session{
		Pages:  testPages,
		Params: []string{"Name", "MaxResults", "NextToken"},
		Bound:  map[string]any{"MaxResults": 2},
	}
}

func TestMerge(t *testing.T) {
	tests := []struct {
		name  string
		pages [][]byte
		want  string
	}{
		{name: "none", pages: nil, want: `{}`},
		{name: "single", pages: testPages[:1], want: string(testPages[0])},
		{
			name:  "concatenates lists",
			pages: testPages,
			want:  `{"AppSummaries":[{"Name":"alpha","AppArn":"arn:a"},{"Name":"bravo","AppArn":"arn:b"},{"Name":"charlie","AppArn":"arn:c"}],"NextToken":"t1"}`,
		},
		{
			name:  "scalar takes last value",
			pages: [][]byte{[]byte(`{"Count":1}`), []byte(`{"Count":2,"Extra":true}`)},
			want:  `{"Count":2,"Extra":true}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Merge(tt.pages)
			assert.JSONEq(t, tt.want, string(got))
		})
	}
}

func TestSession_Eval(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{name: "field path", query: "AppSummaries.#.Name", want: `["alpha","bravo","charlie"]`},
		{name: "case-insensitive", query: "appsummaries.1.name", want: "bravo"},
		{name: "missing field", query: "Nope", want: "No results found."},
		{name: "bound param", query: "^MaxResults", want: "2"},
		{name: "unbound param", query: "^Name", want: "No results found."},
		{name: "unknown param", query: "^Bogus", want: `Error: selector "^Bogus": no parameter named Bogus`},
		{name: "malformed", query: "a..b", want: `Error: malformed selector "a..b"`},
		{name: "hcl length", query: "/length(AppSummaries)", want: "3"},
		{name: "hcl string fn", query: `/upper(AppSummaries[2].Name)`, want: "CHARLIE"},
		{name: "hcl pages", query: "/pages[0].NextToken", want: "t1"},
		{name: "hcl params", query: "/params.MaxResults * 2", want: "4"},
		{name: "hcl try", query: `/try(response.Missing, "fallback")`, want: "fallback"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := testSession().Eval(tt.query)
			if gjson.Valid(tt.want) && (tt.want[0] == '[' || tt.want[0] == '{') {
				assert.JSONEq(t, tt.want, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSession_EvalErrors(t *testing.T) {
	s := testSession()
	assert.Contains(t, s.Eval("/length("), "Error parsing expression")
	assert.Contains(t, s.Eval("/nosuchfn(1)"), "Error evaluating expression")
}

func TestSession_EvalCollection(t *testing.T) {
	got := testSession().Eval(`/[for a in AppSummaries : a.AppArn if a.Name != "bravo"]`)
	assert.JSONEq(t, `["arn:a","arn:c"]`, got)
}

func TestHistory(t *testing.T) {
	name := filepath.Join(t.TempDir(), "history")

	assert.Empty(t, loadHistory(name))

	history := make([]string, 0, maxHistory+5)
	for i := 0; i < maxHistory+5; i++ {
		history = append(history, "q")
	}
	history[len(history)-1] = "last"
	saveHistory(name, history)

	loaded := loadHistory(name)
	require.Len(t, loaded, maxHistory)
	assert.Equal(t, "last", loaded[len(loaded)-1])

	_, err := os.Stat(name)
	assert.NoError(t, err)
}

func TestModel_Update(t *testing.T) {
	m := newModel(testSession(), filepath.Join(t.TempDir(), "history"))

	typeIn := func(m model, s string) model {
		for _, r := range s {
			next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
			m = next.(model)
		}
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		return next.(model)
	}

	m = typeIn(m, "AppSummaries.0.Name")
	require.Len(t, m.exchanges, 1)
	assert.Equal(t, "alpha", m.exchanges[0].result)

	m = typeIn(m, "help")
	require.Len(t, m.exchanges, 2)
	assert.Equal(t, helpText, m.exchanges[1].result)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(model)
	assert.Equal(t, "help", m.input.Value())

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(model)
	assert.Equal(t, "AppSummaries.0.Name", m.input.Value())

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(model)
	assert.Equal(t, "help", m.input.Value())

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(model)
	assert.Empty(t, m.input.Value())

	assert.Contains(t, m.View(), "2 page(s) loaded")
	assert.Contains(t, m.View(), "AppSummaries.0.Name")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
