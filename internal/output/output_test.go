// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package output

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"

	"github.com/tfctl/awsops/internal/attrs"
)

// Two pages of ListProfilingGroups, as selected by ProfilingGroups.
var pages = []string{
	`[{"Name":"zebra","ComputePlatform":"Default","CreatedAt":"2024-01-15T10:00:00Z"},
	  {"Name":"alpha","ComputePlatform":"AWSLambda","CreatedAt":"2024-02-15T10:00:00Z"}]`,
	`[{"Name":"beta","ComputePlatform":"Default","CreatedAt":"2024-03-15T10:00:00Z"}]`,
}

func emitAll(t *testing.T, opts Options) string {
	t.Helper()

	var buf bytes.Buffer
	e := NewEmitter(&buf, opts)
	for _, p := range pages {
		require.NoError(t, e.Write(gjson.Parse(p)))
	}
	require.NoError(t, e.Close())
	return buf.String()
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"text", "json", "yaml", "raw"} {
		f, err := ParseFormat(s)
		require.NoError(t, err)
		assert.Equal(t, Format(s), f)
	}

	f, err := ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatText, f)

	_, err = ParseFormat("xml")
	assert.ErrorContains(t, err, "invalid output format")
}

func TestEmitter_Raw(t *testing.T) {
	out := emitAll(t, Options{Format: FormatRaw})

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2, "one line per page")
	for _, line := range lines {
		assert.True(t, gjson.Valid(line))
		assert.True(t, gjson.Parse(line).IsArray())
	}
}

func TestEmitter_JSON(t *testing.T) {
	out := emitAll(t, Options{Format: FormatJSON})

	var got []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 3)
	assert.Equal(t, "zebra", got[0]["Name"])
	assert.Equal(t, "alpha", got[1]["Name"])
	assert.Equal(t, "beta", got[2]["Name"])

	// Keys keep document order.
	assert.True(t, strings.Index(out, `"Name"`) < strings.Index(out, `"ComputePlatform"`))
}

func TestEmitter_JSONStreamsBeforeClose(t *testing.T) {
	var buf bytes.Buffer
	e := NewEmitter(&buf, Options{Format: FormatJSON})

	require.NoError(t, e.Write(gjson.Parse(pages[0])))
	assert.Contains(t, buf.String(), "zebra", "first page written without waiting")
	assert.Equal(t, 2, e.Count())

	require.NoError(t, e.Close())
	require.NoError(t, e.Close())
	assert.True(t, json.Valid(buf.Bytes()))
	assert.Error(t, e.Write(gjson.Parse(pages[1])))
}

func TestEmitter_YAML(t *testing.T) {
	out := emitAll(t, Options{Format: FormatYAML, Attrs: mustAttrs(t, "Name,ComputePlatform:platform")})

	var got []map[string]interface{}
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	require.Len(t, got, 3)
	assert.Equal(t, map[string]interface{}{"Name": "zebra", "platform": "Default"}, got[0])
}

func TestEmitter_TextTable(t *testing.T) {
	out := emitAll(t, Options{
		Format: FormatText,
		Attrs:  mustAttrs(t, "Name,ComputePlatform:platform"),
		Titles: true,
		Sort:   "Name",
		Header: "profiling groups",
	})

	assert.Contains(t, out, "profiling groups")
	assert.Contains(t, out, "platform")
	assert.NotContains(t, out, "CreatedAt")
	assert.True(t, strings.Index(out, "alpha") < strings.Index(out, "beta"))
	assert.True(t, strings.Index(out, "beta") < strings.Index(out, "zebra"))
}

func TestEmitter_FilterAndSort(t *testing.T) {
	out := emitAll(t, Options{
		Format: FormatJSON,
		Attrs:  mustAttrs(t, "Name"),
		Filter: "ComputePlatform=Default",
		Sort:   "-Name",
	})

	var got []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, []map[string]interface{}{{"Name": "zebra"}, {"Name": "beta"}}, got)
}

func TestEmitter_ScalarSelection(t *testing.T) {
	var buf bytes.Buffer
	e := NewEmitter(&buf, Options{Format: FormatJSON})

	require.NoError(t, e.Write(gjson.Parse(`["alpha","beta"]`)))
	require.NoError(t, e.Write(gjson.Parse(`"gamma"`)))
	require.NoError(t, e.Close())

	var got []string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, got)

	buf.Reset()
	e = NewEmitter(&buf, Options{Format: FormatYAML})
	require.NoError(t, e.Write(gjson.Parse(`"pg1"`)))
	require.NoError(t, e.Close())
	assert.Equal(t, "- pg1\n", buf.String())
}

func TestEmitter_DerivedKeepsShape(t *testing.T) {
	responses := []string{
		`{"ProfilingGroupNames":["alpha","bravo"],"NextToken":"t1"}`,
		`{"ProfilingGroupNames":["charlie"],"Tags":{"team":"core"}}`,
	}

	for _, f := range []Format{FormatJSON, FormatYAML} {
		t.Run(string(f), func(t *testing.T) {
			var buf bytes.Buffer
			e := NewEmitter(&buf, Options{Format: f})
			for _, r := range responses {
				require.NoError(t, e.Write(gjson.Parse(r)))
			}
			require.NoError(t, e.Close())

			var got []map[string]interface{}
			require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
			require.Len(t, got, 2)
			assert.Equal(t, []interface{}{"alpha", "bravo"}, got[0]["ProfilingGroupNames"])
			assert.Equal(t, []interface{}{"charlie"}, got[1]["ProfilingGroupNames"])
		})
	}
}

func TestEmitter_NothingSelected(t *testing.T) {
	for _, f := range []Format{FormatJSON, FormatYAML} {
		var buf bytes.Buffer
		e := NewEmitter(&buf, Options{Format: f})
		require.NoError(t, e.Write(gjson.Result{}))
		require.NoError(t, e.Close())
		assert.Equal(t, "[]\n", buf.String(), string(f))
		assert.Zero(t, e.Count())
	}

	var buf bytes.Buffer
	e := NewEmitter(&buf, Options{Format: FormatText})
	require.NoError(t, e.Write(gjson.Result{}))
	require.NoError(t, e.Close())
	assert.Empty(t, buf.String())
}

func TestEmitter_GlobalTransform(t *testing.T) {
	out := emitAll(t, Options{Format: FormatJSON, Attrs: mustAttrs(t, "*::U,Name")})

	var got []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "ZEBRA", got[0]["Name"])
}

func TestEmitter_Local(t *testing.T) {
	out := emitAll(t, Options{Format: FormatJSON, Attrs: mustAttrs(t, "CreatedAt"), Local: true})

	var got []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &got))

	ts, err := time.Parse(time.RFC3339, "2024-01-15T10:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, ts.Local().Format("2006-01-02T15:04:05MST"), got[0]["CreatedAt"])
}

func mustAttrs(t *testing.T, spec string) attrs.AttrList {
	t.Helper()
	var a attrs.AttrList
	require.NoError(t, a.Set(spec))
	return a
}

func TestSortDataset(t *testing.T) {
	testData := []map[string]interface{}{
		{"name": "zebra", "score": 0.3, "status": "Active"},
		{"name": "alpha", "score": 0.1, "status": "active"},
		{"name": "Beta", "score": 0.2, "status": "Inactive"},
	}

	tests := []struct {
		name      string
		spec      string
		wantOrder []string
	}{
		{"ascending by name", "name", []string{"alpha", "Beta", "zebra"}},
		{"descending by name", "-name", []string{"zebra", "Beta", "alpha"}},
		{"ascending by score", "score", []string{"alpha", "Beta", "zebra"}},
		{"descending by score", "-score", []string{"zebra", "Beta", "alpha"}},
		{"case sensitive", "!name", []string{"Beta", "alpha", "zebra"}},
		{"multiple fields", "status,name", []string{"alpha", "zebra", "Beta"}},
		{"empty spec", "", []string{"zebra", "alpha", "Beta"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := make([]map[string]interface{}, len(testData))
			copy(data, testData)
			SortDataset(data, tt.spec)
			for i, expectedName := range tt.wantOrder {
				assert.Equal(t, expectedName, data[i]["name"], "at index %d", i)
			}
		})
	}
}

func TestInterfaceToString(t *testing.T) {
	tests := []struct {
		name     string
		value    interface{}
		emptyVal string
		want     string
	}{
		{name: "string", value: "hello", want: "hello"},
		{name: "int", value: 42, want: "42"},
		{name: "int64", value: int64(42), want: "42"},
		{name: "whole float64", value: 42.0, want: "42"},
		{name: "fractional float64", value: 0.85, want: "0.85"},
		{name: "negative float64", value: -42.0, want: "-42"},
		{name: "bool true", value: true, want: "true"},
		{name: "bool false", value: false, want: "false"},
		{name: "zero", value: 0.0, want: "0"},
		{name: "nil default", value: nil, want: ""},
		{name: "nil custom", value: nil, emptyVal: "-", want: "-"},
		{name: "empty string custom", value: "", emptyVal: "N/A", want: "N/A"},
		{name: "slice", value: []string{"a", "b"}, want: `["a","b"]`},
		{name: "map", value: map[string]interface{}{"key": "value"}, want: `{"key":"value"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			if tt.emptyVal != "" {
				got = InterfaceToString(tt.value, tt.emptyVal)
			} else {
				got = InterfaceToString(tt.value)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTableWriter(t *testing.T) {
	resultSet := []map[string]interface{}{
		{"name": "alpha", "arn": "arn:a", "hidden": "secret"},
		{"name": "beta", "arn": nil, "hidden": "secret"},
	}
	attrList := attrs.AttrList{
		{Key: "name", OutputKey: "name", Include: true},
		{Key: "arn", OutputKey: "arn", Include: true},
		{Key: "hidden", OutputKey: "hidden", Include: false},
	}

	var buf bytes.Buffer
	TableWriter(resultSet, attrList, Options{Titles: true, Padding: 2, Footer: "2 groups"}, &buf)
	out := buf.String()

	assert.Contains(t, out, "name")
	assert.Contains(t, out, "arn:a")
	assert.Contains(t, out, "-", "missing values render as -")
	assert.Contains(t, out, "2 groups")
	assert.NotContains(t, out, "secret")

	buf.Reset()
	TableWriter(nil, attrList, Options{}, &buf)
	assert.Empty(t, buf.String())
}

func TestGetColors(t *testing.T) {
	header, even, odd := getColors("colors")

	assert.NotNil(t, header)
	assert.NotNil(t, even)
	assert.NotNil(t, odd)
}

type schemaLeaf struct {
	Name      *string
	CreatedAt *time.Time
	noCopy    int //nolint:unused
}

type schemaRoot struct {
	Groups         []schemaLeaf
	Names          []string
	NextToken      *string
	Body           []byte
	Config         *schemaLeaf
	ResultMetadata struct{ ID string }
}

func TestDumpSchema(t *testing.T) {
	var buf bytes.Buffer
	DumpSchema(reflect.TypeOf(&schemaRoot{}), &buf)

	got := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, []string{
		"Body",
		"Config",
		"Config.CreatedAt",
		"Config.Name",
		"Groups",
		"Groups[*].CreatedAt",
		"Groups[*].Name",
		"Names",
		"NextToken",
	}, got)
}

func BenchmarkSortDataset(b *testing.B) {
	testData := []map[string]interface{}{
		{"name": "zebra", "count": 3.0},
		{"name": "alpha", "count": 1.0},
		{"name": "beta", "count": 2.0},
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		data := make([]map[string]interface{}, len(testData))
		copy(data, testData)
		SortDataset(data, "name")
	}
}
