// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package console

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/tfctl/awsops/internal/selector"
)

// Session is what a console evaluates queries against.
type Session struct {
	// Pages holds each response page encoded as JSON.
	Pages [][]byte
	// Params are the parameter names ^Param selectors may echo.
	Params []string
	Bound  map[string]any

	merged []byte
}

// Merged returns the pages folded into one document. List fields present in
// every page are concatenated, anything else takes its last value.
func (s *Session) Merged() []byte {
	if s.merged == nil {
		s.merged = Merge(s.Pages)
	}
	return s.merged
}

// Eval evaluates one console query and returns its display form.
func (s *Session) Eval(query string) string {
	query = strings.TrimSpace(query)

	if expr, ok := strings.CutPrefix(query, "/"); ok {
		return s.evalExpression(expr)
	}

	sel, err := selector.Parse(query, s.Params)
	if err != nil {
		return "Error: " + err.Error()
	}

	var res gjson.Result
	if sel.Kind == selector.Param {
		if res, err = sel.Apply(nil, s.Bound); err != nil {
			return "Error: " + err.Error()
		}
	} else {
		res = sel.ApplyJSON(s.Merged())
	}

	if !res.Exists() {
		return "No results found."
	}
	if res.Type == gjson.String {
		return res.String()
	}
	return strings.TrimSpace(res.Get("@pretty").Raw)
}

// Merge folds response pages into a single JSON object, keeping the key
// order of the first page.
func Merge(pages [][]byte) []byte {
	switch len(pages) {
	case 0:
		return []byte("{}")
	case 1:
		return pages[0]
	}

	var keys []string
	seen := map[string]bool{}
	docs := make([]gjson.Result, len(pages))
	for i, p := range pages {
		docs[i] = gjson.ParseBytes(p)
		docs[i].ForEach(func(k, _ gjson.Result) bool {
			if !seen[k.String()] {
				seen[k.String()] = true
				keys = append(keys, k.String())
			}
			return true
		})
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, _ := json.Marshal(key)
		buf.Write(k)
		buf.WriteByte(':')
		buf.WriteString(mergeValue(docs, key))
	}
	buf.WriteByte('}')
	return buf.Bytes()
}

func mergeValue(docs []gjson.Result, key string) string {
	var last gjson.Result
	allArrays := true
	var elems []string

	for _, doc := range docs {
		v := doc.Get(gjson.Escape(key))
		if !v.Exists() {
			continue
		}
		last = v
		if !v.IsArray() {
			allArrays = false
			continue
		}
		v.ForEach(func(_, e gjson.Result) bool {
			elems = append(elems, e.Raw)
			return true
		})
	}

	if allArrays && last.Exists() {
		return "[" + strings.Join(elems, ",") + "]"
	}
	return last.Raw
}
