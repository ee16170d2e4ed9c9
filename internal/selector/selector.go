// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package selector projects an AWS response, or one of the request values the
// caller supplied, into the value a command emits.
//
// Three forms are accepted:
//
//	*                         the whole response
//	ProfilingGroups.#.Name    a response field path (gjson syntax, matched
//	                          case-insensitively)
//	^ProfilingGroupName       the value bound to that request parameter,
//	                          echoed unchanged
package selector

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// Kind is the form of a selector.
type Kind int

const (
	All Kind = iota
	Field
	Param
)

// pathRegex accepts dotted field paths whose segments are identifiers, array
// indexes or the # array wildcard.
var pathRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.([A-Za-z0-9_]+|#))*$`)

// Selector is a parsed selector expression.
type Selector struct {
	Kind Kind
	// Path is the response field path for Field, or the parameter name for
	// Param.
	Path string
}

// Parse validates expr. params lists the request parameter names that may be
// echoed with ^.
func Parse(expr string, params []string) (Selector, error) {
	expr = strings.TrimSpace(expr)

	switch {
	case expr == "":
		return Selector{}, fmt.Errorf("empty selector")

	case expr == "*":
		return Selector{Kind: All}, nil

	case strings.HasPrefix(expr, "^"):
		name := expr[1:]
		for _, p := range params {
			if strings.EqualFold(p, name) {
				return Selector{Kind: Param, Path: p}, nil
			}
		}
		if name == "" {
			return Selector{}, fmt.Errorf("selector %q names no parameter", expr)
		}
		return Selector{}, fmt.Errorf("selector %q: no parameter named %s", expr, name)

	case pathRegex.MatchString(expr):
		return Selector{Kind: Field, Path: expr}, nil
	}

	return Selector{}, fmt.Errorf("malformed selector %q", expr)
}

// String returns the selector in its command-line form.
func (s Selector) String() string {
	switch s.Kind {
	case All:
		return "*"
	case Param:
		return "^" + s.Path
	default:
		return s.Path
	}
}

// Apply evaluates the selector against a response and the values the caller
// bound. The result does not exist when the field is absent from the
// response or the parameter was not bound.
func (s Selector) Apply(resp any, bound map[string]any) (gjson.Result, error) {
	if s.Kind == Param {
		v, ok := bound[s.Path]
		if !ok {
			return gjson.Result{}, nil
		}
		raw, err := json.Marshal(v)
		if err != nil {
			return gjson.Result{}, fmt.Errorf("failed to encode %s: %w", s.Path, err)
		}
		return gjson.ParseBytes(raw), nil
	}

	raw, err := ToJSON(resp)
	if err != nil {
		return gjson.Result{}, err
	}
	return s.ApplyJSON(raw), nil
}

// ApplyJSON evaluates a response selector against an already encoded
// response.
func (s Selector) ApplyJSON(raw []byte) gjson.Result {
	doc := gjson.ParseBytes(raw)
	switch s.Kind {
	case All:
		return doc
	case Field:
		return doc.Get(canonicalPath(doc, s.Path))
	default:
		return gjson.Result{}
	}
}

// ToJSON encodes an SDK response, dropping the SDK's ResultMetadata.
func ToJSON(resp any) ([]byte, error) {
	raw, err := json.Marshal(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to encode response: %w", err)
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		// Not an object, nothing to strip.
		return raw, nil
	}
	if _, ok := obj["ResultMetadata"]; !ok {
		return raw, nil
	}
	delete(obj, "ResultMetadata")
	return json.Marshal(obj)
}

// canonicalPath rewrites each path segment to the exact key present in doc
// when it only differs by case.
func canonicalPath(doc gjson.Result, path string) string {
	segs := strings.Split(path, ".")
	cur := doc

	for i, seg := range segs {
		switch {
		case seg == "#":
			arr := cur.Array()
			if len(arr) == 0 {
				return strings.Join(segs, ".")
			}
			cur = arr[0]
			continue

		case cur.IsArray():
			if _, err := strconv.Atoi(seg); err == nil {
				cur = cur.Get(seg)
				continue
			}
			return strings.Join(segs, ".")

		case cur.IsObject():
			if v := cur.Get(seg); v.Exists() {
				cur = v
				continue
			}
			matched := false
			cur.ForEach(func(k, v gjson.Result) bool {
				if strings.EqualFold(k.String(), seg) {
					segs[i] = k.String()
					cur = v
					matched = true
					return false
				}
				return true
			})
			if !matched {
				return strings.Join(segs, ".")
			}

		default:
			return strings.Join(segs, ".")
		}
	}

	return strings.Join(segs, ".")
}
