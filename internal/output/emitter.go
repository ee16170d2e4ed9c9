// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v2"

	"github.com/tfctl/awsops/internal/attrs"
	"github.com/tfctl/awsops/internal/filters"
	"github.com/tfctl/awsops/internal/log"
)

// Format is an --output value.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatRaw  Format = "raw"
)

// Formats lists the accepted --output values.
var Formats = []Format{FormatText, FormatJSON, FormatYAML, FormatRaw}

// ParseFormat validates an --output value. Empty means text.
func ParseFormat(s string) (Format, error) {
	if s == "" {
		return FormatText, nil
	}
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("invalid output format %q: must be one of text, json, yaml, raw", s)
}

// Options shapes what an Emitter writes.
type Options struct {
	Format  Format
	Attrs   attrs.AttrList
	Filter  string
	Sort    string
	Titles  bool
	Color   bool
	Local   bool
	Padding int
	Header  string
	Footer  string
}

// Emitter writes selected values as they arrive.
type Emitter struct {
	w        io.Writer
	opts     Options
	attrs    attrs.AttrList
	filters  []filters.Filter
	prepared bool
	buffered bool
	// scalar is set when the selection is made of bare values, which json
	// and yaml stream as they are.
	scalar   bool
	rows     []map[string]interface{}
	count    int
	streamed int
	closed   bool
}

// NewEmitter returns an Emitter writing to w, or os.Stdout when w is nil.
func NewEmitter(w io.Writer, opts Options) *Emitter {
	if w == nil {
		w = os.Stdout
	}
	if opts.Format == "" {
		opts.Format = FormatText
	}

	return &Emitter{
		w:        w,
		opts:     opts,
		attrs:    append(attrs.AttrList(nil), opts.Attrs...),
		filters:  filters.BuildFilters(opts.Filter),
		buffered: opts.Format == FormatText || opts.Sort != "",
	}
}

// Count is the number of values written or buffered so far.
func (e *Emitter) Count() int { return e.count }

// Write takes the selection from one page. Arrays contribute one item per
// element. A selection that does not exist writes nothing.
func (e *Emitter) Write(selected gjson.Result) error {
	if e.closed {
		return fmt.Errorf("emitter closed")
	}
	if !selected.Exists() {
		return nil
	}

	if e.opts.Format == FormatRaw {
		e.count++
		_, err := fmt.Fprintln(e.w, selected.Get("@ugly").Raw)
		return err
	}

	items := []gjson.Result{selected}
	if selected.IsArray() {
		items = selected.Array()
	}

	for _, item := range items {
		if err := e.add(item); err != nil {
			return err
		}
	}

	return nil
}

// Close flushes buffered rows and terminates streamed documents.
func (e *Emitter) Close() error {
	if e.closed {
		return nil
	}
	e.closed = true

	switch e.opts.Format {
	case FormatRaw:
		return nil
	case FormatText:
		SortDataset(e.rows, e.opts.Sort)
		TableWriter(e.rows, e.attrs, e.opts, e.w)
		return nil
	}

	if e.buffered {
		SortDataset(e.rows, e.opts.Sort)
		for _, row := range e.rows {
			if err := e.stream(row); err != nil {
				return err
			}
		}
	}

	switch {
	case e.streamed == 0:
		_, err := fmt.Fprintln(e.w, "[]")
		return err
	case e.opts.Format == FormatJSON:
		_, err := fmt.Fprintln(e.w, "]")
		return err
	}

	return nil
}

func (e *Emitter) add(item gjson.Result) error {
	e.prepare(item)

	if !filters.Match(item, e.attrs, e.filters) {
		return nil
	}

	row := filters.Project(item, e.attrs)
	for _, attr := range e.attrs {
		if attr.Key != "*" && attr.TransformSpec != "" {
			row[attr.OutputKey] = attr.Transform(row[attr.OutputKey])
		}
	}

	e.count++
	if e.buffered {
		e.rows = append(e.rows, row)
		return nil
	}

	return e.stream(row)
}

// prepare settles the attr list on the first item. With no rendered attrs
// given, the item's own top level keys are used.
func (e *Emitter) prepare(item gjson.Result) {
	if e.prepared {
		return
	}
	e.prepared = true

	if len(e.attrs.Included()) == 0 {
		e.scalar = !item.IsObject()
		e.attrs = append(e.attrs, attrs.Derive(item)...)
		log.Debugf("attrs derived: attrs=%s", e.attrs.String())
	}

	_ = e.attrs.SetGlobalTransformSpec()

	if e.opts.Local {
		for i := range e.attrs {
			e.attrs[i].TransformSpec += "t"
		}
	}
}

// stream writes one row as the next element of a JSON array or YAML list.
func (e *Emitter) stream(row map[string]interface{}) error {
	included := e.attrs.Included()

	switch e.opts.Format {
	case FormatJSON:
		if e.scalar {
			v, err := json.Marshal(row[attrs.ValueKey])
			if err != nil {
				return fmt.Errorf("failed to marshal json: %w", err)
			}
			return e.streamJSON(v)
		}

		var buf bytes.Buffer
		buf.WriteByte('{')
		for i, attr := range included {
			if i > 0 {
				buf.WriteByte(',')
			}
			k, err := json.Marshal(attr.OutputKey)
			if err != nil {
				return fmt.Errorf("failed to marshal json: %w", err)
			}
			v, err := json.Marshal(row[attr.OutputKey])
			if err != nil {
				return fmt.Errorf("failed to marshal json: %w", err)
			}
			buf.Write(k)
			buf.WriteByte(':')
			buf.Write(v)
		}
		buf.WriteByte('}')
		return e.streamJSON(buf.Bytes())
	case FormatYAML:
		if e.scalar {
			b, err := yaml.Marshal([]interface{}{row[attrs.ValueKey]})
			if err != nil {
				return fmt.Errorf("failed to marshal yaml: %w", err)
			}
			e.streamed++
			_, err = e.w.Write(b)
			return err
		}

		ms := make(yaml.MapSlice, 0, len(included))
		for _, attr := range included {
			ms = append(ms, yaml.MapItem{Key: attr.OutputKey, Value: row[attr.OutputKey]})
		}
		b, err := yaml.Marshal([]yaml.MapSlice{ms})
		if err != nil {
			return fmt.Errorf("failed to marshal yaml: %w", err)
		}
		e.streamed++
		_, err = e.w.Write(b)
		return err
	}

	return fmt.Errorf("format %s does not stream", e.opts.Format)
}

// streamJSON writes doc as the next element of the JSON array.
func (e *Emitter) streamJSON(doc []byte) error {
	sep := ","
	if e.streamed == 0 {
		sep = "["
	}
	e.streamed++
	_, err := fmt.Fprintf(e.w, "%s%s\n", sep, doc)
	return err
}
