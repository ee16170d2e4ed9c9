// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package bind

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/tfctl/awsops/internal/log"
)

// Source is the read side of a parsed command. *cli.Command satisfies it.
type Source interface {
	IsSet(name string) bool
	String(name string) string
	Int(name string) int
	Bool(name string) bool
	StringSlice(name string) []string
	StringMap(name string) map[string]string
}

// Binder reads bound flag values for a known param list. Problems found
// while reading are accumulated and reported together by Err.
type Binder struct {
	src    Source
	params map[string]Param
	bound  map[string]any
	errs   []string
	now    func() time.Time
}

// NewBinder creates a Binder over src and checks that every required param
// has been set.
func NewBinder(src Source, params []Param) *Binder {
	b := &Binder{
		src:    src,
		params: make(map[string]Param, len(params)),
		bound:  make(map[string]any),
		now:    time.Now,
	}
	for _, p := range params {
		b.params[p.Name] = p
		if p.Required && !src.IsSet(p.FlagName()) {
			b.errs = append(b.errs, fmt.Sprintf("missing required flag --%s", p.FlagName()))
		}
	}
	return b
}

// Bound returns the values read so far keyed by field name, as they were
// given on the command line (before conversion to SDK types).
func (b *Binder) Bound() map[string]any {
	return b.bound
}

// Err returns a *ValidationError describing every problem encountered, or
// nil.
func (b *Binder) Err() error {
	if len(b.errs) == 0 {
		return nil
	}
	return &ValidationError{Problems: slices.Clone(b.errs)}
}

// lookup reports whether field was set. Reading an undeclared field is a
// programming error and is recorded as such.
func (b *Binder) lookup(field string) (Param, bool) {
	p, ok := b.params[field]
	if !ok {
		b.errs = append(b.errs, fmt.Sprintf("undeclared parameter %s", field))
		return Param{}, false
	}
	if !b.src.IsSet(p.FlagName()) {
		return p, false
	}
	return p, true
}

// String returns the bound value of field, or nil when it was not set.
func (b *Binder) String(field string) *string {
	p, ok := b.lookup(field)
	if !ok {
		return nil
	}
	v := b.src.String(p.FlagName())
	b.bound[field] = v
	return &v
}

// Int32 returns the bound value of field, or nil when it was not set.
func (b *Binder) Int32(field string) *int32 {
	p, ok := b.lookup(field)
	if !ok {
		return nil
	}
	n := b.src.Int(p.FlagName())
	if n < -1<<31 || n > 1<<31-1 {
		b.errs = append(b.errs, fmt.Sprintf("--%s: %d out of range", p.FlagName(), n))
		return nil
	}
	v := int32(n)
	b.bound[field] = v
	return &v
}

// Int64 returns the bound value of field, or nil when it was not set.
func (b *Binder) Int64(field string) *int64 {
	p, ok := b.lookup(field)
	if !ok {
		return nil
	}
	v := int64(b.src.Int(p.FlagName()))
	b.bound[field] = v
	return &v
}

// Bool returns the bound value of field, or nil when it was not set. An
// explicit --flag=false yields a pointer to false.
func (b *Binder) Bool(field string) *bool {
	p, ok := b.lookup(field)
	if !ok {
		return nil
	}
	v := b.src.Bool(p.FlagName())
	b.bound[field] = v
	return &v
}

// Time returns the bound value of field parsed with ParseTime, or nil when it
// was not set.
func (b *Binder) Time(field string) *time.Time {
	p, ok := b.lookup(field)
	if !ok {
		return nil
	}
	raw := b.src.String(p.FlagName())
	t, err := ParseTime(raw, b.now())
	if err != nil {
		b.errs = append(b.errs, fmt.Sprintf("--%s: %v", p.FlagName(), err))
		return nil
	}
	b.bound[field] = t
	return &t
}

// Strings returns the bound list for field, or nil when it was not set.
// Comma-separated values are split.
func (b *Binder) Strings(field string) []string {
	p, ok := b.lookup(field)
	if !ok {
		return nil
	}
	var v []string
	for _, s := range b.src.StringSlice(p.FlagName()) {
		for _, part := range strings.Split(s, ",") {
			if part = strings.TrimSpace(part); part != "" {
				v = append(v, part)
			}
		}
	}
	if v == nil {
		v = []string{}
	}
	b.bound[field] = v
	return v
}

// Map returns the bound map for field, or nil when it was not set.
func (b *Binder) Map(field string) map[string]string {
	p, ok := b.lookup(field)
	if !ok {
		return nil
	}
	v := b.src.StringMap(p.FlagName())
	if v == nil {
		v = map[string]string{}
	}
	b.bound[field] = v
	return v
}

// JSON decodes the bound value of field into target and reports whether the
// field was set. The value is a JSON literal or @path to a file holding one.
func (b *Binder) JSON(field string, target any) bool {
	p, ok := b.lookup(field)
	if !ok {
		return false
	}
	raw, err := readValue(b.src.String(p.FlagName()))
	if err != nil {
		b.errs = append(b.errs, fmt.Sprintf("--%s: %v", p.FlagName(), err))
		return false
	}
	if err := json.Unmarshal(raw, target); err != nil {
		b.errs = append(b.errs, fmt.Sprintf("--%s: invalid JSON: %v", p.FlagName(), err))
		return false
	}
	b.bound[field] = json.RawMessage(raw)
	return true
}

// Blob returns the bound bytes for field, or nil when it was not set. The
// value is taken literally, or read from a file with @path.
func (b *Binder) Blob(field string) []byte {
	p, ok := b.lookup(field)
	if !ok {
		return nil
	}
	raw, err := readValue(b.src.String(p.FlagName()))
	if err != nil {
		b.errs = append(b.errs, fmt.Sprintf("--%s: %v", p.FlagName(), err))
		return nil
	}
	if raw == nil {
		raw = []byte{}
	}
	b.bound[field] = raw
	return raw
}

// Set records a value for field that was derived rather than read from its
// own flag, so that it can be echoed by selectors.
func (b *Binder) Set(field string, v any) {
	b.bound[field] = v
}

// Fail records a validation problem found by the caller.
func (b *Binder) Fail(format string, args ...any) {
	b.errs = append(b.errs, fmt.Sprintf(format, args...))
}

// EnumOf returns the bound value of field converted to the SDK enum type T, or
// the zero value when it was not set. The value must be one of T's Values.
func EnumOf[T interface {
	~string
	Values() []T
}](b *Binder, field string) T {
	p, ok := b.lookup(field)
	if !ok {
		return ""
	}
	v := T(b.src.String(p.FlagName()))
	if !validEnum(v) {
		b.errs = append(b.errs, fmt.Sprintf("--%s: %q is not one of %v", p.FlagName(), string(v), v.Values()))
		return ""
	}
	b.bound[field] = string(v)
	return v
}

// EnumsOf returns the bound list for field converted to the SDK enum type T,
// or nil when it was not set.
func EnumsOf[T interface {
	~string
	Values() []T
}](b *Binder, field string) []T {
	raw := b.Strings(field)
	if raw == nil {
		return nil
	}
	out := make([]T, 0, len(raw))
	for _, s := range raw {
		v := T(s)
		if !validEnum(v) {
			b.errs = append(b.errs, fmt.Sprintf("--%s: %q is not one of %v", FlagName(field), s, v.Values()))
			continue
		}
		out = append(out, v)
	}
	return out
}

// Values converts SDK enum values into plain strings for Param.Values.
func Values[T ~string](vs []T) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = string(v)
	}
	return out
}

func validEnum[T interface {
	~string
	Values() []T
}](v T) bool {
	return slices.Contains(v.Values(), v)
}

// readValue returns the literal bytes of s, or the content of the file named
// after a leading @.
func readValue(s string) ([]byte, error) {
	if path, ok := strings.CutPrefix(s, "@"); ok {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		log.Debugf("value read from file: path=%s len=%d", path, len(data))
		return data, nil
	}
	return []byte(s), nil
}

// ValidationError reports flag problems found before any request was sent.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "invalid arguments: " + strings.Join(e.Problems, "; ")
}

// IsValidation reports whether err is, or wraps, a *ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
