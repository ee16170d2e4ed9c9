// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package console

import (
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/ext/tryfunc"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
	ctyjson "github.com/zclconf/go-cty/cty/json"

	"github.com/tfctl/awsops/internal/log"
)

func (s *Session) evalExpression(src string) string {
	expr, diags := hclsyntax.ParseExpression([]byte(src), "console", hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return fmt.Sprintf("Error parsing expression: %s", diags.Error())
	}

	ctx := &hcl.EvalContext{
		Variables: s.variables(),
		Functions: functions(),
	}

	val, diags := expr.Value(ctx)
	if diags.HasErrors() {
		return fmt.Sprintf("Error evaluating expression: %s", diags.Error())
	}

	return formatValue(val)
}

// variables exposes the merged response as "response", each of its top
// level keys by name, the individual pages as "pages" and bound parameters
// as "params".
func (s *Session) variables() map[string]cty.Value {
	vars := map[string]cty.Value{}

	merged := jsonToCty(s.Merged())
	vars["response"] = merged
	if merged.Type().IsObjectType() && !merged.IsNull() {
		for k, v := range merged.AsValueMap() {
			if hclsyntax.ValidIdentifier(k) {
				vars[k] = v
			}
		}
	}

	pages := make([]cty.Value, 0, len(s.Pages))
	for _, p := range s.Pages {
		pages = append(pages, jsonToCty(p))
	}
	vars["pages"] = cty.TupleVal(pages)

	params := cty.EmptyObjectVal
	if len(s.Bound) > 0 {
		if raw, err := json.Marshal(s.Bound); err == nil {
			params = jsonToCty(raw)
		}
	}
	vars["params"] = params

	return vars
}

func jsonToCty(raw []byte) cty.Value {
	ty, err := ctyjson.ImpliedType(raw)
	if err != nil {
		log.Debugf("console: implied type: %v", err)
		return cty.NullVal(cty.DynamicPseudoType)
	}
	val, err := ctyjson.Unmarshal(raw, ty)
	if err != nil {
		log.Debugf("console: unmarshal: %v", err)
		return cty.NullVal(cty.DynamicPseudoType)
	}
	return val
}

func functions() map[string]function.Function {
	return map[string]function.Function{
		"abs":    stdlib.AbsoluteFunc,
		"ceil":   stdlib.CeilFunc,
		"floor":  stdlib.FloorFunc,
		"log":    stdlib.LogFunc,
		"max":    stdlib.MaxFunc,
		"min":    stdlib.MinFunc,
		"pow":    stdlib.PowFunc,
		"signum": stdlib.SignumFunc,

		"chomp":      stdlib.ChompFunc,
		"format":     stdlib.FormatFunc,
		"indent":     stdlib.IndentFunc,
		"join":       stdlib.JoinFunc,
		"lower":      stdlib.LowerFunc,
		"replace":    stdlib.ReplaceFunc,
		"split":      stdlib.SplitFunc,
		"substr":     stdlib.SubstrFunc,
		"title":      stdlib.TitleFunc,
		"trim":       stdlib.TrimFunc,
		"trimprefix": stdlib.TrimPrefixFunc,
		"trimspace":  stdlib.TrimSpaceFunc,
		"trimsuffix": stdlib.TrimSuffixFunc,
		"upper":      stdlib.UpperFunc,

		"coalesce":     stdlib.CoalesceFunc,
		"coalescelist": stdlib.CoalesceListFunc,
		"compact":      stdlib.CompactFunc,
		"concat":       stdlib.ConcatFunc,
		"contains":     stdlib.ContainsFunc,
		"distinct":     stdlib.DistinctFunc,
		"element":      stdlib.ElementFunc,
		"flatten":      stdlib.FlattenFunc,
		"keys":         stdlib.KeysFunc,
		"length":       stdlib.LengthFunc,
		"lookup":       stdlib.LookupFunc,
		"merge":        stdlib.MergeFunc,
		"reverse":      stdlib.ReverseListFunc,
		"slice":        stdlib.SliceFunc,
		"sort":         stdlib.SortFunc,
		"values":       stdlib.ValuesFunc,
		"zipmap":       stdlib.ZipmapFunc,

		"jsondecode": stdlib.JSONDecodeFunc,
		"jsonencode": stdlib.JSONEncodeFunc,
		"formatdate": stdlib.FormatDateFunc,
		"formatlist": stdlib.FormatListFunc,
		"parseint":   stdlib.ParseIntFunc,
		"range":      stdlib.RangeFunc,
		"timeadd":    stdlib.TimeAddFunc,

		"regex":    stdlib.RegexFunc,
		"regexall": stdlib.RegexAllFunc,

		"try": tryfunc.TryFunc,
		"can": tryfunc.CanFunc,
	}
}

func formatValue(val cty.Value) string {
	if !val.IsWhollyKnown() {
		return "(unknown)"
	}
	if val.IsNull() {
		return "null"
	}

	switch val.Type() {
	case cty.String:
		return val.AsString()
	case cty.Number:
		return formatNumber(val.AsBigFloat())
	case cty.Bool:
		return fmt.Sprintf("%t", val.True())
	}

	out, err := json.MarshalIndent(ctyToGo(val), "", "  ")
	if err != nil {
		return fmt.Sprintf("Error formatting value: %v", err)
	}
	return string(out)
}

func formatNumber(bf *big.Float) string {
	if bf.IsInt() {
		if i, acc := bf.Int64(); acc == big.Exact {
			return fmt.Sprintf("%d", i)
		}
	}
	f, _ := bf.Float64()
	return fmt.Sprintf("%g", f)
}

func ctyToGo(val cty.Value) any {
	if val.IsNull() || !val.IsKnown() {
		return nil
	}

	ty := val.Type()
	switch {
	case ty == cty.String:
		return val.AsString()
	case ty == cty.Bool:
		return val.True()
	case ty == cty.Number:
		bf := val.AsBigFloat()
		if bf.IsInt() {
			if i, acc := bf.Int64(); acc == big.Exact {
				return i
			}
		}
		f, _ := bf.Float64()
		return f
	case ty.IsObjectType() || ty.IsMapType():
		m := make(map[string]any, val.LengthInt())
		for it := val.ElementIterator(); it.Next(); {
			k, v := it.Element()
			m[k.AsString()] = ctyToGo(v)
		}
		return m
	case ty.IsTupleType() || ty.IsListType() || ty.IsSetType():
		l := make([]any, 0, val.LengthInt())
		for it := val.ElementIterator(); it.Next(); {
			_, v := it.Element()
			l = append(l, ctyToGo(v))
		}
		return l
	}

	return val.GoString()
}
