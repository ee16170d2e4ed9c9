// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package attrs

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/tidwall/gjson"

	"github.com/tfctl/awsops/internal/driller"
	"github.com/tfctl/awsops/internal/log"
)

var lengthRegex = regexp.MustCompile(`-?\d+`)

// Attr is one column of output. Key is a driller path into each result item,
// OutputKey the column title (or JSON/YAML key) and TransformSpec an optional
// set of value transformations.
type Attr struct {
	Key string `yaml:"key" json:"Key"`
	// Include is false for attrs only used for filtering and sorting.
	Include       bool   `yaml:"include" json:"Include"`
	OutputKey     string `yaml:"outputKey" json:"OutputKey"`
	TransformSpec string `yaml:"transformSpec" json:"TransformSpec"`
	// Raw attrs read Key as a plain member of the item. Their values are
	// never collapsed or otherwise reshaped.
	Raw bool `yaml:"-" json:"-"`
}

// Transform applies the attribute's transform spec to a value and returns the
// transformed result. Only string values are transformed.
func (a *Attr) Transform(value interface{}) interface{} {
	result, ok := value.(string)
	if !ok {
		log.Tracef("non-string value: value=%v", value)
		return value
	}

	// t renders SDK timestamps in the local zone, T as time ago.
	if strings.ContainsAny(a.TransformSpec, "tT") {
		if ts, err := time.Parse(time.RFC3339, result); err == nil {
			local := ts.Local()
			if strings.Contains(a.TransformSpec, "T") {
				result = humanize.Time(local)
				log.Tracef("time ago: result=%s", result)
			} else {
				result = local.Format("2006-01-02T15:04:05MST")
				log.Tracef("time local: result=%s", result)
			}
		}
	}

	// The last case transformation wins so that an attr's own spec overrides
	// a global one prepended to it (--attrs '*::U,Name::l' is lower case).
	lastL := strings.LastIndexAny(a.TransformSpec, "lL")
	lastU := strings.LastIndexAny(a.TransformSpec, "uU")

	if lastL > lastU {
		result = strings.ToLower(result)
	} else if lastU > lastL {
		result = strings.ToUpper(result)
	}

	// Length: positive truncates, negative elides the middle. Last one wins.
	if a.TransformSpec != "" {
		match := lengthRegex.FindAllString(a.TransformSpec, -1)
		if len(match) != 0 {
			l, _ := strconv.Atoi(match[len(match)-1])
			abs := int(math.Abs(float64(l)))
			if len(result) > abs {
				if l < 0 {
					lr := abs/2 - 1
					if lr < 1 {
						lr = 1
					}
					result = result[0:lr] + ".." + result[len(result)-lr:]
					log.Tracef("length middle: result=%s", result)
				} else {
					result = result[:l]
					log.Tracef("length trunc: result=%s", result)
				}
			}
		}
	}

	return result
}

// AttrList is a collection of Attr used to shape output fields.
type AttrList []Attr

// Set parses an --attrs value and merges it into the list. Each comma
// separated spec is key[:outputKey[:transform]]. A key prefixed with ! is kept
// for filtering and sorting but not rendered. The key * carries a transform
// applied to every attr.
func (a *AttrList) Set(value string) error {
	if value == "" || value == "*" {
		log.Debugf("early return: value=%s", value)
		return nil
	}

	const (
		jsonIdx = iota
		outputIdx
		transformIdx
	)

	specs := strings.Split(value, ",")
	log.Debugf("specs split: specs=%v", specs)
specloop:
	for _, spec := range specs {
		if strings.TrimSpace(spec) == "" {
			continue
		}

		attr := Attr{Include: true}
		fields := strings.Split(spec, ":")

		attr.Key = strings.TrimSpace(fields[jsonIdx])
		if strings.HasPrefix(attr.Key, "!") {
			attr.Include = false
			attr.Key = attr.Key[1:]
		}
		// Response items are rooted at the item itself.
		attr.Key = strings.TrimPrefix(attr.Key, ".")
		if attr.Key == "" {
			return fmt.Errorf("invalid attr spec %q: empty key", spec)
		}
		if attr.Key == "*" {
			attr.Include = false
		}

		if len(fields) > outputIdx && strings.TrimSpace(fields[outputIdx]) != "" {
			attr.OutputKey = strings.TrimSpace(fields[outputIdx])
		} else {
			attr.OutputKey = defaultOutputKey(attr.Key)
		}

		if len(fields) > transformIdx {
			attr.TransformSpec = strings.TrimSpace(fields[transformIdx])
		}
		log.Tracef("attr parsed: attr=%+v", attr)

		// A repeated key (a command default or a double entry) updates the
		// existing attr in place.
		for i := range *a {
			if strings.EqualFold((*a)[i].Key, attr.Key) || (*a)[i].OutputKey == attr.Key {
				(*a)[i].Include = attr.Include
				(*a)[i].OutputKey = attr.OutputKey
				(*a)[i].TransformSpec = attr.TransformSpec
				log.Tracef("existing updated: i=%d", i)
				continue specloop
			}
		}

		*a = append(*a, attr)
	}

	return nil
}

// defaultOutputKey is the last dotted segment of key without any index.
func defaultOutputKey(key string) string {
	segments := strings.Split(key, ".")
	last := segments[len(segments)-1]
	if i := strings.Index(last, "["); i > 0 {
		last = last[:i]
	}
	return last
}

// SetGlobalTransformSpec prepends the transform of the * attr, if any, to the
// spec of every attr in the list.
func (a *AttrList) SetGlobalTransformSpec() error {
	spec := ""
	for i := range *a {
		if (*a)[i].Key == "*" {
			spec = (*a)[i].TransformSpec
			break
		}
	}

	if spec == "" {
		return nil
	}

	for i := range *a {
		(*a)[i].TransformSpec = spec + "," + (*a)[i].TransformSpec
	}
	log.Debugf("global spec prepended: spec=%s", spec)

	return nil
}

// Included returns the attrs that are rendered.
func (a AttrList) Included() AttrList {
	var out AttrList
	for _, attr := range a {
		if attr.Include {
			out = append(out, attr)
		}
	}
	return out
}

// ValueKey is the OutputKey of the single attr derived for a non-object item.
const ValueKey = "Value"

// Derive builds an AttrList from the top level keys of item, in document
// order. Non-object items get a single Value column. Derived attrs are Raw.
func Derive(item gjson.Result) AttrList {
	if !item.IsObject() {
		return AttrList{{Key: "@this", OutputKey: ValueKey, Include: true, Raw: true}}
	}

	var list AttrList
	item.ForEach(func(k, _ gjson.Result) bool {
		list = append(list, Attr{Key: k.String(), OutputKey: k.String(), Include: true, Raw: true})
		return true
	})
	return list
}

// Lookup returns the value of the attr in item.
func (a Attr) Lookup(item gjson.Result) gjson.Result {
	if a.Raw {
		return item.Get(a.Key)
	}
	return driller.Drill(item, a.Key)
}

// String returns the list in --attrs flag form.
func (a *AttrList) String() string {
	result := make([]string, 0, len(*a))
	for _, attr := range *a {
		result = append(result, fmt.Sprintf("%s:%s:%s", attr.Key, attr.OutputKey, attr.TransformSpec))
	}
	return strings.Join(result, ",")
}

// Type returns the flag type for use with the flag.Value interface.
func (a *AttrList) Type() string { return "list" }
