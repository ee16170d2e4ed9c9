// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package driller

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

var segmentRegex = regexp.MustCompile(`^([a-zA-Z0-9_-]+)(\[(\d+|\*)?\])?$`)

// Driller navigates JSON using a flexible dot path supporting arrays.
func Driller(jsonData string, path string) gjson.Result {
	return Drill(gjson.Parse(jsonData), path)
}

// Drill is Driller over an already parsed document.
func Drill(current gjson.Result, path string) gjson.Result {
	path = strings.TrimPrefix(strings.TrimSpace(path), ".")
	if path == "" || path == "@this" {
		return current
	}

	for _, p := range strings.Split(path, ".") {
		matches := segmentRegex.FindStringSubmatch(p)
		if len(matches) == 0 {
			return gjson.Result{}
		}

		val := lookup(current, matches[1])
		if !val.Exists() {
			return gjson.Result{}
		}

		if val.IsArray() {
			arr := val.Array()
			switch matches[3] {
			case "":
				// Unbracketed single element lists read as their element.
				if matches[2] == "" && len(arr) == 1 {
					val = arr[0]
				}
			case "*":
			default:
				i, err := strconv.Atoi(matches[3])
				if err != nil || i >= len(arr) {
					return gjson.Result{}
				}
				val = arr[i]
			}
		}

		current = val
	}

	return current
}

// lookup finds key in obj, preferring an exact match over a case-folded one.
func lookup(obj gjson.Result, key string) gjson.Result {
	if !obj.IsObject() {
		return gjson.Result{}
	}

	var exact, folded gjson.Result
	obj.ForEach(func(k, v gjson.Result) bool {
		name := k.String()
		if name == key {
			exact = v
			return false
		}
		if !folded.Exists() && strings.EqualFold(name, key) {
			folded = v
		}
		return true
	})

	if exact.Exists() {
		return exact
	}
	return folded
}
