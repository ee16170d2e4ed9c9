// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"sort"
	"time"
)

// maxSchemaDepth limits how far nested structures are walked.
const maxSchemaDepth = 3

var timeType = reflect.TypeOf(time.Time{})

// DumpSchema writes the sorted field paths of an SDK response type, as usable
// by --select, --attrs and --filter. If w is nil, os.Stdout is used.
func DumpSchema(typ reflect.Type, w io.Writer) {
	if w == nil {
		w = os.Stdout
	}

	for typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}

	paths := schemaWalker("", typ, 0)
	sort.Strings(paths)
	for _, p := range paths {
		fmt.Fprintln(w, p)
	}
}

// schemaWalker returns the dotted paths of the exported fields of typ. List
// elements are written as [*].
func schemaWalker(holder string, typ reflect.Type, depth int) []string {
	paths := make([]string, 0)

	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() || field.Name == "ResultMetadata" {
			continue
		}

		name := field.Name
		if holder != "" {
			name = holder + "." + field.Name
		}
		paths = append(paths, name)

		if depth >= maxSchemaDepth {
			continue
		}

		ft := field.Type
		for ft.Kind() == reflect.Ptr {
			ft = ft.Elem()
		}
		if ft.Kind() == reflect.Slice && ft.Elem().Kind() != reflect.Uint8 {
			name += "[*]"
			ft = ft.Elem()
			for ft.Kind() == reflect.Ptr {
				ft = ft.Elem()
			}
		}
		if ft.Kind() == reflect.Struct && ft != timeType {
			paths = append(paths, schemaWalker(name, ft, depth+1)...)
		}
	}

	return paths
}
