// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package attrs

import (
	"embed"
	"testing"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

//go:embed testdata/*.yaml
var testDataFS embed.FS

// cases decodes the YAML case table in testdata/name.
func cases[T any](t *testing.T, name string) []T {
	t.Helper()
	data, err := testDataFS.ReadFile("testdata/" + name)
	require.NoError(t, err)

	var out []T
	require.NoError(t, yaml.Unmarshal(data, &out))
	require.NotEmpty(t, out, name)
	return out
}

func TestAttrList_Set(t *testing.T) {
	type setCase struct {
		Name      string `yaml:"name"`
		Initial   []Attr `yaml:"initial"`
		Value     string `yaml:"value"`
		WantLen   int    `yaml:"wantLen"`
		WantAttrs []Attr `yaml:"wantAttrs"`
		WantErr   bool   `yaml:"wantErr"`
	}

	for _, tt := range cases[setCase](t, "set_cases.yaml") {
		t.Run(tt.Name, func(t *testing.T) {
			a := AttrList(tt.Initial)
			err := a.Set(tt.Value)
			if tt.WantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.Len(t, a, tt.WantLen)
			if tt.WantAttrs != nil {
				assert.Equal(t, AttrList(tt.WantAttrs), a)
			}
		})
	}
}

func TestAttrList_SetGlobalTransformSpec(t *testing.T) {
	type globalCase struct {
		Name      string   `yaml:"name"`
		Initial   []Attr   `yaml:"initial"`
		WantSpecs []string `yaml:"wantSpecs"`
	}

	for _, tt := range cases[globalCase](t, "global_transform_cases.yaml") {
		t.Run(tt.Name, func(t *testing.T) {
			a := AttrList(tt.Initial)
			require.NoError(t, a.SetGlobalTransformSpec())

			specs := make([]string, 0, len(a))
			for _, attr := range a {
				specs = append(specs, attr.TransformSpec)
			}
			assert.Equal(t, tt.WantSpecs, specs)
		})
	}
}

// timeWants computes expectations that depend on the local zone or clock.
var timeWants = map[string]func(time.Time) string{
	"DYNAMIC_LOCAL_TIME": func(ts time.Time) string {
		return ts.Local().Format("2006-01-02T15:04:05MST")
	},
	"DYNAMIC_RELATIVE_TIME": func(ts time.Time) string {
		return humanize.Time(ts.Local())
	},
}

func TestAttr_Transform(t *testing.T) {
	type transformCase struct {
		Name          string      `yaml:"name"`
		TransformSpec string      `yaml:"transformSpec"`
		Input         interface{} `yaml:"input"`
		Want          interface{} `yaml:"want"`
	}

	for _, tt := range cases[transformCase](t, "transform_cases.yaml") {
		t.Run(tt.Name, func(t *testing.T) {
			want := tt.Want
			if marker, ok := tt.Want.(string); ok {
				if fn, ok := timeWants[marker]; ok {
					ts, err := time.Parse(time.RFC3339, tt.Input.(string))
					require.NoError(t, err)
					want = fn(ts)
				}
			}

			attr := Attr{TransformSpec: tt.TransformSpec}
			assert.Equal(t, want, attr.Transform(tt.Input))
		})
	}
}

func TestAttrList_String(t *testing.T) {
	type stringCase struct {
		Name     string `yaml:"name"`
		AttrList []Attr `yaml:"attrList"`
		Want     string `yaml:"want"`
	}

	for _, tt := range cases[stringCase](t, "string_cases.yaml") {
		t.Run(tt.Name, func(t *testing.T) {
			a := AttrList(tt.AttrList)
			assert.Equal(t, tt.Want, a.String())
		})
	}

	assert.Equal(t, "list", (&AttrList{}).Type())
}

func TestAttrList_Included(t *testing.T) {
	var a AttrList
	require.NoError(t, a.Set("!Status,AppArn,*::U"))

	got := a.Included()
	require.Len(t, got, 1)
	assert.Equal(t, "AppArn", got[0].Key)
}

// describeApp is a trimmed DescribeApp response.
const describeApp = `{
	"App": {
		"Name": "checkout",
		"AppArn": "arn:aws:resiliencehub:us-east-1:123456789012:app/abc",
		"PermissionModel": {"Type": "RoleBased", "CrossAccountRoleArns": ["arn:role/x"]},
		"Tags": {"team": "core"}
	}
}`

func TestDerive(t *testing.T) {
	app := gjson.Get(describeApp, "App")

	got := Derive(app)
	keys := make([]string, 0, len(got))
	for _, attr := range got {
		assert.True(t, attr.Include)
		assert.True(t, attr.Raw)
		assert.Equal(t, attr.Key, attr.OutputKey)
		keys = append(keys, attr.OutputKey)
	}
	assert.Equal(t, []string{"Name", "AppArn", "PermissionModel", "Tags"}, keys)

	scalar := Derive(gjson.Parse(`"checkout"`))
	require.Len(t, scalar, 1)
	assert.Equal(t, "@this", scalar[0].Key)
	assert.Equal(t, ValueKey, scalar[0].OutputKey)
}

func TestAttr_Lookup(t *testing.T) {
	app := gjson.Get(describeApp, "App")

	// A derived attr keeps a one-element list as a list.
	raw := Attr{Key: "PermissionModel", Raw: true}
	assert.Equal(t,
		map[string]interface{}{"Type": "RoleBased", "CrossAccountRoleArns": []interface{}{"arn:role/x"}},
		raw.Lookup(app).Value())

	var a AttrList
	require.NoError(t, a.Set("PermissionModel.Type,Tags.team:team"))
	assert.Equal(t, "RoleBased", a[0].Lookup(app).String())
	assert.Equal(t, "core", a[1].Lookup(app).String())

	value := Derive(gjson.Parse(`["a"]`))[0]
	assert.Equal(t, []interface{}{"a"}, value.Lookup(gjson.Parse(`["a"]`)).Value())
}
