// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package terraform

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/tfctl/awsops/internal/log"
)

// DefaultWorkspacePrefix is the S3 backend's workspace_key_prefix default.
const DefaultWorkspacePrefix = "env:"

// ErrNoS3Backend is returned when a root module has no S3 backend.
var ErrNoS3Backend = errors.New("no s3 backend configured")

// Backend is the subset of S3 backend settings needed to locate state.
type Backend struct {
	Bucket             string `json:"bucket"`
	Key                string `json:"key"`
	WorkspaceKeyPrefix string `json:"workspace_key_prefix"`
	Region             string `json:"region"`
}

// StateURL returns the s3:// URL of the state object for workspace. The
// default workspace lives at key; others under prefix/workspace/key.
func (b *Backend) StateURL(workspace string) string {
	key := b.Key
	if workspace != "" && workspace != "default" {
		prefix := b.WorkspaceKeyPrefix
		if prefix == "" {
			prefix = DefaultWorkspacePrefix
		}
		key = path.Join(prefix, workspace, b.Key)
	}
	return fmt.Sprintf("s3://%s/%s", b.Bucket, key)
}

// Discover reads the S3 backend of the root module in rootDir.
func Discover(rootDir string) (*Backend, error) {
	be, err := fromInitState(rootDir)
	if err == nil {
		log.Debugf("backend from init state: bucket=%s key=%s", be.Bucket, be.Key)
		return be, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	be, err = fromConfig(rootDir)
	if err != nil {
		return nil, err
	}
	log.Debugf("backend from config: bucket=%s key=%s", be.Bucket, be.Key)
	return be, nil
}

// Workspace returns the selected workspace of rootDir: $TF_WORKSPACE, else
// .terraform/environment, else "default".
func Workspace(rootDir string) string {
	if ws := os.Getenv("TF_WORKSPACE"); ws != "" {
		return ws
	}
	data, err := os.ReadFile(filepath.Join(rootDir, ".terraform", "environment"))
	if err == nil {
		if ws := strings.TrimSpace(string(data)); ws != "" {
			return ws
		}
	}
	return "default"
}

// fromInitState reads the backend recorded by terraform init.
func fromInitState(rootDir string) (*Backend, error) {
	data, err := os.ReadFile(filepath.Join(rootDir, ".terraform", "terraform.tfstate"))
	if err != nil {
		return nil, err
	}

	var doc struct {
		Backend struct {
			Type   string  `json:"type"`
			Config Backend `json:"config"`
		} `json:"backend"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal init state: %w", err)
	}

	if doc.Backend.Type != "s3" {
		return nil, fmt.Errorf("%w: backend type is %q", ErrNoS3Backend, doc.Backend.Type)
	}

	return validate(&doc.Backend.Config)
}

var (
	rootSchema = &hcl.BodySchema{
		Blocks: []hcl.BlockHeaderSchema{{Type: "terraform"}},
	}
	terraformSchema = &hcl.BodySchema{
		Blocks: []hcl.BlockHeaderSchema{{Type: "backend", LabelNames: []string{"type"}}},
	}
)

// fromConfig finds a backend "s3" block in the *.tf files of rootDir. Only
// literal attribute values are supported.
func fromConfig(rootDir string) (*Backend, error) {
	files, err := filepath.Glob(filepath.Join(rootDir, "*.tf"))
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: no terraform files in %s", ErrNoS3Backend, rootDir)
	}
	sort.Strings(files)

	parser := hclparse.NewParser()
	for _, file := range files {
		f, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse %s: %s", file, diags.Error())
		}

		root, _, _ := f.Body.PartialContent(rootSchema)
		for _, tf := range root.Blocks {
			content, _, _ := tf.Body.PartialContent(terraformSchema)
			for _, block := range content.Blocks {
				if block.Labels[0] != "s3" {
					return nil, fmt.Errorf("%w: backend type is %q", ErrNoS3Backend, block.Labels[0])
				}
				be, err := decodeBackend(block.Body)
				if err != nil {
					return nil, fmt.Errorf("%s: %w", file, err)
				}
				return validate(be)
			}
		}
	}

	return nil, fmt.Errorf("%w in %s", ErrNoS3Backend, rootDir)
}

func decodeBackend(body hcl.Body) (*Backend, error) {
	attrs, diags := body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid backend block: %s", diags.Error())
	}

	be := &Backend{}
	fields := map[string]*string{
		"bucket":               &be.Bucket,
		"key":                  &be.Key,
		"workspace_key_prefix": &be.WorkspaceKeyPrefix,
		"region":               &be.Region,
	}

	for name, attr := range attrs {
		target, ok := fields[name]
		if !ok {
			continue
		}
		v, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("backend attribute %s must be a literal: %s", name, diags.Error())
		}
		if v.IsNull() || !v.IsKnown() || v.Type() != cty.String {
			return nil, fmt.Errorf("backend attribute %s must be a string", name)
		}
		*target = v.AsString()
	}

	return be, nil
}

func validate(be *Backend) (*Backend, error) {
	if be.Bucket == "" || be.Key == "" {
		return nil, fmt.Errorf("s3 backend needs both bucket and key")
	}
	return be, nil
}
