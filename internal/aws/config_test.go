// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package aws

import (
	"context"
	"strings"
	"testing"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	"github.com/aws/aws-sdk-go-v2/service/codeguruprofiler"
	"github.com/aws/aws-sdk-go-v2/service/resiliencehub"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate keeps the developer's shared config and credentials out of the
// tests.
func isolate(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("AWS_CONFIG_FILE", dir+"/config")
	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", dir+"/credentials")
	t.Setenv("AWS_PROFILE", "")
	t.Setenv("AWS_REGION", "")
	t.Setenv("AWS_DEFAULT_REGION", "")
	t.Setenv("AWS_ENDPOINT_URL", "")
}

func TestOptions(t *testing.T) {
	var opts options
	WithProfile("ops")(&opts)
	WithRegion("ap-southeast-1")(&opts)
	WithEndpointURL("http://localhost:4566")(&opts)
	WithMaxAttempts(7)(&opts)
	WithRetryer(func() awsv2.Retryer { return retry.NewStandard() })(&opts)

	assert.Equal(t, "ops", opts.profile)
	assert.Equal(t, "ap-southeast-1", opts.region)
	assert.Equal(t, "http://localhost:4566", opts.endpointURL)
	assert.Equal(t, 7, opts.maxAttempts)
	require.NotNil(t, opts.retryer)
	assert.NotNil(t, opts.retryer())
}

func TestLoadAWSConfig_WithRegion(t *testing.T) {
	isolate(t)

	cfg, err := LoadAWSConfig(context.Background(), WithRegion("us-west-2"))
	require.NoError(t, err)
	assert.Equal(t, "us-west-2", cfg.Region)
	assert.True(t, strings.HasPrefix(cfg.AppID, "awsops/"), cfg.AppID)
}

func TestLoadAWSConfig_OptionsOrder(t *testing.T) {
	isolate(t)

	cfg, err := LoadAWSConfig(context.Background(), WithRegion("us-east-1"), WithRegion("eu-west-1"))
	require.NoError(t, err)
	assert.Equal(t, "eu-west-1", cfg.Region)
}

func TestLoadAWSConfig_EndpointAndAttempts(t *testing.T) {
	isolate(t)

	cfg, err := LoadAWSConfig(context.Background(),
		WithRegion("us-east-1"),
		WithEndpointURL("http://localhost:4566"),
		WithMaxAttempts(5),
	)
	require.NoError(t, err)
	require.NotNil(t, cfg.BaseEndpoint)
	assert.Equal(t, "http://localhost:4566", *cfg.BaseEndpoint)
	require.NotNil(t, cfg.Retryer)
	assert.Equal(t, 5, cfg.Retryer().MaxAttempts())
}

func TestLoadAWSConfig_UnknownProfile(t *testing.T) {
	isolate(t)

	_, err := LoadAWSConfig(context.Background(), WithProfile("does-not-exist"))
	assert.Error(t, err)
}

func TestNewClients(t *testing.T) {
	isolate(t)

	cfg, err := LoadAWSConfig(context.Background(), WithRegion("eu-central-1"))
	require.NoError(t, err)

	c := NewClients(cfg)
	assert.Equal(t, "eu-central-1", c.Region)
	assert.IsType(t, &codeguruprofiler.Client{}, c.Profiler)
	assert.IsType(t, &resiliencehub.Client{}, c.ResilienceHub)
	assert.IsType(t, &s3v2.Client{}, c.S3)
}
