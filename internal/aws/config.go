// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package aws

import (
	"context"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	"github.com/aws/aws-sdk-go-v2/config"

	"github.com/tfctl/awsops/internal/log"
	"github.com/tfctl/awsops/internal/version"
)

// options holds optional overrides for AWS config loading.
type options struct {
	profile     string
	region      string
	endpointURL string
	maxAttempts int
	retryer     func() awsv2.Retryer
}

// Option customizes how AWS config is loaded.
// Default behavior (no options) inherits the shell environment and shared
// config chain (AWS_PROFILE, ~/.aws/config, ~/.aws/credentials, IMDS, etc.).
type Option func(*options)

// LoadAWSConfig loads AWS SDK v2 config. By default it inherits the shell's
// AWS setup (AWS_PROFILE, shared config, env, IMDS). Options can override
// profile, region, endpoint and retry behavior without changing callers.
func LoadAWSConfig(ctx context.Context, opts ...Option) (awsv2.Config, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	log.Debugf("opts applied: profile=%s, region=%s, endpoint=%s, maxAttempts=%d",
		o.profile, o.region, o.endpointURL, o.maxAttempts)

	loadOpts := []func(*config.LoadOptions) error{
		config.WithAppID(version.AppID()),
	}
	if o.profile != "" {
		loadOpts = append(loadOpts, config.WithSharedConfigProfile(o.profile))
	}
	if o.region != "" {
		loadOpts = append(loadOpts, config.WithRegion(o.region))
	}
	if o.endpointURL != "" {
		loadOpts = append(loadOpts, config.WithBaseEndpoint(o.endpointURL))
	}
	switch {
	case o.retryer != nil:
		loadOpts = append(loadOpts, config.WithRetryer(o.retryer))
	case o.maxAttempts > 0:
		n := o.maxAttempts
		loadOpts = append(loadOpts, config.WithRetryer(func() awsv2.Retryer {
			return retry.AddWithMaxAttempts(retry.NewStandard(), n)
		}))
	}
	log.Debugf("loadOpts built: len=%d", len(loadOpts))

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		log.Debugf("config load err: err=%v", err)
		return awsv2.Config{}, err
	}
	log.Debugf("config loaded: region=%s", cfg.Region)
	return cfg, nil
}

// WithProfile sets the shared config profile. Defaults to AWS_PROFILE/env chain.
func WithProfile(profile string) Option {
	return func(o *options) { o.profile = profile }
}

// WithRegion sets the region override. Defaults to env/profile/metadata chain.
func WithRegion(region string) Option {
	return func(o *options) { o.region = region }
}

// WithEndpointURL sends every service call to url instead of the resolved
// regional endpoint.
func WithEndpointURL(url string) Option {
	return func(o *options) { o.endpointURL = url }
}

// WithMaxAttempts caps the SDK standard retryer's attempts. Zero keeps the
// SDK default.
func WithMaxAttempts(n int) Option {
	return func(o *options) { o.maxAttempts = n }
}

// WithRetryer injects a custom retryer; if not set, SDK defaults are used.
// It takes precedence over WithMaxAttempts.
func WithRetryer(newRetryer func() awsv2.Retryer) Option {
	return func(o *options) { o.retryer = newRetryer }
}
