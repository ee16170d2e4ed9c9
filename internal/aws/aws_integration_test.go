// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

//go:build integration
// +build integration

package aws

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/codeguruprofiler"
	cgptypes "github.com/aws/aws-sdk-go-v2/service/codeguruprofiler/types"
	"github.com/aws/aws-sdk-go-v2/service/resiliencehub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func integrationRegion() string {
	if r := os.Getenv("AWS_REGION"); r != "" {
		return r
	}
	return "us-east-1"
}

// TestIntegration_ProfilingGroupLifecycle creates, describes, lists and
// deletes a profiling group using configured AWS credentials.
func TestIntegration_ProfilingGroupLifecycle(t *testing.T) {
	ctx := context.Background()

	clients, err := Connect(ctx, WithRegion(integrationRegion()))
	require.NoError(t, err)

	name := fmt.Sprintf("awsops-test-%d", time.Now().UnixNano())
	_, err = clients.Profiler.CreateProfilingGroup(ctx, &codeguruprofiler.CreateProfilingGroupInput{
		ProfilingGroupName: awsv2.String(name),
		ComputePlatform:    cgptypes.ComputePlatformDefault,
	})
	require.NoError(t, err)
	defer func() {
		_, _ = clients.Profiler.DeleteProfilingGroup(ctx, &codeguruprofiler.DeleteProfilingGroupInput{
			ProfilingGroupName: awsv2.String(name),
		})
	}()

	out, err := clients.Profiler.DescribeProfilingGroup(ctx, &codeguruprofiler.DescribeProfilingGroupInput{
		ProfilingGroupName: awsv2.String(name),
	})
	require.NoError(t, err)
	assert.Equal(t, name, awsv2.ToString(out.ProfilingGroup.Name))

	var names []string
	in := &codeguruprofiler.ListProfilingGroupsInput{MaxResults: awsv2.Int32(10)}
	for {
		page, err := clients.Profiler.ListProfilingGroups(ctx, in)
		require.NoError(t, err)
		names = append(names, page.ProfilingGroupNames...)
		if awsv2.ToString(page.NextToken) == "" {
			break
		}
		in.NextToken = page.NextToken
	}
	assert.Contains(t, names, name)
}

// TestIntegration_ListApps only needs read access to Resilience Hub.
func TestIntegration_ListApps(t *testing.T) {
	ctx := context.Background()

	clients, err := Connect(ctx, WithRegion(integrationRegion()))
	require.NoError(t, err)

	_, err = clients.ResilienceHub.ListApps(ctx, &resiliencehub.ListAppsInput{MaxResults: awsv2.Int32(5)})
	require.NoError(t, err)
}
