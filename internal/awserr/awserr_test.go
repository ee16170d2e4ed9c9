// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package awserr

import (
	"context"
	"errors"
	"fmt"
	"net"
	"testing"

	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ectx = ErrorContext{Service: "codeguruprofiler", Operation: "ListProfilingGroups", Region: "eu-west-9"}

func TestFriendly_Nil(t *testing.T) {
	assert.NoError(t, Friendly(nil, ectx))
}

func TestFriendly_DNSFailure(t *testing.T) {
	dns := &net.DNSError{Err: "no such host", Name: "codeguru-profiler.eu-west-9.amazonaws.com", IsNotFound: true}
	raw := &smithy.OperationError{
		ServiceID:     "CodeGuruProfiler",
		OperationName: "ListProfilingGroups",
		Err:           fmt.Errorf("send request: %w", &net.OpError{Op: "dial", Err: dns}),
	}

	err := Friendly(raw, ectx)

	var nre *NameResolutionError
	require.ErrorAs(t, err, &nre)
	assert.Equal(t, "codeguru-profiler.eu-west-9.amazonaws.com", nre.Host)
	assert.Contains(t, err.Error(), "name resolution failure attempting to reach service in region eu-west-9")
	assert.NotContains(t, err.Error(), "no such host")

	var gotDNS *net.DNSError
	assert.ErrorAs(t, err, &gotDNS, "original error stays reachable")
}

func TestFriendly_ServiceError(t *testing.T) {
	apiErr := &smithy.GenericAPIError{Code: "ResourceNotFoundException", Message: "profiling group not found", Fault: smithy.FaultClient}
	raw := &smithy.OperationError{ServiceID: "CodeGuruProfiler", OperationName: "DescribeProfilingGroup", Err: apiErr}

	err := Friendly(raw, ErrorContext{Service: "codeguruprofiler", Operation: "DescribeProfilingGroup"})

	var se *ServiceError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "ResourceNotFoundException", se.Code)
	assert.Equal(t, smithy.FaultClient, se.Fault)
	assert.Equal(t, "codeguruprofiler DescribeProfilingGroup failed: ResourceNotFoundException: profiling group not found", err.Error())
	assert.ErrorIs(t, err, raw)
}

func TestFriendly_Passthrough(t *testing.T) {
	other := errors.New("disk full")
	assert.Same(t, other, Friendly(other, ectx))

	assert.ErrorIs(t, Friendly(context.Canceled, ectx), context.Canceled)
}

func TestNameResolutionError_UnknownRegion(t *testing.T) {
	err := &NameResolutionError{}
	assert.Contains(t, err.Error(), "region <unknown>")
}
