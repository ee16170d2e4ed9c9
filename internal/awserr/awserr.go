// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package awserr turns errors returned by AWS SDK calls into messages a
// command-line user can act on.
package awserr

import (
	"context"
	"errors"
	"fmt"
	"net"

	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/smithy-go"
)

// ErrorContext carries input context for improving API error messages.
type ErrorContext struct {
	Service   string // e.g. "codeguruprofiler"
	Operation string // e.g. "ListProfilingGroups"
	Region    string
}

// NameResolutionError replaces a DNS failure raised by the transport.
type NameResolutionError struct {
	Region string
	Host   string
	Err    error
}

func (e *NameResolutionError) Error() string {
	return fmt.Sprintf("name resolution failure attempting to reach service in region %s "+
		"(as supplied to the --region flag or from configured shell default)", nonEmpty(e.Region, "<unknown>"))
}

func (e *NameResolutionError) Unwrap() error { return e.Err }

// ServiceError is an error response returned by an AWS service.
type ServiceError struct {
	Service   string
	Operation string
	Code      string
	Message   string
	Fault     smithy.ErrorFault
	RequestID string
	Err       error
}

func (e *ServiceError) Error() string {
	msg := fmt.Sprintf("%s %s failed: %s", e.Service, e.Operation, e.Code)
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.RequestID != "" {
		msg += " (request id " + e.RequestID + ")"
	}
	return msg
}

func (e *ServiceError) Unwrap() error { return e.Err }

// Friendly classifies err:
//   - DNS/name-resolution failures become a *NameResolutionError;
//   - errors reported by the service become a *ServiceError;
//   - anything else is returned unchanged.
//
// The original error stays reachable through errors.Is/As.
func Friendly(err error, ctx ErrorContext) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return &NameResolutionError{Region: ctx.Region, Host: dnsErr.Name, Err: err}
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		se := &ServiceError{
			Service:   nonEmpty(ctx.Service, "service"),
			Operation: nonEmpty(ctx.Operation, "request"),
			Code:      apiErr.ErrorCode(),
			Message:   apiErr.ErrorMessage(),
			Fault:     apiErr.ErrorFault(),
			Err:       err,
		}
		var respErr *awshttp.ResponseError
		if errors.As(err, &respErr) {
			se.RequestID = respErr.ServiceRequestID()
		}
		return se
	}

	return err
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
