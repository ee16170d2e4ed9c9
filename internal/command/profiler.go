// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	cgp "github.com/aws/aws-sdk-go-v2/service/codeguruprofiler"
	cgptypes "github.com/aws/aws-sdk-go-v2/service/codeguruprofiler/types"

	awsx "github.com/tfctl/awsops/internal/aws"
	"github.com/tfctl/awsops/internal/bind"
)

const profilerService = "codeguruprofiler"

// profilerCall adapts a ProfilerAPI method expression to Operation.Call.
func profilerCall[In, Out any](
	method func(awsx.ProfilerAPI, context.Context, *In, ...func(*cgp.Options)) (*Out, error),
) func(context.Context, *awsx.Clients, *In) (*Out, error) {
	return func(ctx context.Context, c *awsx.Clients, in *In) (*Out, error) {
		return method(c.Profiler, ctx, in)
	}
}

var (
	pgNameParam = bind.Param{Name: "ProfilingGroupName", Required: true}
	pgMaxParam  = bind.Param{Name: "MaxResults", Kind: bind.Int, Usage: "page size"}
	pgStart     = bind.Param{Name: "StartTime", Kind: bind.Time}
	pgEnd       = bind.Param{Name: "EndTime", Kind: bind.Time}
	pgARNParam  = bind.Param{Name: "ResourceArn", Required: true}
)

func profilerOperations() []commander {
	return []commander{
		&Operation[cgp.AddNotificationChannelsInput, cgp.AddNotificationChannelsOutput]{
			Name:  "AddNotificationChannels",
			Usage: "add up to two anomaly notification channels to a profiling group",
			Params: []bind.Param{
				pgNameParam,
				{Name: "Channels", Kind: bind.JSON, Required: true, Usage: `channel list, e.g. [{"uri":"arn:aws:sns:...","eventPublishers":["AnomalyDetection"]}]`},
			},
			DefaultSelect: "NotificationConfiguration.Channels",
			Build: func(b *bind.Binder) *cgp.AddNotificationChannelsInput {
				in := &cgp.AddNotificationChannelsInput{ProfilingGroupName: b.String("ProfilingGroupName")}
				b.JSON("Channels", &in.Channels)
				return in
			},
			Call: profilerCall(awsx.ProfilerAPI.AddNotificationChannels),
		},

		&Operation[cgp.BatchGetFrameMetricDataInput, cgp.BatchGetFrameMetricDataOutput]{
			Name:  "BatchGetFrameMetricData",
			Usage: "get time series of frame metrics",
			Params: []bind.Param{
				pgNameParam,
				pgStart,
				pgEnd,
				{Name: "Period", Usage: "ISO 8601 duration, e.g. PT5M"},
				{Name: "TargetResolution", Kind: bind.Enum, Values: bind.Values(cgptypes.AggregationPeriod("").Values())},
				{Name: "FrameMetrics", Kind: bind.JSON, Usage: `e.g. [{"frameName":"...","threadStates":["RUNNABLE"],"type":"AggregatedRelativeTotalTime"}]`},
			},
			DefaultSelect: "FrameMetricData",
			Build: func(b *bind.Binder) *cgp.BatchGetFrameMetricDataInput {
				in := &cgp.BatchGetFrameMetricDataInput{
					ProfilingGroupName: b.String("ProfilingGroupName"),
					StartTime:          b.Time("StartTime"),
					EndTime:            b.Time("EndTime"),
					Period:             b.String("Period"),
					TargetResolution:   bind.EnumOf[cgptypes.AggregationPeriod](b, "TargetResolution"),
				}
				b.JSON("FrameMetrics", &in.FrameMetrics)
				return in
			},
			Call: profilerCall(awsx.ProfilerAPI.BatchGetFrameMetricData),
		},

		&Operation[cgp.ConfigureAgentInput, cgp.ConfigureAgentOutput]{
			Name:  "ConfigureAgent",
			Usage: "get the profiling agent configuration",
			Params: []bind.Param{
				pgNameParam,
				{Name: "FleetInstanceId"},
				{Name: "Metadata", Kind: bind.StringMap},
			},
			DefaultSelect: "Configuration",
			Build: func(b *bind.Binder) *cgp.ConfigureAgentInput {
				return &cgp.ConfigureAgentInput{
					ProfilingGroupName: b.String("ProfilingGroupName"),
					FleetInstanceId:    b.String("FleetInstanceId"),
					Metadata:           b.Map("Metadata"),
				}
			},
			Call: profilerCall(awsx.ProfilerAPI.ConfigureAgent),
		},

		&Operation[cgp.CreateProfilingGroupInput, cgp.CreateProfilingGroupOutput]{
			Name:  "CreateProfilingGroup",
			Usage: "create a profiling group",
			Params: []bind.Param{
				pgNameParam,
				{Name: "ClientToken", Usage: "idempotency token"},
				{Name: "ComputePlatform", Kind: bind.Enum, Values: bind.Values(cgptypes.ComputePlatform("").Values())},
				{Name: "AgentOrchestrationConfig_ProfilingEnabled", Kind: bind.Bool, Usage: "whether profiling is enabled"},
				{Name: "Tags", Kind: bind.StringMap},
			},
			DefaultSelect: "ProfilingGroup",
			DefaultAttrs:  "Name,ComputePlatform,CreatedAt,Arn",
			Build: func(b *bind.Binder) *cgp.CreateProfilingGroupInput {
				return &cgp.CreateProfilingGroupInput{
					ProfilingGroupName:       b.String("ProfilingGroupName"),
					ClientToken:              b.String("ClientToken"),
					ComputePlatform:          bind.EnumOf[cgptypes.ComputePlatform](b, "ComputePlatform"),
					AgentOrchestrationConfig: agentOrchestrationConfig(b),
					Tags:                     b.Map("Tags"),
				}
			},
			Call: profilerCall(awsx.ProfilerAPI.CreateProfilingGroup),
		},

		&Operation[cgp.DeleteProfilingGroupInput, cgp.DeleteProfilingGroupOutput]{
			Name:          "DeleteProfilingGroup",
			Usage:         "delete a profiling group",
			Params:        []bind.Param{pgNameParam},
			DefaultSelect: "^ProfilingGroupName",
			Destructive:   true,
			Build: func(b *bind.Binder) *cgp.DeleteProfilingGroupInput {
				return &cgp.DeleteProfilingGroupInput{ProfilingGroupName: b.String("ProfilingGroupName")}
			},
			Call: profilerCall(awsx.ProfilerAPI.DeleteProfilingGroup),
		},

		&Operation[cgp.DescribeProfilingGroupInput, cgp.DescribeProfilingGroupOutput]{
			Name:          "DescribeProfilingGroup",
			Usage:         "describe a profiling group",
			Params:        []bind.Param{pgNameParam},
			DefaultSelect: "ProfilingGroup",
			DefaultAttrs:  "Name,ComputePlatform,AgentOrchestrationConfig.ProfilingEnabled:ProfilingEnabled,ProfilingStatus.LatestAgentProfileReportedAt:LastReport,UpdatedAt",
			Build: func(b *bind.Binder) *cgp.DescribeProfilingGroupInput {
				return &cgp.DescribeProfilingGroupInput{ProfilingGroupName: b.String("ProfilingGroupName")}
			},
			Call: profilerCall(awsx.ProfilerAPI.DescribeProfilingGroup),
		},

		&Operation[cgp.GetFindingsReportAccountSummaryInput, cgp.GetFindingsReportAccountSummaryOutput]{
			Name:  "GetFindingsReportAccountSummary",
			Usage: "summarize the findings reports of every profiling group",
			Params: []bind.Param{
				{Name: "DailyReportsOnly", Kind: bind.Bool},
				pgMaxParam,
			},
			DefaultSelect: "ReportSummaries",
			DefaultAttrs:  "ProfilingGroupName,TotalNumberOfFindings:Findings,ProfileStartTime,ProfileEndTime",
			Build: func(b *bind.Binder) *cgp.GetFindingsReportAccountSummaryInput {
				return &cgp.GetFindingsReportAccountSummaryInput{
					DailyReportsOnly: b.Bool("DailyReportsOnly"),
					MaxResults:       b.Int32("MaxResults"),
				}
			},
			Call: profilerCall(awsx.ProfilerAPI.GetFindingsReportAccountSummary),
			Cursor: pager(
				func(in *cgp.GetFindingsReportAccountSummaryInput) **string { return &in.NextToken },
				func(out *cgp.GetFindingsReportAccountSummaryOutput) *string { return out.NextToken },
			),
		},

		&Operation[cgp.GetNotificationConfigurationInput, cgp.GetNotificationConfigurationOutput]{
			Name:          "GetNotificationConfiguration",
			Usage:         "get the notification channels of a profiling group",
			Params:        []bind.Param{pgNameParam},
			DefaultSelect: "NotificationConfiguration.Channels",
			Build: func(b *bind.Binder) *cgp.GetNotificationConfigurationInput {
				return &cgp.GetNotificationConfigurationInput{ProfilingGroupName: b.String("ProfilingGroupName")}
			},
			Call: profilerCall(awsx.ProfilerAPI.GetNotificationConfiguration),
		},

		&Operation[cgp.GetPolicyInput, cgp.GetPolicyOutput]{
			Name:          "GetPolicy",
			Usage:         "get the resource-based policy of a profiling group",
			Params:        []bind.Param{pgNameParam},
			DefaultSelect: "*",
			Build: func(b *bind.Binder) *cgp.GetPolicyInput {
				return &cgp.GetPolicyInput{ProfilingGroupName: b.String("ProfilingGroupName")}
			},
			Call: profilerCall(awsx.ProfilerAPI.GetPolicy),
		},

		&Operation[cgp.GetProfileInput, cgp.GetProfileOutput]{
			Name:  "GetProfile",
			Usage: "get an aggregated profile",
			Params: []bind.Param{
				pgNameParam,
				pgStart,
				pgEnd,
				{Name: "Period", Usage: "ISO 8601 duration, e.g. PT1H"},
				{Name: "MaxDepth", Kind: bind.Int},
				{Name: "Accept", Usage: "profile format, e.g. application/json"},
			},
			DefaultSelect: "Profile",
			Build: func(b *bind.Binder) *cgp.GetProfileInput {
				return &cgp.GetProfileInput{
					ProfilingGroupName: b.String("ProfilingGroupName"),
					StartTime:          b.Time("StartTime"),
					EndTime:            b.Time("EndTime"),
					Period:             b.String("Period"),
					MaxDepth:           b.Int32("MaxDepth"),
					Accept:             b.String("Accept"),
				}
			},
			Call: profilerCall(awsx.ProfilerAPI.GetProfile),
		},

		&Operation[cgp.GetRecommendationsInput, cgp.GetRecommendationsOutput]{
			Name:  "GetRecommendations",
			Usage: "get recommendations for a time range",
			Params: []bind.Param{
				pgNameParam,
				{Name: "StartTime", Kind: bind.Time, Required: true},
				{Name: "EndTime", Kind: bind.Time, Required: true},
				{Name: "Locale"},
			},
			DefaultSelect: "Recommendations",
			DefaultAttrs:  "Pattern.Name:Pattern,AllMatchesCount:Matches,AllMatchesSum:Sum,StartTime,EndTime",
			Build: func(b *bind.Binder) *cgp.GetRecommendationsInput {
				return &cgp.GetRecommendationsInput{
					ProfilingGroupName: b.String("ProfilingGroupName"),
					StartTime:          b.Time("StartTime"),
					EndTime:            b.Time("EndTime"),
					Locale:             b.String("Locale"),
				}
			},
			Call: profilerCall(awsx.ProfilerAPI.GetRecommendations),
		},

		&Operation[cgp.ListFindingsReportsInput, cgp.ListFindingsReportsOutput]{
			Name:  "ListFindingsReports",
			Usage: "list the findings reports of a profiling group",
			Params: []bind.Param{
				pgNameParam,
				{Name: "StartTime", Kind: bind.Time, Required: true},
				{Name: "EndTime", Kind: bind.Time, Required: true},
				{Name: "DailyReportsOnly", Kind: bind.Bool},
				pgMaxParam,
			},
			DefaultSelect: "FindingsReportSummaries",
			DefaultAttrs:  "Id,TotalNumberOfFindings:Findings,ProfileStartTime,ProfileEndTime",
			Build: func(b *bind.Binder) *cgp.ListFindingsReportsInput {
				return &cgp.ListFindingsReportsInput{
					ProfilingGroupName: b.String("ProfilingGroupName"),
					StartTime:          b.Time("StartTime"),
					EndTime:            b.Time("EndTime"),
					DailyReportsOnly:   b.Bool("DailyReportsOnly"),
					MaxResults:         b.Int32("MaxResults"),
				}
			},
			Call: profilerCall(awsx.ProfilerAPI.ListFindingsReports),
			Cursor: pager(
				func(in *cgp.ListFindingsReportsInput) **string { return &in.NextToken },
				func(out *cgp.ListFindingsReportsOutput) *string { return out.NextToken },
			),
		},

		&Operation[cgp.ListProfileTimesInput, cgp.ListProfileTimesOutput]{
			Name:  "ListProfileTimes",
			Usage: "list the start times of available aggregated profiles",
			Params: []bind.Param{
				pgNameParam,
				{Name: "StartTime", Kind: bind.Time, Required: true},
				{Name: "EndTime", Kind: bind.Time, Required: true},
				{Name: "Period", Kind: bind.Enum, Required: true, Values: bind.Values(cgptypes.AggregationPeriod("").Values())},
				{Name: "OrderBy", Kind: bind.Enum, Values: bind.Values(cgptypes.OrderBy("").Values())},
				pgMaxParam,
			},
			DefaultSelect: "ProfileTimes",
			DefaultAttrs:  "Start",
			Build: func(b *bind.Binder) *cgp.ListProfileTimesInput {
				return &cgp.ListProfileTimesInput{
					ProfilingGroupName: b.String("ProfilingGroupName"),
					StartTime:          b.Time("StartTime"),
					EndTime:            b.Time("EndTime"),
					Period:             bind.EnumOf[cgptypes.AggregationPeriod](b, "Period"),
					OrderBy:            bind.EnumOf[cgptypes.OrderBy](b, "OrderBy"),
					MaxResults:         b.Int32("MaxResults"),
				}
			},
			Call: profilerCall(awsx.ProfilerAPI.ListProfileTimes),
			Cursor: pager(
				func(in *cgp.ListProfileTimesInput) **string { return &in.NextToken },
				func(out *cgp.ListProfileTimesOutput) *string { return out.NextToken },
			),
		},

		&Operation[cgp.ListProfilingGroupsInput, cgp.ListProfilingGroupsOutput]{
			Name:  "ListProfilingGroups",
			Usage: "list profiling groups",
			Params: []bind.Param{
				{Name: "IncludeDescription", Kind: bind.Bool, Usage: "return full descriptions instead of names"},
				pgMaxParam,
			},
			DefaultSelect: "ProfilingGroupNames",
			Build: func(b *bind.Binder) *cgp.ListProfilingGroupsInput {
				return &cgp.ListProfilingGroupsInput{
					IncludeDescription: b.Bool("IncludeDescription"),
					MaxResults:         b.Int32("MaxResults"),
				}
			},
			Call: profilerCall(awsx.ProfilerAPI.ListProfilingGroups),
			Cursor: pager(
				func(in *cgp.ListProfilingGroupsInput) **string { return &in.NextToken },
				func(out *cgp.ListProfilingGroupsOutput) *string { return out.NextToken },
			),
		},

		&Operation[cgp.ListTagsForResourceInput, cgp.ListTagsForResourceOutput]{
			Name:          "ListTagsForResource",
			Usage:         "list the tags of a profiling group",
			Params:        []bind.Param{pgARNParam},
			DefaultSelect: "Tags",
			Build: func(b *bind.Binder) *cgp.ListTagsForResourceInput {
				return &cgp.ListTagsForResourceInput{ResourceArn: b.String("ResourceArn")}
			},
			Call: profilerCall(awsx.ProfilerAPI.ListTagsForResource),
		},

		&Operation[cgp.PostAgentProfileInput, cgp.PostAgentProfileOutput]{
			Name:  "PostAgentProfile",
			Usage: "submit profiling data",
			Params: []bind.Param{
				pgNameParam,
				{Name: "AgentProfile", Kind: bind.Blob, Required: true},
				{Name: "ContentType", Required: true, Usage: "application/json or application/x-amzn-ion"},
				{Name: "ProfileToken", Usage: "idempotency token"},
			},
			DefaultSelect: "",
			Build: func(b *bind.Binder) *cgp.PostAgentProfileInput {
				return &cgp.PostAgentProfileInput{
					ProfilingGroupName: b.String("ProfilingGroupName"),
					AgentProfile:       b.Blob("AgentProfile"),
					ContentType:        b.String("ContentType"),
					ProfileToken:       b.String("ProfileToken"),
				}
			},
			Call: profilerCall(awsx.ProfilerAPI.PostAgentProfile),
		},

		&Operation[cgp.PutPermissionInput, cgp.PutPermissionOutput]{
			Name:  "PutPermission",
			Usage: "grant principals an action group on a profiling group",
			Params: []bind.Param{
				pgNameParam,
				{Name: "ActionGroup", Kind: bind.Enum, Required: true, Values: bind.Values(cgptypes.ActionGroup("").Values())},
				{Name: "Principals", Kind: bind.StringList, Required: true},
				{Name: "RevisionId"},
			},
			DefaultSelect: "*",
			Build: func(b *bind.Binder) *cgp.PutPermissionInput {
				return &cgp.PutPermissionInput{
					ProfilingGroupName: b.String("ProfilingGroupName"),
					ActionGroup:        bind.EnumOf[cgptypes.ActionGroup](b, "ActionGroup"),
					Principals:         b.Strings("Principals"),
					RevisionId:         b.String("RevisionId"),
				}
			},
			Call: profilerCall(awsx.ProfilerAPI.PutPermission),
		},

		&Operation[cgp.RemoveNotificationChannelInput, cgp.RemoveNotificationChannelOutput]{
			Name:  "RemoveNotificationChannel",
			Usage: "remove a notification channel from a profiling group",
			Params: []bind.Param{
				pgNameParam,
				{Name: "ChannelId", Required: true},
			},
			DefaultSelect: "NotificationConfiguration.Channels",
			Destructive:   true,
			Build: func(b *bind.Binder) *cgp.RemoveNotificationChannelInput {
				return &cgp.RemoveNotificationChannelInput{
					ProfilingGroupName: b.String("ProfilingGroupName"),
					ChannelId:          b.String("ChannelId"),
				}
			},
			Call: profilerCall(awsx.ProfilerAPI.RemoveNotificationChannel),
		},

		&Operation[cgp.RemovePermissionInput, cgp.RemovePermissionOutput]{
			Name:  "RemovePermission",
			Usage: "revoke an action group on a profiling group",
			Params: []bind.Param{
				pgNameParam,
				{Name: "ActionGroup", Kind: bind.Enum, Required: true, Values: bind.Values(cgptypes.ActionGroup("").Values())},
				{Name: "RevisionId", Required: true},
			},
			DefaultSelect: "*",
			Destructive:   true,
			Build: func(b *bind.Binder) *cgp.RemovePermissionInput {
				return &cgp.RemovePermissionInput{
					ProfilingGroupName: b.String("ProfilingGroupName"),
					ActionGroup:        bind.EnumOf[cgptypes.ActionGroup](b, "ActionGroup"),
					RevisionId:         b.String("RevisionId"),
				}
			},
			Call: profilerCall(awsx.ProfilerAPI.RemovePermission),
		},

		&Operation[cgp.SubmitFeedbackInput, cgp.SubmitFeedbackOutput]{
			Name:  "SubmitFeedback",
			Usage: "rate an anomaly",
			Params: []bind.Param{
				pgNameParam,
				{Name: "AnomalyInstanceId", Required: true},
				{Name: "Type", Kind: bind.Enum, Required: true, Values: bind.Values(cgptypes.FeedbackType("").Values())},
				{Name: "Comment"},
			},
			DefaultSelect: "",
			Build: func(b *bind.Binder) *cgp.SubmitFeedbackInput {
				return &cgp.SubmitFeedbackInput{
					ProfilingGroupName: b.String("ProfilingGroupName"),
					AnomalyInstanceId:  b.String("AnomalyInstanceId"),
					Type:               bind.EnumOf[cgptypes.FeedbackType](b, "Type"),
					Comment:            b.String("Comment"),
				}
			},
			Call: profilerCall(awsx.ProfilerAPI.SubmitFeedback),
		},

		&Operation[cgp.TagResourceInput, cgp.TagResourceOutput]{
			Name:  "TagResource",
			Usage: "tag a profiling group",
			Params: []bind.Param{
				pgARNParam,
				{Name: "Tags", Kind: bind.StringMap, Required: true},
			},
			DefaultSelect: "",
			Build: func(b *bind.Binder) *cgp.TagResourceInput {
				return &cgp.TagResourceInput{
					ResourceArn: b.String("ResourceArn"),
					Tags:        b.Map("Tags"),
				}
			},
			Call: profilerCall(awsx.ProfilerAPI.TagResource),
		},

		&Operation[cgp.UntagResourceInput, cgp.UntagResourceOutput]{
			Name:  "UntagResource",
			Usage: "remove tags from a profiling group",
			Params: []bind.Param{
				pgARNParam,
				{Name: "TagKeys", Kind: bind.StringList, Required: true},
			},
			DefaultSelect: "",
			Destructive:   true,
			Build: func(b *bind.Binder) *cgp.UntagResourceInput {
				return &cgp.UntagResourceInput{
					ResourceArn: b.String("ResourceArn"),
					TagKeys:     b.Strings("TagKeys"),
				}
			},
			Call: profilerCall(awsx.ProfilerAPI.UntagResource),
		},

		&Operation[cgp.UpdateProfilingGroupInput, cgp.UpdateProfilingGroupOutput]{
			Name:  "UpdateProfilingGroup",
			Usage: "turn profiling on or off for a profiling group",
			Params: []bind.Param{
				pgNameParam,
				{Name: "AgentOrchestrationConfig_ProfilingEnabled", Kind: bind.Bool, Required: true, Usage: "whether profiling is enabled"},
			},
			DefaultSelect: "ProfilingGroup",
			DefaultAttrs:  "Name,AgentOrchestrationConfig.ProfilingEnabled:ProfilingEnabled,UpdatedAt",
			Build: func(b *bind.Binder) *cgp.UpdateProfilingGroupInput {
				return &cgp.UpdateProfilingGroupInput{
					ProfilingGroupName:       b.String("ProfilingGroupName"),
					AgentOrchestrationConfig: agentOrchestrationConfig(b),
				}
			},
			Call: profilerCall(awsx.ProfilerAPI.UpdateProfilingGroup),
		},
	}
}

// agentOrchestrationConfig is nil unless the flattened member was bound.
func agentOrchestrationConfig(b *bind.Binder) *cgptypes.AgentOrchestrationConfig {
	enabled := b.Bool("AgentOrchestrationConfig_ProfilingEnabled")
	if enabled == nil {
		return nil
	}
	return &cgptypes.AgentOrchestrationConfig{ProfilingEnabled: enabled}
}
