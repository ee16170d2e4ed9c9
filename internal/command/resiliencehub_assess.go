// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	rh "github.com/aws/aws-sdk-go-v2/service/resiliencehub"
	rhtypes "github.com/aws/aws-sdk-go-v2/service/resiliencehub/types"

	awsx "github.com/tfctl/awsops/internal/aws"
	"github.com/tfctl/awsops/internal/bind"
)

const (
	policyAttrs     = "PolicyName,Tier,EstimatedCostTier,DataLocationConstraint,CreationTime,PolicyArn"
	assessmentAttrs = "AssessmentName,AssessmentStatus,ComplianceStatus,ResiliencyScore,StartTime,AssessmentArn"
	templateAttrs   = "Name,Status,Format,StartTime,RecommendationTemplateArn"
)

var (
	tierValues     = bind.Values(rhtypes.ResiliencyPolicyTier("").Values())
	locationValues = bind.Values(rhtypes.DataLocationConstraint("").Values())
	policyJSONHelp = `failure policy per disruption type, e.g. {"Software":{"RtoInSecs":3600,"RpoInSecs":3600},...}`
)

func policyOperations() []commander {
	return []commander{
		&Operation[rh.CreateResiliencyPolicyInput, rh.CreateResiliencyPolicyOutput]{
			Name:  "CreateResiliencyPolicy",
			Usage: "create a resiliency policy",
			Params: []bind.Param{
				{Name: "PolicyName", Required: true},
				{Name: "Tier", Kind: bind.Enum, Required: true, Values: tierValues},
				{Name: "Policy", Kind: bind.JSON, Required: true, Usage: policyJSONHelp},
				{Name: "PolicyDescription"},
				{Name: "DataLocationConstraint", Kind: bind.Enum, Values: locationValues},
				clientTokenParam,
				rhTagsParam,
			},
			DefaultSelect: "Policy",
			DefaultAttrs:  policyAttrs,
			Build: func(b *bind.Binder) *rh.CreateResiliencyPolicyInput {
				in := &rh.CreateResiliencyPolicyInput{
					PolicyName:             b.String("PolicyName"),
					Tier:                   bind.EnumOf[rhtypes.ResiliencyPolicyTier](b, "Tier"),
					PolicyDescription:      b.String("PolicyDescription"),
					DataLocationConstraint: bind.EnumOf[rhtypes.DataLocationConstraint](b, "DataLocationConstraint"),
					ClientToken:            b.String("ClientToken"),
					Tags:                   b.Map("Tags"),
				}
				b.JSON("Policy", &in.Policy)
				return in
			},
			Call: rhCall(awsx.ResilienceHubAPI.CreateResiliencyPolicy),
		},

		&Operation[rh.DescribeResiliencyPolicyInput, rh.DescribeResiliencyPolicyOutput]{
			Name:          "DescribeResiliencyPolicy",
			Usage:         "describe a resiliency policy",
			Params:        []bind.Param{{Name: "PolicyArn", Required: true}},
			DefaultSelect: "Policy",
			DefaultAttrs:  policyAttrs,
			Build: func(b *bind.Binder) *rh.DescribeResiliencyPolicyInput {
				return &rh.DescribeResiliencyPolicyInput{PolicyArn: b.String("PolicyArn")}
			},
			Call: rhCall(awsx.ResilienceHubAPI.DescribeResiliencyPolicy),
		},

		&Operation[rh.UpdateResiliencyPolicyInput, rh.UpdateResiliencyPolicyOutput]{
			Name:  "UpdateResiliencyPolicy",
			Usage: "update a resiliency policy",
			Params: []bind.Param{
				{Name: "PolicyArn", Required: true},
				{Name: "PolicyName"},
				{Name: "Tier", Kind: bind.Enum, Values: tierValues},
				{Name: "Policy", Kind: bind.JSON, Usage: policyJSONHelp},
				{Name: "PolicyDescription"},
				{Name: "DataLocationConstraint", Kind: bind.Enum, Values: locationValues},
			},
			DefaultSelect: "Policy",
			DefaultAttrs:  policyAttrs,
			Build: func(b *bind.Binder) *rh.UpdateResiliencyPolicyInput {
				in := &rh.UpdateResiliencyPolicyInput{
					PolicyArn:              b.String("PolicyArn"),
					PolicyName:             b.String("PolicyName"),
					Tier:                   bind.EnumOf[rhtypes.ResiliencyPolicyTier](b, "Tier"),
					PolicyDescription:      b.String("PolicyDescription"),
					DataLocationConstraint: bind.EnumOf[rhtypes.DataLocationConstraint](b, "DataLocationConstraint"),
				}
				b.JSON("Policy", &in.Policy)
				return in
			},
			Call: rhCall(awsx.ResilienceHubAPI.UpdateResiliencyPolicy),
		},

		&Operation[rh.DeleteResiliencyPolicyInput, rh.DeleteResiliencyPolicyOutput]{
			Name:  "DeleteResiliencyPolicy",
			Usage: "delete a resiliency policy",
			Params: []bind.Param{
				{Name: "PolicyArn", Required: true},
				clientTokenParam,
			},
			DefaultSelect: "PolicyArn",
			Destructive:   true,
			Build: func(b *bind.Binder) *rh.DeleteResiliencyPolicyInput {
				return &rh.DeleteResiliencyPolicyInput{
					PolicyArn:   b.String("PolicyArn"),
					ClientToken: b.String("ClientToken"),
				}
			},
			Call: rhCall(awsx.ResilienceHubAPI.DeleteResiliencyPolicy),
		},

		&Operation[rh.ListResiliencyPoliciesInput, rh.ListResiliencyPoliciesOutput]{
			Name:  "ListResiliencyPolicies",
			Usage: "list resiliency policies",
			Params: []bind.Param{
				{Name: "PolicyName"},
				rhMaxParam,
			},
			DefaultSelect: "ResiliencyPolicies",
			DefaultAttrs:  policyAttrs,
			Build: func(b *bind.Binder) *rh.ListResiliencyPoliciesInput {
				return &rh.ListResiliencyPoliciesInput{
					PolicyName: b.String("PolicyName"),
					MaxResults: b.Int32("MaxResults"),
				}
			},
			Call: rhCall(awsx.ResilienceHubAPI.ListResiliencyPolicies),
			Cursor: pager(
				func(in *rh.ListResiliencyPoliciesInput) **string { return &in.NextToken },
				func(out *rh.ListResiliencyPoliciesOutput) *string { return out.NextToken },
			),
		},

		&Operation[rh.ListSuggestedResiliencyPoliciesInput, rh.ListSuggestedResiliencyPoliciesOutput]{
			Name:          "ListSuggestedResiliencyPolicies",
			Usage:         "list the AWS suggested resiliency policies",
			Params:        []bind.Param{rhMaxParam},
			DefaultSelect: "ResiliencyPolicies",
			DefaultAttrs:  policyAttrs,
			Build: func(b *bind.Binder) *rh.ListSuggestedResiliencyPoliciesInput {
				return &rh.ListSuggestedResiliencyPoliciesInput{MaxResults: b.Int32("MaxResults")}
			},
			Call: rhCall(awsx.ResilienceHubAPI.ListSuggestedResiliencyPolicies),
			Cursor: pager(
				func(in *rh.ListSuggestedResiliencyPoliciesInput) **string { return &in.NextToken },
				func(out *rh.ListSuggestedResiliencyPoliciesOutput) *string { return out.NextToken },
			),
		},
	}
}

func assessmentOperations() []commander {
	return []commander{
		&Operation[rh.StartAppAssessmentInput, rh.StartAppAssessmentOutput]{
			Name:  "StartAppAssessment",
			Usage: "assess an application version",
			Params: []bind.Param{
				appARNParam,
				appVersionParam,
				{Name: "AssessmentName", Required: true},
				clientTokenParam,
				rhTagsParam,
			},
			DefaultSelect: "Assessment",
			DefaultAttrs:  assessmentAttrs,
			Build: func(b *bind.Binder) *rh.StartAppAssessmentInput {
				return &rh.StartAppAssessmentInput{
					AppArn:         b.String("AppArn"),
					AppVersion:     b.String("AppVersion"),
					AssessmentName: b.String("AssessmentName"),
					ClientToken:    b.String("ClientToken"),
					Tags:           b.Map("Tags"),
				}
			},
			Call: rhCall(awsx.ResilienceHubAPI.StartAppAssessment),
		},

		&Operation[rh.DescribeAppAssessmentInput, rh.DescribeAppAssessmentOutput]{
			Name:          "DescribeAppAssessment",
			Usage:         "describe an assessment",
			Params:        []bind.Param{assessmentParam},
			DefaultSelect: "Assessment",
			DefaultAttrs:  "AssessmentName,AssessmentStatus,ComplianceStatus,ResiliencyScore.Score:Score,StartTime,EndTime",
			Build: func(b *bind.Binder) *rh.DescribeAppAssessmentInput {
				return &rh.DescribeAppAssessmentInput{AssessmentArn: b.String("AssessmentArn")}
			},
			Call: rhCall(awsx.ResilienceHubAPI.DescribeAppAssessment),
		},

		&Operation[rh.DeleteAppAssessmentInput, rh.DeleteAppAssessmentOutput]{
			Name:  "DeleteAppAssessment",
			Usage: "delete an assessment",
			Params: []bind.Param{
				assessmentParam,
				clientTokenParam,
			},
			DefaultSelect: "AssessmentArn",
			Destructive:   true,
			Build: func(b *bind.Binder) *rh.DeleteAppAssessmentInput {
				return &rh.DeleteAppAssessmentInput{
					AssessmentArn: b.String("AssessmentArn"),
					ClientToken:   b.String("ClientToken"),
				}
			},
			Call: rhCall(awsx.ResilienceHubAPI.DeleteAppAssessment),
		},

		&Operation[rh.ListAppAssessmentsInput, rh.ListAppAssessmentsOutput]{
			Name:  "ListAppAssessments",
			Usage: "list assessments",
			Params: []bind.Param{
				{Name: "AppArn"},
				{Name: "AssessmentName"},
				{Name: "AssessmentStatus", Kind: bind.StringList, Usage: "statuses: " + joinValues(rhtypes.AssessmentStatus("").Values())},
				{Name: "ComplianceStatus", Kind: bind.Enum, Values: bind.Values(rhtypes.ComplianceStatus("").Values())},
				{Name: "Invoker", Kind: bind.Enum, Values: bind.Values(rhtypes.AssessmentInvoker("").Values())},
				{Name: "ReverseOrder", Kind: bind.Bool},
				rhMaxParam,
			},
			DefaultSelect: "AssessmentSummaries",
			DefaultAttrs:  assessmentAttrs,
			Build: func(b *bind.Binder) *rh.ListAppAssessmentsInput {
				return &rh.ListAppAssessmentsInput{
					AppArn:           b.String("AppArn"),
					AssessmentName:   b.String("AssessmentName"),
					AssessmentStatus: bind.EnumsOf[rhtypes.AssessmentStatus](b, "AssessmentStatus"),
					ComplianceStatus: bind.EnumOf[rhtypes.ComplianceStatus](b, "ComplianceStatus"),
					Invoker:          bind.EnumOf[rhtypes.AssessmentInvoker](b, "Invoker"),
					ReverseOrder:     b.Bool("ReverseOrder"),
					MaxResults:       b.Int32("MaxResults"),
				}
			},
			Call: rhCall(awsx.ResilienceHubAPI.ListAppAssessments),
			Cursor: pager(
				func(in *rh.ListAppAssessmentsInput) **string { return &in.NextToken },
				func(out *rh.ListAppAssessmentsOutput) *string { return out.NextToken },
			),
		},

		&Operation[rh.ListAppComponentCompliancesInput, rh.ListAppComponentCompliancesOutput]{
			Name:          "ListAppComponentCompliances",
			Usage:         "list the compliance of each component in an assessment",
			Params:        []bind.Param{assessmentParam, rhMaxParam},
			DefaultSelect: "ComponentCompliances",
			DefaultAttrs:  "AppComponentName,Status,ResiliencyScore.Score:Score",
			Build: func(b *bind.Binder) *rh.ListAppComponentCompliancesInput {
				return &rh.ListAppComponentCompliancesInput{
					AssessmentArn: b.String("AssessmentArn"),
					MaxResults:    b.Int32("MaxResults"),
				}
			},
			Call: rhCall(awsx.ResilienceHubAPI.ListAppComponentCompliances),
			Cursor: pager(
				func(in *rh.ListAppComponentCompliancesInput) **string { return &in.NextToken },
				func(out *rh.ListAppComponentCompliancesOutput) *string { return out.NextToken },
			),
		},

		&Operation[rh.ListAppComponentRecommendationsInput, rh.ListAppComponentRecommendationsOutput]{
			Name:          "ListAppComponentRecommendations",
			Usage:         "list the configuration recommendations of an assessment",
			Params:        []bind.Param{assessmentParam, rhMaxParam},
			DefaultSelect: "ComponentRecommendations",
			DefaultAttrs:  "AppComponentName,RecommendationStatus",
			Build: func(b *bind.Binder) *rh.ListAppComponentRecommendationsInput {
				return &rh.ListAppComponentRecommendationsInput{
					AssessmentArn: b.String("AssessmentArn"),
					MaxResults:    b.Int32("MaxResults"),
				}
			},
			Call: rhCall(awsx.ResilienceHubAPI.ListAppComponentRecommendations),
			Cursor: pager(
				func(in *rh.ListAppComponentRecommendationsInput) **string { return &in.NextToken },
				func(out *rh.ListAppComponentRecommendationsOutput) *string { return out.NextToken },
			),
		},

		&Operation[rh.ListAlarmRecommendationsInput, rh.ListAlarmRecommendationsOutput]{
			Name:          "ListAlarmRecommendations",
			Usage:         "list the alarm recommendations of an assessment",
			Params:        []bind.Param{assessmentParam, rhMaxParam},
			DefaultSelect: "AlarmRecommendations",
			DefaultAttrs:  "Name,Type,RecommendationId",
			Build: func(b *bind.Binder) *rh.ListAlarmRecommendationsInput {
				return &rh.ListAlarmRecommendationsInput{
					AssessmentArn: b.String("AssessmentArn"),
					MaxResults:    b.Int32("MaxResults"),
				}
			},
			Call: rhCall(awsx.ResilienceHubAPI.ListAlarmRecommendations),
			Cursor: pager(
				func(in *rh.ListAlarmRecommendationsInput) **string { return &in.NextToken },
				func(out *rh.ListAlarmRecommendationsOutput) *string { return out.NextToken },
			),
		},

		&Operation[rh.ListSopRecommendationsInput, rh.ListSopRecommendationsOutput]{
			Name:          "ListSopRecommendations",
			Usage:         "list the standard operating procedure recommendations of an assessment",
			Params:        []bind.Param{assessmentParam, rhMaxParam},
			DefaultSelect: "SopRecommendations",
			DefaultAttrs:  "Name,ServiceType,RecommendationId",
			Build: func(b *bind.Binder) *rh.ListSopRecommendationsInput {
				return &rh.ListSopRecommendationsInput{
					AssessmentArn: b.String("AssessmentArn"),
					MaxResults:    b.Int32("MaxResults"),
				}
			},
			Call: rhCall(awsx.ResilienceHubAPI.ListSopRecommendations),
			Cursor: pager(
				func(in *rh.ListSopRecommendationsInput) **string { return &in.NextToken },
				func(out *rh.ListSopRecommendationsOutput) *string { return out.NextToken },
			),
		},

		&Operation[rh.ListTestRecommendationsInput, rh.ListTestRecommendationsOutput]{
			Name:          "ListTestRecommendations",
			Usage:         "list the test recommendations of an assessment",
			Params:        []bind.Param{assessmentParam, rhMaxParam},
			DefaultSelect: "TestRecommendations",
			DefaultAttrs:  "Name,Type,Risk,RecommendationId",
			Build: func(b *bind.Binder) *rh.ListTestRecommendationsInput {
				return &rh.ListTestRecommendationsInput{
					AssessmentArn: b.String("AssessmentArn"),
					MaxResults:    b.Int32("MaxResults"),
				}
			},
			Call: rhCall(awsx.ResilienceHubAPI.ListTestRecommendations),
			Cursor: pager(
				func(in *rh.ListTestRecommendationsInput) **string { return &in.NextToken },
				func(out *rh.ListTestRecommendationsOutput) *string { return out.NextToken },
			),
		},
	}
}

func templateOperations() []commander {
	return []commander{
		&Operation[rh.CreateRecommendationTemplateInput, rh.CreateRecommendationTemplateOutput]{
			Name:  "CreateRecommendationTemplate",
			Usage: "render assessment recommendations into templates stored in S3",
			Params: []bind.Param{
				assessmentParam,
				{Name: "Name", Required: true},
				{Name: "BucketName", Usage: "destination bucket, defaults to a Resilience Hub managed one"},
				{Name: "Format", Kind: bind.Enum, Values: bind.Values(rhtypes.TemplateFormat("").Values())},
				{Name: "RecommendationIds", Kind: bind.StringList},
				{Name: "RecommendationTypes", Kind: bind.StringList, Usage: "types: " + joinValues(rhtypes.RenderRecommendationType("").Values())},
				clientTokenParam,
				rhTagsParam,
			},
			DefaultSelect: "RecommendationTemplate",
			DefaultAttrs:  templateAttrs,
			Build: func(b *bind.Binder) *rh.CreateRecommendationTemplateInput {
				return &rh.CreateRecommendationTemplateInput{
					AssessmentArn:       b.String("AssessmentArn"),
					Name:                b.String("Name"),
					BucketName:          b.String("BucketName"),
					Format:              bind.EnumOf[rhtypes.TemplateFormat](b, "Format"),
					RecommendationIds:   b.Strings("RecommendationIds"),
					RecommendationTypes: bind.EnumsOf[rhtypes.RenderRecommendationType](b, "RecommendationTypes"),
					ClientToken:         b.String("ClientToken"),
					Tags:                b.Map("Tags"),
				}
			},
			Call: rhCall(awsx.ResilienceHubAPI.CreateRecommendationTemplate),
		},

		&Operation[rh.DeleteRecommendationTemplateInput, rh.DeleteRecommendationTemplateOutput]{
			Name:  "DeleteRecommendationTemplate",
			Usage: "delete a recommendation template",
			Params: []bind.Param{
				{Name: "RecommendationTemplateArn", Required: true},
				clientTokenParam,
			},
			DefaultSelect: "RecommendationTemplateArn",
			Destructive:   true,
			Build: func(b *bind.Binder) *rh.DeleteRecommendationTemplateInput {
				return &rh.DeleteRecommendationTemplateInput{
					RecommendationTemplateArn: b.String("RecommendationTemplateArn"),
					ClientToken:               b.String("ClientToken"),
				}
			},
			Call: rhCall(awsx.ResilienceHubAPI.DeleteRecommendationTemplate),
		},

		&Operation[rh.ListRecommendationTemplatesInput, rh.ListRecommendationTemplatesOutput]{
			Name:  "ListRecommendationTemplates",
			Usage: "list recommendation templates",
			Params: []bind.Param{
				{Name: "AssessmentArn"},
				{Name: "Name"},
				{Name: "RecommendationTemplateArn"},
				{Name: "Status", Kind: bind.StringList, Usage: "statuses: " + joinValues(rhtypes.RecommendationTemplateStatus("").Values())},
				{Name: "ReverseOrder", Kind: bind.Bool},
				rhMaxParam,
			},
			DefaultSelect: "RecommendationTemplates",
			DefaultAttrs:  templateAttrs,
			Build: func(b *bind.Binder) *rh.ListRecommendationTemplatesInput {
				return &rh.ListRecommendationTemplatesInput{
					AssessmentArn:             b.String("AssessmentArn"),
					Name:                      b.String("Name"),
					RecommendationTemplateArn: b.String("RecommendationTemplateArn"),
					Status:                    bind.EnumsOf[rhtypes.RecommendationTemplateStatus](b, "Status"),
					ReverseOrder:              b.Bool("ReverseOrder"),
					MaxResults:                b.Int32("MaxResults"),
				}
			},
			Call: rhCall(awsx.ResilienceHubAPI.ListRecommendationTemplates),
			Cursor: pager(
				func(in *rh.ListRecommendationTemplatesInput) **string { return &in.NextToken },
				func(out *rh.ListRecommendationTemplatesOutput) *string { return out.NextToken },
			),
		},
	}
}

func joinValues[T ~string](vs []T) string {
	var s string
	for i, v := range vs {
		if i > 0 {
			s += "|"
		}
		s += string(v)
	}
	return s
}
