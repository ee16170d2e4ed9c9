// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	rh "github.com/aws/aws-sdk-go-v2/service/resiliencehub"
	rhtypes "github.com/aws/aws-sdk-go-v2/service/resiliencehub/types"

	awsx "github.com/tfctl/awsops/internal/aws"
	"github.com/tfctl/awsops/internal/bind"
)

const resilienceHubService = "resiliencehub"

// rhCall adapts a ResilienceHubAPI method expression to Operation.Call.
func rhCall[In, Out any](
	method func(awsx.ResilienceHubAPI, context.Context, *In, ...func(*rh.Options)) (*Out, error),
) func(context.Context, *awsx.Clients, *In) (*Out, error) {
	return func(ctx context.Context, c *awsx.Clients, in *In) (*Out, error) {
		return method(c.ResilienceHub, ctx, in)
	}
}

var (
	appARNParam      = bind.Param{Name: "AppArn", Required: true}
	appVersionParam  = bind.Param{Name: "AppVersion", Required: true, Usage: "app version, e.g. draft or release"}
	rhMaxParam       = bind.Param{Name: "MaxResults", Kind: bind.Int, Usage: "page size"}
	clientTokenParam = bind.Param{Name: "ClientToken", Usage: "idempotency token"}
	rhTagsParam      = bind.Param{Name: "Tags", Kind: bind.StringMap}
	assessmentParam  = bind.Param{Name: "AssessmentArn", Required: true}

	scheduleValues = bind.Values(rhtypes.AppAssessmentScheduleType("").Values())
)

func resilienceHubOperations() []commander {
	ops := append(appOperations(), appVersionOperations()...)
	ops = append(ops, policyOperations()...)
	ops = append(ops, assessmentOperations()...)
	ops = append(ops, templateOperations()...)
	return append(ops, tagOperations()...)
}

func appOperations() []commander {
	return []commander{
		&Operation[rh.CreateAppInput, rh.CreateAppOutput]{
			Name:  "CreateApp",
			Usage: "create an application",
			Params: []bind.Param{
				{Name: "Name", Required: true},
				{Name: "Description"},
				{Name: "PolicyArn"},
				{Name: "AssessmentSchedule", Kind: bind.Enum, Values: scheduleValues},
				{Name: "EventSubscriptions", Kind: bind.JSON, Usage: `e.g. [{"Name":"drift","EventType":"DriftDetected","SnsTopicArn":"arn:..."}]`},
				{Name: "PermissionModel", Kind: bind.JSON, Usage: `e.g. {"Type":"RoleBased","InvokerRoleName":"..."}`},
				clientTokenParam,
				rhTagsParam,
			},
			DefaultSelect: "App",
			DefaultAttrs:  appAttrs,
			Build: func(b *bind.Binder) *rh.CreateAppInput {
				in := &rh.CreateAppInput{
					Name:               b.String("Name"),
					Description:        b.String("Description"),
					PolicyArn:          b.String("PolicyArn"),
					AssessmentSchedule: bind.EnumOf[rhtypes.AppAssessmentScheduleType](b, "AssessmentSchedule"),
					ClientToken:        b.String("ClientToken"),
					Tags:               b.Map("Tags"),
				}
				b.JSON("EventSubscriptions", &in.EventSubscriptions)
				var pm rhtypes.PermissionModel
				if b.JSON("PermissionModel", &pm) {
					in.PermissionModel = &pm
				}
				return in
			},
			Call: rhCall(awsx.ResilienceHubAPI.CreateApp),
		},

		&Operation[rh.DescribeAppInput, rh.DescribeAppOutput]{
			Name:          "DescribeApp",
			Usage:         "describe an application",
			Params:        []bind.Param{appARNParam},
			DefaultSelect: "App",
			DefaultAttrs:  appAttrs,
			Build: func(b *bind.Binder) *rh.DescribeAppInput {
				return &rh.DescribeAppInput{AppArn: b.String("AppArn")}
			},
			Call: rhCall(awsx.ResilienceHubAPI.DescribeApp),
		},

		&Operation[rh.UpdateAppInput, rh.UpdateAppOutput]{
			Name:  "UpdateApp",
			Usage: "update an application",
			Params: []bind.Param{
				appARNParam,
				{Name: "Description"},
				{Name: "PolicyArn"},
				{Name: "ClearResiliencyPolicyArn", Kind: bind.Bool},
				{Name: "AssessmentSchedule", Kind: bind.Enum, Values: scheduleValues},
				{Name: "EventSubscriptions", Kind: bind.JSON},
				{Name: "PermissionModel", Kind: bind.JSON},
			},
			DefaultSelect: "App",
			DefaultAttrs:  appAttrs,
			Build: func(b *bind.Binder) *rh.UpdateAppInput {
				in := &rh.UpdateAppInput{
					AppArn:                   b.String("AppArn"),
					Description:              b.String("Description"),
					PolicyArn:                b.String("PolicyArn"),
					ClearResiliencyPolicyArn: b.Bool("ClearResiliencyPolicyArn"),
					AssessmentSchedule:       bind.EnumOf[rhtypes.AppAssessmentScheduleType](b, "AssessmentSchedule"),
				}
				b.JSON("EventSubscriptions", &in.EventSubscriptions)
				var pm rhtypes.PermissionModel
				if b.JSON("PermissionModel", &pm) {
					in.PermissionModel = &pm
				}
				return in
			},
			Call: rhCall(awsx.ResilienceHubAPI.UpdateApp),
		},

		&Operation[rh.DeleteAppInput, rh.DeleteAppOutput]{
			Name:  "DeleteApp",
			Usage: "delete an application",
			Params: []bind.Param{
				appARNParam,
				{Name: "ForceDelete", Kind: bind.Bool, Usage: "delete even when assessments exist"},
				clientTokenParam,
			},
			DefaultSelect: "AppArn",
			Destructive:   true,
			Build: func(b *bind.Binder) *rh.DeleteAppInput {
				return &rh.DeleteAppInput{
					AppArn:      b.String("AppArn"),
					ForceDelete: b.Bool("ForceDelete"),
					ClientToken: b.String("ClientToken"),
				}
			},
			Call: rhCall(awsx.ResilienceHubAPI.DeleteApp),
		},

		&Operation[rh.ListAppsInput, rh.ListAppsOutput]{
			Name:  "ListApps",
			Usage: "list applications",
			Params: []bind.Param{
				{Name: "AppArn"},
				{Name: "Name"},
				{Name: "FromLastAssessmentTime", Kind: bind.Time},
				{Name: "ToLastAssessmentTime", Kind: bind.Time},
				{Name: "ReverseOrder", Kind: bind.Bool},
				rhMaxParam,
			},
			DefaultSelect: "AppSummaries",
			DefaultAttrs:  appAttrs,
			Build: func(b *bind.Binder) *rh.ListAppsInput {
				return &rh.ListAppsInput{
					AppArn:                 b.String("AppArn"),
					Name:                   b.String("Name"),
					FromLastAssessmentTime: b.Time("FromLastAssessmentTime"),
					ToLastAssessmentTime:   b.Time("ToLastAssessmentTime"),
					ReverseOrder:           b.Bool("ReverseOrder"),
					MaxResults:             b.Int32("MaxResults"),
				}
			},
			Call: rhCall(awsx.ResilienceHubAPI.ListApps),
			Cursor: pager(
				func(in *rh.ListAppsInput) **string { return &in.NextToken },
				func(out *rh.ListAppsOutput) *string { return out.NextToken },
			),
		},
	}
}

const appAttrs = "Name,Status,ComplianceStatus,ResiliencyScore,CreationTime,AppArn"

func appVersionOperations() []commander {
	return []commander{
		&Operation[rh.ListAppVersionsInput, rh.ListAppVersionsOutput]{
			Name:  "ListAppVersions",
			Usage: "list the versions of an application",
			Params: []bind.Param{
				appARNParam,
				{Name: "StartTime", Kind: bind.Time},
				{Name: "EndTime", Kind: bind.Time},
				rhMaxParam,
			},
			DefaultSelect: "AppVersions",
			DefaultAttrs:  "AppVersion,VersionName,Identifier,CreationTime",
			Build: func(b *bind.Binder) *rh.ListAppVersionsInput {
				return &rh.ListAppVersionsInput{
					AppArn:     b.String("AppArn"),
					StartTime:  b.Time("StartTime"),
					EndTime:    b.Time("EndTime"),
					MaxResults: b.Int32("MaxResults"),
				}
			},
			Call: rhCall(awsx.ResilienceHubAPI.ListAppVersions),
			Cursor: pager(
				func(in *rh.ListAppVersionsInput) **string { return &in.NextToken },
				func(out *rh.ListAppVersionsOutput) *string { return out.NextToken },
			),
		},

		&Operation[rh.PublishAppVersionInput, rh.PublishAppVersionOutput]{
			Name:          "PublishAppVersion",
			Usage:         "publish the draft version of an application",
			Params:        []bind.Param{appARNParam},
			DefaultSelect: "*",
			Build: func(b *bind.Binder) *rh.PublishAppVersionInput {
				return &rh.PublishAppVersionInput{AppArn: b.String("AppArn")}
			},
			Call: rhCall(awsx.ResilienceHubAPI.PublishAppVersion),
		},

		&Operation[rh.DescribeAppVersionInput, rh.DescribeAppVersionOutput]{
			Name:          "DescribeAppVersion",
			Usage:         "describe an application version",
			Params:        []bind.Param{appARNParam, appVersionParam},
			DefaultSelect: "*",
			Build: func(b *bind.Binder) *rh.DescribeAppVersionInput {
				return &rh.DescribeAppVersionInput{
					AppArn:     b.String("AppArn"),
					AppVersion: b.String("AppVersion"),
				}
			},
			Call: rhCall(awsx.ResilienceHubAPI.DescribeAppVersion),
		},

		&Operation[rh.UpdateAppVersionInput, rh.UpdateAppVersionOutput]{
			Name:  "UpdateAppVersion",
			Usage: "update the additional info of the draft version",
			Params: []bind.Param{
				appARNParam,
				{Name: "AdditionalInfo", Kind: bind.JSON, Usage: `e.g. {"failover-regions":["{\"region\":\"us-east-1\"}"]}`},
			},
			DefaultSelect: "*",
			Build: func(b *bind.Binder) *rh.UpdateAppVersionInput {
				in := &rh.UpdateAppVersionInput{AppArn: b.String("AppArn")}
				b.JSON("AdditionalInfo", &in.AdditionalInfo)
				return in
			},
			Call: rhCall(awsx.ResilienceHubAPI.UpdateAppVersion),
		},

		&Operation[rh.DescribeAppVersionTemplateInput, rh.DescribeAppVersionTemplateOutput]{
			Name:          "DescribeAppVersionTemplate",
			Usage:         "get the template of an application version",
			Params:        []bind.Param{appARNParam, appVersionParam},
			DefaultSelect: "AppTemplateBody",
			Build: func(b *bind.Binder) *rh.DescribeAppVersionTemplateInput {
				return &rh.DescribeAppVersionTemplateInput{
					AppArn:     b.String("AppArn"),
					AppVersion: b.String("AppVersion"),
				}
			},
			Call: rhCall(awsx.ResilienceHubAPI.DescribeAppVersionTemplate),
		},

		&Operation[rh.PutDraftAppVersionTemplateInput, rh.PutDraftAppVersionTemplateOutput]{
			Name:  "PutDraftAppVersionTemplate",
			Usage: "replace the template of the draft version",
			Params: []bind.Param{
				appARNParam,
				{Name: "AppTemplateBody", Kind: bind.Blob, Required: true, Usage: "template JSON"},
			},
			DefaultSelect: "*",
			Build: func(b *bind.Binder) *rh.PutDraftAppVersionTemplateInput {
				in := &rh.PutDraftAppVersionTemplateInput{AppArn: b.String("AppArn")}
				if body := b.Blob("AppTemplateBody"); body != nil {
					s := string(body)
					in.AppTemplateBody = &s
				}
				return in
			},
			Call: rhCall(awsx.ResilienceHubAPI.PutDraftAppVersionTemplate),
		},

		&Operation[rh.ListAppVersionAppComponentsInput, rh.ListAppVersionAppComponentsOutput]{
			Name:          "ListAppVersionAppComponents",
			Usage:         "list the components of an application version",
			Params:        []bind.Param{appARNParam, appVersionParam, rhMaxParam},
			DefaultSelect: "AppComponents",
			DefaultAttrs:  "Name,Type,Id",
			Build: func(b *bind.Binder) *rh.ListAppVersionAppComponentsInput {
				return &rh.ListAppVersionAppComponentsInput{
					AppArn:     b.String("AppArn"),
					AppVersion: b.String("AppVersion"),
					MaxResults: b.Int32("MaxResults"),
				}
			},
			Call: rhCall(awsx.ResilienceHubAPI.ListAppVersionAppComponents),
			Cursor: pager(
				func(in *rh.ListAppVersionAppComponentsInput) **string { return &in.NextToken },
				func(out *rh.ListAppVersionAppComponentsOutput) *string { return out.NextToken },
			),
		},

		&Operation[rh.ListAppVersionResourcesInput, rh.ListAppVersionResourcesOutput]{
			Name:  "ListAppVersionResources",
			Usage: "list the physical resources of an application version",
			Params: []bind.Param{
				appARNParam,
				appVersionParam,
				{Name: "ResolutionId"},
				rhMaxParam,
			},
			DefaultSelect: "PhysicalResources",
			DefaultAttrs:  "ResourceName,ResourceType,PhysicalResourceId.Identifier:PhysicalResourceId,Excluded",
			Build: func(b *bind.Binder) *rh.ListAppVersionResourcesInput {
				return &rh.ListAppVersionResourcesInput{
					AppArn:       b.String("AppArn"),
					AppVersion:   b.String("AppVersion"),
					ResolutionId: b.String("ResolutionId"),
					MaxResults:   b.Int32("MaxResults"),
				}
			},
			Call: rhCall(awsx.ResilienceHubAPI.ListAppVersionResources),
			Cursor: pager(
				func(in *rh.ListAppVersionResourcesInput) **string { return &in.NextToken },
				func(out *rh.ListAppVersionResourcesOutput) *string { return out.NextToken },
			),
		},

		&Operation[rh.ListAppVersionResourceMappingsInput, rh.ListAppVersionResourceMappingsOutput]{
			Name:          "ListAppVersionResourceMappings",
			Usage:         "list how resources map into an application version",
			Params:        []bind.Param{appARNParam, appVersionParam, rhMaxParam},
			DefaultSelect: "ResourceMappings",
			DefaultAttrs:  "ResourceName,MappingType,PhysicalResourceId.Identifier:PhysicalResourceId",
			Build: func(b *bind.Binder) *rh.ListAppVersionResourceMappingsInput {
				return &rh.ListAppVersionResourceMappingsInput{
					AppArn:     b.String("AppArn"),
					AppVersion: b.String("AppVersion"),
					MaxResults: b.Int32("MaxResults"),
				}
			},
			Call: rhCall(awsx.ResilienceHubAPI.ListAppVersionResourceMappings),
			Cursor: pager(
				func(in *rh.ListAppVersionResourceMappingsInput) **string { return &in.NextToken },
				func(out *rh.ListAppVersionResourceMappingsOutput) *string { return out.NextToken },
			),
		},

		&Operation[rh.ListUnsupportedAppVersionResourcesInput, rh.ListUnsupportedAppVersionResourcesOutput]{
			Name:  "ListUnsupportedAppVersionResources",
			Usage: "list resources Resilience Hub cannot assess",
			Params: []bind.Param{
				appARNParam,
				appVersionParam,
				{Name: "ResolutionId"},
				rhMaxParam,
			},
			DefaultSelect: "UnsupportedResources",
			DefaultAttrs:  "ResourceType,LogicalResourceId.Identifier:LogicalResourceId,UnsupportedResourceStatus:Status",
			Build: func(b *bind.Binder) *rh.ListUnsupportedAppVersionResourcesInput {
				return &rh.ListUnsupportedAppVersionResourcesInput{
					AppArn:       b.String("AppArn"),
					AppVersion:   b.String("AppVersion"),
					ResolutionId: b.String("ResolutionId"),
					MaxResults:   b.Int32("MaxResults"),
				}
			},
			Call: rhCall(awsx.ResilienceHubAPI.ListUnsupportedAppVersionResources),
			Cursor: pager(
				func(in *rh.ListUnsupportedAppVersionResourcesInput) **string { return &in.NextToken },
				func(out *rh.ListUnsupportedAppVersionResourcesOutput) *string { return out.NextToken },
			),
		},

		&Operation[rh.ListAppInputSourcesInput, rh.ListAppInputSourcesOutput]{
			Name:          "ListAppInputSources",
			Usage:         "list the input sources of an application version",
			Params:        []bind.Param{appARNParam, appVersionParam, rhMaxParam},
			DefaultSelect: "AppInputSources",
			DefaultAttrs:  "ImportType,SourceName,ResourceCount,SourceArn",
			Build: func(b *bind.Binder) *rh.ListAppInputSourcesInput {
				return &rh.ListAppInputSourcesInput{
					AppArn:     b.String("AppArn"),
					AppVersion: b.String("AppVersion"),
					MaxResults: b.Int32("MaxResults"),
				}
			},
			Call: rhCall(awsx.ResilienceHubAPI.ListAppInputSources),
			Cursor: pager(
				func(in *rh.ListAppInputSourcesInput) **string { return &in.NextToken },
				func(out *rh.ListAppInputSourcesOutput) *string { return out.NextToken },
			),
		},

		&Operation[rh.ResolveAppVersionResourcesInput, rh.ResolveAppVersionResourcesOutput]{
			Name:          "ResolveAppVersionResources",
			Usage:         "start resolving the resources of an application version",
			Params:        []bind.Param{appARNParam, appVersionParam},
			DefaultSelect: "*",
			Build: func(b *bind.Binder) *rh.ResolveAppVersionResourcesInput {
				return &rh.ResolveAppVersionResourcesInput{
					AppArn:     b.String("AppArn"),
					AppVersion: b.String("AppVersion"),
				}
			},
			Call: rhCall(awsx.ResilienceHubAPI.ResolveAppVersionResources),
		},

		&Operation[rh.DescribeAppVersionResourcesResolutionStatusInput, rh.DescribeAppVersionResourcesResolutionStatusOutput]{
			Name:  "DescribeAppVersionResourcesResolutionStatus",
			Usage: "get the status of a resource resolution",
			Params: []bind.Param{
				appARNParam,
				appVersionParam,
				{Name: "ResolutionId"},
			},
			DefaultSelect: "*",
			Build: func(b *bind.Binder) *rh.DescribeAppVersionResourcesResolutionStatusInput {
				return &rh.DescribeAppVersionResourcesResolutionStatusInput{
					AppArn:       b.String("AppArn"),
					AppVersion:   b.String("AppVersion"),
					ResolutionId: b.String("ResolutionId"),
				}
			},
			Call: rhCall(awsx.ResilienceHubAPI.DescribeAppVersionResourcesResolutionStatus),
		},

		&Operation[rh.ImportResourcesToDraftAppVersionInput, rh.ImportResourcesToDraftAppVersionOutput]{
			Name:  "ImportResourcesToDraftAppVersion",
			Usage: "import resources into the draft version",
			Params: []bind.Param{
				appARNParam,
				{Name: "SourceArns", Kind: bind.StringList, Usage: "CloudFormation stack or resource group ARNs"},
				{Name: "TerraformSources", Kind: bind.JSON, Usage: `e.g. [{"S3StateFileUrl":"s3://bucket/key"}]`},
				{Name: "EksSources", Kind: bind.JSON, Usage: `e.g. [{"EksClusterArn":"arn:...","Namespaces":["default"]}]`},
				{Name: "ImportStrategy", Kind: bind.Enum, Values: bind.Values(rhtypes.ResourceImportStrategyType("").Values())},
			},
			DefaultSelect: "*",
			Build: func(b *bind.Binder) *rh.ImportResourcesToDraftAppVersionInput {
				in := &rh.ImportResourcesToDraftAppVersionInput{
					AppArn:         b.String("AppArn"),
					SourceArns:     b.Strings("SourceArns"),
					ImportStrategy: bind.EnumOf[rhtypes.ResourceImportStrategyType](b, "ImportStrategy"),
				}
				b.JSON("TerraformSources", &in.TerraformSources)
				b.JSON("EksSources", &in.EksSources)
				return in
			},
			Call:    rhCall(awsx.ResilienceHubAPI.ImportResourcesToDraftAppVersion),
			Extra:   terraformFlags(),
			Prepare: addTerraformSource,
		},

		&Operation[rh.DescribeDraftAppVersionResourcesImportStatusInput, rh.DescribeDraftAppVersionResourcesImportStatusOutput]{
			Name:          "DescribeDraftAppVersionResourcesImportStatus",
			Usage:         "get the status of a draft version import",
			Params:        []bind.Param{appARNParam},
			DefaultSelect: "*",
			Build: func(b *bind.Binder) *rh.DescribeDraftAppVersionResourcesImportStatusInput {
				return &rh.DescribeDraftAppVersionResourcesImportStatusInput{AppArn: b.String("AppArn")}
			},
			Call: rhCall(awsx.ResilienceHubAPI.DescribeDraftAppVersionResourcesImportStatus),
		},

		&Operation[rh.AddDraftAppVersionResourceMappingsInput, rh.AddDraftAppVersionResourceMappingsOutput]{
			Name:  "AddDraftAppVersionResourceMappings",
			Usage: "add resource mappings to the draft version",
			Params: []bind.Param{
				appARNParam,
				{Name: "ResourceMappings", Kind: bind.JSON, Required: true, Usage: `e.g. [{"MappingType":"Resource","PhysicalResourceId":{"Identifier":"...","Type":"Arn"},"ResourceName":"db"}]`},
			},
			DefaultSelect: "ResourceMappings",
			DefaultAttrs:  "ResourceName,MappingType,PhysicalResourceId.Identifier:PhysicalResourceId",
			Build: func(b *bind.Binder) *rh.AddDraftAppVersionResourceMappingsInput {
				in := &rh.AddDraftAppVersionResourceMappingsInput{AppArn: b.String("AppArn")}
				b.JSON("ResourceMappings", &in.ResourceMappings)
				return in
			},
			Call: rhCall(awsx.ResilienceHubAPI.AddDraftAppVersionResourceMappings),
		},

		&Operation[rh.RemoveDraftAppVersionResourceMappingsInput, rh.RemoveDraftAppVersionResourceMappingsOutput]{
			Name:  "RemoveDraftAppVersionResourceMappings",
			Usage: "remove resource mappings from the draft version",
			Params: []bind.Param{
				appARNParam,
				{Name: "AppRegistryAppNames", Kind: bind.StringList},
				{Name: "EksSourceNames", Kind: bind.StringList},
				{Name: "LogicalStackNames", Kind: bind.StringList},
				{Name: "ResourceGroupNames", Kind: bind.StringList},
				{Name: "ResourceNames", Kind: bind.StringList},
				{Name: "TerraformSourceNames", Kind: bind.StringList},
			},
			DefaultSelect: "*",
			Destructive:   true,
			Build: func(b *bind.Binder) *rh.RemoveDraftAppVersionResourceMappingsInput {
				return &rh.RemoveDraftAppVersionResourceMappingsInput{
					AppArn:               b.String("AppArn"),
					AppRegistryAppNames:  b.Strings("AppRegistryAppNames"),
					EksSourceNames:       b.Strings("EksSourceNames"),
					LogicalStackNames:    b.Strings("LogicalStackNames"),
					ResourceGroupNames:   b.Strings("ResourceGroupNames"),
					ResourceNames:        b.Strings("ResourceNames"),
					TerraformSourceNames: b.Strings("TerraformSourceNames"),
				}
			},
			Call: rhCall(awsx.ResilienceHubAPI.RemoveDraftAppVersionResourceMappings),
		},
	}
}

// tagOperations are shared by every Resilience Hub resource type.
func tagOperations() []commander {
	return []commander{
		&Operation[rh.ListTagsForResourceInput, rh.ListTagsForResourceOutput]{
			Name:          "ListTagsForResource",
			Usage:         "list the tags of a resource",
			Params:        []bind.Param{{Name: "ResourceArn", Required: true}},
			DefaultSelect: "Tags",
			Build: func(b *bind.Binder) *rh.ListTagsForResourceInput {
				return &rh.ListTagsForResourceInput{ResourceArn: b.String("ResourceArn")}
			},
			Call: rhCall(awsx.ResilienceHubAPI.ListTagsForResource),
		},

		&Operation[rh.TagResourceInput, rh.TagResourceOutput]{
			Name:  "TagResource",
			Usage: "tag a resource",
			Params: []bind.Param{
				{Name: "ResourceArn", Required: true},
				{Name: "Tags", Kind: bind.StringMap, Required: true},
			},
			DefaultSelect: "",
			Build: func(b *bind.Binder) *rh.TagResourceInput {
				return &rh.TagResourceInput{
					ResourceArn: b.String("ResourceArn"),
					Tags:        b.Map("Tags"),
				}
			},
			Call: rhCall(awsx.ResilienceHubAPI.TagResource),
		},

		&Operation[rh.UntagResourceInput, rh.UntagResourceOutput]{
			Name:  "UntagResource",
			Usage: "remove tags from a resource",
			Params: []bind.Param{
				{Name: "ResourceArn", Required: true},
				{Name: "TagKeys", Kind: bind.StringList, Required: true},
			},
			DefaultSelect: "",
			Destructive:   true,
			Build: func(b *bind.Binder) *rh.UntagResourceInput {
				return &rh.UntagResourceInput{
					ResourceArn: b.String("ResourceArn"),
					TagKeys:     b.Strings("TagKeys"),
				}
			},
			Call: rhCall(awsx.ResilienceHubAPI.UntagResource),
		},
	}
}
