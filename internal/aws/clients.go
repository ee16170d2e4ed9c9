// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package aws

import (
	"context"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/codeguruprofiler"
	"github.com/aws/aws-sdk-go-v2/service/resiliencehub"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/tfctl/awsops/internal/log"
)

// ProfilerAPI is the subset of the CodeGuru Profiler client used by awsops.
type ProfilerAPI interface {
	AddNotificationChannels(ctx context.Context, params *codeguruprofiler.AddNotificationChannelsInput, optFns ...func(*codeguruprofiler.Options)) (*codeguruprofiler.AddNotificationChannelsOutput, error)
	BatchGetFrameMetricData(ctx context.Context, params *codeguruprofiler.BatchGetFrameMetricDataInput, optFns ...func(*codeguruprofiler.Options)) (*codeguruprofiler.BatchGetFrameMetricDataOutput, error)
	ConfigureAgent(ctx context.Context, params *codeguruprofiler.ConfigureAgentInput, optFns ...func(*codeguruprofiler.Options)) (*codeguruprofiler.ConfigureAgentOutput, error)
	CreateProfilingGroup(ctx context.Context, params *codeguruprofiler.CreateProfilingGroupInput, optFns ...func(*codeguruprofiler.Options)) (*codeguruprofiler.CreateProfilingGroupOutput, error)
	DeleteProfilingGroup(ctx context.Context, params *codeguruprofiler.DeleteProfilingGroupInput, optFns ...func(*codeguruprofiler.Options)) (*codeguruprofiler.DeleteProfilingGroupOutput, error)
	DescribeProfilingGroup(ctx context.Context, params *codeguruprofiler.DescribeProfilingGroupInput, optFns ...func(*codeguruprofiler.Options)) (*codeguruprofiler.DescribeProfilingGroupOutput, error)
	GetFindingsReportAccountSummary(ctx context.Context, params *codeguruprofiler.GetFindingsReportAccountSummaryInput, optFns ...func(*codeguruprofiler.Options)) (*codeguruprofiler.GetFindingsReportAccountSummaryOutput, error)
	GetNotificationConfiguration(ctx context.Context, params *codeguruprofiler.GetNotificationConfigurationInput, optFns ...func(*codeguruprofiler.Options)) (*codeguruprofiler.GetNotificationConfigurationOutput, error)
	GetPolicy(ctx context.Context, params *codeguruprofiler.GetPolicyInput, optFns ...func(*codeguruprofiler.Options)) (*codeguruprofiler.GetPolicyOutput, error)
	GetProfile(ctx context.Context, params *codeguruprofiler.GetProfileInput, optFns ...func(*codeguruprofiler.Options)) (*codeguruprofiler.GetProfileOutput, error)
	GetRecommendations(ctx context.Context, params *codeguruprofiler.GetRecommendationsInput, optFns ...func(*codeguruprofiler.Options)) (*codeguruprofiler.GetRecommendationsOutput, error)
	ListFindingsReports(ctx context.Context, params *codeguruprofiler.ListFindingsReportsInput, optFns ...func(*codeguruprofiler.Options)) (*codeguruprofiler.ListFindingsReportsOutput, error)
	ListProfileTimes(ctx context.Context, params *codeguruprofiler.ListProfileTimesInput, optFns ...func(*codeguruprofiler.Options)) (*codeguruprofiler.ListProfileTimesOutput, error)
	ListProfilingGroups(ctx context.Context, params *codeguruprofiler.ListProfilingGroupsInput, optFns ...func(*codeguruprofiler.Options)) (*codeguruprofiler.ListProfilingGroupsOutput, error)
	ListTagsForResource(ctx context.Context, params *codeguruprofiler.ListTagsForResourceInput, optFns ...func(*codeguruprofiler.Options)) (*codeguruprofiler.ListTagsForResourceOutput, error)
	PostAgentProfile(ctx context.Context, params *codeguruprofiler.PostAgentProfileInput, optFns ...func(*codeguruprofiler.Options)) (*codeguruprofiler.PostAgentProfileOutput, error)
	PutPermission(ctx context.Context, params *codeguruprofiler.PutPermissionInput, optFns ...func(*codeguruprofiler.Options)) (*codeguruprofiler.PutPermissionOutput, error)
	RemoveNotificationChannel(ctx context.Context, params *codeguruprofiler.RemoveNotificationChannelInput, optFns ...func(*codeguruprofiler.Options)) (*codeguruprofiler.RemoveNotificationChannelOutput, error)
	RemovePermission(ctx context.Context, params *codeguruprofiler.RemovePermissionInput, optFns ...func(*codeguruprofiler.Options)) (*codeguruprofiler.RemovePermissionOutput, error)
	SubmitFeedback(ctx context.Context, params *codeguruprofiler.SubmitFeedbackInput, optFns ...func(*codeguruprofiler.Options)) (*codeguruprofiler.SubmitFeedbackOutput, error)
	TagResource(ctx context.Context, params *codeguruprofiler.TagResourceInput, optFns ...func(*codeguruprofiler.Options)) (*codeguruprofiler.TagResourceOutput, error)
	UntagResource(ctx context.Context, params *codeguruprofiler.UntagResourceInput, optFns ...func(*codeguruprofiler.Options)) (*codeguruprofiler.UntagResourceOutput, error)
	UpdateProfilingGroup(ctx context.Context, params *codeguruprofiler.UpdateProfilingGroupInput, optFns ...func(*codeguruprofiler.Options)) (*codeguruprofiler.UpdateProfilingGroupOutput, error)
}

// ResilienceHubAPI is the subset of the Resilience Hub client used by awsops.
type ResilienceHubAPI interface {
	AddDraftAppVersionResourceMappings(ctx context.Context, params *resiliencehub.AddDraftAppVersionResourceMappingsInput, optFns ...func(*resiliencehub.Options)) (*resiliencehub.AddDraftAppVersionResourceMappingsOutput, error)
	CreateApp(ctx context.Context, params *resiliencehub.CreateAppInput, optFns ...func(*resiliencehub.Options)) (*resiliencehub.CreateAppOutput, error)
	CreateRecommendationTemplate(ctx context.Context, params *resiliencehub.CreateRecommendationTemplateInput, optFns ...func(*resiliencehub.Options)) (*resiliencehub.CreateRecommendationTemplateOutput, error)
	CreateResiliencyPolicy(ctx context.Context, params *resiliencehub.CreateResiliencyPolicyInput, optFns ...func(*resiliencehub.Options)) (*resiliencehub.CreateResiliencyPolicyOutput, error)
	DeleteApp(ctx context.Context, params *resiliencehub.DeleteAppInput, optFns ...func(*resiliencehub.Options)) (*resiliencehub.DeleteAppOutput, error)
	DeleteAppAssessment(ctx context.Context, params *resiliencehub.DeleteAppAssessmentInput, optFns ...func(*resiliencehub.Options)) (*resiliencehub.DeleteAppAssessmentOutput, error)
	DeleteRecommendationTemplate(ctx context.Context, params *resiliencehub.DeleteRecommendationTemplateInput, optFns ...func(*resiliencehub.Options)) (*resiliencehub.DeleteRecommendationTemplateOutput, error)
	DeleteResiliencyPolicy(ctx context.Context, params *resiliencehub.DeleteResiliencyPolicyInput, optFns ...func(*resiliencehub.Options)) (*resiliencehub.DeleteResiliencyPolicyOutput, error)
	DescribeApp(ctx context.Context, params *resiliencehub.DescribeAppInput, optFns ...func(*resiliencehub.Options)) (*resiliencehub.DescribeAppOutput, error)
	DescribeAppAssessment(ctx context.Context, params *resiliencehub.DescribeAppAssessmentInput, optFns ...func(*resiliencehub.Options)) (*resiliencehub.DescribeAppAssessmentOutput, error)
	DescribeAppVersion(ctx context.Context, params *resiliencehub.DescribeAppVersionInput, optFns ...func(*resiliencehub.Options)) (*resiliencehub.DescribeAppVersionOutput, error)
	DescribeAppVersionResourcesResolutionStatus(ctx context.Context, params *resiliencehub.DescribeAppVersionResourcesResolutionStatusInput, optFns ...func(*resiliencehub.Options)) (*resiliencehub.DescribeAppVersionResourcesResolutionStatusOutput, error)
	DescribeAppVersionTemplate(ctx context.Context, params *resiliencehub.DescribeAppVersionTemplateInput, optFns ...func(*resiliencehub.Options)) (*resiliencehub.DescribeAppVersionTemplateOutput, error)
	DescribeDraftAppVersionResourcesImportStatus(ctx context.Context, params *resiliencehub.DescribeDraftAppVersionResourcesImportStatusInput, optFns ...func(*resiliencehub.Options)) (*resiliencehub.DescribeDraftAppVersionResourcesImportStatusOutput, error)
	DescribeResiliencyPolicy(ctx context.Context, params *resiliencehub.DescribeResiliencyPolicyInput, optFns ...func(*resiliencehub.Options)) (*resiliencehub.DescribeResiliencyPolicyOutput, error)
	ImportResourcesToDraftAppVersion(ctx context.Context, params *resiliencehub.ImportResourcesToDraftAppVersionInput, optFns ...func(*resiliencehub.Options)) (*resiliencehub.ImportResourcesToDraftAppVersionOutput, error)
	ListAlarmRecommendations(ctx context.Context, params *resiliencehub.ListAlarmRecommendationsInput, optFns ...func(*resiliencehub.Options)) (*resiliencehub.ListAlarmRecommendationsOutput, error)
	ListAppAssessments(ctx context.Context, params *resiliencehub.ListAppAssessmentsInput, optFns ...func(*resiliencehub.Options)) (*resiliencehub.ListAppAssessmentsOutput, error)
	ListAppComponentCompliances(ctx context.Context, params *resiliencehub.ListAppComponentCompliancesInput, optFns ...func(*resiliencehub.Options)) (*resiliencehub.ListAppComponentCompliancesOutput, error)
	ListAppComponentRecommendations(ctx context.Context, params *resiliencehub.ListAppComponentRecommendationsInput, optFns ...func(*resiliencehub.Options)) (*resiliencehub.ListAppComponentRecommendationsOutput, error)
	ListAppInputSources(ctx context.Context, params *resiliencehub.ListAppInputSourcesInput, optFns ...func(*resiliencehub.Options)) (*resiliencehub.ListAppInputSourcesOutput, error)
	ListAppVersionAppComponents(ctx context.Context, params *resiliencehub.ListAppVersionAppComponentsInput, optFns ...func(*resiliencehub.Options)) (*resiliencehub.ListAppVersionAppComponentsOutput, error)
	ListAppVersionResourceMappings(ctx context.Context, params *resiliencehub.ListAppVersionResourceMappingsInput, optFns ...func(*resiliencehub.Options)) (*resiliencehub.ListAppVersionResourceMappingsOutput, error)
	ListAppVersionResources(ctx context.Context, params *resiliencehub.ListAppVersionResourcesInput, optFns ...func(*resiliencehub.Options)) (*resiliencehub.ListAppVersionResourcesOutput, error)
	ListAppVersions(ctx context.Context, params *resiliencehub.ListAppVersionsInput, optFns ...func(*resiliencehub.Options)) (*resiliencehub.ListAppVersionsOutput, error)
	ListApps(ctx context.Context, params *resiliencehub.ListAppsInput, optFns ...func(*resiliencehub.Options)) (*resiliencehub.ListAppsOutput, error)
	ListRecommendationTemplates(ctx context.Context, params *resiliencehub.ListRecommendationTemplatesInput, optFns ...func(*resiliencehub.Options)) (*resiliencehub.ListRecommendationTemplatesOutput, error)
	ListResiliencyPolicies(ctx context.Context, params *resiliencehub.ListResiliencyPoliciesInput, optFns ...func(*resiliencehub.Options)) (*resiliencehub.ListResiliencyPoliciesOutput, error)
	ListSopRecommendations(ctx context.Context, params *resiliencehub.ListSopRecommendationsInput, optFns ...func(*resiliencehub.Options)) (*resiliencehub.ListSopRecommendationsOutput, error)
	ListSuggestedResiliencyPolicies(ctx context.Context, params *resiliencehub.ListSuggestedResiliencyPoliciesInput, optFns ...func(*resiliencehub.Options)) (*resiliencehub.ListSuggestedResiliencyPoliciesOutput, error)
	ListTagsForResource(ctx context.Context, params *resiliencehub.ListTagsForResourceInput, optFns ...func(*resiliencehub.Options)) (*resiliencehub.ListTagsForResourceOutput, error)
	ListTestRecommendations(ctx context.Context, params *resiliencehub.ListTestRecommendationsInput, optFns ...func(*resiliencehub.Options)) (*resiliencehub.ListTestRecommendationsOutput, error)
	ListUnsupportedAppVersionResources(ctx context.Context, params *resiliencehub.ListUnsupportedAppVersionResourcesInput, optFns ...func(*resiliencehub.Options)) (*resiliencehub.ListUnsupportedAppVersionResourcesOutput, error)
	PublishAppVersion(ctx context.Context, params *resiliencehub.PublishAppVersionInput, optFns ...func(*resiliencehub.Options)) (*resiliencehub.PublishAppVersionOutput, error)
	PutDraftAppVersionTemplate(ctx context.Context, params *resiliencehub.PutDraftAppVersionTemplateInput, optFns ...func(*resiliencehub.Options)) (*resiliencehub.PutDraftAppVersionTemplateOutput, error)
	RemoveDraftAppVersionResourceMappings(ctx context.Context, params *resiliencehub.RemoveDraftAppVersionResourceMappingsInput, optFns ...func(*resiliencehub.Options)) (*resiliencehub.RemoveDraftAppVersionResourceMappingsOutput, error)
	ResolveAppVersionResources(ctx context.Context, params *resiliencehub.ResolveAppVersionResourcesInput, optFns ...func(*resiliencehub.Options)) (*resiliencehub.ResolveAppVersionResourcesOutput, error)
	StartAppAssessment(ctx context.Context, params *resiliencehub.StartAppAssessmentInput, optFns ...func(*resiliencehub.Options)) (*resiliencehub.StartAppAssessmentOutput, error)
	TagResource(ctx context.Context, params *resiliencehub.TagResourceInput, optFns ...func(*resiliencehub.Options)) (*resiliencehub.TagResourceOutput, error)
	UntagResource(ctx context.Context, params *resiliencehub.UntagResourceInput, optFns ...func(*resiliencehub.Options)) (*resiliencehub.UntagResourceOutput, error)
	UpdateApp(ctx context.Context, params *resiliencehub.UpdateAppInput, optFns ...func(*resiliencehub.Options)) (*resiliencehub.UpdateAppOutput, error)
	UpdateAppVersion(ctx context.Context, params *resiliencehub.UpdateAppVersionInput, optFns ...func(*resiliencehub.Options)) (*resiliencehub.UpdateAppVersionOutput, error)
	UpdateResiliencyPolicy(ctx context.Context, params *resiliencehub.UpdateResiliencyPolicyInput, optFns ...func(*resiliencehub.Options)) (*resiliencehub.UpdateResiliencyPolicyOutput, error)
}

// S3API is the subset of the S3 client used to fetch recommendation template
// artifacts.
type S3API interface {
	s3v2.ListObjectsV2APIClient
	GetObject(ctx context.Context, params *s3v2.GetObjectInput, optFns ...func(*s3v2.Options)) (*s3v2.GetObjectOutput, error)
}

var (
	_ ProfilerAPI      = (*codeguruprofiler.Client)(nil)
	_ ResilienceHubAPI = (*resiliencehub.Client)(nil)
	_ S3API            = (*s3v2.Client)(nil)
)

// Clients bundles the service clients for one invocation. Region is the
// resolved region, kept for error messages.
type Clients struct {
	Region        string
	Profiler      ProfilerAPI
	ResilienceHub ResilienceHubAPI
	S3            S3API
}

// NewClients constructs every service client from cfg.
func NewClients(cfg awsv2.Config) *Clients {
	return &Clients{
		Region:        cfg.Region,
		Profiler:      NewProfiler(cfg),
		ResilienceHub: NewResilienceHub(cfg),
		S3:            NewS3(cfg),
	}
}

// NewProfiler constructs a CodeGuru Profiler client from cfg.
func NewProfiler(cfg awsv2.Config, optFns ...func(*codeguruprofiler.Options)) *codeguruprofiler.Client {
	client := codeguruprofiler.NewFromConfig(cfg, optFns...)
	log.Debugf("codeguruprofiler client created")
	return client
}

// NewResilienceHub constructs a Resilience Hub client from cfg.
func NewResilienceHub(cfg awsv2.Config, optFns ...func(*resiliencehub.Options)) *resiliencehub.Client {
	client := resiliencehub.NewFromConfig(cfg, optFns...)
	log.Debugf("resiliencehub client created")
	return client
}

// NewS3 constructs a v2 S3 client from the provided config. Additional service
// options can be supplied via optFns.
func NewS3(cfg awsv2.Config, optFns ...func(*s3v2.Options)) *s3v2.Client {
	client := s3v2.NewFromConfig(cfg, optFns...)
	log.Debugf("s3 client created")
	return client
}

// Connect loads the AWS configuration and builds every client from it.
func Connect(ctx context.Context, opts ...Option) (*Clients, error) {
	cfg, err := LoadAWSConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return NewClients(cfg), nil
}
