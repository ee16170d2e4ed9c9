// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package command

import (
	"bytes"
	"context"
	"io"
	"os"
	"sort"
	"strings"
	"testing"

	cgp "github.com/aws/aws-sdk-go-v2/service/codeguruprofiler"
	rh "github.com/aws/aws-sdk-go-v2/service/resiliencehub"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/require"

	awsx "github.com/tfctl/awsops/internal/aws"
	"github.com/tfctl/awsops/internal/meta"
)

// fakeProfiler records requests and replays canned responses. Methods not
// overridden panic through the nil embedded interface.
type fakeProfiler struct {
	awsx.ProfilerAPI

	listPages []*cgp.ListProfilingGroupsOutput
	listErrAt int
	listErr   error
	listCalls []cgp.ListProfilingGroupsInput

	createIn   *cgp.CreateProfilingGroupInput
	deleteIn   *cgp.DeleteProfilingGroupInput
	describeIn *cgp.DescribeProfilingGroupInput
	timesIn    *cgp.ListProfileTimesInput
	err        error
}

func (f *fakeProfiler) ListProfilingGroups(_ context.Context, in *cgp.ListProfilingGroupsInput, _ ...func(*cgp.Options)) (*cgp.ListProfilingGroupsOutput, error) {
	f.listCalls = append(f.listCalls, *in)
	n := len(f.listCalls)
	if f.listErr != nil && n == f.listErrAt {
		return nil, f.listErr
	}
	return f.listPages[n-1], nil
}

func (f *fakeProfiler) CreateProfilingGroup(_ context.Context, in *cgp.CreateProfilingGroupInput, _ ...func(*cgp.Options)) (*cgp.CreateProfilingGroupOutput, error) {
	f.createIn = in
	return &cgp.CreateProfilingGroupOutput{}, f.err
}

func (f *fakeProfiler) DeleteProfilingGroup(_ context.Context, in *cgp.DeleteProfilingGroupInput, _ ...func(*cgp.Options)) (*cgp.DeleteProfilingGroupOutput, error) {
	f.deleteIn = in
	return &cgp.DeleteProfilingGroupOutput{}, f.err
}

func (f *fakeProfiler) DescribeProfilingGroup(_ context.Context, in *cgp.DescribeProfilingGroupInput, _ ...func(*cgp.Options)) (*cgp.DescribeProfilingGroupOutput, error) {
	f.describeIn = in
	if f.err != nil {
		return nil, f.err
	}
	return &cgp.DescribeProfilingGroupOutput{}, nil
}

func (f *fakeProfiler) ListProfileTimes(_ context.Context, in *cgp.ListProfileTimesInput, _ ...func(*cgp.Options)) (*cgp.ListProfileTimesOutput, error) {
	f.timesIn = in
	return &cgp.ListProfileTimesOutput{}, f.err
}

type fakeResilienceHub struct {
	awsx.ResilienceHubAPI

	apps      []*rh.ListAppsOutput
	appsCalls []rh.ListAppsInput

	importIn  *rh.ImportResourcesToDraftAppVersionInput
	tagIn     *rh.TagResourceInput
	templates *rh.ListRecommendationTemplatesOutput
	bodies    map[string]string
	versions  *rh.ListAppVersionsOutput
}

func (f *fakeResilienceHub) ListApps(_ context.Context, in *rh.ListAppsInput, _ ...func(*rh.Options)) (*rh.ListAppsOutput, error) {
	f.appsCalls = append(f.appsCalls, *in)
	return f.apps[len(f.appsCalls)-1], nil
}

func (f *fakeResilienceHub) ImportResourcesToDraftAppVersion(_ context.Context, in *rh.ImportResourcesToDraftAppVersionInput, _ ...func(*rh.Options)) (*rh.ImportResourcesToDraftAppVersionOutput, error) {
	f.importIn = in
	return &rh.ImportResourcesToDraftAppVersionOutput{AppArn: in.AppArn}, nil
}

func (f *fakeResilienceHub) TagResource(_ context.Context, in *rh.TagResourceInput, _ ...func(*rh.Options)) (*rh.TagResourceOutput, error) {
	f.tagIn = in
	return &rh.TagResourceOutput{}, nil
}

func (f *fakeResilienceHub) ListRecommendationTemplates(_ context.Context, _ *rh.ListRecommendationTemplatesInput, _ ...func(*rh.Options)) (*rh.ListRecommendationTemplatesOutput, error) {
	return f.templates, nil
}

func (f *fakeResilienceHub) DescribeAppVersionTemplate(_ context.Context, in *rh.DescribeAppVersionTemplateInput, _ ...func(*rh.Options)) (*rh.DescribeAppVersionTemplateOutput, error) {
	body := f.bodies[*in.AppVersion]
	return &rh.DescribeAppVersionTemplateOutput{AppArn: in.AppArn, AppVersion: in.AppVersion, AppTemplateBody: &body}, nil
}

func (f *fakeResilienceHub) ListAppVersions(_ context.Context, _ *rh.ListAppVersionsInput, _ ...func(*rh.Options)) (*rh.ListAppVersionsOutput, error) {
	return f.versions, nil
}

type fakeS3 struct {
	objects map[string]string
}

func (f *fakeS3) ListObjectsV2(_ context.Context, in *s3.ListObjectsV2Input, _ ...func(*s3.Options)) (*s3.ListObjectsV2Output, error) {
	var keys []string
	for key := range f.objects {
		if strings.HasPrefix(key, *in.Prefix) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	out := &s3.ListObjectsV2Output{}
	for _, key := range keys {
		size := int64(len(f.objects[key]))
		out.Contents = append(out.Contents, s3types.Object{Key: &key, Size: &size})
	}
	return out, nil
}

func (f *fakeS3) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(f.objects[*in.Key]))}, nil
}

type harness struct {
	clients  *awsx.Clients
	stdin    string
	connects int
}

func newHarness() *harness {
	return &harness{clients: &awsx.Clients{Region: "us-east-1"}}
}

// run executes the app with args and returns stdout and stderr.
func (h *harness) run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	m := meta.Meta{
		Args:    append([]string{"awsops"}, args...),
		Context: context.Background(),
		Clients: func(context.Context, ...awsx.Option) (*awsx.Clients, error) {
			h.connects++
			return h.clients, nil
		},
		Stdin:  strings.NewReader(h.stdin),
		Stdout: &stdout,
		Stderr: &stderr,
	}

	err := NewApp(m).Run(context.Background(), m.Args)
	return stdout.String(), stderr.String(), err
}

// isolate keeps the user's config file and shell out of a test.
func isolate(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", dir)
	for _, k := range []string{
		"AWSOPS_CFG_FILE", "AWSOPS_OUTPUT", "AWSOPS_REGION", "AWSOPS_PROFILE",
		"AWSOPS_ENDPOINT_URL", "AWSOPS_MAX_ATTEMPTS", "AWS_REGION", "AWS_DEFAULT_REGION",
		"AWS_PROFILE", "TF_WORKSPACE",
	} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	restore := stdinIsTerminal
	t.Cleanup(func() { stdinIsTerminal = restore })
}

func requireNoErr(t *testing.T, err error, stderr string) {
	t.Helper()
	require.NoError(t, err, "stderr: %s", stderr)
}
