// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	rh "github.com/aws/aws-sdk-go-v2/service/resiliencehub"
	rhtypes "github.com/aws/aws-sdk-go-v2/service/resiliencehub/types"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/tidwall/gjson"
	"github.com/urfave/cli/v3"

	awsx "github.com/tfctl/awsops/internal/aws"
	"github.com/tfctl/awsops/internal/awserr"
	"github.com/tfctl/awsops/internal/log"
	"github.com/tfctl/awsops/internal/meta"
	"github.com/tfctl/awsops/internal/output"
)

// artifact is one downloaded template object.
type artifact struct {
	Key  string
	Size int64
	Path string
}

func artifactsCommandBuilder(m meta.Meta) *cli.Command {
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:     "recommendation-template-arn",
			Usage:    "template to download",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "assessment-arn",
			Usage: "assessment the template belongs to",
		},
		&cli.StringFlag{
			Name:  "dest",
			Usage: "directory the objects are written to",
			Value: ".",
		},
	}
	flags = append(flags, NewGlobalFlags("*")...)
	flags = append(flags, NewAWSFlags(m.Service, configFile())...)

	return &cli.Command{
		Name:      "get-recommendation-template-artifacts",
		Usage:     "download the rendered files of a recommendation template",
		UsageText: "awsops resiliencehub get-recommendation-template-artifacts --recommendation-template-arn ARN [--dest DIR] [options]",
		Metadata: map[string]any{
			"meta": m,
		},
		Flags: flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return artifactsCommandAction(ctx, cmd, m)
		},
	}
}

func artifactsCommandAction(ctx context.Context, cmd *cli.Command, m meta.Meta) error {
	log.Debugf("Executing action for %v", m.Args[1:])

	if cmd.Bool("schema") {
		output.DumpSchema(reflect.TypeOf(artifact{}), m.Stdout)
		return nil
	}

	opts, err := outputOptions(cmd, "Key,Size,Path")
	if err != nil {
		return err
	}

	clients, err := connect(ctx, cmd, m)
	if err != nil {
		return err
	}

	tmpl, err := findTemplate(ctx, clients, cmd.String("recommendation-template-arn"), cmd.String("assessment-arn"))
	if err != nil {
		return err
	}
	if tmpl.Status != rhtypes.RecommendationTemplateStatusSuccess {
		return fmt.Errorf("recommendation template %s is %s", awsv2.ToString(tmpl.Name), tmpl.Status)
	}
	if tmpl.TemplatesLocation == nil || awsv2.ToString(tmpl.TemplatesLocation.Bucket) == "" {
		return fmt.Errorf("recommendation template %s has no templates location", awsv2.ToString(tmpl.Name))
	}

	bucket := awsv2.ToString(tmpl.TemplatesLocation.Bucket)
	prefix := awsv2.ToString(tmpl.TemplatesLocation.Prefix)
	log.Debugf("templates location: bucket=%s prefix=%s", bucket, prefix)

	emitter := output.NewEmitter(m.Stdout, opts)
	err = downloadPrefix(ctx, clients.S3, bucket, prefix, cmd.String("dest"), func(a artifact) error {
		raw, err := json.Marshal(a)
		if err != nil {
			return err
		}
		return emitter.Write(gjson.ParseBytes(raw))
	})
	if cerr := emitter.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return awserr.Friendly(err, awserr.ErrorContext{Service: "s3", Operation: "GetObject", Region: clients.Region})
	}
	return nil
}

// findTemplate resolves a recommendation template by ARN.
func findTemplate(ctx context.Context, clients *awsx.Clients, arn, assessmentArn string) (*rhtypes.RecommendationTemplate, error) {
	in := &rh.ListRecommendationTemplatesInput{RecommendationTemplateArn: &arn}
	if assessmentArn != "" {
		in.AssessmentArn = &assessmentArn
	}

	out, err := clients.ResilienceHub.ListRecommendationTemplates(ctx, in)
	if err != nil {
		return nil, awserr.Friendly(err, awserr.ErrorContext{
			Service:   resilienceHubService,
			Operation: "ListRecommendationTemplates",
			Region:    clients.Region,
		})
	}
	for i := range out.RecommendationTemplates {
		if awsv2.ToString(out.RecommendationTemplates[i].RecommendationTemplateArn) == arn {
			return &out.RecommendationTemplates[i], nil
		}
	}
	return nil, fmt.Errorf("recommendation template %s not found", arn)
}

// downloadPrefix copies every object under prefix into dest, keeping the
// key layout below prefix.
func downloadPrefix(ctx context.Context, client awsx.S3API, bucket, prefix, dest string, done func(artifact) error) error {
	p := s3.NewListObjectsV2Paginator(client, &s3.ListObjectsV2Input{
		Bucket: &bucket,
		Prefix: &prefix,
	})

	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return err
		}
		for _, obj := range page.Contents {
			key := awsv2.ToString(obj.Key)
			if strings.HasSuffix(key, "/") {
				continue
			}

			path, err := localPath(dest, prefix, key)
			if err != nil {
				return err
			}
			n, err := download(ctx, client, bucket, key, path)
			if err != nil {
				return err
			}
			if err := done(artifact{Key: key, Size: n, Path: path}); err != nil {
				return err
			}
		}
	}
	return nil
}

// localPath maps key below prefix into dest and refuses keys that would
// escape it.
func localPath(dest, prefix, key string) (string, error) {
	rel := strings.TrimPrefix(strings.TrimPrefix(key, prefix), "/")
	if rel == "" {
		rel = filepath.Base(key)
	}
	path := filepath.Join(dest, filepath.FromSlash(rel))

	r, err := filepath.Rel(dest, path)
	if err != nil || r == ".." || strings.HasPrefix(r, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("object key %q escapes %s", key, dest)
	}
	return path, nil
}

// createFile opens path for writing a downloaded object.
var createFile = func(path string) (io.WriteCloser, error) {
	return os.Create(path)
}

func download(ctx context.Context, client awsx.S3API, bucket, key, path string) (int64, error) {
	obj, err := client.GetObject(ctx, &s3.GetObjectInput{Bucket: &bucket, Key: &key})
	if err != nil {
		return 0, err
	}
	defer obj.Body.Close()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return 0, err
	}
	f, err := createFile(path)
	if err != nil {
		return 0, err
	}

	n, err := io.Copy(f, obj.Body)
	if cerr := f.Close(); err == nil && cerr != nil {
		err = cerr
	}
	if err != nil {
		return n, fmt.Errorf("failed to write %s: %w", path, err)
	}
	log.Debugf("downloaded: key=%s bytes=%d", key, n)
	return n, nil
}
