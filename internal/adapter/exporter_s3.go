// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/MKhiriev/go-lead-sync/internal/config"
	"github.com/MKhiriev/go-lead-sync/internal/logger"
	"github.com/MKhiriev/go-lead-sync/internal/utils"
	"github.com/MKhiriev/go-lead-sync/models"
)

const defaultArchivePrefix = "archive"

// putObjectAPI is the slice of *s3.Client the exporter needs.
type putObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type s3Exporter struct {
	client putObjectAPI
	bucket string
	prefix string

	clock utils.Clock
	ids   *utils.UUIDGenerator

	logger *logger.Logger
}

// archiveManifest is the JSON document written for one compaction.
type archiveManifest struct {
	ExportedAt string                `json:"exported_at"`
	Count      int                   `json:"count"`
	Leads      []models.ArchivedLead `json:"leads"`
}

// NewS3Exporter returns an [Exporter] writing to cfg.Bucket, or nil when no
// bucket is configured. A non-empty cfg.Endpoint points the client at an
// S3-compatible server such as MinIO; static credentials are used when an
// access key is set, otherwise the default AWS credential chain applies.
func NewS3Exporter(ctx context.Context, cfg config.Archive, logger *logger.Logger) (Exporter, error) {
	if cfg.Bucket == "" {
		return nil, nil
	}

	opts := []func(*awsconfig.LoadOptions) error{}
	if cfg.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.Region))
	}
	if cfg.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return newS3Exporter(client, cfg.Bucket, cfg.Prefix, utils.SystemClock{}, logger), nil
}

func newS3Exporter(client putObjectAPI, bucket, prefix string, clock utils.Clock, logger *logger.Logger) *s3Exporter {
	prefix = strings.Trim(prefix, "/")
	if prefix == "" {
		prefix = defaultArchivePrefix
	}

	return &s3Exporter{
		client: client,
		bucket: bucket,
		prefix: prefix,
		clock:  clock,
		ids:    utils.NewUUIDGenerator(),
		logger: logger,
	}
}

// Export writes archived as one manifest under
// <prefix>/YYYY/MM/DD/<uuid>.json and returns that key.
func (e *s3Exporter) Export(ctx context.Context, archived []models.ArchivedLead) (string, error) {
	now := e.clock.Now().UTC()

	body, err := json.Marshal(archiveManifest{
		ExportedAt: now.Format(time.RFC3339Nano),
		Count:      len(archived),
		Leads:      archived,
	})
	if err != nil {
		return "", fmt.Errorf("%w: encode manifest: %w", ErrExportFailed, err)
	}

	key := path.Join(e.prefix, now.Format("2006/01/02"), e.ids.Generate()+".json")

	_, err = e.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(e.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentType:   aws.String("application/json"),
		ContentLength: aws.Int64(int64(len(body))),
	})
	if err != nil {
		return "", fmt.Errorf("%w: put %s: %w", ErrExportFailed, key, err)
	}

	e.logger.Info().
		Str("func", "s3Exporter.Export").
		Str("bucket", e.bucket).
		Str("key", key).
		Int("leads", len(archived)).
		Msg("archive batch exported")
	return key, nil
}
