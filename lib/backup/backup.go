package backup

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"supplements-backend/lib/telemetry"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/mazen160/go-random"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = telemetry.Tracer("supplements.lib.backup")

// S3Config describes the bucket snapshots are uploaded to, credentials
// fall back to the default aws credential chain when unset.
type S3Config struct {
	Bucket          string `json:"bucket"`
	Region          string `json:"region"`
	Prefix          string `json:"prefix"`
	Endpoint        string `json:"endpoint"`
	AccessKeyID     string `json:"access_key_id"`
	SecretAccessKey string `json:"secret_access_key"`
	PathStyle       bool   `json:"path_style"`
}

type Uploader struct {
	client *s3.Client
	bucket string
	prefix string
}

func NewUploader(ctx context.Context, cfg S3Config) (*Uploader, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("s3 bucket required")
	}
	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}

	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(region),
	}
	if cfg.AccessKeyID != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}
	awsCfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.PathStyle
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.RequestChecksumCalculation = aws.RequestChecksumCalculationWhenRequired
	})
	return &Uploader{
		client: client,
		bucket: cfg.Bucket,
		prefix: strings.Trim(cfg.Prefix, "/"),
	}, nil
}

// SnapshotKey returns a unique object key for a snapshot taken at the given
// time.
func SnapshotKey(prefix string, at time.Time) (string, error) {
	suffix, err := random.String(8)
	if err != nil {
		return "", err
	}
	name := fmt.Sprintf("snapshot-%s-%s.json", at.UTC().Format("20060102T150405Z"), suffix)
	prefix = strings.Trim(prefix, "/")
	if prefix == "" {
		return name, nil
	}
	return prefix + "/" + name, nil
}

// Upload stores the json encoding of snapshot and returns the key it was
// stored under.
func (u *Uploader) Upload(ctx context.Context, snapshot any, at time.Time) (string, error) {
	ctx, span := tracer.Start(ctx, "Upload")
	defer span.End()

	body, err := json.Marshal(snapshot)
	if err != nil {
		return "", err
	}
	key, err := SnapshotKey(u.prefix, at)
	if err != nil {
		return "", err
	}
	span.SetAttributes(
		attribute.String("bucket", u.bucket),
		attribute.String("key", key),
		attribute.Int("size", len(body)),
	)

	_, err = u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to put object")
		return "", fmt.Errorf("upload %s: %w", key, err)
	}
	return key, nil
}

// WriteFile writes the indented json encoding of snapshot to path.
func WriteFile(path string, snapshot any) error {
	body, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return err
	}
	err = os.MkdirAll(filepath.Dir(path), 0777)
	if err != nil {
		return err
	}
	return os.WriteFile(path, body, 0644)
}

// ReadFile decodes a snapshot written by WriteFile into out.
func ReadFile(path string, out any) error {
	body, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, out)
}
