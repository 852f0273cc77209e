// Package s3 implements the blob seam over an S3-compatible bucket
package s3

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	perr "sensutv/internal/platform/errors"
	"sensutv/internal/platform/logger"
)

// Config configures the S3 backend. Endpoint is optional and allows
// S3-compatible stores (Wasabi, MinIO) to be targeted.
type Config struct {
	Bucket       string
	Region       string
	Endpoint     string
	AccessKey    string
	SecretKey    string
	UsePathStyle bool
}

// Client wraps the AWS SDK client with the bucket it writes to
type Client struct {
	api    *awss3.Client
	bucket string
	log    logger.Logger
}

// Open builds an S3 client for the configured bucket
func Open(ctx context.Context, cfg Config, log logger.Logger) (*Client, error) {
	if strings.TrimSpace(cfg.Bucket) == "" {
		return nil, perr.Storagef("s3 bucket is required")
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeStorage, "load aws config")
	}

	api := awss3.NewFromConfig(awsCfg, func(o *awss3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})

	log.Info().Str("bucket", cfg.Bucket).Str("region", cfg.Region).Msg("s3 store ready")
	return &Client{api: api, bucket: cfg.Bucket, log: log}, nil
}

// Get fetches the object at key
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	out, err := c.api.GetObject(ctx, &awss3.GetObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if isNotFound(err) {
			return nil, perr.NotFoundf("no object at %s", key)
		}
		return nil, perr.Wrapf(err, perr.ErrorCodeStorage, "get %s", key)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeStorage, "read %s", key)
	}
	return data, nil
}

// Put overwrites the object at key in a single request.
// No atomicity beyond what the store itself offers.
func (c *Client) Put(ctx context.Context, key string, data []byte, contentType string) error {
	in := &awss3.PutObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(data),
	}
	if contentType != "" {
		in.ContentType = aws.String(contentType)
	}
	if _, err := c.api.PutObject(ctx, in); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeStorage, "put %s", key)
	}
	return nil
}

// Ping checks the bucket is reachable
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.api.HeadBucket(ctx, &awss3.HeadBucketInput{Bucket: aws.String(c.bucket)})
	return err
}

// isNotFound unwraps the SDK's missing-key shapes
func isNotFound(err error) bool {
	var noKey *types.NoSuchKey
	if errors.As(err, &noKey) {
		return true
	}
	var notFound *types.NotFound
	return errors.As(err, &notFound)
}
