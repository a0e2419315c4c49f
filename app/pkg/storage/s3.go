package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	appConfig "backend/school-platform/app/internal/config"
)

// Uploader stores an object and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
}

type S3Uploader struct {
	client *s3.Client
	config appConfig.S3Config
}

// NewS3Uploader builds a client against an S3-compatible endpoint.
// Path-style addressing is required because third-party providers do not
// serve virtual-hosted bucket subdomains.
func NewS3Uploader(ctx context.Context, ac appConfig.ApplicationConfig) (*S3Uploader, error) {
	cfg, err := awsConfig.LoadDefaultConfig(
		ctx,
		awsConfig.WithRegion(ac.S3Config.Region),
		awsConfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			ac.S3Config.AccessKey,
			ac.S3Config.SecretKey,
			"",
		)),
	)
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(ac.S3Config.Endpoint)
		o.UsePathStyle = true
	})

	return &S3Uploader{
		client: client,
		config: ac.S3Config,
	}, nil
}

func (u *S3Uploader) Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error) {
	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.config.Bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload object %s: %w", key, err)
	}

	return u.ObjectURL(key), nil
}

// ObjectURL builds the public path-style URL of an uploaded object.
func (u *S3Uploader) ObjectURL(key string) string {
	host := u.config.Endpoint
	if parsed, err := url.Parse(u.config.Endpoint); err == nil && parsed.Host != "" {
		host = parsed.Host
	}
	host = strings.TrimSuffix(host, "/")

	return fmt.Sprintf("https://%s/%s/%s", host, u.config.Bucket, key)
}
