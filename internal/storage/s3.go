package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/kkcy/ticketcare/pkg/config"
)

// Access controls the visibility of an uploaded object
type Access string

const (
	AccessPublic  Access = "public"
	AccessPrivate Access = "private"
)

// UploadResult describes a stored object
type UploadResult struct {
	URL      string
	Pathname string
}

// BlobStore stores uploaded files
type BlobStore interface {
	Upload(ctx context.Context, filename, contentType string, body io.Reader, access Access) (*UploadResult, error)
}

// S3Store implements BlobStore on S3-compatible object storage
type S3Store struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

// NewS3Store creates an S3Store from storage configuration
func NewS3Store(ctx context.Context, cfg *config.StorageConfig) (*S3Store, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	publicURL := strings.TrimSuffix(cfg.PublicURL, "/")
	if publicURL == "" {
		publicURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
	}

	return &S3Store{
		client:    client,
		bucket:    cfg.Bucket,
		publicURL: publicURL,
	}, nil
}

// Upload stores the file under a date-partitioned unique key
func (s *S3Store) Upload(ctx context.Context, filename, contentType string, body io.Reader, access Access) (*UploadResult, error) {
	key := objectKey(filename)

	input := &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	}
	if access == AccessPublic {
		input.ACL = "public-read"
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		return nil, fmt.Errorf("failed to upload %s: %w", key, err)
	}

	return &UploadResult{
		URL:      s.publicURL + "/" + key,
		Pathname: key,
	}, nil
}

// objectKey builds uploads/<yyyy>/<mm>/<uuid><ext> from the original filename
func objectKey(filename string) string {
	ext := path.Ext(filename)
	now := time.Now().UTC()
	return fmt.Sprintf("uploads/%04d/%02d/%s%s", now.Year(), int(now.Month()), uuid.New().String(), ext)
}
