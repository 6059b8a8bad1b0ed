package config

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ObjectScheme prefixes image references stored as bucket objects.
const ObjectScheme = "s3://"

// ErrInvalidObjectRef is returned for references that do not name an object.
var ErrInvalidObjectRef = errors.New("invalid object reference")

// S3Config holds S3 client and bucket info
type S3Config struct {
	Client     *s3.Client
	BucketName string
}

// NewS3Config initializes the S3 client for the configured bucket.
// It returns nil, nil when no bucket is configured.
func NewS3Config(ctx context.Context, cfg *Config) (*S3Config, error) {
	if cfg.S3BucketName == "" {
		return nil, nil
	}

	opts := []func(*awsconfig.LoadOptions) error{}
	if cfg.AWSRegion != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.AWSRegion))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}

	return &S3Config{
		Client:     s3.NewFromConfig(awsCfg),
		BucketName: cfg.S3BucketName,
	}, nil
}

// ObjectKey extracts the object key from an image reference. Both
// s3://<key> and s3://<bucket>/<key> are accepted; the bucket segment is
// dropped only when it names bucket. A bare key is returned cleaned.
// Empty keys and folder-style keys ending in "/" are rejected.
func ObjectKey(ref, bucket string) (string, error) {
	key := strings.TrimPrefix(ref, ObjectScheme)
	if bucket != "" {
		key = strings.TrimPrefix(key, bucket+"/")
	}
	key = strings.TrimLeft(key, "/")

	if key == "" || strings.HasSuffix(key, "/") {
		return "", fmt.Errorf("%w: %q", ErrInvalidObjectRef, ref)
	}
	return key, nil
}

// GeneratePresignedURL presigns a GET for an image reference in the
// configured bucket, valid for expiration.
func (s *S3Config) GeneratePresignedURL(ctx context.Context, ref string, expiration time.Duration) (string, error) {
	key, err := ObjectKey(ref, s.BucketName)
	if err != nil {
		return "", err
	}

	presignClient := s3.NewPresignClient(s.Client)
	presigned, err := presignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.BucketName),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(expiration))
	if err != nil {
		return "", fmt.Errorf("failed to presign %s: %w", key, err)
	}
	return presigned.URL, nil
}
