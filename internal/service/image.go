package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/pageza/recettes/backend/config"
)

// PassthroughResolver serves stored image references unchanged
type PassthroughResolver struct{}

// Resolve returns ref as is
func (PassthroughResolver) Resolve(_ context.Context, ref string) string {
	return ref
}

// S3ImageResolver presigns s3:// references; anything else passes through
type S3ImageResolver struct {
	presigner Presigner
	expiry    time.Duration
	log       *zap.Logger
}

// NewS3ImageResolver creates a resolver backed by the given presigner
func NewS3ImageResolver(presigner Presigner, expiry time.Duration, log *zap.Logger) *S3ImageResolver {
	if log == nil {
		log = zap.NewNop()
	}
	return &S3ImageResolver{presigner: presigner, expiry: expiry, log: log}
}

// NewImageResolver picks the S3 resolver when a bucket is configured
func NewImageResolver(s3Config *config.S3Config, expiry time.Duration, log *zap.Logger) ImageResolver {
	if s3Config == nil {
		return PassthroughResolver{}
	}
	return NewS3ImageResolver(s3Config, expiry, log)
}

// Resolve presigns an s3:// reference. A presign failure keeps the stored
// reference so the read still succeeds.
func (r *S3ImageResolver) Resolve(ctx context.Context, ref string) string {
	if !strings.HasPrefix(ref, config.ObjectScheme) {
		return ref
	}
	if _, err := config.ObjectKey(ref, ""); err != nil {
		return ref
	}

	url, err := r.presigner.GeneratePresignedURL(ctx, ref, r.expiry)
	if err != nil {
		r.log.Warn("failed to presign image", zap.String("ref", ref), zap.Error(err))
		return ref
	}
	return url
}
