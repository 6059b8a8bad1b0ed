package config

import (
	"context"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectKey(t *testing.T) {
	tests := []struct {
		name string
		ref  string
		want string
	}{
		{"key only", "s3://recipes/harira.jpg", "recipes/harira.jpg"},
		{"own bucket", "s3://recettes-images/recipes/harira.jpg", "recipes/harira.jpg"},
		{"other bucket kept in key", "s3://archive/recipes/harira.jpg", "archive/recipes/harira.jpg"},
		{"leading slashes", "s3:///recipes/harira.jpg", "recipes/harira.jpg"},
		{"bare key", "recipes/pastilla.jpg", "recipes/pastilla.jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := ObjectKey(tt.ref, "recettes-images")
			require.NoError(t, err)
			assert.Equal(t, tt.want, key)
		})
	}
}

func TestObjectKeyRejectsNonObjects(t *testing.T) {
	for _, ref := range []string{"", "s3://", "s3:///", "s3://recettes-images/", "s3://recipes/"} {
		_, err := ObjectKey(ref, "recettes-images")
		assert.ErrorIs(t, err, ErrInvalidObjectRef, ref)
	}
}

func testS3Config() *S3Config {
	client := s3.New(s3.Options{
		Region:      "eu-west-3",
		Credentials: aws.NewCredentialsCache(credentials.NewStaticCredentialsProvider("AKIDEXAMPLE", "secret", "")),
	})
	return &S3Config{Client: client, BucketName: "recettes-images"}
}

func TestGeneratePresignedURL(t *testing.T) {
	s := testS3Config()

	raw, err := s.GeneratePresignedURL(context.Background(), "s3://recettes-images/recipes/harira.jpg", 15*time.Minute)
	require.NoError(t, err)

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(u.Path, "/recipes/harira.jpg"), u.Path)
	assert.NotContains(t, u.Path, "recettes-images/recettes-images")
	assert.Equal(t, "900", u.Query().Get("X-Amz-Expires"))
	assert.NotEmpty(t, u.Query().Get("X-Amz-Signature"))
}

func TestGeneratePresignedURLRejectsEmptyKey(t *testing.T) {
	s := testS3Config()

	_, err := s.GeneratePresignedURL(context.Background(), "s3://", time.Minute)
	assert.ErrorIs(t, err, ErrInvalidObjectRef)
}
