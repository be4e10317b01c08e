package storage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/Tai-brother/UthMentor/internal/config"
	domain "github.com/Tai-brother/UthMentor/internal/domain/mentor"
	"github.com/Tai-brother/UthMentor/internal/httperr"
)

// S3Store holds mentor request profile images. Works against AWS or any
// S3-compatible endpoint (minio in development).
type S3Store struct {
	client   *s3.Client
	bucket   string
	endpoint string
}

func NewS3Store(cfg *config.Config) *S3Store {
	client := s3.New(s3.Options{
		Region:       cfg.S3Region,
		BaseEndpoint: aws.String(cfg.S3Endpoint),
		UsePathStyle: cfg.S3Endpoint != "",
		Credentials:  credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, ""),
	})

	return &S3Store{
		client:   client,
		bucket:   cfg.S3Bucket,
		endpoint: cfg.S3Endpoint,
	}
}

// UploadImage normalizes the image, stores it under a fresh uuid key
// and returns the object URL.
func (s *S3Store) UploadImage(ctx context.Context, data []byte) (string, error) {
	normalized, err := NormalizeImage(data)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("mentor-requests/%s.webp", uuid.NewString())

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(normalized),
		ContentType: aws.String("image/webp"),
	})
	if err != nil {
		return "", httperr.ErrUpload("image_upload_failed")
	}

	if s.endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", s.endpoint, s.bucket, key), nil
	}
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.bucket, key), nil
}

// Compile-time check
var _ domain.ImageStore = (*S3Store)(nil)
