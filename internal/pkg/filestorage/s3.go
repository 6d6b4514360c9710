package filestorage

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
	"github.com/yigit/courseboard/internal/config"
	"github.com/yigit/courseboard/internal/pkg/logger"
)

// S3API is the subset of the S3 client used by S3Storage.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Storage keeps documents in a single S3 bucket.
type S3Storage struct {
	client S3API
	bucket string
	log    zerolog.Logger
}

func NewS3Storage(client S3API, bucket string) *S3Storage {
	return &S3Storage{client: client, bucket: bucket, log: logger.For("s3_storage")}
}

// NewS3Client builds an S3 client from cfg. Static credentials are used when
// an access key is configured, the default provider chain otherwise. A
// custom endpoint switches to path-style addressing for S3-compatible
// servers.
func NewS3Client(ctx context.Context, cfg config.StorageConfig) (*s3.Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if cfg.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	}), nil
}

func (s *S3Storage) Upload(ctx context.Context, key string, body io.Reader, size int64) error {
	input := &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(PDFContentType),
	}
	if size >= 0 {
		input.ContentLength = aws.Int64(size)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		classified := Classify(err, key)
		s.log.Error().Err(err).Str("bucket", s.bucket).Str("key", key).Str("code", string(classified.Code)).Msg("Failed to upload document")
		return classified
	}

	s.log.Info().Str("bucket", s.bucket).Str("key", key).Msg("Document uploaded")
	return nil
}

func (s *S3Storage) Fetch(ctx context.Context, key string) (*Document, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		classified := Classify(err, key)
		s.log.Warn().Err(err).Str("bucket", s.bucket).Str("key", key).Str("code", string(classified.Code)).Msg("Failed to fetch document")
		return nil, classified
	}
	if out.Body == nil {
		return nil, &StorageError{Code: CodeEmptyResponse, Key: key}
	}

	contentType := aws.ToString(out.ContentType)
	if contentType == "" {
		contentType = PDFContentType
	}

	size := int64(-1)
	if out.ContentLength != nil {
		size = *out.ContentLength
	}

	return &Document{Body: out.Body, Size: size, ContentType: contentType}, nil
}
