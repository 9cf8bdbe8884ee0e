package catalog

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"showcase/internal/domain"
)

// ObjectGetter is the part of the S3 client the source needs
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Source reads a JSON product list stored as an S3 object
type S3Source struct {
	bucket string
	key    string
	client ObjectGetter
}

// NewS3Source parses an s3://bucket/key location. The client is created
// lazily from the default AWS configuration on first fetch.
func NewS3Source(location string) (*S3Source, error) {
	bucket, key, err := parseS3Location(location)
	if err != nil {
		return nil, err
	}
	return &S3Source{bucket: bucket, key: key}, nil
}

// NewS3SourceWithClient creates an S3 source with an explicit client
func NewS3SourceWithClient(location string, client ObjectGetter) (*S3Source, error) {
	src, err := NewS3Source(location)
	if err != nil {
		return nil, err
	}
	src.client = client
	return src, nil
}

func parseS3Location(location string) (string, string, error) {
	rest := strings.TrimPrefix(location, "s3://")
	bucket, key, ok := strings.Cut(rest, "/")
	if !ok || bucket == "" || key == "" {
		return "", "", fmt.Errorf("invalid S3 location %q: want s3://bucket/key", location)
	}
	return bucket, key, nil
}

// Key returns the s3:// location
func (s *S3Source) Key() string {
	return "s3://" + s.bucket + "/" + s.key
}

// Fetch downloads and decodes the object
func (s *S3Source) Fetch(ctx context.Context) ([]domain.Product, error) {
	if s.client == nil {
		cfg, err := config.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load AWS config: %w", err)
		}
		s.client = s3.NewFromConfig(cfg)
	}

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", s.Key(), err)
	}
	defer out.Body.Close()

	body, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.Key(), err)
	}
	return DecodeEmbeddedJSON(body)
}
