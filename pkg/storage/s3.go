package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/herbarium/herbarium-backend/internal/config"
)

const s3Prefix = "plants"

// S3Storage keeps uploads in an S3-compatible bucket (AWS S3, R2, minio).
type S3Storage struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

func NewS3Storage(cfg config.S3Config) (*S3Storage, error) {
	opts := []func(*awsConfig.LoadOptions) error{
		awsConfig.WithRegion(cfg.Region),
		awsConfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)),
	}

	if cfg.Endpoint != "" {
		resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
			return aws.Endpoint{URL: cfg.Endpoint}, nil
		})
		opts = append(opts, awsConfig.WithEndpointResolverWithOptions(resolver))
	}

	awsCfg, err := awsConfig.LoadDefaultConfig(context.TODO(), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &S3Storage{
		client:    s3.NewFromConfig(awsCfg),
		bucket:    cfg.Bucket,
		publicURL: strings.TrimSuffix(cfg.PublicURL, "/"),
	}, nil
}

func (s *S3Storage) Save(filename string, src io.Reader) (string, error) {
	key := path.Join(s3Prefix, uniqueName(filename))

	_, err := s.client.PutObject(context.TODO(), &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   src,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}

	return s.publicURL + "/" + key, nil
}

func (s *S3Storage) Replace(oldURL string, filename string, src io.Reader) (string, error) {
	if oldKey := s.keyFromURL(oldURL); oldKey != "" {
		archived := path.Join(s3Prefix, archiveDir, path.Base(oldKey))

		_, err := s.client.CopyObject(context.TODO(), &s3.CopyObjectInput{
			Bucket:     aws.String(s.bucket),
			CopySource: aws.String(s.bucket + "/" + oldKey),
			Key:        aws.String(archived),
		})
		if err == nil {
			_, _ = s.client.DeleteObject(context.TODO(), &s3.DeleteObjectInput{
				Bucket: aws.String(s.bucket),
				Key:    aws.String(oldKey),
			})
		}
	}

	return s.Save(filename, src)
}

func (s *S3Storage) keyFromURL(url string) string {
	if url == "" || !strings.HasPrefix(url, s.publicURL+"/") {
		return ""
	}
	return strings.TrimPrefix(url, s.publicURL+"/")
}
