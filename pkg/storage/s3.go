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
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/uoftclubs/clubs-backend/pkg/logger/types"
)

// S3Config holds S3 client configuration.
type S3Config struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
}

// S3 uploads club and event images to blob storage and hands back the
// stored object key.
type S3 struct {
	client   *s3.Client
	uploader *manager.Uploader
	cfg      S3Config
	log      *types.Logger
}

func NewS3(ctx context.Context, cfg S3Config, log *types.Logger) (*S3, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg)
	return &S3{
		client:   client,
		uploader: manager.NewUploader(client),
		cfg:      cfg,
		log:      log,
	}, nil
}

// Upload streams the body to the bucket and returns the object key.
func (s *S3) Upload(ctx context.Context, key string, contentType string, body io.Reader) (string, error) {
	_, err := s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.cfg.Bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
		Body:        body,
	})
	if err != nil {
		return "", fmt.Errorf("s3 upload: %w", err)
	}

	s.log.Debugf("uploaded %s to bucket %s", key, s.cfg.Bucket)
	return key, nil
}

// ImageKey builds a unique object key under the given folder, keeping
// the original file extension.
func ImageKey(folder string, filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	return fmt.Sprintf("%s/%d-%s%s", folder, time.Now().UnixNano(), uuid.NewString(), ext)
}
