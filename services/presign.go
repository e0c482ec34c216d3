package services

import (
	"context"
	"fmt"
	"math/rand/v2"
	"path"
	"strings"
	"time"

	"Streamsphere/config"
	"Streamsphere/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const presignExpiry = 5 * time.Minute

// Presigner issues short-lived presigned PUT URLs for poster/video objects.
type Presigner struct {
	presign    *s3.PresignClient
	bucket     string
	publicBase string
}

// NewPresigner builds a presigner from config. Returns (nil, nil) when object
// storage is unconfigured; callers treat a nil presigner as "not available".
func NewPresigner(ctx context.Context, cfg *config.Config) (*Presigner, error) {
	if cfg.S3Bucket == "" {
		return nil, nil
	}

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.S3Region),
	}
	if cfg.S3AccessKey != "" && cfg.S3SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	publicBase := cfg.S3PublicBase
	if publicBase == "" {
		publicBase = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.S3Bucket, cfg.S3Region)
	}

	return &Presigner{
		presign:    s3.NewPresignClient(s3.NewFromConfig(awsCfg)),
		bucket:     cfg.S3Bucket,
		publicBase: strings.TrimSuffix(publicBase, "/"),
	}, nil
}

// PresignPut issues a presigned PUT URL for a new object of the given kind
// (poster or video). The object key keeps the original file extension.
func (p *Presigner) PresignPut(ctx context.Context, kind, filename, contentType string) (*models.PresignResult, error) {
	ext := strings.ToLower(path.Ext(filename))
	key := fmt.Sprintf("%s/%d-%d%s", kind, time.Now().UnixMilli(), rand.IntN(1_000_000_000), ext)

	req, err := p.presign.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(presignExpiry))
	if err != nil {
		return nil, fmt.Errorf("presign failed: %w", err)
	}

	return &models.PresignResult{
		URL:       req.URL,
		Key:       key,
		PublicURL: p.publicBase + "/" + key,
	}, nil
}
