package storage

import (
	"bytes"
	"context"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/copa-admin/internal/platform/logging"
	"github.com/valyala/bytebufferpool"
)

type S3Config struct {
	Endpoint        string
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
	PublicBaseURL   string
	Logger          *logging.Logger
}

type objectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3LogoStorage writes logos to any S3-compatible bucket (AWS, R2, MinIO).
type S3LogoStorage struct {
	client        objectPutter
	bucket        string
	publicBaseURL string
	logger        *logging.Logger
}

func NewS3LogoStorage(ctx context.Context, cfg S3Config) (*S3LogoStorage, error) {
	if strings.TrimSpace(cfg.Bucket) == "" {
		return nil, crerr.New("s3 logo storage: bucket is required")
	}
	if strings.TrimSpace(cfg.PublicBaseURL) == "" {
		return nil, crerr.New("s3 logo storage: public base url is required")
	}
	region := strings.TrimSpace(cfg.Region)
	if region == "" {
		region = "auto"
	}

	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(region)}
	if cfg.AccessKeyID != "" || cfg.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	sdkCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, crerr.Wrap(err, "load aws sdk config")
	}

	endpoint := strings.TrimSpace(cfg.Endpoint)
	client := s3.NewFromConfig(sdkCfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})

	return newS3LogoStorage(client, cfg.Bucket, cfg.PublicBaseURL, cfg.Logger), nil
}

func newS3LogoStorage(client objectPutter, bucket, publicBaseURL string, logger *logging.Logger) *S3LogoStorage {
	if logger == nil {
		logger = logging.Default()
	}
	return &S3LogoStorage{
		client:        client,
		bucket:        strings.TrimSpace(bucket),
		publicBaseURL: publicBaseURL,
		logger:        logger,
	}
}

func (s *S3LogoStorage) Upload(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error) {
	buf, err := readBody(body, size)
	if err != nil {
		return "", err
	}
	defer bytebufferpool.Put(buf)

	out, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(buf.B),
		ContentLength: aws.Int64(int64(buf.Len())),
		ContentType:   aws.String(contentType),
		CacheControl:  aws.String("public, max-age=86400"),
	})
	if err != nil {
		return "", crerr.Wrapf(err, "put object bucket=%s key=%s", s.bucket, key)
	}

	etag := ""
	if out != nil && out.ETag != nil {
		etag = strings.Trim(*out.ETag, `"`)
	}
	s.logger.InfoContext(ctx, "logo stored", "backend", "s3", "key", key, "bytes", buf.Len(), "etag", etag)
	return publicURL(s.publicBaseURL, key), nil
}
