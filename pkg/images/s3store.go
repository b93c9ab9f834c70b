package images

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/bookstoreapi/bookstore/pkg/config"
	"github.com/bookstoreapi/bookstore/pkg/version"
	"github.com/gabriel-vasile/mimetype"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/robinjoseph08/golib/logger"
)

const presignExpiry = 15 * time.Minute

type objectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type objectPresigner interface {
	PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// S3Store keeps images in an S3-compatible bucket. Reads are redirected to
// short-lived presigned URLs.
type S3Store struct {
	client    objectPutter
	presigner objectPresigner
	bucket    string
	prefix    string
}

func NewS3Store(ctx context.Context, cfg *config.Config) (*S3Store, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.S3Region),
		awsconfig.WithAppID(version.AppID()),
	}
	if cfg.S3AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKeyID, cfg.S3SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load AWS config")
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
		}
		o.UsePathStyle = cfg.S3UsePathStyle
	})

	return newS3Store(client, s3.NewPresignClient(client), cfg.S3Bucket, cfg.S3Prefix), nil
}

func newS3Store(client objectPutter, presigner objectPresigner, bucket, prefix string) *S3Store {
	return &S3Store{client: client, presigner: presigner, bucket: bucket, prefix: prefix}
}

func (s *S3Store) key(name string) string {
	return s.prefix + name
}

func (s *S3Store) Save(ctx context.Context, name string, r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", errors.Wrap(err, "failed to read image")
	}

	key := s.key(name)
	contentType := mimetype.Detect(data).String()
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return "", errors.Wrapf(err, "s3: put object %s", key)
	}

	logger.FromContext(ctx).Info("image uploaded", logger.Data{"bucket": s.bucket, "key": key, "content_type": contentType})

	return URL(name), nil
}

func (s *S3Store) Serve(c echo.Context, name string) error {
	req, err := s.presigner.PresignGetObject(c.Request().Context(), &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(name)),
	}, func(opts *s3.PresignOptions) {
		opts.Expires = presignExpiry
	})
	if err != nil {
		return errors.Wrap(err, "failed to presign image download")
	}
	return c.Redirect(http.StatusTemporaryRedirect, req.URL)
}
