// Package objectstore stores media uploads directly in an S3 bucket. It is
// the alternative to the media-storage service proxy in package acl and
// implements the same port.
package objectstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/restaurant-api/internal/adapters/clients/acl/media"
	"github.com/jsamuelsen11/restaurant-api/internal/domain"
	"github.com/jsamuelsen11/restaurant-api/internal/platform/config"
	"github.com/jsamuelsen11/restaurant-api/internal/platform/logging"
	"github.com/jsamuelsen11/restaurant-api/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.MediaClient   = (*S3Store)(nil)
	_ ports.HealthChecker = (*S3Store)(nil)
)

// checkName matches the health check name of the HTTP media backend so
// readiness output does not depend on the configured backend.
const checkName = "media-storage"

// ObjectAPI is the subset of *s3.Client used by S3Store.
type ObjectAPI interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	HeadObject(ctx context.Context, in *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
	HeadBucket(ctx context.Context, in *s3.HeadBucketInput, optFns ...func(*s3.Options)) (*s3.HeadBucketOutput, error)
}

// NewClient builds an S3 client from the default AWS credential chain.
func NewClient(ctx context.Context, cfg config.S3Config) (*s3.Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	}), nil
}

// S3Store implements [ports.MediaClient] on an S3 bucket. Objects are
// written under generated keys and served from PublicBaseURL.
type S3Store struct {
	api     ObjectAPI
	bucket  string
	baseURL string
	logger  *slog.Logger
}

// NewS3Store creates an S3Store writing to cfg.Bucket through api.
func NewS3Store(api ObjectAPI, cfg config.S3Config, logger *slog.Logger) *S3Store {
	return &S3Store{
		api:     api,
		bucket:  cfg.Bucket,
		baseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
		logger:  logging.OrDiscard(logger),
	}
}

// Upload writes the body under a fresh key. Bodies that cannot seek are
// buffered so the request carries a content length.
func (s *S3Store) Upload(ctx context.Context, upload ports.MediaUpload) (obj *ports.MediaObject, err error) {
	key := media.NewObjectKey(upload.Filename)

	ctx, span := s.startSpan(ctx, "PutObject", key)
	defer func() { finishSpan(span, err) }()

	body, size, err := seekable(upload.Body, upload.Size)
	if err != nil {
		return nil, fmt.Errorf("reading upload: %w", err)
	}

	_, err = s.api.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(upload.ContentType),
	})
	if err != nil {
		return nil, translateError("PutObject", key, err)
	}

	s.logger.DebugContext(ctx, "stored media object",
		slog.String("bucket", s.bucket),
		slog.String("key", key),
		slog.Int64("size", size),
	)

	return &ports.MediaObject{
		Key:         key,
		URL:         s.baseURL + "/" + key,
		ContentType: upload.ContentType,
		Size:        size,
	}, nil
}

// Delete removes the object stored under key. S3 deletes are idempotent, so
// the key is checked first to report [domain.ErrNotFound].
func (s *S3Store) Delete(ctx context.Context, key string) (err error) {
	ctx, span := s.startSpan(ctx, "DeleteObject", key)
	defer func() { finishSpan(span, err) }()

	_, err = s.api.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return translateError("HeadObject", key, err)
	}

	_, err = s.api.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return translateError("DeleteObject", key, err)
	}
	return nil
}

// Name returns the identifier used when this component is registered with a
// [ports.HealthRegistry].
func (s *S3Store) Name() string {
	return checkName
}

// HealthCheck reports whether the bucket exists and is reachable with the
// configured credentials.
func (s *S3Store) HealthCheck(ctx context.Context) error {
	_, err := s.api.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(s.bucket)})
	if err != nil {
		return fmt.Errorf("%s: bucket %q: %w", checkName, s.bucket, err)
	}
	return nil
}

func (s *S3Store) startSpan(ctx context.Context, op, key string) (context.Context, trace.Span) {
	tracer := otel.GetTracerProvider().Tracer("objectstore")
	return tracer.Start(ctx, "S3 "+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("aws.s3.bucket", s.bucket),
			attribute.String("aws.s3.key", key),
		),
	)
}

func finishSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// seekable returns body as an io.ReadSeeker with its length. A declared
// size of zero or less is replaced by the measured length.
func seekable(body io.Reader, size int64) (io.ReadSeeker, int64, error) {
	if rs, ok := body.(io.ReadSeeker); ok && size > 0 {
		return rs, size, nil
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, 0, err
	}
	return bytes.NewReader(data), int64(len(data)), nil
}

// translateError maps S3 failures to domain errors. Context errors pass
// through unchanged.
func translateError(op, key string, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	var notFound *types.NotFound
	var noSuchKey *types.NoSuchKey
	if errors.As(err, &notFound) || errors.As(err, &noSuchKey) {
		return fmt.Errorf("object %q: %w", key, domain.ErrNotFound)
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NotFound", "NoSuchKey":
			return fmt.Errorf("object %q: %w", key, domain.ErrNotFound)
		case "EntityTooLarge":
			return &domain.ValidationError{Fields: map[string]string{"file": "too large for storage"}}
		}
	}

	return fmt.Errorf("s3 %s %q: %w: %w", op, key, domain.ErrUnavailable, err)
}
