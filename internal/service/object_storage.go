package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ErrObjectNotFound is returned when the requested key does not exist in the
// bucket.
var ErrObjectNotFound = errors.New("object not found")

// ObjectStorageService proxies the external object store: upload-URL
// issuance, download streaming, and path normalization.
type ObjectStorageService interface {
	GetUploadURL(ctx context.Context) (string, error)
	Download(ctx context.Context, objectPath string) (io.ReadCloser, string, error)
	NormalizeObjectPath(raw string) string
}

type objectStorageService struct {
	s3Client      *s3.Client
	presignClient *s3.PresignClient
	bucket        string
	logger        zerolog.Logger
}

// NewObjectStorageService wraps an S3 client for the given bucket.
func NewObjectStorageService(s3Client *s3.Client, bucket string, logger zerolog.Logger) ObjectStorageService {
	return &objectStorageService{
		s3Client:      s3Client,
		presignClient: s3.NewPresignClient(s3Client),
		bucket:        bucket,
		logger:        logger.With().Str("service", "ObjectStorageService").Logger(),
	}
}

// GetUploadURL issues a presigned PUT URL for a fresh key under uploads/.
// The client uploads directly to the object store.
func (s *objectStorageService) GetUploadURL(ctx context.Context) (string, error) {
	key := "uploads/" + uuid.NewString()
	req, err := s.presignClient.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, func(opts *s3.PresignOptions) {
		opts.Expires = 15 * time.Minute
	})
	if err != nil {
		s.logger.Error().Err(err).Str("key", key).Msg("Failed to presign upload URL")
		return "", fmt.Errorf("presign upload URL: %w", err)
	}
	return req.URL, nil
}

// Download streams the object at objectPath (the key, without the /objects/
// route prefix). The caller must close the returned reader.
func (s *objectStorageService) Download(ctx context.Context, objectPath string) (io.ReadCloser, string, error) {
	out, err := s.s3Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(objectPath),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if errors.As(err, &noKey) {
			return nil, "", ErrObjectNotFound
		}
		s.logger.Error().Err(err).Str("key", objectPath).Msg("Failed to fetch object")
		return nil, "", fmt.Errorf("get object: %w", err)
	}
	return out.Body, aws.ToString(out.ContentType), nil
}

// NormalizeObjectPath maps a raw upload URL (typically the presigned URL the
// client just PUT to) back to the canonical /objects/... serving path. Values
// already in canonical form pass through; anything unrecognized is returned
// unchanged.
func (s *objectStorageService) NormalizeObjectPath(raw string) string {
	if strings.HasPrefix(raw, "/objects/") {
		return raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	if idx := strings.Index(u.Path, "/uploads/"); idx >= 0 {
		return "/objects" + u.Path[idx:]
	}
	return raw
}
