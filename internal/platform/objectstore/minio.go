package objectstore

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Config carries MinIO connectivity plus the buckets Agency X uses:
// uploads (user-supplied inspiration images, template files) and assets
// (generated campaign images).
type Config struct {
	Endpoint      string
	AccessKey     string
	SecretKey     string
	UseSSL        bool
	Region        string
	BucketUploads string
	BucketAssets  string
}

func (c Config) Validate() error {
	if c.Endpoint == "" {
		return errors.New("objectstore endpoint is required")
	}
	if c.AccessKey == "" || c.SecretKey == "" {
		return errors.New("objectstore credentials are required")
	}
	if c.BucketUploads == "" || c.BucketAssets == "" {
		return errors.New("objectstore buckets are required")
	}
	return nil
}

func NewMinIOClient(cfg Config) (*minio.Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	opts := &minio.Options{
		Creds:     credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:    cfg.UseSSL,
		Region:    cfg.Region,
		Transport: newTransport(),
	}
	return minio.New(cfg.Endpoint, opts)
}

func EnsureBuckets(ctx context.Context, client *minio.Client, cfg Config) error {
	if err := ensureBucket(ctx, client, cfg.BucketUploads, cfg.Region); err != nil {
		return fmt.Errorf("ensure uploads bucket: %w", err)
	}
	if err := ensureBucket(ctx, client, cfg.BucketAssets, cfg.Region); err != nil {
		return fmt.Errorf("ensure assets bucket: %w", err)
	}
	return nil
}

func ensureBucket(ctx context.Context, client *minio.Client, bucket string, region string) error {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{Region: region})
}

// Store exposes the presign/put operations the campaign-studio services
// consume, bound to the configured buckets.
type Store struct {
	client *minio.Client
	cfg    Config
}

func NewStore(client *minio.Client, cfg Config) *Store {
	return &Store{client: client, cfg: cfg}
}

func (s *Store) PresignUpload(ctx context.Context, objectPath string, ttl time.Duration) (string, error) {
	signed, err := s.client.PresignedPutObject(ctx, s.cfg.BucketUploads, objectPath, ttl)
	if err != nil {
		return "", fmt.Errorf("presign upload %s: %w", objectPath, err)
	}
	return signed.String(), nil
}

func (s *Store) ObjectExists(ctx context.Context, objectPath string) (bool, error) {
	_, err := s.client.StatObject(ctx, s.cfg.BucketUploads, objectPath, minio.StatObjectOptions{})
	if err != nil {
		var resp minio.ErrorResponse
		if errors.As(err, &resp) && resp.Code == "NoSuchKey" {
			return false, nil
		}
		return false, fmt.Errorf("stat object %s: %w", objectPath, err)
	}
	return true, nil
}

func (s *Store) PresignDownload(ctx context.Context, objectPath string, ttl time.Duration) (string, error) {
	signed, err := s.client.PresignedGetObject(ctx, s.cfg.BucketUploads, objectPath, ttl, url.Values{})
	if err != nil {
		return "", fmt.Errorf("presign download %s: %w", objectPath, err)
	}
	return signed.String(), nil
}

func newTransport() *http.Transport {
	dialer := &net.Dialer{
		Timeout:   5 * time.Second,
		KeepAlive: 30 * time.Second,
	}
	return &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           dialer.DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}
}
