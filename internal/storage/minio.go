// Package storage uploads article and ad images to MinIO and hands back the
// durable public URL the content rows store.
package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

type ImageStore struct {
	client *minio.Client
	bucket string
}

func NewImageStore(ctx context.Context, cfg Config) (*ImageStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return &ImageStore{
		client: client,
		bucket: cfg.Bucket,
	}, nil
}

// UploadImage stores an image under a fresh key and returns its public URL.
// The original filename only contributes its extension.
func (s *ImageStore) UploadImage(ctx context.Context, filename, contentType string, data []byte) (string, error) {
	ext := strings.ToLower(path.Ext(filename))
	key := "uploads/" + uuid.New().String() + ext

	_, err := s.client.PutObject(ctx, s.bucket, key,
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType},
	)
	if err != nil {
		return "", fmt.Errorf("failed to upload to minio: %w", err)
	}

	return s.url(key), nil
}

func (s *ImageStore) Delete(ctx context.Context, key string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete object: %w", err)
	}

	return nil
}

// ErrForeignURL reports a URL that does not point into this store's bucket.
var ErrForeignURL = errors.New("url does not belong to this store")

// DeleteByURL removes the object behind a public URL previously returned by
// UploadImage.
func (s *ImageStore) DeleteByURL(ctx context.Context, rawURL string) error {
	key, err := objectKeyFromURL(s.client.EndpointURL().Host, s.bucket, rawURL)
	if err != nil {
		return err
	}

	return s.Delete(ctx, key)
}

// objectKeyFromURL inverts url: the object key is the URL path with the
// bucket segment stripped, and the host must match the store's endpoint.
func objectKeyFromURL(host, bucket, rawURL string) (string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parse object url: %w", err)
	}
	if parsed.Host != host {
		return "", ErrForeignURL
	}

	key, ok := strings.CutPrefix(parsed.Path, "/"+bucket+"/")
	if !ok || key == "" {
		return "", ErrForeignURL
	}

	return key, nil
}

func (s *ImageStore) url(key string) string {
	scheme := "http"
	if s.client.EndpointURL().Scheme == "https" {
		scheme = "https"
	}

	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.client.EndpointURL().Host, s.bucket, key)
}
