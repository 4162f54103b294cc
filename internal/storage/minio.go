package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sbilibin2017/gw-media-channels/internal/logger"
)

// MinIOConfig holds the object storage connection settings.
type MinIOConfig struct {
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	UseSSL          bool
}

// MinIO stores blobs as objects in a single bucket.
type MinIO struct {
	client     *minio.Client
	bucketName string
}

// NewMinIO connects to the object store and creates the bucket if it is missing.
func NewMinIO(ctx context.Context, cfg MinIOConfig) (*MinIO, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	s := &MinIO{client: client, bucketName: cfg.BucketName}
	if err := s.ensureBucket(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *MinIO) ensureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucketName)
	if err != nil {
		return fmt.Errorf("failed to check if bucket exists: %w", err)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.bucketName, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket: %w", err)
	}
	logger.Log.Infow("bucket created", "bucket", s.bucketName)
	return nil
}

// Save uploads the file as a new uniquely named object under dir and returns its name.
func (s *MinIO) Save(ctx context.Context, dir, prefix string, up Upload) (string, error) {
	name := objectName(dir, prefix, up.Ext)
	info, err := s.client.PutObject(ctx, s.bucketName, name, up.Reader, up.Size, minio.PutObjectOptions{
		ContentType: up.ContentType,
	})
	if err != nil {
		return "", fmt.Errorf("put object %s: %w", name, err)
	}
	logger.Log.Infow("blob saved", "name", name, "size", info.Size, "content_type", up.ContentType)
	return name, nil
}

// Delete removes the object. Removing a missing object succeeds.
func (s *MinIO) Delete(ctx context.Context, name string) error {
	clean, err := cleanName(name)
	if err != nil {
		return nil
	}
	if err := s.client.RemoveObject(ctx, s.bucketName, clean, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("remove object %s: %w", clean, err)
	}
	logger.Log.Infow("blob deleted", "name", clean)
	return nil
}

func (s *MinIO) Exists(ctx context.Context, name string) (bool, error) {
	clean, err := cleanName(name)
	if err != nil {
		return false, nil
	}
	_, err = s.client.StatObject(ctx, s.bucketName, clean, minio.StatObjectOptions{})
	if isNoSuchKey(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Open streams the object or returns ErrNotFound.
func (s *MinIO) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	clean, err := cleanName(name)
	if err != nil {
		return nil, err
	}
	obj, err := s.client.GetObject(ctx, s.bucketName, clean, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	// GetObject is lazy; Stat surfaces a missing key.
	if _, err := obj.Stat(); err != nil {
		obj.Close()
		if isNoSuchKey(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return obj, nil
}

func isNoSuchKey(err error) bool {
	if err == nil {
		return false
	}
	return minio.ToErrorResponse(err).Code == "NoSuchKey"
}
