package assets

import (
	"context"
	"fmt"
	"net/http"
	"path"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// NewMinioClient connects to an S3-compatible endpoint with static credentials.
func NewMinioClient(endpoint, accessKey, secretKey string, useSSL bool) (*minio.Client, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("minio client %s: %w", endpoint, err)
	}
	return client, nil
}

// MinioStore serves objects from a bucket, optionally below a key prefix.
type MinioStore struct {
	client *minio.Client
	bucket string
	prefix string
}

func NewMinioStore(client *minio.Client, bucket, prefix string) *MinioStore {
	return &MinioStore{client: client, bucket: bucket, prefix: prefix}
}

func (s *MinioStore) key(name string) (string, bool) {
	clean, ok := cleanName(name)
	if !ok || clean == "" {
		return "", false
	}
	if s.prefix == "" {
		return clean, true
	}
	return path.Join(s.prefix, clean), true
}

func (s *MinioStore) Open(ctx context.Context, name string) (*File, error) {
	key, ok := s.key(name)
	if !ok {
		return nil, ErrNotFound
	}

	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("get object %s/%s: %w", s.bucket, key, err)
	}
	info, err := obj.Stat()
	if err != nil {
		obj.Close()
		resp := minio.ToErrorResponse(err)
		if resp.Code == "NoSuchKey" || resp.StatusCode == http.StatusNotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("stat object %s/%s: %w", s.bucket, key, err)
	}

	contentType := info.ContentType
	if contentType == "application/octet-stream" {
		contentType = ""
	}
	return &File{
		Content:     obj,
		Name:        path.Base(key),
		ModTime:     info.LastModified,
		ContentType: contentType,
	}, nil
}
