package storage

import (
	"bytes"
	"context"
	"time"

	"admin/internal/models"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

const downloadURLExpiration = 15 * time.Minute

// S3Storage archives exported reports in any S3-compatible bucket.
type S3Storage struct {
	BucketName string
	storage    *minio.Client
}

func NewS3Storage(config *models.S3StorageConfiguration) IStorage {
	minioClient, err := minio.New(config.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(config.AccessKey, config.SecretKey, ""),
		Secure: config.UseTLS,
		Region: config.Region,
	})
	if err != nil {
		zap.L().Fatal("Failed to create S3 storage client", zap.Error(err))
	}

	exists, err := minioClient.BucketExists(context.Background(), config.BucketName)
	if err != nil {
		zap.L().Fatal("Failed to connect to S3 storage", zap.Error(err))
	}

	if !exists {
		zap.L().Fatal("S3 bucket does not exist", zap.String("bucketName", config.BucketName))
	}

	return &S3Storage{
		BucketName: config.BucketName,
		storage:    minioClient,
	}
}

func (s *S3Storage) PutObject(objectPath string, payload []byte, contentType string) error {
	_, err := s.storage.PutObject(
		context.Background(),
		s.BucketName,
		objectPath,
		bytes.NewReader(payload),
		int64(len(payload)),
		minio.PutObjectOptions{ContentType: contentType},
	)
	return err
}

func (s *S3Storage) PresignedGetObject(objectPath string) (string, error) {
	presignedURL, err := s.storage.PresignedGetObject(
		context.Background(),
		s.BucketName,
		objectPath,
		downloadURLExpiration,
		nil,
	)
	if err != nil {
		return "", err
	}
	return presignedURL.String(), nil
}

func (s *S3Storage) ListObjects(prefix string, maxKeys int32) ([]string, error) {
	opts := minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
		MaxKeys:   int(maxKeys),
	}

	var objects []string

	for object := range s.storage.ListObjects(context.Background(), s.BucketName, opts) {
		if object.Err != nil {
			return nil, object.Err
		}
		objects = append(objects, object.Key)
	}

	return objects, nil
}

func (s *S3Storage) RemoveObject(objectPath string) error {
	return s.storage.RemoveObject(
		context.Background(),
		s.BucketName,
		objectPath,
		minio.RemoveObjectOptions{},
	)
}
