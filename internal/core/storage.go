package core

import (
	"admin/internal/models"
	"admin/internal/storage"
)

func NewStorage(config models.StorageConfiguration) storage.IStorage {
	switch config.Type {
	case "s3":
		return storage.NewS3Storage(config.S3)
	case "filesystem":
		return storage.NewFilesystemStorage(config.Filesystem)
	default:
		return nil
	}
}
