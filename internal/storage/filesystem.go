package storage

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"admin/internal/models"

	"go.uber.org/zap"
)

// FilesystemStorage archives exported reports on local disk, for development
// and single-node deployments.
type FilesystemStorage struct {
	directory string
}

func NewFilesystemStorage(config *models.FilesystemStorageConfiguration) IStorage {
	if err := os.MkdirAll(config.Directory, 0750); err != nil {
		zap.L().Fatal("Failed to create storage directory", zap.Error(err))
	}
	return &FilesystemStorage{directory: config.Directory}
}

func (f *FilesystemStorage) PutObject(objectPath string, payload []byte, _ string) error {
	fullPath := filepath.Join(f.directory, filepath.Clean(objectPath))
	if err := os.MkdirAll(filepath.Dir(fullPath), 0750); err != nil {
		return err
	}
	return os.WriteFile(fullPath, payload, 0600)
}

func (f *FilesystemStorage) PresignedGetObject(_ string) (string, error) {
	// Local files have no URL to hand out.
	return "", nil
}

func (f *FilesystemStorage) ListObjects(prefix string, maxKeys int32) ([]string, error) {
	var objects []string

	err := filepath.WalkDir(f.directory, func(path string, entry os.DirEntry, err error) error {
		if err != nil || entry.IsDir() {
			return err
		}

		rel, relErr := filepath.Rel(f.directory, path)
		if relErr != nil {
			return relErr
		}

		key := filepath.ToSlash(rel)
		if strings.HasPrefix(key, prefix) {
			objects = append(objects, key)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(objects)
	if maxKeys > 0 && len(objects) > int(maxKeys) {
		objects = objects[:maxKeys]
	}

	return objects, nil
}

func (f *FilesystemStorage) RemoveObject(objectPath string) error {
	return os.Remove(filepath.Join(f.directory, filepath.Clean(objectPath)))
}
