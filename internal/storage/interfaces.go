package storage

// IStorage is the archive target for exported reports.
type IStorage interface {
	PutObject(objectPath string, payload []byte, contentType string) error
	// PresignedGetObject returns a time-limited download URL. Backends without
	// URL support return an empty string and no error.
	PresignedGetObject(objectPath string) (string, error)
	ListObjects(prefix string, maxKeys int32) ([]string, error)
	RemoveObject(objectPath string) error
}
