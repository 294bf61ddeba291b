package storage

import (
	"io"
	"net/http"

	"portal/config"
)

// StorageAPI is the shared upload root. Paths are plain filenames relative to it.
type StorageAPI interface {
	Save(path string, reader io.Reader) (int64, error)
	Serve(path string, request *http.Request, writer http.ResponseWriter) error
	Exists(path string) bool
	Delete(path string) error
}

// New returns S3 storage when a bucket is configured, the local upload dir otherwise
func New(cfg *config.Config) (StorageAPI, error) {
	if cfg.S3Bucket != "" {
		return NewS3Storage(S3Options{
			Bucket:   cfg.S3Bucket,
			Region:   cfg.S3Region,
			Endpoint: cfg.S3Endpoint,
			Key:      cfg.S3Key,
			Secret:   cfg.S3Secret,
			Prefix:   cfg.S3Prefix,
		})
	}
	return NewDiskStorage(cfg.UploadDir)
}
