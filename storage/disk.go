package storage

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
)

type DiskStorage struct {
	// BasePath is a directory writable by the current process
	BasePath string
}

func NewDiskStorage(basePath string) (*DiskStorage, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, err
	}
	return &DiskStorage{BasePath: basePath}, nil
}

func (s *DiskStorage) getFullPath(path string) string {
	return filepath.Join(s.BasePath, filepath.Base(path))
}

func (s *DiskStorage) Save(path string, reader io.Reader) (int64, error) {
	file, err := os.Create(s.getFullPath(path))
	if err != nil {
		return 0, err
	}
	result, err := io.Copy(file, reader)
	if cerr := file.Close(); err == nil {
		err = cerr
	}
	return result, err
}

func (s *DiskStorage) Serve(path string, request *http.Request, writer http.ResponseWriter) error {
	http.ServeFile(writer, request, s.getFullPath(path))
	return nil
}

func (s *DiskStorage) Exists(path string) bool {
	fi, err := os.Stat(s.getFullPath(path))
	return err == nil && !fi.IsDir()
}

func (s *DiskStorage) Delete(path string) error {
	return os.Remove(s.getFullPath(path))
}
