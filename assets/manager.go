package assets

import (
	"fmt"
	"mime/multipart"

	"portal/models"
	"portal/storage"

	"go.uber.org/zap"
)

type Manager struct {
	Storage storage.StorageAPI
	Log     *zap.SugaredLogger
}

// Upload stores file under the shared upload root and records its name on the
// account field. Files with a disallowed extension are dropped and reported as
// not stored, without an error. The caller commits the account.
func (m *Manager) Upload(account *models.Account, field Field, file *multipart.FileHeader) (bool, error) {
	if file == nil {
		return false, nil
	}
	target := field.Target(account)
	if target == nil {
		return false, fmt.Errorf("unknown asset field %q", field)
	}
	filename := SecureFilename(file.Filename)
	if !Allowed(file.Filename) || !Allowed(filename) {
		m.Log.Warnw("upload rejected", "account", account.ID, "field", field, "filename", file.Filename)
		return false, nil
	}
	reader, err := file.Open()
	if err != nil {
		return false, err
	}
	defer reader.Close()
	size, err := m.Storage.Save(filename, reader)
	if err != nil {
		return false, fmt.Errorf("save %s: %w", filename, err)
	}
	*target = filename
	m.Log.Infow("upload stored", "account", account.ID, "field", field, "filename", filename, "size", size)
	return true, nil
}
