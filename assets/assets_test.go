package assets

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"portal/models"
	"portal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func fileHeader(t *testing.T, field, filename, content string) *multipart.FileHeader {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	return req.MultipartForm.File[field][0]
}

func TestAllowed(t *testing.T) {
	tests := map[string]bool{
		"contrato.pdf":   true,
		"FOTOS.ZIP":      true,
		"boda.Mp4":       true,
		"x.exe":          false,
		"pdf":            false,
		"archive.tar.gz": false,
		"photo.pdf.exe":  false,
	}
	for name, want := range tests {
		assert.Equal(t, want, Allowed(name), name)
	}
}

func TestSecureFilename(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"contrato.pdf", "contrato.pdf"},
		{"My cool movie.mp4", "My_cool_movie.mp4"},
		{"../../../etc/passwd", "etc_passwd"},
		{"fotos boda señora.zip", "fotos_boda_senora.zip"},
		{"..\\..\\evil.pdf", "evil.pdf"},
		{"...", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SecureFilename(tt.in), tt.in)
	}
}

func TestFieldTarget(t *testing.T) {
	a := models.Account{}
	*FieldContract.Target(&a) = "c.pdf"
	*FieldPhotos.Target(&a) = "p.zip"
	*FieldVideo.Target(&a) = "v.mp4"
	assert.Equal(t, models.Account{ContractPath: "c.pdf", PhotosPath: "p.zip", VideoPath: "v.mp4"}, a)
	assert.Nil(t, Field("avatar").Target(&a))

	f, ok := ParseField("fotos")
	assert.True(t, ok)
	assert.Equal(t, FieldPhotos, f)
	_, ok = ParseField("avatar")
	assert.False(t, ok)
}

func TestManagerUpload(t *testing.T) {
	dir := t.TempDir()
	disk, err := storage.NewDiskStorage(dir)
	require.NoError(t, err)
	m := &Manager{Storage: disk, Log: zap.NewNop().Sugar()}
	a := &models.Account{ID: 1, ContractPath: "old.pdf"}

	stored, err := m.Upload(a, FieldContract, fileHeader(t, "contrato", "x.exe", "MZ"))
	require.NoError(t, err)
	assert.False(t, stored)
	assert.Equal(t, "old.pdf", a.ContractPath)
	assert.NoFileExists(t, filepath.Join(dir, "x.exe"))

	stored, err = m.Upload(a, FieldContract, fileHeader(t, "contrato", "contrato.pdf", "%PDF"))
	require.NoError(t, err)
	assert.True(t, stored)
	assert.Equal(t, "contrato.pdf", a.ContractPath)
	assert.FileExists(t, filepath.Join(dir, "contrato.pdf"))

	stored, err = m.Upload(a, FieldVideo, nil)
	require.NoError(t, err)
	assert.False(t, stored)
	assert.Empty(t, a.VideoPath)
}
