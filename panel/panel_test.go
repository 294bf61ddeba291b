package panel

import (
	"os"
	"path/filepath"
	"testing"

	"portal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeWithoutPreselection(t *testing.T) {
	a := &models.Account{Name: "Ana", Package: "Ideal"}
	v := Compute(t.TempDir(), a)
	assert.Equal(t, 0, v.TotalPhotos)
	assert.Equal(t, 20, v.PhotoLimit)
	assert.Empty(t, v.Selected)
	assert.False(t, v.OverLimit)
}

func TestComputeDefaultLimit(t *testing.T) {
	v := Compute(t.TempDir(), &models.Account{Name: "Ana"})
	assert.Equal(t, 10, v.PhotoLimit)
}

func TestComputeCountsJPGOnly(t *testing.T) {
	root := t.TempDir()
	a := &models.Account{Name: "Luis Pérez", Package: "Premium", SelectedPhotos: "1,2"}
	dir := filepath.Join(root, "clients", "Luis Pérez", "preselection")
	assert.Equal(t, dir, DefaultLayout(root).Dir(a))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub.jpg.d"), 0755))
	for _, name := range []string{"001.jpg", "002.jpg", "003.JPG", "004.png", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644))
	}

	v := Compute(root, a)
	assert.Equal(t, 2, v.TotalPhotos)
	assert.Equal(t, 35, v.PhotoLimit)
	assert.Equal(t, []string{"1", "2"}, v.Selected)
}

func TestComputeOverLimit(t *testing.T) {
	a := &models.Account{Name: "Eva", Package: "Essential"}
	a.SetSelection([]string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11"})
	assert.True(t, Compute(t.TempDir(), a).OverLimit)
}

func TestComputeDefaultPath(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "clients", "Ana", "preselection")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.jpg"), []byte("x"), 0644))

	assert.Equal(t, 1, Compute(root, &models.Account{Name: "Ana"}).TotalPhotos)
	assert.Equal(t, 0, Compute(root, &models.Account{Name: "Beto"}).TotalPhotos)
}

func TestCustomLayout(t *testing.T) {
	root := t.TempDir()
	l := Layout{Root: root, Clients: "clientes", Preselection: "preseleccion"}
	dir := filepath.Join(root, "clientes", "Ana", "preseleccion")
	require.NoError(t, os.MkdirAll(dir, 0755))
	for _, name := range []string{"1.jpg", "2.jpg"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644))
	}

	a := &models.Account{Name: "Ana"}
	assert.Equal(t, dir, l.Dir(a))
	assert.Equal(t, 2, l.Compute(a).TotalPhotos)
	assert.Equal(t, 0, Compute(root, a).TotalPhotos)
	assert.Equal(t, filepath.Join(root, "clientes"), l.ClientsDir())
}
