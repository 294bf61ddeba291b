package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{Logger: logger.Discard, TranslateError: true})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// one connection, otherwise every pooled connection sees its own empty database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	require.NoError(t, Init(db))
	return db
}

func TestAccountCreate(t *testing.T) {
	db := openTestDB(t)

	a, err := AccountCreate(db, "Ana", "ana@example.com", "secret")
	require.NoError(t, err)
	assert.NotZero(t, a.ID)
	assert.False(t, a.IsAdmin)
	assert.NotEmpty(t, a.Password)
	assert.NotEqual(t, "secret", a.Password)

	_, err = AccountCreate(db, "Other Ana", "ana@example.com", "another")
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	var count int64
	require.NoError(t, db.Model(&Account{}).Where("email = ?", "ana@example.com").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestAccountLogin(t *testing.T) {
	db := openTestDB(t)
	created, err := AccountCreate(db, "Luis", "luis@example.com", "pa55")
	require.NoError(t, err)

	_, err = AccountLogin(db, "luis@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = AccountLogin(db, "nobody@example.com", "pa55")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	a, err := AccountLogin(db, "luis@example.com", "pa55")
	require.NoError(t, err)
	assert.Equal(t, created.ID, a.ID)
}

func TestAccountByIDAndPromote(t *testing.T) {
	db := openTestDB(t)
	_, err := AccountByID(db, 42)
	assert.ErrorIs(t, err, ErrNotFound)

	created, err := AccountCreate(db, "Admin", "admin@example.com", "x")
	require.NoError(t, err)
	require.NoError(t, AccountPromote(db, "admin@example.com"))
	assert.ErrorIs(t, AccountPromote(db, "missing@example.com"), ErrNotFound)

	a, err := AccountByID(db, created.ID)
	require.NoError(t, err)
	assert.True(t, a.IsAdmin)

	list, err := AccountList(db)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestSaveSelectionOverwrites(t *testing.T) {
	db := openTestDB(t)
	a, err := AccountCreate(db, "Eva", "eva@example.com", "x")
	require.NoError(t, err)

	require.NoError(t, a.SaveSelection(db, []string{"3", "7", "9"}))
	stored, err := AccountByID(db, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "3,7,9", stored.SelectedPhotos)
	assert.Equal(t, []string{"3", "7", "9"}, stored.Selection())

	require.NoError(t, stored.SaveSelection(db, []string{}))
	stored, err = AccountByID(db, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "", stored.SelectedPhotos)
	assert.Empty(t, stored.Selection())
}

func TestPhotoLimit(t *testing.T) {
	tests := map[string]int{
		"":                10,
		"Essential":       10,
		"Ideal":           20,
		"Premium":         35,
		"Paquete Ideal":   20,
		"Paquete Premium": 35,
		"Boda Deluxe":     10,
	}
	for pkg, want := range tests {
		a := Account{Package: pkg}
		assert.Equal(t, want, a.PhotoLimit(), "package %q", pkg)
	}
}

func TestAccountInsertUniqueEmail(t *testing.T) {
	db := openTestDB(t)
	_, err := AccountCreate(db, "Ana", "ana@example.com", "secret")
	require.NoError(t, err)

	// a second insert that got past the existence check
	late := Account{Name: "Ana Bis", Email: "ana@example.com", Password: "hash"}
	assert.ErrorIs(t, accountInsert(db, &late), ErrDuplicateEmail)
}

func TestSaveAssetsKeepsSelection(t *testing.T) {
	db := openTestDB(t)
	created, err := AccountCreate(db, "Ana", "ana@example.com", "secret")
	require.NoError(t, err)

	edited, err := AccountByID(db, created.ID)
	require.NoError(t, err)

	client, err := AccountByID(db, created.ID)
	require.NoError(t, err)
	require.NoError(t, client.SaveSelection(db, []string{"1", "2"}))

	edited.Package = PackagePremium
	edited.ContractPath = "contrato.pdf"
	require.NoError(t, edited.SaveAssets(db))

	stored, err := AccountByID(db, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "1,2", stored.SelectedPhotos)
	assert.Equal(t, PackagePremium, stored.Package)
	assert.Equal(t, "contrato.pdf", stored.ContractPath)
	assert.Equal(t, created.Password, stored.Password)

	// clearing a field is written too
	edited.Package = ""
	require.NoError(t, edited.SaveAssets(db))
	stored, err = AccountByID(db, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "", stored.Package)
}

func TestAssetInUse(t *testing.T) {
	db := openTestDB(t)
	a, err := AccountCreate(db, "Ana", "ana@example.com", "secret")
	require.NoError(t, err)
	a.VideoPath = "boda.mp4"
	require.NoError(t, a.SaveAssets(db))

	inUse, err := AssetInUse(db, "boda.mp4")
	require.NoError(t, err)
	assert.True(t, inUse)

	inUse, err = AssetInUse(db, "otra.mp4")
	require.NoError(t, err)
	assert.False(t, inUse)
}
