package models

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotFound           = errors.New("account not found")
)

type Account struct {
	ID             uint64 `gorm:"primaryKey" json:"id"`
	CreatedAt      int64  `json:"created_at"`
	UpdatedAt      int64  `json:"updated_at"`
	Name           string `gorm:"type:varchar(150)" json:"name"`
	Email          string `gorm:"type:varchar(150);index:uniq_email,unique" json:"email"`
	Password       string `gorm:"type:varchar(150);not null" json:"-"`
	Package        string `gorm:"type:varchar(100)" json:"package"`
	ContractPath   string `gorm:"type:varchar(200)" json:"contract"`
	PhotosPath     string `gorm:"type:varchar(200)" json:"photos"`
	VideoPath      string `gorm:"type:varchar(200)" json:"video"`
	IsAdmin        bool   `gorm:"not null;default:false" json:"is_admin"`
	SelectedPhotos string `gorm:"type:varchar(500)" json:"selected_photos"`
}

func AccountCreate(db *gorm.DB, name, email, plainTextPassword string) (a Account, err error) {
	var count int64
	if err = db.Model(&Account{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return a, err
	}
	if count > 0 {
		return a, ErrDuplicateEmail
	}
	a.Name = name
	a.Email = email
	if err = a.SetPassword(plainTextPassword); err != nil {
		return a, err
	}
	return a, accountInsert(db, &a)
}

// accountInsert relies on the unique email index for concurrent registrations,
// the store must be opened with TranslateError.
func accountInsert(db *gorm.DB, a *Account) error {
	err := db.Create(a).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateEmail
	}
	return err
}

func (a *Account) SetPassword(plainTextPassword string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plainTextPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	a.Password = string(hash)
	return nil
}

func AccountLogin(db *gorm.DB, email, plainTextPassword string) (a Account, err error) {
	err = db.First(&a, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Account{}, ErrInvalidCredentials
	} else if err != nil {
		return Account{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(a.Password), []byte(plainTextPassword)) != nil {
		return Account{}, ErrInvalidCredentials
	}
	return a, nil
}

func AccountByID(db *gorm.DB, id uint64) (a Account, err error) {
	err = db.First(&a, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Account{}, ErrNotFound
	}
	return
}

func AccountList(db *gorm.DB) (accounts []Account, err error) {
	accounts = []Account{}
	err = db.Order("id").Find(&accounts).Error
	return
}

// AccountPromote grants admin rights. Only reachable from the command line,
// there is no self-service admin signup.
func AccountPromote(db *gorm.DB, email string) error {
	result := db.Model(&Account{}).Where("email = ?", email).Update("is_admin", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// SaveAssets writes the package and upload columns only, leaving the
// selection and credentials as they are in the store
func (a *Account) SaveAssets(db *gorm.DB) error {
	return db.Model(a).Select("package", "contract_path", "photos_path", "video_path").Updates(a).Error
}

// AssetInUse reports whether any account still points at the uploaded file
func AssetInUse(db *gorm.DB, name string) (bool, error) {
	var count int64
	err := db.Model(&Account{}).
		Where("contract_path = ? OR photos_path = ? OR video_path = ?", name, name, name).
		Count(&count).Error
	return count > 0, err
}

// Selection returns the stored photo identifiers in order
func (a *Account) Selection() []string {
	if a.SelectedPhotos == "" {
		return []string{}
	}
	return strings.Split(a.SelectedPhotos, ",")
}

// SetSelection overwrites the stored selection (no dedup, no quota check)
func (a *Account) SetSelection(ids []string) {
	a.SelectedPhotos = strings.Join(ids, ",")
}

func (a *Account) SaveSelection(db *gorm.DB, ids []string) error {
	a.SetSelection(ids)
	return db.Model(a).Update("selected_photos", a.SelectedPhotos).Error
}

func (a *Account) PhotoLimit() int {
	return PhotoLimit(a.Package)
}
