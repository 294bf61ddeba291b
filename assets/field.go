package assets

import "portal/models"

// Field is one of the uploadable account attributes
type Field string

const (
	FieldContract Field = "contrato"
	FieldPhotos   Field = "fotos"
	FieldVideo    Field = "video"
)

var Fields = []Field{FieldContract, FieldPhotos, FieldVideo}

func ParseField(s string) (Field, bool) {
	for _, f := range Fields {
		if string(f) == s {
			return f, true
		}
	}
	return "", false
}

// Target returns the account attribute the field is stored in
func (f Field) Target(a *models.Account) *string {
	switch f {
	case FieldContract:
		return &a.ContractPath
	case FieldPhotos:
		return &a.PhotosPath
	case FieldVideo:
		return &a.VideoPath
	}
	return nil
}
