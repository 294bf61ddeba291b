package models

const DefaultPhotoLimit = 10

const (
	PackageEssential = "Essential"
	PackageIdeal     = "Ideal"
	PackagePremium   = "Premium"
)

// Long labels are the ones used by the studio's own forms
var photoLimits = map[string]int{
	PackageEssential:   10,
	PackageIdeal:       20,
	PackagePremium:     35,
	"Paquete Esencial": 10,
	"Paquete Ideal":    20,
	"Paquete Premium":  35,
}

func PhotoLimit(pkg string) int {
	if limit, ok := photoLimits[pkg]; ok {
		return limit
	}
	return DefaultPhotoLimit
}
