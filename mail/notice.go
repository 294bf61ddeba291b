package mail

import (
	"strings"
	"text/template"

	"portal/models"
)

const readySubject = "Tus fotos y video están listos"

var readyTemplate = template.Must(template.New("ready").Parse(`Hola {{.Name}},

Tus fotografías y video de {{.Package}} ya están disponibles para descargar en tu panel de cliente.

Ingresa a tu cuenta en: {{.LoginURL}}
y descárgalos cuando quieras.

Atentamente,
Estudio Bello
`))

// ReadyNotice tells the client their material can be downloaded
func ReadyNotice(account *models.Account, portalURL string) (subject, body string, err error) {
	pkg := account.Package
	if pkg == "" {
		pkg = "tu evento"
	}
	var buf strings.Builder
	err = readyTemplate.Execute(&buf, struct {
		Name, Package, LoginURL string
	}{account.Name, pkg, strings.TrimRight(portalURL, "/") + "/login"})
	return readySubject, buf.String(), err
}
