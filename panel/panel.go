package panel

import (
	"os"
	"path/filepath"
	"strings"

	"portal/models"
)

const (
	DefaultClientsDir      = "clients"
	DefaultPreselectionDir = "preselection"
)

// View is the client dashboard, derived at read time
type View struct {
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Package     string   `json:"package"`
	Contract    string   `json:"contract"`
	Photos      string   `json:"photos"`
	Video       string   `json:"video"`
	TotalPhotos int      `json:"total_photos"`
	PhotoLimit  int      `json:"photo_limit"`
	Selected    []string `json:"selected"`
	OverLimit   bool     `json:"over_limit"`
}

// Layout locates the preselection folders: <Root>/<Clients>/<account name>/<Preselection>
type Layout struct {
	Root         string
	Clients      string
	Preselection string
}

func DefaultLayout(staticRoot string) Layout {
	return Layout{Root: staticRoot, Clients: DefaultClientsDir, Preselection: DefaultPreselectionDir}
}

// ClientsDir is the tree holding every client's folder
func (l Layout) ClientsDir() string {
	return filepath.Join(l.Root, l.Clients)
}

// Dir uses the display name as a directory segment as-is
func (l Layout) Dir(account *models.Account) string {
	return filepath.Join(l.ClientsDir(), account.Name, l.Preselection)
}

// CountPhotos counts the .jpg files in dir, 0 when dir can't be read
func CountPhotos(dir string) int {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0
	}
	total := 0
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".jpg") {
			total++
		}
	}
	return total
}

func (l Layout) Compute(account *models.Account) View {
	selected := account.Selection()
	limit := account.PhotoLimit()
	return View{
		Name:        account.Name,
		Email:       account.Email,
		Package:     account.Package,
		Contract:    account.ContractPath,
		Photos:      account.PhotosPath,
		Video:       account.VideoPath,
		TotalPhotos: CountPhotos(l.Dir(account)),
		PhotoLimit:  limit,
		Selected:    selected,
		OverLimit:   len(selected) > limit,
	}
}

// Compute reads <staticRoot>/clients/<name>/preselection
func Compute(staticRoot string, account *models.Account) View {
	return DefaultLayout(staticRoot).Compute(account)
}
