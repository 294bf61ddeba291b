package assets

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

var allowedExtensions = map[string]bool{
	"pdf": true,
	"zip": true,
	"mp4": true,
}

// Allowed checks the extension after the last dot, case-insensitive
func Allowed(filename string) bool {
	i := strings.LastIndexByte(filename, '.')
	if i < 0 {
		return false
	}
	return allowedExtensions[strings.ToLower(filename[i+1:])]
}

// SecureFilename reduces a client supplied name to [A-Za-z0-9_.-] with no
// directory components, e.g. "../../etc/passwd" becomes "etc_passwd".
// The result may be empty.
func SecureFilename(name string) string {
	name = norm.NFKD.String(name)
	var b strings.Builder
	for _, r := range name {
		if r > 127 {
			continue
		}
		if r == '/' || r == '\\' {
			r = ' '
		}
		b.WriteRune(r)
	}
	name = strings.Join(strings.Fields(b.String()), "_")

	b.Reset()
	for _, r := range name {
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '_' || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	return strings.Trim(b.String(), "._")
}
