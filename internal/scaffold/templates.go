package scaffold

import (
	"embed"
	"fmt"
	"strings"
)

// templatesFS embeds every per-language solution stub. Template files carry a
// .tmpl suffix so the toolchain never mistakes them for buildable sources.
//
//go:embed templates/*.tmpl
var templatesFS embed.FS

// templateContent returns the raw template text for an embedded template name.
func templateContent(name string) (string, error) {
	b, err := templatesFS.ReadFile("templates/" + name)
	if err != nil {
		return "", fmt.Errorf("no such template: %s", name)
	}
	// Normalize in case a template was checked in with CRLF endings.
	return strings.ReplaceAll(string(b), "\r\n", "\n"), nil
}
