// Package templates embeds the front tier's page templates so both
// binaries can run from any working directory.
package templates

import (
	"embed"
	"html/template"
)

//go:embed *.html
var files embed.FS

// Must parses every embedded page at startup.
func Must() *template.Template {
	return template.Must(template.ParseFS(files, "*.html"))
}
