package email

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

// TemplatesFS exposes the embedded template bundle for consumers that want to
// use the built-in newsletter rendering out of the box.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
