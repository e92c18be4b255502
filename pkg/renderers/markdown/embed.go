package markdown

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

// TemplatesFS exposes the embedded template bundle for consumers that want to
// customise rendering by copying and editing the built-in layout.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
