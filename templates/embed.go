package templates

import "embed"

//go:embed go/*.tmpl rust/*.tmpl
var FS embed.FS
