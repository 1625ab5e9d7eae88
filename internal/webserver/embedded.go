package webserver

import "embed"

//go:embed views
var viewsFS embed.FS

//go:embed css
var cssFS embed.FS
