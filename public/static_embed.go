// Package public embeds the static assets served next to the rendered pages.
package public

import (
	"embed"
	"io/fs"
)

//go:embed static/*
var static embed.FS

// StaticFS returns the asset tree rooted at static/, e.g. img/avatar.png.
func StaticFS() (fs.FS, error) {
	return fs.Sub(static, "static")
}
