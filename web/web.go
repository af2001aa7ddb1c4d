// Package web holds the embedded browser-facing assets.
package web

import "embed"

//go:embed templates/*.html
var FS embed.FS
