// Package templates embeds the HTML templates so the binary renders
// pages regardless of its working directory.
package templates

import "embed"

//go:embed layouts/*.html components/*.html pages/*.html
var FS embed.FS
