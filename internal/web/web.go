// Package web holds the embedded booking form page and its assets.
package web

import "embed"

//go:embed templates static
var Assets embed.FS
