// Package preset provides embedded terrain presets and utilities for loading them.
package preset

import "embed"

// dataFS embeds all JSON files from this directory at build time.
//
//go:embed *.json
var dataFS embed.FS
