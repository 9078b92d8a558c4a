// Package assets embeds the default image shown before the user supplies
// one. It goes through the same sampler path as any uploaded file.
package assets

import _ "embed"

//go:embed default.png
var DefaultPNG []byte

// DefaultName labels the built-in image in the UI.
const DefaultName = "builtin ring"
