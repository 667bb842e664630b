// Package builtin embeds the levels shipped with the binary.
package builtin

import "embed"

// FS holds the built-in level files at its root.
//
//go:embed *.yaml *.hcl
var FS embed.FS
