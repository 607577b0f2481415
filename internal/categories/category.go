package categories

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Others is the reserved fallback category for unknown, missing, and
// ambiguous extensions.
const Others = "Others"

// Category names a destination folder and the extensions it claims.
type Category struct {
	Name       string
	Extensions []string
}

// Reason explains how a lookup resolved.
type Reason string

const (
	ReasonDeclared    Reason = "declared"
	ReasonAmbiguous   Reason = "ambiguous"
	ReasonUnknown     Reason = "unknown"
	ReasonNoExtension Reason = "no_extension"
)

var lowerCaser = cases.Lower(language.Und)

// NormalizeExtension lower-cases a declared extension, trims surrounding
// space, and ensures a single leading dot. Blank input normalizes to the
// empty extension.
func NormalizeExtension(ext string) string {
	ext = strings.TrimSpace(ext)
	if ext == "" || ext == "." {
		return ""
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return lowerCaser.String(ext)
}

// ExtensionOf returns the lower-cased suffix of name from its last dot on.
// The suffix is not trimmed, so "a.png " has the extension ".png ". Names
// without a dot, dotfiles such as ".bashrc", and names ending in a dot have
// no extension.
func ExtensionOf(name string) string {
	i := strings.LastIndexByte(name, '.')
	if i <= 0 || i == len(name)-1 {
		return ""
	}
	return lowerCaser.String(name[i:])
}
