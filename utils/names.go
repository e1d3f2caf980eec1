package utils

import (
	"path/filepath"
	"strings"
	"unicode"
)

// sanitizeIdentifier maps an image base name to a C macro-style identifier:
// non-alphanumeric runes become underscores, everything is uppercased, and a
// leading digit gets an underscore prefix.
func sanitizeIdentifier(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case unicode.IsLetter(r):
			b.WriteRune(unicode.ToUpper(r))
		case unicode.IsDigit(r):
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	s := b.String()
	if s == "" {
		s = "IMAGE"
	}
	if unicode.IsDigit(rune(s[0])) {
		s = "_" + s
	}
	return s
}

func baseIdentifier(inputPath string) string {
	base := filepath.Base(inputPath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return sanitizeIdentifier(base)
}

// DeriveArrayName returns the array identifier for an image path, e.g.
// "assets/CompanySplashScreen.png" -> "COMPANYSPLASHSCREEN_DATA".
func DeriveArrayName(inputPath string) string {
	return baseIdentifier(inputPath) + "_DATA"
}

// DeriveGuardName returns the include guard macro for an image path.
func DeriveGuardName(inputPath string) string {
	return baseIdentifier(inputPath) + "_DATA_H"
}
