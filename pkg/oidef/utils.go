/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 */

package oidef

import (
	"strings"
	"unicode"
)

// Returns is string a valid extension name token and error if not.
//
// A valid token is the fixed "OI_" prefix followed by upper-case letters,
// digits or underscores.
func ValidExtName(name string) (bool, error) {
	if !strings.HasPrefix(name, ExtNamePrefix) {
		return false, ErrSchema("extension name «%s» has no «%s» prefix", name, ExtNamePrefix)
	}
	if len(name) == len(ExtNamePrefix) {
		return false, ErrSchema("extension name «%s» is bare prefix", name)
	}
	for p, c := range name {
		upper := (c >= 'A') && (c <= 'Z')
		digit := (c >= '0') && (c <= '9')
		if !upper && !digit && (c != '_') {
			return false, ErrSchema("extension name «%s» has invalid char «%c» at pos %d", name, c, p)
		}
	}
	return true, nil
}

// NormalizeKey derives the field key from a definition-row name token:
// lower-cased, with every rune that is not a letter or digit replaced by
// an underscore ("DATE-OBS" → "date_obs").
func NormalizeKey(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, c := range name {
		switch {
		case unicode.IsLetter(c):
			b.WriteRune(unicode.ToLower(c))
		case unicode.IsDigit(c):
			b.WriteRune(c)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}
