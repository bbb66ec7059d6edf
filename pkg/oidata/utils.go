/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 */

package oidata

import "strings"

// NormalizeName canonicalizes a cross-reference name: upper-cased, leading
// and trailing whitespace stripped, internal runs of whitespace collapsed
// to a single space.
func NormalizeName(name string) string {
	return strings.ToUpper(strings.Join(strings.Fields(name), " "))
}
