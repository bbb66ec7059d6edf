/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 */

package oidef

import (
	"strings"
	"unicode"
)

//go:generate stringer -type=DataKind -output=data-kind_string.go

// Elementary data kind enumeration.
//
// Canonical element types are bool, int32, float64, complex128 and string;
// the block builder widens compatible native inputs to these.
type DataKind uint8

const (
	DataKind_null DataKind = iota

	DataKind_Logical
	DataKind_Integer
	DataKind_Real
	DataKind_Complex
	DataKind_String

	DataKind_FakeLast
)

// Definition-table format letters. Integer and real kinds accept two
// letters each, all letters are case-insensitive.
var dataKindLetters = map[rune]DataKind{
	'L': DataKind_Logical,
	'I': DataKind_Integer,
	'J': DataKind_Integer,
	'D': DataKind_Real,
	'E': DataKind_Real,
	'C': DataKind_Complex,
	'A': DataKind_String,
}

// DataKindByLetter returns the data kind for a format letter, or
// DataKind_null if the letter is unrecognized.
func DataKindByLetter(letter rune) DataKind {
	return dataKindLetters[unicode.ToUpper(letter)]
}

// Renders a DataKind in human-readable form, without the `DataKind_` prefix,
// suitable for debugging or error messages
func (k DataKind) TrimString() string {
	const pref = "DataKind_"
	return strings.TrimPrefix(k.String(), pref)
}
