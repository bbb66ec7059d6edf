/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 */

package oidef

import "strings"

//go:generate stringer -type=ExtKind -output=ext-kind_string.go

// Extension kind enumeration. The OI-FITS format is a closed set of nine
// table kinds; unknown extension names are rejected at registration.
type ExtKind uint8

const (
	ExtKind_null ExtKind = iota

	ExtKind_Target
	ExtKind_Array
	ExtKind_Wavelength
	ExtKind_Corr
	ExtKind_InsPol

	ExtKind_Vis
	ExtKind_Vis2
	ExtKind_T3
	ExtKind_Flux

	ExtKind_FakeLast
)

var extKindProps = map[ExtKind]struct {
	name    string // canonical extension name token
	nameKey string // key of the keyword field that names the block for cross-referencing
	measure bool   // carries per-row measurement data with a target identifier column
}{
	ExtKind_Target:     {name: "OI_TARGET"},
	ExtKind_Array:      {name: "OI_ARRAY", nameKey: "arrname"},
	ExtKind_Wavelength: {name: "OI_WAVELENGTH", nameKey: "insname"},
	ExtKind_Corr:       {name: "OI_CORR", nameKey: "corrname"},
	ExtKind_InsPol:     {name: "OI_INSPOL"},
	ExtKind_Vis:        {name: "OI_VIS", measure: true},
	ExtKind_Vis2:       {name: "OI_VIS2", measure: true},
	ExtKind_T3:         {name: "OI_T3", measure: true},
	ExtKind_Flux:       {name: "OI_FLUX", measure: true},
}

// ParseExtKind returns the extension kind for a name token ("OI_VIS" etc.).
// Returns ExtKind_null if the token names no known kind.
func ParseExtKind(name string) ExtKind {
	for k := ExtKind_null + 1; k < ExtKind_FakeLast; k++ {
		if extKindProps[k].name == name {
			return k
		}
	}
	return ExtKind_null
}

// Returns the canonical extension name token, e.g. "OI_WAVELENGTH".
func (k ExtKind) Name() string {
	return extKindProps[k].name
}

// NameKey returns the key of the keyword field that names blocks of this
// kind for cross-referencing ("arrname", "insname", "corrname"), or an
// empty string for kinds that are not indexed by name.
func (k ExtKind) NameKey() string {
	return extKindProps[k].nameKey
}

// IsMeasurement returns whether the kind carries measurement rows with a
// target identifier column.
func (k ExtKind) IsMeasurement() bool {
	return extKindProps[k].measure
}

// Renders an ExtKind in human-readable form, without the `ExtKind_` prefix,
// suitable for debugging or error messages
func (k ExtKind) TrimString() string {
	const pref = "ExtKind_"
	return strings.TrimPrefix(k.String(), pref)
}
