/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 */

package oidef

// Extension name tokens are upper-case identifiers with this fixed prefix.
const ExtNamePrefix = "OI_"

// Reserved definition-row token for the table revision keyword and the
// field key it maps to.
const (
	RevnName = "OI_REVN"
	RevnKey  = "revn"
)

// Column multiplier values for wavelength-linked dimensions.
//
// A positive multiplier is a fixed non-row axis length. MultWave ties the
// non-row axis to the dataset channel count, MultDoubleWave ties two axes
// to it (square channel × channel per row).
const (
	MultWave       = -1
	MultDoubleWave = -2
)

// MaxFieldNameLen limits definition-row name tokens.
const MaxFieldNameLen = 68
