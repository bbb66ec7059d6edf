/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 */

package oidef

import "fmt"

// Field role enumeration: keyword fields are per-block scalars, column
// fields are per-row values.
type FieldRole uint8

const (
	FieldRole_null FieldRole = iota

	FieldRole_Keyword
	FieldRole_Column

	FieldRole_FakeLast
)

func (r FieldRole) String() string {
	switch r {
	case FieldRole_Keyword:
		return "keyword"
	case FieldRole_Column:
		return "column"
	}
	return fmt.Sprintf("FieldRole(%d)", uint8(r))
}

// FieldDef is one field declaration of an extension schema.
type FieldDef struct {
	name     string
	key      string
	role     FieldRole
	dataKind DataKind
	required bool
	mult     int
	unit     string
	descr    string
}

func newFieldDef(name, key string, role FieldRole, dk DataKind, required bool, mult int, unit, descr string) *FieldDef {
	return &FieldDef{
		name:     name,
		key:      key,
		role:     role,
		dataKind: dk,
		required: required,
		mult:     mult,
		unit:     unit,
		descr:    descr,
	}
}

// Canonical field name from the definition table, e.g. "EFF_WAVE".
func (f *FieldDef) Name() string { return f.name }

// Normalized field key, e.g. "eff_wave".
func (f *FieldDef) Key() string { return f.key }

func (f *FieldDef) Role() FieldRole { return f.role }

func (f *FieldDef) DataKind() DataKind { return f.dataKind }

func (f *FieldDef) Required() bool { return f.required }

// Mult returns the column dimension specification: a positive fixed
// non-row axis length, MultWave or MultDoubleWave for wavelength-linked
// axes, zero for keyword fields.
func (f *FieldDef) Mult() int { return f.mult }

// IsWaveLinked returns whether the field's non-row axis length is tied to
// the dataset channel count.
func (f *FieldDef) IsWaveLinked() bool {
	return (f.mult == MultWave) || (f.mult == MultDoubleWave)
}

func (f *FieldDef) Unit() string { return f.unit }

func (f *FieldDef) Description() string { return f.descr }

func (f *FieldDef) String() string {
	return fmt.Sprintf("%s field «%s»", f.role, f.name)
}
