/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 */

package oidata

import (
	"errors"

	"github.com/voedger/oifits/pkg/oidef"
)

// Builder validates field values against a registered schema and produces
// a Block. Errors are collected across Put calls; Build
// either returns a fully validated block or the joined errors and never a
// partial block.
type Builder struct {
	schema      *oidef.Schema
	revn        int
	fields      map[string]Value
	keysOrdered []string
	nrows       int
	nchan       int
	errs        []error
}

// NewBuilder constructs a builder for the (kind, revn) schema of the
// registry. An unregistered schema is reported by Build, not here.
func NewBuilder(reg *oidef.Registry, kind oidef.ExtKind, revn int) *Builder {
	b := &Builder{
		revn:   revn,
		fields: make(map[string]Value),
		nrows:  -1,
		nchan:  -1,
	}
	if b.schema = reg.Schema(kind, revn); b.schema == nil {
		b.collectError(oidef.ErrSchemaNotFound(kind, revn))
	}
	return b
}

// Put supplies one field value. Scalars are put as-is; arrays are put as a
// flat row-major slice plus shape, the shape defaulting to rank 1 over the
// whole slice. Axis 0 of every column value is the row axis; a rank-1
// wavelength-linked value uses axis 0 as both row and channel axis (the
// wavelength-table layout, one row per spectral channel).
func (b *Builder) Put(key string, data any, shape ...int) {
	if b.schema == nil {
		return
	}
	fld := b.schema.Field(key)
	if fld == nil {
		b.collectError(ErrValidation("%v has no field «%s»", b.schema, key))
		return
	}
	if _, ok := b.fields[key]; ok {
		b.collectError(ErrValidation("%v: %v supplied twice", b.schema, fld))
		return
	}

	v, err := newValue(fld.DataKind(), data, shape)
	if err != nil {
		b.collectError(EnrichError(err, "%v: %v", b.schema, fld))
		return
	}
	if err := b.validDim(fld, v); err != nil {
		b.collectError(err)
		return
	}

	b.fields[key] = v
	b.keysOrdered = append(b.keysOrdered, key)
}

// Build returns the validated block. Every mandatory schema field must
// have been put; the reserved revision keyword is stamped from the
// builder's revision if not supplied. The builder must not be reused after
// Build.
func (b *Builder) Build() (*Block, error) {
	err := errors.Join(b.errs...)
	if b.schema == nil {
		return nil, err
	}

	b.schema.Fields(func(fld *oidef.FieldDef) {
		if !fld.Required() || (fld.Key() == oidef.RevnKey) {
			return
		}
		if _, ok := b.fields[fld.Key()]; !ok {
			err = errors.Join(err, ErrValidation("%v misses mandatory %v", b.schema, fld))
		}
	})
	if err != nil {
		return nil, err
	}

	if fld := b.schema.Field(oidef.RevnKey); fld != nil {
		if _, ok := b.fields[oidef.RevnKey]; !ok {
			b.fields[oidef.RevnKey] = Value{kind: oidef.DataKind_Integer, data: int32(b.revn)}
			b.keysOrdered = append(b.keysOrdered, oidef.RevnKey)
		}
	}

	nrows, nchan := b.nrows, b.nchan
	if nrows < 0 {
		nrows = 0
	}
	if nchan < 0 {
		nchan = 0
	}
	return &Block{
		schema:      b.schema,
		fields:      b.fields,
		keysOrdered: b.keysOrdered,
		nrows:       nrows,
		nchan:       nchan,
	}, nil
}

func (b *Builder) collectError(err error) {
	b.errs = append(b.errs, err)
}

// validDim checks the value rank and axis lengths against the field
// definition and keeps the block-wide row and channel counts consistent.
func (b *Builder) validDim(fld *oidef.FieldDef, v Value) error {
	if fld.Role() == oidef.FieldRole_Keyword {
		if !v.IsScalar() {
			return ErrValidation("%v: %v must be scalar, got rank %d value", b.schema, fld, v.Rank())
		}
		if (fld.Key() == oidef.RevnKey) && (v.Int() != int32(b.revn)) {
			return ErrValidation("%v: %v value %d contradicts revision %d", b.schema, fld, v.Int(), b.revn)
		}
		return nil
	}

	rank := v.Rank()
	if rank < 1 {
		return ErrValidation("%v: %v must be an array, got scalar", b.schema, fld)
	}
	maxRank := 2
	switch {
	case (fld.DataKind() == oidef.DataKind_String) || (fld.Mult() == 1):
		maxRank = 1
	case fld.Mult() == oidef.MultDoubleWave:
		maxRank = 3
	}
	if rank > maxRank {
		return ErrValidation("%v: %v rank %d exceeds maximum %d", b.schema, fld, rank, maxRank)
	}

	if err := b.setRows(fld, v.Len(0)); err != nil {
		return err
	}

	switch m := fld.Mult(); {
	case m == oidef.MultWave:
		nchan := v.Len(0)
		if rank == 2 {
			nchan = v.Len(1)
		}
		return b.setChan(fld, nchan)
	case m == oidef.MultDoubleWave:
		if rank != 3 {
			return ErrValidation("%v: %v must be rank 3 (row × channel × channel), got rank %d", b.schema, fld, rank)
		}
		if v.Len(1) != v.Len(2) {
			return ErrValidation("%v: %v channel axes differ, %d × %d", b.schema, fld, v.Len(1), v.Len(2))
		}
		return b.setChan(fld, v.Len(1))
	case (m >= 2) && (fld.DataKind() != oidef.DataKind_String):
		if rank != 2 {
			return ErrValidation("%v: %v must be rank 2 (row × %d), got rank %d", b.schema, fld, m, rank)
		}
		if v.Len(1) != m {
			return ErrValidation("%v: %v non-row axis length %d, %d expected", b.schema, fld, v.Len(1), m)
		}
	}
	return nil
}

func (b *Builder) setRows(fld *oidef.FieldDef, nrows int) error {
	if b.nrows < 0 {
		b.nrows = nrows
		return nil
	}
	if nrows != b.nrows {
		return ErrValidation("%v: %v has %d rows, %d expected", b.schema, fld, nrows, b.nrows)
	}
	return nil
}

func (b *Builder) setChan(fld *oidef.FieldDef, nchan int) error {
	if b.nchan < 0 {
		b.nchan = nchan
		return nil
	}
	if nchan != b.nchan {
		return ErrValidation("%v: %v has %d channels, %d expected", b.schema, fld, nchan, b.nchan)
	}
	return nil
}
