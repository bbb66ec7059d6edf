/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 */

package oidata

import (
	"fmt"

	"github.com/voedger/oifits/pkg/oidef"
)

// Block is one validated instance of an extension table: its schema, the
// field values, row and channel counts and, once the owning master has
// resolved it, back-references to the named blocks it depends on.
//
// The field-value mapping is fixed at construction. The only parts mutated
// afterwards are the attachment flag and the back-reference slots, both
// written by the owning Master.
type Block struct {
	schema      *oidef.Schema
	fields      map[string]Value
	keysOrdered []string
	nrows       int
	nchan       int
	attached    bool
	arr         *Block
	ins         *Block
	corr        *Block
}

func (b *Block) Kind() oidef.ExtKind { return b.schema.Kind() }

func (b *Block) Revn() int { return b.schema.Revn() }

func (b *Block) Schema() *oidef.Schema { return b.schema }

// NumRows returns the per-row axis length shared by the block's column
// fields.
func (b *Block) NumRows() int { return b.nrows }

// NumChannels returns the channel count shared by the block's
// wavelength-linked fields; zero if the block has none.
func (b *Block) NumChannels() int { return b.nchan }

// Attached returns whether the block is owned by a Master. Attachment is a
// one-way, one-time transition.
func (b *Block) Attached() bool { return b.attached }

// Value returns the field value for a key.
func (b *Block) Value(key string) (Value, bool) {
	v, ok := b.fields[key]
	return v, ok
}

// Fields enumerates field values in block field order.
func (b *Block) Fields(cb func(key string, v Value)) {
	for _, key := range b.keysOrdered {
		cb(key, b.fields[key])
	}
}

func (b *Block) FieldCount() int { return len(b.keysOrdered) }

// ArrayRef returns the OI_ARRAY block resolved for this block, nil while
// unresolved or when the optional array link is missing from the dataset.
func (b *Block) ArrayRef() *Block { return b.arr }

// InstrumentRef returns the OI_WAVELENGTH block resolved for this block,
// nil while unresolved.
func (b *Block) InstrumentRef() *Block { return b.ins }

// CorrRef returns the OI_CORR block resolved for this block, nil while
// unresolved or when the optional correlation link is missing from the
// dataset.
func (b *Block) CorrRef() *Block { return b.corr }

func (b *Block) String() string {
	return fmt.Sprintf("%v block", b.schema)
}

// Clone produces a new unattached block of the same kind and revision with
// back-references unset. Only fields known to the registered schemas of the
// kind are carried over; schema-unknown legacy fields are dropped.
//
// Array-valued fields share backing storage with the source: mutating the
// contents of one is visible in the other. Callers that need isolation
// must copy before mutating.
func (b *Block) Clone() *Block {
	n := &Block{
		schema: b.schema,
		fields: make(map[string]Value, len(b.fields)),
		nrows:  b.nrows,
		nchan:  b.nchan,
	}
	for _, key := range b.keysOrdered {
		if (b.schema.Field(key) == nil) && !b.schema.KnownKey(key) {
			continue
		}
		n.fields[key] = b.fields[key]
		n.keysOrdered = append(n.keysOrdered, key)
	}
	return n
}

// refName returns the normalized cross-reference name declared by a
// scalar string field, e.g. "insname".
func (b *Block) refName(key string) (string, bool) {
	v, ok := b.fields[key]
	if !ok || !v.IsScalar() || (v.Kind() != oidef.DataKind_String) {
		return "", false
	}
	return NormalizeName(v.Str()), true
}

// isColumn reports whether the field holds per-row data. Schema-unknown
// legacy fields are judged by their rank.
func (b *Block) isColumn(key string, v Value) bool {
	if fld := b.schema.Field(key); fld != nil {
		return fld.Role() == oidef.FieldRole_Column
	}
	return v.Rank() >= 1
}

// hasWaveFields reports whether any present field is wavelength-linked.
func (b *Block) hasWaveFields() bool {
	for _, key := range b.keysOrdered {
		if fld := b.schema.Field(key); (fld != nil) && fld.IsWaveLinked() {
			return true
		}
	}
	return false
}
