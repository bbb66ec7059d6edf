/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 */

package oidata

import (
	"fmt"

	"github.com/untillpro/goutils/logger"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/voedger/oifits/pkg/oidef"
)

// Master owns the data blocks of one dataset: the attachment-order block
// sequence, at most one target block and name-indexed maps of array,
// wavelength and correlation blocks.
//
// Cross-reference resolution is lazy: every attach marks the master dirty,
// and accessors that need resolved state call Resolve first. A Master is a
// single logical owner; concurrent attach and resolve calls must be
// serialized by the caller.
type Master struct {
	blocks []*Block
	target *Block
	arrays map[string]*Block
	insts  map[string]*Block
	corrs  map[string]*Block
	dirty  bool
}

// NewMaster constructs an empty dataset container.
func NewMaster() *Master {
	return &Master{
		arrays: make(map[string]*Block),
		insts:  make(map[string]*Block),
		corrs:  make(map[string]*Block),
	}
}

// Attach hands ownership of a block to the master and appends it to the
// attachment sequence. Fails if the block is already attached, if a second
// target block is attached, or if the normalized name of an array,
// wavelength or correlation block is already taken. Attach either fully
// succeeds or leaves the master unchanged.
func (m *Master) Attach(b *Block) error {
	if b == nil {
		return ErrReference("nil block")
	}
	if b.attached {
		return ErrReference("%v is already attached", b)
	}

	byName := m.nameMap(b.Kind())
	name := ""
	switch {
	case b.Kind() == oidef.ExtKind_Target:
		if m.target != nil {
			return ErrReference("second %v, dataset already holds one", b)
		}
	case byName != nil:
		var ok bool
		if name, ok = b.refName(b.Kind().NameKey()); !ok || (name == "") {
			return ErrReference("%v has no usable «%s» name", b, b.Kind().NameKey())
		}
		if _, dup := byName[name]; dup {
			return ErrReference("%v: name «%s» is already taken", b, name)
		}
	}

	if b.Kind() == oidef.ExtKind_Target {
		m.target = b
	}
	if byName != nil {
		byName[name] = b
	}
	m.blocks = append(m.blocks, b)
	m.dirty = true
	b.attached = true
	return nil
}

// Resolve stores back-references on all attached blocks. No-op unless the
// master is dirty.
//
// A dataset must hold a target block. The instrument link declared by an
// «insname» keyword is mandatory: a missing wavelength block is fatal, as
// is a channel count disagreeing with the linked wavelength table.
// Array and correlation links are optional: a miss is logged as a warning
// and the back-reference is left unset. The dirty flag is cleared only on
// success.
func (m *Master) Resolve() error {
	if !m.dirty {
		return nil
	}
	if m.target == nil {
		return ErrReference("dataset has no %s block", oidef.ExtKind_Target.Name())
	}

	for _, b := range m.blocks {
		kind := b.Kind()

		// OI_INSPOL declares instrument names per row, not per block
		if name, ok := b.refName("insname"); ok && (kind != oidef.ExtKind_Wavelength) && (kind != oidef.ExtKind_InsPol) {
			w := m.insts[name]
			if w == nil {
				return ErrReference("%v refers to unknown instrument «%s»", b, name)
			}
			if b.hasWaveFields() && (b.nchan != w.nchan) {
				return ErrReference("%v has %d channels, its instrument «%s» has %d", b, b.nchan, name, w.nchan)
			}
			b.ins = w
		}

		if name, ok := b.refName("arrname"); ok && (kind != oidef.ExtKind_Array) {
			if a := m.arrays[name]; a != nil {
				b.arr = a
			} else {
				logger.Warning(fmt.Sprintf("%v refers to unknown array «%s», reference left unresolved", b, name))
			}
		}

		if name, ok := b.refName("corrname"); ok && (kind != oidef.ExtKind_Corr) {
			if c := m.corrs[name]; c != nil {
				b.corr = c
			} else {
				logger.Warning(fmt.Sprintf("%v refers to unknown correlation «%s», reference left unresolved", b, name))
			}
		}
	}

	if logger.IsVerbose() {
		logger.Verbose(fmt.Sprintf("resolved %d blocks, %d instruments, %d arrays, %d correlations",
			len(m.blocks), len(m.insts), len(m.arrays), len(m.corrs)))
	}

	m.dirty = false
	return nil
}

// Blocks returns the attached blocks in attachment order.
func (m *Master) Blocks() []*Block {
	return slices.Clone(m.blocks)
}

func (m *Master) BlockCount() int { return len(m.blocks) }

// Target returns the dataset target block, nil if none is attached yet.
func (m *Master) Target() *Block { return m.target }

// Array returns the OI_ARRAY block with the given (not necessarily
// normalized) name, nil if absent.
func (m *Master) Array(name string) (*Block, error) {
	if err := m.Resolve(); err != nil {
		return nil, err
	}
	return m.arrays[NormalizeName(name)], nil
}

// Instrument returns the OI_WAVELENGTH block with the given name, nil if
// absent.
func (m *Master) Instrument(name string) (*Block, error) {
	if err := m.Resolve(); err != nil {
		return nil, err
	}
	return m.insts[NormalizeName(name)], nil
}

// Corr returns the OI_CORR block with the given name, nil if absent.
func (m *Master) Corr(name string) (*Block, error) {
	if err := m.Resolve(); err != nil {
		return nil, err
	}
	return m.corrs[NormalizeName(name)], nil
}

// ArrayNames returns the sorted normalized names of attached OI_ARRAY
// blocks.
func (m *Master) ArrayNames() ([]string, error) {
	return m.sortedNames(m.arrays)
}

// InstrumentNames returns the sorted normalized names of attached
// OI_WAVELENGTH blocks.
func (m *Master) InstrumentNames() ([]string, error) {
	return m.sortedNames(m.insts)
}

// CorrNames returns the sorted normalized names of attached OI_CORR
// blocks.
func (m *Master) CorrNames() ([]string, error) {
	return m.sortedNames(m.corrs)
}

func (m *Master) sortedNames(byName map[string]*Block) ([]string, error) {
	if err := m.Resolve(); err != nil {
		return nil, err
	}
	names := maps.Keys(byName)
	slices.Sort(names)
	return names, nil
}

// nameMap returns the name index for kinds that are indexed by name, nil
// for other kinds.
func (m *Master) nameMap(kind oidef.ExtKind) map[string]*Block {
	switch kind {
	case oidef.ExtKind_Array:
		return m.arrays
	case oidef.ExtKind_Wavelength:
		return m.insts
	case oidef.ExtKind_Corr:
		return m.corrs
	}
	return nil
}
