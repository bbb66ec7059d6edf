/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 */

package oidata

import "github.com/voedger/oifits/pkg/oidef"

// Selection derives new, unattached blocks (and at the dataset level new
// masters) restricted to one target or to a wavelength predicate, sharing
// the storage of unaffected fields and slicing only the affected axis.
//
// Axis convention: axis 0 of every column value is the row axis; the
// channel axes of a wavelength-linked value are the axes after it (both of
// them for a doubly-linked value, which therefore stays square). A rank-1
// wavelength-linked value uses axis 0 as both.

const targetIDKey = "target_id"

// SelectTargetID derives an unattached copy of the block restricted to one
// target identifier. Returns nil if no row matches. Blocks without a
// target axis are cloned verbatim; blocks where every row matches are
// returned as a straight clone with shared storage.
func (b *Block) SelectTargetID(id int32) *Block {
	v, ok := b.fields[targetIDKey]
	if !ok {
		return b.Clone()
	}

	ids := v.Ints()
	idx := make([]int, 0, len(ids))
	for i, tid := range ids {
		if tid == id {
			idx = append(idx, i)
		}
	}

	switch len(idx) {
	case 0:
		return nil
	case len(ids):
		return b.Clone()
	}
	return b.sliceRows(idx)
}

// SelectWavelength derives an unattached copy of the block restricted to
// the spectral channels whose effective wavelength satisfies the
// predicate. Returns nil if no channel matches; a straight clone if all
// do.
//
// A wavelength block selects by its own effective-wavelength column; other
// blocks with wavelength-linked fields select by their resolved instrument
// and fail if it is unresolved. Blocks without wavelength-linked fields
// are cloned verbatim, as are OI_INSPOL blocks (their per-row instrument
// column cannot be mapped to a single channel set).
func (b *Block) SelectWavelength(pred func(float64) bool) (*Block, error) {
	if b.Kind() == oidef.ExtKind_InsPol {
		return b.Clone(), nil
	}

	var wl []float64
	switch {
	case b.Kind() == oidef.ExtKind_Wavelength:
		wl = b.fields["eff_wave"].Reals()
	case b.ins != nil:
		wl = b.ins.fields["eff_wave"].Reals()
	case !b.hasWaveFields():
		return b.Clone(), nil
	default:
		return nil, ErrReference("%v has no resolved instrument to select wavelengths by", b)
	}

	idx := make([]int, 0, len(wl))
	for i, w := range wl {
		if pred(w) {
			idx = append(idx, i)
		}
	}

	switch len(idx) {
	case 0:
		return nil, nil
	case len(wl):
		return b.Clone(), nil
	}
	return b.sliceChannels(idx), nil
}

// SelectWavelengthRange selects the channels whose effective wavelength
// lies in the inclusive [lo, hi] interval.
func (b *Block) SelectWavelengthRange(lo, hi float64) (*Block, error) {
	return b.SelectWavelength(func(w float64) bool { return (w >= lo) && (w <= hi) })
}

// sliceRows keeps the given rows, in order, of every column field. Keyword
// fields are carried verbatim.
func (b *Block) sliceRows(idx []int) *Block {
	n := b.Clone()
	for _, key := range n.keysOrdered {
		if v := n.fields[key]; n.isColumn(key, v) {
			n.fields[key] = v.take(0, idx)
		}
	}
	n.nrows = len(idx)
	return n
}

// sliceChannels keeps the given channels, in order, of every
// wavelength-linked field. Other fields are carried verbatim. In a
// wavelength block rows are channels, so its row count changes too.
func (b *Block) sliceChannels(idx []int) *Block {
	n := b.Clone()
	for _, key := range n.keysOrdered {
		fld := n.schema.Field(key)
		if (fld == nil) || !fld.IsWaveLinked() {
			continue
		}
		v := n.fields[key]
		switch v.Rank() {
		case 1:
			v = v.take(0, idx)
		case 2:
			v = v.take(1, idx)
		case 3:
			v = v.take(1, idx).take(2, idx)
		}
		n.fields[key] = v
	}
	n.nchan = len(idx)
	if b.Kind() == oidef.ExtKind_Wavelength {
		n.nrows = len(idx)
	}
	return n
}

// TargetID resolves a target name to its identifier using the target
// block's name column. Name matching is normalized (case and whitespace
// insensitive).
func (m *Master) TargetID(name string) (int32, error) {
	if err := m.Resolve(); err != nil {
		return 0, err
	}

	tgt := m.target
	ids := tgt.fields[targetIDKey].Ints()
	names := tgt.fields["target"].Strs()

	want := NormalizeName(name)
	for i, n := range names {
		if NormalizeName(n) == want {
			return ids[i], nil
		}
	}
	return 0, ErrSelection("no target named «%s»", name)
}

// SelectTarget derives a new master restricted to the named target.
func (m *Master) SelectTarget(name string) (*Master, error) {
	id, err := m.TargetID(name)
	if err != nil {
		return nil, err
	}
	return m.SelectTargetID(id)
}

// SelectTargetID derives a new master restricted to one target identifier.
// Every attached block is selected; blocks with no matching rows are
// absent from the result. Fails if the identifier is not in the target
// block.
func (m *Master) SelectTargetID(id int32) (*Master, error) {
	if err := m.Resolve(); err != nil {
		return nil, err
	}
	if m.target.SelectTargetID(id) == nil {
		return nil, ErrSelection("no target with identifier %d", id)
	}

	out := NewMaster()
	for _, b := range m.blocks {
		nb := b.SelectTargetID(id)
		if nb == nil {
			continue
		}
		if err := out.Attach(nb); err != nil {
			return nil, err
		}
	}
	if err := out.Resolve(); err != nil {
		return nil, err
	}
	return out, nil
}

// SelectWavelength derives a new master restricted to the spectral
// channels satisfying the predicate. Channel subsets are computed per
// instrument; blocks whose channel subset is empty are absent from the
// result.
func (m *Master) SelectWavelength(pred func(float64) bool) (*Master, error) {
	if err := m.Resolve(); err != nil {
		return nil, err
	}

	out := NewMaster()
	for _, b := range m.blocks {
		nb, err := b.SelectWavelength(pred)
		if err != nil {
			return nil, err
		}
		if nb == nil {
			continue
		}
		if err := out.Attach(nb); err != nil {
			return nil, err
		}
	}
	if err := out.Resolve(); err != nil {
		return nil, err
	}
	return out, nil
}

// SelectWavelengthRange derives a new master restricted to the channels
// whose effective wavelength lies in the inclusive [lo, hi] interval.
func (m *Master) SelectWavelengthRange(lo, hi float64) (*Master, error) {
	return m.SelectWavelength(func(w float64) bool { return (w >= lo) && (w <= hi) })
}
