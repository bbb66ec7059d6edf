/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 */

package oidata

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voedger/oifits/pkg/oidef"
)

func Test_MasterAttach(t *testing.T) {
	reg := testRegistry(t)

	t.Run("should keep attachment order", func(t *testing.T) {
		require := require.New(t)

		m := NewMaster()
		tgt := newTargetBlock(t, reg)
		wave := newWaveBlock(t, reg, "SPEC", []float64{1, 2})
		vis := newVisBlock(t, reg, "SPEC", "", []int32{10}, 2)

		require.NoError(m.Attach(tgt))
		require.NoError(m.Attach(wave))
		require.NoError(m.Attach(vis))

		require.Equal(3, m.BlockCount())
		require.Equal([]*Block{tgt, wave, vis}, m.Blocks())
		require.Same(tgt, m.Target())
		require.True(tgt.Attached())
	})

	t.Run("should reject already attached block", func(t *testing.T) {
		require := require.New(t)

		wave := newWaveBlock(t, reg, "SPEC", []float64{1, 2})
		m1, m2 := NewMaster(), NewMaster()
		require.NoError(m1.Attach(wave))
		err := m2.Attach(wave)
		require.ErrorIs(err, ErrReferenceError)
		require.Equal(0, m2.BlockCount())
	})

	t.Run("should reject a second target block", func(t *testing.T) {
		require := require.New(t)

		m := NewMaster()
		first := newTargetBlock(t, reg)
		second := newTargetBlock(t, reg)
		require.NoError(m.Attach(first))
		err := m.Attach(second)
		require.ErrorIs(err, ErrReferenceError)
		require.Same(first, m.Target(), "failed attach must not alter the first target")
		require.False(second.Attached(), "failed attach must not mark the block attached")
		require.Equal(1, m.BlockCount())
	})

	t.Run("should reject duplicate normalized names", func(t *testing.T) {
		require := require.New(t)

		m := NewMaster()
		require.NoError(m.Attach(newWaveBlock(t, reg, "GRAVITY  ft", []float64{1})))
		dup := newWaveBlock(t, reg, " gravity FT ", []float64{1})
		err := m.Attach(dup)
		require.ErrorIs(err, ErrReferenceError)
		require.False(dup.Attached())

		// the same name is free in another master
		require.NoError(NewMaster().Attach(dup))
	})
}

func Test_MasterResolve(t *testing.T) {
	reg := testRegistry(t)

	newCorrBlock := func(t *testing.T, corrname string) *Block {
		b := NewBuilder(reg, oidef.ExtKind_Corr, 1)
		b.Put("corrname", corrname)
		b.Put("iindx", []int32{1})
		b.Put("jindx", []int32{2})
		b.Put("corr", []float64{0.5})
		blk, err := b.Build()
		require.NoError(t, err)
		return blk
	}

	newVisWithCorr := func(t *testing.T, corrname string) *Block {
		b := NewBuilder(reg, oidef.ExtKind_Vis, 1)
		b.Put("insname", "SPEC")
		b.Put("corrname", corrname)
		b.Put("target_id", []int32{10})
		b.Put("visamp", []float64{1, 2}, 1, 2)
		b.Put("flag", []bool{false, false}, 1, 2)
		blk, err := b.Build()
		require.NoError(t, err)
		return blk
	}

	t.Run("should resolve references", func(t *testing.T) {
		require := require.New(t)

		m := NewMaster()
		tgt := newTargetBlock(t, reg)
		arr := newArrayBlock(t, reg, "VLTI")
		wave := newWaveBlock(t, reg, "SPEC", []float64{1, 2})
		corr := newCorrBlock(t, "CAMP")
		vis := newVisBlock(t, reg, "spec", "vlti", []int32{10}, 2)
		visC := newVisWithCorr(t, "CAMP")

		require.NoError(m.Attach(tgt))
		require.NoError(m.Attach(arr))
		require.NoError(m.Attach(wave))
		require.NoError(m.Attach(corr))
		require.NoError(m.Attach(vis))
		require.NoError(m.Attach(visC))

		require.NoError(m.Resolve())
		require.Same(wave, vis.InstrumentRef(), "name matching must be case-insensitive")
		require.Same(arr, vis.ArrayRef())
		require.Nil(vis.CorrRef())
		require.Same(corr, visC.CorrRef())
		require.Nil(visC.ArrayRef())

		t.Run("accessors", func(t *testing.T) {
			got, err := m.Instrument(" spec ")
			require.NoError(err)
			require.Same(wave, got)

			names, err := m.ArrayNames()
			require.NoError(err)
			require.Equal([]string{"VLTI"}, names)

			names, err = m.InstrumentNames()
			require.NoError(err)
			require.Equal([]string{"SPEC"}, names)

			names, err = m.CorrNames()
			require.NoError(err)
			require.Equal([]string{"CAMP"}, names)
		})
	})

	t.Run("missing target block is fatal", func(t *testing.T) {
		require := require.New(t)

		m := NewMaster()
		require.NoError(m.Attach(newWaveBlock(t, reg, "SPEC", []float64{1})))
		require.ErrorIs(m.Resolve(), ErrReferenceError)
	})

	t.Run("missing instrument link is fatal", func(t *testing.T) {
		require := require.New(t)

		m := NewMaster()
		require.NoError(m.Attach(newTargetBlock(t, reg)))
		require.NoError(m.Attach(newVisBlock(t, reg, "MISSING", "", []int32{10}, 2)))
		err := m.Resolve()
		require.ErrorIs(err, ErrReferenceError)
		require.ErrorContains(err, "MISSING")

		t.Run("and must keep the master dirty", func(t *testing.T) {
			_, err := m.InstrumentNames()
			require.ErrorIs(err, ErrReferenceError)
		})
	})

	t.Run("channel count must agree with the instrument", func(t *testing.T) {
		require := require.New(t)

		m := NewMaster()
		require.NoError(m.Attach(newTargetBlock(t, reg)))
		require.NoError(m.Attach(newWaveBlock(t, reg, "SPEC", []float64{1.0e-6, 1.5e-6, 2.0e-6})))
		vis := newVisBlock(t, reg, "SPEC", "", []int32{10}, 2)
		require.NoError(m.Attach(vis))

		err := m.Resolve()
		require.ErrorIs(err, ErrReferenceError)
		require.ErrorContains(err, "channels")
		require.Nil(vis.InstrumentRef())

		t.Run("and selection must fail, not slice out of bounds", func(t *testing.T) {
			_, err := m.SelectWavelengthRange(1.9e-6, 2.1e-6)
			require.ErrorIs(err, ErrReferenceError)
		})
	})

	t.Run("missing array link degrades to a warning", func(t *testing.T) {
		require := require.New(t)

		m := NewMaster()
		require.NoError(m.Attach(newTargetBlock(t, reg)))
		require.NoError(m.Attach(newWaveBlock(t, reg, "SPEC", []float64{1, 2})))
		vis := newVisBlock(t, reg, "SPEC", "MISSING", []int32{10}, 2)
		require.NoError(m.Attach(vis))

		require.NoError(m.Resolve())
		require.Nil(vis.ArrayRef())
	})

	t.Run("missing correlation link degrades to a warning", func(t *testing.T) {
		require := require.New(t)

		m := NewMaster()
		require.NoError(m.Attach(newTargetBlock(t, reg)))
		require.NoError(m.Attach(newWaveBlock(t, reg, "SPEC", []float64{1, 2})))
		vis := newVisWithCorr(t, "MISSING")
		require.NoError(m.Attach(vis))

		require.NoError(m.Resolve())
		require.Nil(vis.CorrRef())
	})

	t.Run("resolve is lazy and idempotent", func(t *testing.T) {
		require := require.New(t)

		m := NewMaster()
		require.NoError(m.Attach(newTargetBlock(t, reg)))
		require.NoError(m.Resolve())
		require.NoError(m.Resolve())

		// new attachment marks the master dirty again
		require.NoError(m.Attach(newWaveBlock(t, reg, "SPEC", []float64{1})))
		require.NoError(m.Resolve())
	})
}
