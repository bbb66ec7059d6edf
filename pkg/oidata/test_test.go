/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 */

package oidata

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voedger/oifits/pkg/oidef"
)

// Compact table definitions for tests. The standard tables (pkg/oidef
// defs/) carry too many mandatory fields to be convenient here.

const (
	testTargetDef = `
OI_REVN    I      revision number
----------------
TARGET_ID  I(1)   index number of target
TARGET     A(16)  target name
RAEP0      D(1)   right ascension [deg]
`

	testArrayDef = `
OI_REVN    I      revision number
ARRNAME    A      array name
----------------
STA_INDEX  I(1)   station index
STA_NAME   A(16)  station name
STAXYZ     D(3)   station coordinates [m]
`

	testWaveDef = `
OI_REVN    I      revision number
INSNAME    A      detector name
----------------
EFF_WAVE   E(W)   effective wavelength of channel [m]
EFF_BAND   ?E(W)  effective bandpass of channel [m]
`

	testVisDef = `
OI_REVN    I      revision number
INSNAME    A      instrument name
ARRNAME    ?A     array name
CORRNAME   ?A     correlation name
----------------
TARGET_ID  I(1)   target number
VISAMP     D(W)   visibility amplitude
FLAG       L(W)   flag
STA_INDEX  ?I(2)  station numbers
VISREFMAP  ?L(W,W) reference channel matrix
`

	testCorrDef = `
OI_REVN    I      revision number
CORRNAME   A      correlation name
----------------
IINDX      J(1)   first index
JINDX      J(1)   second index
CORR       D(1)   matrix element
`
)

func testRegistry(t *testing.T) *oidef.Registry {
	require := require.New(t)

	reg := oidef.NewRegistry()
	for _, d := range []struct {
		name string
		def  string
	}{
		{"OI_TARGET", testTargetDef},
		{"OI_ARRAY", testArrayDef},
		{"OI_WAVELENGTH", testWaveDef},
		{"OI_VIS", testVisDef},
		{"OI_CORR", testCorrDef},
	} {
		_, err := reg.Register(d.name, 1, d.def)
		require.NoError(err)
	}
	return reg
}

// two targets: 10 «Star1» and 20 «Star2»
func newTargetBlock(t *testing.T, reg *oidef.Registry) *Block {
	b := NewBuilder(reg, oidef.ExtKind_Target, 1)
	b.Put("target_id", []int32{10, 20})
	b.Put("target", []string{"Star1", "Star2"})
	b.Put("raep0", []float64{14.3, 88.79})
	blk, err := b.Build()
	require.NoError(t, err)
	return blk
}

func newArrayBlock(t *testing.T, reg *oidef.Registry, arrname string) *Block {
	b := NewBuilder(reg, oidef.ExtKind_Array, 1)
	b.Put("arrname", arrname)
	b.Put("sta_index", []int32{1, 2, 3})
	b.Put("sta_name", []string{"A0", "B1", "C2"})
	b.Put("staxyz", make([]float64, 9), 3, 3)
	blk, err := b.Build()
	require.NoError(t, err)
	return blk
}

func newWaveBlock(t *testing.T, reg *oidef.Registry, insname string, wl []float64) *Block {
	b := NewBuilder(reg, oidef.ExtKind_Wavelength, 1)
	b.Put("insname", insname)
	b.Put("eff_wave", wl)
	blk, err := b.Build()
	require.NoError(t, err)
	return blk
}

// one rank-2 visibility block: len(targetIDs) rows × nchan channels
func newVisBlock(t *testing.T, reg *oidef.Registry, insname, arrname string, targetIDs []int32, nchan int) *Block {
	nrows := len(targetIDs)

	amp := make([]float64, nrows*nchan)
	for i := range amp {
		amp[i] = float64(i)
	}

	b := NewBuilder(reg, oidef.ExtKind_Vis, 1)
	b.Put("insname", insname)
	if arrname != "" {
		b.Put("arrname", arrname)
	}
	b.Put("target_id", targetIDs)
	b.Put("visamp", amp, nrows, nchan)
	b.Put("flag", make([]bool, nrows*nchan), nrows, nchan)
	blk, err := b.Build()
	require.NoError(t, err)
	return blk
}
