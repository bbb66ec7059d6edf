/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 */

package oidef

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_ParseExtKind(t *testing.T) {
	require := require.New(t)

	for k := ExtKind_null + 1; k < ExtKind_FakeLast; k++ {
		require.Equal(k, ParseExtKind(k.Name()), "round trip for %v", k)
	}

	require.Equal(ExtKind_null, ParseExtKind(""))
	require.Equal(ExtKind_null, ParseExtKind("OI_UNKNOWN"))
	require.Equal(ExtKind_null, ParseExtKind("oi_vis"))
}

func Test_ExtKindProps(t *testing.T) {
	require := require.New(t)

	require.Equal("arrname", ExtKind_Array.NameKey())
	require.Equal("insname", ExtKind_Wavelength.NameKey())
	require.Equal("corrname", ExtKind_Corr.NameKey())
	require.Equal("", ExtKind_Target.NameKey())
	require.Equal("", ExtKind_Vis.NameKey())

	for _, k := range []ExtKind{ExtKind_Vis, ExtKind_Vis2, ExtKind_T3, ExtKind_Flux} {
		require.True(k.IsMeasurement(), k.TrimString())
	}
	for _, k := range []ExtKind{ExtKind_Target, ExtKind_Array, ExtKind_Wavelength, ExtKind_Corr, ExtKind_InsPol} {
		require.False(k.IsMeasurement(), k.TrimString())
	}
}

func Test_ExtKindString(t *testing.T) {
	require := require.New(t)

	require.Equal("ExtKind_Wavelength", ExtKind_Wavelength.String())
	require.Equal("Wavelength", ExtKind_Wavelength.TrimString())
	require.Equal("ExtKind(255)", ExtKind(255).String())
}

func Test_DataKindString(t *testing.T) {
	require := require.New(t)

	require.Equal("DataKind_Complex", DataKind_Complex.String())
	require.Equal("Complex", DataKind_Complex.TrimString())
	require.Equal("DataKind(100)", DataKind(100).String())
}

func Test_DataKindByLetter(t *testing.T) {
	tests := []struct {
		letter rune
		want   DataKind
	}{
		{'L', DataKind_Logical},
		{'I', DataKind_Integer},
		{'J', DataKind_Integer},
		{'D', DataKind_Real},
		{'E', DataKind_Real},
		{'C', DataKind_Complex},
		{'A', DataKind_String},
		{'a', DataKind_String},
		{'l', DataKind_Logical},
		{'X', DataKind_null},
		{'0', DataKind_null},
	}
	for _, tt := range tests {
		t.Run(string(tt.letter), func(t *testing.T) {
			require.Equal(t, tt.want, DataKindByLetter(tt.letter))
		})
	}
}
