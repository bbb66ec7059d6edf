/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 */

package oidata

import (
	"math"
	"reflect"

	"golang.org/x/exp/slices"

	"github.com/voedger/oifits/pkg/oidef"
)

// Value is one tagged field value: an elementary data kind plus a rank
// 0–3 payload. Arrays are stored flat in row-major order together with
// their shape; axis 0 of every column value is the row axis.
//
// Canonical element types are bool, int32, float64, complex128 and string.
// Construction widens compatible native inputs (any integer-like input for
// an integer field, any real-like input for a real field, any numeric
// input for a complex field); exact-type slices are kept by reference, not
// copied.
type Value struct {
	kind  oidef.DataKind
	shape []int
	data  any
}

// newValue builds a value of the given kind from native data. For slice
// data the shape defaults to rank 1 over the whole slice; an explicit
// shape must have positive dimensions and cover exactly the slice length.
// Scalar data must carry no shape.
func newValue(dk oidef.DataKind, data any, shape []int) (Value, error) {
	if arr, ok, err := arrayData(dk, data); ok || (err != nil) {
		if err != nil {
			return Value{}, err
		}
		n := reflect.ValueOf(arr).Len()
		if len(shape) == 0 {
			shape = []int{n}
		}
		for _, s := range shape {
			if s < 1 {
				return Value{}, ErrValidation("shape %v has non-positive dimension %d", shape, s)
			}
		}
		if shapeLen(shape) != n {
			return Value{}, ErrValidation("shape %v does not cover %d elements", shape, n)
		}
		return Value{kind: dk, shape: shape, data: arr}, nil
	}

	if len(shape) > 0 {
		return Value{}, ErrValidation("scalar %T value can not carry shape %v", data, shape)
	}
	s, err := scalarData(dk, data)
	if err != nil {
		return Value{}, err
	}
	return Value{kind: dk, data: s}, nil
}

func (v Value) Kind() oidef.DataKind { return v.kind }

func (v Value) Rank() int { return len(v.shape) }

func (v Value) IsScalar() bool { return len(v.shape) == 0 }

// Shape returns a copy of the value shape; empty for scalars.
func (v Value) Shape() []int { return slices.Clone(v.shape) }

// Len returns the length of the given axis.
func (v Value) Len(axis int) int { return v.shape[axis] }

// Data returns the payload: a scalar or the shared flat backing slice.
func (v Value) Data() any { return v.data }

// Scalar accessors. Panic if the value is not a scalar of the matching kind.

func (v Value) Bool() bool { return v.data.(bool) }

func (v Value) Int() int32 { return v.data.(int32) }

func (v Value) Real() float64 { return v.data.(float64) }

func (v Value) Cplx() complex128 { return v.data.(complex128) }

func (v Value) Str() string { return v.data.(string) }

// Flat array accessors. The returned slice is the shared backing storage,
// not a copy. Panic if the value is not an array of the matching kind.

func (v Value) Bools() []bool { return v.data.([]bool) }

func (v Value) Ints() []int32 { return v.data.([]int32) }

func (v Value) Reals() []float64 { return v.data.([]float64) }

func (v Value) Cplxs() []complex128 { return v.data.([]complex128) }

func (v Value) Strs() []string { return v.data.([]string) }

// Equal reports whether two values have the same kind, shape and content.
func (v Value) Equal(o Value) bool {
	return (v.kind == o.kind) && slices.Equal(v.shape, o.shape) && reflect.DeepEqual(v.data, o.data)
}

// SharesData reports whether two array values share backing storage.
func (v Value) SharesData(o Value) bool {
	if v.IsScalar() || o.IsScalar() {
		return false
	}
	a, b := reflect.ValueOf(v.data), reflect.ValueOf(o.data)
	return (a.Len() > 0) && (b.Len() > 0) && (a.Pointer() == b.Pointer())
}

// take returns a new value keeping only the given positions, in order,
// along one axis. The result has fresh backing storage.
func (v Value) take(axis int, idx []int) Value {
	outer, inner := 1, 1
	for _, n := range v.shape[:axis] {
		outer *= n
	}
	for _, n := range v.shape[axis+1:] {
		inner *= n
	}
	size := v.shape[axis]

	var data any
	switch d := v.data.(type) {
	case []bool:
		data = takeFlat(d, outer, size, inner, idx)
	case []int32:
		data = takeFlat(d, outer, size, inner, idx)
	case []float64:
		data = takeFlat(d, outer, size, inner, idx)
	case []complex128:
		data = takeFlat(d, outer, size, inner, idx)
	case []string:
		data = takeFlat(d, outer, size, inner, idx)
	}

	shape := slices.Clone(v.shape)
	shape[axis] = len(idx)
	return Value{kind: v.kind, shape: shape, data: data}
}

func takeFlat[T any](src []T, outer, size, inner int, idx []int) []T {
	dst := make([]T, 0, outer*len(idx)*inner)
	for o := 0; o < outer; o++ {
		base := o * size * inner
		for _, i := range idx {
			dst = append(dst, src[base+i*inner:base+(i+1)*inner]...)
		}
	}
	return dst
}

func shapeLen(shape []int) int {
	n := 1
	for _, s := range shape {
		n *= s
	}
	return n
}

// input widening

type intLike interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32
}

type realLike interface {
	intLike | ~float32 | ~float64
}

func toInt32[T intLike](v T) (int32, error) {
	if (int64(v) > math.MaxInt32) || (int64(v) < math.MinInt32) {
		return 0, ErrValidation("integer value %d overflows int32", int64(v))
	}
	return int32(v), nil
}

func intsToInt32s[T intLike](src []T) ([]int32, error) {
	dst := make([]int32, len(src))
	for i, v := range src {
		n, err := toInt32(v)
		if err != nil {
			return nil, err
		}
		dst[i] = n
	}
	return dst, nil
}

func realsToFloat64s[T realLike](src []T) []float64 {
	dst := make([]float64, len(src))
	for i, v := range src {
		dst[i] = float64(v)
	}
	return dst
}

func realsToComplex128s[T realLike](src []T) []complex128 {
	dst := make([]complex128, len(src))
	for i, v := range src {
		dst[i] = complex(float64(v), 0)
	}
	return dst
}

// arrayData coerces slice input to the canonical flat slice of the kind.
// ok is false when data is not array-like for this kind at all.
func arrayData(dk oidef.DataKind, data any) (arr any, ok bool, err error) {
	conv := func(a any, e error) (any, bool, error) {
		if e != nil {
			return nil, true, e
		}
		return a, true, nil
	}

	switch dk {
	case oidef.DataKind_Logical:
		if d, isArr := data.([]bool); isArr {
			return d, true, nil
		}
	case oidef.DataKind_Integer:
		switch d := data.(type) {
		case []int32:
			return d, true, nil
		case []int8:
			return conv(intsToInt32s(d))
		case []int16:
			return conv(intsToInt32s(d))
		case []int64:
			return conv(intsToInt32s(d))
		case []int:
			return conv(intsToInt32s(d))
		case []uint8:
			return conv(intsToInt32s(d))
		case []uint16:
			return conv(intsToInt32s(d))
		case []uint32:
			return conv(intsToInt32s(d))
		}
	case oidef.DataKind_Real:
		switch d := data.(type) {
		case []float64:
			return d, true, nil
		case []float32:
			return realsToFloat64s(d), true, nil
		case []int8:
			return realsToFloat64s(d), true, nil
		case []int16:
			return realsToFloat64s(d), true, nil
		case []int32:
			return realsToFloat64s(d), true, nil
		case []int64:
			return realsToFloat64s(d), true, nil
		case []int:
			return realsToFloat64s(d), true, nil
		case []uint8:
			return realsToFloat64s(d), true, nil
		case []uint16:
			return realsToFloat64s(d), true, nil
		case []uint32:
			return realsToFloat64s(d), true, nil
		}
	case oidef.DataKind_Complex:
		switch d := data.(type) {
		case []complex128:
			return d, true, nil
		case []complex64:
			dst := make([]complex128, len(d))
			for i, v := range d {
				dst[i] = complex128(v)
			}
			return dst, true, nil
		case []float64:
			return realsToComplex128s(d), true, nil
		case []float32:
			return realsToComplex128s(d), true, nil
		case []int8:
			return realsToComplex128s(d), true, nil
		case []int16:
			return realsToComplex128s(d), true, nil
		case []int32:
			return realsToComplex128s(d), true, nil
		case []int64:
			return realsToComplex128s(d), true, nil
		case []int:
			return realsToComplex128s(d), true, nil
		case []uint8:
			return realsToComplex128s(d), true, nil
		case []uint16:
			return realsToComplex128s(d), true, nil
		case []uint32:
			return realsToComplex128s(d), true, nil
		}
	case oidef.DataKind_String:
		if d, isArr := data.([]string); isArr {
			return d, true, nil
		}
	}
	return nil, false, nil
}

// scalarData coerces scalar input to the canonical scalar of the kind.
func scalarData(dk oidef.DataKind, data any) (any, error) {
	switch dk {
	case oidef.DataKind_Logical:
		if d, ok := data.(bool); ok {
			return d, nil
		}
	case oidef.DataKind_Integer:
		switch d := data.(type) {
		case int32:
			return d, nil
		case int8:
			return toInt32(d)
		case int16:
			return toInt32(d)
		case int64:
			return toInt32(d)
		case int:
			return toInt32(d)
		case uint8:
			return toInt32(d)
		case uint16:
			return toInt32(d)
		case uint32:
			return toInt32(d)
		}
	case oidef.DataKind_Real:
		switch d := data.(type) {
		case float64:
			return d, nil
		case float32:
			return float64(d), nil
		case int8:
			return float64(d), nil
		case int16:
			return float64(d), nil
		case int32:
			return float64(d), nil
		case int64:
			return float64(d), nil
		case int:
			return float64(d), nil
		case uint8:
			return float64(d), nil
		case uint16:
			return float64(d), nil
		case uint32:
			return float64(d), nil
		}
	case oidef.DataKind_Complex:
		switch d := data.(type) {
		case complex128:
			return d, nil
		case complex64:
			return complex128(d), nil
		case float64:
			return complex(d, 0), nil
		case float32:
			return complex(float64(d), 0), nil
		case int8:
			return complex(float64(d), 0), nil
		case int16:
			return complex(float64(d), 0), nil
		case int32:
			return complex(float64(d), 0), nil
		case int64:
			return complex(float64(d), 0), nil
		case int:
			return complex(float64(d), 0), nil
		case uint8:
			return complex(float64(d), 0), nil
		case uint16:
			return complex(float64(d), 0), nil
		case uint32:
			return complex(float64(d), 0), nil
		}
	case oidef.DataKind_String:
		if d, ok := data.(string); ok {
			return d, nil
		}
	}
	return nil, ErrValidation("%T value does not fit %s field", data, dk.TrimString())
}
