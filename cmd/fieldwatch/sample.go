package main

import "github.com/fieldwatch-dev/fieldwatch/pkg/observe"

// sampleValues is the demo universe: a legacy-style global structure
// instrumented field by field. Call sites use the fields like plain
// variables; every write is reported under the field's path.
type sampleValues struct {
	// Scalars
	I1 *observe.Value[uint16]
	F1 *observe.Value[float32]
	I2 *observe.Value[int32]
	D1 *observe.Value[float64]

	// Enum-like
	E2 *observe.Value[int]

	// Arrays
	A2 *observe.Array[uint32]

	// Nested group
	S1 *sampleGroup
}

// sampleGroup is a substructure with its own path prefix ("s1").
type sampleGroup struct {
	D1  *observe.Value[float64]
	AF1 *observe.Array[float32]
}

// newSampleValues builds the demo universe against reg. Paths:
// i1, f1, i2, d1, e2, a2, s1.d1, s1.af1.
func newSampleValues(reg *observe.Registry) *sampleValues {
	v := &sampleValues{
		I1: observe.NewValue[uint16](reg, nil, "i1", 0),
		F1: observe.NewValue[float32](reg, nil, "f1", 0),
		I2: observe.NewValue[int32](reg, nil, "i2", 0),
		D1: observe.NewValue(reg, nil, "d1", 0.0),
		E2: observe.NewValue(reg, nil, "e2", 0),
		A2: observe.NewArray[uint32](reg, nil, "a2", 4),
	}

	s1 := observe.NewGroup(reg, nil, "s1")
	v.S1 = &sampleGroup{
		D1:  observe.NewValue(reg, s1, "d1", 1.0),
		AF1: observe.NewArray[float32](reg, s1, "af1", 7),
	}

	return v
}
