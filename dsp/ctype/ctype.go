// Package ctype describes the element types a numeric kernel is tested with.
//
// A harness names element types with C type tags ("int16_t", "float"). Parse
// maps such a tag onto the closed Type enumeration, and Info exposes the
// numeric properties of each type (width, signedness, floatness, range).
package ctype

import "math"

// Type identifies a kernel element type.
type Type int

const (
	TypeInvalid Type = iota
	TypeFloat32
	TypeInt8
	TypeInt16
	TypeInt32

	numTypes
)

// Metadata holds the numeric properties of an element type.
type Metadata struct {
	Name   string // canonical C type tag
	Width  int    // bits per element
	Signed bool
	Float  bool
	Min    float64 // smallest finite value for integers, -MaxFloat32 for float32
	Max    float64
}

var metadataTable = [...]Metadata{
	TypeInvalid: {Name: "invalid"},
	TypeFloat32: {Name: "float", Width: 32, Signed: true, Float: true, Min: -math.MaxFloat32, Max: math.MaxFloat32},
	TypeInt8:    {Name: "int8_t", Width: 8, Signed: true, Min: -1 << 7, Max: 1<<7 - 1},
	TypeInt16:   {Name: "int16_t", Width: 16, Signed: true, Min: -1 << 15, Max: 1<<15 - 1},
	TypeInt32:   {Name: "int32_t", Width: 32, Signed: true, Min: -1 << 31, Max: 1<<31 - 1},
}

// Every Type must have a metadata entry; this fails to compile otherwise.
var _ = [1]struct{}{}[int(numTypes)-len(metadataTable)]

var typeByTag = map[string]Type{
	"float":   TypeFloat32,
	"float32": TypeFloat32,
	"int8_t":  TypeInt8,
	"int8":    TypeInt8,
	"int16_t": TypeInt16,
	"int16":   TypeInt16,
	"int32_t": TypeInt32,
	"int32":   TypeInt32,
}

// Parse resolves a C type tag. Unknown tags yield an *UnsupportedTypeError
// carrying the tag verbatim.
func Parse(tag string) (Type, error) {
	if t, ok := typeByTag[tag]; ok {
		return t, nil
	}

	return TypeInvalid, &UnsupportedTypeError{Tag: tag}
}

// MustParse is like Parse but panics on unknown tags.
func MustParse(tag string) Type {
	t, err := Parse(tag)
	if err != nil {
		panic(err)
	}

	return t
}

// Info returns static metadata for t. Invalid types return the zero-width
// "invalid" entry.
func Info(t Type) Metadata {
	if !t.Valid() {
		return metadataTable[TypeInvalid]
	}

	return metadataTable[t]
}

// Valid reports whether t is one of the supported element types.
func (t Type) Valid() bool {
	return t > TypeInvalid && t < numTypes
}

// String returns the canonical C type tag.
func (t Type) String() string {
	return Info(t).Name
}

// All returns the supported types in declaration order.
func All() []Type {
	out := make([]Type, 0, numTypes-1)
	for t := TypeInvalid + 1; t < numTypes; t++ {
		out = append(out, t)
	}

	return out
}
