package sem

import (
	"fmt"
	"strconv"
)

// DataType is the interface for all MommyLang type descriptors.  It is a closed
// set: PrimType, PointerType, ArrayType, and HeapType.
type DataType interface {
	// Repr returns a string representing the data type
	Repr() string

	// CType returns the C spelling of the data type as it appears in a
	// declaration (without the declarator).
	CType() string

	// equals takes in another DataType and returns whether the two data types
	// are identical.
	equals(other DataType) bool
}

// Equals returns whether two data types are identical.
func Equals(a, b DataType) bool {
	return a.equals(b)
}

// -----------------------------------------------------------------------------

// PrimType represents a scalar type.  Its value must be one of the enumerated
// primitive kinds below.
type PrimType int

// Enumeration of primitive types
const (
	PrimInt PrimType = iota
	PrimFloat
	PrimAscii // a single character stored as its integer code
	PrimString
)

func (pt PrimType) equals(other DataType) bool {
	if opt, ok := other.(PrimType); ok {
		return pt == opt
	}

	return false
}

// Repr of a primitive type is its source keyword
func (pt PrimType) Repr() string {
	switch pt {
	case PrimInt:
		return "int"
	case PrimFloat:
		return "float"
	case PrimAscii:
		return "ascii"
	default:
		return "string"
	}
}

// CType of a primitive type.  Text is represented as arrays of character codes
// so `ascii` compiles to `int`.
func (pt PrimType) CType() string {
	switch pt {
	case PrimInt, PrimAscii:
		return "int"
	case PrimFloat:
		return "float"
	default:
		return "char*"
	}
}

// -----------------------------------------------------------------------------

// PointerType is a nullable reference to an integer cell (a `box`).
type PointerType struct{}

func (PointerType) equals(other DataType) bool {
	_, ok := other.(PointerType)
	return ok
}

func (PointerType) Repr() string {
	return "box"
}

func (PointerType) CType() string {
	return "int*"
}

// -----------------------------------------------------------------------------

// SizeUnknown is the length of a heap block whose size was not an integer
// literal at compile time.
const SizeUnknown = -1

// ArrayType is a fixed-size, stack-resident array.
type ArrayType struct {
	Elem PrimType
	Len  int
}

func (at ArrayType) equals(other DataType) bool {
	if oat, ok := other.(ArrayType); ok {
		return at == oat
	}

	return false
}

func (at ArrayType) Repr() string {
	return fmt.Sprintf("group[%d] of %s", at.Len, at.Elem.Repr())
}

func (at ArrayType) CType() string {
	return at.Elem.CType()
}

// HeapType is a dynamically allocated block of elements.
type HeapType struct {
	Elem PrimType

	// Len is the requested length or SizeUnknown.
	Len int
}

func (ht HeapType) equals(other DataType) bool {
	if oht, ok := other.(HeapType); ok {
		return ht == oht
	}

	return false
}

func (ht HeapType) Repr() string {
	if ht.Len == SizeUnknown {
		return fmt.Sprintf("heap[?] of %s", ht.Elem.Repr())
	}

	return fmt.Sprintf("heap[%d] of %s", ht.Len, ht.Elem.Repr())
}

func (ht HeapType) CType() string {
	return ht.Elem.CType() + "*"
}

// -----------------------------------------------------------------------------

// ParsePrimType converts a source type keyword into a primitive type.
func ParsePrimType(kw string) (PrimType, bool) {
	switch kw {
	case "int":
		return PrimInt, true
	case "float":
		return PrimFloat, true
	case "ascii":
		return PrimAscii, true
	case "string":
		return PrimString, true
	}

	return 0, false
}

// ParseScalarType converts a declaration type keyword into a data type.  This
// accepts all primitive keywords plus `box`.
func ParseScalarType(kw string) (DataType, bool) {
	if kw == "box" {
		return PointerType{}, true
	}

	if pt, ok := ParsePrimType(kw); ok {
		return pt, true
	}

	return nil, false
}

// -----------------------------------------------------------------------------

// IsArrayLike returns whether the type is a stack array or heap block.
func IsArrayLike(dt DataType) bool {
	switch dt.(type) {
	case ArrayType, HeapType:
		return true
	}

	return false
}

// IsPointer returns whether the type is a `box`.
func IsPointer(dt DataType) bool {
	_, ok := dt.(PointerType)
	return ok
}

// IsString returns whether the type is the scalar string type.
func IsString(dt DataType) bool {
	pt, ok := dt.(PrimType)
	return ok && pt == PrimString
}

// IsIndexable returns whether the type supports `in <index>` access: arrays,
// heap blocks, strings, and pointers.
func IsIndexable(dt DataType) bool {
	return IsArrayLike(dt) || IsString(dt) || IsPointer(dt)
}

// ElemType returns the type of a single element of an indexable type.  Strings
// index to characters and pointers index to integers.
func ElemType(dt DataType) PrimType {
	switch v := dt.(type) {
	case ArrayType:
		return v.Elem
	case HeapType:
		return v.Elem
	case PrimType:
		if v == PrimString {
			return PrimAscii
		}

		return v
	}

	return PrimInt
}

// KnownLen returns the statically-known length of an array-like type.
func KnownLen(dt DataType) (int, bool) {
	switch v := dt.(type) {
	case ArrayType:
		return v.Len, true
	case HeapType:
		if v.Len != SizeUnknown {
			return v.Len, true
		}
	}

	return 0, false
}

// ParseIndexLiteral returns the value of an integer index literal.
func ParseIndexLiteral(tok string) (int, bool) {
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, false
	}

	return n, true
}
