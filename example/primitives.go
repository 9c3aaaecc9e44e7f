package example

import (
	"iter"
	"unsafe"
)

// Signed is the set of signed integer types.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is the set of unsigned integer types.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integer is the set of all integer types.
type Integer interface {
	Signed | Unsigned
}

// Float is the set of floating point types.
type Float interface {
	~float32 | ~float64
}

// Bools yields true and false.
func Bools() iter.Seq[bool] {
	return Of(true, false)
}

// Bounds returns the smallest and largest value of T.
func Bounds[T Integer]() (lo, hi T) {
	var zero T
	if zero-1 > zero {
		return zero, ^zero
	}
	top := T(1) << (unsafe.Sizeof(zero)*8 - 1)
	return top, ^top
}

// MinSigned returns the smallest value of T.
func MinSigned[T Signed]() T {
	lo, _ := Bounds[T]()
	return lo
}

// MaxSigned returns the largest value of T.
func MaxSigned[T Signed]() T {
	_, hi := Bounds[T]()
	return hi
}

// MaxUnsigned returns the largest value of T.
func MaxUnsigned[T Unsigned]() T {
	_, hi := Bounds[T]()
	return hi
}

// Ints yields MIN, -1, 0, 1 and MAX of a signed T and 0, 1 and MAX of an
// unsigned one.
func Ints[T Integer]() iter.Seq[T] {
	var zero T
	lo, hi := Bounds[T]()
	if lo < zero {
		return Of(lo, zero-1, zero, zero+1, hi)
	}
	return Of(zero, zero+1, hi)
}

// SignedInts yields MIN, -1, 0, 1 and MAX of T.
func SignedInts[T Signed]() iter.Seq[T] {
	return Ints[T]()
}

// UnsignedInts yields 0, 1 and MAX of T.
func UnsignedInts[T Unsigned]() iter.Seq[T] {
	return Ints[T]()
}

// Floats yields a fixed set of exactly representable values of both signs
// and very different magnitudes.
func Floats[T Float]() iter.Seq[T] {
	return Of[T](3.5, 27, -113.75, 0.0078125, 34359738368, 0, -1)
}

// Chars yields printable, escaped, multi-byte and boundary code points.
func Chars() iter.Seq[rune] {
	return Of('h', 'e', 'l', 'o', '\\', 'ß', ':', '\x00', '\U0010FFFF')
}

// Strings yields the empty string, single characters and short words.
func Strings() iter.Seq[string] {
	return Of("", "h", "e", "l", "o", "\\", "ß", ":", "\x00", "\U0010FFFF", "Hello", "💖")
}

// Units yields the single unit value.
func Units() iter.Seq[struct{}] {
	return Of(struct{}{})
}
