package exif

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"strings"
)

// A Type is the data type of a field as stored in an IFD entry.
type Type uint16

// Field data types defined by TIFF 6.0 and Exif 2.3
const (
	TypeByte      Type = 1
	TypeAscii     Type = 2
	TypeShort     Type = 3
	TypeLong      Type = 4
	TypeRational  Type = 5
	TypeSByte     Type = 6
	TypeUndefined Type = 7
	TypeSShort    Type = 8
	TypeSLong     Type = 9
	TypeSRational Type = 10
	TypeFloat     Type = 11
	TypeDouble    Type = 12
)

// UnitLen returns the size in bytes of a single component of the type,
// or 0 if the type is not known to this package.
func (t Type) UnitLen() uint32 {
	switch t {
	case TypeByte, TypeAscii, TypeSByte, TypeUndefined:
		return 1
	case TypeShort, TypeSShort:
		return 2
	case TypeLong, TypeSLong, TypeFloat:
		return 4
	case TypeRational, TypeSRational, TypeDouble:
		return 8
	}
	return 0
}

func (t Type) String() string {
	switch t {
	case TypeByte:
		return "BYTE"
	case TypeAscii:
		return "ASCII"
	case TypeShort:
		return "SHORT"
	case TypeLong:
		return "LONG"
	case TypeRational:
		return "RATIONAL"
	case TypeSByte:
		return "SBYTE"
	case TypeUndefined:
		return "UNDEFINED"
	case TypeSShort:
		return "SSHORT"
	case TypeSLong:
		return "SLONG"
	case TypeSRational:
		return "SRATIONAL"
	case TypeFloat:
		return "FLOAT"
	case TypeDouble:
		return "DOUBLE"
	}
	return fmt.Sprintf("TYPE(%d)", uint16(t))
}

// A Rational is an unsigned fraction stored as two LONGs.
type Rational struct {
	Num, Denom uint32
}

// Float64 converts the rational to a float. A zero denominator yields
// an infinity rather than a panic, matching IEEE division.
func (r Rational) Float64() float64 {
	return float64(r.Num) / float64(r.Denom)
}

func (r Rational) String() string {
	return fmt.Sprintf("%d/%d", r.Num, r.Denom)
}

// An SRational is a signed fraction stored as two SLONGs.
type SRational struct {
	Num, Denom int32
}

// Float64 converts the signed rational to a float
func (r SRational) Float64() float64 {
	return float64(r.Num) / float64(r.Denom)
}

func (r SRational) String() string {
	return fmt.Sprintf("%d/%d", r.Num, r.Denom)
}

// A Value is the raw value of a field along with the information
// needed to decode its components. Components are decoded on demand by
// the typed accessors, which all return false when the index is out of
// range or the type does not match.
//
// For values of a type unknown to this package the data is not
// interpreted at all: only the Type, Count and Offset are populated so
// callers can locate and decode the bytes themselves.
type Value struct {
	Type  Type
	Count uint32

	// Offset is the absolute position of the value data in the input
	Offset uint32

	raw   []byte
	order binary.ByteOrder
}

// maximum number of components rendered by String before truncating
const maxRenderComponents = 8

// Bytes returns the undecoded value data. The slice aliases the input
// passed to Decode and must not be modified. It is nil for values of
// unknown type.
func (v Value) Bytes() []byte {
	return v.raw
}

// UInt returns the i-th component of a BYTE, SHORT or LONG value
func (v Value) UInt(i int) (uint32, bool) {
	if i < 0 || uint32(i) >= v.Count || v.raw == nil {
		return 0, false
	}
	switch v.Type {
	case TypeByte:
		return uint32(v.raw[i]), true
	case TypeShort:
		return uint32(v.order.Uint16(v.raw[2*i:])), true
	case TypeLong:
		return v.order.Uint32(v.raw[4*i:]), true
	}
	return 0, false
}

// Int returns the i-th component of a SBYTE, SSHORT or SLONG value
func (v Value) Int(i int) (int32, bool) {
	if i < 0 || uint32(i) >= v.Count || v.raw == nil {
		return 0, false
	}
	switch v.Type {
	case TypeSByte:
		return int32(int8(v.raw[i])), true
	case TypeSShort:
		return int32(int16(v.order.Uint16(v.raw[2*i:]))), true
	case TypeSLong:
		return int32(v.order.Uint32(v.raw[4*i:])), true
	}
	return 0, false
}

// Rational returns the i-th component of a RATIONAL value
func (v Value) Rational(i int) (Rational, bool) {
	if i < 0 || uint32(i) >= v.Count || v.raw == nil || v.Type != TypeRational {
		return Rational{}, false
	}
	return Rational{
		Num:   v.order.Uint32(v.raw[8*i:]),
		Denom: v.order.Uint32(v.raw[8*i+4:]),
	}, true
}

// SRational returns the i-th component of a SRATIONAL value
func (v Value) SRational(i int) (SRational, bool) {
	if i < 0 || uint32(i) >= v.Count || v.raw == nil || v.Type != TypeSRational {
		return SRational{}, false
	}
	return SRational{
		Num:   int32(v.order.Uint32(v.raw[8*i:])),
		Denom: int32(v.order.Uint32(v.raw[8*i+4:])),
	}, true
}

// Float returns the i-th component of a FLOAT or DOUBLE value
func (v Value) Float(i int) (float64, bool) {
	if i < 0 || uint32(i) >= v.Count || v.raw == nil {
		return 0, false
	}
	switch v.Type {
	case TypeFloat:
		return float64(math.Float32frombits(v.order.Uint32(v.raw[4*i:]))), true
	case TypeDouble:
		return math.Float64frombits(v.order.Uint64(v.raw[8*i:])), true
	}
	return 0, false
}

// Ascii returns the component groups of an ASCII value. An Exif ASCII
// value may hold several NUL terminated strings back to back; each
// group is returned without its terminator. The byte slices alias the
// input and must not be modified.
func (v Value) Ascii() [][]byte {
	if v.Type != TypeAscii || v.raw == nil {
		return nil
	}
	groups := bytes.Split(v.raw, []byte{0})
	// the final NUL produces an empty trailing group, drop it
	if len(groups) > 1 && len(groups[len(groups)-1]) == 0 {
		groups = groups[:len(groups)-1]
	}
	return groups
}

func (v Value) String() string {
	switch v.Type {
	case TypeAscii:
		var parts []string
		for _, g := range v.Ascii() {
			parts = append(parts, fmt.Sprintf("%q", g))
		}
		return strings.Join(parts, ", ")
	case TypeByte, TypeShort, TypeLong:
		return renderComponents(int(v.Count), func(i int) string {
			u, _ := v.UInt(i)
			return fmt.Sprintf("%d", u)
		})
	case TypeSByte, TypeSShort, TypeSLong:
		return renderComponents(int(v.Count), func(i int) string {
			n, _ := v.Int(i)
			return fmt.Sprintf("%d", n)
		})
	case TypeRational:
		return renderComponents(int(v.Count), func(i int) string {
			r, _ := v.Rational(i)
			return r.String()
		})
	case TypeSRational:
		return renderComponents(int(v.Count), func(i int) string {
			r, _ := v.SRational(i)
			return r.String()
		})
	case TypeFloat, TypeDouble:
		return renderComponents(int(v.Count), func(i int) string {
			f, _ := v.Float(i)
			return fmt.Sprintf("%g", f)
		})
	case TypeUndefined:
		if uint32(len(v.raw)) > 2*maxRenderComponents {
			return fmt.Sprintf("0x%x...", v.raw[:2*maxRenderComponents])
		}
		return fmt.Sprintf("0x%x", v.raw)
	}
	return fmt.Sprintf("unknown type %d, count %d, offset 0x%x",
		uint16(v.Type), v.Count, v.Offset)
}

func renderComponents(count int, render func(int) string) string {
	n := count
	if n > maxRenderComponents {
		n = maxRenderComponents
	}
	parts := make([]string, 0, n)
	for i := 0; i < n; i++ {
		parts = append(parts, render(i))
	}
	s := strings.Join(parts, ", ")
	if count > maxRenderComponents {
		s += ", ..."
	}
	return s
}
