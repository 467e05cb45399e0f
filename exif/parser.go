package exif

import (
	"encoding/binary"
)

// A parser gives bounds-checked access to the raw TIFF input in the
// byte order announced by its header. Offsets in TIFF are absolute
// positions from the start of the input, so the parser is addressed by
// offset rather than keeping a cursor. All arithmetic is done in 64
// bits so 32 bit offsets from the file cannot wrap around.
type parser struct {
	input []byte
	order binary.ByteOrder
}

func newParser(input []byte, order binary.ByteOrder) *parser {
	return &parser{input: input, order: order}
}

func (p *parser) len() uint64 {
	return uint64(len(p.input))
}

// has reports whether n bytes can be read at offset
func (p *parser) has(offset, n uint64) bool {
	return offset <= p.len() && p.len()-offset >= n
}

func (p *parser) u16(offset uint64) (uint16, error) {
	if !p.has(offset, 2) {
		return 0, errTruncatedValue
	}
	return p.order.Uint16(p.input[offset : offset+2]), nil
}

func (p *parser) u32(offset uint64) (uint32, error) {
	if !p.has(offset, 4) {
		return 0, errTruncatedValue
	}
	return p.order.Uint32(p.input[offset : offset+4]), nil
}

// bytes returns a view of n bytes of input at offset. The slice
// aliases the input and must not be modified.
func (p *parser) bytes(offset, n uint64) ([]byte, error) {
	if !p.has(offset, n) {
		return nil, errTruncatedValue
	}
	return p.input[offset : offset+n], nil
}
