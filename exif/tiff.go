package exif

import (
	"bytes"
	"encoding/binary"
)

// TIFF header magic numbers [EXIF23 4.5.2]
const (
	tiffByteOrderBE = 0x4d4d
	tiffByteOrderLE = 0x4949
	tiffFortyTwo    = 0x002a
)

var (
	tiffBESig = []byte{0x4d, 0x4d, 0x00, 0x2a}
	tiffLESig = []byte{0x49, 0x49, 0x2a, 0x00}
)

// length in bytes of an IFD entry: tag, type, count, value-or-offset
const ifdEntryLen = 12

// A Field is a single Exif attribute decoded from an IFD.
type Field struct {
	// Tag identifies the attribute and the IFD family it came from
	Tag Tag
	// Thumbnail is false for the primary image and true for the thumbnail
	Thumbnail bool
	// Value holds the decoded attribute value
	Value Value
}

// IsTIFF reports whether the buffer starts with a TIFF header
func IsTIFF(buf []byte) bool {
	return bytes.HasPrefix(buf, tiffBESig) || bytes.HasPrefix(buf, tiffLESig)
}

// parseTIFF decodes the Exif attributes of a TIFF bytestream. It
// returns the decoded fields and whether the data is little endian.
func parseTIFF(data []byte) (fields []Field, littleEndian bool, err error) {
	// check the byte order mark and hand off to the real parser
	if len(data) < 8 {
		return nil, false, errTruncatedHeader
	}
	switch binary.BigEndian.Uint16(data) {
	case tiffByteOrderBE:
		fields, err = parseTIFFOrdered(data, binary.BigEndian)
		return fields, false, err
	case tiffByteOrderLE:
		fields, err = parseTIFFOrdered(data, binary.LittleEndian)
		return fields, true, err
	}
	return nil, false, errInvalidByteOrder
}

func parseTIFFOrdered(data []byte, order binary.ByteOrder) ([]Field, error) {
	p := newParser(data, order)

	// the rest of the header: the number 42 and the 0th IFD offset
	magic, err := p.u16(2)
	if err != nil {
		return nil, errTruncatedHeader
	}
	if magic != tiffFortyTwo {
		return nil, errInvalidMagic
	}
	ifdOffset, err := p.u32(4)
	if err != nil {
		return nil, errTruncatedHeader
	}

	var fields []Field
	err = parseIFD(p, &fields, uint64(ifdOffset), ContextTIFF, false, 0)
	if err != nil {
		return nil, err
	}
	return fields, nil
}

// parseIFD decodes one IFD [EXIF23 4.6.2] and appends its fields.
// Pointer tags open sub-IFDs in their own contexts, and the next IFD
// offset may only be followed once, from the primary TIFF IFD to the
// thumbnail IFD.
func parseIFD(p *parser, fields *[]Field, offset uint64, ctx Context, thumbnail bool, depth int) error {
	if depth > limitMaxIFDDepth {
		return errIFDTooDeep
	}

	// entry count
	if !p.has(offset, 2) {
		return errTruncatedIFDCount
	}
	count, _ := p.u16(offset)
	entries := uint64(count)

	// the entry array. entries*12 cannot overflow: count is 16 bits
	if !p.has(offset+2, entries*ifdEntryLen) {
		return errTruncatedIFD
	}
	for i := uint64(0); i < entries; i++ {
		entryOffset := offset + 2 + i*ifdEntryLen
		tagNum, _ := p.u16(entryOffset)
		typ, _ := p.u16(entryOffset + 2)
		cnt, _ := p.u32(entryOffset + 4)
		valOffsetAt := entryOffset + 8

		val, err := parseValue(p, Type(typ), cnt, valOffsetAt)
		if err != nil {
			return err
		}

		// pointer tags are followed instead of being reported as
		// fields. The contexts they open are not recursively defined,
		// but depth is still capped in case of crafted pointer loops
		tag := Tag{Context: ctx, Number: tagNum}
		var childCtx Context
		switch {
		case ctx == ContextTIFF && tagNum == tagExifIFDPointer:
			childCtx = ContextExif
		case ctx == ContextTIFF && tagNum == tagGPSInfoIFDPointer:
			childCtx = ContextGPS
		case ctx == ContextExif && tagNum == tagInteropIFDPointer:
			childCtx = ContextInterop
		default:
			*fields = append(*fields, Field{Tag: tag, Thumbnail: thumbnail, Value: val})
			continue
		}
		// a pointer field has type LONG and count 1, so the IFD offset
		// is embedded in the value element of the entry
		childOffset, ok := val.UInt(0)
		if !ok {
			return errInvalidPointer
		}
		err = parseIFD(p, fields, uint64(childOffset), childCtx, thumbnail, depth+1)
		if err != nil {
			return err
		}
	}

	// offset to the next IFD
	nextAt := offset + 2 + entries*ifdEntryLen
	if !p.has(nextAt, 4) {
		return errTruncatedNextOffset
	}
	nextOffset, _ := p.u32(nextAt)
	if nextOffset == 0 {
		return nil
	}
	if ctx != ContextTIFF || thumbnail {
		return errUnexpectedNextIFD
	}
	return parseIFD(p, fields, uint64(nextOffset), ContextTIFF, true, depth)
}

// parseValue decodes the value element of an IFD entry located at
// valOffsetAt. Values longer than 4 bytes are stored elsewhere in the
// input and the element holds their absolute offset instead.
func parseValue(p *parser, typ Type, cnt uint32, valOffsetAt uint64) (Value, error) {
	unitLen := uint64(typ.UnitLen())
	if unitLen == 0 {
		// unknown type: keep the location so callers can decode it
		return Value{Type: typ, Count: cnt, Offset: uint32(valOffsetAt)}, nil
	}
	valLen := unitLen * uint64(cnt)
	if valLen > p.len() {
		return Value{}, errInvalidEntryCount
	}

	dataOffset := valOffsetAt
	if valLen > 4 {
		outOffset, err := p.u32(valOffsetAt)
		if err != nil {
			return Value{}, err
		}
		dataOffset = uint64(outOffset)
	}
	raw, err := p.bytes(dataOffset, valLen)
	if err != nil {
		return Value{}, errTruncatedValue
	}
	return Value{
		Type:   typ,
		Count:  cnt,
		Offset: uint32(dataOffset),
		raw:    raw,
		order:  p.order,
	}, nil
}
