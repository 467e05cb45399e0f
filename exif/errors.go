package exif

import (
	"errors"
)

var (
	// the maximum size we'll agree to parse is 100MB, which is already
	// generous for a metadata block. Raw camera TIFFs can be larger, but
	// their Exif directories always fit well below this.
	limitMaxInputSize uint64 = 104857600

	// sub-IFD pointers are not recursively defined by the standard, so a
	// depth of 8 leaves room for every legitimate layout while stopping
	// crafted pointer chains
	limitMaxIFDDepth = 8
)

var (
	// ErrNotFound is returned when an image is well formed but carries
	// no Exif data, such as a JPEG without an APP1 Exif segment
	ErrNotFound = errors.New("no exif data found in image")

	errUnknownFormat       = errors.New("unknown image format, expected tiff or jpeg")
	errTooBig              = errors.New("input exceeds the maximum allowed of 100MB")
	errTruncatedHeader     = errors.New("truncated tiff header")
	errInvalidByteOrder    = errors.New("invalid tiff byte order mark")
	errInvalidMagic        = errors.New("invalid tiff magic number")
	errTruncatedIFDCount   = errors.New("truncated ifd entry count")
	errTruncatedIFD        = errors.New("ifd entries overrun the end of the input")
	errTruncatedNextOffset = errors.New("truncated next ifd offset")
	errInvalidEntryCount   = errors.New("entry count and type length overflow")
	errTruncatedValue      = errors.New("field value overruns the end of the input")
	errUnexpectedNextIFD   = errors.New("unexpected next ifd")
	errIFDTooDeep          = errors.New("sub-ifd nesting exceeds the maximum depth")
	errInvalidPointer      = errors.New("invalid sub-ifd pointer")

	errDateTimeBlank     = errors.New("datetime field is blank")
	errDateTimeTooShort  = errors.New("datetime field is too short")
	errDateTimeDelimiter = errors.New("invalid datetime delimiter")
	errNotDigits         = errors.New("not an ascii number")

	errJPEGTruncated = errors.New("truncated jpeg segment")
	errJPEGNoMarker  = errors.New("expected a jpeg marker")
)
