package exif

import (
	"bytes"
)

var (
	jpegSOISig = []byte{0xff, 0xd8}
	// APP1 Exif segments start with this identifier before the TIFF payload
	exifIdentifier = []byte("Exif\x00\x00")
)

// JPEG markers relevant to the segment scan
const (
	jpegMarkerTEM  = 0x01
	jpegMarkerSOI  = 0xd8
	jpegMarkerEOI  = 0xd9
	jpegMarkerSOS  = 0xda
	jpegMarkerAPP1 = 0xe1
	jpegMarkerRST0 = 0xd0
	jpegMarkerRST7 = 0xd7
)

// IsJPEG reports whether the buffer starts with a JPEG SOI marker
func IsJPEG(buf []byte) bool {
	return bytes.HasPrefix(buf, jpegSOISig)
}

// exifFromJPEG walks the JPEG segment chain and returns the TIFF
// payload of the first APP1 Exif segment. The scan stops at SOS since
// Exif data must precede the entropy coded image data; a JPEG without
// an APP1 Exif segment returns ErrNotFound.
func exifFromJPEG(data []byte) ([]byte, error) {
	cursor := uint64(len(jpegSOISig))
	size := uint64(len(data))
	for {
		// a marker is 0xff followed by the marker code, with any number
		// of 0xff fill bytes before it
		if cursor >= size || data[cursor] != 0xff {
			return nil, errJPEGNoMarker
		}
		for cursor < size && data[cursor] == 0xff {
			cursor++
		}
		if cursor >= size {
			return nil, errJPEGTruncated
		}
		marker := data[cursor]
		cursor++

		switch {
		case marker == jpegMarkerSOS, marker == jpegMarkerEOI:
			// image data or end of image: no Exif segment was found
			return nil, ErrNotFound
		case marker == jpegMarkerTEM, marker == jpegMarkerSOI,
			marker >= jpegMarkerRST0 && marker <= jpegMarkerRST7:
			// standalone markers carry no length
			continue
		}

		// every other marker is followed by a 2 byte big endian segment
		// length that includes the length bytes themselves
		if size-cursor < 2 {
			return nil, errJPEGTruncated
		}
		segLen := uint64(data[cursor])<<8 | uint64(data[cursor+1])
		if segLen < 2 || size-cursor < segLen {
			return nil, errJPEGTruncated
		}
		payload := data[cursor+2 : cursor+segLen]
		cursor += segLen

		if marker == jpegMarkerAPP1 && bytes.HasPrefix(payload, exifIdentifier) {
			return payload[len(exifIdentifier):], nil
		}
	}
}
