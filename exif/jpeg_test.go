package exif

import (
	"bytes"
	"errors"
	"testing"
)

// tinyTIFF is a one field big endian TIFF: ImageWidth = 20
var tinyTIFF = []byte("MM\x00\x2a\x00\x00\x00\x08" +
	"\x00\x01\x01\x00\x00\x03\x00\x00\x00\x01\x00\x14\x00\x00\x00\x00\x00\x00")

// buildJPEG wraps the given TIFF payload in a minimal JPEG: SOI, an
// APP0 JFIF segment the scanner must skip, the APP1 Exif segment, and
// the start of scan marker
func buildJPEG(tiff []byte) []byte {
	buf := new(bytes.Buffer)
	buf.Write([]byte{0xff, 0xd8})
	// APP0 with a JFIF stub
	app0 := []byte("JFIF\x00\x01\x02\x00\x00\x01\x00\x01\x00\x00")
	buf.Write([]byte{0xff, 0xe0, byte((len(app0) + 2) >> 8), byte(len(app0) + 2)})
	buf.Write(app0)
	if tiff != nil {
		segLen := len(exifIdentifier) + len(tiff) + 2
		buf.Write([]byte{0xff, 0xe1, byte(segLen >> 8), byte(segLen)})
		buf.Write(exifIdentifier)
		buf.Write(tiff)
	}
	buf.Write([]byte{0xff, 0xda})
	return buf.Bytes()
}

func TestDecodeJPEG(t *testing.T) {
	meta, err := Decode(buildJPEG(tinyTIFF))
	if err != nil {
		t.Fatalf("decoding failed: %v", err)
	}
	if meta.Format != FormatJPEG {
		t.Fatalf("expected format %q, got %q", FormatJPEG, meta.Format)
	}
	if len(meta.Fields) != 1 {
		t.Fatalf("expected 1 field, got %d", len(meta.Fields))
	}
	width := meta.Get(Tag{ContextTIFF, 0x0100})
	if width == nil {
		t.Fatal("ImageWidth field not found")
	}
	if u, ok := width.Value.UInt(0); !ok || u != 20 {
		t.Fatalf("unexpected ImageWidth: %d ok=%v", u, ok)
	}
}

func TestJPEGWithoutExif(t *testing.T) {
	_, err := Decode(buildJPEG(nil))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected %q, got %v", ErrNotFound, err)
	}
}

func TestJPEGFillBytesBeforeMarker(t *testing.T) {
	// extra 0xff fill bytes before the APP1 marker are permitted
	jpeg := buildJPEG(tinyTIFF)
	withFill := append([]byte{0xff, 0xd8, 0xff, 0xff}, jpeg[2:]...)
	if _, err := Decode(withFill); err != nil {
		t.Fatalf("decoding failed: %v", err)
	}
}

func TestMalformedJPEG(t *testing.T) {
	testcases := []struct {
		name string
		data []byte
		err  error
	}{
		{"soi only", []byte{0xff, 0xd8}, errJPEGNoMarker},
		{"garbage after soi", []byte{0xff, 0xd8, 0x00, 0x00}, errJPEGNoMarker},
		{"fill bytes then end", []byte{0xff, 0xd8, 0xff, 0xff}, errJPEGTruncated},
		{"segment without length", []byte{0xff, 0xd8, 0xff, 0xe1}, errJPEGTruncated},
		{"segment length too small", []byte{0xff, 0xd8, 0xff, 0xe1, 0x00, 0x01}, errJPEGTruncated},
		{"segment overruns input", []byte{0xff, 0xd8, 0xff, 0xe1, 0x00, 0x20, 0x41}, errJPEGTruncated},
		{"eoi before exif", []byte{0xff, 0xd8, 0xff, 0xd9}, ErrNotFound},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode(tc.data)
			if !errors.Is(err, tc.err) {
				t.Fatalf("expected %q, got %v", tc.err, err)
			}
		})
	}
}
