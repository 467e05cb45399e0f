package exif

// Format names reported in Metadata
const (
	FormatTIFF = "tiff"
	FormatJPEG = "jpeg"
)

// Metadata holds the Exif attributes decoded from an image.
type Metadata struct {
	// Format is the container the Exif data was found in, FormatTIFF
	// or FormatJPEG
	Format string
	// LittleEndian is true when the TIFF bytestream is little endian
	LittleEndian bool
	// Fields are the decoded attributes, primary image first and
	// thumbnail fields after, each in the order they appear in the IFDs
	Fields []Field
}

// Decode parses the Exif metadata of a TIFF or JPEG image. The input
// must be the complete image; the container is detected from its
// leading magic bytes. Inputs in neither container, or JPEGs without
// an APP1 Exif segment, fail with an error callers can test against
// ErrNotFound and the package's sentinel errors using errors.Is.
func Decode(data []byte) (*Metadata, error) {
	if uint64(len(data)) > limitMaxInputSize {
		return nil, errTooBig
	}
	switch {
	case IsTIFF(data):
		fields, littleEndian, err := parseTIFF(data)
		if err != nil {
			return nil, err
		}
		return &Metadata{Format: FormatTIFF, LittleEndian: littleEndian, Fields: fields}, nil
	case IsJPEG(data):
		payload, err := exifFromJPEG(data)
		if err != nil {
			return nil, err
		}
		fields, littleEndian, err := parseTIFF(payload)
		if err != nil {
			return nil, err
		}
		return &Metadata{Format: FormatJPEG, LittleEndian: littleEndian, Fields: fields}, nil
	}
	return nil, errUnknownFormat
}

// DecodeTIFF parses a bare TIFF bytestream, skipping container
// detection. Use it when the Exif payload has already been carved out
// of its container.
func DecodeTIFF(data []byte) (*Metadata, error) {
	if uint64(len(data)) > limitMaxInputSize {
		return nil, errTooBig
	}
	fields, littleEndian, err := parseTIFF(data)
	if err != nil {
		return nil, err
	}
	return &Metadata{Format: FormatTIFF, LittleEndian: littleEndian, Fields: fields}, nil
}

// Get returns the first primary image field with the given tag, or nil
// if the image has no such field
func (m *Metadata) Get(tag Tag) *Field {
	for i := range m.Fields {
		if m.Fields[i].Tag == tag && !m.Fields[i].Thumbnail {
			return &m.Fields[i]
		}
	}
	return nil
}

// DateTime decodes the DateTime attribute of the primary image, if
// present, trying the TIFF DateTime tag first and falling back to the
// Exif DateTimeOriginal
func (m *Metadata) DateTime() (DateTime, bool) {
	for _, tag := range []Tag{
		{ContextTIFF, 0x0132},
		{ContextExif, 0x9003},
	} {
		field := m.Get(tag)
		if field == nil {
			continue
		}
		groups := field.Value.Ascii()
		if len(groups) == 0 {
			continue
		}
		dt, err := ParseDateTime(groups[0])
		if err != nil {
			continue
		}
		return dt, true
	}
	return DateTime{}, false
}
