/*
Package exif decodes the Exif metadata embedded in TIFF and JPEG images.

The decoder takes a complete image as a byte slice and returns the list
of Exif fields found in its image file directories:

	meta, err := exif.Decode(input)
	if err != nil {
		// handle err
	}
	for _, field := range meta.Fields {
		fmt.Printf("%s = %s\n", field.Tag, field.Value)
	}

Fields from the primary image and from the thumbnail are both returned,
distinguished by the Thumbnail flag on each field. Pointer tags to the
Exif, GPS and Interoperability sub-IFDs are followed and their fields
returned in place of the pointers themselves.

The parser is written for untrusted inputs. Every read is bounds
checked against the input, offset arithmetic is performed in 64 bits to
avoid wraparound, IFD chains that could loop are rejected, and the
nesting depth of sub-IFDs is capped. Inputs that violate the format are
rejected with one of the sentinel errors from errors.go, which callers
can test with errors.Is.

Values of unknown types are not discarded: they are retained with their
type, count and position in the input so callers can decode vendor
extensions themselves.
*/
package exif
