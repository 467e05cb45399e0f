package exif

import (
	"fmt"
)

// A Context identifies the family of IFD a tag was found in. Tag
// numbers are only unique within a context; 0x0002 is GPSLatitude in a
// GPS IFD and InteroperabilityVersion in an Interoperability IFD.
type Context uint8

const (
	// ContextTIFF covers the 0th and 1st IFDs and their TIFF tags
	ContextTIFF Context = iota
	// ContextExif covers IFDs pointed to by an ExifIFDPointer tag
	ContextExif
	// ContextGPS covers IFDs pointed to by a GPSInfoIFDPointer tag
	ContextGPS
	// ContextInterop covers IFDs pointed to by an InteropIFDPointer tag
	ContextInterop
)

func (c Context) String() string {
	switch c {
	case ContextTIFF:
		return "tiff"
	case ContextExif:
		return "exif"
	case ContextGPS:
		return "gps"
	case ContextInterop:
		return "interop"
	}
	return fmt.Sprintf("context(%d)", uint8(c))
}

// A Tag is a field tag number qualified by the context it was found in.
type Tag struct {
	Context Context
	Number  uint16
}

// pointer tags open a sub-IFD instead of carrying a value
const (
	tagExifIFDPointer    uint16 = 0x8769
	tagGPSInfoIFDPointer uint16 = 0x8825
	tagInteropIFDPointer uint16 = 0xa005
)

// Name returns the name of the tag as defined by Exif 2.3, or an empty
// string for tags unknown to this package.
func (t Tag) Name() string {
	return tagNames[t]
}

func (t Tag) String() string {
	if name := t.Name(); name != "" {
		return name
	}
	return fmt.Sprintf("%s/0x%04x", t.Context, t.Number)
}

var tagNames = map[Tag]string{
	// TIFF primary and thumbnail attributes
	{ContextTIFF, 0x0100}: "ImageWidth",
	{ContextTIFF, 0x0101}: "ImageLength",
	{ContextTIFF, 0x0102}: "BitsPerSample",
	{ContextTIFF, 0x0103}: "Compression",
	{ContextTIFF, 0x0106}: "PhotometricInterpretation",
	{ContextTIFF, 0x010e}: "ImageDescription",
	{ContextTIFF, 0x010f}: "Make",
	{ContextTIFF, 0x0110}: "Model",
	{ContextTIFF, 0x0111}: "StripOffsets",
	{ContextTIFF, 0x0112}: "Orientation",
	{ContextTIFF, 0x0115}: "SamplesPerPixel",
	{ContextTIFF, 0x0116}: "RowsPerStrip",
	{ContextTIFF, 0x0117}: "StripByteCounts",
	{ContextTIFF, 0x011a}: "XResolution",
	{ContextTIFF, 0x011b}: "YResolution",
	{ContextTIFF, 0x011c}: "PlanarConfiguration",
	{ContextTIFF, 0x0128}: "ResolutionUnit",
	{ContextTIFF, 0x012d}: "TransferFunction",
	{ContextTIFF, 0x0131}: "Software",
	{ContextTIFF, 0x0132}: "DateTime",
	{ContextTIFF, 0x013b}: "Artist",
	{ContextTIFF, 0x013e}: "WhitePoint",
	{ContextTIFF, 0x013f}: "PrimaryChromaticities",
	{ContextTIFF, 0x0201}: "JPEGInterchangeFormat",
	{ContextTIFF, 0x0202}: "JPEGInterchangeFormatLength",
	{ContextTIFF, 0x0211}: "YCbCrCoefficients",
	{ContextTIFF, 0x0212}: "YCbCrSubSampling",
	{ContextTIFF, 0x0213}: "YCbCrPositioning",
	{ContextTIFF, 0x0214}: "ReferenceBlackWhite",
	{ContextTIFF, 0x8298}: "Copyright",

	// Exif IFD attributes
	{ContextExif, 0x829a}: "ExposureTime",
	{ContextExif, 0x829d}: "FNumber",
	{ContextExif, 0x8822}: "ExposureProgram",
	{ContextExif, 0x8824}: "SpectralSensitivity",
	{ContextExif, 0x8827}: "PhotographicSensitivity",
	{ContextExif, 0x9000}: "ExifVersion",
	{ContextExif, 0x9003}: "DateTimeOriginal",
	{ContextExif, 0x9004}: "DateTimeDigitized",
	{ContextExif, 0x9101}: "ComponentsConfiguration",
	{ContextExif, 0x9102}: "CompressedBitsPerPixel",
	{ContextExif, 0x9201}: "ShutterSpeedValue",
	{ContextExif, 0x9202}: "ApertureValue",
	{ContextExif, 0x9203}: "BrightnessValue",
	{ContextExif, 0x9204}: "ExposureBiasValue",
	{ContextExif, 0x9205}: "MaxApertureValue",
	{ContextExif, 0x9206}: "SubjectDistance",
	{ContextExif, 0x9207}: "MeteringMode",
	{ContextExif, 0x9208}: "LightSource",
	{ContextExif, 0x9209}: "Flash",
	{ContextExif, 0x920a}: "FocalLength",
	{ContextExif, 0x927c}: "MakerNote",
	{ContextExif, 0x9286}: "UserComment",
	{ContextExif, 0x9290}: "SubSecTime",
	{ContextExif, 0x9291}: "SubSecTimeOriginal",
	{ContextExif, 0x9292}: "SubSecTimeDigitized",
	{ContextExif, 0xa000}: "FlashpixVersion",
	{ContextExif, 0xa001}: "ColorSpace",
	{ContextExif, 0xa002}: "PixelXDimension",
	{ContextExif, 0xa003}: "PixelYDimension",
	{ContextExif, 0xa20e}: "FocalPlaneXResolution",
	{ContextExif, 0xa20f}: "FocalPlaneYResolution",
	{ContextExif, 0xa210}: "FocalPlaneResolutionUnit",
	{ContextExif, 0xa217}: "SensingMethod",
	{ContextExif, 0xa300}: "FileSource",
	{ContextExif, 0xa301}: "SceneType",
	{ContextExif, 0xa401}: "CustomRendered",
	{ContextExif, 0xa402}: "ExposureMode",
	{ContextExif, 0xa403}: "WhiteBalance",
	{ContextExif, 0xa404}: "DigitalZoomRatio",
	{ContextExif, 0xa405}: "FocalLengthIn35mmFilm",
	{ContextExif, 0xa406}: "SceneCaptureType",
	{ContextExif, 0xa420}: "ImageUniqueID",
	{ContextExif, 0xa433}: "LensMake",
	{ContextExif, 0xa434}: "LensModel",

	// GPS IFD attributes
	{ContextGPS, 0x0000}: "GPSVersionID",
	{ContextGPS, 0x0001}: "GPSLatitudeRef",
	{ContextGPS, 0x0002}: "GPSLatitude",
	{ContextGPS, 0x0003}: "GPSLongitudeRef",
	{ContextGPS, 0x0004}: "GPSLongitude",
	{ContextGPS, 0x0005}: "GPSAltitudeRef",
	{ContextGPS, 0x0006}: "GPSAltitude",
	{ContextGPS, 0x0007}: "GPSTimeStamp",
	{ContextGPS, 0x0008}: "GPSSatellites",
	{ContextGPS, 0x0009}: "GPSStatus",
	{ContextGPS, 0x0012}: "GPSMapDatum",
	{ContextGPS, 0x001d}: "GPSDateStamp",

	// Interoperability IFD attributes
	{ContextInterop, 0x0001}: "InteroperabilityIndex",
	{ContextInterop, 0x0002}: "InteroperabilityVersion",
}
