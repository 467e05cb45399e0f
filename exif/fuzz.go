//go:build gofuzz
// +build gofuzz

package exif

// Fuzz is a fuzzer for the Exif decoder
func Fuzz(data []byte) int {
	if _, err := Decode(data); err != nil {
		return 0
	}
	return 1
}
