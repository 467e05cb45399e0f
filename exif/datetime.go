package exif

import (
	"bytes"
	"fmt"
)

// A DateTime is the decoded form of an Exif DateTime ASCII field, such
// as DateTimeOriginal. Such fields hold "YYYY:MM:DD HH:MM:SS" with no
// timezone.
type DateTime struct {
	Year   uint16
	Month  uint8
	Day    uint8
	Hour   uint8
	Minute uint8
	Second uint8
}

// ParseDateTime decodes the ASCII data of a DateTime field. The ranges
// of the numbers are not validated, so 13 may be returned as the
// month. Fields left blank by the camera are reported as a distinct
// error from malformed ones.
func ParseDateTime(data []byte) (DateTime, error) {
	if bytes.Equal(data, []byte("    :  :     :  :  ")) ||
		bytes.Equal(data, []byte("                   ")) {
		return DateTime{}, errDateTimeBlank
	}
	if len(data) < 19 {
		return DateTime{}, errDateTimeTooShort
	}
	if !(data[4] == ':' && data[7] == ':' && data[10] == ' ' &&
		data[13] == ':' && data[16] == ':') {
		return DateTime{}, errDateTimeDelimiter
	}
	var (
		dt  DateTime
		err error
	)
	if dt.Year, err = atou16(data[0:4]); err != nil {
		return DateTime{}, err
	}
	n, err := atou16(data[5:7])
	if err != nil {
		return DateTime{}, err
	}
	dt.Month = uint8(n)
	if n, err = atou16(data[8:10]); err != nil {
		return DateTime{}, err
	}
	dt.Day = uint8(n)
	if n, err = atou16(data[11:13]); err != nil {
		return DateTime{}, err
	}
	dt.Hour = uint8(n)
	if n, err = atou16(data[14:16]); err != nil {
		return DateTime{}, err
	}
	dt.Minute = uint8(n)
	if n, err = atou16(data[17:19]); err != nil {
		return DateTime{}, err
	}
	dt.Second = uint8(n)
	return dt, nil
}

func (dt DateTime) String() string {
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d",
		dt.Year, dt.Month, dt.Day, dt.Hour, dt.Minute, dt.Second)
}

// atou16 converts ASCII digits to a number without the permissiveness
// of strconv: signs, spaces and empty input are all rejected
func atou16(data []byte) (uint16, error) {
	if len(data) == 0 {
		return 0, errNotDigits
	}
	var n uint16
	for _, c := range data {
		if c < '0' || c > '9' {
			return 0, errNotDigits
		}
		n = n*10 + uint16(c-'0')
	}
	return n, nil
}
