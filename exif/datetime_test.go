package exif

import (
	"errors"
	"testing"
)

func TestParseDateTime(t *testing.T) {
	dt, err := ParseDateTime([]byte("2016:05:04 03:02:01"))
	if err != nil {
		t.Fatalf("parsing failed: %v", err)
	}
	if dt.Year != 2016 || dt.Month != 5 || dt.Day != 4 ||
		dt.Hour != 3 || dt.Minute != 2 || dt.Second != 1 {
		t.Fatalf("unexpected datetime: %+v", dt)
	}
	if dt.String() != "2016-05-04 03:02:01" {
		t.Fatalf("unexpected rendering: %s", dt)
	}
}

func TestParseDateTimeOutOfRangeKept(t *testing.T) {
	// ranges are not validated, the 13th month passes through
	dt, err := ParseDateTime([]byte("2016:13:04 03:02:01"))
	if err != nil {
		t.Fatalf("parsing failed: %v", err)
	}
	if dt.Month != 13 {
		t.Fatalf("expected month 13, got %d", dt.Month)
	}
}

func TestParseDateTimeInvalid(t *testing.T) {
	testcases := []struct {
		name string
		data []byte
		err  error
	}{
		{"blank with delimiters", []byte("    :  :     :  :  "), errDateTimeBlank},
		{"blank", []byte("                   "), errDateTimeBlank},
		{"too short", []byte("2016:05:04"), errDateTimeTooShort},
		{"bad delimiter", []byte("2016-05-04 03:02:01"), errDateTimeDelimiter},
		{"not a number", []byte("20x6:05:04 03:02:01"), errNotDigits},
		{"empty", []byte(""), errDateTimeTooShort},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseDateTime(tc.data)
			if !errors.Is(err, tc.err) {
				t.Fatalf("expected %q, got %v", tc.err, err)
			}
		})
	}
}
