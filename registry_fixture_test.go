package iso8583

// This file provides a FormatRegistry fixture, covering the DE 2-128
// range plus DE 120/127/127.25 sub-fields, for this package's own tests.
// It ships nowhere outside the test binary — formats.go's own doc comment
// states the codec never carries a package-level default registry.

func testRegistry() FormatRegistry {
	r := FormatRegistry{
		"2":  {ContentType: ContentNumeric, LenType: LenLLVAR, MaxLen: 19},
		"3":  {ContentType: ContentNumeric, LenType: LenFixed, MaxLen: 6, Padding: &Padding{Direction: DirectionLeft, Char: '0'}},
		"4":  {ContentType: ContentNumeric, LenType: LenFixed, MaxLen: 12, Padding: &Padding{Direction: DirectionLeft, Char: '0'}},
		"5":  {ContentType: ContentNumeric, LenType: LenFixed, MaxLen: 12, Padding: &Padding{Direction: DirectionLeft, Char: '0'}},
		"6":  {ContentType: ContentNumeric, LenType: LenFixed, MaxLen: 12, Padding: &Padding{Direction: DirectionLeft, Char: '0'}},
		"7":  {ContentType: ContentNumeric, LenType: LenFixed, MaxLen: 10, Padding: &Padding{Direction: DirectionLeft, Char: '0'}},
		"8":  {ContentType: ContentNumeric, LenType: LenFixed, MaxLen: 8, Padding: &Padding{Direction: DirectionLeft, Char: '0'}},
		"11": {ContentType: ContentNumeric, LenType: LenFixed, MaxLen: 6, Padding: &Padding{Direction: DirectionLeft, Char: '0'}},
		"12": {ContentType: ContentNumeric, LenType: LenFixed, MaxLen: 6, Padding: &Padding{Direction: DirectionLeft, Char: '0'}},
		"13": {ContentType: ContentNumeric, LenType: LenFixed, MaxLen: 4, Padding: &Padding{Direction: DirectionLeft, Char: '0'}},
		"18": {ContentType: ContentNumeric, LenType: LenFixed, MaxLen: 4, Padding: &Padding{Direction: DirectionLeft, Char: '0'}},
		"22": {ContentType: ContentNumeric, LenType: LenFixed, MaxLen: 3, Padding: &Padding{Direction: DirectionLeft, Char: '0'}},
		"25": {ContentType: ContentNumeric, LenType: LenFixed, MaxLen: 2, Padding: &Padding{Direction: DirectionLeft, Char: '0'}},
		"26": {ContentType: ContentNumeric, LenType: LenFixed, MaxLen: 2, Padding: &Padding{Direction: DirectionLeft, Char: '0'}},
		"32": {ContentType: ContentNumeric, LenType: LenLLVAR, MaxLen: 11},
		"37": {ContentType: ContentAlphanumericSpec, LenType: LenFixed, MaxLen: 12, Padding: &Padding{Direction: DirectionRight, Char: ' '}},
		"38": {ContentType: ContentAlphanumericSpec, LenType: LenFixed, MaxLen: 6, Padding: &Padding{Direction: DirectionRight, Char: ' '}},
		"39": {ContentType: ContentAlphanumericSpec, LenType: LenFixed, MaxLen: 2},
		"40": {ContentType: ContentAlphanumericSpec, LenType: LenFixed, MaxLen: 3},
		"41": {ContentType: ContentAlphanumericSpec, LenType: LenFixed, MaxLen: 8, Padding: &Padding{Direction: DirectionRight, Char: ' '}},
		"42": {ContentType: ContentAlphanumericSpec, LenType: LenFixed, MaxLen: 15, Padding: &Padding{Direction: DirectionRight, Char: ' '}},
		"43": {ContentType: ContentAlphanumericSpec, LenType: LenFixed, MaxLen: 40, Padding: &Padding{Direction: DirectionRight, Char: ' '}},
		"47": {ContentType: ContentAlphanumericSpec, LenType: LenLLLVAR, MaxLen: 999},
		"48": {ContentType: ContentAlphanumericSpec, LenType: LenLLLVAR, MaxLen: 999},
		"49": {ContentType: ContentAlphanumericSpec, LenType: LenFixed, MaxLen: 3},
		"52": {ContentType: ContentBinary, LenType: LenFixed, MaxLen: 16},
		"55": {ContentType: ContentBinary, LenType: LenLLLVAR, MaxLen: 999},
		"64": {ContentType: ContentBinary, LenType: LenFixed, MaxLen: 8},
		"70": {ContentType: ContentNumeric, LenType: LenFixed, MaxLen: 3, Padding: &Padding{Direction: DirectionLeft, Char: '0'}},
		"90": {ContentType: ContentNumeric, LenType: LenFixed, MaxLen: 42, Padding: &Padding{Direction: DirectionLeft, Char: '0'}},

		"100": {ContentType: ContentNumeric, LenType: LenLLVAR, MaxLen: 11},
		"103": {ContentType: ContentAlphanumericSpec, LenType: LenLLVAR, MaxLen: 28},
		"104": {ContentType: ContentAlphanumericSpec, LenType: LenLLLVAR, MaxLen: 100},
		"128": {ContentType: ContentBinary, LenType: LenFixed, MaxLen: 8},

		"120": {ContentType: ContentAlphanumericSpec, LenType: LenLLLVAR, MaxLen: 999},
		"127": {ContentType: ContentAlphanumericSpec, LenType: LenLLLVAR, MaxLen: 999},

		"120.1":  {ContentType: ContentNumeric, LenType: LenLLVAR, MaxLen: 2},
		"120.45": {ContentType: ContentAlphanumericSpec, LenType: LenLLVAR, MaxLen: 40},
		"120.46": {ContentType: ContentAlphanumericSpec, LenType: LenLLVAR, MaxLen: 40},
		"120.47": {ContentType: ContentAlphanumericSpec, LenType: LenLLVAR, MaxLen: 99},
		"120.50": {ContentType: ContentAlphanumericSpec, LenType: LenLLVAR, MaxLen: 40},
		"120.56": {ContentType: ContentAlphanumericSpec, LenType: LenLLVAR, MaxLen: 3},
		"120.62": {ContentType: ContentAlphanumericSpec, LenType: LenLLVAR, MaxLen: 34},
		"120.70": {ContentType: ContentAlphanumericSpec, LenType: LenLLVAR, MaxLen: 99},
		"120.71": {ContentType: ContentAlphanumericSpec, LenType: LenLLVAR, MaxLen: 11},
		"120.72": {ContentType: ContentAlphanumericSpec, LenType: LenLLVAR, MaxLen: 99},
		"120.73": {ContentType: ContentAlphanumericSpec, LenType: LenLLVAR, MaxLen: 11},
		"120.74": {ContentType: ContentAlphanumericSpec, LenType: LenLLVAR, MaxLen: 40},
		"120.75": {ContentType: ContentAlphanumericSpec, LenType: LenLLVAR, MaxLen: 35},

		"127.1": {ContentType: ContentNumeric, LenType: LenLLVAR, MaxLen: 15},
		"127.2": {ContentType: ContentAlphanumericSpec, LenType: LenLLVAR, MaxLen: 35},

		"127.25":    {ContentType: ContentAlphanumericSpec, LenType: LenLLLVAR, MaxLen: 999},
		"127.25.1":  {ContentType: ContentNumeric, LenType: LenLLVAR, MaxLen: 10},
		"127.25.2":  {ContentType: ContentAlphanumericSpec, LenType: LenLLVAR, MaxLen: 35},
	}
	return r
}
