package iso8583

import (
	"encoding/json"
	"strings"
)

// Message is a flat mapping from dotted field-id string to value. Field "0"
// holds the MTI; "127.N" and "127.25.N" address the nested composites; no
// bare "1", "65", "120", or "127" key is ever present.
type Message map[string]string

// ContentType is the wire content family of a field's value.
type ContentType string

const (
	ContentNumeric          ContentType = "n"
	ContentAlpha            ContentType = "a"
	ContentAlphanumeric     ContentType = "an"
	ContentAlphanumericSpec ContentType = "ans"
	ContentBinary           ContentType = "b"
	ContentTrack            ContentType = "z"
	ContentNS               ContentType = "ns"
	ContentANP              ContentType = "anp"
	ContentXN               ContentType = "x+n"
)

// LenType is a field's length class.
type LenType string

const (
	LenFixed      LenType = "fixed"
	LenLLVAR      LenType = "llvar"
	LenLLLVAR     LenType = "lllvar"
	LenLLLLVAR    LenType = "llllvar"
	LenLLLLLLVAR  LenType = "llllllvar"
)

// lenChars returns the number of ASCII-decimal length-prefix digits for a
// variable LenType, i.e. the count of leading 'l's in its name.
func (lt LenType) lenChars() int {
	switch lt {
	case LenLLVAR:
		return 2
	case LenLLLVAR:
		return 3
	case LenLLLLVAR:
		return 4
	case LenLLLLLLVAR:
		return 6
	default:
		return 0
	}
}

func (lt LenType) isVariable() bool {
	return lt != LenFixed && lt != ""
}

// Direction is a padding side.
type Direction string

const (
	DirectionLeft  Direction = "left"
	DirectionRight Direction = "right"
)

// Padding describes how a fixed-length field's value is padded to MaxLen.
type Padding struct {
	Direction Direction
	Char      byte
}

// Validation describes a regex a field's value must match.
type Validation struct {
	Regex string
}

// FormatDescriptor describes how a single field is serialized.
type FormatDescriptor struct {
	ContentType ContentType
	LenType     LenType
	MaxLen      int
	MinLen      int
	Padding     *Padding
	Validation  *Validation
	Label       string
}

// jsonFormatDescriptor mirrors FormatDescriptor for config-file loading: a
// permissive wire shape feeding a strict internal type.
type jsonFormatDescriptor struct {
	ContentType string  `json:"content_type"`
	LenType     string  `json:"len_type"`
	MaxLen      int     `json:"max_len"`
	MinLen      int     `json:"min_len,omitempty"`
	Padding     *struct {
		Direction string `json:"direction"`
		Char      string `json:"char"`
	} `json:"padding,omitempty"`
	Validation *struct {
		Regex string `json:"regex"`
	} `json:"validation,omitempty"`
	Label string `json:"label,omitempty"`
}

func (fd *FormatDescriptor) UnmarshalJSON(data []byte) error {
	var aux jsonFormatDescriptor
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	fd.ContentType = ContentType(strings.ToLower(aux.ContentType))
	fd.LenType = LenType(strings.ToLower(aux.LenType))
	fd.MaxLen = aux.MaxLen
	fd.MinLen = aux.MinLen
	fd.Label = aux.Label
	if aux.Padding != nil && len(aux.Padding.Char) > 0 {
		fd.Padding = &Padding{Direction: Direction(aux.Padding.Direction), Char: aux.Padding.Char[0]}
	}
	if aux.Validation != nil && aux.Validation.Regex != "" {
		fd.Validation = &Validation{Regex: aux.Validation.Regex}
	}
	return nil
}

// BitmapEncoding selects how bitmap segments are rendered on the wire.
type BitmapEncoding int

const (
	// BitmapPacked emits 8 raw bytes per 64-bit segment. This is the
	// default wire encoding.
	BitmapPacked BitmapEncoding = iota
	// BitmapASCIIHex emits 16 uppercase ASCII hex characters per segment.
	BitmapASCIIHex
)

// FormatStrategy selects how a per-call FormatRegistry combines with a
// Codec's base registry.
type FormatStrategy int

const (
	FormatMerge FormatStrategy = iota
	FormatReplace
)

const (
	MaxFieldNumber  = 128
	PrimaryWidth    = 64
	SecondaryWidth  = 64
	TertiaryWidth   = 64
	CompositeWidth  = 64
)
