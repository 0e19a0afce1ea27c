package iso8583

import "fmt"

// ErrorKind names a logical failure category, independent of which field
// triggered it. See FieldError for how a kind is paired with context.
type ErrorKind string

const (
	KindMTIMissing             ErrorKind = "mti_missing"
	KindMTIInvalid             ErrorKind = "mti_invalid"
	KindBitmapExtractionFailed ErrorKind = "bitmap_extraction_failed"
	KindInvalidLength          ErrorKind = "invalid_length"
	KindLengthExceeded         ErrorKind = "length_exceeded"
	KindValidationFailed       ErrorKind = "validation_failed"
	KindUnknownField           ErrorKind = "unknown_field"
	KindInvalidCompositeData   ErrorKind = "invalid_composite_data"
	KindFormatAmbiguous        ErrorKind = "format_ambiguous"
)

var (
	ErrMTIMissing             = fmt.Errorf("mti missing")
	ErrMTIInvalid             = fmt.Errorf("mti invalid")
	ErrBitmapExtractionFailed = fmt.Errorf("bitmap extraction failed")
	ErrInvalidLength          = fmt.Errorf("invalid length")
	ErrLengthExceeded         = fmt.Errorf("length exceeded")
	ErrValidationFailed       = fmt.Errorf("validation failed")
	ErrUnknownField           = fmt.Errorf("unknown field")
	ErrInvalidCompositeData   = fmt.Errorf("invalid composite data")
	ErrFormatAmbiguous        = fmt.Errorf("format ambiguous")
)

var kindSentinel = map[ErrorKind]error{
	KindMTIMissing:             ErrMTIMissing,
	KindMTIInvalid:             ErrMTIInvalid,
	KindBitmapExtractionFailed: ErrBitmapExtractionFailed,
	KindInvalidLength:          ErrInvalidLength,
	KindLengthExceeded:         ErrLengthExceeded,
	KindValidationFailed:       ErrValidationFailed,
	KindUnknownField:           ErrUnknownField,
	KindInvalidCompositeData:   ErrInvalidCompositeData,
	KindFormatAmbiguous:        ErrFormatAmbiguous,
}

// FieldError carries an error kind together with the field identifier that
// triggered it, so a caller gets both errors.Is() matching and diagnostic
// context in one value.
type FieldError struct {
	FieldID string
	Kind    ErrorKind
	Err     error
}

func newFieldError(fieldID string, kind ErrorKind) *FieldError {
	return &FieldError{FieldID: fieldID, Kind: kind, Err: kindSentinel[kind]}
}

func (fe *FieldError) Error() string {
	if fe.FieldID == "" {
		return fmt.Sprintf("%s: %v", fe.Kind, fe.Err)
	}
	return fmt.Sprintf("field %s: %s: %v", fe.FieldID, fe.Kind, fe.Err)
}

func (fe *FieldError) Unwrap() error {
	return fe.Err
}

// ValidationError reports why a field's value failed its format's
// validation rule.
type ValidationError struct {
	FieldID string
	Rule    string
	Message string
}

func (ve *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for field %s (%s): %s", ve.FieldID, ve.Rule, ve.Message)
}

func (ve *ValidationError) Unwrap() error {
	return ErrValidationFailed
}

// TLVError reports a DE 120 TLV stream failure, with the offending tag for
// diagnostics.
type TLVError struct {
	Tag string
	Err error
}

func (te *TLVError) Error() string {
	return fmt.Sprintf("tlv tag %q: %v", te.Tag, te.Err)
}

func (te *TLVError) Unwrap() error {
	return te.Err
}
