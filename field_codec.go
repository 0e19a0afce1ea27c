package iso8583

import (
	"regexp"
	"strconv"
	"sync"
)

// regexCache avoids recompiling a validation pattern on every call.
var (
	regexCacheMu sync.Mutex
	regexCache   = map[string]*regexp.Regexp{}
)

func compiledRegex(pattern string) (*regexp.Regexp, error) {
	regexCacheMu.Lock()
	defer regexCacheMu.Unlock()
	if re, ok := regexCache[pattern]; ok {
		return re, nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	regexCache[pattern] = re
	return re, nil
}

// encodeContent applies content-type conversion to a value: "b" fields are
// stored as hex text and emitted as the raw bytes they represent; every
// other content type is emitted as-is.
func encodeContent(value string, ct ContentType) ([]byte, error) {
	if ct == ContentBinary {
		return HexToBytes(value)
	}
	return []byte(value), nil
}

// decodeContent is encodeContent's inverse.
func decodeContent(raw []byte, ct ContentType) string {
	if ct == ContentBinary {
		return BytesToHex(raw)
	}
	return string(raw)
}

// encodeField encodes a single field's value per its format descriptor.
// fieldID is used only for error context.
func encodeField(fieldID, value string, fd FormatDescriptor) ([]byte, error) {
	if fd.Validation != nil && fd.Validation.Regex != "" {
		re, err := compiledRegex(fd.Validation.Regex)
		if err != nil {
			return nil, &FieldError{FieldID: fieldID, Kind: KindFormatAmbiguous, Err: err}
		}
		if !re.MatchString(value) {
			return nil, &FieldError{FieldID: fieldID, Kind: KindValidationFailed,
				Err: &ValidationError{FieldID: fieldID, Rule: fd.Validation.Regex, Message: "value does not match pattern"}}
		}
	}

	if !fd.LenType.isVariable() && fd.Padding != nil {
		value = PadString(value, fd.Padding.Char, fd.MaxLen, fd.Padding.Direction)
	}

	if byteSize(value, fd.ContentType) > fd.MaxLen {
		return nil, newFieldError(fieldID, KindLengthExceeded)
	}

	content, err := encodeContent(value, fd.ContentType)
	if err != nil {
		return nil, &FieldError{FieldID: fieldID, Kind: KindLengthExceeded, Err: err}
	}

	if !fd.LenType.isVariable() {
		return content, nil
	}

	lenChars := fd.LenType.lenChars()
	prefix := PadString(strconv.Itoa(byteSize(value, fd.ContentType)), '0', lenChars, DirectionLeft)
	return append([]byte(prefix), content...), nil
}

// byteSize is the on-wire size of value for a given content type: half the
// text length for binary/hex content, the text length otherwise.
func byteSize(value string, ct ContentType) int {
	if ct == ContentBinary {
		return len(value) / 2
	}
	return len(value)
}

// decodeField decodes one field from the front of data per its format
// descriptor, returning the decoded value and the unconsumed remainder. A
// nil format leaves the field empty and consumes nothing. Decode always
// looks up a format before calling decodeField, so this path only matters
// for direct callers of the field-level API.
func decodeField(fieldID string, data []byte, fd *FormatDescriptor) (string, []byte, error) {
	if fd == nil {
		return "", data, nil
	}

	if !fd.LenType.isVariable() {
		n := fd.MaxLen
		if fd.ContentType == ContentBinary {
			n = fd.MaxLen / 2
		}
		raw, rest, err := Slice(data, 0, n)
		if err != nil {
			return "", data, newFieldError(fieldID, KindInvalidLength)
		}
		return finishDecode(fieldID, raw, rest, *fd)
	}

	lenChars := fd.LenType.lenChars()
	lenDigits, rest, err := Slice(data, 0, lenChars)
	if err != nil {
		return "", data, newFieldError(fieldID, KindInvalidLength)
	}
	n, err := strconv.Atoi(string(lenDigits))
	if err != nil {
		return "", data, newFieldError(fieldID, KindInvalidLength)
	}
	raw, rest, err := Slice(rest, 0, n)
	if err != nil {
		return "", data, newFieldError(fieldID, KindInvalidLength)
	}
	return finishDecode(fieldID, raw, rest, *fd)
}

func finishDecode(fieldID string, raw, rest []byte, fd FormatDescriptor) (string, []byte, error) {
	value := decodeContent(raw, fd.ContentType)
	if byteSize(value, fd.ContentType) > fd.MaxLen {
		return "", rest, newFieldError(fieldID, KindLengthExceeded)
	}
	if fd.Validation != nil && fd.Validation.Regex != "" {
		re, err := compiledRegex(fd.Validation.Regex)
		if err != nil {
			return "", rest, &FieldError{FieldID: fieldID, Kind: KindFormatAmbiguous, Err: err}
		}
		if !re.MatchString(value) {
			return "", rest, &FieldError{FieldID: fieldID, Kind: KindValidationFailed,
				Err: &ValidationError{FieldID: fieldID, Rule: fd.Validation.Regex, Message: "value does not match pattern"}}
		}
	}
	return value, rest, nil
}
