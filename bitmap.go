package iso8583

import "strconv"

// segmentBits builds a width-wide 0/1 array from msg's prefix+k keys
// (1 <= k <= width), bit k-1 set iff prefix+k is present.
func segmentBits(msg Message, prefix string, width int) []byte {
	bits := make([]byte, width)
	for k := 1; k <= width; k++ {
		if _, ok := msg[prefix+strconv.Itoa(k)]; ok {
			bits[k-1] = 1
		}
	}
	return bits
}

func bitsToPacked(bits []byte) []byte {
	out := make([]byte, len(bits)/8)
	for i := range out {
		var b byte
		for j := 0; j < 8; j++ {
			b = b<<1 | bits[i*8+j]
		}
		out[i] = b
	}
	return out
}

func bitsToASCIIHex(bits []byte) []byte {
	packed := bitsToPacked(bits)
	out := make([]byte, len(packed)*2)
	encodeHexUpper(out, packed)
	return out
}

// encodeSegment renders a 64-bit segment in the requested wire form.
func encodeSegment(bits []byte, encoding BitmapEncoding) []byte {
	if encoding == BitmapASCIIHex {
		return bitsToASCIIHex(bits)
	}
	return bitsToPacked(bits)
}

// decodeSegment reads one 64-bit segment from the front of wire, returning
// its bits and the number of wire bytes consumed.
func decodeSegment(wire []byte, encoding BitmapEncoding) (bits []byte, consumed int, err error) {
	if encoding == BitmapASCIIHex {
		const need = 16
		if len(wire) < need {
			return nil, 0, newFieldError("", KindBitmapExtractionFailed)
		}
		raw, herr := HexToBytes(string(wire[:need]))
		if herr != nil {
			return nil, 0, newFieldError("", KindBitmapExtractionFailed)
		}
		return IterableBitmap(raw), need, nil
	}
	const need = 8
	if len(wire) < need {
		return nil, 0, newFieldError("", KindBitmapExtractionFailed)
	}
	return IterableBitmap(wire[:need]), need, nil
}

func hasAnyKeyWithPrefix(msg Message, prefix string) bool {
	for k := range msg {
		if len(k) > len(prefix) && k[:len(prefix)] == prefix {
			return true
		}
	}
	return false
}

// buildTopLevelBitmap builds the combined primary+secondary 128-bit
// bitmap. Bit 0 (secondary presence) is always forced; bit 126
// (field 127) is forced when any 127.* subfield is present; bit 119
// (field 120) is forced when any 120.* subfield is present. Tertiary is
// never forced on encode, since this Message model defines no field above
// 128.
func buildTopLevelBitmap(msg Message, encoding BitmapEncoding) []byte {
	combined := make([]byte, MaxFieldNumber)
	for k := 2; k <= MaxFieldNumber; k++ {
		if _, ok := msg[strconv.Itoa(k)]; ok {
			combined[k-1] = 1
		}
	}
	combined[0] = 1
	if hasAnyKeyWithPrefix(msg, "127.") {
		combined[126] = 1
	}
	if hasAnyKeyWithPrefix(msg, "120.") {
		combined[119] = 1
	}
	wire := encodeSegment(combined[:PrimaryWidth], encoding)
	wire = append(wire, encodeSegment(combined[PrimaryWidth:MaxFieldNumber], encoding)...)
	return wire
}

// extractBitmaps reads the primary segment and, if its continuation bit is
// set, the secondary and (if that one's is set too) tertiary segments,
// returning one concatenated bit slice and the total wire bytes consumed.
func extractBitmaps(data []byte, encoding BitmapEncoding) (combined []byte, consumed int, err error) {
	primary, n, err := decodeSegment(data, encoding)
	if err != nil {
		return nil, 0, err
	}
	combined = primary
	consumed = n

	if primary[0] == 1 {
		secondary, n2, err := decodeSegment(data[consumed:], encoding)
		if err != nil {
			return nil, 0, err
		}
		combined = append(combined, secondary...)
		consumed += n2

		if secondary[0] == 1 {
			tertiary, n3, err := decodeSegment(data[consumed:], encoding)
			if err != nil {
				return nil, 0, err
			}
			combined = append(combined, tertiary...)
			consumed += n3
		}
	}
	return combined, consumed, nil
}

// buildCompositeBitmap builds the self-contained 64-bit bitmap for an
// ExtensionCodec carrier (DE 127 or DE 127.25): no bit is reserved or
// forced at this level.
func buildCompositeBitmap(msg Message, prefix string, encoding BitmapEncoding) []byte {
	return encodeSegment(segmentBits(msg, prefix, CompositeWidth), encoding)
}

// extractCompositeBitmap is the composite-carrier counterpart of
// extractBitmaps: exactly one 64-bit segment, no continuation.
func extractCompositeBitmap(data []byte, encoding BitmapEncoding) (bits []byte, consumed int, err error) {
	return decodeSegment(data, encoding)
}
