package iso8583

import "strconv"

// extensionEncode serializes the subfields of msg addressed by prefix+"k"
// (1 <= k <= CompositeWidth) into a self-contained blob: a 64-bit bitmap
// followed by the encoded subfields in ascending k order. This one engine
// serves both DE 127 and DE 127.25, invoked with a different prefix.
func extensionEncode(msg Message, prefix string, registry FormatRegistry, encoding BitmapEncoding) ([]byte, error) {
	out := buildCompositeBitmap(msg, prefix, encoding)
	for k := 1; k <= CompositeWidth; k++ {
		id := prefix + strconv.Itoa(k)
		value, ok := msg[id]
		if !ok {
			continue
		}
		fd, ok := registry.Lookup(id)
		if !ok {
			return nil, newFieldError(id, KindUnknownField)
		}
		encoded, err := encodeField(id, value, fd)
		if err != nil {
			return nil, err
		}
		out = append(out, encoded...)
	}
	return out, nil
}

// extensionDecode is extensionEncode's inverse: it reads the 64-bit bitmap
// then walks it, decoding each set subfield via the registry entry keyed
// prefix+k, and returns the resulting dotted-key subset of Message.
func extensionDecode(data []byte, prefix string, registry FormatRegistry, encoding BitmapEncoding) (Message, error) {
	bits, consumed, err := extractCompositeBitmap(data, encoding)
	if err != nil {
		return nil, err
	}
	rest := data[consumed:]

	out := Message{}
	for k := 1; k <= CompositeWidth; k++ {
		if bits[k-1] == 0 {
			continue
		}
		id := prefix + strconv.Itoa(k)
		fd, ok := registry.Lookup(id)
		if !ok {
			return nil, newFieldError(id, KindUnknownField)
		}
		var value string
		value, rest, err = decodeField(id, rest, &fd)
		if err != nil {
			return nil, err
		}
		out[id] = value
	}
	return out, nil
}

// Encode127 encodes the message's "127.*" (and, if present, "127.25.*")
// subfields into the standalone DE 127 composite blob, without any
// surrounding message framing.
func Encode127(msg Message, registry FormatRegistry, encoding BitmapEncoding) ([]byte, error) {
	working, err := foldDE12725(msg, registry, encoding)
	if err != nil {
		return nil, err
	}
	return extensionEncode(working, "127.", registry, encoding)
}

// Decode127 is Encode127's inverse: it returns the "127.*" keys (and, if
// the inner "127.25" subfield was present, the expanded "127.25.*" keys
// too). "127.25" itself is never a key in the result.
func Decode127(data []byte, registry FormatRegistry, encoding BitmapEncoding) (Message, error) {
	decoded, err := extensionDecode(data, "127.", registry, encoding)
	if err != nil {
		return nil, err
	}
	return expandDE12725(decoded, registry, encoding)
}

// Encode12725 encodes the message's "127.25.*" subfields into the
// standalone DE 127.25 composite blob.
func Encode12725(msg Message, registry FormatRegistry, encoding BitmapEncoding) ([]byte, error) {
	return extensionEncode(msg, "127.25.", registry, encoding)
}

// Decode12725 is Encode12725's inverse.
func Decode12725(data []byte, registry FormatRegistry, encoding BitmapEncoding) (Message, error) {
	return extensionDecode(data, "127.25.", registry, encoding)
}

// foldDE12725 returns a copy of msg with a synthetic "127.25" entry set to
// the encoded DE 127.25 blob, if any "127.25.*" subfield is present. The
// synthetic entry is never returned to a caller; it exists only to let
// extensionEncode("127.") see "127.25" as one of DE 127's own subfields.
func foldDE12725(msg Message, registry FormatRegistry, encoding BitmapEncoding) (Message, error) {
	if !hasAnyKeyWithPrefix(msg, "127.25.") {
		return msg, nil
	}
	blob, err := Encode12725(msg, registry, encoding)
	if err != nil {
		return nil, err
	}
	working := make(Message, len(msg)+1)
	for k, v := range msg {
		working[k] = v
	}
	working["127.25"] = string(blob)
	return working, nil
}

// expandDE12725 recognizes a decoded "127.25" subfield of DE 127 (itself a
// composite blob) and recursively expands it into "127.25.*" keys, merging
// them into decoded and removing the raw "127.25" entry.
func expandDE12725(decoded Message, registry FormatRegistry, encoding BitmapEncoding) (Message, error) {
	blob, ok := decoded["127.25"]
	if !ok {
		return decoded, nil
	}
	delete(decoded, "127.25")
	sub, err := extensionDecode([]byte(blob), "127.25.", registry, encoding)
	if err != nil {
		return nil, err
	}
	for k, v := range sub {
		decoded[k] = v
	}
	return decoded, nil
}
