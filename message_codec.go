package iso8583

import (
	"log/slog"
	"strconv"
)

// Encode renders message into its wire form. Field "0" carries the MTI;
// "127.*", "127.25.*", and "120.*" dotted keys are folded into their
// respective composites and never appear as bare fields on the wire's
// own bitmap walk keys.
func (c *Codec) Encode(message Message, opts ...Option) ([]byte, error) {
	o := c.resolve(opts...)

	mti, ok := message["0"]
	if !ok {
		return nil, newFieldError("0", KindMTIMissing)
	}
	if err := validateMTI(mti, o.MTIAllowList); err != nil {
		return nil, err
	}

	composites, err := c.buildComposites(message, o)
	if err != nil {
		return nil, err
	}

	out := getWireBuffer()
	defer func() { putWireBuffer(out) }()

	if len(o.StaticMeta) > 0 {
		out = append(out, o.StaticMeta...)
	}
	out = append(out, mti...)
	out = append(out, buildTopLevelBitmap(message, o.BitmapEncoding)...)

	for k := 2; k <= MaxFieldNumber; k++ {
		if k == PrimaryWidth+1 {
			continue // bit 64 (field 65) is the tertiary continuation marker, never a data field
		}
		id := strconv.Itoa(k)
		value, present := composites[id]
		if !present {
			value, present = message[id]
		}
		if !present {
			continue
		}
		fd, ok := o.Formats.Lookup(id)
		if !ok {
			return nil, newFieldError(id, KindUnknownField)
		}
		encoded, err := encodeField(id, value, fd)
		if err != nil {
			return nil, err
		}
		if o.DebugLogging {
			o.Logger.Debug("encoded field", slog.String("field", id), slog.Int("bytes", len(encoded)))
		}
		out = append(out, encoded...)
	}

	body := make([]byte, len(out))
	copy(body, out)

	if o.TCPLenHeader {
		hdr := EncodeTCPHeader(body)
		return append(hdr[:], body...), nil
	}
	return body, nil
}

// buildComposites computes the synthetic "120"/"127" wire values, keyed by
// bare field id, for Encode's field walk to consult ahead of message's own
// keys. Neither key is ever written back into message.
func (c *Codec) buildComposites(message Message, o *Options) (Message, error) {
	out := Message{}

	if hasAnyKeyWithPrefix(message, "127.") {
		blob, err := Encode127(message, o.Formats, o.BitmapEncoding)
		if err != nil {
			return nil, err
		}
		out["127"] = string(blob)
	}

	if hasAnyKeyWithPrefix(message, "120.") {
		codec, ok := o.CompositeCodecs["PPN"]
		if !ok {
			return nil, newFieldError("120", KindUnknownField)
		}
		blob, err := codec.Pack(compositeSubMessage(message, "120"))
		if err != nil {
			return nil, err
		}
		out["120"] = string(blob)
	}

	return out, nil
}

// Decode parses data into a Message. DE 120 and DE 127 (and, recursively,
// DE 127.25) are expanded into their dotted sub-field keys; the bare
// "120"/"127" keys never appear in the result.
func (c *Codec) Decode(data []byte, opts ...Option) (Message, error) {
	o := c.resolve(opts...)

	rest := data
	if o.TCPLenHeader {
		if _, err := ExtractTCPHeader(rest); err != nil {
			return nil, err
		}
		_, r, err := Slice(rest, 0, 2)
		if err != nil {
			return nil, newFieldError("", KindInvalidLength)
		}
		rest = r
	}

	if len(o.StaticMeta) > 0 {
		_, r, err := Slice(rest, 0, len(o.StaticMeta))
		if err != nil {
			return nil, newFieldError("", KindInvalidLength)
		}
		rest = r
	}

	mtiBytes, r, err := Slice(rest, 0, 4)
	if err != nil {
		return nil, newFieldError("0", KindMTIMissing)
	}
	mti := string(mtiBytes)
	if err := validateMTI(mti, o.MTIAllowList); err != nil {
		return nil, err
	}
	rest = r

	bits, consumed, err := extractBitmaps(rest, o.BitmapEncoding)
	if err != nil {
		return nil, err
	}
	rest = rest[consumed:]

	out := Message{"0": mti}
	for c2 := 0; c2 < len(bits); c2++ {
		if c2 == 0 || c2 == PrimaryWidth {
			continue
		}
		if bits[c2] == 0 {
			continue
		}
		fieldNum := c2 + 1
		if fieldNum > MaxFieldNumber {
			break
		}
		id := strconv.Itoa(fieldNum)

		if id == "127" {
			fd, ok := o.Formats.Lookup(id)
			if !ok {
				return nil, newFieldError(id, KindUnknownField)
			}
			raw, r2, derr := decodeField(id, rest, &fd)
			if derr != nil {
				return nil, derr
			}
			rest = r2
			decoded, derr := Decode127([]byte(raw), o.Formats, o.BitmapEncoding)
			if derr != nil {
				return nil, derr
			}
			for k, v := range decoded {
				out[k] = v
			}
			continue
		}

		if id == "120" {
			fd, ok := o.Formats.Lookup(id)
			if !ok {
				return nil, newFieldError(id, KindUnknownField)
			}
			raw, r2, derr := decodeField(id, rest, &fd)
			if derr != nil {
				return nil, derr
			}
			rest = r2
			codec, ok := o.CompositeCodecs["PPN"]
			if !ok {
				return nil, newFieldError(id, KindUnknownField)
			}
			sub, derr := codec.Unpack([]byte(raw))
			if derr != nil {
				return nil, derr
			}
			for k, v := range sub {
				out[k] = v
			}
			continue
		}

		fd, ok := o.Formats.Lookup(id)
		if !ok {
			return nil, newFieldError(id, KindUnknownField)
		}
		var value string
		value, rest, err = decodeField(id, rest, &fd)
		if err != nil {
			return nil, err
		}
		out[id] = value
		if o.DebugLogging {
			o.Logger.Debug("decoded field", slog.String("field", id), slog.String("value", value))
		}
	}

	return out, nil
}

// EncodeField encodes message's fieldID+".*" subfields through the named
// client-tagged composite codec, returning the raw TLV bytes.
func (c *Codec) EncodeField(client, fieldID string, message Message, opts ...Option) ([]byte, error) {
	o := c.resolve(opts...)
	codec, ok := o.CompositeCodecs[client]
	if !ok {
		return nil, newFieldError(fieldID, KindUnknownField)
	}
	return codec.Pack(compositeSubMessage(message, fieldID))
}

// DecodeField is EncodeField's inverse.
func (c *Codec) DecodeField(client, fieldID string, data []byte, opts ...Option) (Message, error) {
	o := c.resolve(opts...)
	codec, ok := o.CompositeCodecs[client]
	if !ok {
		return nil, newFieldError(fieldID, KindUnknownField)
	}
	return codec.Unpack(data)
}

// Valid decodes input (accepting either a Message already in hand or raw
// wire bytes) and reports whether it satisfies the Codec's format
// registry and MTI allow-list, returning the (re-)decoded message on
// success and a nil message with the error otherwise.
func (c *Codec) Valid(input interface{}, opts ...Option) (Message, error) {
	switch v := input.(type) {
	case Message:
		encoded, err := c.Encode(v, opts...)
		if err != nil {
			return nil, err
		}
		return c.Decode(encoded, opts...)
	case []byte:
		return c.Decode(v, opts...)
	default:
		return nil, newFieldError("", KindFormatAmbiguous)
	}
}
