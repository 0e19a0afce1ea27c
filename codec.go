package iso8583

// Codec holds the complete configuration for a message dialect: the base
// field-format registry, the accepted MTI set, and the client-tagged
// composite codecs available to DE 120. It is immutable once built by New
// and safe for concurrent use.
type Codec struct {
	formats         FormatRegistry
	mtiAllowList    map[string]bool
	compositeCodecs map[string]CompositeFieldCodec
	base            *Options
}

// New builds a Codec from the given base options. Options passed here
// apply to every Encode/Decode call unless overridden by call-specific
// options of the same kind.
func New(opts ...Option) *Codec {
	o := newOptions(opts...)

	formats := o.Formats
	if formats == nil {
		formats = FormatRegistry{}
	}

	allow := o.MTIAllowList
	if allow == nil {
		allow = defaultMTIAllowList
	}

	codecs := defaultCompositeCodecs()
	for name, codec := range o.CompositeCodecs {
		codecs[name] = codec
	}

	return &Codec{
		formats:         formats,
		mtiAllowList:    allow,
		compositeCodecs: codecs,
		base:            o,
	}
}

// resolve layers call-specific opts on top of c's already-resolved
// defaults. Formats/CompositeCodecs start from the Codec's resolved
// values (not c.base's raw, possibly-nil fields) so a call that supplies
// no override sees exactly what New produced; a call that does supply
// WithFormats combines it per FormatStrategy, and WithCompositeCodec adds
// to a private copy of the registered codecs without mutating c itself.
func (c *Codec) resolve(opts ...Option) *Options {
	merged := *c.base
	merged.Formats = nil
	merged.FormatStrategy = FormatMerge
	merged.MTIAllowList = c.mtiAllowList
	merged.CompositeCodecs = make(map[string]CompositeFieldCodec, len(c.compositeCodecs))
	for name, codec := range c.compositeCodecs {
		merged.CompositeCodecs[name] = codec
	}

	for _, opt := range opts {
		opt(&merged)
	}

	if merged.Formats == nil {
		merged.Formats = c.formats
	} else if merged.FormatStrategy != FormatReplace {
		merged.Formats = c.formats.Merge(merged.Formats)
	}

	return &merged
}
