package iso8583

import "log/slog"

// Options holds every per-Codec and per-call tunable. Callers never
// construct one directly; they compose functional Option values passed to
// New or to an individual Encode/Decode call.
type Options struct {
	TCPLenHeader    bool
	BitmapEncoding  BitmapEncoding
	Formats         FormatRegistry
	FormatStrategy  FormatStrategy
	StaticMeta      []byte
	MTIAllowList    map[string]bool
	DebugLogging    bool
	Logger          *slog.Logger
	CompositeCodecs map[string]CompositeFieldCodec
}

// Option configures a Codec or an individual call.
type Option func(*Options)

// WithTCPLenHeader enables the 2-byte big-endian length prefix that some
// transports place ahead of the message body.
func WithTCPLenHeader(enabled bool) Option {
	return func(o *Options) { o.TCPLenHeader = enabled }
}

// WithBitmapEncoding overrides the wire form of bitmap segments. The
// zero value, BitmapPacked, is already the default.
func WithBitmapEncoding(enc BitmapEncoding) Option {
	return func(o *Options) { o.BitmapEncoding = enc }
}

// WithFormats supplies a per-call FormatRegistry, combined with the
// Codec's base registry per WithFormatStrategy.
func WithFormats(registry FormatRegistry) Option {
	return func(o *Options) { o.Formats = registry }
}

// WithFormatStrategy selects how WithFormats combines with the Codec's
// base registry: FormatMerge (default) layers on top, FormatReplace
// discards the base entirely.
func WithFormatStrategy(strategy FormatStrategy) Option {
	return func(o *Options) { o.FormatStrategy = strategy }
}

// WithStaticMeta prepends a fixed byte sequence (a leading TPDU or private
// header) ahead of the MTI on encode, and strips the same number of bytes
// before decoding the MTI.
func WithStaticMeta(meta []byte) Option {
	return func(o *Options) { o.StaticMeta = meta }
}

// WithMTIAllowList overrides the set of MTIs Encode/Decode accept. An
// empty, non-nil map disables the check entirely.
func WithMTIAllowList(allow map[string]bool) Option {
	return func(o *Options) { o.MTIAllowList = allow }
}

// WithDebugLogging turns on per-field structured logging during
// Encode/Decode, emitted through the configured slog.Logger.
func WithDebugLogging(enabled bool) Option {
	return func(o *Options) { o.DebugLogging = enabled }
}

// WithLogger overrides the slog.Logger used for debug logging. The
// default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) { o.Logger = logger }
}

// WithCompositeCodec registers a CompositeFieldCodec under name, for use
// by DE 120's client-tagged sub-fields. "PPN" is registered by default;
// a caller may override it or add another.
func WithCompositeCodec(name string, codec CompositeFieldCodec) Option {
	return func(o *Options) {
		if o.CompositeCodecs == nil {
			o.CompositeCodecs = map[string]CompositeFieldCodec{}
		}
		o.CompositeCodecs[name] = codec
	}
}

// newOptions builds the base Options for a Codec: TCPLenHeader on, packed
// bitmaps, no static meta, a nil MTI allow-list (New substitutes the
// built-in one), debug logging off.
func newOptions(opts ...Option) *Options {
	o := &Options{
		TCPLenHeader: true,
		Logger:       slog.Default(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
