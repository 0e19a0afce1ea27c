package iso8583

// FormatRegistry maps a dotted field-id string to the descriptor that
// governs how that field is encoded and decoded. The codec never ships a
// package-level default registry; callers always supply one.
type FormatRegistry map[string]FormatDescriptor

// Lookup returns the descriptor for id and whether one was registered.
func (r FormatRegistry) Lookup(id string) (FormatDescriptor, bool) {
	fd, ok := r[id]
	return fd, ok
}

// Merge returns a new registry containing every entry of base, overwritten
// by any same-key entry in override.
func (r FormatRegistry) Merge(override FormatRegistry) FormatRegistry {
	out := make(FormatRegistry, len(r)+len(override))
	for k, v := range r {
		out[k] = v
	}
	for k, v := range override {
		out[k] = v
	}
	return out
}
