package iso8583

import (
	"log/slog"
	"strings"
)

// sensitiveFieldIDs are the field ids masked before Message reaches a
// logger: the PAN and its extended form, both track formats, and PIN
// data.
var sensitiveFieldIDs = map[string]bool{
	"2":  true, // primary account number
	"34": true, // extended primary account number
	"35": true, // track 2 data
	"45": true, // track 1 data
	"52": true, // PIN data
}

// maskValue redacts a sensitive field's value. PAN and extended PAN keep
// their first 6 and last 4 digits, the common truncation format used on
// receipts and logs alike; every other sensitive field is fully redacted
// since it has no safe-to-show substring.
func maskValue(id, value string) string {
	if id == "2" || id == "34" {
		if len(value) <= 10 {
			return strings.Repeat("*", len(value))
		}
		return value[:6] + strings.Repeat("*", len(value)-10) + value[len(value)-4:]
	}
	return strings.Repeat("*", len(value))
}

// LogValue implements slog.LogValuer, letting a Message be passed directly
// to a structured logger without pre-formatting: slog.Info("received",
// slog.Any("message", msg)) logs the MTI and a group of present fields,
// with sensitiveFieldIDs masked.
func (m Message) LogValue() slog.Value {
	mti := m["0"]
	attrs := make([]slog.Attr, 0, 2)
	attrs = append(attrs, slog.String("mti", mti))

	fieldArgs := make([]any, 0, len(m))
	for id, value := range m {
		if id == "0" {
			continue
		}
		if sensitiveFieldIDs[id] {
			value = maskValue(id, value)
		}
		fieldArgs = append(fieldArgs, slog.String(id, value))
	}
	attrs = append(attrs, slog.Group("fields", fieldArgs...))
	return slog.GroupValue(attrs...)
}
