package iso8583

// responseStatusLabels is a compact DE 39 (Response Code) lookup covering
// the codes seen most often in card-network traffic. It is not a
// comprehensive ISO 8583 response-code table — networks vary theirs, and
// a caller needing full coverage supplies its own lookup outside this
// package.
var responseStatusLabels = map[string]string{
	"00": "approved",
	"01": "refer to card issuer",
	"03": "invalid merchant",
	"04": "pickup card",
	"05": "do not honor",
	"12": "invalid transaction",
	"13": "invalid amount",
	"14": "invalid card number",
	"30": "format error",
	"41": "lost card",
	"43": "stolen card",
	"51": "insufficient funds",
	"54": "expired card",
	"55": "incorrect pin",
	"57": "transaction not permitted to cardholder",
	"58": "transaction not permitted to terminal",
	"61": "exceeds withdrawal amount limit",
	"62": "restricted card",
	"65": "exceeds withdrawal frequency limit",
	"75": "allowable number of pin tries exceeded",
	"91": "issuer or switch inoperative",
	"96": "system malfunction",
}

// Status looks up message's field 39 in the built-in response-code table.
// An absent field 39 is reported via unknown_field and an unrecognized code
// via validation_failed, rather than silently returning an empty label.
func Status(message Message) (string, error) {
	code, ok := message["39"]
	if !ok {
		return "", newFieldError("39", KindUnknownField)
	}
	label, ok := responseStatusLabels[code]
	if !ok {
		return "", &FieldError{FieldID: "39", Kind: KindValidationFailed,
			Err: &ValidationError{FieldID: "39", Rule: "known_response_code", Message: "unrecognized response code " + code}}
	}
	return label, nil
}
