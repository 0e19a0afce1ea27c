package iso8583

// defaultMTIAllowList is a compact set of MTIs commonly seen in card
// network traffic. Callers needing a network's full MTI table supply one
// via WithMTIAllowList; this default exists so Encode/Decode work out of
// the box for the common request/response/reversal/network-management
// classes.
var defaultMTIAllowList = map[string]bool{
	"0100": true, "0110": true,
	"0200": true, "0210": true,
	"0220": true, "0230": true,
	"0400": true, "0410": true,
	"0420": true, "0430": true,
	"0800": true, "0810": true,
	"0802": true, "0812": true,
}

// validateMTI checks that mti is exactly 4 numeric digits and, unless
// allowList is empty, present in it.
func validateMTI(mti string, allowList map[string]bool) error {
	if mti == "" {
		return newFieldError("0", KindMTIMissing)
	}
	if len(mti) != 4 {
		return newFieldError("0", KindMTIInvalid)
	}
	for i := 0; i < len(mti); i++ {
		if mti[i] < '0' || mti[i] > '9' {
			return newFieldError("0", KindMTIInvalid)
		}
	}
	if len(allowList) > 0 && !allowList[mti] {
		return newFieldError("0", KindMTIInvalid)
	}
	return nil
}
