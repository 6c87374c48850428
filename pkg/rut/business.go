package rut

// BusinessThreshold is the conventional lowest body assigned to
// businesses. Bodies at or above it are business-classified; this is a
// numbering convention, not an official rule.
const BusinessThreshold uint64 = 50_000_000

// IsBusiness reports whether s belongs to the business numbering range.
// It is purely a range comparison on the body — the checksum is not
// consulted. Unparsable input yields a FormatError.
func IsBusiness(s string) (bool, error) {
	r, err := Parse(s)
	if err != nil {
		return false, err
	}
	return r.IsBusiness(), nil
}

// IsBusiness reports whether the body falls in the business numbering
// range.
func (r RUT) IsBusiness() bool {
	return r.body >= BusinessThreshold
}
