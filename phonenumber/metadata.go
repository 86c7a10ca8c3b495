package phonenumber

import (
	"github.com/telekit/phonenumber/internal/normalize"
)

// CountryCodeForRegion returns the calling code assigned to id, and
// whether id is known to the underlying metadata corpus.
func CountryCodeForRegion(id RegionID) (int, bool) {
	return defaultStore().CallingCodeForRegion(id)
}

// RegionCodeForNumber returns the region n's calling code and national
// number resolve to, disambiguating regions that share a calling code by
// leading-digit anchors the same way Format does. It returns false if n is
// nil or its calling code is unknown to the corpus.
func RegionCodeForNumber(n *ParsedNumber) (RegionID, bool) {
	if n == nil {
		return "", false
	}
	r := n.region()
	if r == nil {
		return "", false
	}
	return r.ID, true
}

// MetadataVersion returns an identifier for the dialing-plan snapshot the
// package's default metadata corpus was built from.
func MetadataVersion() string {
	return defaultStore().Version()
}

// ExtractPossibleNumber trims input down to the substring that looks like
// it could be a phone number: it finds the first '+' or digit and cuts
// off any trailing annotation starting at a closing bracket with no
// matching open one or at a '#' or ';' marker, without checking calling
// codes or national-number length. Letters are allowed in the body, so
// trailing words are kept. It returns an error if fewer than two digits
// are found, or if a disallowed code point appears in the body.
func ExtractPossibleNumber(input string) (string, error) {
	return normalize.ExtractPossibleNumber(input)
}
