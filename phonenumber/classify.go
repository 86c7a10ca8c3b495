package phonenumber

import (
	"github.com/telekit/phonenumber/internal/classify"
	"github.com/telekit/phonenumber/internal/metadata"
)

// region returns the metadata region n's calling code resolves to,
// disambiguating among regions that share a calling code by n's national
// number the same way Format does.
func (n ParsedNumber) region() *metadata.Region {
	store := defaultStore()
	return store.RegionForNumber(defaultCache, n.CountryCode, n.nationalNumberDigits())
}

// IsValid reports whether n matches both the general descriptor and at
// least one service-type descriptor of its resolved region, at one of
// that descriptor's allowed lengths.
func IsValid(n *ParsedNumber) bool {
	if n == nil {
		return false
	}
	return classify.IsValid(defaultCache, n.region(), n.nationalNumberDigits())
}

// IsPossibleNumber runs the cheaper length-only plausibility check, useful
// before committing to the full pattern match IsValid performs. Its
// result is the IsPossible value when n is indeed plausible.
func IsPossibleNumber(n *ParsedNumber) PossibleResult {
	if n == nil {
		return classify.InvalidCountryCode
	}
	return classify.Possible(n.region(), n.nationalNumberDigits())
}

// NumberType classifies n by service (fixed line, mobile, toll-free, ...),
// returning Unknown when n is nil or matches no type descriptor.
func NumberType(n *ParsedNumber) Type {
	if n == nil {
		return Unknown
	}
	return classify.NumberType(defaultCache, n.region(), n.nationalNumberDigits())
}
