package phonenumber

import (
	"github.com/telekit/phonenumber/internal/parser"
)

// Parse extracts a phone number from input. defaultRegion supplies the
// calling code and national-dialing conventions to assume when input
// carries neither a leading '+' nor an explicit international dialing
// prefix; pass "" when input is always expected to be '+'-prefixed, or
// when no sensible default exists for the caller.
//
// On failure the returned error is always a *ParseError; callers that care
// which failure occurred should use errors.As.
func Parse(defaultRegion RegionID, input string) (*ParsedNumber, error) {
	res, err := parser.Parse(defaultStore(), defaultCache, defaultRegion, input)
	if err != nil {
		return nil, newParseError(err)
	}
	return &ParsedNumber{
		CountryCode:          res.CallingCode,
		NationalNumber:       res.NationalNumber,
		ItalianLeadingZero:   res.ItalianLeadingZero,
		NumberOfLeadingZeros: res.NumberOfLeadingZeros,
		Extension:            res.Extension,
		CountryCodeSource:    res.CountryCodeSource,
		PreferredCarrierCode: res.PreferredCarrierCode,
	}, nil
}
