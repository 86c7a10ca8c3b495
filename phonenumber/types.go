// Package phonenumber parses, validates, classifies, and formats
// international telephone numbers against an in-process metadata corpus
// modeled on the structure of Google's libphonenumber project.
package phonenumber

import (
	"github.com/telekit/phonenumber/internal/classify"
	"github.com/telekit/phonenumber/internal/metadata"
	"github.com/telekit/phonenumber/internal/resolver"
)

// RegionID is an ISO-3166-1 alpha-2 code, uppercase, or "001" for a
// non-geographic entity.
type RegionID = metadata.RegionID

// NonGeoRegion is the region identifier used for calling codes that do not
// belong to any single country.
const NonGeoRegion = metadata.NonGeoRegion

// Type classifies the kind of service a number reaches.
type Type = metadata.Type

const (
	Unknown            = metadata.Unknown
	PremiumRate        = metadata.PremiumRate
	TollFree           = metadata.TollFree
	SharedCost         = metadata.SharedCost
	Voip               = metadata.Voip
	PersonalNumber     = metadata.PersonalNumber
	Pager              = metadata.Pager
	Uan                = metadata.Uan
	Voicemail          = metadata.Voicemail
	FixedLine          = metadata.FixedLine
	Mobile             = metadata.Mobile
	FixedLineOrMobile  = metadata.FixedLineOrMobile
	Emergency          = metadata.Emergency
	ShortCode          = metadata.ShortCode
	StandardRate       = metadata.StandardRate
	CarrierSpecific    = metadata.CarrierSpecific
	SmsServices        = metadata.SmsServices
	NoInternationalDialling = metadata.NoInternationalDialling
)

// PossibleResult is the outcome of a length-only plausibility check. Two
// of its values would otherwise collide with identically-named
// ParseErrorKind constants declared in this package, so those two carry a
// "Possible" suffix here instead.
type PossibleResult = classify.PossibleResult

const (
	IsPossible                 = classify.IsPossible
	IsPossibleLocalOnly        = classify.IsPossibleLocalOnly
	InvalidCountryCodePossible = classify.InvalidCountryCode
	TooShort                   = classify.TooShort
	TooLongPossible            = classify.TooLong
	InvalidLength              = classify.InvalidLength
)

// CountryCodeSource tags how a ParsedNumber's calling code was discovered.
type CountryCodeSource = resolver.Source

const (
	FromNumberWithPlusSign    = resolver.FromNumberWithPlusSign
	FromNumberWithIdd         = resolver.FromNumberWithIdd
	FromNumberWithoutPlusSign = resolver.FromNumberWithoutPlusSign
	FromDefaultCountry        = resolver.FromDefaultCountry
)

// ParsedNumber is the immutable result of a successful Parse.
type ParsedNumber struct {
	CountryCode           int
	NationalNumber        uint64
	ItalianLeadingZero    bool
	NumberOfLeadingZeros  int
	Extension             string
	CountryCodeSource     CountryCodeSource
	PreferredCarrierCode  string
}

// ParsedNumberKey is the comparable projection of a ParsedNumber that
// carries its identity: two ParsedNumbers are Equal iff their Keys are ==.
// CountryCodeSource and PreferredCarrierCode record how the number was
// discovered, not what number it is, so they are excluded.
type ParsedNumberKey struct {
	CountryCode          int
	NationalNumber       uint64
	ItalianLeadingZero   bool
	NumberOfLeadingZeros int
	Extension            string
}

// Key returns n's identity projection, suitable as a map key.
func (n ParsedNumber) Key() ParsedNumberKey {
	return ParsedNumberKey{
		CountryCode:          n.CountryCode,
		NationalNumber:       n.NationalNumber,
		ItalianLeadingZero:   n.ItalianLeadingZero,
		NumberOfLeadingZeros: n.NumberOfLeadingZeros,
		Extension:            n.Extension,
	}
}

// Equal reports whether n and other identify the same phone number,
// ignoring how each was discovered or which carrier code was recorded.
func (n ParsedNumber) Equal(other ParsedNumber) bool {
	return n.Key() == other.Key()
}
