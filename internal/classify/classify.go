// Package classify turns a region's metadata plus a national significant
// number into a possibility verdict, a validity verdict, or a type tag.
package classify

import (
	"github.com/telekit/phonenumber/internal/metadata"
	"github.com/telekit/phonenumber/internal/regexcache"
)

// PossibleResult is the outcome of a length-only plausibility check.
type PossibleResult int

const (
	IsPossible PossibleResult = iota
	IsPossibleLocalOnly
	InvalidCountryCode
	TooShort
	TooLong
	InvalidLength
)

func (p PossibleResult) String() string {
	switch p {
	case IsPossible:
		return "IS_POSSIBLE"
	case IsPossibleLocalOnly:
		return "IS_POSSIBLE_LOCAL_ONLY"
	case InvalidCountryCode:
		return "INVALID_COUNTRY_CODE"
	case TooShort:
		return "TOO_SHORT"
	case TooLong:
		return "TOO_LONG"
	default:
		return "INVALID_LENGTH"
	}
}

// Possible compares len(nsn) against region's general descriptor length
// set. region being nil means the calling code was not recognized.
func Possible(region *metadata.Region, nsn string) PossibleResult {
	if region == nil {
		return InvalidCountryCode
	}

	n := len(nsn)
	desc := region.GeneralDesc
	if desc.NationalOnlyAllowsLength(n) {
		return IsPossible
	}
	if desc.LocalOnlyAllowsLength(n) {
		return IsPossibleLocalOnly
	}

	min, max := -1, -1
	for _, l := range append(append([]int{}, desc.Lengths...), desc.LocalOnlyLengths...) {
		if min == -1 || l < min {
			min = l
		}
		if l > max {
			max = l
		}
	}
	switch {
	case min == -1:
		return InvalidLength
	case n < min:
		return TooShort
	case n > max:
		return TooLong
	default:
		return InvalidLength
	}
}

// IsValid requires the number be possible (nationally, not local-only),
// match the region's general descriptor pattern in full, and match at
// least one type descriptor at one of its allowed lengths.
func IsValid(cache *regexcache.Cache, region *metadata.Region, nsn string) bool {
	if region == nil {
		return false
	}
	if Possible(region, nsn) != IsPossible {
		return false
	}
	if !cache.MatchFull(region.GeneralDesc.Pattern, nsn) {
		return false
	}
	for _, t := range metadata.ClassifyOrder() {
		desc := region.TypeDesc(t)
		if desc.Empty() {
			continue
		}
		if desc.NationalOnlyAllowsLength(len(nsn)) && cache.MatchFull(desc.Pattern, nsn) {
			return true
		}
	}
	return false
}

// NumberType returns the first type, in metadata.ClassifyOrder's fixed
// priority order, whose descriptor matches nsn at an allowed length. When both
// FixedLine and Mobile match, it returns FixedLineOrMobile rather than
// whichever happened to be checked first.
func NumberType(cache *regexcache.Cache, region *metadata.Region, nsn string) metadata.Type {
	if region == nil {
		return metadata.Unknown
	}

	fixedMatches := typeMatches(cache, region, metadata.FixedLine, nsn)
	mobileMatches := typeMatches(cache, region, metadata.Mobile, nsn)

	for _, t := range metadata.ClassifyOrder() {
		switch t {
		case metadata.FixedLine:
			if fixedMatches && mobileMatches {
				return metadata.FixedLineOrMobile
			}
			if fixedMatches {
				return metadata.FixedLine
			}
		case metadata.Mobile:
			if mobileMatches {
				return metadata.Mobile
			}
		default:
			if typeMatches(cache, region, t, nsn) {
				return t
			}
		}
	}
	return metadata.Unknown
}

func typeMatches(cache *regexcache.Cache, region *metadata.Region, t metadata.Type, nsn string) bool {
	desc := region.TypeDesc(t)
	if desc.Empty() {
		return false
	}
	if !desc.AllowsLength(len(nsn)) {
		return false
	}
	return cache.MatchFull(desc.Pattern, nsn)
}
