// Package parser turns free-form user input into a calling code, a
// national significant number, and the handful of auxiliary attributes
// (extension, carrier code, italian leading zero) the formatter and
// classifier packages need downstream. It is the seam where normalize,
// resolver, and classify are combined into one parse.
package parser

import (
	"errors"
	"strconv"
	"strings"
	"unicode"

	"github.com/telekit/phonenumber/internal/classify"
	"github.com/telekit/phonenumber/internal/metadata"
	"github.com/telekit/phonenumber/internal/normalize"
	"github.com/telekit/phonenumber/internal/regexcache"
	"github.com/telekit/phonenumber/internal/resolver"
)

const (
	minNsnLength = 2
	maxNsnLength = 17
)

var (
	// ErrInvalidCountryCode means no recognized calling code could be
	// determined, with or without a default region.
	ErrInvalidCountryCode = errors.New("parser: invalid or missing country code")
	// ErrNotANumber means the input, once extension and punctuation are
	// stripped away, carries no digit or '+' at all.
	ErrNotANumber = errors.New("parser: input does not look like a phone number")
	// ErrTooShortNsn means the candidate's digit run is shorter than two
	// digits, the floor for any national significant number.
	ErrTooShortNsn = errors.New("parser: national number is too short")
	// ErrTooShortAfterIdd means stripping the default region's
	// international dialing prefix left too few digits to carry both a
	// calling code and a national number.
	ErrTooShortAfterIdd = errors.New("parser: too short after stripping international dialing prefix")
	// ErrTooLong means the candidate's digit run exceeds the ceiling any
	// national significant number can reach.
	ErrTooLong = errors.New("parser: national number is too long")
	// ErrInvalidCharacter means a code point that cannot belong to a phone
	// number appears inside the number body.
	ErrInvalidCharacter = errors.New("parser: invalid character in number")
)

// Result is the outcome of a successful Parse.
type Result struct {
	CallingCode          int
	NationalNumber       uint64
	ItalianLeadingZero   bool
	NumberOfLeadingZeros int
	Extension            string
	CountryCodeSource    resolver.Source
	PreferredCarrierCode string
}

// Parse extracts a phone number from input. defaultRegion supplies the
// calling code and national-dialing conventions to assume when input
// carries neither a leading '+' nor an explicit international dialing
// prefix; it may be empty, in which case input must be '+'-prefixed.
func Parse(store *metadata.Store, cache *regexcache.Cache, defaultRegion metadata.RegionID, input string) (Result, error) {
	defaultDesc := store.ForRegion(defaultRegion)

	preferredExtnPrefix := ""
	if defaultDesc != nil {
		preferredExtnPrefix = defaultDesc.PreferredExtnPrefix
	}
	body, ext := extractExtension(strings.TrimSpace(input), preferredExtnPrefix)

	if !hasDigitOrPlus(body) {
		return Result{}, ErrNotANumber
	}

	possible, err := normalize.ExtractPossibleNumber(body)
	if errors.Is(err, normalize.ErrInvalidCharacter) {
		return Result{}, ErrInvalidCharacter
	}
	if errors.Is(err, normalize.ErrTooShort) {
		return Result{}, ErrTooShortNsn
	}
	if err != nil {
		return Result{}, ErrNotANumber
	}

	normalized := normalize.Normalize(possible)
	digits := strings.TrimPrefix(normalized, "+")
	if len(digits) < minNsnLength {
		return Result{}, ErrTooShortNsn
	}
	if len(digits) > maxNsnLength {
		return Result{}, ErrTooLong
	}

	if defaultDesc != nil && !strings.HasPrefix(normalized, "+") {
		if stripped, ok := stripIDDPrefixForLengthCheck(cache, defaultDesc, normalized); ok && len(stripped) < minNsnLength {
			return Result{}, ErrTooShortAfterIdd
		}
	}

	res, err := resolver.Resolve(store, cache, normalized, defaultRegion)
	if err != nil {
		return Result{}, ErrInvalidCountryCode
	}

	region := defaultDesc
	if region == nil || region.CountryCallingCode != res.CallingCode {
		region = store.MainRegionForCode(res.CallingCode)
	}

	nsn, carrierCode := stripNationalPrefix(cache, region, res.NationalNumber)

	italianLeadingZero := false
	leadingZeros := 0
	if region != nil && region.ItalianLeadingZeroPossible {
		for len(nsn) > 1 && nsn[0] == '0' {
			leadingZeros++
			nsn = nsn[1:]
		}
		if leadingZeros > 0 {
			italianLeadingZero = true
		}
	}
	if leadingZeros == 0 {
		leadingZeros = 1
	}

	if len(nsn) < minNsnLength {
		return Result{}, ErrTooShortNsn
	}
	if len(nsn) > maxNsnLength {
		return Result{}, ErrTooLong
	}
	switch classify.Possible(region, nsn) {
	case classify.TooShort:
		return Result{}, ErrTooShortNsn
	case classify.TooLong:
		return Result{}, ErrTooLong
	}

	n, err := strconv.ParseUint(nsn, 10, 64)
	if err != nil {
		return Result{}, ErrNotANumber
	}

	return Result{
		CallingCode:          res.CallingCode,
		NationalNumber:       n,
		ItalianLeadingZero:   italianLeadingZero,
		NumberOfLeadingZeros: leadingZeros,
		Extension:            ext,
		CountryCodeSource:    res.Source,
		PreferredCarrierCode: carrierCode,
	}, nil
}

// stripNationalPrefix matches region's national-prefix-for-parsing regex
// against the front of nsn. With no transform rule, the matched span is
// simply cut away, the same as stripping a plain literal national prefix.
// With a transform rule, the rule is expanded against the matched span's
// own capture groups (exactly the $1.."$9" substitution internal/format
// runs for a NumberFormat template) and the expansion is prepended to
// whatever follows the match instead of the raw match — this is what lets
// a capture group that sits inside the matched prefix (e.g. an area code
// that a long-distance trunk sequence swallows along with the trunk digit
// and a carrier-selection code) survive into the stripped number. The
// first capture group, if the pattern has one, is reported back as the
// carrier code the prefix announced.
//
// The strip only commits when the result is itself a plausible national
// number; otherwise the matched digits may actually belong to the
// subscriber number and nsn is returned unchanged.
func stripNationalPrefix(cache *regexcache.Cache, region *metadata.Region, nsn string) (stripped string, carrierCode string) {
	if region == nil || region.NationalPrefixForParsing == "" {
		return nsn, ""
	}

	re := cache.Get(`^(?:` + region.NationalPrefixForParsing + `)`)
	loc := re.FindStringSubmatchIndex(nsn)
	if loc == nil || loc[0] != 0 || loc[1] == 0 {
		return nsn, ""
	}

	rest := nsn[loc[1]:]
	if rest == "" {
		return nsn, ""
	}

	if len(loc) >= 4 && loc[2] >= 0 {
		carrierCode = nsn[loc[2]:loc[3]]
	}

	candidate := rest
	if region.NationalPrefixTransformRule != "" {
		candidate = re.ReplaceAllString(nsn[:loc[1]], region.NationalPrefixTransformRule) + rest
	}

	switch classify.Possible(region, candidate) {
	case classify.IsPossible, classify.IsPossibleLocalOnly:
		return candidate, carrierCode
	default:
		return nsn, ""
	}
}

// stripIDDPrefixForLengthCheck mirrors resolver's IDD-prefix detection
// just closely enough to tell whether a default-region-assumed candidate,
// once an international dialing prefix is peeled off, would be too short
// to hold a calling code plus any national number at all. It does not
// itself feed into Resolve; Resolve performs its own, authoritative strip.
func stripIDDPrefixForLengthCheck(cache *regexcache.Cache, region *metadata.Region, candidate string) (string, bool) {
	if region.InternationalPrefix == "" {
		return "", false
	}
	re := cache.Get(`^(?:` + region.InternationalPrefix + `)`)
	loc := re.FindStringIndex(candidate)
	if loc == nil || loc[0] != 0 {
		return "", false
	}
	return candidate[loc[1]:], true
}

func hasDigitOrPlus(s string) bool {
	for _, r := range s {
		if r == '+' || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
