// Package resolver determines a phone number candidate's calling code:
// given a normalized candidate string and an optional default region, it
// works out the calling code, the remaining national significant number,
// and how that calling code was discovered.
package resolver

import (
	"errors"
	"strconv"
	"strings"

	"github.com/telekit/phonenumber/internal/classify"
	"github.com/telekit/phonenumber/internal/metadata"
	"github.com/telekit/phonenumber/internal/regexcache"
)

// Source tags how the calling code was discovered, mirroring the public
// CountryCodeSource attribute a ParsedNumber carries.
type Source int

const (
	FromNumberWithPlusSign Source = iota
	FromNumberWithIdd
	FromNumberWithoutPlusSign
	FromDefaultCountry
)

// ErrInvalidCountryCode is returned when no recognized calling code can be
// extracted from the candidate, with or without a default region.
var ErrInvalidCountryCode = errors.New("resolver: invalid or missing country code")

// maxCallingCodeDigits bounds how many leading digits are tried when
// guessing a calling code from a '+'-prefixed or IDD-stripped candidate;
// the corpus never assigns a calling code longer than 3 digits.
const maxCallingCodeDigits = 3

// Result is the outcome of Resolve.
type Result struct {
	CallingCode    int
	NationalNumber string
	Source         Source
}

// Resolve works out a candidate's calling code in four steps: a leading
// '+' sign, a default region's international dialing prefix, a default
// region's own calling code, or a bare calling code written without '+'.
// candidate must already be digit/'+'-normalized (see internal/normalize).
// defaultRegion may be empty, meaning no default was supplied; only the
// '+' step is tried then, so a candidate without '+' fails with
// ErrInvalidCountryCode.
func Resolve(store *metadata.Store, cache *regexcache.Cache, candidate string, defaultRegion metadata.RegionID) (Result, error) {
	if strings.HasPrefix(candidate, "+") {
		cc, rest, ok := extractCallingCode(store, candidate[1:])
		if !ok {
			return Result{}, ErrInvalidCountryCode
		}
		return Result{CallingCode: cc, NationalNumber: rest, Source: FromNumberWithPlusSign}, nil
	}

	if defaultRegion == "" {
		return Result{}, ErrInvalidCountryCode
	}

	region := store.ForRegion(defaultRegion)
	if region == nil {
		return Result{}, ErrInvalidCountryCode
	}

	if stripped, ok := stripIDDPrefix(cache, region, candidate); ok {
		if cc, rest, ok := extractCallingCode(store, stripped); ok {
			return Result{CallingCode: cc, NationalNumber: rest, Source: FromNumberWithIdd}, nil
		}
	}

	if classify.Possible(region, tentativeStripNationalPrefix(region, candidate)) == classify.IsPossible {
		return Result{
			CallingCode:    region.CountryCallingCode,
			NationalNumber: candidate,
			Source:         FromDefaultCountry,
		}, nil
	}

	if cc, rest, ok := extractCallingCode(store, candidate); ok {
		main := store.MainRegionForCode(cc)
		if classify.Possible(main, tentativeStripNationalPrefix(main, rest)) == classify.IsPossible {
			return Result{CallingCode: cc, NationalNumber: rest, Source: FromNumberWithoutPlusSign}, nil
		}
	}

	return Result{}, ErrInvalidCountryCode
}

// tentativeStripNationalPrefix removes region's literal national prefix
// from the front of s, if present, purely to test whether s is plausibly a
// national number carrying a trunk prefix. It does not attempt the full
// nationalPrefixForParsing transform (carrier-code capture, pattern-driven
// stripping) that the parser applies authoritatively in its own
// national-prefix-stripping step; this is a cheaper plausibility probe
// only, and the candidate returned to the caller is always left intact for
// that later step to process.
func tentativeStripNationalPrefix(region *metadata.Region, s string) string {
	if region == nil || region.NationalPrefix == "" {
		return s
	}
	if strings.HasPrefix(s, region.NationalPrefix) && len(s) > len(region.NationalPrefix) {
		return s[len(region.NationalPrefix):]
	}
	return s
}

// extractCallingCode consumes the shortest 1-3 digit prefix of s that is a
// recognized calling code in store, preferring the shortest prefix that
// matches.
func extractCallingCode(store *metadata.Store, s string) (cc int, rest string, ok bool) {
	for n := 1; n <= maxCallingCodeDigits && n <= len(s); n++ {
		candidate, err := strconv.Atoi(s[:n])
		if err != nil {
			continue
		}
		if len(store.ForCallingCode(candidate)) > 0 {
			return candidate, s[n:], true
		}
	}
	return 0, "", false
}

// stripIDDPrefix reports whether candidate begins with region's
// international dialing prefix, returning the remainder with that prefix
// removed.
func stripIDDPrefix(cache *regexcache.Cache, region *metadata.Region, candidate string) (string, bool) {
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
