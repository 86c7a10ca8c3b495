// Package format renders a calling code and national significant number
// back into one of the output styles callers expect: E.164, national
// dialing, international dialing, or an RFC 3966 tel: URI.
package format

import (
	"strconv"
	"strings"

	"github.com/telekit/phonenumber/internal/metadata"
	"github.com/telekit/phonenumber/internal/regexcache"
)

// Mode selects which of the four output styles Format produces.
type Mode int

const (
	E164 Mode = iota
	National
	International
	RFC3966
)

const defaultExtnPrefix = " ext. "

// Format renders callingCode and nsn (the national significant number with
// any italian leading zeros already restored) in the requested mode.
// extension and preferredCarrierCode may be empty. When no NumberFormat in
// the resolved region matches nsn, Format falls back to the bare digits
// (preceded by "+<cc> " in International mode).
func Format(cache *regexcache.Cache, store *metadata.Store, mode Mode, callingCode int, nsn string, extension string, preferredCarrierCode string) string {
	region := store.RegionForNumber(cache, callingCode, nsn)

	switch mode {
	case E164:
		return "+" + strconv.Itoa(callingCode) + nsn
	case RFC3966:
		body := formatWithRegion(cache, region, International, callingCode, nsn, "")
		body = strings.TrimPrefix(body, "+"+strconv.Itoa(callingCode)+" ")
		uri := "tel:+" + strconv.Itoa(callingCode) + "-" + hyphenate(body)
		if extension != "" {
			uri += ";ext=" + extension
		}
		return uri
	default:
		return formatWithRegion(cache, region, mode, callingCode, nsn, preferredCarrierCode) + extensionSuffix(region, extension)
	}
}

func formatWithRegion(cache *regexcache.Cache, region *metadata.Region, mode Mode, callingCode int, nsn string, carrierCode string) string {
	if region == nil {
		return fallback(callingCode, nsn, mode)
	}

	var formats []metadata.NumberFormat
	if mode == International {
		formats = region.IntlFormatsOrFallback()
	} else {
		formats = region.Formats
	}

	nf := selectFormat(cache, formats, nsn)
	if nf == nil {
		return fallback(callingCode, nsn, mode)
	}

	rendered := applyFormat(cache, nf, region, nsn, mode == National, carrierCode)
	if mode == International {
		return "+" + strconv.Itoa(callingCode) + " " + rendered
	}
	return rendered
}

// selectFormat returns the first NumberFormat whose leading-digits anchor
// (when present) and full pattern both match nsn.
func selectFormat(cache *regexcache.Cache, formats []metadata.NumberFormat, nsn string) *metadata.NumberFormat {
	for i := range formats {
		nf := &formats[i]
		if len(nf.LeadingDigitsPatterns) > 0 {
			anchor := cache.Get(`^(?:` + nf.LeadingDigitsPatterns[0] + `)`)
			if loc := anchor.FindStringIndex(nsn); loc == nil || loc[0] != 0 {
				continue
			}
		}
		if cache.MatchFull(nf.Pattern, nsn) {
			return nf
		}
	}
	return nil
}

// applyFormat expands nf.Format against nsn, splicing in the
// national-prefix or domestic-carrier-code formatting rule ahead of the
// template's first group when withNationalPrefix is set and the region
// defines one. $NP, $CC and $FG are resolved to literal text and to the
// "$1" replacement token respectively before the combined template is run
// through a single regexp.ReplaceAllString pass, so a rule that wraps the
// first group in extra punctuation (parens, a leading carrier digit)
// lands correctly instead of being patched into already-formatted text.
func applyFormat(cache *regexcache.Cache, nf *metadata.NumberFormat, region *metadata.Region, nsn string, withNationalPrefix bool, carrierCode string) string {
	template := nf.Format

	if withNationalPrefix && !(nf.NationalPrefixOptionalWhenFormatting) {
		rule := nf.NationalPrefixFormattingRule
		if carrierCode != "" && nf.DomesticCarrierCodeFormattingRule != "" {
			rule = nf.DomesticCarrierCodeFormattingRule
		}
		if rule != "" {
			rule = strings.ReplaceAll(rule, "$NP", region.NationalPrefix)
			rule = strings.ReplaceAll(rule, "$CC", carrierCode)
			rule = strings.ReplaceAll(rule, "$FG", "$1")
			if idx := strings.Index(template, "$1"); idx >= 0 {
				template = template[:idx] + rule + template[idx+2:]
			}
		}
	}

	pattern := cache.Get(nf.Pattern)
	return pattern.ReplaceAllString(nsn, template)
}

func extensionSuffix(region *metadata.Region, extension string) string {
	if extension == "" {
		return ""
	}
	prefix := defaultExtnPrefix
	if region != nil && region.PreferredExtnPrefix != "" {
		prefix = region.PreferredExtnPrefix
	}
	return prefix + extension
}

func fallback(callingCode int, nsn string, mode Mode) string {
	if mode == National {
		return nsn
	}
	return "+" + strconv.Itoa(callingCode) + " " + nsn
}

func hyphenate(s string) string {
	fields := strings.Fields(s)
	return strings.Join(fields, "-")
}
