package metadata

// curatedVersion and curatedRegions stand in for the binary asset an
// out-of-scope XML→binary conversion tool would normally produce from
// PhoneNumberMetadata.xml. They cover a representative slice of the
// corpus — enough regions, and enough calling-code sharing, to exercise
// every operation and invariant this module implements (parsing,
// validation, classification, all four formats, the national-prefix and
// italian-leading-zero transforms, and calling-code disambiguation) —
// rather than the full ~250-region corpus. A production deployment loads
// the real generated asset through the identical LoadFromBytes/gob path;
// see DESIGN.md for the tradeoff.
const curatedVersion = "curated-2026.08"

var curatedRegions = []*Region{
	usRegion,
	caRegion,
	gbRegion,
	jeRegion,
	ggRegion,
	imRegion,
	chRegion,
	itRegion,
	frRegion,
	deRegion,
	kzRegion,
	ruRegion,
	brRegion,
	nonGeoTollFreeRegion,
}

var usRegion = &Region{
	ID:                  "US",
	CountryCallingCode:  1,
	InternationalPrefix: "011",
	NationalPrefix:      "1",
	NationalPrefixForParsing: "1",
	PreferredExtnPrefix: " ext. ",
	MainCountryForCode:  true,
	GeneralDesc: Descriptor{
		Pattern: `[2-9]\d{9}`,
		Lengths: []int{10},
	},
	Types: map[Type]Descriptor{
		FixedLine:   {Pattern: `[2-9]\d{2}[2-9]\d{6}`, Lengths: []int{10}},
		Mobile:      {Pattern: `[2-9]\d{2}[2-9]\d{6}`, Lengths: []int{10}},
		TollFree:    {Pattern: `8(?:00|33|44|55|66|77|88)[2-9]\d{6}`, Lengths: []int{10}},
		PremiumRate: {Pattern: `900[2-9]\d{6}`, Lengths: []int{10}},
	},
	Formats: []NumberFormat{
		{
			Pattern:                              `(\d{3})(\d{3})(\d{4})`,
			Format:                               `($1) $2-$3`,
			NationalPrefixOptionalWhenFormatting: true,
		},
	},
	IntlFormats: []NumberFormat{
		{
			Pattern: `(\d{3})(\d{3})(\d{4})`,
			Format:  `$1-$2-$3`,
		},
	},
}

var caRegion = &Region{
	ID:                  "CA",
	CountryCallingCode:  1,
	InternationalPrefix: "011",
	NationalPrefix:      "1",
	NationalPrefixForParsing: "1",
	PreferredExtnPrefix: " ext. ",
	MainCountryForCode:  false,
	// Representative subset of real Canadian area codes, not the full
	// list, sufficient to disambiguate region_code_for_number against US.
	LeadingDigits: `204|226|236|249|250|289|306|343|365|387|403|416|418|431|437|438|450|506|514|519|548|579|581|587|604|613|639|647|672|705|709|742|778|780|782|807|819|825|867|873|902|905`,
	GeneralDesc: Descriptor{
		Pattern: `[2-9]\d{9}`,
		Lengths: []int{10},
	},
	Types: map[Type]Descriptor{
		FixedLine: {Pattern: `[2-9]\d{2}[2-9]\d{6}`, Lengths: []int{10}},
		Mobile:    {Pattern: `[2-9]\d{2}[2-9]\d{6}`, Lengths: []int{10}},
		TollFree:  {Pattern: `8(?:00|33|44|55|66|77|88)[2-9]\d{6}`, Lengths: []int{10}},
	},
	Formats: []NumberFormat{
		{
			Pattern:                              `(\d{3})(\d{3})(\d{4})`,
			Format:                               `($1) $2-$3`,
			NationalPrefixOptionalWhenFormatting: true,
		},
	},
	IntlFormats: []NumberFormat{
		{
			Pattern: `(\d{3})(\d{3})(\d{4})`,
			Format:  `$1-$2-$3`,
		},
	},
}

var gbRegion = &Region{
	ID:                  "GB",
	CountryCallingCode:  44,
	InternationalPrefix: "00",
	NationalPrefix:      "0",
	NationalPrefixForParsing: "0",
	PreferredExtnPrefix: " ext. ",
	MainCountryForCode:  true,
	GeneralDesc: Descriptor{
		Pattern: `[1-357-9]\d{8,9}`,
		Lengths: []int{9, 10},
	},
	Types: map[Type]Descriptor{
		FixedLine: {Pattern: `(?:1\d{8,9}|2\d{9})`, Lengths: []int{9, 10}},
		Mobile:    {Pattern: `7(?:[1-3]\d|4[0-8]|5[0-689]|6[0-47-9]|7[0-7]|8[0-6]|9\d)\d{7}`, Lengths: []int{10}},
		TollFree:  {Pattern: `800\d{6,7}`, Lengths: []int{9, 10}},
	},
	Formats: []NumberFormat{
		{
			Pattern:                      `(7\d{3})(\d{6})`,
			Format:                       `$1 $2`,
			LeadingDigitsPatterns:        []string{`7`},
			NationalPrefixFormattingRule: `$NP$FG`,
		},
		{
			Pattern:                      `(\d{2})(\d{4})(\d{4})`,
			Format:                       `$1 $2 $3`,
			LeadingDigitsPatterns:        []string{`1|2`},
			NationalPrefixFormattingRule: `$NP$FG`,
		},
		{
			Pattern:                      `(\d{3})(\d{6,7})`,
			Format:                       `$1 $2`,
			LeadingDigitsPatterns:        []string{`8`},
			NationalPrefixFormattingRule: `$NP$FG`,
		},
	},
}

var jeRegion = &Region{
	ID:                  "JE",
	CountryCallingCode:  44,
	InternationalPrefix: "00",
	NationalPrefix:      "0",
	NationalPrefixForParsing: "0",
	LeadingDigits:       `1534`,
	GeneralDesc: Descriptor{
		Pattern: `1534\d{6}`,
		Lengths: []int{10},
	},
	Types: map[Type]Descriptor{
		FixedLine: {Pattern: `1534\d{6}`, Lengths: []int{10}},
	},
	Formats: []NumberFormat{
		{
			Pattern:                      `(\d{4})(\d{6})`,
			Format:                       `$1 $2`,
			NationalPrefixFormattingRule: `$NP$FG`,
		},
	},
}

var ggRegion = &Region{
	ID:                  "GG",
	CountryCallingCode:  44,
	InternationalPrefix: "00",
	NationalPrefix:      "0",
	NationalPrefixForParsing: "0",
	LeadingDigits:       `1481`,
	GeneralDesc: Descriptor{
		Pattern: `1481\d{6}`,
		Lengths: []int{10},
	},
	Types: map[Type]Descriptor{
		FixedLine: {Pattern: `1481\d{6}`, Lengths: []int{10}},
	},
	Formats: []NumberFormat{
		{
			Pattern:                      `(\d{4})(\d{6})`,
			Format:                       `$1 $2`,
			NationalPrefixFormattingRule: `$NP$FG`,
		},
	},
}

var imRegion = &Region{
	ID:                  "IM",
	CountryCallingCode:  44,
	InternationalPrefix: "00",
	NationalPrefix:      "0",
	NationalPrefixForParsing: "0",
	LeadingDigits:       `1624|7524|7624|7924`,
	GeneralDesc: Descriptor{
		Pattern: `1624\d{6}|7[4-9]24\d{6}`,
		Lengths: []int{10},
	},
	Types: map[Type]Descriptor{
		FixedLine: {Pattern: `1624\d{6}`, Lengths: []int{10}},
		Mobile:    {Pattern: `7[4-9]24\d{6}`, Lengths: []int{10}},
	},
	Formats: []NumberFormat{
		{
			Pattern:                      `(\d{4})(\d{6})`,
			Format:                       `$1 $2`,
			NationalPrefixFormattingRule: `$NP$FG`,
		},
	},
}

var chRegion = &Region{
	ID:                  "CH",
	CountryCallingCode:  41,
	InternationalPrefix: "00",
	NationalPrefix:      "0",
	NationalPrefixForParsing: "0",
	PreferredExtnPrefix: " ext. ",
	MainCountryForCode:  true,
	GeneralDesc: Descriptor{
		Pattern: `[2-9]\d{8}`,
		Lengths: []int{9},
	},
	Types: map[Type]Descriptor{
		FixedLine: {Pattern: `(?:2[12467]|3[1-4]|4[134]|5[256]|6[12]|7[178]|8[147]|9[12])\d{7}`, Lengths: []int{9}},
		Mobile:    {Pattern: `7[5-9]\d{7}`, Lengths: []int{9}},
		TollFree:  {Pattern: `800\d{6}`, Lengths: []int{9}},
	},
	Formats: []NumberFormat{
		{
			Pattern:                      `(\d{2})(\d{3})(\d{2})(\d{2})`,
			Format:                       `$1 $2 $3 $4`,
			NationalPrefixFormattingRule: `$NP$FG`,
		},
	},
}

var itRegion = &Region{
	ID:                  "IT",
	CountryCallingCode:  39,
	InternationalPrefix: "00",
	NationalPrefix:      "",
	PreferredExtnPrefix: " int. ",
	MainCountryForCode:  true,
	ItalianLeadingZeroPossible: true,
	GeneralDesc: Descriptor{
		Pattern: `[0-9]\d{5,10}`,
		Lengths: []int{6, 7, 8, 9, 10, 11},
	},
	Types: map[Type]Descriptor{
		FixedLine: {Pattern: `0\d{5,10}`, Lengths: []int{6, 7, 8, 9, 10, 11}},
		Mobile:    {Pattern: `3\d{8,9}`, Lengths: []int{9, 10}},
		TollFree:  {Pattern: `80\d{7}`, Lengths: []int{9}},
	},
	Formats: []NumberFormat{
		{
			Pattern: `(\d{2})(\d{4})(\d{4})`,
			Format:  `$1 $2 $3`,
		},
		{
			Pattern: `(3\d{2})(\d{3})(\d{4})`,
			Format:  `$1 $2 $3`,
		},
	},
}

var frRegion = &Region{
	ID:                  "FR",
	CountryCallingCode:  33,
	InternationalPrefix: "00",
	NationalPrefix:      "0",
	NationalPrefixForParsing: "0",
	MainCountryForCode:  true,
	GeneralDesc: Descriptor{
		Pattern: `[1-9]\d{8}`,
		Lengths: []int{9},
	},
	Types: map[Type]Descriptor{
		FixedLine: {Pattern: `[1-5]\d{8}`, Lengths: []int{9}},
		Mobile:    {Pattern: `[67]\d{8}`, Lengths: []int{9}},
		TollFree:  {Pattern: `80\d{7}`, Lengths: []int{9}},
	},
	Formats: []NumberFormat{
		{
			Pattern:                      `(\d)(\d{2})(\d{2})(\d{2})(\d{2})`,
			Format:                       `$1 $2 $3 $4 $5`,
			NationalPrefixFormattingRule: `$NP$FG`,
		},
	},
}

var deRegion = &Region{
	ID:                  "DE",
	CountryCallingCode:  49,
	InternationalPrefix: "00",
	NationalPrefix:      "0",
	NationalPrefixForParsing: "0",
	MainCountryForCode:  true,
	GeneralDesc: Descriptor{
		Pattern: `[1-9]\d{3,14}`,
		Lengths: []int{6, 7, 8, 9, 10, 11},
	},
	Types: map[Type]Descriptor{
		FixedLine: {Pattern: `[2-9]\d{5,13}`, Lengths: []int{6, 7, 8, 9, 10, 11}},
		Mobile:    {Pattern: `1(?:5\d{9}|6\d{8,9}|7\d{7,8})`, Lengths: []int{10, 11}},
	},
	Formats: []NumberFormat{
		{
			Pattern:                      `(\d{2,5})(\d{4,11})`,
			Format:                       `$1 $2`,
			NationalPrefixFormattingRule: `$NP$FG`,
		},
	},
}

var ruRegion = &Region{
	ID:                  "RU",
	CountryCallingCode:  7,
	InternationalPrefix: "810",
	NationalPrefix:      "8",
	NationalPrefixForParsing: "8",
	MainCountryForCode:  true,
	GeneralDesc: Descriptor{
		Pattern: `[3489]\d{9}`,
		Lengths: []int{10},
	},
	Types: map[Type]Descriptor{
		FixedLine: {Pattern: `4\d{9}`, Lengths: []int{10}},
		Mobile:    {Pattern: `9\d{9}`, Lengths: []int{10}},
		TollFree:  {Pattern: `800\d{7}`, Lengths: []int{10}},
	},
	Formats: []NumberFormat{
		{
			Pattern:                           `(\d{3})(\d{3})(\d{2})(\d{2})`,
			Format:                            `$1 $2-$3-$4`,
			NationalPrefixFormattingRule:      `$NP ($FG)`,
			DomesticCarrierCodeFormattingRule: `$NP$CC ($FG)`,
		},
	},
}

var kzRegion = &Region{
	ID:                  "KZ",
	CountryCallingCode:  7,
	InternationalPrefix: "810",
	NationalPrefix:      "8",
	NationalPrefixForParsing: "8",
	MainCountryForCode:  false,
	LeadingDigits:       `33|7`,
	GeneralDesc: Descriptor{
		Pattern: `[78]\d{9}`,
		Lengths: []int{10},
	},
	Types: map[Type]Descriptor{
		FixedLine: {Pattern: `7(?:1[0-8]|2[1-33-9]|3[1-33-9]|4[1-79]|5[1-9]|6[1-9]|7[1-49])\d{6}`, Lengths: []int{10}},
		Mobile:    {Pattern: `7\d{9}`, Lengths: []int{10}},
	},
	Formats: []NumberFormat{
		{
			Pattern:                      `(\d{3})(\d{3})(\d{2})(\d{2})`,
			Format:                       `$1 $2-$3-$4`,
			NationalPrefixFormattingRule: `$NP ($FG)`,
		},
	},
}

// brRegion exercises the national-prefix-transform-rule path: a domestic
// long-distance call dials the trunk digit "0", a 2-digit long-distance
// carrier-selection code, then the area code, then the subscriber number
// ("0" + carrier + area + subscriber). The carrier-selection code has no
// place in the national significant number at all, but the area code it's
// glued to does — so simply cutting the whole matched prefix away would
// destroy the area code along with it. NationalPrefixTransformRule "$2"
// reconstructs the area code from the prefix match's own second capture
// group, and the carrier-selection code in the first capture group is
// reported back as the preferred carrier code instead of folded into the
// number.
var brRegion = &Region{
	ID:                          "BR",
	CountryCallingCode:          55,
	InternationalPrefix:         "00",
	NationalPrefix:              "0",
	NationalPrefixForParsing:    `0(\d{2})(\d{2})`,
	NationalPrefixTransformRule: `$2`,
	MainCountryForCode:          true,
	GeneralDesc: Descriptor{
		Pattern: `[1-9]\d{9,10}`,
		Lengths: []int{10, 11},
	},
	Types: map[Type]Descriptor{
		FixedLine: {Pattern: `[1-9]\d[2-5]\d{7}`, Lengths: []int{10}},
		Mobile:    {Pattern: `[1-9]\d9\d{8}`, Lengths: []int{11}},
	},
	Formats: []NumberFormat{
		{
			Pattern:                      `(\d{2})(\d{4})(\d{4})`,
			Format:                       `$1 $2-$3`,
			NationalPrefixFormattingRule: `$NP$FG`,
		},
		{
			Pattern:                      `(\d{2})(\d{5})(\d{4})`,
			Format:                       `$1 $2-$3`,
			NationalPrefixFormattingRule: `$NP$FG`,
		},
	},
	IntlFormats: []NumberFormat{
		{
			Pattern: `(\d{2})(\d{4})(\d{4})`,
			Format:  `$1 $2-$3`,
		},
		{
			Pattern: `(\d{2})(\d{5})(\d{4})`,
			Format:  `$1 $2-$3`,
		},
	},
}

var nonGeoTollFreeRegion = &Region{
	ID:                  NonGeoRegion,
	CountryCallingCode:  800,
	InternationalPrefix: "00",
	MainCountryForCode:  true,
	GeneralDesc: Descriptor{
		Pattern: `\d{8}`,
		Lengths: []int{8},
	},
	Types: map[Type]Descriptor{
		TollFree: {Pattern: `\d{8}`, Lengths: []int{8}},
	},
	Formats: []NumberFormat{
		{
			Pattern: `(\d{4})(\d{4})`,
			Format:  `$1 $2`,
		},
	},
}
