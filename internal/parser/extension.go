package parser

import (
	"regexp"
	"strings"

	"github.com/telekit/phonenumber/internal/normalize"
)

// extensionPatterns is the fixed, ordered list of recognized extension
// separators: RFC 3966's ";ext=", "x", "ext", "extension", and "#". Each
// pattern captures the extension digits in group 1; the first pattern to
// match wins. A region's own preferred extension prefix is tried first by
// extractExtension, ahead of this generic list.
var extensionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i);\s*ext\s*=\s*([0-9#*]+)$`),
	regexp.MustCompile(`(?i)\s*(?:ext(?:ension)?\.?|x)\s*[:.]?\s*([0-9#*]{1,7})$`),
	regexp.MustCompile(`[#]([0-9#*]{1,7})$`),
}

// extractExtension splits input into a body and an extension, trying the
// region's preferred extension prefix first (if any) and then the fixed
// generic pattern list in order. The extension digits are normalized to
// canonical digits plus '#'/'*'. If nothing matches, ext is empty and body
// is input unchanged.
func extractExtension(input, preferredPrefix string) (body, ext string) {
	if preferredPrefix != "" {
		if i := strings.LastIndex(input, preferredPrefix); i >= 0 {
			candidate := input[i+len(preferredPrefix):]
			if d := normalize.NormalizeExtensionDigits(candidate); d != "" {
				return input[:i], d
			}
		}
	}

	for _, re := range extensionPatterns {
		if loc := re.FindStringSubmatchIndex(input); loc != nil {
			extRaw := input[loc[2]:loc[3]]
			return input[:loc[0]], normalize.NormalizeExtensionDigits(extRaw)
		}
	}

	return input, ""
}
