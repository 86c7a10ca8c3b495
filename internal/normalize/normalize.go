// Package normalize turns arbitrary human-typed phone number text into the
// ASCII digit (plus optional leading '+') alphabet every other package in
// this module assumes.
package normalize

import (
	"errors"
	"strings"
	"unicode"

	"golang.org/x/text/width"
)

// ErrTooShort is returned by ExtractPossibleNumber when fewer than two
// digits remain after trimming.
var ErrTooShort = errors.New("normalize: number body shorter than two digits")

// ErrInvalidCharacter is returned by ExtractPossibleNumber when a disallowed
// code point appears inside the number body.
var ErrInvalidCharacter = errors.New("normalize: invalid character in number")

// Normalize maps every code point in s through the ITU digit/keypad table
// and drops everything else, preserving a leading '+' only if it occupies
// position 0 of the input.
func Normalize(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r == '+' && i == 0 {
			b.WriteByte('+')
			continue
		}
		if d, ok := toDigit(r, true); ok {
			b.WriteRune(d)
		}
	}
	return b.String()
}

// NormalizeDigitsOnly maps every code point in s to its ASCII digit
// equivalent (fullwidth and Arabic-Indic forms only, no keypad-letter
// mapping) and drops everything else, including any leading '+'.
func NormalizeDigitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if d, ok := toDigit(r, false); ok {
			b.WriteRune(d)
		}
	}
	return b.String()
}

// NormalizeExtensionDigits is like NormalizeDigitsOnly but also keeps '#'
// and '*', the two non-digit characters an extension body may legitimately
// carry.
func NormalizeExtensionDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r == '#' || r == '*' {
			b.WriteRune(r)
			continue
		}
		if d, ok := toDigit(r, false); ok {
			b.WriteRune(d)
		}
	}
	return b.String()
}

// toDigit resolves r to its ASCII digit, or to an ITU keypad digit when
// mapLetters is true. ok is false when r carries no digit value.
func toDigit(r rune, mapLetters bool) (rune, bool) {
	if r >= '0' && r <= '9' {
		return r, true
	}
	if folded := width.Fold.String(string(r)); folded != string(r) {
		fr := []rune(folded)
		if len(fr) == 1 && fr[0] >= '0' && fr[0] <= '9' {
			return fr[0], true
		}
	}
	if d, ok := digitMap[r]; ok {
		return d, true
	}
	if mapLetters {
		lower := unicode.ToLower(r)
		if d, ok := keypadMap[lower]; ok {
			return d, true
		}
	}
	return 0, false
}

// ExtractPossibleNumber trims leading junk up to the first digit or '+',
// then truncates at the first character that cannot belong to a phone
// number (an unmatched closing bracket, a ';' introducing RFC 3966
// parameters, and similar). It fails with ErrTooShort when fewer than two
// digits remain, or ErrInvalidCharacter when a disallowed code point
// appears before any valid trailer is reached.
func ExtractPossibleNumber(s string) (string, error) {
	start := -1
	runes := []rune(s)
	for i, r := range runes {
		if r == '+' || unicode.IsDigit(r) {
			start = i
			break
		}
	}
	if start == -1 {
		return "", ErrTooShort
	}

	end := len(runes)
	parenDepth := 0
	// An opening bracket in the trimmed leading junk (as in "(650) 253-0000")
	// still pairs with a closing bracket inside the body.
	for _, r := range runes[:start] {
		if r == '(' {
			parenDepth++
		} else if r == ')' && parenDepth > 0 {
			parenDepth--
		}
	}
	for i := start; i < len(runes); i++ {
		r := runes[i]
		if r == ')' && parenDepth == 0 {
			end = i
			break
		}
		if r == '#' || r == ';' {
			end = i
			break
		}
		if !isAllowedBodyRune(r) {
			return "", ErrInvalidCharacter
		}
		if r == '(' {
			parenDepth++
		} else if r == ')' {
			parenDepth--
		}
	}

	body := string(runes[start:end])
	digits := 0
	for _, r := range body {
		if unicode.IsDigit(r) {
			digits++
		}
	}
	if digits < 2 {
		return "", ErrTooShort
	}

	return body, nil
}

// isAllowedBodyRune reports whether r can legitimately appear inside a
// phone number's body: a digit in any script toDigit recognizes, a letter
// (keypad letters included), '+', or one of validPunctuation's formatting
// characters.
func isAllowedBodyRune(r rune) bool {
	if r == '+' || unicode.IsLetter(r) {
		return true
	}
	if _, ok := toDigit(r, false); ok {
		return true
	}
	return strings.ContainsRune(validPunctuation, r)
}
