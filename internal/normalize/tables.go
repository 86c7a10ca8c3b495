package normalize

// digitMap maps non-ASCII decimal digit characters the corpus is known to
// encounter (Arabic-Indic and Extended Arabic-Indic) to their ASCII digit.
// Fullwidth digits are handled separately by golang.org/x/text/width, which
// already knows the full Unicode fullwidth/halfwidth fold table; there is
// no comparably small ecosystem table for the Arabic-Indic ranges, so they
// are listed here by hand.
var digitMap = map[rune]rune{
	// Arabic-Indic digits (U+0660-U+0669).
	'٠': '0', '١': '1', '٢': '2', '٣': '3', '٤': '4',
	'٥': '5', '٦': '6', '٧': '7', '٨': '8', '٩': '9',
	// Extended Arabic-Indic digits (U+06F0-U+06F9).
	'۰': '0', '۱': '1', '۲': '2', '۳': '3', '۴': '4',
	'۵': '5', '۶': '6', '۷': '7', '۸': '8', '۹': '9',
}

// keypadMap maps a-z/A-Z to the digit engraved on that letter's key on an
// ITU E.161 telephone keypad.
var keypadMap = map[rune]rune{
	'a': '2', 'b': '2', 'c': '2',
	'd': '3', 'e': '3', 'f': '3',
	'g': '4', 'h': '4', 'i': '4',
	'j': '5', 'k': '5', 'l': '5',
	'm': '6', 'n': '6', 'o': '6',
	'p': '7', 'q': '7', 'r': '7', 's': '7',
	't': '8', 'u': '8', 'v': '8',
	'w': '9', 'x': '9', 'y': '9', 'z': '9',
}

// validPunctuation lists formatting characters ExtractPossibleNumber accepts
// inside a number body: parens, brackets, slashes, dash/dash variants, dot,
// space variants, tilde, and 'x'. Normalize itself drops all of them.
const validPunctuation = "-x‐‑‒–—―－／  ­​⁠　()（）．.\\/[]~⁓∼～"
