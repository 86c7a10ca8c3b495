package phonenumber

import (
	"github.com/telekit/phonenumber/internal/format"
)

// Mode selects which output style a Formatter renders.
type Mode int

const (
	E164 Mode = iota
	National
	International
	Rfc3966
)

func (m Mode) internal() format.Mode {
	switch m {
	case National:
		return format.National
	case International:
		return format.International
	case Rfc3966:
		return format.RFC3966
	default:
		return format.E164
	}
}

// Formatter renders a single ParsedNumber in whichever Mode the caller
// selects, optionally overriding the carrier code the national-prefix
// formatting rule substitutes.
type Formatter struct {
	n       *ParsedNumber
	carrier string
}

// Format begins a render of n. Call Mode (and, optionally, WithCarrier) on
// the result to produce a string.
func Format(n *ParsedNumber) *Formatter {
	f := &Formatter{n: n}
	if n != nil {
		f.carrier = n.PreferredCarrierCode
	}
	return f
}

// WithCarrier overrides the carrier code substituted into a region's
// domestic-carrier-code formatting rule, when it has one.
func (f *Formatter) WithCarrier(code string) *Formatter {
	f.carrier = code
	return f
}

// Mode renders f's number in the requested style. It returns "" if f was
// built from a nil ParsedNumber.
func (f *Formatter) Mode(m Mode) string {
	if f.n == nil {
		return ""
	}
	return format.Format(defaultCache, defaultStore(), m.internal(), f.n.CountryCode, f.n.nationalNumberDigits(), f.n.Extension, f.carrier)
}
