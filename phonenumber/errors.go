package phonenumber

import (
	"errors"
	"fmt"

	"github.com/telekit/phonenumber/internal/parser"
)

// ParseErrorKind enumerates the reasons Parse can fail.
type ParseErrorKind int

const (
	InvalidCountryCode ParseErrorKind = iota
	NotANumber
	TooShortNsn
	TooShortAfterIdd
	TooLong
	InvalidCharacter
)

func (k ParseErrorKind) String() string {
	switch k {
	case InvalidCountryCode:
		return "InvalidCountryCode"
	case NotANumber:
		return "NotANumber"
	case TooShortNsn:
		return "TooShortNsn"
	case TooShortAfterIdd:
		return "TooShortAfterIdd"
	case TooLong:
		return "TooLong"
	case InvalidCharacter:
		return "InvalidCharacter"
	default:
		return "Unknown"
	}
}

// ParseError reports why Parse rejected an input string. It deliberately
// does not retain the input that was rejected.
type ParseError struct {
	Kind ParseErrorKind
	err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("phonenumber: parse: %s: %s", e.Kind, e.err)
}

func (e *ParseError) Unwrap() error {
	return e.err
}

var parseErrKinds = map[error]ParseErrorKind{
	parser.ErrInvalidCountryCode: InvalidCountryCode,
	parser.ErrNotANumber:         NotANumber,
	parser.ErrTooShortNsn:        TooShortNsn,
	parser.ErrTooShortAfterIdd:   TooShortAfterIdd,
	parser.ErrTooLong:            TooLong,
	parser.ErrInvalidCharacter:   InvalidCharacter,
}

func newParseError(err error) *ParseError {
	kind := NotANumber
	for sentinel, k := range parseErrKinds {
		if errors.Is(err, sentinel) {
			kind = k
			break
		}
	}
	return &ParseError{Kind: kind, err: err}
}

// MetadataErrorKind enumerates the reasons a region or calling-code lookup
// can fail.
type MetadataErrorKind int

const (
	UnknownRegion MetadataErrorKind = iota
	CorruptMetadata
	UnsupportedMetadataVersion
)

func (k MetadataErrorKind) String() string {
	switch k {
	case UnknownRegion:
		return "UnknownRegion"
	case CorruptMetadata:
		return "CorruptMetadata"
	case UnsupportedMetadataVersion:
		return "UnsupportedMetadataVersion"
	default:
		return "Unknown"
	}
}

// MetadataError reports a problem resolving or loading region metadata.
type MetadataError struct {
	Kind   MetadataErrorKind
	Region RegionID
	err    error
}

func (e *MetadataError) Error() string {
	if e.Region != "" {
		return fmt.Sprintf("phonenumber: metadata %s: region %q: %s", e.Kind, e.Region, e.err)
	}
	return fmt.Sprintf("phonenumber: metadata %s: %s", e.Kind, e.err)
}

func (e *MetadataError) Unwrap() error {
	return e.err
}
