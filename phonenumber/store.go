package phonenumber

import (
	"errors"
	"strconv"
	"strings"

	"go.uber.org/atomic"
	"go.uber.org/zap"

	"github.com/telekit/phonenumber/internal/metadata"
	"github.com/telekit/phonenumber/internal/regexcache"
	"github.com/telekit/phonenumber/internal/telemetry"
)

// NewLogger builds a logger suitable for SetLogger. format is "json" for a
// structured logger, or "console" for a human-readable one; debug enables
// debug-level output in either. Callers who already have a configured
// *zap.Logger can skip this and pass it to SetLogger directly.
func NewLogger(format string, debug bool) *zap.Logger {
	return telemetry.New(format, debug)
}

// defaultCache backs every package-level function; regexcache.Cache is
// safe for concurrent use and cheap to construct, so one instance is
// shared for the process lifetime rather than threaded through call sites.
var defaultCache = regexcache.New()

// loadedStore holds a Store installed by LoadMetadata, overriding the
// embedded curated corpus for every package-level function. It is nil
// until LoadMetadata succeeds.
var loadedStore atomic.Pointer[metadata.Store]

func defaultStore() *metadata.Store {
	if s := loadedStore.Load(); s != nil {
		return s
	}
	return metadata.Default()
}

// LoadMetadata replaces the package's active metadata corpus with the
// asset encoded in data, the same binary envelope metadata.Export
// produces. A successful call affects every subsequent Parse, Format,
// and lookup call; it does not retroactively change ParsedNumbers already
// produced. Corrupt bytes or an asset built by an incompatible, newer
// schema version are reported as a *MetadataError rather than panicking,
// and the previously active corpus is left untouched.
func LoadMetadata(data []byte) error {
	store, err := metadata.LoadFromBytes(data, defaultLogger())
	if err != nil {
		return newMetadataLoadError(err)
	}
	loadedStore.Store(store)
	return nil
}

// SetLogger installs the structured logger the metadata loader uses for
// its own diagnostics, both for the embedded curated corpus (if Default
// has not already run) and for any future LoadMetadata call.
func SetLogger(log *zap.Logger) {
	metadata.SetLogger(log)
	if log != nil {
		activeLogger.Store(log)
	}
}

var activeLogger atomic.Pointer[zap.Logger]

func defaultLogger() *zap.Logger {
	if log := activeLogger.Load(); log != nil {
		return log
	}
	return zap.NewNop()
}

func newMetadataLoadError(err error) *MetadataError {
	var corrupt metadata.ErrCorruptMetadata
	var unsupported metadata.ErrUnsupportedVersion
	switch {
	case errors.As(err, &corrupt):
		return &MetadataError{Kind: CorruptMetadata, err: err}
	case errors.As(err, &unsupported):
		return &MetadataError{Kind: UnsupportedMetadataVersion, err: err}
	default:
		return &MetadataError{Kind: CorruptMetadata, err: err}
	}
}

// nationalNumberDigits renders n.NationalNumber back into the digit string
// region patterns and formats expect, restoring any italian leading zeros
// that Parse stripped off before converting the national number to a
// uint64.
func (n ParsedNumber) nationalNumberDigits() string {
	digits := strconv.FormatUint(n.NationalNumber, 10)
	if n.ItalianLeadingZero && n.NumberOfLeadingZeros > 0 {
		digits = strings.Repeat("0", n.NumberOfLeadingZeros) + digits
	}
	return digits
}
