package metadata

import (
	"fmt"
	"sort"
	"sync"

	"go.uber.org/atomic"
	"go.uber.org/zap"

	"github.com/telekit/phonenumber/internal/regexcache"
)

// Store is the in-memory, immutable table of region metadata. It is built
// once by Default or LoadFromBytes and never mutated afterward; all accessor
// methods are lock-free reads over maps and slices fixed at construction
// time.
type Store struct {
	version string
	regions map[RegionID]*Region
	byCode  map[int][]*Region // ordered as the regions appear in the corpus
	loaded  atomic.Bool
}

// ForRegion returns the region's metadata, or nil if id is not present in
// the store. Lookup is O(1).
func (s *Store) ForRegion(id RegionID) *Region {
	return s.regions[id]
}

// ForCallingCode returns every region sharing calling code cc, in the order
// the corpus defines them; the main country for the code is not necessarily
// first.
// The slice is bounded by a small constant — the corpus never assigns more
// than a couple dozen regions to one calling code.
func (s *Store) ForCallingCode(cc int) []*Region {
	return s.byCode[cc]
}

// MainRegionForCode returns the region flagged "main country for code" for
// cc, or nil if cc is unknown to the store.
func (s *Store) MainRegionForCode(cc int) *Region {
	for _, r := range s.byCode[cc] {
		if r.MainCountryForCode {
			return r
		}
	}
	candidates := s.byCode[cc]
	if len(candidates) > 0 {
		return candidates[0]
	}
	return nil
}

// RegionForNumber picks, among every region sharing callingCode, the one
// whose LeadingDigits anchor matches nsn; when no anchored region matches,
// it falls back to the first region with no anchor of its own (a
// catch-all) whose general descriptor fully matches nsn, and failing that
// to MainRegionForCode.
func (s *Store) RegionForNumber(cache *regexcache.Cache, callingCode int, nsn string) *Region {
	candidates := s.byCode[callingCode]
	for _, r := range candidates {
		if r.LeadingDigits == "" {
			continue
		}
		re := cache.Get(`^(?:` + r.LeadingDigits + `)`)
		if loc := re.FindStringIndex(nsn); loc != nil && loc[0] == 0 {
			return r
		}
	}
	for _, r := range candidates {
		if r.LeadingDigits != "" {
			continue
		}
		if cache.MatchFull(r.GeneralDesc.Pattern, nsn) {
			return r
		}
	}
	return s.MainRegionForCode(callingCode)
}

// NonGeoForCode returns the non-geographic ("001") region metadata for cc,
// if the store defines one.
func (s *Store) NonGeoForCode(cc int) *Region {
	for _, r := range s.byCode[cc] {
		if r.ID == NonGeoRegion {
			return r
		}
	}
	return nil
}

// CallingCodeForRegion returns the calling code assigned to id, and
// whether id is known to the store.
func (s *Store) CallingCodeForRegion(id RegionID) (int, bool) {
	r := s.regions[id]
	if r == nil {
		return 0, false
	}
	return r.CountryCallingCode, true
}

// Regions returns every region id known to the store, sorted for
// deterministic iteration.
func (s *Store) Regions() []RegionID {
	out := make([]RegionID, 0, len(s.regions))
	for id := range s.regions {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Version returns the corpus version this store was built from, exposed
// for diagnostics so callers can log which dialing-plan snapshot a given
// deployment is running without asserting specific rule contents at
// compile time.
func (s *Store) Version() string {
	return s.version
}

// once guards construction of the package-level default store so that,
// regardless of contention, the curated dataset is only ever assembled a
// single time.
var (
	once          sync.Once
	defaultStore  *Store
	defaultLogger = zap.NewNop()
)

// Default returns the store built from the embedded curated dataset,
// constructing it on first call. Concurrent callers block on the same
// construction and then share the result; subsequent calls are lock-free.
func Default() *Store {
	once.Do(func() {
		defaultStore = build(curatedRegions, curatedVersion, defaultLogger)
	})
	return defaultStore
}

// SetLogger installs the logger used for diagnostics the next time Default
// constructs its store. It has no effect once Default has already run.
func SetLogger(log *zap.Logger) {
	if log != nil {
		defaultLogger = log
	}
}

func build(regions []*Region, version string, log *zap.Logger) *Store {
	s := &Store{
		version: version,
		regions: make(map[RegionID]*Region, len(regions)),
		byCode:  make(map[int][]*Region),
	}
	for _, r := range regions {
		s.regions[r.ID] = r
		s.byCode[r.CountryCallingCode] = append(s.byCode[r.CountryCallingCode], r)
	}
	// Deliberately not reordered: ForCallingCode disambiguation (used by
	// region_code_for_number) tries leading-digits anchors in the corpus's
	// own definition order before falling back to the main country, so the
	// main country's empty/catch-all anchor must stay wherever the dataset
	// places it rather than always leading.
	s.loaded.Store(true)
	log.Info("metadata store loaded",
		zap.String("version", version),
		zap.Int("regions", len(s.regions)),
		zap.Int("calling_codes", len(s.byCode)),
	)
	return s
}

// ErrUnknownRegion signals a lookup against a region id the store has no
// metadata for.
type ErrUnknownRegion struct {
	ID RegionID
}

func (e ErrUnknownRegion) Error() string {
	return fmt.Sprintf("metadata: unknown region %q", e.ID)
}
