package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultStoreSingleton(t *testing.T) {
	s1 := Default()
	s2 := Default()
	assert.Same(t, s1, s2)
}

func TestForRegion(t *testing.T) {
	s := Default()
	require.NotNil(t, s.ForRegion("US"))
	assert.Equal(t, 1, s.ForRegion("US").CountryCallingCode)
	assert.Nil(t, s.ForRegion("ZZ"))
}

func TestForCallingCodeAndMainRegion(t *testing.T) {
	s := Default()

	regions := s.ForCallingCode(44)
	ids := make([]RegionID, 0, len(regions))
	for _, r := range regions {
		ids = append(ids, r.ID)
	}
	assert.Contains(t, ids, RegionID("GB"))
	assert.Contains(t, ids, RegionID("JE"))

	main := s.MainRegionForCode(44)
	require.NotNil(t, main)
	assert.Equal(t, RegionID("GB"), main.ID)

	main = s.MainRegionForCode(1)
	require.NotNil(t, main)
	assert.Equal(t, RegionID("US"), main.ID)

	assert.Nil(t, s.MainRegionForCode(9999))
}

func TestNonGeoForCode(t *testing.T) {
	s := Default()
	r := s.NonGeoForCode(800)
	require.NotNil(t, r)
	assert.Equal(t, NonGeoRegion, r.ID)
}

func TestCallingCodeCoverageInvariant(t *testing.T) {
	s := Default()
	for _, id := range s.Regions() {
		r := s.ForRegion(id)
		cc, ok := s.CallingCodeForRegion(id)
		require.True(t, ok)
		assert.Equal(t, r.CountryCallingCode, cc)

		found := false
		for _, candidate := range s.ForCallingCode(cc) {
			if candidate.ID == id {
				found = true
				break
			}
		}
		assert.True(t, found, "region %s missing from its own calling-code bucket", id)

		main := s.MainRegionForCode(cc)
		require.NotNil(t, main)
		mainCC, ok := s.CallingCodeForRegion(main.ID)
		require.True(t, ok)
		assert.Equal(t, cc, mainCC)
	}
}

func TestVersion(t *testing.T) {
	assert.NotEmpty(t, Default().Version())
}

func TestExportLoadRoundTrip(t *testing.T) {
	s := Default()
	data, err := Export(s)
	require.NoError(t, err)

	loaded, err := LoadFromBytes(data, nil)
	require.NoError(t, err)

	assert.Equal(t, s.Version(), loaded.Version())
	assert.ElementsMatch(t, s.Regions(), loaded.Regions())
	assert.Equal(t, s.ForRegion("US").GeneralDesc, loaded.ForRegion("US").GeneralDesc)
}

func TestLoadFromBytesRejectsCorruptData(t *testing.T) {
	_, err := LoadFromBytes([]byte("not a gob stream"), nil)
	require.Error(t, err)
	var corrupt ErrCorruptMetadata
	assert.ErrorAs(t, err, &corrupt)
}

func TestLoadFromBytesRejectsFutureVersion(t *testing.T) {
	s := Default()
	data, err := Export(s)
	require.NoError(t, err)

	future := append([]byte(nil), data...)
	// Re-encode with a bumped version to simulate an asset this build
	// predates, without hand-crafting a gob stream byte-for-byte.
	var a asset
	require.NoError(t, decodeAsset(future, &a))
	a.Version = SchemaVersion + 1
	bumped, err := encodeAsset(a)
	require.NoError(t, err)

	_, err = LoadFromBytes(bumped, nil)
	var unsupported ErrUnsupportedVersion
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, SchemaVersion+1, unsupported.Found)
}
