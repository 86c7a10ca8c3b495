package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/telekit/phonenumber/internal/metadata"
	"github.com/telekit/phonenumber/internal/regexcache"
	"github.com/telekit/phonenumber/internal/resolver"
)

func TestParsePlusSignWithExtension(t *testing.T) {
	store := metadata.Default()
	cache := regexcache.New()

	res, err := Parse(store, cache, "", "+1 650-253-0000 ext. 123")
	require.NoError(t, err)
	assert.Equal(t, 1, res.CallingCode)
	assert.EqualValues(t, 6502530000, res.NationalNumber)
	assert.Equal(t, "123", res.Extension)
	assert.Equal(t, resolver.FromNumberWithPlusSign, res.CountryCodeSource)
	assert.False(t, res.ItalianLeadingZero)
	assert.Equal(t, 1, res.NumberOfLeadingZeros)
}

func TestParseDefaultRegionStripsTrunkPrefix(t *testing.T) {
	store := metadata.Default()
	cache := regexcache.New()

	res, err := Parse(store, cache, "CH", "044 668 18 00")
	require.NoError(t, err)
	assert.Equal(t, 41, res.CallingCode)
	assert.EqualValues(t, 446681800, res.NationalNumber)
	assert.Equal(t, resolver.FromDefaultCountry, res.CountryCodeSource)
}

func TestParseItalianLeadingZero(t *testing.T) {
	store := metadata.Default()
	cache := regexcache.New()

	res, err := Parse(store, cache, "IT", "02 3661 8300")
	require.NoError(t, err)
	assert.Equal(t, 39, res.CallingCode)
	assert.EqualValues(t, 236618300, res.NationalNumber)
	assert.True(t, res.ItalianLeadingZero)
	assert.Equal(t, 1, res.NumberOfLeadingZeros)
}

func TestParseGBMobile(t *testing.T) {
	store := metadata.Default()
	cache := regexcache.New()

	res, err := Parse(store, cache, "", "+44 7400 123456")
	require.NoError(t, err)
	assert.Equal(t, 44, res.CallingCode)
	assert.EqualValues(t, 7400123456, res.NationalNumber)
}

func TestParseIddPrefixFromDefaultRegion(t *testing.T) {
	store := metadata.Default()
	cache := regexcache.New()

	res, err := Parse(store, cache, "US", "011 41 44 668 18 00")
	require.NoError(t, err)
	assert.Equal(t, 41, res.CallingCode)
	assert.EqualValues(t, 446681800, res.NationalNumber)
	assert.Equal(t, resolver.FromNumberWithIdd, res.CountryCodeSource)
}

func TestParseRejectsGarbage(t *testing.T) {
	store := metadata.Default()
	cache := regexcache.New()

	_, err := Parse(store, cache, "US", "not a number at all")
	assert.ErrorIs(t, err, ErrNotANumber)
}

func TestParseRejectsInvalidCharacter(t *testing.T) {
	store := metadata.Default()
	cache := regexcache.New()

	_, err := Parse(store, cache, "US", "1234@567890")
	assert.ErrorIs(t, err, ErrInvalidCharacter)
}

func TestParseRejectsTooShort(t *testing.T) {
	store := metadata.Default()
	cache := regexcache.New()

	_, err := Parse(store, cache, "", "+1")
	assert.ErrorIs(t, err, ErrTooShortNsn)
}

func TestParseRejectsShortUSNumber(t *testing.T) {
	store := metadata.Default()
	cache := regexcache.New()

	_, err := Parse(store, cache, "", "+1 000")
	assert.ErrorIs(t, err, ErrTooShortNsn)
}

func TestParseBrazilLongDistanceCarrierCode(t *testing.T) {
	store := metadata.Default()
	cache := regexcache.New()

	// "0" (trunk) + "21" (long-distance carrier selection) + "11" (area
	// code) + "987654321" (subscriber number) dialed after the country
	// code, the way a domestic long-distance caller would write out the
	// full number alongside a "+". The carrier-selection code has no
	// place in the national significant number, but the area code glued
	// to it does, so the national-prefix transform rule has to put the
	// area code back rather than just cutting the whole prefix away.
	res, err := Parse(store, cache, "", "+5502111987654321")
	require.NoError(t, err)
	assert.Equal(t, 55, res.CallingCode)
	assert.EqualValues(t, 11987654321, res.NationalNumber)
	assert.Equal(t, "21", res.PreferredCarrierCode)
}

func TestParseBrazilWithoutTrunkPrefixLeavesCarrierCodeEmpty(t *testing.T) {
	store := metadata.Default()
	cache := regexcache.New()

	res, err := Parse(store, cache, "", "+5511987654321")
	require.NoError(t, err)
	assert.Equal(t, 55, res.CallingCode)
	assert.EqualValues(t, 11987654321, res.NationalNumber)
	assert.Equal(t, "", res.PreferredCarrierCode)
}

func TestParseRejectsMissingCountryCode(t *testing.T) {
	store := metadata.Default()
	cache := regexcache.New()

	_, err := Parse(store, cache, "", "6502530000")
	assert.ErrorIs(t, err, ErrInvalidCountryCode)
}
