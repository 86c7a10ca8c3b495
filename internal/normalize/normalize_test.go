package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"+1 650-253-0000":  "+16502530000",
		"1-800-FLOWERS":    "18003569377",
		"０４４ ６６８":         "044668",
		"٠١٢٣٤٥٦٧٨٩":       "0123456789",
		"(212) 555-0100":   "2125550100",
	}

	for in, want := range cases {
		assert.Equal(t, want, Normalize(in), "input=%q", in)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"+1 650-253-0000", "1-800-FLOWERS", "０４４ ６６８"}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		assert.Equal(t, once, twice, "input=%q", in)
	}
}

func TestNormalizeDigitsOnly(t *testing.T) {
	assert.Equal(t, "16502530000", NormalizeDigitsOnly("+1 650-253-0000"))
	assert.Equal(t, "0123456789", NormalizeDigitsOnly("٠١٢٣٤٥٦٧٨٩"))
}

func TestNormalizeExtensionDigits(t *testing.T) {
	assert.Equal(t, "42#", NormalizeExtensionDigits("42#"))
	assert.Equal(t, "*42", NormalizeExtensionDigits("*42"))
}

func TestExtractPossibleNumber(t *testing.T) {
	body, err := ExtractPossibleNumber("Tel: +1 (650) 253-0000)")
	require.NoError(t, err)
	assert.Equal(t, "+1 (650) 253-0000", body)

	body, err = ExtractPossibleNumber("tel:+12125550100;ext=42")
	require.NoError(t, err)
	assert.Equal(t, "+12125550100", body)

	body, err = ExtractPossibleNumber("Call +1 (650) 253-0000 now")
	require.NoError(t, err)
	assert.Equal(t, "+1 (650) 253-0000 now", body)

	_, err = ExtractPossibleNumber("call me maybe")
	assert.ErrorIs(t, err, ErrTooShort)

	_, err = ExtractPossibleNumber("x1")
	assert.ErrorIs(t, err, ErrTooShort)

	_, err = ExtractPossibleNumber("+1 6502530000 @invalid")
	assert.ErrorIs(t, err, ErrInvalidCharacter)
}
