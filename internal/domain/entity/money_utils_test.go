package entity

import (
	"testing"

	errs "github.com/camilosanchez/virtual-wallet/internal/domain/error"
	"github.com/stretchr/testify/assert"
)

func TestValidateAndConvertAmount(t *testing.T) {
	t.Run("Valid amounts", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected int64
		}{
			{"100.00", 10000},
			{"0.01", 1},
			{"0.10", 10},
			{"1", 100},
			{"1.5", 150},
			{"50000", 5000000},
			{"1234567.89", 123456789},
			{"0.00", 0},
			{"0", 0},
		}

		for _, tc := range testCases {
			t.Run(tc.input, func(t *testing.T) {
				cents, err := ValidateAndConvertAmount(tc.input)
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, cents)
			})
		}
	})

	t.Run("Invalid amounts", func(t *testing.T) {
		testCases := []struct {
			input       string
			errorType   error
			description string
		}{
			{"", errs.ErrInvalidAmount, "Empty string"},
			{"   ", errs.ErrInvalidAmount, "Whitespace only"},
			{"-1.00", errs.ErrNegativeAmount, "Negative amount"},
			{"1.234", errs.ErrInvalidAmount, "Too many decimal places"},
			{"abc", errs.ErrInvalidAmount, "Non-numeric"},
			{"1,000.00", errs.ErrInvalidAmount, "Comma as thousands separator"},
			{"1.00.00", errs.ErrInvalidAmount, "Multiple decimal points"},
			{"$100", errs.ErrInvalidAmount, "Currency symbol"},
		}

		for _, tc := range testCases {
			t.Run(tc.description, func(t *testing.T) {
				_, err := ValidateAndConvertAmount(tc.input)
				assert.Error(t, err)
				assert.ErrorIs(t, err, tc.errorType)
			})
		}
	})

	t.Run("Edge cases", func(t *testing.T) {
		// Very large valid number
		cents, err := ValidateAndConvertAmount("9999999999.99")
		assert.NoError(t, err)
		assert.Equal(t, int64(999999999999), cents)

		// Larger than int64 range
		_, err = ValidateAndConvertAmount("99999999999999999999.99")
		assert.ErrorIs(t, err, errs.ErrAmountOverflow)
	})
}

func TestValidatePositiveAmount(t *testing.T) {
	t.Run("Positive amount", func(t *testing.T) {
		cents, err := ValidatePositiveAmount("50.25")
		assert.NoError(t, err)
		assert.Equal(t, int64(5025), cents)
	})

	t.Run("Zero is rejected", func(t *testing.T) {
		_, err := ValidatePositiveAmount("0")
		assert.ErrorIs(t, err, errs.ErrNonPositiveAmount)

		_, err = ValidatePositiveAmount("0.00")
		assert.ErrorIs(t, err, errs.ErrNonPositiveAmount)
	})

	t.Run("Negative is rejected", func(t *testing.T) {
		_, err := ValidatePositiveAmount("-5.00")
		assert.ErrorIs(t, err, errs.ErrNegativeAmount)
	})
}

func TestCentsToString(t *testing.T) {
	testCases := []struct {
		cents    int64
		expected string
	}{
		{10000, "100.00"},
		{1, "0.01"},
		{10, "0.10"},
		{150, "1.50"},
		{0, "0.00"},
		{4500000, "45000.00"},
		{123456789, "1234567.89"},
		{-150, "-1.50"},
		{-1, "-0.01"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, CentsToString(tc.cents))
		})
	}
}
