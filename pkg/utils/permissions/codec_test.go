package permissions

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBinaryToDecimal(t *testing.T) {
	tests := []struct {
		binary   string
		expected string
	}{
		{"111111111", "777"},
		{"100100100", "444"},
		{"010010010", "222"},
		{"001001001", "111"},
		{"000000000", "000"},
		{"001010011", "123"},
		{"000000111", "007"},
		{"111101101", "755"},
	}

	for _, tt := range tests {
		t.Run(tt.binary, func(t *testing.T) {
			result, err := BinaryToDecimal(tt.binary)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestBinaryToDecimal_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"too long", "1234567890"},
		{"too short", "12345678"},
		{"empty string", ""},
		{"digit at end", "000000009"},
		{"digit at start", "900000000"},
		{"digit in middle", "000090000"},
		{"two in group", "200000000"},
		{"decimal form", "777"},
		{"ten bits", "1111111111"},
		{"non-ascii", "00000000é"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := BinaryToDecimal(tt.input)
			require.Error(t, err)
			assert.Empty(t, result)
			assert.True(t, errors.Is(err, ErrInvalidInput))

			var invalid *InvalidInputError
			require.True(t, errors.As(err, &invalid))
			assert.Equal(t, tt.input, invalid.Input)
			assert.Equal(t, EncodingBinary, invalid.Want)
		})
	}
}

func TestDecimalToBinary(t *testing.T) {
	tests := []struct {
		decimal  string
		expected string
	}{
		{"777", "111111111"},
		{"444", "100100100"},
		{"222", "010010010"},
		{"111", "001001001"},
		{"000", "000000000"},
		{"123", "001010011"},
		{"007", "000000111"},
		{"644", "110100100"},
	}

	for _, tt := range tests {
		t.Run(tt.decimal, func(t *testing.T) {
			result, err := DecimalToBinary(tt.decimal)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestDecimalToBinary_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"too long", "1234"},
		{"too short", "12"},
		{"empty string", ""},
		{"out of range", "888"},
		{"nine", "079"},
		{"letters", "abc"},
		{"sign", "-77"},
		{"binary form", "111111111"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := DecimalToBinary(tt.input)
			require.Error(t, err)
			assert.Empty(t, result)
			assert.ErrorIs(t, err, ErrInvalidInput)

			var invalid *InvalidInputError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, tt.input, invalid.Input)
			assert.Equal(t, EncodingDecimal, invalid.Want)
		})
	}
}

func TestIsBinaryPermission(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"111111111", true},
		{"001001001", true},
		{"000000000", true},
		{"a00000000", false},
		{"00000000a", false},
		{"1", false},
		{"0", false},
		{"9", false},
		{"19", false},
		{"a", false},
		{"1a", false},
		{"a1", false},
		{"", false},
		{"0000000000", false},
		{" 00000000", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsBinaryPermission(tt.input))
		})
	}
}

func TestIsDecimalPermission(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"777", true},
		{"444", true},
		{"111", true},
		{"000", true},
		{"1", false},
		{"8", false},
		{"888", false},
		{"778", false},
		{"a", false},
		{"abc", false},
		{"", false},
		{"0777", false},
		{"７７７", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsDecimalPermission(tt.input))
		})
	}
}

func TestRoundTrip_AllDecimals(t *testing.T) {
	seen := make(map[string]string, 512)
	for a := '0'; a <= '7'; a++ {
		for b := '0'; b <= '7'; b++ {
			for c := '0'; c <= '7'; c++ {
				decimal := string([]rune{a, b, c})

				binary, err := DecimalToBinary(decimal)
				require.NoError(t, err, decimal)
				require.True(t, IsBinaryPermission(binary), binary)

				back, err := BinaryToDecimal(binary)
				require.NoError(t, err, binary)
				require.Equal(t, decimal, back)

				prev, dup := seen[binary]
				require.False(t, dup, "%s and %s both map to %s", prev, decimal, binary)
				seen[binary] = decimal
			}
		}
	}
	assert.Len(t, seen, 512)
}

func TestRoundTrip_AllBinaries(t *testing.T) {
	seen := make(map[string]bool, 512)
	for n := 0; n < 512; n++ {
		var buf [BinaryLength]byte
		for i := range buf {
			buf[i] = '0' + byte((n>>(BinaryLength-1-i))&1)
		}
		binary := string(buf[:])

		decimal, err := BinaryToDecimal(binary)
		require.NoError(t, err, binary)
		require.True(t, IsDecimalPermission(decimal), decimal)

		back, err := DecimalToBinary(decimal)
		require.NoError(t, err, decimal)
		require.Equal(t, binary, back)

		seen[decimal] = true
	}
	assert.Len(t, seen, 512)
}

func TestInvalidInputError_Message(t *testing.T) {
	_, err := DecimalToBinary("888")
	require.Error(t, err)
	assert.Equal(t, `❌ invalid permission input: "888" is not a decimal permission`, err.Error())

	_, _, err = Parse("rwx")
	require.Error(t, err)
	assert.Equal(t, `❌ invalid permission input: "rwx" is not a binary or decimal permission`, err.Error())
}
