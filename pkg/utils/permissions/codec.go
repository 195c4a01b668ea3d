// Package permissions converts Unix permission triples between their
// 9-character binary form ("111101101") and their 3-digit octal form
// ("755").
//
// The package is pure: no I/O, no package-level mutable state, safe for
// concurrent use.
package permissions

const (
	// BinaryLength is the length of a binary permission string.
	BinaryLength = 9
	// DecimalLength is the length of a decimal permission string.
	DecimalLength = 3

	groupBits = 3
)

// IsBinaryPermission reports whether s is exactly nine '0' or '1' characters.
func IsBinaryPermission(s string) bool {
	if len(s) != BinaryLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] != '0' && s[i] != '1' {
			return false
		}
	}
	return true
}

// IsDecimalPermission reports whether s is exactly three octal digits.
func IsDecimalPermission(s string) bool {
	if len(s) != DecimalLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '7' {
			return false
		}
	}
	return true
}

// BinaryToDecimal converts a binary permission string into its decimal form.
//
// Each group of three bits becomes one octal digit, so "000" still
// contributes a '0' and the result is always three characters:
//
//	BinaryToDecimal("111111111") => "777"
//	BinaryToDecimal("000000111") => "007"
func BinaryToDecimal(s string) (string, error) {
	if !IsBinaryPermission(s) {
		return "", invalidInput(s, EncodingBinary)
	}

	var out [DecimalLength]byte
	for g := 0; g < DecimalLength; g++ {
		var digit byte
		for _, bit := range []byte(s[g*groupBits : (g+1)*groupBits]) {
			digit = digit<<1 | (bit - '0')
		}
		out[g] = '0' + digit
	}
	return string(out[:]), nil
}

// DecimalToBinary converts a decimal permission string into its binary form.
//
//	DecimalToBinary("777") => "111111111"
//	DecimalToBinary("123") => "001010011"
func DecimalToBinary(s string) (string, error) {
	if !IsDecimalPermission(s) {
		return "", invalidInput(s, EncodingDecimal)
	}

	var out [BinaryLength]byte
	for g := 0; g < DecimalLength; g++ {
		digit := s[g] - '0'
		for b := 0; b < groupBits; b++ {
			out[g*groupBits+b] = '0' + ((digit >> (groupBits - 1 - b)) & 1)
		}
	}
	return string(out[:]), nil
}
