package permissions

import (
	"fmt"
	"strconv"
)

// PermMask selects the nine permission bits of a mode.
const PermMask = 0o777

// Encoding identifies which textual form a permission string uses.
type Encoding int

const (
	EncodingUnknown Encoding = iota
	EncodingBinary
	EncodingDecimal
)

func (e Encoding) String() string {
	switch e {
	case EncodingBinary:
		return "binary"
	case EncodingDecimal:
		return "decimal"
	default:
		return "unknown"
	}
}

// Detect classifies s. The two encodings have different lengths, so at most
// one validator can accept a given string.
func Detect(s string) Encoding {
	switch {
	case IsBinaryPermission(s):
		return EncodingBinary
	case IsDecimalPermission(s):
		return EncodingDecimal
	default:
		return EncodingUnknown
	}
}

// DecimalToMode parses a decimal permission string such as "755" into 0o755.
func DecimalToMode(s string) (uint16, error) {
	if !IsDecimalPermission(s) {
		return 0, invalidInput(s, EncodingDecimal)
	}
	return parseMode(s, 8)
}

// BinaryToMode parses a binary permission string such as "111101101" into 0o755.
func BinaryToMode(s string) (uint16, error) {
	if !IsBinaryPermission(s) {
		return 0, invalidInput(s, EncodingBinary)
	}
	return parseMode(s, 2)
}

// ModeToDecimal formats the permission bits of mode as three octal digits.
// Bits above PermMask (setuid, sticky, file type) are dropped.
func ModeToDecimal(mode uint16) string {
	return fmt.Sprintf("%03o", mode&PermMask)
}

// ModeToBinary formats the permission bits of mode as nine binary digits.
func ModeToBinary(mode uint16) string {
	return fmt.Sprintf("%09b", mode&PermMask)
}

// Parse accepts either encoding and returns the mode along with the encoding
// that matched.
func Parse(s string) (uint16, Encoding, error) {
	switch enc := Detect(s); enc {
	case EncodingBinary:
		mode, err := BinaryToMode(s)
		return mode, enc, err
	case EncodingDecimal:
		mode, err := DecimalToMode(s)
		return mode, enc, err
	default:
		return 0, EncodingUnknown, invalidInput(s, EncodingUnknown)
	}
}

// Pair holds the two encodings of the same mode.
type Pair struct {
	Binary  string
	Decimal string
}

// Table returns every valid pair, ordered by mode from 000 to 777.
func Table() []Pair {
	pairs := make([]Pair, 0, PermMask+1)
	for mode := uint16(0); mode <= PermMask; mode++ {
		pairs = append(pairs, Pair{
			Binary:  ModeToBinary(mode),
			Decimal: ModeToDecimal(mode),
		})
	}
	return pairs
}

func parseMode(s string, base int) (uint16, error) {
	val, err := strconv.ParseUint(s, base, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid permission string %q: %w", s, err)
	}
	return uint16(val), nil
}
