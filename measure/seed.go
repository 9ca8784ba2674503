package main

import (
	"github.com/pkg/errors"
)

const seedBytes = 32

// ErrBadSeed is returned for seeds that aren't 1 to 64 hex digits.
var ErrBadSeed = errors.Errorf("seeds must contain 1 to %d hex digits", seedBytes*2)

// decodeSeed reads s as a little endian hex number: the last digit is the low nibble of the first
// byte. Missing high digits are zero.
func decodeSeed(s string) ([seedBytes]byte, error) {
	var seed [seedBytes]byte
	if len(s) == 0 || len(s) > seedBytes*2 {
		return seed, errors.Wrapf(ErrBadSeed, "%q", s)
	}
	for i := range len(s) {
		var nibble byte
		switch c := s[len(s)-1-i]; {
		case '0' <= c && c <= '9':
			nibble = c - '0'
		case 'a' <= c && c <= 'f':
			nibble = c - 'a' + 10
		case 'A' <= c && c <= 'F':
			nibble = c - 'A' + 10
		default:
			return seed, errors.Wrapf(ErrBadSeed, "%q has %q", s, c)
		}
		seed[i/2] |= nibble << (4 * (i % 2))
	}
	return seed, nil
}
