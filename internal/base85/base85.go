// Package base85 implements the RFC1924 compact textual form of an
// IPv6 address: the 128-bit value written as exactly 20 digits in
// base 85.
package base85

//go:generate errtrace -w .

import (
	"math/big"
	"strings"

	"braces.dev/errtrace"

	"github.com/goip6/goip6/internal/errorutil"
)

// Alphabet is the RFC1924 digit set, in digit-value order.
const Alphabet = "0123456789" +
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"abcdefghijklmnopqrstuvwxyz" +
	"!#$%&()*+-;<=>?@^_`{|}~"

// Length is the fixed size of an encoded address.
const Length = 20

const (
	ErrLength errorutil.Error = "base85 text must be exactly 20 characters"
	ErrDigit  errorutil.Error = "invalid base85 digit"
	ErrRange  errorutil.Error = "base85 value exceeds 128 bits"
)

var base = big.NewInt(int64(len(Alphabet)))

// Encode renders the eight hexadecets as a fixed 20-character base85
// string, most significant digit first.
func Encode(groups [8]uint16) string {
	v := new(big.Int)
	for _, g := range groups {
		v.Lsh(v, 16)
		v.Or(v, big.NewInt(int64(g)))
	}

	var buf [Length]byte
	rem := new(big.Int)
	for i := Length - 1; i >= 0; i-- {
		v.QuoRem(v, base, rem)
		buf[i] = Alphabet[rem.Int64()]
	}
	return string(buf[:])
}

// Decode converts a 20-character base85 string back into eight
// hexadecets. The big-integer extraction naturally stops once the
// value reaches zero, so the result is left-padded with zero groups.
func Decode(s string) ([8]uint16, error) {
	var groups [8]uint16
	if len(s) != Length {
		return groups, errtrace.Wrap(errorutil.NewWrapperError(ErrLength, "got %d", len(s)))
	}

	v := new(big.Int)
	d := new(big.Int)
	for i := 0; i < len(s); i++ {
		idx := strings.IndexByte(Alphabet, s[i])
		if idx < 0 {
			return groups, errtrace.Wrap(errorutil.NewWrapperError(ErrDigit, "%q", s[i]))
		}
		v.Mul(v, base)
		v.Add(v, d.SetInt64(int64(idx)))
	}

	low := big.NewInt(0xffff)
	for i := 7; i >= 0 && v.Sign() > 0; i-- {
		groups[i] = uint16(d.And(v, low).Uint64())
		v.Rsh(v, 16)
	}
	if v.Sign() > 0 {
		return [8]uint16{}, errtrace.Wrap(errorutil.NewWrapperError(ErrRange, "%s", s))
	}
	return groups, nil
}
