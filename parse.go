package goip6

import (
	"braces.dev/errtrace"

	"github.com/goip6/goip6/internal/errorutil"
	"github.com/goip6/goip6/internal/grammar"
	"github.com/goip6/goip6/internal/util"
)

// Parse parses an IPv6 address from a given input s (string or
// []byte). Surrounding whitespace is ignored. Every recognized
// grammar is tried in a fixed order: preferred, compressed,
// IPv4-embedded, IPv4-embedded compressed and, when compiled in,
// base85. Fails with ErrInvalidAddress when no grammar matches.
func Parse[T ~string | ~[]byte](s T) (Address, error) {
	groups, err := grammar.Decode(s)
	if err != nil {
		return Address{}, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidAddress, err))
	}
	return Address{groups: groups}, nil
}

// MustParse parses an IPv6 address and panics on failure. Intended
// for initialization of address constants from trusted input.
func MustParse[T ~string | ~[]byte](s T) Address {
	return util.Must2(Parse(s))
}

// IsValid reports whether s is a valid textual IPv6 address in any of
// the recognized grammars.
func IsValid[T ~string | ~[]byte](s T) bool {
	return grammar.IsAddress(s)
}
