package goip6

import (
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/goip6/goip6/internal/errorutil"
	"github.com/goip6/goip6/internal/grammar"
	"github.com/goip6/goip6/internal/util"
)

// MaxPrefixLen is the largest accepted routing prefix length.
const MaxPrefixLen = 64

// Prefixed is a container for a validated address string and an
// optional prefix length. The prefix length is advisory metadata and
// is not part of the Address value itself.
type Prefixed struct {
	addr   string
	plen   uint8
	hasLen bool
}

// ParsePrefixed parses an "address" or "address/prefix" string from a
// given input s (string or []byte). The address portion must match
// one of the recognized grammars; the prefix portion, when present,
// must be a decimal integer in [0, 64].
func ParsePrefixed[T ~string | ~[]byte](s T) (Prefixed, error) {
	str := util.TrimSP(string(s))
	if addr, plen, found := strings.Cut(str, "/"); found {
		return errtrace.Wrap2(SplitPrefixed(addr, plen))
	}
	return errtrace.Wrap2(SplitPrefixed(str, ""))
}

// SplitPrefixed validates a pre-split address and prefix pair. An
// empty plen means no prefix is attached.
func SplitPrefixed[T ~string | ~[]byte](addr, plen T) (Prefixed, error) {
	as := util.TrimSP(string(addr))
	if _, err := grammar.Classify(as); err != nil {
		return Prefixed{}, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidAddress, err))
	}

	ps := util.TrimSP(string(plen))
	if ps == "" {
		return Prefixed{addr: as}, nil
	}
	for i := 0; i < len(ps); i++ {
		if ps[i] < '0' || ps[i] > '9' {
			return Prefixed{}, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidPrefixLength, "%q", ps))
		}
	}
	n, err := strconv.Atoi(ps)
	if err != nil || n > MaxPrefixLen {
		return Prefixed{}, errtrace.Wrap(errorutil.NewWrapperError(ErrPrefixOutOfRange, "%s", ps))
	}
	return Prefixed{addr: as, plen: uint8(n), hasLen: true}, nil
}

// Addr returns the validated address text as provided during parsing.
func (p Prefixed) Addr() string { return p.addr }

// Len returns the prefix length, in case it is set, and a bool flag
// indicating whether it is set.
func (p Prefixed) Len() (uint8, bool) { return p.plen, p.hasLen }

// Address parses the validated address text into an Address.
func (p Prefixed) Address() (Address, error) {
	return errtrace.Wrap2(Parse(p.addr))
}

// String formats the pair as "address/prefix", or the bare address
// when no prefix is set.
func (p Prefixed) String() string {
	if !p.hasLen {
		return p.addr
	}
	return p.addr + "/" + strconv.Itoa(int(p.plen))
}

// IsZero reports whether the pair holds no address and no prefix.
func (p Prefixed) IsZero() bool { return p.addr == "" && !p.hasLen }

// MarshalText encodes the pair into its textual representation
// suitable for JSON/Text marshalling.
func (p Prefixed) MarshalText() (text []byte, err error) {
	return []byte(p.String()), nil
}

// UnmarshalText parses a textual representation of an
// address/prefix pair into the receiver.
func (p *Prefixed) UnmarshalText(text []byte) error {
	var err error
	*p, err = ParsePrefixed(text)
	return errtrace.Wrap(err)
}
