package goip6

//go:generate go tool errtrace -w .

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/goip6/goip6/internal/base85"
	"github.com/goip6/goip6/internal/errorutil"
)

// Address is the canonical representation of an IPv6 address: eight
// 16-bit hexadecets in network order, most significant first. The
// zero value is the unspecified address "::". Address is an immutable
// value type and is safe for concurrent use.
type Address struct {
	groups [8]uint16
}

// AddressFrom returns an Address holding the given hexadecets.
func AddressFrom(groups [8]uint16) Address {
	return Address{groups: groups}
}

// Groups returns the eight hexadecets of the address.
func (a Address) Groups() [8]uint16 { return a.groups }

// IsZero reports whether the address is the all-zero (unspecified)
// address.
func (a Address) IsZero() bool { return a.groups == [8]uint16{} }

// Equal reports whether the address equals the provided value,
// accepting Address and *Address.
func (a Address) Equal(val any) bool {
	switch v := val.(type) {
	case Address:
		return a.groups == v.groups
	case *Address:
		return v != nil && a.groups == v.groups
	default:
		return false
	}
}

// String formats the address in its compressed textual form.
func (a Address) String() string { return a.Compressed() }

// Format implements fmt.Formatter to support custom formatting verbs
// for Address values.
func (a Address) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, a.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(a.String()))
		return
	default:
		if !f.Flag('+') && !f.Flag('#') {
			fmt.Fprint(f, a.String())
			return
		}

		type hideMethods Address
		type Address hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), Address(a))
		return
	}
}

// MarshalText encodes the address into its compressed textual
// representation suitable for JSON/Text marshalling.
func (a Address) MarshalText() (text []byte, err error) {
	return []byte(a.String()), nil
}

// UnmarshalText parses a textual representation of an address into
// the receiver.
func (a *Address) UnmarshalText(text []byte) error {
	var err error
	*a, err = Parse(text)
	return errtrace.Wrap(err)
}

// Preferred renders the RFC1884 preferred form: all eight hexadecets
// as lowercase hex without leading zeros, joined by colons, with no
// zero compression.
func (a Address) Preferred() string {
	var sb strings.Builder
	sb.Grow(39)
	for i, g := range a.groups {
		if i > 0 {
			sb.WriteByte(':')
		}
		sb.WriteString(strconv.FormatUint(uint64(g), 16))
	}
	return sb.String()
}

var colonRun = regexp.MustCompile(`:{3,7}`)

// Compressed renders the zero-compressed form. The transform chain
// over the preferred rendering is fixed: one leading "0:" becomes
// ":", every ":0" becomes ":" left to right, and a run of 3-7 colons
// collapses to "::". Non-contiguous zero groups can over-collapse;
// that behavior is part of the contract and is kept as is.
func (a Address) Compressed() string {
	s := a.Preferred()
	if strings.HasPrefix(s, "0:") {
		s = s[1:]
	}
	s = strings.ReplaceAll(s, ":0", ":")
	return colonRun.ReplaceAllString(s, "::")
}

// IPv4 renders the full legacy form of an IPv4-compatible or
// IPv4-mapped address: six colon-hex groups followed by the embedded
// address as a dotted quad. Fails with ErrNotIPv4 for any other
// address.
func (a Address) IPv4() (string, error) {
	if !a.ipv4Derived() {
		return "", errtrace.Wrap(errorutil.NewWrapperError(ErrNotIPv4, "%s", a.Preferred()))
	}
	var sb strings.Builder
	sb.Grow(28)
	for _, g := range a.groups[:6] {
		sb.WriteString(strconv.FormatUint(uint64(g), 16))
		sb.WriteByte(':')
	}
	sb.WriteString(a.quad())
	return sb.String(), nil
}

// IPv4Compressed renders the compressed legacy form: "::" followed by
// the dotted quad, with the ffff marker kept for IPv4-mapped
// addresses. Fails with ErrNotIPv4 for any other address.
func (a Address) IPv4Compressed() (string, error) {
	if !a.ipv4Derived() {
		return "", errtrace.Wrap(errorutil.NewWrapperError(ErrNotIPv4, "%s", a.Preferred()))
	}
	if a.groups[5] == 0 {
		return "::" + a.quad(), nil
	}
	return "::" + strconv.FormatUint(uint64(a.groups[5]), 16) + ":" + a.quad(), nil
}

// Base85 renders the RFC1924 form: the 128-bit value as exactly 20
// base85 digits. Fails with ErrUnsupportedFormat when base85 support
// is not compiled in.
func (a Address) Base85() (string, error) {
	if !base85.Supported {
		return "", errtrace.Wrap(errorutil.NewWrapperError(ErrUnsupportedFormat, "base85 support is not compiled in"))
	}
	return base85.Encode(a.groups), nil
}

// ipv4Derived reports whether the address lies in the IPv4-compatible
// or IPv4-mapped space: the first five hexadecets are zero and the
// sixth is zero or 0xffff.
func (a Address) ipv4Derived() bool {
	return a.groups[0]|a.groups[1]|a.groups[2]|a.groups[3]|a.groups[4] == 0 &&
		(a.groups[5] == 0 || a.groups[5] == 0xffff)
}

// quad renders hexadecets 6 and 7 as a dotted-quad IPv4 address.
func (a Address) quad() string {
	return strconv.Itoa(int(a.groups[6]>>8)) + "." +
		strconv.Itoa(int(a.groups[6]&0xff)) + "." +
		strconv.Itoa(int(a.groups[7]>>8)) + "." +
		strconv.Itoa(int(a.groups[7]&0xff))
}
