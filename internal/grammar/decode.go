package grammar

import (
	"net"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/goip6/goip6/internal/errorutil"
)

func newMalformedInputErr(args ...any) error {
	return errorutil.NewWrapperError(ErrMalformedInput, args...) //errtrace:skip
}

func decodePreferred(s string) ([8]uint16, error) {
	return errtrace.Wrap2(decodeGroups(strings.Split(s, ":")))
}

// decodeCompressed substitutes the elision marker with the missing
// separators and decodes the result as a preferred form. A literally
// written preferred address accounts for 9 colons against the "::"
// marker, so the substitution restores 9 - len(present) of them.
func decodeCompressed(s string) ([8]uint16, error) {
	missing := 9 - strings.Count(s, ":")
	expanded := strings.Replace(s, "::", strings.Repeat(":", missing), 1)
	return errtrace.Wrap2(decodeGroups(strings.Split(expanded, ":")))
}

func decodeIPv4(s string) ([8]uint16, error) {
	return errtrace.Wrap2(decodeHexQuad(s))
}

// decodeIPv4Compressed expands the elision marker against a 7-colon
// baseline: the trailing field is a dotted quad, not a hex group, so
// the fully written form carries one separator less.
func decodeIPv4Compressed(s string) ([8]uint16, error) {
	missing := 8 - strings.Count(s, ":")
	expanded := strings.Replace(s, "::", strings.Repeat(":", missing), 1)
	return errtrace.Wrap2(decodeHexQuad(expanded))
}

func decodeGroups(fields []string) ([8]uint16, error) {
	var groups [8]uint16
	if len(fields) != 8 {
		return groups, errtrace.Wrap(errorutil.Errorf("%d groups, want 8", len(fields)))
	}
	for i, f := range fields {
		// Empty fields occur only at the very edges after elision
		// expansion and stand for zero groups.
		if f == "" {
			continue
		}
		v, err := strconv.ParseUint(f, 16, 16)
		if err != nil {
			return groups, errtrace.Wrap(err)
		}
		groups[i] = uint16(v)
	}
	return groups, nil
}

func decodeHexQuad(s string) ([8]uint16, error) {
	var groups [8]uint16

	i := strings.LastIndex(s, ":")
	fields := strings.Split(s[:i], ":")
	if len(fields) != 6 {
		return groups, errtrace.Wrap(errorutil.Errorf("%d hex groups before the dotted quad, want 6", len(fields)))
	}
	for j, f := range fields {
		if f == "" {
			continue
		}
		v, err := strconv.ParseUint(f, 16, 16)
		if err != nil {
			return groups, errtrace.Wrap(err)
		}
		groups[j] = uint16(v)
	}

	hi, lo, err := decodeQuad(s[i+1:])
	if err != nil {
		return groups, errtrace.Wrap(err)
	}
	groups[6], groups[7] = hi, lo
	return groups, nil
}

// decodeQuad validates a dotted-quad IPv4 string and packs its octets
// big-endian into two hexadecets.
func decodeQuad(s string) (hi, lo uint16, err error) {
	v4 := net.ParseIP(s).To4()
	if v4 == nil {
		return 0, 0, errtrace.Wrap(errorutil.Errorf("invalid dotted quad %q", s))
	}
	return uint16(v4[0])<<8 | uint16(v4[1]), uint16(v4[2])<<8 | uint16(v4[3]), nil
}
