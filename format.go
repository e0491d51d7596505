package goip6

import "braces.dev/errtrace"

// The Format* functions accept raw textual addresses and run the full
// parse pipeline before rendering, failing exactly like Parse on
// invalid input. Callers holding an already-parsed Address should use
// its methods directly.

// FormatPreferred renders a textual address in the RFC1884 preferred
// form.
func FormatPreferred[T ~string | ~[]byte](s T) (string, error) {
	a, err := Parse(s)
	if err != nil {
		return "", errtrace.Wrap(err)
	}
	return a.Preferred(), nil
}

// FormatCompressed renders a textual address in the zero-compressed
// form.
func FormatCompressed[T ~string | ~[]byte](s T) (string, error) {
	a, err := Parse(s)
	if err != nil {
		return "", errtrace.Wrap(err)
	}
	return a.Compressed(), nil
}

// FormatIPv4 renders a textual address in the full legacy
// IPv4-embedded form.
func FormatIPv4[T ~string | ~[]byte](s T) (string, error) {
	a, err := Parse(s)
	if err != nil {
		return "", errtrace.Wrap(err)
	}
	return errtrace.Wrap2(a.IPv4())
}

// FormatIPv4Compressed renders a textual address in the compressed
// legacy IPv4-embedded form.
func FormatIPv4Compressed[T ~string | ~[]byte](s T) (string, error) {
	a, err := Parse(s)
	if err != nil {
		return "", errtrace.Wrap(err)
	}
	return errtrace.Wrap2(a.IPv4Compressed())
}

// FormatBase85 renders a textual address in the RFC1924 base85 form.
func FormatBase85[T ~string | ~[]byte](s T) (string, error) {
	a, err := Parse(s)
	if err != nil {
		return "", errtrace.Wrap(err)
	}
	return errtrace.Wrap2(a.Base85())
}

// FormatReversePointer renders the RFC1886 reverse-lookup name of a
// textual address.
func FormatReversePointer[T ~string | ~[]byte](s T) (string, error) {
	a, err := Parse(s)
	if err != nil {
		return "", errtrace.Wrap(err)
	}
	return a.ReversePointer(), nil
}

// FormatReverseArpa renders the reverse-lookup name of a textual
// address under the modern ip6.arpa domain.
func FormatReverseArpa[T ~string | ~[]byte](s T) (string, error) {
	a, err := Parse(s)
	if err != nil {
		return "", errtrace.Wrap(err)
	}
	return a.ReverseArpa(), nil
}
