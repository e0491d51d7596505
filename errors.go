package goip6

// Error is a string type that implements the error interface. All
// sentinel errors returned by this package are of this type and can
// be tested with errors.Is.
type Error string

func (e Error) Error() string { return string(e) }

const (
	// ErrInvalidAddress is returned when no address grammar matches
	// the input.
	ErrInvalidAddress Error = "invalid IPv6 address"
	// ErrInvalidPrefixLength is returned when a prefix length is not
	// composed of decimal digits.
	ErrInvalidPrefixLength Error = "invalid prefix length"
	// ErrPrefixOutOfRange is returned when a numeric prefix length is
	// outside [0, 64].
	ErrPrefixOutOfRange Error = "prefix length out of range"
	// ErrNotIPv4 is returned when an IPv4 rendering is requested for
	// an address that is not IPv4-compatible or IPv4-mapped.
	ErrNotIPv4 Error = "not an IPv4-derived address"
	// ErrUnsupportedFormat is returned when base85 support is not
	// compiled in.
	ErrUnsupportedFormat Error = "unsupported format"
)
