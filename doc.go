// Package goip6 validates, parses and formats textual IPv6 addresses.
//
// The package recognizes the RFC1884 textual forms (preferred,
// zero-compressed and the two IPv4-embedded legacy forms) and the
// RFC1924 base85 compact form, converting any of them into a
// canonical [Address] of eight 16-bit hexadecets. An Address renders
// back into every supported form, including the RFC1886 reverse-DNS
// pointer name.
//
// All operations are pure functions over an immutable grammar table
// built once at init; every entry point is safe for unsynchronized
// concurrent use.
//
// Base85 support is compiled in by default and can be removed with
// the "nobase85" build tag, in which case base85 input stops matching
// and [Address.Base85] fails with [ErrUnsupportedFormat].
package goip6
