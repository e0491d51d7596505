//go:build !nobase85

package base85

// Supported reports whether base85 support is compiled in.
const Supported = true
