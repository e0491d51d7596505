// Package grammar defines the textual grammars recognized for IPv6
// addresses (RFC1884 preferred, compressed and IPv4-embedded forms,
// plus the RFC1924 base85 form) and the decoders that turn a matched
// string into the canonical eight-hexadecet vector.
package grammar

//go:generate errtrace -w .

import (
	"regexp"

	"braces.dev/errtrace"

	"github.com/goip6/goip6/internal/base85"
	"github.com/goip6/goip6/internal/util"
)

type Error string

func (e Error) Error() string { return string(e) }

func (Error) Grammar() bool { return true }

const (
	ErrEmptyInput     Error = "empty input"
	ErrNoMatch        Error = "no address grammar matched"
	ErrMalformedInput Error = "malformed input"
)

// Kind identifies one of the recognized address grammars.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindPreferred
	KindCompressed
	KindIPv4
	KindIPv4Compressed
	KindBase85
)

func (k Kind) String() string {
	switch k {
	case KindPreferred:
		return "preferred"
	case KindCompressed:
		return "compressed"
	case KindIPv4:
		return "ipv4"
	case KindIPv4Compressed:
		return "ipv4 compressed"
	case KindBase85:
		return "base85"
	default:
		return "invalid"
	}
}

// Recognizer patterns. Every pattern is anchored and must consume the
// whole input; partial matches never classify.
var (
	preferredPatterns = compile(
		`(?i)^(?:[0-9a-f]{1,4}:){7}[0-9a-f]{1,4}$`,
	)

	// The compressed family enumerates every placement of the single
	// "::" marker across the eight groups: bare/trailing elision,
	// leading elision, and N groups "::" M groups for N+M <= 7.
	compressedPatterns = compile(
		`(?i)^[0-9a-f]{0,4}::$`,
		`(?i)^:(?::[0-9a-f]{1,4}){1,6}$`,
		`(?i)^(?:[0-9a-f]{1,4}:){1,6}:$`,
		`(?i)^(?:[0-9a-f]{1,4}:){1}(?::[0-9a-f]{1,4}){1,6}$`,
		`(?i)^(?:[0-9a-f]{1,4}:){2}(?::[0-9a-f]{1,4}){1,5}$`,
		`(?i)^(?:[0-9a-f]{1,4}:){3}(?::[0-9a-f]{1,4}){1,4}$`,
		`(?i)^(?:[0-9a-f]{1,4}:){4}(?::[0-9a-f]{1,4}){1,3}$`,
		`(?i)^(?:[0-9a-f]{1,4}:){5}(?::[0-9a-f]{1,4}){1,2}$`,
		`(?i)^(?:[0-9a-f]{1,4}:){6}(?::[0-9a-f]{1,4})$`,
	)

	ipv4Patterns = compile(
		`(?i)^(?:0:){5}ffff:(?:\d{1,3}\.){3}\d{1,3}$`,
		`^(?:0:){6}(?:\d{1,3}\.){3}\d{1,3}$`,
	)

	ipv4CompressedPatterns = compile(
		`(?i)^::(?:ffff:)?(?:\d{1,3}\.){3}\d{1,3}$`,
	)

	// Character class mirrors base85.Alphabet, with '-' moved to the
	// end of the class so it reads as a literal.
	base85Patterns = compile(
		"^[0-9A-Za-z!#$%&()*+;<=>?@^_`{|}~-]{20}$",
	)
)

func compile(exprs ...string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(exprs))
	for i, expr := range exprs {
		res[i] = regexp.MustCompile(expr)
	}
	return res
}

type rule struct {
	kind     Kind
	patterns []*regexp.Regexp
}

func (r rule) match(s string) bool {
	for _, p := range r.patterns {
		if p.MatchString(s) {
			return true
		}
	}
	return false
}

// Ruleset is an immutable table of address grammars tried in
// registration order.
type Ruleset struct {
	rules []rule
}

// NewRuleset builds the grammar table. The base85 rule is registered
// only when withBase85 is set.
func NewRuleset(withBase85 bool) Ruleset {
	rules := []rule{
		{KindPreferred, preferredPatterns},
		{KindCompressed, compressedPatterns},
		{KindIPv4, ipv4Patterns},
		{KindIPv4Compressed, ipv4CompressedPatterns},
	}
	if withBase85 {
		rules = append(rules, rule{KindBase85, base85Patterns})
	}
	return Ruleset{rules: rules}
}

var defaultRules = NewRuleset(base85.Supported)

// Default returns the process-wide grammar table, built once with the
// compiled-in base85 capability.
func Default() Ruleset { return defaultRules }

// Has reports whether the grammar of the given kind is registered.
func (rs Ruleset) Has(k Kind) bool {
	for _, r := range rs.rules {
		if r.kind == k {
			return true
		}
	}
	return false
}

// Classify returns the kind of the first grammar whose recognizer
// matches the trimmed input in full.
func (rs Ruleset) Classify(s string) (Kind, error) {
	s = util.TrimSP(s)
	if len(s) == 0 {
		return KindInvalid, errtrace.Wrap(ErrEmptyInput)
	}
	for _, r := range rs.rules {
		if r.match(s) {
			return r.kind, nil
		}
	}
	return KindInvalid, errtrace.Wrap(ErrNoMatch)
}

// Decode classifies the trimmed input and runs the matching grammar's
// decoder, producing the canonical hexadecet vector.
func (rs Ruleset) Decode(s string) ([8]uint16, error) {
	s = util.TrimSP(s)

	kind, err := rs.Classify(s)
	if err != nil {
		return [8]uint16{}, errtrace.Wrap(err)
	}

	var groups [8]uint16
	switch kind {
	case KindPreferred:
		groups, err = decodePreferred(s)
	case KindCompressed:
		groups, err = decodeCompressed(s)
	case KindIPv4:
		groups, err = decodeIPv4(s)
	case KindIPv4Compressed:
		groups, err = decodeIPv4Compressed(s)
	case KindBase85:
		groups, err = base85.Decode(s)
	default:
		err = ErrNoMatch
	}
	if err != nil {
		return [8]uint16{}, errtrace.Wrap(newMalformedInputErr(err))
	}
	return groups, nil
}

// Classify runs classification against the default grammar table.
func Classify[T ~string | ~[]byte](s T) (Kind, error) {
	return errtrace.Wrap2(defaultRules.Classify(string(s)))
}

// Decode parses an address string against the default grammar table.
func Decode[T ~string | ~[]byte](s T) ([8]uint16, error) {
	return errtrace.Wrap2(defaultRules.Decode(string(s)))
}

// IsAddress reports whether s matches any registered grammar.
func IsAddress[T ~string | ~[]byte](s T) bool {
	_, err := defaultRules.Classify(string(s))
	return err == nil
}
