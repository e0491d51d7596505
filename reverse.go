package goip6

import (
	"strings"

	"github.com/miekg/dns"
)

const hexDigits = "0123456789abcdef"

// ReversePointer returns the RFC1886 reverse-lookup name of the
// address: all 32 nibbles in reverse order joined by dots, followed
// by "ip6.int." with a trailing dot.
func (a Address) ReversePointer() string { return a.reverseName("ip6.int.") }

// ReverseArpa returns the reverse-lookup name under the modern
// ip6.arpa domain used by today's resolvers.
func (a Address) ReverseArpa() string { return a.reverseName("ip6.arpa.") }

func (a Address) reverseName(suffix string) string {
	var sb strings.Builder
	sb.Grow(64 + len(suffix))
	for i := 7; i >= 0; i-- {
		g := a.groups[i]
		for shift := 0; shift < 16; shift += 4 {
			sb.WriteByte(hexDigits[(g>>shift)&0xf])
			sb.WriteByte('.')
		}
	}
	sb.WriteString(suffix)
	return sb.String()
}

// PTRQuestion returns the DNS question for a reverse lookup of the
// address. No query is performed.
func (a Address) PTRQuestion() dns.Question {
	return dns.Question{
		Name:   a.ReverseArpa(),
		Qtype:  dns.TypePTR,
		Qclass: dns.ClassINET,
	}
}

// PTR returns a skeleton PTR record mapping the address to target.
func (a Address) PTR(target string, ttl uint32) *dns.PTR {
	return &dns.PTR{
		Hdr: dns.RR_Header{
			Name:   a.ReverseArpa(),
			Rrtype: dns.TypePTR,
			Class:  dns.ClassINET,
			Ttl:    ttl,
		},
		Ptr: dns.Fqdn(target),
	}
}
