package goip6_test

import (
	"strings"
	"testing"

	"github.com/miekg/dns"

	"github.com/goip6/goip6"
)

func TestAddress_ReversePointer(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "documentation address",
			in:   "2001:db8::1",
			want: "1.0.0.0." + strings.Repeat("0.", 20) + "8.b.d.0.1.0.0.2.ip6.int.",
		},
		{
			name: "loopback",
			in:   "::1",
			want: "1." + strings.Repeat("0.", 31) + "ip6.int.",
		},
		{
			name: "all nibbles populated",
			in:   "dead:beef:cafe:babe:f00d:1234:5678:9abc",
			want: "c.b.a.9.8.7.6.5.4.3.2.1.d.0.0.f.e.b.a.b.e.f.a.c.f.e.e.b.d.a.e.d.ip6.int.",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			addr := goip6.MustParse(c.in)
			got := addr.ReversePointer()
			if got != c.want {
				t.Errorf("ReversePointer() = %q, want %q", got, c.want)
			}
			if _, ok := dns.IsDomainName(got); !ok {
				t.Errorf("ReversePointer() = %q is not a valid domain name", got)
			}

			wantArpa := strings.TrimSuffix(c.want, "ip6.int.") + "ip6.arpa."
			if got := addr.ReverseArpa(); got != wantArpa {
				t.Errorf("ReverseArpa() = %q, want %q", got, wantArpa)
			}
		})
	}
}

func TestAddress_PTRQuestion(t *testing.T) {
	t.Parallel()

	addr := goip6.MustParse("2001:db8::1")
	q := addr.PTRQuestion()

	if q.Name != addr.ReverseArpa() {
		t.Errorf("q.Name = %q, want %q", q.Name, addr.ReverseArpa())
	}
	if q.Qtype != dns.TypePTR {
		t.Errorf("q.Qtype = %d, want %d", q.Qtype, dns.TypePTR)
	}
	if q.Qclass != dns.ClassINET {
		t.Errorf("q.Qclass = %d, want %d", q.Qclass, dns.ClassINET)
	}
}

func TestAddress_PTR(t *testing.T) {
	t.Parallel()

	addr := goip6.MustParse("2001:db8::1")
	rr := addr.PTR("host.example.com", 3600)

	if got, want := rr.Hdr.Name, addr.ReverseArpa(); got != want {
		t.Errorf("rr.Hdr.Name = %q, want %q", got, want)
	}
	if got, want := rr.Ptr, "host.example.com."; got != want {
		t.Errorf("rr.Ptr = %q, want %q", got, want)
	}
	if rr.Hdr.Rrtype != dns.TypePTR || rr.Hdr.Class != dns.ClassINET || rr.Hdr.Ttl != 3600 {
		t.Errorf("rr.Hdr = %+v, want PTR/INET/3600", rr.Hdr)
	}
}
