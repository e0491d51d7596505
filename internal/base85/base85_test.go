package base85_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/goip6/goip6/internal/base85"
)

func TestAlphabet(t *testing.T) {
	t.Parallel()

	if got := len(base85.Alphabet); got != 85 {
		t.Fatalf("len(base85.Alphabet) = %d, want 85", got)
	}
	seen := make(map[byte]bool, 85)
	for i := 0; i < len(base85.Alphabet); i++ {
		if seen[base85.Alphabet[i]] {
			t.Errorf("duplicate digit %q in alphabet", base85.Alphabet[i])
		}
		seen[base85.Alphabet[i]] = true
	}
}

func TestEncode(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		groups [8]uint16
		want   string
	}{
		{
			// The worked example from RFC1924.
			name:   "rfc1924 sample",
			groups: [8]uint16{0x1080, 0, 0, 0, 8, 0x800, 0x200c, 0x417a},
			want:   "4)+k&C#VzJ4br>0wv%Yp",
		},
		{name: "zero", groups: [8]uint16{}, want: "00000000000000000000"},
		{name: "one", groups: [8]uint16{0, 0, 0, 0, 0, 0, 0, 1}, want: "00000000000000000001"},
		{name: "eighty-five", groups: [8]uint16{0, 0, 0, 0, 0, 0, 0, 85}, want: "00000000000000000010"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got := base85.Encode(c.groups)
			if got != c.want {
				t.Errorf("base85.Encode(%x) = %q, want %q", c.groups, got, c.want)
			}
			if len(got) != base85.Length {
				t.Errorf("len = %d, want %d", len(got), base85.Length)
			}

			back, err := base85.Decode(got)
			if err != nil {
				t.Fatalf("base85.Decode(%q) error = %v, want nil", got, err)
			}
			if back != c.groups {
				t.Errorf("base85.Decode(%q) = %x, want %x", got, back, c.groups)
			}
		})
	}
}

func TestDecode_leftPadding(t *testing.T) {
	t.Parallel()

	// Small values produce fewer than eight groups from the extraction
	// loop; the decoder must left-pad with zero groups.
	got, err := base85.Decode("00000000000000000001")
	if err != nil {
		t.Fatalf("base85.Decode error = %v, want nil", err)
	}
	if want := [8]uint16{0, 0, 0, 0, 0, 0, 0, 1}; got != want {
		t.Errorf("base85.Decode = %x, want %x", got, want)
	}
}

func TestDecode_errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		in      string
		wantErr error
	}{
		{name: "too short", in: "0000000000000000000", wantErr: base85.ErrLength},
		{name: "too long", in: "000000000000000000000", wantErr: base85.ErrLength},
		{name: "bad digit", in: `0000000000000000000"`, wantErr: base85.ErrDigit},
		{name: "value over 128 bits", in: "~~~~~~~~~~~~~~~~~~~~", wantErr: base85.ErrRange},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			_, err := base85.Decode(c.in)
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Errorf("base85.Decode(%q) error = %v, want %v\ndiff (-got +want):\n%v",
					c.in, err, c.wantErr, diff)
			}
		})
	}
}

func TestSupported(t *testing.T) {
	t.Parallel()

	// Default build carries the capability; the nobase85 tag flips it.
	if !base85.Supported {
		t.Skip("built with nobase85")
	}
}
