package layout

import (
	"testing"

	"github.com/slotworks/trackgen/internal/geom"
)

func TestParseSequence(t *testing.T) {
	testCases := []struct {
		name      string
		input     string
		want      string
		expectErr bool
	}{
		{"empty", "", "", false},
		{"all_kinds", "SLR", "SLR", false},
		{"round_trip", "SSRRRSSRRR", "SSRRRSSRRR", false},
		{"lowercase_rejected", "slr", "", true},
		{"bad_character", "SLX", "", true},
		{"whitespace_rejected", "S L", "", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			seq, err := ParseSequence(tc.input)
			if tc.expectErr {
				if err == nil {
					t.Errorf("expected error for %q", tc.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := seq.String(); got != tc.want {
				t.Errorf("round trip = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestSequenceCounts(t *testing.T) {
	seq, err := ParseSequence("SSLRRLS")
	if err != nil {
		t.Fatal(err)
	}
	s, l, r := seq.Counts()
	if s != 3 || l != 2 || r != 2 {
		t.Errorf("Counts = (%d, %d, %d), want (3, 2, 2)", s, l, r)
	}
}

func TestSequenceHasPrefix(t *testing.T) {
	seq, _ := ParseSequence("SSLR")
	prefix, _ := ParseSequence("SSL")
	other, _ := ParseSequence("SL")
	long, _ := ParseSequence("SSLRR")

	if !seq.HasPrefix(prefix) {
		t.Error("SSLR should have prefix SSL")
	}
	if !seq.HasPrefix(nil) {
		t.Error("empty prefix always matches")
	}
	if seq.HasPrefix(other) {
		t.Error("SSLR should not have prefix SL")
	}
	if seq.HasPrefix(long) {
		t.Error("prefix longer than sequence cannot match")
	}
}

func TestSequenceCloneIsIndependent(t *testing.T) {
	seq, _ := ParseSequence("SLR")
	clone := seq.Clone()
	clone[0] = geom.TurnRight
	if seq[0] != geom.Straight {
		t.Error("mutating the clone changed the original")
	}
}

func TestSignatureRotationInvariant(t *testing.T) {
	// Cyclic rotations of one loop must share a signature.
	a, _ := ParseSequence("SSRRRSSRRR")
	b, _ := ParseSequence("SRRRSSRRRS")
	if a.Signature() != b.Signature() {
		t.Errorf("rotations disagree: %q vs %q", a.Signature(), b.Signature())
	}

	c, _ := ParseSequence("RRRSSRRRSS")
	if a.Signature() != c.Signature() {
		t.Errorf("rotations disagree: %q vs %q", a.Signature(), c.Signature())
	}
}

func TestSignatureMirrorInvariant(t *testing.T) {
	l, _ := ParseSequence("LLLLLL")
	r, _ := ParseSequence("RRRRRR")
	if l.Signature() != r.Signature() {
		t.Errorf("chirality twins disagree: %q vs %q", l.Signature(), r.Signature())
	}

	a, _ := ParseSequence("SLLRLL")
	b, _ := ParseSequence("SRRLRR")
	if a.Signature() != b.Signature() {
		t.Errorf("mirrored layouts disagree: %q vs %q", a.Signature(), b.Signature())
	}
}

func TestSignatureDistinguishesLayouts(t *testing.T) {
	a, _ := ParseSequence("SSRRRSSRRR")
	b, _ := ParseSequence("SRSRRSSRRR")
	if a.Signature() == b.Signature() {
		t.Error("different layouts must not collide")
	}
}

func TestSignatureEmpty(t *testing.T) {
	if got := (Sequence{}).Signature(); got != "" {
		t.Errorf("empty signature = %q, want \"\"", got)
	}
}
