// Package layout holds the track data model: segment sequences, their
// canonical signatures, and the deduplicated, capacity-bounded set of
// accepted track layouts.
package layout

import (
	"fmt"
	"strings"

	"github.com/slotworks/trackgen/internal/geom"
)

// Sequence is an ordered list of section kinds. Sequences emitted by the
// search engine are never mutated afterwards.
type Sequence []geom.Segment

// ParseSequence parses a letter-encoded sequence over the alphabet {S,L,R}.
func ParseSequence(s string) (Sequence, error) {
	seq := make(Sequence, 0, len(s))
	for i, c := range s {
		switch c {
		case 'S':
			seq = append(seq, geom.Straight)
		case 'L':
			seq = append(seq, geom.TurnLeft)
		case 'R':
			seq = append(seq, geom.TurnRight)
		default:
			return nil, fmt.Errorf("invalid segment character %q at position %d (want S, L or R)", c, i)
		}
	}
	return seq, nil
}

// String returns the letter encoding, e.g. "SSLRRL".
func (q Sequence) String() string {
	var b strings.Builder
	b.Grow(len(q))
	for _, s := range q {
		b.WriteString(s.String())
	}
	return b.String()
}

// Counts returns the number of straight, left-turn and right-turn sections.
func (q Sequence) Counts() (straights, lefts, rights int) {
	for _, s := range q {
		switch s {
		case geom.Straight:
			straights++
		case geom.TurnLeft:
			lefts++
		case geom.TurnRight:
			rights++
		}
	}
	return straights, lefts, rights
}

// Clone returns an independent copy.
func (q Sequence) Clone() Sequence {
	out := make(Sequence, len(q))
	copy(out, q)
	return out
}

// HasPrefix reports whether q starts with p.
func (q Sequence) HasPrefix(p Sequence) bool {
	if len(p) > len(q) {
		return false
	}
	for i, s := range p {
		if q[i] != s {
			return false
		}
	}
	return true
}
