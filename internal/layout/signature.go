package layout

// Signature returns a canonical key identifying the layout up to whole-track
// rotation and mirroring. A closed loop has no distinguished start point, so
// cyclic shifts describe the same physical track; mirroring swaps L and R
// and yields the chirality twin. The key is the lexicographically minimal
// rotation over the sequence string and its mirror image.
//
// Sequences are at most a few dozen sections, so the direct rotation scan is
// cheap and keeps dedup O(n) per candidate against the stored set.
func (q Sequence) Signature() string {
	s := q.String()
	if s == "" {
		return ""
	}
	best := minRotation(s)
	if m := minRotation(mirrorString(s)); m < best {
		best = m
	}
	return best
}

// minRotation returns the lexicographically smallest cyclic rotation of s.
func minRotation(s string) string {
	doubled := s + s
	best := s
	for i := 1; i < len(s); i++ {
		if r := doubled[i : i+len(s)]; r < best {
			best = r
		}
	}
	return best
}

// mirrorString swaps turn chirality: L becomes R and vice versa.
func mirrorString(s string) string {
	b := []byte(s)
	for i, c := range b {
		switch c {
		case 'L':
			b[i] = 'R'
		case 'R':
			b[i] = 'L'
		}
	}
	return string(b)
}
