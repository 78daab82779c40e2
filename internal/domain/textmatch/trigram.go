package textmatch

// TrigramSet is a set of unique 3-byte shingles. Each shingle is packed
// into a uint32 instead of interned as a string, so building a set
// allocates one map and nothing per shingle.
type TrigramSet map[uint32]struct{}

func packTrigram(b0, b1, b2 byte) uint32 {
	return uint32(b0)<<16 | uint32(b1)<<8 | uint32(b2)
}

// Trigrams returns the set of 3-byte shingles of s. Strings shorter than
// 3 bytes yield an empty set.
func Trigrams(s string) TrigramSet {
	if len(s) < 3 {
		return TrigramSet{}
	}
	set := make(TrigramSet, len(s)-2)
	for i := 0; i+3 <= len(s); i++ {
		set[packTrigram(s[i], s[i+1], s[i+2])] = struct{}{}
	}
	return set
}

// Jaccard computes |a∩b| / |a∪b|. Two empty sets are identical (1.0);
// exactly one empty set shares nothing (0.0).
func Jaccard(a, b TrigramSet) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1.0
	}
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}
	small, large := a, b
	if len(small) > len(large) {
		small, large = large, small
	}
	inter := 0
	for t := range small {
		if _, ok := large[t]; ok {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	return float64(inter) / float64(union)
}
