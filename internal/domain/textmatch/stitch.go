package textmatch

// Stitch folds an ordered list of batches into one document. Each join
// collapses the detected overlap to a single copy (the left one); when no
// overlap is found the batches are joined with NoOverlapSeparator so no
// content is ever dropped. The fold is inherently sequential — each step
// depends on the accumulated result.
func Stitch(batches []string, cfg StitchConfig) string {
	if len(batches) == 0 {
		return ""
	}
	result := Normalize(batches[0])
	for _, batch := range batches[1:] {
		next := Normalize(batch)
		if next == "" {
			continue
		}
		if result == "" {
			result = next
			continue
		}
		result, _ = Join(result, next, cfg)
	}
	return result
}

// Join appends next onto result, reconciling any duplicate overlap.
// Both arguments must already be normalized; the returned string is the
// new accumulated result and stays normalized. The OverlapMatch reports
// what the join did, for audit trails.
func Join(result, next string, cfg StitchConfig) (string, OverlapMatch) {
	m := FindOverlap(result, next, cfg)
	if m.Method == MethodNone {
		return result + cfg.NoOverlapSeparator + next, m
	}
	return result[:m.StartInA] + m.Text + next[m.StartInB+m.Length:], m
}
