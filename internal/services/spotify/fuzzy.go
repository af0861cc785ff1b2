package spotify

// partialRatio scores how well the shorter string matches any equally
// sized window of the longer one, 0-100. Episode titles on Spotify often
// carry a suffix the site listing lacks, so whole-string similarity is too
// strict.
func partialRatio(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 || len(rb) == 0 {
		return 0
	}
	shorter, longer := ra, rb
	if len(shorter) > len(longer) {
		shorter, longer = longer, shorter
	}

	best := 0
	for start := 0; start+len(shorter) <= len(longer); start++ {
		window := longer[start : start+len(shorter)]
		if score := similarity(shorter, window); score > best {
			best = score
			if best == 100 {
				break
			}
		}
	}
	return best
}

// similarity is a Levenshtein ratio scaled to 0-100.
func similarity(a, b []rune) int {
	total := len(a) + len(b)
	if total == 0 {
		return 100
	}
	dist := levenshtein(a, b)
	return (total - 2*dist) * 100 / total
}

func levenshtein(a, b []rune) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, min(curr[j-1]+1, prev[j-1]+cost))
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
