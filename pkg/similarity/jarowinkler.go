// Package similarity provides string similarity scoring for typo detection.
package similarity

// winklerBoost is the standard Jaro-Winkler prefix scaling factor.
const winklerBoost = 0.1

// maxPrefix caps the common-prefix length used for the Winkler boost.
const maxPrefix = 4

// Score returns the Jaro-Winkler similarity of a and b in [0,1].
// Two empty strings score 1.0; one empty string against anything else
// scores 0.0. This deviates from the textbook formula on purpose so that
// empty input never matches a real command.
func Score(a, b string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1.0
	}
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}

	jaro := jaroSimilarity([]rune(a), []rune(b))

	prefix := commonPrefix(a, b)
	if prefix > maxPrefix {
		prefix = maxPrefix
	}

	return jaro + float64(prefix)*winklerBoost*(1.0-jaro)
}

// jaroSimilarity computes the plain Jaro similarity over rune slices.
func jaroSimilarity(r1, r2 []rune) float64 {
	if len(r1) == 0 || len(r2) == 0 {
		return 0.0
	}

	window := len(r1)
	if len(r2) > window {
		window = len(r2)
	}
	window = window/2 - 1
	if window < 0 {
		window = 0
	}

	matched1 := make([]bool, len(r1))
	matched2 := make([]bool, len(r2))

	matches := 0
	for i := range r1 {
		start := i - window
		if start < 0 {
			start = 0
		}
		end := i + window + 1
		if end > len(r2) {
			end = len(r2)
		}
		for k := start; k < end; k++ {
			if matched2[k] || r1[i] != r2[k] {
				continue
			}
			matched1[i] = true
			matched2[k] = true
			matches++
			break
		}
	}

	if matches == 0 {
		return 0.0
	}

	// Count transpositions among the matched characters.
	transpositions := 0
	k := 0
	for i := range r1 {
		if !matched1[i] {
			continue
		}
		for !matched2[k] {
			k++
		}
		if r1[i] != r2[k] {
			transpositions++
		}
		k++
	}
	transpositions /= 2

	m := float64(matches)
	return (m/float64(len(r1)) + m/float64(len(r2)) + (m-float64(transpositions))/m) / 3.0
}

// commonPrefix returns the length of the shared prefix of a and b in runes.
func commonPrefix(a, b string) int {
	r1 := []rune(a)
	r2 := []rune(b)
	n := len(r1)
	if len(r2) < n {
		n = len(r2)
	}
	count := 0
	for i := 0; i < n; i++ {
		if r1[i] != r2[i] {
			break
		}
		count++
	}
	return count
}
