/*
Package kmp implements Knuth-Morris-Pratt substring search, the classical
baseline paired with the quantum search: it finds every occurrence of a
pattern in a text in O(len(text) + len(pattern)) time.
*/
package kmp

// LPS computes the longest-proper-prefix-also-suffix table for pattern.
// lps[i] is the length of the longest proper prefix of pattern[:i+1] that
// is also a suffix of it.
func LPS(pattern string) []int {
	lps := make([]int, len(pattern))

	length := 0
	i := 1 // lps[0] is always 0
	for i < len(pattern) {
		if pattern[i] == pattern[length] {
			length++
			lps[i] = length
			i++
		} else if length != 0 {
			length = lps[length-1]
		} else {
			lps[i] = 0
			i++
		}
	}
	return lps
}

// Search returns the start offset of every occurrence of pattern in text,
// overlapping matches included. An empty pattern matches nowhere.
func Search(pattern, text string) []int {
	if len(pattern) == 0 {
		return nil
	}

	lps := LPS(pattern)

	var matches []int
	i, j := 0, 0
	for i < len(text) {
		if pattern[j] == text[i] {
			i++
			j++
		}

		if j == len(pattern) {
			matches = append(matches, i-j)
			j = lps[j-1]
		} else if i < len(text) && pattern[j] != text[i] {
			if j != 0 {
				j = lps[j-1]
			} else {
				i++
			}
		}
	}
	return matches
}
