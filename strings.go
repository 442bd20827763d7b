package aoc

// Chunks splits s into consecutive pieces of n bytes; the last piece may be
// shorter. If n is not positive, s is returned whole.
func Chunks(s string, n int) []string {
	if n <= 0 || len(s) <= n {
		return []string{s}
	}
	out := make([]string, 0, (len(s)+n-1)/n)
	for len(s) > n {
		out = append(out, s[:n])
		s = s[n:]
	}
	return append(out, s)
}

// AllEqual reports whether every element of vs is the same.
// Empty and single element slices are trivially equal.
func AllEqual[T comparable](vs []T) bool {
	for _, v := range vs[min(1, len(vs)):] {
		if v != vs[0] {
			return false
		}
	}
	return true
}
