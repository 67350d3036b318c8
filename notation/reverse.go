package notation

// Reverse returns s with its bytes in reverse order. Expressions are ASCII,
// so this is the character order; applying it twice always yields s.
func Reverse(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}

	return string(b)
}
