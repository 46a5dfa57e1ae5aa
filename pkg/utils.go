package pkg

import "math/rand"

const letters = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

// RandString generates a short join code. Ambiguous characters are left out.
func RandString(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}
