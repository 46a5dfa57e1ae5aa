package pkg

import (
	"strings"
	"testing"
)

func TestRandString(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code := RandString(8)
		if len(code) != 8 {
			t.Fatalf("RandString(8) = %q, want 8 characters", code)
		}
		for _, c := range code {
			if !strings.ContainsRune(letters, c) {
				t.Fatalf("RandString(8) = %q contains %q, outside the alphabet", code, c)
			}
		}
		seen[code] = true
	}
	if len(seen) < 90 {
		t.Fatalf("only %d distinct codes out of 100", len(seen))
	}
}
