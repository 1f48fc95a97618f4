package security

import (
	"strings"
	"testing"
)

func TestRandomStringRejectsInvalidInput(t *testing.T) {
	t.Parallel()

	if _, err := RandomString(-1, "abc"); err == nil {
		t.Fatal("expected negative length to fail")
	}
	if _, err := RandomString(4, ""); err == nil {
		t.Fatal("expected empty alphabet to fail")
	}
	if _, err := RandomString(4, strings.Repeat("a", 257)); err == nil {
		t.Fatal("expected oversized alphabet to fail")
	}
}

func TestRandomStringDrawsFromAlphabet(t *testing.T) {
	t.Parallel()

	empty, err := RandomString(0, "abc")
	if err != nil || empty != "" {
		t.Fatalf("RandomString(0) = %q, %v; want empty string", empty, err)
	}

	single, err := RandomString(8, "X")
	if err != nil {
		t.Fatalf("RandomString single-char alphabet: %v", err)
	}
	if single != "XXXXXXXX" {
		t.Fatalf("RandomString single-char alphabet = %q", single)
	}

	got, err := RandomString(200, "abc")
	if err != nil {
		t.Fatalf("RandomString returned error: %v", err)
	}
	if len(got) != 200 {
		t.Fatalf("RandomString len = %d, want 200", len(got))
	}
	if strings.Trim(got, "abc") != "" {
		t.Fatalf("RandomString produced characters outside alphabet: %q", got)
	}
}

func TestTemporaryPasswordAppliesMinimumLength(t *testing.T) {
	t.Parallel()

	short, err := TemporaryPassword(3)
	if err != nil {
		t.Fatalf("TemporaryPassword returned error: %v", err)
	}
	if len(short) != MinTemporaryPasswordLength {
		t.Fatalf("TemporaryPassword(3) len = %d, want %d", len(short), MinTemporaryPasswordLength)
	}

	long, err := TemporaryPassword(20)
	if err != nil {
		t.Fatalf("TemporaryPassword returned error: %v", err)
	}
	if len(long) != 20 {
		t.Fatalf("TemporaryPassword(20) len = %d", len(long))
	}
	for _, char := range long {
		if !strings.ContainsRune(ReadableAlphabet, char) {
			t.Fatalf("TemporaryPassword produced unreadable char %q", char)
		}
	}
}
