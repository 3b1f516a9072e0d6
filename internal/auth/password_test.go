package auth

import (
	"strings"
	"testing"
)

func TestHashAndVerifyPassword(t *testing.T) {
	stored, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}

	if !strings.Contains(stored, ".") {
		t.Fatalf("expected '<key>.<salt>' format, got %q", stored)
	}

	if !VerifyPassword("correct horse battery staple", stored) {
		t.Error("expected correct password to verify")
	}

	// Any single-character mutation must fail
	if VerifyPassword("correct horse battery stapl3", stored) {
		t.Error("expected mutated password to fail verification")
	}
	if VerifyPassword("", stored) {
		t.Error("expected empty password to fail verification")
	}
}

func TestHashPasswordSaltsAreRandom(t *testing.T) {
	first, err := HashPassword("pw1")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	second, err := HashPassword("pw1")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}

	if first == second {
		t.Error("expected two hashes of the same password to differ")
	}
	if !VerifyPassword("pw1", first) || !VerifyPassword("pw1", second) {
		t.Error("expected both hashes to verify")
	}
}

func TestVerifyPasswordFailsClosedOnMalformedStored(t *testing.T) {
	malformed := []string{
		"",
		"no-separator",
		"deadbeef",
		"zz.zz",
		"deadbeef.nothex",
		"nothex.deadbeef",
		"deadbeef.deadbeef.deadbeef",
		"deadbeef.deadbeef", // valid hex but wrong key length
	}

	for _, stored := range malformed {
		if VerifyPassword("anything", stored) {
			t.Errorf("expected malformed stored value %q to verify as false", stored)
		}
	}
}
