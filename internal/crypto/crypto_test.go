package crypto

import (
	"regexp"
	"testing"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("hunter2")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if hash == "hunter2" {
		t.Fatalf("password stored in plain text")
	}
	if !VerifyPassword(hash, "hunter2") {
		t.Fatalf("correct password rejected")
	}
	if VerifyPassword(hash, "hunter3") {
		t.Fatalf("wrong password accepted")
	}
}

func TestGeneratePassword_NotEmptyAndUnique(t *testing.T) {
	a := GeneratePassword()
	b := GeneratePassword()
	if a == "" || a == b {
		t.Fatalf("expected two distinct non-empty credentials, got %q and %q", a, b)
	}
}

var referralPattern = regexp.MustCompile(`^REF-\d{13,}[0-9a-z]{4}$`)

func TestGenerateReferralCode_Format(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		code := GenerateReferralCode()
		if !referralPattern.MatchString(code) {
			t.Fatalf("unexpected referral code format: %q", code)
		}
		seen[code] = true
	}
	if len(seen) < 2 {
		t.Fatalf("referral codes never vary")
	}
}
