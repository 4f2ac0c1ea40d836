package validators

import "testing"

func TestIsEmailShaped(t *testing.T) {
	cases := []struct {
		email string
		want  bool
	}{
		{"ada@example.com", true},
		{"a.b+tag@sub.example.co", true},
		{"", false},
		{"no-at-sign", false},
		{"@example.com", false},
		{"ada@", false},
		{"ada@localhost", false},
		{"ada @example.com", false},
	}
	for _, tc := range cases {
		if got := IsEmailShaped(tc.email); got != tc.want {
			t.Fatalf("IsEmailShaped(%q) = %v, want %v", tc.email, got, tc.want)
		}
	}
}
