package util

import "testing"

func TestSanitizeFileName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"resume.pdf", "resume.pdf"},
		{"  resume.pdf  ", "resume.pdf"},
		{"a/b/c.txt", "a_b_c.txt"},
		{`a\b.txt`, "a_b.txt"},
	}
	for _, tc := range cases {
		got, err := SanitizeFileName(tc.in)
		if err != nil {
			t.Fatalf("SanitizeFileName(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("SanitizeFileName(%q): expected %q, got %q", tc.in, tc.want, got)
		}
	}
}

func TestSanitizeFileNameRejectsBadInput(t *testing.T) {
	for _, in := range []string{"", "   ", "../escape", "a..b"} {
		if _, err := SanitizeFileName(in); err == nil {
			t.Fatalf("expected error for %q", in)
		}
	}
}
