package ui

import "testing"

func TestTruncate(t *testing.T) {
	if got := truncate("abcdef", 0); got != "abcdef" {
		t.Fatalf("truncate limit 0 = %q, want passthrough", got)
	}
	if got := truncate("abcdef", 10); got != "abcdef" {
		t.Fatalf("truncate within limit = %q, want abcdef", got)
	}
	if got := truncate("abcdef", 5); got != "ab..." {
		t.Fatalf("truncate = %q, want ab...", got)
	}
	if got := truncate("abcdef", 2); got != "ab" {
		t.Fatalf("truncate limit<=3 = %q, want ab", got)
	}
	if got := truncate("ação bancária", 6); got != "açã..." {
		t.Fatalf("truncate multibyte = %q, want açã...", got)
	}
}

func TestPadRight(t *testing.T) {
	if got := padRight("ab", 5); got != "ab   " {
		t.Fatalf("padRight = %q, want %q", got, "ab   ")
	}
	if got := padRight("abcdef", 5); got != "ab..." {
		t.Fatalf("padRight overflow = %q, want ab...", got)
	}
	if got := padRight("ab", 0); got != "" {
		t.Fatalf("padRight width 0 = %q, want empty", got)
	}
}

func TestPadLeft(t *testing.T) {
	if got := padLeft("12", 5); got != "   12" {
		t.Fatalf("padLeft = %q, want %q", got, "   12")
	}
	if got := padLeft("123456", 5); got != "12..." {
		t.Fatalf("padLeft overflow = %q, want 12...", got)
	}
}
