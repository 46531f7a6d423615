package extract

import (
	"strings"
	"testing"
)

func TestNormalize_DollarLetterConfusion(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"$l5.00", "$15.00"},
		{"$I9.99", "$19.99"},
	}
	for _, c := range cases {
		if got := Normalize(c.in); got != c.want {
			t.Errorf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalize_DigitOConfusion(t *testing.T) {
	if got, want := Normalize("1O1"), "101"; got != want {
		t.Errorf("Normalize(1O1) = %q, want %q", got, want)
	}
	if got, want := Normalize("2o3"), "203"; got != want {
		t.Errorf("Normalize(2o3) = %q, want %q", got, want)
	}
}

func TestNormalize_SDollarConfusion(t *testing.T) {
	in := " S12.34"
	got := Normalize(in)
	if !strings.Contains(got, "$12.34") {
		t.Errorf("Normalize(%q) = %q, want it to contain %q", in, got, "$12.34")
	}
}

func TestNormalize_MultiSpaceCollapse(t *testing.T) {
	got := Normalize("Widget A      5     $12.50")
	if strings.Contains(got, "   ") {
		t.Errorf("Normalize collapsed run still has 3+ spaces: %q", got)
	}
	if !strings.Contains(got, "  ") {
		t.Errorf("Normalize should preserve a double space as column separator, got %q", got)
	}
}

func TestNormalize_ThousandsSplitCollapse(t *testing.T) {
	got := Normalize("Total: 1 234.56")
	if !strings.Contains(got, "1234.56") {
		t.Errorf("Normalize(%q) did not collapse OCR-inserted space in amount", got)
	}
}

func TestNormalize_Dashes(t *testing.T) {
	got := Normalize("2024–01—15")
	if strings.ContainsAny(got, "–—") {
		t.Errorf("Normalize left en/em dash in %q", got)
	}
}

func TestNormalize_ZeroWidthStrip(t *testing.T) {
	got := Normalize("Total​: 5")
	if strings.ContainsRune(got, '​') {
		t.Errorf("Normalize left zero-width char in %q", got)
	}
}

func TestNormalize_TrimsTrailingWhitespace(t *testing.T) {
	got := Normalize("line one   \nline two\t\n")
	for _, line := range strings.Split(got, "\n") {
		if line != strings.TrimRight(line, " \t") {
			t.Errorf("line %q has trailing whitespace", line)
		}
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	samples := []string{
		"",
		"$l5.00 due 1O1 units",
		"Widget A      5     $12.50",
		"  S12.34\nTotal 1 234.56",
		"plain ascii text with no artifacts",
	}
	for _, s := range samples {
		once := Normalize(s)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: once=%q twice=%q", s, once, twice)
		}
	}
}

func TestNormalize_PreservesNewlineCount(t *testing.T) {
	samples := []string{
		"",
		"a\nb\nc",
		"$l5\n1O1\nS12.34\n\n\n",
		"no newlines here",
		"trailing newline\n",
	}
	for _, s := range samples {
		got := Normalize(s)
		if strings.Count(got, "\n") != strings.Count(s, "\n") {
			t.Errorf("Normalize(%q) changed newline count: got %d want %d", s, strings.Count(got, "\n"), strings.Count(s, "\n"))
		}
	}
}

func TestNormalize_Empty(t *testing.T) {
	if got := Normalize(""); got != "" {
		t.Errorf("Normalize(\"\") = %q, want empty", got)
	}
}

func TestLines_SkipsBlank(t *testing.T) {
	lines := Lines("a\n\nb\n   \nc")
	want := []string{"a", "b", "c"}
	if len(lines) != len(want) {
		t.Fatalf("Lines() = %v, want %v", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("Lines()[%d] = %q, want %q", i, lines[i], want[i])
		}
	}
}
