package extract

import "testing"

func TestDetectCurrency(t *testing.T) {
	cases := []struct {
		name, text, want string
	}{
		{"USD symbol", "Total: $104.38", "USD"},
		{"USD code", "Total: 104.38 USD", "USD"},
		{"AUD dollar sign wins over bare dollar", "Total: A$104.38", "AUD"},
		{"CAD dollar sign", "Total: C$50.00", "CAD"},
		{"GBP symbol", "Total: £50.00", "GBP"},
		{"EUR symbol", "Total: €50.00", "EUR"},
		{"JPY symbol", "Total: ¥5000", "JPY"},
		{"INR word boundary", "Total: INR 500", "INR"},
		{"defaults to USD when no signal", "Total: 104.38", "USD"},
		{"defaults to USD on empty text", "", "USD"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := DetectCurrency(c.text); got != c.want {
				t.Errorf("DetectCurrency(%q) = %q, want %q", c.text, got, c.want)
			}
		})
	}
}
