package service

import "testing"

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		region string
		want   string
	}{
		{"national format", "(212) 555-0123", "US", "+12125550123"},
		{"already e164", "+12125550123", "US", "+12125550123"},
		{"digits with spaces", "212 555 0123", "US", "+12125550123"},
		{"free text kept", "front desk ext 12", "US", "front desk ext 12"},
		{"too short kept", "12345", "US", "12345"},
		{"whitespace trimmed", "  +12125550123  ", "US", "+12125550123"},
		{"empty", "   ", "US", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizePhone(tc.raw, tc.region); got != tc.want {
				t.Fatalf("NormalizePhone(%q) = %q, want %q", tc.raw, got, tc.want)
			}
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"lowercased", "Jane.Doe@Example.COM", "jane.doe@example.com"},
		{"trimmed", "  jane@example.com  ", "jane@example.com"},
		{"idn domain", "jane@bücher.de", "jane@xn--bcher-kva.de"},
		{"no at sign", "not-an-email", "not-an-email"},
		{"trailing at", "jane@", "jane@"},
		{"empty", "", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizeEmail(tc.raw); got != tc.want {
				t.Fatalf("NormalizeEmail(%q) = %q, want %q", tc.raw, got, tc.want)
			}
		})
	}
}
