package ticker

import "testing"

func TestResolve(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"엔비디아", "NVDA"},
		{"삼성전자", "005930.KS"},
		{"apple", "AAPL"},
		{"Apple", "AAPL"},
		{"  tesla  ", "TSLA"},
		// Unknown input passes through uppercased, never rejected.
		{"nvda", "NVDA"},
		{"msft", "MSFT"},
		{"some unknown co", "SOME UNKNOWN CO"},
	}
	for _, tt := range tests {
		if got := Resolve(tt.input); got != tt.want {
			t.Errorf("Resolve(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
