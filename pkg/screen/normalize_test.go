package screen

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple word", "Settings", "settings"},
		{"spaces collapse", "  Multi   Space  ", "multi_space"},
		{"activity path keeps last component", "com.example.app.MainActivity", "mainactivity"},
		{"single dot is kept as separator strip", "v1.5", "v15"},
		{"punctuation stripped", "Wi-Fi & Bluetooth!", "wifi_bluetooth"},
		{"leading digit prefixed", "123abc", "screen_123abc"},
		{"underscores collapse", "a__b___c", "a_b_c"},
		{"empty input", "", "unnamed_screen"},
		{"only punctuation", "!!!", "unnamed_screen"},
		{"only underscores", "___", "unnamed_screen"},
		{"mixed case", "My Account Page", "my_account_page"},
		{"unicode stripped", "Héllo Wörld", "hllo_wrld"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"Settings", "com.example.app.MainActivity", "  Multi   Space  ", "123abc", ""}

	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}
