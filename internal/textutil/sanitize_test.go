package textutil

import "testing"

func TestSanitizeEntryName(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{
			name:   "plain name untouched",
			input:  "notes.txt",
			expect: "notes.txt",
		},
		{
			name:   "unicode name untouched",
			input:  "zażółć.md",
			expect: "zażółć.md",
		},
		{
			name:   "escape sequence stripped",
			input:  "evil\x1b[31mred",
			expect: "evil?[31mred",
		},
		{
			name:   "newline stripped",
			input:  "two\nlines",
			expect: "two?lines",
		},
		{
			name:   "bidi override stripped",
			input:  "gpj.‮exe",
			expect: "gpj.?exe",
		},
		{
			name:   "delete char stripped",
			input:  "a\x7fb",
			expect: "a?b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeEntryName(tt.input); got != tt.expect {
				t.Fatalf("expected %q, got %q", tt.expect, got)
			}
		})
	}
}
