package titlenorm

import (
	"reflect"
	"strings"
	"testing"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain title unchanged",
			input: "Abbey Road",
			want:  "Abbey Road",
		},
		{
			name:  "control characters removed",
			input: "Ab\x00bey\x1f Ro\tad\x7f",
			want:  "Abbey Road",
		},
		{
			name:  "newlines removed",
			input: "Abbey\r\nRoad",
			want:  "AbbeyRoad",
		},
		{
			name:  "non-ascii preserved",
			input: "Amnésiaque\x01",
			want:  "Amnésiaque",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clean(tt.input); got != tt.want {
				t.Errorf("Clean(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCandidatesOrder(t *testing.T) {
	// "Cafe" with a combining acute accent: NFC composes it, so the first
	// and second candidates must differ and appear in that order.
	got := Candidates("Cafe\u0301")
	want := []string{
		"Cafe%CC%81", // raw, decomposed
		"Caf%C3%A9",  // NFC
		"Caf%C3%A9",  // NFKC
		"Cafe%CC%81", // URI-safe, raw bytes
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Candidates() = %v, want %v", got, want)
	}
}

func TestCandidatesCompatibilityForm(t *testing.T) {
	// The "fi" ligature only changes under NFKC, so only the third
	// candidate should carry the expanded form.
	got := Candidates("ﬁnale")
	want := []string{
		"%EF%AC%81nale",
		"%EF%AC%81nale",
		"finale",
		"%EF%AC%81nale",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Candidates() = %v, want %v", got, want)
	}
}

func TestCandidatesURISafeForm(t *testing.T) {
	got := Candidates("AC/DC Live")
	if got[0] != "AC%2FDC+Live" {
		t.Errorf("component form = %q, want %q", got[0], "AC%2FDC+Live")
	}
	if got[3] != "AC/DC%20Live" {
		t.Errorf("uri-safe form = %q, want %q", got[3], "AC/DC%20Live")
	}
}

func TestCandidatesAllCleaned(t *testing.T) {
	for i, c := range Candidates("Bad\x00 Title\x1f") {
		if strings.ContainsAny(c, "\x00\x1f") {
			t.Errorf("candidate %d contains control characters: %q", i, c)
		}
	}
}

func TestCandidatesLength(t *testing.T) {
	if got := Candidates("Plain"); len(got) != 4 {
		t.Fatalf("expected 4 candidates, got %d", len(got))
	}
}
