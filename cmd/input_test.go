package cmd

import (
	"bufio"
	"bytes"
	"strings"
	"testing"
)

func TestCollectInputsAllFlags(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader(""))

	in, err := collectInputs(r, &out, "The Beatles", "Help!", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.artist != "The Beatles" || in.album != "Help!" || in.count != 5 {
		t.Errorf("inputs = %+v", in)
	}
	if out.Len() != 0 {
		t.Errorf("expected no prompts, got %q", out.String())
	}
}

func TestCollectInputsPrompts(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("The Beatles\nHelp!\n3\n"))

	in, err := collectInputs(r, &out, "", "", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.artist != "The Beatles" || in.album != "Help!" || in.count != 3 {
		t.Errorf("inputs = %+v", in)
	}
}

func TestCollectInputsCountReprompts(t *testing.T) {
	// Non-numeric, zero and negative answers are each rejected with a
	// validation message before a valid count is accepted.
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("abc\n0\n-2\n4\n"))

	in, err := collectInputs(r, &out, "Artist", "Album", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.count != 4 {
		t.Errorf("count = %d, want 4", in.count)
	}
	if got := strings.Count(out.String(), countValidationMsg); got != 3 {
		t.Errorf("expected 3 validation messages, got %d (output: %q)", got, out.String())
	}
}

func TestCollectInputsInvalidCountFlagReprompts(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("2\n"))

	in, err := collectInputs(r, &out, "Artist", "Album", -1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.count != 2 {
		t.Errorf("count = %d, want 2", in.count)
	}
	if !strings.Contains(out.String(), countValidationMsg) {
		t.Errorf("expected validation message, got %q", out.String())
	}
}

func TestCollectInputsEmptyArtist(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("\n"))

	_, err := collectInputs(r, &out, "", "Album", 1)
	if err == nil || !strings.Contains(err.Error(), "missing input") {
		t.Fatalf("expected missing input error, got %v", err)
	}
}

func TestCollectInputsEmptyAlbum(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("   \n"))

	_, err := collectInputs(r, &out, "Artist", "", 1)
	if err == nil || !strings.Contains(err.Error(), "missing input") {
		t.Fatalf("expected missing input error, got %v", err)
	}
}

func TestCollectInputsEOFDuringCountPrompt(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader(""))

	_, err := collectInputs(r, &out, "Artist", "Album", 0)
	if err == nil || !strings.Contains(err.Error(), "missing input") {
		t.Fatalf("expected missing input error, got %v", err)
	}
}
