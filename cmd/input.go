package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const countValidationMsg = "Repeat count must be a positive integer"

// inputs are the three values a run needs.
type inputs struct {
	artist string
	album  string
	count  int
}

// collectInputs fills anything missing from the flags by prompting on r.
// An empty artist or album after prompting is a hard error; the repeat
// count is re-prompted until it parses as a positive integer.
func collectInputs(r *bufio.Reader, w io.Writer, artist, album string, count int) (inputs, error) {
	artist = strings.TrimSpace(artist)
	album = strings.TrimSpace(album)

	var err error
	if artist == "" {
		if artist, err = promptLine(r, w, "Artist: "); err != nil {
			return inputs{}, err
		}
	}
	if artist == "" {
		return inputs{}, fmt.Errorf("missing input: artist")
	}

	if album == "" {
		if album, err = promptLine(r, w, "Album: "); err != nil {
			return inputs{}, err
		}
	}
	if album == "" {
		return inputs{}, fmt.Errorf("missing input: album")
	}

	if count <= 0 {
		if count != 0 {
			// Flag was supplied but invalid; say so before re-prompting.
			fmt.Fprintln(w, countValidationMsg)
		}
		if count, err = promptCount(r, w); err != nil {
			return inputs{}, err
		}
	}

	return inputs{artist: artist, album: album, count: count}, nil
}

// promptLine writes prompt and reads one trimmed line.
func promptLine(r *bufio.Reader, w io.Writer, prompt string) (string, error) {
	fmt.Fprint(w, prompt)
	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("missing input: no value provided")
	}
	return strings.TrimSpace(line), nil
}

// promptCount keeps asking until it gets a positive integer.
func promptCount(r *bufio.Reader, w io.Writer) (int, error) {
	for {
		line, err := promptLine(r, w, "Repeat count: ")
		if err != nil {
			return 0, err
		}
		n, convErr := strconv.Atoi(line)
		if convErr != nil || n <= 0 {
			fmt.Fprintln(w, countValidationMsg)
			continue
		}
		return n, nil
	}
}
