package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Test seams: the interactive input helpers are reached through these
// variables so tests can swap them out without touching a terminal.
var (
	getSimpleText  = GetSimpleText
	getTextDefault = GetTextDefault
	getPassword    = GetPassword
	getYesNo       = GetYesNo
	readPassword   = term.ReadPassword
)

// GetSimpleText prints a prompt to w and reads a single line of input from
// reader. The trailing newline is trimmed. If EOF occurs after some input
// was read, the partial line is returned.
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetTextDefault behaves like GetSimpleText but shows def in the prompt and
// returns it when the user just presses Enter. Used by forms that keep a
// field filled from a previous attempt.
func GetTextDefault(reader *bufio.Reader, prompt, def string, w io.Writer) (string, error) {
	if def == "" {
		return GetSimpleText(reader, prompt, w)
	}
	line, err := GetSimpleText(reader, fmt.Sprintf("%s [%s]", prompt, def), w)
	if err != nil {
		return "", err
	}
	if line == "" {
		return def, nil
	}
	return line, nil
}

// GetPassword prints prompt to w and reads a password from the user's
// terminal without echo. A newline is printed after the read to keep the UI
// tidy.
//
// The returned byte slice should be wiped by the caller when no longer
// needed.
func GetPassword(prompt string, w io.Writer) ([]byte, error) {
	if _, err := fmt.Fprint(w, prompt); err != nil {
		return nil, err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	return pw, nil
}

// GetYesNo prints prompt to w and reads a yes/no answer. Only "y" and "yes"
// (any case) count as yes.
func GetYesNo(reader *bufio.Reader, prompt string, w io.Writer) (bool, error) {
	line, err := GetSimpleText(reader, prompt+" (y/n)", w)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(line) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// wipeBytes overwrites b so a password does not linger in memory.
func wipeBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
