package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"
)

func TestGetSimpleText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain line", input: "hello\n", want: "hello"},
		{name: "trims whitespace", input: "  spaced  \n", want: "spaced"},
		{name: "partial line at EOF", input: "no-newline", want: "no-newline"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			r := bufio.NewReader(strings.NewReader(tt.input))
			got, err := GetSimpleText(r, "prompt", &out)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
			if !strings.Contains(out.String(), "prompt") {
				t.Errorf("prompt not written, got %q", out.String())
			}
		})
	}
}

func TestGetSimpleTextEOFWithoutInput(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader(""))
	if _, err := GetSimpleText(r, "prompt", &out); err == nil {
		t.Fatal("expected error on immediate EOF")
	}
}

func TestGetPassword(t *testing.T) {
	orig := readPassword
	t.Cleanup(func() { readPassword = orig })
	readPassword = func(fd int) ([]byte, error) {
		return []byte("hunter2"), nil
	}

	var out bytes.Buffer
	pw, err := GetPassword(&out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(pw) != "hunter2" {
		t.Errorf("got %q", pw)
	}
	if !strings.Contains(out.String(), "Enter password") {
		t.Errorf("prompt not written, got %q", out.String())
	}
}
