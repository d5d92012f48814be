package console

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestPromptTrims(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader("  hello world  \n"), &out)

	got, err := c.Prompt("say: ")
	if err != nil {
		t.Fatalf("Prompt failed: %v", err)
	}
	if got != "hello world" {
		t.Errorf("Prompt = %q, want trimmed line", got)
	}
	if !strings.Contains(out.String(), "say: ") {
		t.Error("prompt text not written")
	}
}

func TestPromptEOF(t *testing.T) {
	c := New(strings.NewReader(""), io.Discard)

	if _, err := c.Prompt("x: "); !errors.Is(err, io.EOF) {
		t.Errorf("err = %v, want io.EOF", err)
	}
}

func TestPromptIntReprompts(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader("abc\n9\n3\n"), &out)

	got, err := c.PromptInt("pick: ", 1, 5)
	if err != nil {
		t.Fatalf("PromptInt failed: %v", err)
	}
	if got != 3 {
		t.Errorf("PromptInt = %d, want 3", got)
	}

	text := out.String()
	if !strings.Contains(text, "please enter a number") {
		t.Error("missing parse error message")
	}
	if !strings.Contains(text, "between 1 and 5") {
		t.Error("missing range error message")
	}
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"yes\n", true},
		{"y\n", true},
		{"NO\n", false},
		{"maybe\nn\n", false},
	}

	for _, tt := range tests {
		c := New(strings.NewReader(tt.input), io.Discard)
		got, err := c.Confirm("sure?")
		if err != nil {
			t.Fatalf("Confirm(%q) failed: %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("Confirm(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
