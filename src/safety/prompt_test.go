package safety_test

import (
	"bytes"
	"strings"
	"testing"

	"kvbackup/src/safety"
)

func TestConfirm_DryRunDeclines(t *testing.T) {
	ok, err := safety.Confirm(safety.Options{DryRun: true, Yes: true}, strings.NewReader(""), nil, "proceed?")
	if err != nil || ok {
		t.Fatalf("dry-run must decline: ok=%v err=%v", ok, err)
	}
}

func TestConfirm_YesSkipsPrompt(t *testing.T) {
	var out bytes.Buffer
	ok, err := safety.Confirm(safety.Options{Yes: true}, strings.NewReader(""), &out, "proceed?")
	if err != nil || !ok {
		t.Fatalf("--yes must accept: ok=%v err=%v", ok, err)
	}
	if out.Len() != 0 {
		t.Fatalf("--yes must not prompt, wrote %q", out.String())
	}
}

func TestConfirm_ReadsAnswer(t *testing.T) {
	cases := map[string]bool{
		"y\n":   true,
		"YES\n": true,
		"n\n":   false,
		"\n":    false,
		"":      false,
	}
	for input, want := range cases {
		var out bytes.Buffer
		ok, err := safety.Confirm(safety.Options{}, strings.NewReader(input), &out, "proceed?")
		if err != nil {
			t.Fatalf("input %q: %v", input, err)
		}
		if ok != want {
			t.Fatalf("input %q: ok=%v, want %v", input, ok, want)
		}
		if !strings.Contains(out.String(), "proceed?") {
			t.Fatalf("prompt not written: %q", out.String())
		}
	}
}
