package source_test

import (
	"testing"

	"kvbackup/src/source"
)

func TestParse_Valid(t *testing.T) {
	cases := []struct {
		in        string
		scheme    string
		value     string
		canonical string
	}{
		{"sqlite:/var/lib/app/data.db", "sqlite", "/var/lib/app/data.db", "sqlite:/var/lib/app/data.db"},
		{"sqlite:./data.db", "sqlite", "data.db", "sqlite:data.db"},
		{"https://kv.example.com/v0/tok", "https", "https://kv.example.com/v0/tok", "https://kv.example.com/v0/tok"},
		{"http://localhost:7000", "http", "http://localhost:7000", "http://localhost:7000"},
		{"memory:", "memory", "", "memory:"},
	}
	for _, c := range cases {
		got, err := source.Parse(c.in)
		if err != nil {
			t.Fatalf("Parse(%q): %v", c.in, err)
		}
		if got.Scheme != c.scheme || got.Value != c.value {
			t.Fatalf("Parse(%q) = %+v", c.in, got)
		}
		if got.String() != c.canonical {
			t.Fatalf("String(%q) = %q, want %q", c.in, got.String(), c.canonical)
		}
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, in := range []string{"", "   ", "nodsn", "redis:localhost", "sqlite:", ":path"} {
		if _, err := source.Parse(in); err == nil {
			t.Fatalf("Parse(%q): expected error", in)
		}
	}
}

func TestOpen_Memory(t *testing.T) {
	s, err := source.Parse("memory:")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	client, err := source.Open(s)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer client.Close()
	keys, err := client.Keys()
	if err != nil {
		t.Fatalf("keys: %v", err)
	}
	if len(keys) != 0 {
		t.Fatalf("fresh memory store has keys: %v", keys)
	}
}
