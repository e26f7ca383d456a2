package source

import (
	"fmt"
	"path/filepath"
	"strings"

	"kvbackup/src/kvstore"
	"kvbackup/src/kvstore/httpkv"
	"kvbackup/src/kvstore/sqlitekv"
)

// Source represents a parsed store locator.
// Examples: sqlite:/var/lib/app/data.db, https://kv.example.com/v0/token
type Source struct {
	// Raw is the original input string.
	Raw string
	// Scheme identifies the store kind: sqlite, http, https, or memory.
	Scheme string
	// Value is the scheme-specific value: a file path for sqlite, the
	// full URL for http/https, empty for memory.
	Value string
}

// SupportedSchemes lists the schemes the parser accepts.
var SupportedSchemes = map[string]struct{}{
	"sqlite": {},
	"http":   {},
	"https":  {},
	"memory": {},
}

// Parse parses a store locator like "sqlite:/path" or "https://host/db"
// into a Source structure.
func Parse(raw string) (Source, error) {
	s := Source{Raw: raw}
	in := strings.TrimSpace(raw)
	if in == "" {
		return s, fmt.Errorf("store locator must not be empty; expected format '<scheme>:<value>' (e.g., 'sqlite:/path/data.db')")
	}
	i := strings.Index(in, ":")
	if i <= 0 {
		return s, fmt.Errorf("invalid store locator %q; expected format '<scheme>:<value>'", raw)
	}
	scheme := strings.ToLower(strings.TrimSpace(in[:i]))
	val := strings.TrimSpace(in[i+1:])
	if _, ok := SupportedSchemes[scheme]; !ok {
		return s, fmt.Errorf("unsupported store scheme %q", scheme)
	}
	s.Scheme = scheme

	switch scheme {
	case "sqlite":
		if val == "" {
			return s, fmt.Errorf("sqlite store path must not be empty")
		}
		s.Value = filepath.Clean(val)
	case "http", "https":
		if val == "" {
			return s, fmt.Errorf("store URL must not be empty")
		}
		// Keep the full URL, scheme included.
		s.Value = in
	case "memory":
		s.Value = ""
	}
	return s, nil
}

// Open connects to the store the source describes.
func Open(s Source) (kvstore.Client, error) {
	switch s.Scheme {
	case "sqlite":
		return sqlitekv.Open(s.Value)
	case "http", "https":
		return httpkv.New(s.Value)
	case "memory":
		return kvstore.NewFake(), nil
	default:
		return nil, fmt.Errorf("unsupported store scheme %q", s.Scheme)
	}
}

// String returns a canonical string form of the source.
func (s Source) String() string {
	if s.Scheme == "http" || s.Scheme == "https" {
		return s.Value
	}
	if s.Scheme != "" {
		return s.Scheme + ":" + s.Value
	}
	return s.Raw
}
