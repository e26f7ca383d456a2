// Package restore loads a backup file produced by the export and writes
// its pairs back into a store.
package restore

import (
	"fmt"
	"os"
	"sort"

	"kvbackup/src/jsonval"
	"kvbackup/src/kvstore"
)

// Summary describes a completed restore.
type Summary struct {
	Keys int
	Path string
}

// Load reads and validates a backup file. The top-level JSON value must be
// an object; anything else is not a backup this tool produced.
func Load(path string) (jsonval.Object, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read backup %s: %w", path, err)
	}
	v, err := jsonval.Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("parse backup %s: %w", path, err)
	}
	obj, ok := v.(jsonval.Object)
	if !ok {
		return nil, fmt.Errorf("backup %s: top-level JSON value is %s, want object", path, jsonval.TypeName(v))
	}
	return obj, nil
}

// Apply writes every pair in the mapping into the store, replacing any
// existing values. Keys are written in sorted order so failures are
// reproducible.
func Apply(client kvstore.Client, data jsonval.Object) (int, error) {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := client.Set(k, data[k]); err != nil {
			return 0, fmt.Errorf("restore key %q: %w", k, err)
		}
	}
	return len(keys), nil
}

// Restore loads the backup at path and applies it to the store.
func Restore(client kvstore.Client, path string) (Summary, error) {
	data, err := Load(path)
	if err != nil {
		return Summary{}, err
	}
	n, err := Apply(client, data)
	if err != nil {
		return Summary{}, err
	}
	return Summary{Keys: n, Path: path}, nil
}
