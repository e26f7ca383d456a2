// Package export serializes a store's entire key namespace into a single
// pretty-printed JSON document on local disk.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"kvbackup/src/jsonval"
	"kvbackup/src/kvstore"
)

// DefaultFilename is the backup artifact written when nothing else is
// configured, relative to the working directory.
const DefaultFilename = "database_backup.json"

// StoreUnavailableError reports that the store could not be reached or
// enumerated. When it occurs, the destination file has not been touched.
type StoreUnavailableError struct {
	Op  string
	Err error
}

func (e *StoreUnavailableError) Error() string {
	return fmt.Sprintf("store unavailable: %s: %v", e.Op, e.Err)
}

func (e *StoreUnavailableError) Unwrap() error { return e.Err }

// SerializationError reports a value that cannot be rendered as JSON.
// Key is empty when the failure concerns the mapping as a whole.
type SerializationError struct {
	Key string
	Err error
}

func (e *SerializationError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("serialize backup: %v", e.Err)
	}
	return fmt.Sprintf("serialize value for key %q: %v", e.Key, e.Err)
}

func (e *SerializationError) Unwrap() error { return e.Err }

// FilesystemError reports that the destination could not be written.
type FilesystemError struct {
	Path string
	Err  error
}

func (e *FilesystemError) Error() string {
	return fmt.Sprintf("write backup %s: %v", e.Path, e.Err)
}

func (e *FilesystemError) Unwrap() error { return e.Err }

// Summary describes a completed export.
type Summary struct {
	Keys  int
	Bytes int
	Path  string
}

// Export enumerates every key in the store, reads each value, and writes
// the resulting mapping to destPath as an indented JSON object. The file
// is created (or truncated) only after the whole mapping has been read and
// serialized in memory, so a store failure never touches the destination.
// There are no retries; the first failure aborts the operation.
func Export(client kvstore.Client, destPath string) (Summary, error) {
	keys, err := client.Keys()
	if err != nil {
		return Summary{}, &StoreUnavailableError{Op: "list keys", Err: err}
	}

	data := make(map[string]jsonval.Value, len(keys))
	for _, key := range keys {
		v, err := client.Get(key)
		if err != nil {
			var invalid *kvstore.InvalidValueError
			if errors.As(err, &invalid) {
				return Summary{}, &SerializationError{Key: key, Err: invalid.Err}
			}
			return Summary{}, &StoreUnavailableError{Op: fmt.Sprintf("read key %q", key), Err: err}
		}
		data[key] = v
	}

	text, err := json.MarshalIndent(data, "", "    ")
	if err != nil {
		return Summary{}, &SerializationError{Err: err}
	}
	text = append(text, '\n')

	f, err := os.Create(destPath)
	if err != nil {
		return Summary{}, &FilesystemError{Path: destPath, Err: err}
	}
	if _, err := f.Write(text); err != nil {
		f.Close()
		return Summary{}, &FilesystemError{Path: destPath, Err: err}
	}
	if err := f.Close(); err != nil {
		return Summary{}, &FilesystemError{Path: destPath, Err: err}
	}

	return Summary{Keys: len(keys), Bytes: len(text), Path: destPath}, nil
}
