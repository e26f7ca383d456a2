package kvstore

import "kvbackup/src/jsonval"

// Client is a narrow interface over a key-value store used by this app.
// Keep it small and focused on what we actually need so it stays mockable.
type Client interface {
	// Keys returns every key in the store's namespace, in whatever order
	// the store yields.
	Keys() ([]string, error)

	// Get reads the value stored under key. A value that cannot be
	// represented as JSON is reported with *InvalidValueError.
	Get(key string) (jsonval.Value, error)

	// Set writes value under key, replacing any existing value.
	Set(key string, value jsonval.Value) error

	// Close releases the underlying connection or handle.
	Close() error
}

// NotFoundError reports a key absent from the store.
type NotFoundError struct{ Key string }

func (e *NotFoundError) Error() string { return "key not found: " + e.Key }

// InvalidValueError reports a stored value with no JSON representation.
type InvalidValueError struct {
	Key string
	Err error
}

func (e *InvalidValueError) Error() string {
	return "value for key " + e.Key + " is not representable as JSON: " + e.Err.Error()
}

func (e *InvalidValueError) Unwrap() error { return e.Err }
