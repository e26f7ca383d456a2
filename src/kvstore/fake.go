package kvstore

import (
	"sort"

	"kvbackup/src/jsonval"
)

// Fake is an in-memory Client implementation for unit tests.
type Fake struct {
	Data map[string]jsonval.Value

	// Error injection points. When set, the corresponding call fails
	// with the given error before touching Data.
	KeysErr error
	GetErr  error
	SetErr  error
}

func NewFake() *Fake {
	return &Fake{Data: map[string]jsonval.Value{}}
}

func (f *Fake) Keys() ([]string, error) {
	if f.KeysErr != nil {
		return nil, f.KeysErr
	}
	out := make([]string, 0, len(f.Data))
	for k := range f.Data {
		out = append(out, k)
	}
	sort.Strings(out)
	return out, nil
}

func (f *Fake) Get(key string) (jsonval.Value, error) {
	if f.GetErr != nil {
		return nil, f.GetErr
	}
	v, ok := f.Data[key]
	if !ok {
		return nil, &NotFoundError{Key: key}
	}
	return v, nil
}

func (f *Fake) Set(key string, value jsonval.Value) error {
	if f.SetErr != nil {
		return f.SetErr
	}
	if f.Data == nil {
		f.Data = map[string]jsonval.Value{}
	}
	f.Data[key] = value
	return nil
}

func (f *Fake) Close() error { return nil }
