package sqlitekv_test

import (
	"database/sql"
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	_ "modernc.org/sqlite"

	"kvbackup/src/jsonval"
	"kvbackup/src/kvstore"
	"kvbackup/src/kvstore/sqlitekv"
)

func TestStore_SetGetKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.db")
	s, err := sqlitekv.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()

	want := map[string]jsonval.Value{
		"score": jsonval.Number("42"),
		"name":  jsonval.String("alice"),
		"tags":  jsonval.Array{jsonval.String("a"), jsonval.String("b")},
	}
	for k, v := range want {
		if err := s.Set(k, v); err != nil {
			t.Fatalf("set %s: %v", k, err)
		}
	}

	keys, err := s.Keys()
	if err != nil {
		t.Fatalf("keys: %v", err)
	}
	if !reflect.DeepEqual(keys, []string{"name", "score", "tags"}) {
		t.Fatalf("keys = %v", keys)
	}
	for k, v := range want {
		got, err := s.Get(k)
		if err != nil {
			t.Fatalf("get %s: %v", k, err)
		}
		if !reflect.DeepEqual(got, v) {
			t.Fatalf("get %s = %#v, want %#v", k, got, v)
		}
	}
}

func TestStore_SetReplaces(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.db")
	s, err := sqlitekv.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()

	_ = s.Set("k", jsonval.Number("1"))
	if err := s.Set("k", jsonval.Number("2")); err != nil {
		t.Fatalf("second set: %v", err)
	}
	got, err := s.Get("k")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != jsonval.Number("2") {
		t.Fatalf("got %#v", got)
	}
	keys, _ := s.Keys()
	if len(keys) != 1 {
		t.Fatalf("expected one key, got %v", keys)
	}
}

func TestStore_GetMissing(t *testing.T) {
	s, err := sqlitekv.Open(filepath.Join(t.TempDir(), "app.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()

	_, err = s.Get("ghost")
	var nf *kvstore.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestStore_InvalidStoredValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.db")
	s, err := sqlitekv.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()

	// A row written by something else with non-JSON content.
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("raw open: %v", err)
	}
	defer db.Close()
	if _, err := db.Exec(`INSERT INTO kv (key, value) VALUES ('bad', 'not json')`); err != nil {
		t.Fatalf("insert: %v", err)
	}

	_, err = s.Get("bad")
	var iv *kvstore.InvalidValueError
	if !errors.As(err, &iv) || iv.Key != "bad" {
		t.Fatalf("expected InvalidValueError for bad, got %v", err)
	}
}
