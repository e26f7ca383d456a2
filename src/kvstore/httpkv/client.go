// Package httpkv speaks the plain REST dialect used by hosted key-value
// services such as Replit DB: GET base?prefix= enumerates keys one per
// line (URL-encoded), GET base/<key> returns the raw value, and POST base
// with form-encoded pairs writes. Credentials ride in the base URL, which
// the hosting environment supplies.
package httpkv

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"kvbackup/src/jsonval"
	"kvbackup/src/kvstore"
)

// Client implements kvstore.Client over HTTP.
type Client struct {
	base *url.URL
	http *http.Client
}

// New validates rawURL and returns a client for it.
func New(rawURL string) (*Client, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse store url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("store url must be http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("store url %q has no host", rawURL)
	}
	return &Client{
		base: u,
		http: &http.Client{Timeout: 30 * time.Second},
	}, nil
}

func (c *Client) Keys() ([]string, error) {
	u := *c.base
	q := u.Query()
	q.Set("prefix", "")
	u.RawQuery = q.Encode()

	resp, err := c.http.Get(u.String())
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("list keys: store returned %s", resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("list keys: %w", err)
	}
	var keys []string
	for _, line := range strings.Split(string(body), "\n") {
		if line == "" {
			continue
		}
		key, err := url.QueryUnescape(line)
		if err != nil {
			return nil, fmt.Errorf("decode key %q: %w", line, err)
		}
		keys = append(keys, key)
	}
	return keys, nil
}

func (c *Client) Get(key string) (jsonval.Value, error) {
	target := strings.TrimSuffix(c.base.String(), "/") + "/" + url.PathEscape(key)
	resp, err := c.http.Get(target)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return nil, &kvstore.NotFoundError{Key: key}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("read key %q: store returned %s", key, resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read key %q: %w", key, err)
	}
	// The service stores bare text. Values written as JSON come back as
	// JSON documents; anything else is a plain string value.
	if v, err := jsonval.Decode(body); err == nil {
		return v, nil
	}
	if !utf8.Valid(body) {
		return nil, &kvstore.InvalidValueError{Key: key, Err: fmt.Errorf("value is not valid UTF-8")}
	}
	return jsonval.String(body), nil
}

func (c *Client) Set(key string, value jsonval.Value) error {
	text, err := marshalValue(value)
	if err != nil {
		return &kvstore.InvalidValueError{Key: key, Err: err}
	}
	form := url.Values{}
	form.Set(key, text)
	resp, err := c.http.PostForm(c.base.String(), form)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("write key %q: store returned %s", key, resp.Status)
	}
	return nil
}

func (c *Client) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

// marshalValue renders the wire form of a value. Plain strings are sent
// bare so a later Get returns the same String, mirroring how the service
// stores them.
func marshalValue(v jsonval.Value) (string, error) {
	if s, ok := v.(jsonval.String); ok {
		// A string that parses as JSON must be quoted or it would come
		// back as a different type.
		if _, err := jsonval.Decode([]byte(s)); err != nil {
			return string(s), nil
		}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
