// Package content defines the portfolio content store and loads it from YAML.
package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrNotFound is returned by Load when the content file does not exist.
var ErrNotFound = errors.New("content file not found")

//go:embed sample.yml
var sampleYAML []byte

// Load reads and decodes the content file at path.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("reading content %s: %w", path, err)
	}
	store, err := Decode(bytes.NewReader(data), false)
	if err != nil {
		return nil, fmt.Errorf("decoding content %s: %w", path, err)
	}
	return store, nil
}

// Decode parses a content document. In strict mode unknown keys are errors,
// which is what `folio validate` uses to catch typos.
func Decode(r io.Reader, strict bool) (*Store, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(strict)

	var s Store
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return &s, nil
		}
		return nil, err
	}
	return &s, nil
}

// Sample returns the built-in example store used by `folio init` and tests.
func Sample() *Store {
	s, err := Decode(bytes.NewReader(sampleYAML), true)
	if err != nil {
		panic(fmt.Sprintf("content: embedded sample is invalid: %v", err))
	}
	return s
}

// SampleYAML returns the raw YAML of the built-in example store.
func SampleYAML() []byte {
	out := make([]byte, len(sampleYAML))
	copy(out, sampleYAML)
	return out
}
