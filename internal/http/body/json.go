package body

import (
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

var (
	ErrInvalidJSON = fmt.Errorf("body is not valid JSON")
)

// JSON looks up path in the payload with gjson syntax. A non-JSON payload
// yields a result that does not exist.
func (b *Body) JSON(path string) gjson.Result {
	return gjson.GetBytes(b.Bytes(), path)
}

// SetJSON patches path with value using sjson syntax and stores the result
// as the new byte payload. An empty payload starts as {}.
func (b *Body) SetJSON(path string, value interface{}) error {
	doc := b.Bytes()
	if len(doc) == 0 {
		doc = []byte("{}")
	}
	if !gjson.ValidBytes(doc) {
		return ErrInvalidJSON
	}

	patched, err := sjson.SetBytes(doc, path, value)
	if err != nil {
		return fmt.Errorf("set %q: %w", path, err)
	}

	b.kind = payloadBytes
	b.bytes = patched
	b.text = ""
	return nil
}

// DeleteJSON removes path from the payload. Missing paths are not an error.
func (b *Body) DeleteJSON(path string) error {
	doc := b.Bytes()
	if len(doc) == 0 {
		return nil
	}
	if !gjson.ValidBytes(doc) {
		return ErrInvalidJSON
	}

	patched, err := sjson.DeleteBytes(doc, path)
	if err != nil {
		return fmt.Errorf("delete %q: %w", path, err)
	}

	b.kind = payloadBytes
	b.bytes = patched
	b.text = ""
	return nil
}
