package body

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBodyString(t *testing.T) {
	tests := []struct {
		name       string
		body       *Body
		expectStr  string
		expectText bool
	}{
		{"empty", Empty(), "", false},
		{"nil bytes", New(nil), "", false},
		{"bytes", New([]byte("hello")), "hello", false},
		{"text", FromString("hi there"), "hi there", true},
		{"binary passthrough", New([]byte{0x00, 0x41}), "\x00A", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectStr, tt.body.String())
			assert.Equal(t, tt.expectText, tt.body.IsText())
			assert.Equal(t, len(tt.expectStr), tt.body.Len())
		})
	}
}

func TestSetString(t *testing.T) {
	b := New([]byte("original"))
	b.SetString("hello")

	assert.True(t, b.IsText())
	assert.Equal(t, "hello", b.String())
	assert.Equal(t, []byte("hello"), b.Bytes())

	b.SetString("")
	assert.Equal(t, "", b.String())
	assert.Equal(t, 0, b.Len())
}

func TestNilBody(t *testing.T) {
	var b *Body
	assert.Equal(t, "", b.String())
	assert.Nil(t, b.Bytes())
	assert.Equal(t, 0, b.Len())
}

func TestJSON(t *testing.T) {
	b := New([]byte(`{"user":{"name":"ada","tags":["a","b"]}}`))

	assert.Equal(t, "ada", b.JSON("user.name").String())
	assert.Equal(t, int64(2), b.JSON("user.tags.#").Int())
	assert.False(t, b.JSON("user.missing").Exists())

	assert.False(t, FromString("not json").JSON("user").Exists())
}

func TestSetJSON(t *testing.T) {
	tests := []struct {
		name      string
		body      *Body
		path      string
		value     interface{}
		expectErr error
		expect    string
	}{
		{
			name:   "empty body starts as object",
			body:   Empty(),
			path:   "name",
			value:  "ada",
			expect: `{"name":"ada"}`,
		},
		{
			name:   "patch nested",
			body:   New([]byte(`{"user":{"id":1}}`)),
			path:   "user.id",
			value:  2,
			expect: `{"user":{"id":2}}`,
		},
		{
			name:   "text payload is patched",
			body:   FromString(`{"a":true}`),
			path:   "b",
			value:  false,
			expect: `{"a":true,"b":false}`,
		},
		{
			name:      "invalid document",
			body:      FromString("plain text"),
			path:      "a",
			value:     1,
			expectErr: ErrInvalidJSON,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.body.SetJSON(tt.path, tt.value)
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				return
			}
			require.NoError(t, err)
			assert.JSONEq(t, tt.expect, tt.body.String())
			assert.False(t, tt.body.IsText())
		})
	}
}

func TestSetJSONInvalidPath(t *testing.T) {
	b := New([]byte(`{}`))
	err := b.SetJSON("", 1)
	assert.Error(t, err)
	assert.Equal(t, `{}`, b.String())
}

func TestDeleteJSON(t *testing.T) {
	b := New([]byte(`{"a":1,"b":2}`))
	require.NoError(t, b.DeleteJSON("a"))
	assert.JSONEq(t, `{"b":2}`, b.String())

	require.NoError(t, b.DeleteJSON("missing"))
	assert.JSONEq(t, `{"b":2}`, b.String())

	assert.NoError(t, Empty().DeleteJSON("a"))
	assert.ErrorIs(t, FromString("nope").DeleteJSON("a"), ErrInvalidJSON)
}
