package mcp

import (
	"encoding/json"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
)

func TestPrettyJSON(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"null", nil, "null"},
		{"array", []any{1, "a"}, "[\n  1,\n  \"a\"\n]"},
		{"object", map[string]any{"b": 1, "a": true}, "{\n  \"a\": true,\n  \"b\": 1\n}"},
		{"no html escaping", map[string]any{"url": "https://x.com/?a=1&b=<2>"}, "{\n  \"url\": \"https://x.com/?a=1&b=<2>\"\n}"},
		{"large number kept", json.Number("12345678901234567890"), "12345678901234567890"},
		{"empty object", map[string]any{}, "{}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, prettyJSON(tt.in))
		})
	}
}

func TestCountItems(t *testing.T) {
	assert.Equal(t, 2, countItems([]any{1, 2}))
	assert.Equal(t, 0, countItems([]any{}))
	assert.Equal(t, 3, countItems(map[string]any{"data": []any{1, 2, 3}}))
	assert.Equal(t, 0, countItems(map[string]any{"data": "x"}))
	assert.Equal(t, 0, countItems(map[string]any{}))
	assert.Equal(t, 0, countItems("ads"))
	assert.Equal(t, 0, countItems(nil))
}

func TestIsFalsy(t *testing.T) {
	falsy := []any{nil, false, "", json.Number("0"), json.Number("0.0"), 0.0}
	for _, v := range falsy {
		assert.True(t, isFalsy(v), "%#v", v)
	}
	truthy := []any{true, "x", json.Number("1"), 1.5, map[string]any{}, []any{}}
	for _, v := range truthy {
		assert.False(t, isFalsy(v), "%#v", v)
	}
}

func TestShape(t *testing.T) {
	ok := shape([]any{}, nil, dump, failedTo("fetching campaigns"))
	assert.False(t, ok.IsError)

	failed := shape(nil, errors.New("timeout"), dump, failedTo("fetching campaigns"))
	assert.True(t, failed.IsError)
	assert.Len(t, failed.Content, 1)
	assert.Equal(t, "Error fetching campaigns: timeout", firstText(failed))
}
