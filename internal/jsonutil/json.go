// Package jsonutil is a thin wrapper around bytedance/sonic so the codec
// configuration lives in one place.
package jsonutil

import (
	"github.com/bytedance/sonic"
)

// api is the frozen sonic configuration shared by all callers.
// UseNumber keeps third-party numeric fields lossless until they are
// normalized, since these APIs freely switch between numbers and strings.
var api = sonic.Config{
	UseNumber:  true,
	EscapeHTML: true,
}.Froze()

// Marshal serializes v to JSON.
func Marshal(v interface{}) ([]byte, error) {
	return api.Marshal(v)
}

// Unmarshal deserializes JSON data into v.
func Unmarshal(data []byte, v interface{}) error {
	return api.Unmarshal(data, v)
}
