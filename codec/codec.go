// Package codec converts values to and from JSON text.
package codec

import (
	"github.com/cockroachdb/errors"
	json "github.com/goccy/go-json"
)

// Serialize returns the JSON encoding of v. Key order is not guaranteed.
func Serialize(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", errors.Wrapf(err, "serialize %T", v)
	}
	return string(data), nil
}

// Deserialize decodes text into a new value of type T. Fields present in
// text are copied; the methods of T are available on the result.
func Deserialize[T any](text string) (T, error) {
	var v T
	if err := json.Unmarshal([]byte(text), &v); err != nil {
		return v, errors.Wrapf(err, "deserialize %T", v)
	}
	return v, nil
}
