// Package extract decodes the value ahead of a walker cursor into Go
// values. It bridges the forward-only stream to encoding/json and
// JSONPath for the one subtree the caller actually wants, keeping the
// rest of the document unbuffered.
package extract

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/theory/jsonpath"

	"github.com/jacoelho/jsonwalk"
)

var (
	// ErrDecode indicates the captured value could not be decoded.
	// The walker cursor remains valid past the consumed value.
	ErrDecode = errors.New("decode value")

	// ErrQuery indicates an invalid JSONPath expression.
	ErrQuery = errors.New("invalid query")

	// ErrNotFound indicates a JSONPath query selected nothing.
	ErrNotFound = errors.New("no results")
)

// Value consumes the value ahead of the cursor and unmarshals it into v,
// following the rules of encoding/json.
func Value(w *jsonwalk.Walker, v any) error {
	raw, err := w.ValueContent()
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return nil
}

// Query consumes the value ahead of the cursor and selects from it with
// a JSONPath expression (e.g. "$.user.name", "$..items[0]").
func Query(w *jsonwalk.Walker, pathExpr string) ([]any, error) {
	path, err := jsonpath.Parse(pathExpr)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrQuery, pathExpr, err)
	}

	var data any
	if err := Value(w, &data); err != nil {
		return nil, err
	}

	return path.Select(data), nil
}

// QueryOne returns the first result of Query, or ErrNotFound when the
// expression selects nothing.
func QueryOne(w *jsonwalk.Walker, pathExpr string) (any, error) {
	results, err := Query(w, pathExpr)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, ErrNotFound
	}
	return results[0], nil
}
