package extract

import (
	"errors"
	"testing"

	"github.com/jacoelho/jsonwalk"
	"github.com/jacoelho/jsonwalk/source"
)

func TestValue(t *testing.T) {
	t.Parallel()

	t.Run("struct", func(t *testing.T) {
		t.Parallel()

		w := jsonwalk.New(source.String(`{"user": {"name": "bob", "age": 42}}`))
		if _, err := w.NextKey(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var user struct {
			Name string `json:"name"`
			Age  int    `json:"age"`
		}
		if err := Value(w, &user); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.Name != "bob" || user.Age != 42 {
			t.Fatalf("got %+v, want bob/42", user)
		}
	})

	t.Run("escaped_string", func(t *testing.T) {
		t.Parallel()

		w := jsonwalk.New(source.String(`{"a": "x\ny"}`))
		if _, err := w.NextKey(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var got string
		if err := Value(w, &got); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "x\ny" {
			t.Fatalf("got %q, want %q", got, "x\ny")
		}
	})

	t.Run("decode_mismatch_keeps_cursor", func(t *testing.T) {
		t.Parallel()

		w := jsonwalk.New(source.String(`{"a": "text", "b": 2}`))
		if _, err := w.NextKey(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var n int
		if err := Value(w, &n); !errors.Is(err, ErrDecode) {
			t.Fatalf("got %v, want ErrDecode", err)
		}

		// the value was consumed; the walker continues at the next member
		key, err := w.NextKey()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if key.Text != "b" {
			t.Fatalf("got %q, want %q", key.Text, "b")
		}
		if err := Value(w, &n); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != 2 {
			t.Fatalf("got %d, want 2", n)
		}
	})
}

func TestQuery(t *testing.T) {
	t.Parallel()

	const doc = `{"data": {"items": [{"name": "a"}, {"name": "b"}]}}`

	t.Run("all_matches", func(t *testing.T) {
		t.Parallel()

		w := jsonwalk.New(source.String(doc))
		if _, err := w.NextKey(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		results, err := Query(w, "$.items[*].name")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(results) != 2 || results[0] != "a" || results[1] != "b" {
			t.Fatalf("got %v, want [a b]", results)
		}
	})

	t.Run("first_match", func(t *testing.T) {
		t.Parallel()

		w := jsonwalk.New(source.String(doc))
		got, err := QueryOne(w, "$..name")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "a" {
			t.Fatalf("got %v, want a", got)
		}
	})

	t.Run("no_results", func(t *testing.T) {
		t.Parallel()

		w := jsonwalk.New(source.String(doc))
		if _, err := QueryOne(w, "$.missing"); !errors.Is(err, ErrNotFound) {
			t.Fatalf("got %v, want ErrNotFound", err)
		}
	})

	t.Run("invalid_expression", func(t *testing.T) {
		t.Parallel()

		w := jsonwalk.New(source.String(doc))
		if _, err := Query(w, "$["); !errors.Is(err, ErrQuery) {
			t.Fatalf("got %v, want ErrQuery", err)
		}
	})
}
