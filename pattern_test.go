package jsonwalk

import (
	"errors"
	"testing"

	"github.com/jacoelho/jsonwalk/source"
)

const patternDoc = `[{"key1":{"key4":100},"key2":10},[{"key1":{"key4":300}, "key3":100}],"key1"]`

func TestWalker_NextItemByPattern(t *testing.T) {
	t.Parallel()

	t.Run("three_step_chain", func(t *testing.T) {
		t.Parallel()

		w := New(source.String(patternDoc))

		item, err := w.NextItemByPattern(
			And{LevelIs(2), NthIs(0)},
			And{KeyIs("key1"), LevelIs(3)},
			KeyIs("key4"),
		)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.Text != "key4" {
			t.Fatalf("got %+v, want key4", item)
		}

		raw, err := w.ValueContent()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if raw != "300" {
			t.Fatalf("got %q, want %q", raw, "300")
		}
	})

	t.Run("single_predicate_matches_scan", func(t *testing.T) {
		t.Parallel()

		scan := New(source.String(patternDoc))
		var want Item
		for {
			item, err := scan.NextItem()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if item.Text == "key3" {
				want = item
				break
			}
		}

		w := New(source.String(patternDoc))
		got, err := w.NextItemByPattern(TextIs("key3"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != want {
			t.Fatalf("got %+v, want %+v", got, want)
		}
	})

	t.Run("chain_never_retreats", func(t *testing.T) {
		t.Parallel()

		// key "b" arrives only before "a" at level 2; once the first
		// predicate matched past it, the chain cannot complete.
		w := New(source.String(`{"outer": {"b": 1, "a": 2}}`))
		_, err := w.NextItemByPattern(KeyIs("a"), KeyIs("b"))
		if !errors.Is(err, ErrEndOfStream) {
			t.Fatalf("got %v, want ErrEndOfStream", err)
		}
	})

	t.Run("duplicate_key_occurrence", func(t *testing.T) {
		t.Parallel()

		w := New(source.String(`{"k": 1, "k": 2, "k": 3}`))
		item, err := w.NextItemByPattern(And{KeyIs("k"), NthIs(2), IsKey(true)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.Text != "k" {
			t.Fatalf("got %+v, want third k", item)
		}

		raw, err := w.ValueContent()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if raw != "3" {
			t.Fatalf("got %q, want %q", raw, "3")
		}
	})

	t.Run("empty_chain", func(t *testing.T) {
		t.Parallel()

		w := New(source.String(`[1]`))
		if _, err := w.NextItemByPattern(); !errors.Is(err, ErrEmptyChain) {
			t.Fatalf("got %v, want ErrEmptyChain", err)
		}
	})

	t.Run("exhausted_before_match", func(t *testing.T) {
		t.Parallel()

		w := New(source.String(`{"a": 1}`))
		if _, err := w.NextItemByPattern(KeyIs("zzz")); !errors.Is(err, ErrEndOfStream) {
			t.Fatalf("got %v, want ErrEndOfStream", err)
		}
	})
}

func TestPredicates(t *testing.T) {
	t.Parallel()

	state := CurrentState{
		Level:         2.5,
		LatestKey:     "name",
		NthOccurrence: 1,
		Item:          Item{Kind: KindString, Text: "bob"},
		IsKey:         false,
	}

	tests := []struct {
		name string
		p    Predicate
		want bool
	}{
		{name: "level_match", p: LevelIs(2.5), want: true},
		{name: "level_mismatch", p: LevelIs(2), want: false},
		{name: "key_match", p: KeyIs("name"), want: true},
		{name: "nth_match", p: NthIs(1), want: true},
		{name: "text_match", p: TextIs("bob"), want: true},
		{name: "is_key", p: IsKey(false), want: true},
		{name: "and_all", p: And{KeyIs("name"), NthIs(1)}, want: true},
		{name: "and_short_circuit", p: And{KeyIs("other"), NthIs(1)}, want: false},
		{name: "or_any", p: Or{KeyIs("other"), TextIs("bob")}, want: true},
		{name: "not", p: Not{P: KeyIs("other")}, want: true},
		{name: "func", p: MatchFunc(func(s CurrentState) bool { return s.Level > 2 }), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.p.Match(state); got != tt.want {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
		})
	}
}
