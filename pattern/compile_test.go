package pattern

import (
	"errors"
	"testing"

	"github.com/jacoelho/jsonwalk"
)

func TestCompile(t *testing.T) {
	t.Parallel()

	state := jsonwalk.CurrentState{
		Level:         3,
		LatestKey:     "key1",
		NthOccurrence: 2,
		Item:          jsonwalk.Item{Kind: jsonwalk.KindString, Text: "key1"},
		IsKey:         true,
	}

	tests := []struct {
		name string
		expr string
		want bool
	}{
		{name: "level_equals", expr: "level == 3", want: true},
		{name: "level_not_equals", expr: "level != 3", want: false},
		{name: "fractional_level", expr: "level == 3.5", want: false},
		{name: "key_equals", expr: `key == "key1"`, want: true},
		{name: "key_single_quotes", expr: "key == 'key1'", want: true},
		{name: "nth_equals", expr: "nth == 2", want: true},
		{name: "text_equals", expr: `text == "key1"`, want: true},
		{name: "is_key_true", expr: "is_key == true", want: true},
		{name: "bare_is_key", expr: "is_key", want: true},
		{name: "and", expr: `level == 3 && key == "key1"`, want: true},
		{name: "and_short_circuit", expr: `level == 9 && key == "key1"`, want: false},
		{name: "or", expr: `level == 9 || nth == 2`, want: true},
		{name: "not", expr: `!(key == "other")`, want: true},
		{name: "parens", expr: `(level == 3 || level == 4) && is_key`, want: true},
		{name: "text_not_null", expr: "text != null", want: true},
		{name: "key_equals_null", expr: "key == null", want: false},
		{name: "null_equals_null", expr: "null == null", want: true},
		{name: "type_mismatch_is_no_match", expr: `level == "three"`, want: false},
		{name: "non_boolean_result_is_no_match", expr: "level", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p, err := Compile(tt.expr)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := p.Match(state); got != tt.want {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCompile_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		expr string
	}{
		{name: "empty", expr: ""},
		{name: "unknown_identifier", expr: "depth == 2"},
		{name: "single_equals", expr: "level = 2"},
		{name: "dangling_operator", expr: "level =="},
		{name: "unterminated_string", expr: `key == "abc`},
		{name: "missing_paren", expr: "(level == 2"},
		{name: "trailing_garbage", expr: "level == 2 level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := Compile(tt.expr); !errors.Is(err, ErrInvalidPattern) {
				t.Fatalf("got %v, want ErrInvalidPattern", err)
			}
		})
	}
}

func TestCompile_PathIdentifier(t *testing.T) {
	t.Parallel()

	state := jsonwalk.CurrentState{
		Path: jsonwalk.Path{
			{Kind: jsonwalk.SegmentObject, Key: "a", Index: 1},
		},
	}

	p, err := Compile(`path == "#/{a,1}/"`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !p.Match(state) {
		t.Fatal("path did not match")
	}
}
