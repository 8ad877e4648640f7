package source

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func drain(t *testing.T, src Source) string {
	t.Helper()

	var b strings.Builder
	for {
		c, err := src.Next()
		if errors.Is(err, io.EOF) {
			return b.String()
		}
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		b.WriteByte(c)
	}
}

func TestBuffer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  Source
		want string
	}{
		{name: "bytes", src: Bytes([]byte(`{"a":1}`)), want: `{"a":1}`},
		{name: "string", src: String("[1,2]"), want: "[1,2]"},
		{name: "empty", src: String(""), want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := drain(t, tt.src); got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}

			// exhaustion is permanent
			if _, err := tt.src.Next(); !errors.Is(err, io.EOF) {
				t.Fatalf("got %v, want io.EOF", err)
			}
		})
	}
}

func TestReader(t *testing.T) {
	t.Parallel()

	src := NewReader(strings.NewReader(`{"key": [true, null]}`))
	if got, want := drain(t, src), `{"key": [true, null]}`; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
