// Package jsonwalk navigates JSON streams without building a document
// tree. The walker reads tokens strictly forward, validating grammar as
// it goes, and exposes search operations that skip directly to keys,
// levels, or pattern matches. Memory use is bounded by nesting depth
// plus the configured recent-input window, never by document size.
package jsonwalk

import (
	"errors"
	"io"

	"github.com/jacoelho/jsonwalk/internal/scan"
	"github.com/jacoelho/jsonwalk/internal/stack"
	"github.com/jacoelho/jsonwalk/source"
)

// rootKey labels the implicit frame enclosing the document root.
const rootKey = "#"

// Walker is a forward-only cursor over a JSON stream. It is not safe
// for concurrent use; feed it from another goroutine with source.Queue
// instead of sharing the walker itself.
type Walker struct {
	sc     *scan.Scanner
	frames *stack.Stack[frame]
	base   float64
	err    error
}

type options struct {
	startLevel   float64
	recentSize   int
	foldLiterals bool
}

// Option configures a Walker.
type Option func(*options)

// WithStartLevel offsets every reported level by the given base. The
// default base is zero, placing the outermost container at level one.
func WithStartLevel(level float64) Option {
	return func(o *options) { o.startLevel = level }
}

// WithRecentBuffer keeps a sliding window of the last n consumed bytes,
// retrievable through RecentInput and appended to syntax errors.
func WithRecentBuffer(n int) Option {
	return func(o *options) { o.recentSize = n }
}

// WithCaseInsensitiveLiterals accepts spellings such as TRUE or Null
// for the JSON literals. The verbatim spelling is still surfaced.
func WithCaseInsensitiveLiterals() Option {
	return func(o *options) { o.foldLiterals = true }
}

// New returns a walker positioned before the first byte of src.
func New(src source.Source, opts ...Option) *Walker {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	w := &Walker{
		sc:     scan.NewScanner(src, o.recentSize, o.foldLiterals),
		frames: stack.NewWithCapacity[frame](16),
		base:   o.startLevel,
	}
	w.frames.Push(frame{kind: frameValue, key: rootKey, level: o.startLevel, state: valueStart})
	return w
}

// step consumes exactly one token and routes it to the top frame.
func (w *Walker) step() (event, error) {
	if w.err != nil {
		return event{}, w.err
	}
	tok, err := w.sc.Next()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return event{}, w.endOfInput()
		}
		w.err = err
		return event{}, err
	}
	if w.frames.Len() == 0 {
		w.err = w.sc.Errorf("unexpected %s after end of document", tok.Type)
		return event{}, w.err
	}
	ev, err := w.frames.PeekRef().state(w, tok)
	if err != nil {
		w.err = err
		return event{}, err
	}
	return ev, nil
}

// endOfInput distinguishes clean exhaustion from a truncated document.
// Anything beyond the untouched root frame means a container or value
// was left open.
func (w *Walker) endOfInput() error {
	if w.frames.Len() > 1 {
		w.err = w.sc.Errorf("unexpected end of input")
		return w.err
	}
	return ErrEndOfStream
}

// Level reports the nesting depth of the cursor, never below the start
// level. After the root value completes it reports the start level.
func (w *Walker) Level() float64 {
	if top := w.frames.PeekRef(); top != nil {
		return top.level
	}
	return w.base
}

// Path reports the container route from the root to the cursor.
func (w *Walker) Path() Path {
	segs := make(Path, 0, w.frames.Len())
	for i := range w.frames.Len() {
		switch f := w.frames.At(i); f.kind {
		case frameObject:
			segs = append(segs, Segment{Kind: SegmentObject, Key: f.key, Index: f.index})
		case frameArray:
			segs = append(segs, Segment{Kind: SegmentArray, Key: f.key, Index: f.index})
		}
	}
	return segs
}

// State snapshots the cursor coordinates.
func (w *Walker) State() CurrentState {
	s := CurrentState{Path: w.Path()}
	if top := w.frames.PeekRef(); top != nil {
		s.Level, s.LatestKey, s.NthOccurrence = top.level, top.key, top.nth
	}
	return s
}

// RecentInput returns the sliding window of recently consumed bytes.
// It is empty unless WithRecentBuffer was set.
func (w *Walker) RecentInput() string {
	return w.sc.Recent()
}

// Offset reports the stream position of the next unconsumed byte.
func (w *Walker) Offset() int {
	return w.sc.Offset()
}
