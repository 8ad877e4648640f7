package jsonwalk

import (
	"errors"
	"math"
)

// NextItem advances to the next item in document order: keys, scalar
// values, and container markers all count. It returns ErrEndOfStream
// once the document is exhausted.
func (w *Walker) NextItem() (Item, error) {
	for {
		ev, err := w.step()
		if err != nil {
			return Item{}, err
		}
		if ev.class != classNone {
			return ev.item, nil
		}
	}
}

// NextKey advances to the next object key anywhere ahead of the cursor,
// regardless of nesting.
func (w *Walker) NextKey() (Item, error) {
	for {
		ev, err := w.step()
		if err != nil {
			return Item{}, err
		}
		if ev.class == classKey {
			return ev.item, nil
		}
	}
}

// NextKeyByName advances to the next key whose text equals name.
// The search only moves forward; occurrences behind the cursor are
// never revisited.
func (w *Walker) NextKeyByName(name string) (Item, error) {
	for {
		item, err := w.NextKey()
		if err != nil {
			return Item{}, err
		}
		if item.Text == name {
			return item, nil
		}
	}
}

// NextSiblingKey skips the remainder of the current member value and
// advances to the next key of the enclosing object. ErrEndOfStream
// means the object had no further members.
func (w *Walker) NextSiblingKey() (Item, error) {
	return w.relativeKey(func(level float64) float64 { return math.Floor(level) })
}

// NextChildKey advances to the first key one container deeper than the
// cursor. ErrEndOfStream means the value at hand has no such key.
func (w *Walker) NextChildKey() (Item, error) {
	return w.relativeKey(func(level float64) float64 { return math.Floor(level + 1) })
}

// NextParentKey closes out the current container and advances to the
// next key of the container enclosing it.
func (w *Walker) NextParentKey() (Item, error) {
	return w.relativeKey(func(level float64) float64 { return math.Ceil(level - 1) })
}

func (w *Walker) relativeKey(target func(float64) float64) (Item, error) {
	if w.err != nil {
		return Item{}, w.err
	}
	top := w.frames.PeekRef()
	if top == nil {
		return Item{}, ErrEndOfStream
	}
	reached, more, err := w.seekTo(target(top.level))
	if err != nil {
		return Item{}, err
	}
	if !reached || !more {
		return Item{}, ErrEndOfStream
	}
	return w.NextKey()
}

// seekTo advances until the cursor lands exactly on the target level.
// more reports whether the container at that level still has content
// ahead of the cursor.
func (w *Walker) seekTo(target float64) (reached, more bool, err error) {
	if target < w.base+1 {
		return false, false, nil
	}
	for {
		if _, err := w.step(); err != nil {
			if errors.Is(err, ErrEndOfStream) {
				return false, false, nil
			}
			return false, false, err
		}
		if top := w.frames.PeekRef(); top != nil && top.level == target {
			b, ok := w.sc.Peek()
			return true, ok && b != '}' && b != ']', nil
		}
	}
}

// SeekLevelOffset moves the cursor until its level differs from the
// current one by exactly offset, and reports the state there. Negative
// offsets climb out of containers, positive ones dive in, and zero
// finds the next stop at the same depth.
func (w *Walker) SeekLevelOffset(offset float64) (CurrentState, error) {
	if w.err != nil {
		return CurrentState{}, w.err
	}
	top := w.frames.PeekRef()
	if top == nil {
		return CurrentState{}, ErrEndOfStream
	}
	reached, _, err := w.seekTo(top.level + offset)
	if err != nil {
		return CurrentState{}, err
	}
	if !reached {
		return CurrentState{}, ErrEndOfStream
	}
	return w.State(), nil
}

// NextItemAtLevel advances to the next key or scalar value observed at
// exactly the given level. Container markers do not count.
func (w *Walker) NextItemAtLevel(level float64) (Item, error) {
	for {
		ev, err := w.step()
		if err != nil {
			return Item{}, err
		}
		if ev.class != classKey && ev.class != classValue {
			continue
		}
		if top := w.frames.PeekRef(); top != nil && top.level == level {
			return ev.item, nil
		}
	}
}

// Skip consumes the next n tokens, separators included, without
// evaluating them.
func (w *Walker) Skip(n int) error {
	for range n {
		if _, err := w.step(); err != nil {
			return err
		}
	}
	return nil
}
