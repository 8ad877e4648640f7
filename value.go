package jsonwalk

import "strings"

// ValueContent consumes the value ahead of the cursor and returns its
// verbatim text: scalars keep their input spelling, strings keep their
// quotes and escape sequences, containers come back whole. Right after
// a key the member value is read; inside an array the next element is
// read; on a fresh walker the entire document is returned. At the end
// of an array it returns ErrEndOfStream without consuming the close.
func (w *Walker) ValueContent() (string, error) {
	if w.err != nil {
		return "", w.err
	}
	if err := w.toValueStart(); err != nil {
		return "", err
	}

	depth := w.frames.Len()
	w.sc.StartCapture()
	for {
		ev, err := w.step()
		if err != nil {
			w.sc.EndCapture()
			return "", err
		}
		n := w.frames.Len()
		if n < depth {
			break
		}
		if n == depth && ev.class == classValue {
			break
		}
		if n == depth && (ev.item.Kind == KindObjectClose || ev.item.Kind == KindArrayClose) {
			break
		}
	}
	return strings.TrimSpace(string(w.sc.EndCapture())), nil
}

// toValueStart steps the cursor forward until the next byte begins a
// value: past a pending key and colon inside an object, past the
// element separator inside an array.
func (w *Walker) toValueStart() error {
	for {
		top := w.frames.PeekRef()
		if top == nil {
			return ErrEndOfStream
		}
		switch top.kind {
		case frameValue:
			return nil
		case frameArray:
			b, ok := w.sc.Peek()
			if !ok || b == ',' {
				if _, err := w.step(); err != nil {
					return err
				}
				continue
			}
			if b == ']' {
				return ErrEndOfStream
			}
			return nil
		default:
			if _, err := w.step(); err != nil {
				return err
			}
		}
	}
}
