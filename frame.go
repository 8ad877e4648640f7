package jsonwalk

import (
	"math"

	"github.com/jacoelho/jsonwalk/internal/scan"
)

type frameKind int

const (
	frameValue frameKind = iota
	frameObject
	frameArray
)

// stateFn consumes one token on behalf of the frame on top of the stack
// and reports the event it produced, if any.
type stateFn func(w *Walker, tok scan.Token) (event, error)

// frame is one level of the traversal context. Object and array frames
// track the container being walked, value frames hold the pending member
// or root value. A value frame sits half a level below its key.
type frame struct {
	kind  frameKind
	key   string
	level float64
	nth   int            // key occurrence within the object, or array element index
	index int            // zero-based child position, advanced on each separator
	occs  map[string]int // per-object key occurrence counts
	state stateFn
}

type eventClass int

const (
	classNone eventClass = iota
	classKey
	classValue
	classMarker
)

// event is the outcome of a single step. Separator tokens produce a
// classNone event; everything else surfaces an item together with the
// cursor coordinates it was observed at.
type event struct {
	class eventClass
	item  Item
	level float64
	key   string
	nth   int
}

func scalarItem(tok scan.Token) Item {
	switch tok.Type {
	case scan.TypeString:
		return Item{Kind: KindString, Text: tok.Text}
	case scan.TypeNumber:
		return Item{Kind: KindNumber, Text: tok.Text}
	case scan.TypeTrue, scan.TypeFalse:
		return Item{Kind: KindBool, Text: tok.Text}
	default:
		return Item{Kind: KindNull, Text: tok.Text}
	}
}

// valueStart expects the value the top frame is waiting for. Scalars
// complete the frame immediately, containers stack a new frame on top
// and leave the value frame suspended underneath.
func valueStart(w *Walker, tok scan.Token) (event, error) {
	top := w.frames.PeekRef()
	switch tok.Type {
	case scan.TypeObjectOpen:
		level := math.Floor(top.level + 1)
		w.frames.Push(frame{kind: frameObject, level: level, state: objectStart})
		return w.markerEvent(Item{Kind: KindObjectOpen, Text: tok.Text}), nil
	case scan.TypeArrayOpen:
		level := math.Floor(top.level + 1)
		key := top.key
		w.frames.Push(frame{kind: frameArray, key: key, level: level, state: arrayStart})
		return w.markerEvent(Item{Kind: KindArrayOpen, Text: tok.Text}), nil
	case scan.TypeString, scan.TypeNumber, scan.TypeTrue, scan.TypeFalse, scan.TypeNull:
		f, _ := w.frames.Pop()
		return event{class: classValue, item: scalarItem(tok), level: f.level, key: f.key, nth: f.nth}, nil
	default:
		return event{}, w.sc.Errorf("unexpected %s, expected a value", tok.Type)
	}
}

func objectStart(w *Walker, tok scan.Token) (event, error) {
	return objectKey(w, tok, true)
}

func objectAfterComma(w *Walker, tok scan.Token) (event, error) {
	return objectKey(w, tok, false)
}

func objectKey(w *Walker, tok scan.Token, allowClose bool) (event, error) {
	top := w.frames.PeekRef()
	switch tok.Type {
	case scan.TypeString:
		if top.occs == nil {
			top.occs = make(map[string]int)
		}
		top.key = tok.Text
		top.nth = top.occs[tok.Text]
		top.occs[tok.Text]++
		top.state = objectAfterKey
		return event{
			class: classKey,
			item:  Item{Kind: KindString, Text: tok.Text},
			level: top.level,
			key:   top.key,
			nth:   top.nth,
		}, nil
	case scan.TypeObjectClose:
		if !allowClose {
			return event{}, w.sc.Errorf("unexpected '}' after ','")
		}
		return w.closeContainer(Item{Kind: KindObjectClose, Text: tok.Text})
	default:
		return event{}, w.sc.Errorf("unexpected %s, expected object key", tok.Type)
	}
}

func objectAfterKey(w *Walker, tok scan.Token) (event, error) {
	if tok.Type != scan.TypeColon {
		return event{}, w.sc.Errorf("unexpected %s, expected ':' after object key", tok.Type)
	}
	top := w.frames.PeekRef()
	key, nth, level := top.key, top.nth, top.level
	top.state = objectAfterValue
	w.frames.Push(frame{kind: frameValue, key: key, nth: nth, level: level + 0.5, state: valueStart})
	return event{}, nil
}

func objectAfterValue(w *Walker, tok scan.Token) (event, error) {
	top := w.frames.PeekRef()
	switch tok.Type {
	case scan.TypeComma:
		top.state = objectAfterComma
		top.index++
		return event{}, nil
	case scan.TypeObjectClose:
		return w.closeContainer(Item{Kind: KindObjectClose, Text: tok.Text})
	default:
		return event{}, w.sc.Errorf("unexpected %s, expected ',' or '}'", tok.Type)
	}
}

func arrayStart(w *Walker, tok scan.Token) (event, error) {
	return arrayElement(w, tok, true)
}

func arrayAfterComma(w *Walker, tok scan.Token) (event, error) {
	return arrayElement(w, tok, false)
}

func arrayElement(w *Walker, tok scan.Token, allowClose bool) (event, error) {
	top := w.frames.PeekRef()
	switch tok.Type {
	case scan.TypeString, scan.TypeNumber, scan.TypeTrue, scan.TypeFalse, scan.TypeNull:
		top.state = arrayAfterValue
		return event{class: classValue, item: scalarItem(tok), level: top.level, key: top.key, nth: top.nth}, nil
	case scan.TypeObjectOpen:
		level := math.Floor(top.level + 1)
		top.state = arrayAfterValue
		w.frames.Push(frame{kind: frameObject, level: level, state: objectStart})
		return w.markerEvent(Item{Kind: KindObjectOpen, Text: tok.Text}), nil
	case scan.TypeArrayOpen:
		level := math.Floor(top.level + 1)
		key := top.key
		top.state = arrayAfterValue
		w.frames.Push(frame{kind: frameArray, key: key, level: level, state: arrayStart})
		return w.markerEvent(Item{Kind: KindArrayOpen, Text: tok.Text}), nil
	case scan.TypeArrayClose:
		if !allowClose {
			return event{}, w.sc.Errorf("unexpected ']' after ','")
		}
		return w.closeContainer(Item{Kind: KindArrayClose, Text: tok.Text})
	default:
		return event{}, w.sc.Errorf("unexpected %s, expected array element", tok.Type)
	}
}

func arrayAfterValue(w *Walker, tok scan.Token) (event, error) {
	top := w.frames.PeekRef()
	switch tok.Type {
	case scan.TypeComma:
		top.state = arrayAfterComma
		top.index++
		top.nth = top.index
		return event{}, nil
	case scan.TypeArrayClose:
		return w.closeContainer(Item{Kind: KindArrayClose, Text: tok.Text})
	default:
		return event{}, w.sc.Errorf("unexpected %s, expected ',' or ']'", tok.Type)
	}
}

// markerEvent reports an open marker at the coordinates of the container
// frame that was just pushed.
func (w *Walker) markerEvent(it Item) event {
	top := w.frames.PeekRef()
	return event{class: classMarker, item: it, level: top.level, key: top.key, nth: top.nth}
}

// closeContainer pops the finished container. When the container was a
// member or root value, the suspended value frame underneath completes
// with it and is popped in the same step.
func (w *Walker) closeContainer(it Item) (event, error) {
	w.frames.Pop()
	if parent := w.frames.PeekRef(); parent != nil && parent.kind == frameValue {
		w.frames.Pop()
	}
	ev := event{class: classMarker, item: it}
	if top := w.frames.PeekRef(); top != nil {
		ev.level, ev.key, ev.nth = top.level, top.key, top.nth
	}
	return ev, nil
}
