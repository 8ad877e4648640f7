package jsonwalk

// Predicate decides whether a cursor snapshot satisfies a condition.
type Predicate interface {
	Match(state CurrentState) bool
}

// LevelIs matches snapshots at exactly the given level.
type LevelIs float64

func (p LevelIs) Match(s CurrentState) bool { return s.Level == float64(p) }

// KeyIs matches snapshots whose latest key equals the given text.
type KeyIs string

func (p KeyIs) Match(s CurrentState) bool { return s.LatestKey == string(p) }

// NthIs matches the given occurrence count of the latest key, or the
// given element index inside an array.
type NthIs int

func (p NthIs) Match(s CurrentState) bool { return s.NthOccurrence == int(p) }

// TextIs matches items whose verbatim text equals the given string.
type TextIs string

func (p TextIs) Match(s CurrentState) bool { return s.Item.Text == string(p) }

// IsKey matches object keys when true, everything else when false.
type IsKey bool

func (p IsKey) Match(s CurrentState) bool { return s.IsKey == bool(p) }

// And matches when every predicate in the list matches.
type And []Predicate

func (p And) Match(s CurrentState) bool {
	for _, q := range p {
		if !q.Match(s) {
			return false
		}
	}
	return true
}

// Or matches when at least one predicate in the list matches.
type Or []Predicate

func (p Or) Match(s CurrentState) bool {
	for _, q := range p {
		if q.Match(s) {
			return true
		}
	}
	return false
}

// Not inverts a predicate.
type Not struct {
	P Predicate
}

func (p Not) Match(s CurrentState) bool { return !p.P.Match(s) }

// MatchFunc adapts a function to the Predicate interface.
type MatchFunc func(CurrentState) bool

func (f MatchFunc) Match(s CurrentState) bool { return f(s) }

// NextItemByPattern advances through the stream matching the chain of
// predicates in order. Each item, markers included, is evaluated against
// the first unsatisfied predicate; on a match the chain moves to the
// next one. The item satisfying the final predicate is returned, with
// the cursor parked right after it. A chain position never retreats,
// even when later predicates fail.
func (w *Walker) NextItemByPattern(chain ...Predicate) (Item, error) {
	if w.err != nil {
		return Item{}, w.err
	}
	if len(chain) == 0 {
		return Item{}, ErrEmptyChain
	}
	idx := 0
	for {
		ev, err := w.step()
		if err != nil {
			return Item{}, err
		}
		if ev.class == classNone {
			continue
		}
		st := CurrentState{
			Level:         ev.level,
			LatestKey:     ev.key,
			NthOccurrence: ev.nth,
			Path:          w.Path(),
			Item:          ev.item,
			IsKey:         ev.class == classKey,
		}
		if chain[idx].Match(st) {
			idx++
			if idx == len(chain) {
				return ev.item, nil
			}
		}
	}
}
