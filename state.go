package jsonwalk

import (
	"fmt"
	"strings"
)

// SegmentKind tells whether a path segment crosses an object or an array.
type SegmentKind int

const (
	SegmentObject SegmentKind = iota
	SegmentArray
)

// Segment is one step of the route from the document root to the cursor.
// Key is the member key the container was entered through, and Index is
// the zero-based position of the child currently being traversed.
type Segment struct {
	Kind  SegmentKind
	Key   string
	Index int
}

// Path is the route from the root to the cursor, ordered outermost first.
// Its length always equals the integer part of the cursor level.
type Path []Segment

func (p Path) String() string {
	var b strings.Builder
	b.WriteString("#/")
	for _, s := range p {
		if s.Kind == SegmentObject {
			fmt.Fprintf(&b, "{%s,%d}/", s.Key, s.Index)
		} else {
			fmt.Fprintf(&b, "[%s,%d]/", s.Key, s.Index)
		}
	}
	return b.String()
}

// CurrentState is a snapshot of the cursor taken after an item is
// surfaced. Predicates match against it.
type CurrentState struct {
	// Level is the nesting depth of the cursor. Containers sit at
	// whole levels, member values half a level below their key.
	Level float64

	// LatestKey is the most recent object key on the active branch.
	LatestKey string

	// NthOccurrence counts earlier appearances of LatestKey in its
	// object, or holds the element index inside an array.
	NthOccurrence int

	// Path is the container route from the root to the cursor.
	Path Path

	// Item is the element the snapshot was taken at.
	Item Item

	// IsKey reports whether Item is an object key.
	IsKey bool
}
