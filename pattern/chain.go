package pattern

import (
	"fmt"
	"io"

	"github.com/goccy/go-yaml"

	"github.com/jacoelho/jsonwalk"
)

// Entry is one step of a YAML pattern chain.
type Entry struct {
	When string `yaml:"when"`
}

// ParseChain decodes a YAML sequence of chain entries and compiles each
// expression in order:
//
//	- when: level == 2 && nth == 0
//	- when: key == "key1" && level == 3
//	- when: key == "key4"
//
// The resulting slice feeds directly into Walker.NextItemByPattern.
func ParseChain(r io.Reader) ([]jsonwalk.Predicate, error) {
	decoder := yaml.NewDecoder(r)
	var entries []Entry

	if err := decoder.Decode(&entries); err != nil {
		return nil, fmt.Errorf("%w: failed to decode YAML: %v", ErrInvalidPattern, err)
	}
	if len(entries) == 0 {
		return nil, patternError("chain has no entries")
	}

	chain := make([]jsonwalk.Predicate, 0, len(entries))
	for i, entry := range entries {
		p, err := Compile(entry.When)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		chain = append(chain, p)
	}
	return chain, nil
}
