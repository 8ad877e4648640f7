package jsonwalk

import (
	"errors"

	"github.com/jacoelho/jsonwalk/internal/scan"
)

var (
	// ErrSyntax wraps every grammar violation and structural mismatch.
	// Such failures are fatal: the walker refuses further navigation.
	ErrSyntax = scan.ErrSyntax

	// ErrEndOfStream reports that the stream finished before a search
	// condition was met. Like io.EOF it marks absence, not failure.
	ErrEndOfStream = errors.New("end of stream")

	// ErrEmptyChain reports a pattern search without predicates.
	ErrEmptyChain = errors.New("pattern chain is empty")
)
