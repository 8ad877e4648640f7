// Package pattern compiles boolean expressions over the walker cursor
// state into predicates. An expression combines the identifiers level,
// key, nth, text, is_key, and path with ==, !=, &&, ||, ! and
// parentheses:
//
//	level == 2 && nth == 0
//	key == "key1" || is_key == false
//	!(text == "null")
package pattern

import (
	"math"

	"github.com/jacoelho/jsonwalk"
)

// Compile parses the expression and returns a predicate evaluating it
// against cursor snapshots. Unknown identifiers are rejected here, not
// at match time.
func Compile(input string) (jsonwalk.Predicate, error) {
	root, err := parse(input)
	if err != nil {
		return nil, err
	}
	if err := checkIdentifiers(root); err != nil {
		return nil, err
	}
	return compiled{root: root}, nil
}

type compiled struct {
	root node
}

// Match evaluates the expression. Type mismatches, such as comparing a
// level against a string, make the snapshot a non-match rather than an
// error.
func (c compiled) Match(s jsonwalk.CurrentState) bool {
	value, err := evaluate(c.root, s)
	if err != nil {
		return false
	}
	result, ok := value.(bool)
	return ok && result
}

func checkIdentifiers(root node) error {
	switch current := root.(type) {
	case identifierNode:
		switch current.name {
		case "level", "key", "nth", "text", "is_key", "path":
			return nil
		default:
			return patternError("unknown identifier %q", current.name)
		}
	case unaryNode:
		return checkIdentifiers(current.right)
	case binaryNode:
		if err := checkIdentifiers(current.left); err != nil {
			return err
		}
		return checkIdentifiers(current.right)
	default:
		return nil
	}
}

func resolve(name string, s jsonwalk.CurrentState) any {
	switch name {
	case "level":
		return s.Level
	case "key":
		return s.LatestKey
	case "nth":
		return float64(s.NthOccurrence)
	case "text":
		return s.Item.Text
	case "is_key":
		return s.IsKey
	case "path":
		return s.Path.String()
	default:
		return nil
	}
}

func evaluate(root node, s jsonwalk.CurrentState) (any, error) {
	switch current := root.(type) {
	case literalNode:
		return current.value, nil
	case identifierNode:
		return resolve(current.name, s), nil
	case unaryNode:
		rightValue, err := evaluate(current.right, s)
		if err != nil {
			return nil, err
		}
		rightBool, err := mustBool(rightValue)
		if err != nil {
			return nil, err
		}
		return !rightBool, nil
	case binaryNode:
		switch current.op {
		case tokenAnd:
			leftValue, err := evaluate(current.left, s)
			if err != nil {
				return nil, err
			}
			leftBool, err := mustBool(leftValue)
			if err != nil {
				return nil, err
			}
			if !leftBool {
				return false, nil
			}
			rightValue, err := evaluate(current.right, s)
			if err != nil {
				return nil, err
			}
			return mustBool(rightValue)
		case tokenOr:
			leftValue, err := evaluate(current.left, s)
			if err != nil {
				return nil, err
			}
			leftBool, err := mustBool(leftValue)
			if err != nil {
				return nil, err
			}
			if leftBool {
				return true, nil
			}
			rightValue, err := evaluate(current.right, s)
			if err != nil {
				return nil, err
			}
			return mustBool(rightValue)
		case tokenEqual, tokenNotEqual:
			leftValue, err := evaluate(current.left, s)
			if err != nil {
				return nil, err
			}
			rightValue, err := evaluate(current.right, s)
			if err != nil {
				return nil, err
			}
			equal, err := compareValues(leftValue, rightValue)
			if err != nil {
				return nil, err
			}
			if current.op == tokenEqual {
				return equal, nil
			}
			return !equal, nil
		default:
			return nil, patternError("unsupported binary operator")
		}
	default:
		return nil, patternError("unsupported expression node")
	}
}

func mustBool(value any) (bool, error) {
	boolean, ok := value.(bool)
	if !ok {
		return false, patternError("expected boolean value, got %T", value)
	}
	return boolean, nil
}

func compareValues(left any, right any) (bool, error) {
	if left == nil || right == nil {
		return left == nil && right == nil, nil
	}

	switch l := left.(type) {
	case float64:
		r, ok := right.(float64)
		if !ok {
			return false, patternError("cannot compare %T and %T", left, right)
		}
		return nearlyEqual(l, r), nil
	case string:
		r, ok := right.(string)
		if !ok {
			return false, patternError("cannot compare %T and %T", left, right)
		}
		return l == r, nil
	case bool:
		r, ok := right.(bool)
		if !ok {
			return false, patternError("cannot compare %T and %T", left, right)
		}
		return l == r, nil
	default:
		return false, patternError("cannot compare %T and %T", left, right)
	}
}

func nearlyEqual(left float64, right float64) bool {
	const epsilon = 1e-12
	return math.Abs(left-right) <= epsilon
}
