package grammar

import (
	"errors"

	"github.com/ezrec/ic10/translate"
)

var f = translate.From

var (
	ErrInsufficientPairs = errors.New(f("insufficient pairs"))
	ErrUnexpected        = errors.New(f("unexpected input"))
	ErrRuleUnsupported   = errors.New(f("rule not parseable"))
)

// ErrRule reports input that did not match the expected rule.
type ErrRule struct {
	Rule Rule
	Span Span
	Text string
}

func (err *ErrRule) Error() string {
	return f("%d:%d expected %v, got '%v'", err.Span.Start, err.Span.End, err.Rule.String(), err.Text)
}

func (err *ErrRule) Unwrap() error {
	return ErrUnexpected
}
