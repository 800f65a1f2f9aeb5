package selector

import "github.com/cockroachdb/errors"

// Sentinels for errors.Is. The typed errors below match them.
var (
	ErrOrderViolation    = errors.New("selector parts must be ordered: element, id, class, attribute, pseudo-class, pseudo-element")
	ErrDuplicatePart     = errors.New("element, id and pseudo-element must occur at most once")
	ErrInvalidCombinator = errors.New("combinator must be one of ' ', '>', '+', '~'")
)

// OrderError reports a part appended after a part of higher rank.
type OrderError struct {
	Part  Part // the rejected part
	After Part // highest part already applied
}

func (e *OrderError) Error() string {
	return ErrOrderViolation.Error()
}

func (e *OrderError) Is(target error) bool {
	return target == ErrOrderViolation
}

// DuplicateError reports a second element, id or pseudo-element.
type DuplicateError struct {
	Part Part
}

func (e *DuplicateError) Error() string {
	return ErrDuplicatePart.Error()
}

func (e *DuplicateError) Is(target error) bool {
	return target == ErrDuplicatePart
}

func orderViolation(p, after Part) error {
	return errors.WithStack(&OrderError{Part: p, After: after})
}

func duplicatePart(p Part) error {
	return errors.WithStack(&DuplicateError{Part: p})
}

func invalidCombinator(c Combinator) error {
	return errors.Wrapf(ErrInvalidCombinator, "combine with %q", string(c))
}
