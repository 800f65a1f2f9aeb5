package selector

import (
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// A Factory starts new builders with a fixed configuration.
type Factory struct {
	cfg config
}

// New returns a Factory configured by opts.
func New(opts ...Option) *Factory {
	return &Factory{cfg: newConfig(opts...)}
}

var defaultFactory = New()

func (f *Factory) empty() *Builder {
	return &Builder{log: f.cfg.log}
}

func (f *Factory) Element(name string) *Builder       { return f.empty().Element(name) }
func (f *Factory) ID(name string) *Builder            { return f.empty().ID(name) }
func (f *Factory) Class(name string) *Builder         { return f.empty().Class(name) }
func (f *Factory) Attr(expr string) *Builder          { return f.empty().Attr(expr) }
func (f *Factory) PseudoClass(name string) *Builder   { return f.empty().PseudoClass(name) }
func (f *Factory) PseudoElement(name string) *Builder { return f.empty().PseudoElement(name) }

// Combine returns a Builder with the text "left c right". The result
// counts as having an element part: further parts append after element
// rank, but Element itself is not rejected as a duplicate. Neither left
// nor right is changed.
func (f *Factory) Combine(left *Builder, c Combinator, right *Builder) *Builder {
	b := f.empty()
	if err := errors.CombineErrors(left.Err(), right.Err()); err != nil {
		b.err = err
		return b
	}
	if f.cfg.strict && !c.Valid() {
		return b.fail(invalidCombinator(c), zap.String("combinator", string(c)))
	}

	b.text = left.String() + " " + string(c) + " " + right.String()
	b.last = PartElement
	return b
}

// Group returns a Builder for the selector list "a, b, ...". It is seeded
// the same way as Combine.
func (f *Factory) Group(selectors ...*Builder) *Builder {
	b := f.empty()
	texts := make([]string, len(selectors))
	for i, sel := range selectors {
		b.err = errors.CombineErrors(b.err, sel.Err())
		texts[i] = sel.String()
	}
	if b.err != nil {
		return b
	}

	b.text = strings.Join(texts, ", ")
	if len(selectors) > 0 {
		b.last = PartElement
	}
	return b
}

// Element returns a Builder starting with a type selector.
func Element(name string) *Builder { return defaultFactory.Element(name) }

// ID returns a Builder starting with #name.
func ID(name string) *Builder { return defaultFactory.ID(name) }

// Class returns a Builder starting with .name.
func Class(name string) *Builder { return defaultFactory.Class(name) }

// Attr returns a Builder starting with [expr].
func Attr(expr string) *Builder { return defaultFactory.Attr(expr) }

// PseudoClass returns a Builder starting with :name.
func PseudoClass(name string) *Builder { return defaultFactory.PseudoClass(name) }

// PseudoElement returns a Builder starting with ::name.
func PseudoElement(name string) *Builder { return defaultFactory.PseudoElement(name) }

// Combine joins two selectors with a combinator. Any combinator string is
// accepted; use a Factory built WithStrictCombinators to restrict them.
func Combine(left *Builder, c Combinator, right *Builder) *Builder {
	return defaultFactory.Combine(left, c, right)
}

// Group joins selectors into a comma-separated selector list.
func Group(selectors ...*Builder) *Builder {
	return defaultFactory.Group(selectors...)
}
