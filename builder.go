package selector

import "go.uber.org/zap"

// A Builder holds a selector under construction. Builders are immutable:
// every method returns a new Builder and leaves the receiver as it was.
// The zero value is an empty selector ready for use.
type Builder struct {
	text string
	last Part // highest part applied so far

	hasElement       bool
	hasID            bool
	hasPseudoElement bool

	err error // first rejected call; later calls are no-ops
	log *zap.Logger
}

// Element appends a type selector. It must come first and at most once.
func (b *Builder) Element(name string) *Builder {
	return b.append(PartElement, name)
}

// ID appends #name. Only one id is allowed.
func (b *Builder) ID(name string) *Builder {
	return b.append(PartID, name)
}

// Class appends .name.
func (b *Builder) Class(name string) *Builder {
	return b.append(PartClass, name)
}

// Attr appends an attribute selector. expr is the text between the
// brackets, such as `href$=".png"`.
func (b *Builder) Attr(expr string) *Builder {
	return b.append(PartAttr, expr)
}

// PseudoClass appends :name.
func (b *Builder) PseudoClass(name string) *Builder {
	return b.append(PartPseudoClass, name)
}

// PseudoElement appends ::name. It must come last and at most once.
func (b *Builder) PseudoElement(name string) *Builder {
	return b.append(PartPseudoElement, name)
}

func (b *Builder) append(p Part, value string) *Builder {
	if b == nil {
		b = new(Builder)
	}
	if b.err != nil {
		return b
	}

	if p < b.last {
		return b.fail(orderViolation(p, b.last), zap.Stringer("part", p), zap.Stringer("after", b.last))
	}
	if p.unique() && b.has(p) {
		return b.fail(duplicatePart(p), zap.Stringer("part", p))
	}

	next := *b
	next.text += p.fragment(value)
	next.last = p
	next.mark(p)
	return &next
}

func (b *Builder) has(p Part) bool {
	switch p {
	case PartElement:
		return b.hasElement
	case PartID:
		return b.hasID
	case PartPseudoElement:
		return b.hasPseudoElement
	}
	return false
}

func (b *Builder) mark(p Part) {
	switch p {
	case PartElement:
		b.hasElement = true
	case PartID:
		b.hasID = true
	case PartPseudoElement:
		b.hasPseudoElement = true
	}
}

// fail returns a copy of b carrying err.
func (b *Builder) fail(err error, fields ...zap.Field) *Builder {
	b.logger().Debug("selector call rejected",
		append(fields, zap.String("selector", b.text), zap.Error(err))...)
	next := *b
	next.err = err
	return &next
}

func (b *Builder) logger() *zap.Logger {
	if b.log == nil {
		return zap.NewNop()
	}
	return b.log
}

// String returns the selector text accumulated so far. Text of a Builder
// carrying an error stops at the last accepted part.
func (b *Builder) String() string {
	if b == nil {
		return ""
	}
	return b.text
}

// Err returns the first rejected call's error, or nil.
func (b *Builder) Err() error {
	if b == nil {
		return nil
	}
	return b.err
}

// Stringify returns the selector text, or the error that stopped the
// build.
func (b *Builder) Stringify() (string, error) {
	if err := b.Err(); err != nil {
		return "", err
	}
	return b.String(), nil
}

// MustString is like Stringify, but panics instead of returning an error.
func (b *Builder) MustString() string {
	s, err := b.Stringify()
	if err != nil {
		panic(err)
	}
	return s
}

// MarshalText implements encoding.TextMarshaler, so a Builder encodes as
// its selector string.
func (b *Builder) MarshalText() ([]byte, error) {
	s, err := b.Stringify()
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}
