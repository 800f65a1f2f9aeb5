package selector

// Combinator joins two selectors into a complex selector.
type Combinator string

const (
	Descendant Combinator = " "
	Child      Combinator = ">"
	Adjacent   Combinator = "+"
	Sibling    Combinator = "~"
)

// Valid reports whether c is one of the CSS combinators.
func (c Combinator) Valid() bool {
	switch c {
	case Descendant, Child, Adjacent, Sibling:
		return true
	}
	return false
}
