package selector

// Part is a kind of compound-selector fragment. The numeric value of a
// Part is its rank in the canonical order.
type Part int

const (
	partNone Part = iota
	PartElement
	PartID
	PartClass
	PartAttr
	PartPseudoClass
	PartPseudoElement
)

var partNames = [...]string{
	partNone:          "none",
	PartElement:       "element",
	PartID:            "id",
	PartClass:         "class",
	PartAttr:          "attribute",
	PartPseudoClass:   "pseudo-class",
	PartPseudoElement: "pseudo-element",
}

func (p Part) String() string {
	if p < 0 || int(p) >= len(partNames) {
		return "unknown"
	}
	return partNames[p]
}

// Rank returns the position of p in the canonical order, from 1 (element)
// to 6 (pseudo-element).
func (p Part) Rank() int {
	return int(p)
}

// unique reports whether p may occur at most once in a compound selector.
func (p Part) unique() bool {
	return p == PartElement || p == PartID || p == PartPseudoElement
}

// fragment renders value as selector text for p.
func (p Part) fragment(value string) string {
	switch p {
	case PartID:
		return "#" + value
	case PartClass:
		return "." + value
	case PartAttr:
		return "[" + value + "]"
	case PartPseudoClass:
		return ":" + value
	case PartPseudoElement:
		return "::" + value
	}
	return value
}
