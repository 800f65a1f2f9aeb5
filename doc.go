// Package selector builds CSS complex-selector strings.
//
// A selector is started with one of the part functions and extended by
// chaining methods on the returned Builder:
//
//	s, err := selector.Element("a").Attr(`href$=".png"`).PseudoClass("focus").Stringify()
//	// s == `a[href$=".png"]:focus`
//
// Parts must follow the canonical order element, id, class, attribute,
// pseudo-class, pseudo-element, and element, id and pseudo-element may
// appear at most once. A call that breaks either rule yields a Builder
// carrying the error; the text is left as it was and later calls are
// no-ops.
//
// Builders never change once created, so a Builder may be extended in
// several directions or passed to Combine any number of times.
package selector
