package scan

// pendingOpen tracks an open bracket awaiting its close.
type pendingOpen struct {
	close Kind // expected closing kind
	idx   int  // index of the open atom in the output stream
}

// MatchBrackets merges matched open/close bracket pairs in a scanned atom
// stream into single spanning Matched* atoms, using last-in-first-out
// matching. Atoms between a merged pair are subsumed by the spanning atom:
// only the outer span matters for line suppression.
//
// A close atom that does not match the innermost pending open — or arrives
// with none pending — is passed through unmodified. Malformed nesting
// degrades the result, it never fails.
func MatchBrackets(atoms []Atom) []Atom {
	out := make([]Atom, 0, len(atoms))
	var stack []pendingOpen

	for _, a := range atoms {
		switch {
		case a.Kind.IsOpen():
			out = append(out, a)
			stack = append(stack, pendingOpen{close: closeFor(a.Kind), idx: len(out) - 1})

		case a.Kind.IsClose():
			if n := len(stack); n > 0 && stack[n-1].close == a.Kind {
				p := stack[n-1]
				stack = stack[:n-1]
				merged := Atom{
					Kind:  matchedFor(a.Kind),
					Start: out[p.idx].Start,
					End:   a.End,
				}
				out = append(out[:p.idx], merged)
			} else {
				out = append(out, a)
			}

		default:
			out = append(out, a)
		}
	}

	return out
}

func closeFor(open Kind) Kind {
	switch open {
	case AtomOpenParen:
		return AtomCloseParen
	case AtomOpenBracket:
		return AtomCloseBracket
	default:
		return AtomCloseBrace
	}
}

func matchedFor(close Kind) Kind {
	switch close {
	case AtomCloseParen:
		return AtomMatchedParen
	case AtomCloseBracket:
		return AtomMatchedBracket
	default:
		return AtomMatchedBrace
	}
}
