// Package skeleton reconstructs the declaration tree of an
// indentation-delimited source file from whitespace alone. It consumes the
// atom stream produced by pkg/scan and folds per-line indentation deltas
// into a nested tree of declaration nodes, each holding a verbatim slice of
// the original text.
package skeleton

// Node is a declaration in the extracted structure tree.
//
// Source is a read-only view into the original text buffer: it runs from the
// node's own declaration line up to the line of the next declaration at the
// same or shallower depth. Concatenating every node's Source in pre-order
// reproduces the input byte for byte.
type Node struct {
	// Lineno is the 0-based line of the declaration.
	Lineno int

	// Name is the declared identifier, or "" for anonymous nodes.
	Name string

	// Kind classifies the declaration. DeclModule for the root,
	// DeclNone for anonymous statement nodes.
	Kind DeclKind

	// Source is the node's verbatim source slice.
	Source string

	// Children are the node's nested declarations, in document order.
	Children []*Node
}

// HasChildren reports whether the node has any children.
func (n *Node) HasChildren() bool {
	return len(n.Children) > 0
}

// Depth returns the nesting depth of target below n, or -1 when target is
// not in n's subtree. n itself is at depth 0.
func (n *Node) Depth(target *Node) int {
	if n == target {
		return 0
	}
	for _, child := range n.Children {
		if d := child.Depth(target); d >= 0 {
			return d + 1
		}
	}
	return -1
}

// Flatten returns the whole subtree in pre-order, including n.
func (n *Node) Flatten() []*Node {
	var out []*Node
	//nolint:errcheck // the callback never fails
	Walk(n, func(node *Node) error {
		out = append(out, node)
		return nil
	})
	return out
}
