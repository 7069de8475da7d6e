package skeleton

// WalkFunc is the callback signature for Walk.
// Return a non-nil error to stop the walk.
type WalkFunc func(n *Node) error

// Walk performs a pre-order traversal of the tree starting at root.
func Walk(root *Node, walkFunc WalkFunc) error {
	if root == nil {
		return nil
	}
	if err := walkFunc(root); err != nil {
		return err
	}
	for _, child := range root.Children {
		if err := Walk(child, walkFunc); err != nil {
			return err
		}
	}
	return nil
}

// FindAll returns all nodes in the tree matching the predicate.
func FindAll(root *Node, predicate func(n *Node) bool) []*Node {
	var result []*Node
	//nolint:errcheck // the callback never fails
	Walk(root, func(node *Node) error {
		if predicate(node) {
			result = append(result, node)
		}
		return nil
	})
	return result
}

// FindByKind returns all nodes of the specified declaration kind.
func FindByKind(root *Node, kind DeclKind) []*Node {
	return FindAll(root, func(n *Node) bool {
		return n.Kind == kind
	})
}

// FindByName returns the first node with the given name, or nil.
func FindByName(root *Node, name string) *Node {
	var found *Node
	//nolint:errcheck // errStopWalk is expected and intentionally ignored
	Walk(root, func(node *Node) error {
		if node.Name == name {
			found = node
			return errStopWalk
		}
		return nil
	})
	return found
}

// errStopWalk is a sentinel used to stop walking early.
var errStopWalk = &stopWalkError{}

type stopWalkError struct{}

func (e *stopWalkError) Error() string {
	return "stop walk"
}
