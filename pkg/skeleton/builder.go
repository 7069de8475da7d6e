package skeleton

import "github.com/yaklabco/skeldoc/pkg/source"

// openFrame is an in-progress node on the builder stack, tagged with the
// cumulative indentation depth of its declaration line and the byte offset
// where its source slice begins.
type openFrame struct {
	node  *Node
	depth int
	start int
}

// builder folds the ordered (line, delta, declaration) stream into a nested
// tree. It is an explicit push/fold stack machine: recursion depth never
// tracks input nesting.
type builder struct {
	loc      *source.Locator
	classify *Classifier
	stack    []openFrame
	depth    int
}

// BuildTree constructs the declaration tree from the indentation event
// stream. The returned root node is at line 0 with kind DeclModule; every
// other node is reachable as a descendant.
//
// A dedent event closes exactly as many nesting levels as its delta
// indicates, plus the previous sibling: for delta <= 0 the builder folds
// 1 - delta open nodes before pushing the new one. Lines that carry no
// declaration are absorbed into the open node's slice while the block
// continues or deepens (delta >= 0); after a dedent the remaining text
// belongs to an ancestor, so an anonymous node is pushed instead.
func BuildTree(loc *source.Locator, events []IndentEvent, classify *Classifier) *Node {
	if classify == nil {
		classify = NewClassifier()
	}
	b := &builder{
		loc:      loc,
		classify: classify,
		stack: []openFrame{{
			node:  &Node{Lineno: 0, Kind: DeclModule},
			depth: -1,
		}},
	}

	for _, ev := range events {
		b.step(ev)
	}
	return b.finish()
}

func (b *builder) step(ev IndentEvent) {
	b.depth += ev.Delta

	decl := b.classify.Classify(b.loc.Line(ev.Line))
	if decl.Kind == DeclNone && ev.Delta >= 0 {
		// An anonymous line extends the open node's body.
		return
	}

	// Seal the currently open node: its source runs from its own
	// declaration line up to this line.
	lineStart := b.loc.LineStart(ev.Line)
	b.seal(lineStart)

	// Close every level at or below the new depth.
	for len(b.stack) > 1 && b.top().depth >= b.depth {
		b.fold()
	}

	b.stack = append(b.stack, openFrame{
		node:  &Node{Lineno: ev.Line, Name: decl.Name, Kind: decl.Kind},
		depth: b.depth,
		start: lineStart,
	})
}

// finish assigns the trailing slice to the last open node, folds everything
// up to the root, and returns it.
func (b *builder) finish() *Node {
	b.seal(len(b.loc.Text()))
	for len(b.stack) > 1 {
		b.fold()
	}
	return b.stack[0].node
}

func (b *builder) top() *openFrame {
	return &b.stack[len(b.stack)-1]
}

// seal assigns the open node's verbatim source slice, ending at end.
func (b *builder) seal(end int) {
	top := b.top()
	top.node.Source = b.loc.Text()[top.start:end]
}

// fold pops the open node and appends it as the last child of the node now
// on top of the stack.
func (b *builder) fold() {
	popped := b.top().node
	b.stack = b.stack[:len(b.stack)-1]
	parent := b.top().node
	parent.Children = append(parent.Children, popped)
}
