package autodiff

// Tape is the reverse-topological schedule of a backward pass.
//
// Nodes are stored in depth-first post-order from the root: every node appears
// after all of its operand nodes, and the root is last. Walking the tape in
// reverse therefore visits each node only after every consumer of it that is
// reachable from the root.
type Tape struct {
	nodes []*Value
}

// NewTape records the DAG reachable from root. Each node appears exactly once,
// even when it is shared by several expressions.
func NewTape(root *Value) *Tape {
	t := &Tape{nodes: make([]*Value, 0, 16)}
	if root == nil {
		return t
	}

	// Iterative DFS using an explicit stack; expanded marks the second visit.
	type frame struct {
		node     *Value
		expanded bool
	}
	visited := make(map[*Value]bool)
	stack := []frame{{node: root}}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if top.expanded {
			t.nodes = append(t.nodes, top.node)
			continue
		}
		if visited[top.node] {
			continue
		}
		visited[top.node] = true

		stack = append(stack, frame{node: top.node, expanded: true})
		// Push right first so the left operand is finished first.
		for _, operand := range [...]Operand{top.node.right, top.node.left} {
			if child := operand.Node(); child != nil && !visited[child] {
				stack = append(stack, frame{node: child})
			}
		}
	}
	return t
}

// Nodes returns the recorded nodes in post-order (leaves first, root last).
func (t *Tape) Nodes() []*Value {
	return t.nodes
}

// Len returns the number of recorded nodes.
func (t *Tape) Len() int {
	return len(t.nodes)
}

// Topological returns every node reachable from root, each operand before
// the nodes that consume it and root last.
func Topological(root *Value) []*Value {
	return NewTape(root).Nodes()
}
