package autodiff

import (
	"log/slog"

	"github.com/pkg/errors"

	"github.com/born-ml/vecgrad/internal/autodiff/ops"
	"github.com/born-ml/vecgrad/internal/tensor"
)

// Policy selects how a node reached through several chains gets its gradient.
type Policy int

const (
	// Accumulate sums the contributions of every chain. Each node's local rule
	// runs once, after all of its consumers have contributed. This is the default.
	Accumulate Policy = iota

	// Overwrite recurses into operands without memoization; when a node is
	// reached by several chains, the gradient from the last chain walked wins.
	Overwrite
)

// String returns the policy name.
func (p Policy) String() string {
	switch p {
	case Accumulate:
		return "accumulate"
	case Overwrite:
		return "overwrite"
	default:
		return "unknown"
	}
}

// ParsePolicy converts a policy name back into a Policy.
func ParsePolicy(name string) (Policy, error) {
	switch name {
	case "accumulate", "":
		return Accumulate, nil
	case "overwrite":
		return Overwrite, nil
	default:
		return 0, errors.Errorf("unknown gradient policy %q (want accumulate or overwrite)", name)
	}
}

type backwardConfig struct {
	seed   any
	policy Policy
}

// BackwardOption configures a backward pass.
type BackwardOption func(*backwardConfig)

// WithSeed sets the upstream gradient supplied to the root (default: integer 1).
// The seed must be 0-d or have the root's shape.
func WithSeed(seed any) BackwardOption {
	return func(c *backwardConfig) {
		c.seed = seed
	}
}

// WithPolicy selects the gradient accumulation policy (default: Accumulate).
func WithPolicy(p Policy) BackwardOption {
	return func(c *backwardConfig) {
		c.policy = p
	}
}

// Backward runs a backward pass rooted at v using v's engine.
func (v *Value) Backward(opts ...BackwardOption) error {
	if v == nil {
		return errors.Wrap(ErrOperandKind, "backward: nil value")
	}
	return v.engine.Backward(v, opts...)
}

// Backward computes the gradient of root with respect to every node it depends on.
//
// Algorithm (Accumulate):
//  1. Record the DAG under root on a tape (post-order, root last)
//  2. Seed the root's gradient
//  3. Walk the tape in reverse; apply each node's local rule to its accumulated gradient
//  4. Sum contributions when the same node is an operand of several consumers
//
// Gradients are collected in a side table and written onto the nodes only when
// the whole pass succeeds; on error no node's gradient changes.
func (e *Engine) Backward(root *Value, opts ...BackwardOption) error {
	if root == nil {
		return errors.Wrap(ErrOperandKind, "backward: nil root")
	}

	cfg := backwardConfig{seed: 1, policy: Accumulate}
	for _, opt := range opts {
		opt(&cfg)
	}

	seed, err := tensor.FromNested(cfg.seed)
	if err != nil {
		return errors.Wrap(err, "backward: seed")
	}
	if !seed.IsScalar() && !seed.Shape().Equal(root.data.Shape()) {
		return errors.Wrapf(ErrShapeMismatch, "backward: seed shape %v vs root shape %v",
			seed.Shape(), root.data.Shape())
	}

	var grads map[*Value]*tensor.Array
	switch cfg.policy {
	case Accumulate:
		grads, err = e.accumulate(root, seed)
	case Overwrite:
		grads, err = e.overwrite(root, seed)
	default:
		return errors.Errorf("backward: unknown policy %d", cfg.policy)
	}
	if err != nil {
		return err
	}

	for node, grad := range grads {
		node.grad = grad
	}
	return nil
}

// accumulate walks the tape in reverse, summing contributions per node.
func (e *Engine) accumulate(root *Value, seed *tensor.Array) (map[*Value]*tensor.Array, error) {
	tape := NewTape(root)
	e.logger.Debug("backward start",
		slog.String("policy", Accumulate.String()),
		slog.Int("nodes", tape.Len()),
		slog.String("root", root.label))

	grads := make(map[*Value]*tensor.Array, tape.Len())
	grads[root] = seed

	nodes := tape.Nodes()
	for i := len(nodes) - 1; i >= 0; i-- {
		node := nodes[i]
		if node.IsLeaf() {
			continue
		}
		grad, hasGrad := grads[node]
		if !hasGrad {
			continue
		}
		inputGrads, err := e.localGrads(node, grad)
		if err != nil {
			return nil, err
		}
		if err := e.accumulateGrads(node, inputGrads, grads); err != nil {
			return nil, err
		}
	}
	return grads, nil
}

// accumulateGrads adds each operand's contribution to its running gradient.
func (e *Engine) accumulateGrads(node *Value, inputGrads ops.Grads, grads map[*Value]*tensor.Array) error {
	contributions := [...]struct {
		operand Operand
		grad    *tensor.Array
	}{
		{node.left, inputGrads.Left},
		{node.right, inputGrads.Right},
	}
	for _, c := range contributions {
		target := c.operand.Node()
		if target == nil || c.grad == nil {
			continue
		}
		existing, ok := grads[target]
		if !ok {
			grads[target] = c.grad
			continue
		}
		sum, err := e.backend.Add(existing, c.grad)
		if err != nil {
			return errors.Wrap(err, "backward: accumulate")
		}
		grads[target] = sum
	}
	return nil
}

// overwrite recurses from root without memoization. A node reached by several
// chains is visited once per chain and keeps the gradient of the last visit.
func (e *Engine) overwrite(root *Value, seed *tensor.Array) (map[*Value]*tensor.Array, error) {
	e.logger.Debug("backward start",
		slog.String("policy", Overwrite.String()),
		slog.String("root", root.label))

	grads := make(map[*Value]*tensor.Array)
	var visit func(node *Value, grad *tensor.Array) error
	visit = func(node *Value, grad *tensor.Array) error {
		grads[node] = grad
		if node.IsLeaf() {
			return nil
		}
		inputGrads, err := e.localGrads(node, grad)
		if err != nil {
			return err
		}
		if left := node.left.Node(); left != nil && inputGrads.Left != nil {
			if err := visit(left, inputGrads.Left); err != nil {
				return err
			}
		}
		if right := node.right.Node(); right != nil && inputGrads.Right != nil {
			if err := visit(right, inputGrads.Right); err != nil {
				return err
			}
		}
		return nil
	}
	if err := visit(root, seed); err != nil {
		return nil, err
	}
	return grads, nil
}

// localGrads applies the node's operator rule to its upstream gradient.
func (e *Engine) localGrads(node *Value, grad *tensor.Array) (ops.Grads, error) {
	operation, ok := ops.Lookup(node.op)
	if !ok {
		return ops.Grads{}, errors.Wrapf(ErrUnsupportedOperandKind, "backward: unknown operator %q", node.op)
	}
	e.logger.Debug("propagate",
		slog.String("op", string(node.op)),
		slog.String("label", node.label),
		slog.String("left", node.left.Kind().String()),
		slog.String("right", node.right.Kind().String()))

	grads, err := operation.Backward(grad, node.left.input(), node.right.input(), e.backend)
	if err != nil {
		return ops.Grads{}, errors.Wrap(err, "backward")
	}
	return grads, nil
}
