package parser

import "fmt"

// Op identifies a binary boolean operator.
type Op int

const (
	And Op = iota
	Xor
	Or
)

// Symbol returns the operator character used in expressions and display strings.
func (o Op) Symbol() string {
	switch o {
	case And:
		return "&"
	case Xor:
		return "^"
	case Or:
		return "|"
	default:
		return fmt.Sprintf("Op(%d)", int(o))
	}
}

func (o Op) String() string {
	switch o {
	case And:
		return "AND"
	case Xor:
		return "XOR"
	case Or:
		return "OR"
	default:
		return fmt.Sprintf("Op(%d)", int(o))
	}
}

// Apply combines two operand values. ok is false for an unknown operator.
func (o Op) Apply(left, right bool) (result bool, ok bool) {
	switch o {
	case And:
		return left && right, true
	case Xor:
		return left != right, true
	case Or:
		return left || right, true
	default:
		return false, false
	}
}

// Node is a node of the expression tree. Every non-leaf node exclusively owns
// its children; the tree is never modified after parsing.
type Node interface {
	// String renders the subtree with every binary node parenthesized.
	String() string
	node()
}

// VarNode references a variable by its declaration index.
type VarNode struct {
	Index int
	Name  string
	Pos   int
}

// NotNode negates its operand.
type NotNode struct {
	Operand Node
	Pos     int
}

// BinaryNode applies Op to Left and Right.
type BinaryNode struct {
	Op    Op
	Left  Node
	Right Node
	Pos   int // position of the operator token
}

func (*VarNode) node()    {}
func (*NotNode) node()    {}
func (*BinaryNode) node() {}

func (n *VarNode) String() string {
	return n.Name
}

func (n *NotNode) String() string {
	return "!" + nodeString(n.Operand)
}

func (n *BinaryNode) String() string {
	return "(" + nodeString(n.Left) + " " + n.Op.Symbol() + " " + nodeString(n.Right) + ")"
}

func nodeString(n Node) string {
	if n == nil {
		return "<nil>"
	}

	return n.String()
}

// Equal reports whether two trees have the same shape, operators and variable names.
// Positions and variable indexes are ignored so that a re-parsed subtree compares
// equal to the subtree it was rendered from.
func Equal(a, b Node) bool {
	switch x := a.(type) {
	case *VarNode:
		y, ok := b.(*VarNode)
		return ok && x.Name == y.Name
	case *NotNode:
		y, ok := b.(*NotNode)
		return ok && Equal(x.Operand, y.Operand)
	case *BinaryNode:
		y, ok := b.(*BinaryNode)
		return ok && x.Op == y.Op && Equal(x.Left, y.Left) && Equal(x.Right, y.Right)
	default:
		return a == nil && b == nil
	}
}

// CountOperators returns the number of non-leaf nodes in the tree.
func CountOperators(n Node) int {
	switch x := n.(type) {
	case *NotNode:
		return 1 + CountOperators(x.Operand)
	case *BinaryNode:
		return 1 + CountOperators(x.Left) + CountOperators(x.Right)
	default:
		return 0
	}
}
