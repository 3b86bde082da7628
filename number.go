package genval

// Number creates a number schema.
func Number() *Node {
	return &Node{Kind: KindNumber}
}

// Int creates an integer-only number schema.
func Int() *Node {
	return &Node{Kind: KindNumber, Integer: true}
}

// Min sets the inclusive minimum of a number schema.
func (n *Node) Min(v float64) *Node {
	n.Minimum = ptr(v)
	return n
}

// Max sets the inclusive maximum of a number schema.
func (n *Node) Max(v float64) *Node {
	n.Maximum = ptr(v)
	return n
}
