package genval

// Bool creates a boolean schema.
func Bool() *Node {
	return &Node{Kind: KindBoolean}
}
