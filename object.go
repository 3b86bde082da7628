package genval

// Object creates an object schema with no fields. Add fields with
// [Node.Field]; declaration order is preserved.
func Object() *Node {
	return &Node{Kind: KindObject}
}

// Field appends a field to an object schema. The field is required unless
// its schema is wrapped with [Optional].
func (n *Node) Field(name string, schema *Node) *Node {
	n.Fields = append(n.Fields, Field{Name: name, Schema: schema})
	return n
}
