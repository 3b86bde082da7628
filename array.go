package genval

// Array creates an array schema with the given element schema.
func Array(items *Node) *Node {
	return &Node{Kind: KindArray, Items: items}
}

// MinLen bounds the length from below. On an array schema it sets MinItems;
// on a string schema it attaches a minimum-length check.
func (n *Node) MinLen(v int) *Node {
	if n.Kind == KindArray {
		n.MinItems = ptr(int64(v))
		return n
	}
	n.Checks = append(n.Checks, StringCheck{Kind: CheckMinLength, Length: v})
	return n
}

// MaxLen bounds the length from above. On an array schema it sets MaxItems;
// on a string schema it attaches a maximum-length check.
func (n *Node) MaxLen(v int) *Node {
	if n.Kind == KindArray {
		n.MaxItems = ptr(int64(v))
		return n
	}
	n.Checks = append(n.Checks, StringCheck{Kind: CheckMaxLength, Length: v})
	return n
}

// Length requires an array to have exactly v elements.
func (n *Node) Length(v int) *Node {
	return n.MinLen(v).MaxLen(v)
}
