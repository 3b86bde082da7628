package genval

// Union creates a union schema over the given branches, preserving their
// order. A value matches the union if it matches any branch.
func Union(branches ...*Node) *Node {
	return &Node{Kind: KindUnion, Branches: branches}
}

// DiscriminatedUnion creates a union of object branches distinguished by a
// shared literal-valued tag field. The discriminator name exists only in
// the source model; conversion flattens the union and keeps the tag as an
// ordinary literal field on each branch.
func DiscriminatedUnion(discriminator string, branches ...*Node) *Node {
	return &Node{Kind: KindDiscriminated, Discriminator: discriminator, Branches: branches}
}
