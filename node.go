package genval

// Node is a schema tree node. Exactly one kind-specific field group is
// populated, selected by Kind; Description, Optional and Nullable apply to
// every kind.
//
// Optionality and nullability are carried as flags rather than wrapper
// nodes, so applying [Optional] and [Nullable] in either order yields the
// same schema.
type Node struct {
	Kind        Kind
	Description string

	// Optional marks the node as omittable when it appears as an object
	// field. It has no effect anywhere else.
	Optional bool
	// Nullable allows null in addition to the node's own type.
	Nullable bool

	// Checks refine a string schema.
	Checks []StringCheck

	// Integer restricts a number schema to whole values.
	Integer bool
	// Minimum and Maximum are inclusive bounds on a number schema.
	Minimum *float64
	Maximum *float64

	// Items is the element schema of an array.
	Items *Node
	// MinItems and MaxItems bound the length of an array.
	MinItems *int64
	MaxItems *int64

	// Fields are the declared fields of an object, in declaration order.
	// The order is significant and is preserved through conversion.
	Fields []Field

	// Values are the members of an enum, in declaration order.
	Values []string

	// Literal is the single accepted value of a literal schema.
	Literal any

	// Branches are the variants of a union, in declaration order.
	Branches []*Node
	// Discriminator names the tag field of a discriminated union.
	Discriminator string

	// Resolve produces the schema a lazy node stands for.
	Resolve func() *Node
}

// Field is one declared object field.
type Field struct {
	Name   string
	Schema *Node
}

// Desc sets the human-readable description and returns the node.
func (n *Node) Desc(description string) *Node {
	n.Description = description
	return n
}

// Optional marks n as omittable within an enclosing object and returns it.
func Optional(n *Node) *Node {
	n.Optional = true
	return n
}

// Nullable marks n as accepting null in addition to its own type and
// returns it.
func Nullable(n *Node) *Node {
	n.Nullable = true
	return n
}

// Null creates a schema accepting only null.
func Null() *Node {
	return &Node{Kind: KindNull}
}

// Lazy creates a schema that defers to the one produced by resolve,
// allowing self-referential definitions. Lazy schemas validate but cannot
// be converted to a Gemini schema.
func Lazy(resolve func() *Node) *Node {
	return &Node{Kind: KindLazy, Resolve: resolve}
}

// BigInt creates a schema accepting arbitrary-precision integers. It
// validates but has no Gemini schema representation.
func BigInt() *Node {
	return &Node{Kind: KindBigInt}
}

// ptr returns a pointer to the value.
func ptr[T any](v T) *T {
	return &v
}
