package genval

// Enum creates an enum schema over the given string values, preserving
// their order. The values need not be known statically; an enum may be
// assembled from strings discovered at runtime.
func Enum(values ...string) *Node {
	return &Node{Kind: KindEnum, Values: values}
}

// Literal creates a schema accepting exactly one value. Only string
// literals have a Gemini schema representation; other literal types
// validate but fail conversion.
func Literal(value any) *Node {
	return &Node{Kind: KindLiteral, Literal: value}
}
