package gemini

import (
	"fmt"
	"slices"

	"google.golang.org/genai"

	"github.com/spetersoncode/genval"
)

// FromSchema reconstructs a validating source schema from a Gemini schema.
// The Gemini grammar carries less information than the source model, so the
// result preserves accept/reject behavior rather than exact metadata.
// Structurally invalid input fails with an error wrapping [ErrMalformed];
// no partial schema is ever returned.
func FromSchema(s *genai.Schema) (*genval.Node, error) {
	if s == nil {
		return nil, &MalformedError{Reason: "nil schema"}
	}

	var n *genval.Node
	switch {
	case len(s.AnyOf) > 0:
		branches := make([]*genval.Node, len(s.AnyOf))
		for i, b := range s.AnyOf {
			child, err := FromSchema(b)
			if err != nil {
				return nil, err
			}
			branches[i] = child
		}
		if len(branches) == 1 {
			n = branches[0]
		} else {
			n = genval.Union(branches...)
		}

	default:
		switch s.Type {
		case genai.TypeString:
			switch {
			case len(s.Enum) > 1:
				n = genval.Enum(slices.Clone(s.Enum)...)
			case len(s.Enum) == 1:
				n = genval.Literal(s.Enum[0])
			default:
				n = genval.String()
				// Only "date-time" maps back to a runtime check. The "date"
				// format is emitted by ToSchema but not reconstructed here;
				// see the reverse tests for this known gap.
				if s.Format == "date-time" {
					n.DateTime()
				}
			}

		case genai.TypeNumber, genai.TypeInteger:
			n = genval.Number()
			n.Integer = s.Type == genai.TypeInteger
			if s.Minimum != nil {
				n.Min(*s.Minimum)
			}
			if s.Maximum != nil {
				n.Max(*s.Maximum)
			}

		case genai.TypeBoolean:
			n = genval.Bool()

		case genai.TypeArray:
			if s.Items == nil {
				return nil, &MalformedError{Reason: "array schema requires items"}
			}
			items, err := FromSchema(s.Items)
			if err != nil {
				return nil, err
			}
			n = genval.Array(items)
			if s.MinItems != nil {
				n.MinLen(int(*s.MinItems))
			}
			if s.MaxItems != nil {
				n.MaxLen(int(*s.MaxItems))
			}

		case genai.TypeObject:
			n = genval.Object()
			for _, name := range propertyOrder(s) {
				child, err := FromSchema(s.Properties[name])
				if err != nil {
					return nil, err
				}
				if !slices.Contains(s.Required, name) {
					child = genval.Optional(child)
				}
				n.Field(name, child)
			}

		case genai.TypeUnspecified, "":
			return nil, &MalformedError{Reason: "schema has neither type nor anyOf"}

		default:
			return nil, &MalformedError{Reason: fmt.Sprintf("unsupported schema type %q", s.Type)}
		}
	}

	if s.Description != "" {
		n.Description = s.Description
	}
	if s.Nullable != nil && *s.Nullable {
		genval.Nullable(n)
	}
	return n, nil
}

// propertyOrder returns the property names to reconstruct. Membership comes
// only from Properties; PropertyOrdering merely makes iteration
// deterministic (Go maps are unordered), with keys it omits appended in
// sorted order.
func propertyOrder(s *genai.Schema) []string {
	names := make([]string, 0, len(s.Properties))
	seen := make(map[string]bool, len(s.Properties))
	for _, name := range s.PropertyOrdering {
		if _, ok := s.Properties[name]; ok && !seen[name] {
			names = append(names, name)
			seen[name] = true
		}
	}
	var rest []string
	for name := range s.Properties {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	slices.Sort(rest)
	return append(names, rest...)
}
