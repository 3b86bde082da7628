package gemini

import (
	"fmt"
	"slices"

	"google.golang.org/genai"

	"github.com/spetersoncode/genval"
)

// ToSchema converts a source schema into the equivalent Gemini schema. It
// returns an error wrapping [ErrUnsupported] when the source uses a
// construct the Gemini grammar cannot express; no partial schema is ever
// returned.
//
// A field's optionality is not represented on its own schema: it surfaces
// only in the Required list of the enclosing object. Nullability becomes
// the Nullable flag. Descriptions are copied wherever present.
func ToSchema(n *genval.Node) (*genai.Schema, error) {
	if n == nil {
		return nil, &UnsupportedError{Construct: "nil schema"}
	}

	var s *genai.Schema
	switch n.Kind {
	case genval.KindString:
		s = &genai.Schema{Type: genai.TypeString}
		for _, c := range n.Checks {
			switch c.Kind {
			case genval.CheckDateTime:
				s.Format = "date-time"
			case genval.CheckDate:
				s.Format = "date"
			default:
				// Dropping a check would loosen validation on the consumer
				// side, so anything unmappable is a hard failure.
				return nil, &UnsupportedError{Construct: fmt.Sprintf("string %s check", c.Kind)}
			}
		}

	case genval.KindNumber:
		s = &genai.Schema{Type: genai.TypeNumber}
		if n.Integer {
			s.Type = genai.TypeInteger
		}
		if n.Minimum != nil {
			s.Minimum = genai.Ptr(*n.Minimum)
		}
		if n.Maximum != nil {
			s.Maximum = genai.Ptr(*n.Maximum)
		}

	case genval.KindBoolean:
		s = &genai.Schema{Type: genai.TypeBoolean}

	case genval.KindEnum:
		if len(n.Values) == 0 {
			return nil, &UnsupportedError{Construct: "empty enum"}
		}
		s = &genai.Schema{Type: genai.TypeString, Enum: slices.Clone(n.Values)}

	case genval.KindLiteral:
		v, ok := n.Literal.(string)
		if !ok {
			return nil, &UnsupportedError{Construct: literalName(n.Literal)}
		}
		// A literal is a one-value enum; consumers treat the two uniformly.
		s = &genai.Schema{Type: genai.TypeString, Enum: []string{v}}

	case genval.KindArray:
		items, err := ToSchema(n.Items)
		if err != nil {
			return nil, err
		}
		s = &genai.Schema{Type: genai.TypeArray, Items: items}
		if n.MinItems != nil {
			s.MinItems = genai.Ptr(*n.MinItems)
		}
		if n.MaxItems != nil {
			s.MaxItems = genai.Ptr(*n.MaxItems)
		}

	case genval.KindObject:
		props := make(map[string]*genai.Schema, len(n.Fields))
		ordering := make([]string, 0, len(n.Fields))
		var required []string
		for _, f := range n.Fields {
			child, err := ToSchema(f.Schema)
			if err != nil {
				return nil, err
			}
			props[f.Name] = child
			ordering = append(ordering, f.Name)
			if !f.Schema.Optional {
				required = append(required, f.Name)
			}
		}
		s = &genai.Schema{
			Type:             genai.TypeObject,
			Properties:       props,
			PropertyOrdering: ordering,
			Required:         required,
		}

	case genval.KindUnion, genval.KindDiscriminated:
		// The Gemini grammar has no discriminator concept; both union kinds
		// flatten to anyOf, and a discriminator survives only as the literal
		// tag field inside each converted branch.
		if len(n.Branches) == 0 {
			return nil, &UnsupportedError{Construct: "empty union"}
		}
		branches := make([]*genai.Schema, len(n.Branches))
		for i, b := range n.Branches {
			child, err := ToSchema(b)
			if err != nil {
				return nil, err
			}
			branches[i] = child
		}
		s = &genai.Schema{AnyOf: branches}

	case genval.KindNull:
		// No standalone null type exists; a nullable string is the closest
		// expressible shape.
		s = &genai.Schema{Type: genai.TypeString, Nullable: genai.Ptr(true)}

	case genval.KindLazy:
		return nil, &UnsupportedError{Construct: "lazy schema (recursive schemas cannot be expressed)"}

	default:
		return nil, &UnsupportedError{Construct: fmt.Sprintf("%s schema", n.Kind)}
	}

	if n.Description != "" {
		s.Description = n.Description
	}
	if n.Nullable {
		s.Nullable = genai.Ptr(true)
	}
	return s, nil
}

// literalName names a literal's type for error reporting.
func literalName(v any) string {
	switch v.(type) {
	case nil:
		return "null literal"
	case bool:
		return "boolean literal"
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return "number literal"
	default:
		return fmt.Sprintf("%T literal", v)
	}
}
