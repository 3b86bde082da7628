package genval

import (
	"fmt"
	"math"
	"regexp"
	"slices"
	"time"
	"unicode/utf8"
)

// dateLayout is the ISO 8601 calendar date form accepted by CheckDate.
const dateLayout = "2006-01-02"

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Validate checks a decoded JSON value (string, float64, int, bool, []any,
// map[string]any, or nil) against the schema. It returns nil if the value
// is accepted and a *ValidationError otherwise.
func (n *Node) Validate(value any) error {
	return n.validate(value, "")
}

func (n *Node) validate(value any, path string) error {
	if value == nil {
		if n.Nullable || n.Kind == KindNull {
			return nil
		}
		return &ValidationError{Path: path, Message: "null is not allowed", Err: ErrWrongType}
	}

	switch n.Kind {
	case KindNull:
		return &ValidationError{Path: path, Message: fmt.Sprintf("expected null, got %T", value), Err: ErrWrongType}

	case KindString:
		s, ok := value.(string)
		if !ok {
			return &ValidationError{Path: path, Message: fmt.Sprintf("expected string, got %T", value), Err: ErrWrongType}
		}
		return n.validateChecks(s, path)

	case KindNumber:
		f, ok := toFloat(value)
		if !ok {
			return &ValidationError{Path: path, Message: fmt.Sprintf("expected number, got %T", value), Err: ErrWrongType}
		}
		if n.Integer && math.Trunc(f) != f {
			return &ValidationError{Path: path, Message: fmt.Sprintf("expected integer, got %v", f), Err: ErrWrongType}
		}
		if n.Minimum != nil && f < *n.Minimum {
			return &ValidationError{Path: path, Message: fmt.Sprintf("%v is less than minimum %v", f, *n.Minimum), Err: ErrOutOfRange}
		}
		if n.Maximum != nil && f > *n.Maximum {
			return &ValidationError{Path: path, Message: fmt.Sprintf("%v is greater than maximum %v", f, *n.Maximum), Err: ErrOutOfRange}
		}
		return nil

	case KindBigInt:
		f, ok := toFloat(value)
		if !ok || math.Trunc(f) != f {
			return &ValidationError{Path: path, Message: fmt.Sprintf("expected integer, got %v", value), Err: ErrWrongType}
		}
		return nil

	case KindBoolean:
		if _, ok := value.(bool); !ok {
			return &ValidationError{Path: path, Message: fmt.Sprintf("expected boolean, got %T", value), Err: ErrWrongType}
		}
		return nil

	case KindEnum:
		s, ok := value.(string)
		if !ok {
			return &ValidationError{Path: path, Message: fmt.Sprintf("expected string, got %T", value), Err: ErrWrongType}
		}
		if !slices.Contains(n.Values, s) {
			return &ValidationError{Path: path, Message: fmt.Sprintf("%q is not a permitted value", s), Err: ErrNoMatch}
		}
		return nil

	case KindLiteral:
		if !literalEqual(n.Literal, value) {
			return &ValidationError{Path: path, Message: fmt.Sprintf("expected literal %v", n.Literal), Err: ErrNoMatch}
		}
		return nil

	case KindArray:
		items, ok := value.([]any)
		if !ok {
			return &ValidationError{Path: path, Message: fmt.Sprintf("expected array, got %T", value), Err: ErrWrongType}
		}
		if n.MinItems != nil && int64(len(items)) < *n.MinItems {
			return &ValidationError{Path: path, Message: fmt.Sprintf("array has %d elements, minimum is %d", len(items), *n.MinItems), Err: ErrOutOfRange}
		}
		if n.MaxItems != nil && int64(len(items)) > *n.MaxItems {
			return &ValidationError{Path: path, Message: fmt.Sprintf("array has %d elements, maximum is %d", len(items), *n.MaxItems), Err: ErrOutOfRange}
		}
		if n.Items != nil {
			for i, item := range items {
				if err := n.Items.validate(item, fmt.Sprintf("%s[%d]", path, i)); err != nil {
					return err
				}
			}
		}
		return nil

	case KindObject:
		m, ok := value.(map[string]any)
		if !ok {
			return &ValidationError{Path: path, Message: fmt.Sprintf("expected object, got %T", value), Err: ErrWrongType}
		}
		for _, f := range n.Fields {
			v, present := m[f.Name]
			if !present {
				if f.Schema.Optional {
					continue
				}
				return &ValidationError{Path: joinPath(path, f.Name), Message: "required field is missing", Err: ErrMissingField}
			}
			if err := f.Schema.validate(v, joinPath(path, f.Name)); err != nil {
				return err
			}
		}
		return nil

	case KindUnion, KindDiscriminated:
		for _, b := range n.Branches {
			if b.validate(value, path) == nil {
				return nil
			}
		}
		return &ValidationError{Path: path, Message: "value matches no union branch", Err: ErrNoMatch}

	case KindLazy:
		if n.Resolve == nil {
			return &ValidationError{Path: path, Message: "lazy schema has no resolver", Err: ErrWrongType}
		}
		return n.Resolve().validate(value, path)
	}

	return &ValidationError{Path: path, Message: fmt.Sprintf("cannot validate %s schema", n.Kind), Err: ErrWrongType}
}

func (n *Node) validateChecks(s, path string) error {
	for _, c := range n.Checks {
		switch c.Kind {
		case CheckDate:
			if _, err := time.Parse(dateLayout, s); err != nil {
				return &ValidationError{Path: path, Message: fmt.Sprintf("%q is not an ISO 8601 date", s), Err: ErrCheckFailed}
			}
		case CheckDateTime:
			if _, err := time.Parse(time.RFC3339, s); err != nil {
				return &ValidationError{Path: path, Message: fmt.Sprintf("%q is not an RFC 3339 date-time", s), Err: ErrCheckFailed}
			}
		case CheckRegex:
			re, err := regexp.Compile(c.Pattern)
			if err != nil {
				return &ValidationError{Path: path, Message: fmt.Sprintf("invalid pattern %q: %v", c.Pattern, err), Err: ErrCheckFailed}
			}
			if !re.MatchString(s) {
				return &ValidationError{Path: path, Message: fmt.Sprintf("%q does not match pattern %q", s, c.Pattern), Err: ErrCheckFailed}
			}
		case CheckEmail:
			if !emailPattern.MatchString(s) {
				return &ValidationError{Path: path, Message: fmt.Sprintf("%q is not an email address", s), Err: ErrCheckFailed}
			}
		case CheckMinLength:
			if utf8.RuneCountInString(s) < c.Length {
				return &ValidationError{Path: path, Message: fmt.Sprintf("string is shorter than %d characters", c.Length), Err: ErrOutOfRange}
			}
		case CheckMaxLength:
			if utf8.RuneCountInString(s) > c.Length {
				return &ValidationError{Path: path, Message: fmt.Sprintf("string is longer than %d characters", c.Length), Err: ErrOutOfRange}
			}
		}
	}
	return nil
}

// literalEqual compares a literal against a decoded JSON value, treating
// numeric representations (int vs float64) as interchangeable.
func literalEqual(literal, value any) bool {
	if lf, ok := toFloat(literal); ok {
		vf, ok := toFloat(value)
		return ok && lf == vf
	}
	return literal == value
}

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	}
	return 0, false
}

func joinPath(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}
