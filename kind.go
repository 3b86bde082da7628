package genval

// Kind identifies the variant of a schema [Node]. The set is closed: both
// converters in the gemini package handle every kind listed here, and any
// value outside the set is reported as an unsupported construct.
type Kind string

const (
	// KindString accepts string values, optionally refined by string checks.
	KindString Kind = "string"
	// KindNumber accepts numeric values, optionally integer-only and bounded.
	KindNumber Kind = "number"
	// KindBoolean accepts true or false.
	KindBoolean Kind = "boolean"
	// KindArray accepts arrays whose elements match the item schema.
	KindArray Kind = "array"
	// KindObject accepts objects with an ordered set of declared fields.
	KindObject Kind = "object"
	// KindEnum accepts one of an ordered list of string values.
	KindEnum Kind = "enum"
	// KindLiteral accepts exactly one value.
	KindLiteral Kind = "literal"
	// KindUnion accepts a value matching any branch.
	KindUnion Kind = "union"
	// KindDiscriminated is a union of object branches distinguished by a
	// shared literal-valued tag field.
	KindDiscriminated Kind = "discriminated union"
	// KindNull accepts only null.
	KindNull Kind = "null"
	// KindLazy defers to a schema produced on demand, allowing
	// self-referential definitions. It validates but does not convert.
	KindLazy Kind = "lazy"
	// KindBigInt accepts arbitrary-precision integers. It validates but has
	// no Gemini schema representation.
	KindBigInt Kind = "bigint"
)

// AllKinds lists every schema kind. Tests range over it to check that the
// converters either handle or explicitly reject each one.
var AllKinds = []Kind{
	KindString,
	KindNumber,
	KindBoolean,
	KindArray,
	KindObject,
	KindEnum,
	KindLiteral,
	KindUnion,
	KindDiscriminated,
	KindNull,
	KindLazy,
	KindBigInt,
}
