// Package genval provides a small runtime validation schema model and
// validation of decoded JSON values against it.
//
// A schema is a tree of [Node] values built with the per-kind constructors
// and chained modifiers:
//
//	user := genval.Object().
//		Field("name", genval.String().Desc("Name field")).
//		Field("age", genval.Number().Min(10).Max(100).Desc("Age field")).
//		Desc("A user object")
//
// Fields are required unless wrapped with [Optional]; a value may be null
// only if its schema is wrapped with [Nullable]. The two modifiers are
// independent and may be combined in either order.
//
// Validate a decoded JSON value against a schema:
//
//	if err := user.Validate(map[string]any{"name": "Bob", "age": 55}); err != nil {
//		log.Fatal(err)
//	}
//
// Convert to and from the Gemini function-calling schema format with the
// [github.com/spetersoncode/genval/gemini] package:
//
//	schema, err := gemini.ToSchema(user)
//
// Schemas are plain data: every conversion and validation builds fresh output
// and never mutates its input, so a schema may be shared across goroutines.
package genval
