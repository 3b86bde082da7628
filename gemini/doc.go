// Package gemini converts between genval schemas and the Gemini
// function-calling schema format (google.golang.org/genai).
//
// [ToSchema] walks a source schema and produces the equivalent
// *genai.Schema, or fails with an [UnsupportedError] when the source uses a
// construct the Gemini grammar cannot express (recursive schemas,
// non-string literals, string checks other than date and date-time).
// Nothing is dropped silently: a schema either converts completely or not
// at all.
//
// [FromSchema] reconstructs a validating source schema from a
// *genai.Schema. The Gemini grammar is coarser than the source model, so
// the reconstruction preserves accept/reject behavior rather than exact
// metadata; structurally invalid input (an array without items, a node
// with neither type nor anyOf) fails with a [MalformedError].
//
// Both functions are pure: they never mutate their input, build fresh
// output on every call, and are safe for concurrent use.
package gemini
