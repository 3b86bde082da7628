package gemini

import (
	json "github.com/goccy/go-json"
	"google.golang.org/genai"

	"github.com/spetersoncode/genval"
)

// ToJSON converts a source schema and encodes the result in the Gemini
// schema wire form.
func ToJSON(n *genval.Node) ([]byte, error) {
	s, err := ToSchema(n)
	if err != nil {
		return nil, err
	}
	return json.Marshal(s)
}

// FromJSON decodes a Gemini schema from its wire form and reconstructs a
// validating source schema. Undecodable input is reported as malformed.
func FromJSON(data []byte) (*genval.Node, error) {
	var s genai.Schema
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, &MalformedError{Reason: err.Error()}
	}
	return FromSchema(&s)
}
