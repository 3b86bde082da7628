package gemini

import (
	"google.golang.org/genai"

	"github.com/spetersoncode/genval"
)

// FunctionDeclaration converts a source schema into the parameters of a
// Gemini function declaration.
func FunctionDeclaration(name, description string, params *genval.Node) (*genai.FunctionDeclaration, error) {
	schema, err := ToSchema(params)
	if err != nil {
		return nil, err
	}
	return &genai.FunctionDeclaration{
		Name:        name,
		Description: description,
		Parameters:  schema,
	}, nil
}

// Tool bundles function declarations into a Gemini tool.
func Tool(decls ...*genai.FunctionDeclaration) *genai.Tool {
	return &genai.Tool{FunctionDeclarations: decls}
}
